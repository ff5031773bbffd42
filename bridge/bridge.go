package bridge

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/staticmcp/manifest"
	"github.com/viant/staticmcp/source"
)

const (
	// DefaultProtocolVersion is the MCP protocol version reported by initialize.
	DefaultProtocolVersion = "2024-11-05"
	// DefaultName is the server name reported by initialize.
	DefaultName = "sse-static-mcp-bridge"
	// DefaultVersion is the server version reported by initialize.
	DefaultVersion = "1.0.0"
)

// ErrAlreadyInitialized is returned by a second Initialize call.
var ErrAlreadyInitialized = errors.New("bridge already initialized")

// Bridge maps MCP requests onto documents of a static content tree.
type Bridge struct {
	source          source.Source
	manifest        atomic.Pointer[manifest.Manifest]
	logger          *log.Logger
	info            schema.Implementation
	protocolVersion string
}

// Initialize loads the manifest. It runs once; the bridge never reloads it.
func (b *Bridge) Initialize(ctx context.Context) error {
	if b.manifest.Load() != nil {
		return ErrAlreadyInitialized
	}
	loaded, err := b.source.LoadManifest(ctx)
	if err != nil {
		return err
	}
	if !b.manifest.CompareAndSwap(nil, loaded) {
		return ErrAlreadyInitialized
	}
	b.logger.Info("loaded manifest", "name", loaded.Name(), "version", loaded.Version())
	return nil
}

// Manifest returns the loaded manifest or nil before Initialize.
func (b *Bridge) Manifest() *manifest.Manifest {
	return b.manifest.Load()
}

// Initialized reports whether the manifest has been loaded.
func (b *Bridge) Initialized() bool {
	return b.manifest.Load() != nil
}

// New creates an uninitialized bridge over src.
func New(src source.Source, options ...Option) *Bridge {
	ret := &Bridge{
		source: src,
		info: schema.Implementation{
			Name:    DefaultName,
			Version: DefaultVersion,
		},
		protocolVersion: DefaultProtocolVersion,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.logger == nil {
		ret.logger = log.Default()
	}
	return ret
}

// Info returns the server identity reported by initialize.
func (b *Bridge) Info() schema.Implementation {
	return b.info
}

// ProtocolVersion returns the protocol version reported by initialize.
func (b *Bridge) ProtocolVersion() string {
	return b.protocolVersion
}
