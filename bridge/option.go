package bridge

import (
	"github.com/charmbracelet/log"
	"github.com/viant/mcp-protocol/schema"
)

// Option is a function that configures the bridge.
type Option func(b *Bridge)

// WithLogger sets the bridge logger.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bridge) {
		b.logger = logger
	}
}

// WithImplementation sets the server identity returned by initialize.
func WithImplementation(implementation schema.Implementation) Option {
	return func(b *Bridge) {
		b.info = implementation
	}
}

// WithProtocolVersion sets the protocol version returned by initialize.
func WithProtocolVersion(version string) Option {
	return func(b *Bridge) {
		b.protocolVersion = version
	}
}
