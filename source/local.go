package source

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/staticmcp/internal/conv"
	"github.com/viant/staticmcp/manifest"
)

// Local reads documents from a directory through afs.
type Local struct {
	baseURL string
	fs      afs.Service
	config  *config
	logger  *log.Logger
}

// BaseURL returns the normalized base URL of the content tree.
func (l *Local) BaseURL() string {
	return l.baseURL
}

// LoadJSON reads and parses the document at relativePath.
func (l *Local) LoadJSON(ctx context.Context, relativePath string) (any, error) {
	location := l.baseURL + "/" + relativePath
	l.logger.Debug("reading", "location", location)
	data, err := l.fs.DownloadWithURL(ctx, location, l.config.storageOptions...)
	if err != nil {
		return nil, newError(ErrIO, location, err)
	}
	document, err := conv.Decode(data)
	if err != nil {
		return nil, newError(ErrParse, location, err)
	}
	return document, nil
}

// LoadManifest loads the root manifest document.
func (l *Local) LoadManifest(ctx context.Context) (*manifest.Manifest, error) {
	return loadManifest(ctx, l)
}

// NewLocal creates a source rooted at basePath; relative paths resolve
// against the working directory.
func NewLocal(basePath string, options ...Option) *Local {
	cfg := newConfig(options)
	baseURL := strings.TrimRight(url.Normalize(basePath, file.Scheme), "/")
	return &Local{
		baseURL: baseURL,
		fs:      afs.New(),
		config:  cfg,
		logger:  cfg.logger.With("source", "local"),
	}
}
