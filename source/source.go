package source

import (
	"context"
	"strings"

	"github.com/viant/staticmcp/manifest"
)

// Source loads JSON documents relative to a content tree root.
type Source interface {
	// LoadJSON loads and parses the document at relativePath.
	LoadJSON(ctx context.Context, relativePath string) (any, error)
	// LoadManifest loads the root manifest document.
	LoadManifest(ctx context.Context) (*manifest.Manifest, error)
}

// IsRemote reports whether location addresses an HTTP content tree.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// New creates a Remote source for http(s) locations and a Local one otherwise.
func New(location string, options ...Option) Source {
	if IsRemote(location) {
		return NewRemote(location, options...)
	}
	return NewLocal(location, options...)
}

func loadManifest(ctx context.Context, source Source) (*manifest.Manifest, error) {
	document, err := source.LoadJSON(ctx, manifest.FileName)
	if err != nil {
		return nil, err
	}
	ret, err := manifest.New(document)
	if err != nil {
		return nil, newError(ErrSchema, manifest.FileName, err)
	}
	return ret, nil
}

// Location returns the resolved base location of src, or "" when src does
// not expose one.
func Location(src Source) string {
	if located, ok := src.(interface{ BaseURL() string }); ok {
		return located.BaseURL()
	}
	return ""
}
