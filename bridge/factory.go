package bridge

import (
	"context"

	"github.com/viant/staticmcp/source"
)

// Open creates a bridge over src and initializes it, returning the
// initialization error instead of an unusable bridge.
func Open(ctx context.Context, src source.Source, options ...Option) (*Bridge, error) {
	ret := New(src, options...)
	if err := ret.Initialize(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}
