package source

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/viant/afs/storage"
)

// Option configures a source.
type Option func(c *config)

type config struct {
	logger         *log.Logger
	client         *http.Client
	storageOptions []storage.Option
}

func newConfig(options []Option) *config {
	ret := &config{}
	for _, option := range options {
		option(ret)
	}
	if ret.logger == nil {
		ret.logger = log.Default()
	}
	if ret.client == nil {
		ret.client = http.DefaultClient
	}
	return ret
}

// WithLogger sets the logger used to trace document reads.
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithHTTPClient sets the client used by remote sources.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.client = client
	}
}

// WithStorageOptions sets afs storage options used by local sources.
func WithStorageOptions(options ...storage.Option) Option {
	return func(c *config) {
		c.storageOptions = append(c.storageOptions, options...)
	}
}
