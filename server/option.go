package server

import (
	"github.com/charmbracelet/log"
	"github.com/viant/staticmcp/bridge"
	"github.com/viant/staticmcp/internal/metrics"
	"github.com/viant/staticmcp/source"
)

// Option is a function that configures a deployment.
type Option func(o *options)

type options struct {
	logger        *log.Logger
	cors          *Cors
	metrics       *metrics.Metrics
	bridgeOptions []bridge.Option
	sourceOptions []source.Option
}

func newOptions(opts []Option) *options {
	ret := &options{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = log.Default()
	}
	if ret.cors == nil {
		ret.cors = DefaultCors()
	}
	if ret.metrics == nil {
		ret.metrics = metrics.New()
	}
	return ret
}

func (o *options) middlewares(protocolVersion string) []Middleware {
	return []Middleware{
		requestIDMiddleware(o.logger),
		o.cors.Middleware,
		originMiddleware(o.cors.AllowOrigins, o.logger),
		protocolVersionMiddleware(protocolVersion),
	}
}

// WithLogger sets the deployment logger.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCORS sets the CORS configuration; the default allows any origin.
func WithCORS(cors *Cors) Option {
	return func(o *options) {
		o.cors = cors
	}
}

// WithMetrics sets the metrics exposed at /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithBridgeOptions sets options applied to bridges built per request.
func WithBridgeOptions(opts ...bridge.Option) Option {
	return func(o *options) {
		o.bridgeOptions = append(o.bridgeOptions, opts...)
	}
}

// WithSourceOptions sets options applied to sources built per request.
func WithSourceOptions(opts ...source.Option) Option {
	return func(o *options) {
		o.sourceOptions = append(o.sourceOptions, opts...)
	}
}
