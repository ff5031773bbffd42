// Package metrics exposes prometheus instrumentation for JSON-RPC handling and
// document loads.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/staticmcp/manifest"
	"github.com/viant/staticmcp/source"
)

const (
	namespace = "staticmcp"

	outcomeOK    = "ok"
	outcomeError = "error"
	outcomeIO    = "io"
	outcomeParse = "parse"
	outcomeOther = "other"
)

// Metrics holds collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	loads    *prometheus.HistogramVec
}

// HTTPHandler returns the /metrics endpoint handler.
func (m *Metrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest counts a handled JSON-RPC request by method and outcome.
func (m *Metrics) ObserveRequest(method string, response *jsonrpc.Response) {
	outcome := outcomeOK
	if response == nil || response.Error != nil {
		outcome = outcomeError
	}
	m.requests.WithLabelValues(methodLabel(method), outcome).Inc()
}

// Wrap returns a transport handler counting every request served by next.
func (m *Metrics) Wrap(next transport.Handler) transport.Handler {
	return &handler{next: next, metrics: m}
}

// Source returns src with LoadJSON and LoadManifest timed under the kind label.
func (m *Metrics) Source(kind string, src source.Source) source.Source {
	return &instrumentedSource{source: src, kind: kind, metrics: m}
}

func (m *Metrics) observeLoad(kind string, started time.Time, err error) {
	m.loads.WithLabelValues(kind, loadOutcome(err)).Observe(time.Since(started).Seconds())
}

func methodLabel(method string) string {
	switch method {
	case schema.MethodInitialize, schema.MethodResourcesList, schema.MethodResourcesRead,
		schema.MethodToolsList, schema.MethodToolsCall:
		return method
	}
	return outcomeOther
}

func loadOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, source.ErrParse):
		return outcomeParse
	case errors.Is(err, source.ErrIO):
		return outcomeIO
	}
	return outcomeError
}

type handler struct {
	next    transport.Handler
	metrics *Metrics
}

func (h *handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	h.next.Serve(ctx, request, response)
	h.metrics.ObserveRequest(request.Method, response)
}

func (h *handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	h.next.OnNotification(ctx, notification)
}

type instrumentedSource struct {
	source  source.Source
	kind    string
	metrics *Metrics
}

func (s *instrumentedSource) LoadJSON(ctx context.Context, relativePath string) (any, error) {
	started := time.Now()
	document, err := s.source.LoadJSON(ctx, relativePath)
	s.metrics.observeLoad(s.kind, started, err)
	return document, err
}

func (s *instrumentedSource) LoadManifest(ctx context.Context) (*manifest.Manifest, error) {
	started := time.Now()
	ret, err := s.source.LoadManifest(ctx)
	s.metrics.observeLoad(s.kind, started, err)
	return ret, err
}

// New creates metrics with go and process collectors on a private registry.
func New() *Metrics {
	ret := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "JSON-RPC requests handled by method and outcome.",
		}, []string{"method", "outcome"}),
		loads: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_load_seconds",
			Help:      "Document load latency by source kind and outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source", "outcome"}),
	}
	ret.registry.MustRegister(
		ret.requests,
		ret.loads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return ret
}
