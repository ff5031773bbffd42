package server

import (
	"context"
	"net/http"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/jsonrpc/transport/server/http/sse"
	"github.com/viant/jsonrpc/transport/server/http/streamable"
	"github.com/viant/jsonrpc/transport/server/stdio"
	"github.com/viant/staticmcp/bridge"
)

const (
	// PlainURI accepts one JSON-RPC request body and answers with its response.
	PlainURI = "/sse"
	// EventsURI opens an MCP SSE session.
	EventsURI = "/events"
	// MessageURI receives messages for an MCP SSE session.
	MessageURI = "/message"
	// StreamableURI serves the MCP streamable HTTP transport.
	StreamableURI = "/mcp"
	// MetricsURI exposes prometheus metrics.
	MetricsURI = "/metrics"
)

// Fixed serves one initialized bridge shared by every request and session.
type Fixed struct {
	bridge  *bridge.Bridge
	handler transport.Handler
	options *options
}

// NewHandler returns the shared bridge handler for a new transport session.
func (f *Fixed) NewHandler(_ context.Context, _ transport.Transport) transport.Handler {
	return f.handler
}

// Handler returns the HTTP handler with every endpoint mounted.
func (f *Fixed) Handler() http.Handler {
	sseHandler := sse.New(f.NewHandler,
		sse.WithURI(EventsURI),
		sse.WithMessageURI(MessageURI),
	)
	streamingHandler := streamable.New(f.NewHandler,
		streamable.WithURI(StreamableURI),
	)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", f.info)
	mux.HandleFunc("POST "+PlainURI, f.message)
	mux.Handle(EventsURI, sseHandler)
	mux.Handle(MessageURI, sseHandler)
	mux.Handle(StreamableURI, streamingHandler)
	mux.Handle("GET "+MetricsURI, f.options.metrics.HTTPHandler())
	return ChainMiddlewareHandlers(mux, f.options.middlewares(f.bridge.ProtocolVersion())...)
}

// HTTP returns an HTTP server listening on addr.
func (f *Fixed) HTTP(addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: f.Handler(),
	}
}

// Stdio returns a server exchanging JSON-RPC messages over stdin and stdout.
func (f *Fixed) Stdio(ctx context.Context) *stdio.Server {
	return stdio.New(ctx, f.NewHandler)
}

func (f *Fixed) info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, fixedInfo(f.bridge))
}

func (f *Fixed) message(w http.ResponseWriter, r *http.Request) {
	request, err := decodeRequest(r.Body)
	if err != nil {
		f.options.logger.Warn("malformed request", "error", err)
		writeJSON(w, http.StatusBadRequest, parseErrorResponse(err))
		return
	}
	response := &jsonrpc.Response{}
	f.handler.Serve(r.Context(), request, response)
	writeJSON(w, http.StatusOK, response)
}

// NewFixed creates a deployment serving b, which must already be initialized
// for manifest dependent methods to succeed.
func NewFixed(b *bridge.Bridge, opts ...Option) *Fixed {
	o := newOptions(opts)
	return &Fixed{
		bridge:  b,
		handler: o.metrics.Wrap(b),
		options: o,
	}
}
