package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/viant/jsonrpc"
	"github.com/viant/staticmcp/bridge"
	"github.com/viant/staticmcp/internal/conv"
	"github.com/viant/staticmcp/source"
)

// TargetParameter names the query parameter carrying the remote content tree URL.
const TargetParameter = "url"

const readyEvent = `{"jsonrpc":"2.0","method":"ready"}`

// Dynamic serves any remote content tree named per request. Every request
// builds and initializes its own bridge; nothing is shared between requests.
type Dynamic struct {
	info            *Info
	protocolVersion string
	options         *options
}

// Handler returns the HTTP handler with every endpoint mounted.
func (d *Dynamic) Handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/", d.handleInfo)
	engine.POST(PlainURI, d.handleMessage)
	engine.GET(EventsURI, d.handleEvents)
	engine.GET(MetricsURI, gin.WrapH(d.options.metrics.HTTPHandler()))
	return ChainMiddlewareHandlers(engine, d.options.middlewares(d.protocolVersion)...)
}

// HTTP returns an HTTP server listening on addr.
func (d *Dynamic) HTTP(addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: d.Handler(),
	}
}

func (d *Dynamic) handleInfo(c *gin.Context) {
	respond(c, http.StatusOK, d.info)
}

func (d *Dynamic) handleMessage(c *gin.Context) {
	target, ok := targetOf(c)
	if !ok {
		return
	}
	request, err := decodeRequest(c.Request.Body)
	if err != nil {
		d.options.logger.Warn("malformed request", "error", err)
		respond(c, http.StatusBadRequest, parseErrorResponse(err))
		return
	}
	logger := d.options.logger.With("target", target)
	logger.Info("message", "method", request.Method)
	src := d.options.metrics.Source("remote", source.NewRemote(target, d.options.sourceOptions...))
	b, err := bridge.Open(c.Request.Context(), src, d.options.bridgeOptions...)
	if err != nil {
		logger.Error("failed to create remote bridge", "error", err)
		response := bridge.NewErrorResponse(request, jsonrpc.NewInternalError(fmt.Sprintf("Failed to connect to remote MCP: %v", err), nil))
		d.options.metrics.ObserveRequest(request.Method, response)
		respond(c, http.StatusOK, response)
		return
	}
	response := b.HandleRequest(c.Request.Context(), request)
	d.options.metrics.ObserveRequest(request.Method, response)
	respond(c, http.StatusOK, response)
}

// handleEvents emits a fixed greeting and ends the stream.
func (d *Dynamic) handleEvents(c *gin.Context) {
	if _, ok := targetOf(c); !ok {
		return
	}
	c.Header("Cache-Control", "no-cache")
	for _, event := range []sse.Event{
		{Data: "Hello SSE"},
		{Data: "Connection established"},
		{Event: "ready", Data: readyEvent},
	} {
		c.Render(-1, event)
	}
	c.Writer.Flush()
}

// targetOf returns the url query parameter, answering 400 when it is missing.
func targetOf(c *gin.Context) (string, bool) {
	target := c.Query(TargetParameter)
	if target == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing url query parameter"})
		return "", false
	}
	return target, true
}

func respond(c *gin.Context, status int, value any) {
	data, err := conv.Marshal(value)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(status, "application/json", data)
}

// NewDynamic creates a deployment resolving its content tree per request.
func NewDynamic(opts ...Option) *Dynamic {
	o := newOptions(opts)
	prototype := bridge.New(nil, o.bridgeOptions...)
	return &Dynamic{
		info:            dynamicInfo(prototype.Info()),
		protocolVersion: prototype.ProtocolVersion(),
		options:         o,
	}
}
