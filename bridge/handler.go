package bridge

import (
	"context"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/staticmcp/internal/conv"
)

var _ transport.Handler = (*Bridge)(nil)

const (
	methodNotFoundMessage    = "Method not found"
	manifestNotLoadedMessage = "Manifest not loaded"
)

// HandleRequest dispatches request by method and returns its response. The
// request id is echoed as is, including when absent.
func (b *Bridge) HandleRequest(ctx context.Context, request *jsonrpc.Request) *jsonrpc.Response {
	response := &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Id: request.Id}
	b.logger.Debug("handling request", "method", request.Method)
	switch request.Method {
	case schema.MethodInitialize:
		setResult(response, b.initializeResult())
	case schema.MethodResourcesList:
		result, rpcError := b.ListResources(ctx)
		setResponse(response, result, rpcError)
	case schema.MethodResourcesRead:
		result, rpcError := b.ReadResource(ctx, params(request))
		setResponse(response, result, rpcError)
	case schema.MethodToolsList:
		result, rpcError := b.ListTools(ctx)
		setResponse(response, result, rpcError)
	case schema.MethodToolsCall:
		setResult(response, b.CallTool(ctx, params(request)))
	default:
		response.Error = jsonrpc.NewMethodNotFound(methodNotFoundMessage, nil)
	}
	return response
}

// NewErrorResponse creates an error response echoing request's id.
func NewErrorResponse(request *jsonrpc.Request, rpcError *jsonrpc.Error) *jsonrpc.Response {
	response := &jsonrpc.Response{Jsonrpc: jsonrpc.Version, Error: rpcError}
	if request != nil {
		response.Id = request.Id
	}
	return response
}

// Serve handles a JSON-RPC request delivered by a transport.
func (b *Bridge) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	result := b.HandleRequest(ctx, request)
	response.Jsonrpc = result.Jsonrpc
	response.Id = result.Id
	response.Result = result.Result
	response.Error = result.Error
}

// OnNotification ignores client notifications; a static tree has no state to update.
func (b *Bridge) OnNotification(_ context.Context, notification *jsonrpc.Notification) {
	b.logger.Debug("ignoring notification", "method", notification.Method)
}

func setResponse(response *jsonrpc.Response, result any, rpcError *jsonrpc.Error) {
	if rpcError != nil {
		response.Error = rpcError
		return
	}
	setResult(response, result)
}

func setResult(response *jsonrpc.Response, result any) {
	data, err := conv.Marshal(result)
	if err != nil {
		response.Error = jsonrpc.NewInternalError(err.Error(), nil)
		return
	}
	response.Result = data
}

// params decodes request params as an object; anything else is treated as empty.
func params(request *jsonrpc.Request) map[string]any {
	if len(request.Params) == 0 {
		return map[string]any{}
	}
	value, err := conv.Decode(request.Params)
	if err != nil {
		return map[string]any{}
	}
	object, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return object
}

func stringParam(params map[string]any, name string) string {
	value, _ := params[name].(string)
	return value
}

func objectParam(params map[string]any, name string) map[string]any {
	value, ok := params[name].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return value
}
