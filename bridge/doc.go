// Package bridge serves MCP JSON-RPC requests from a static content tree.
//
// A Bridge owns one source.Source and, once initialized, the tree's manifest.
// Each request is resolved to a document path (see package locator), the
// document is loaded from the source and reshaped into the MCP result the
// method expects:
//
//	b := bridge.New(source.New("./site"))
//	if err := b.Initialize(ctx); err != nil {
//		return err
//	}
//	response := b.HandleRequest(ctx, request)
//
// Resource read failures are JSON-RPC errors, while tool call failures are
// successful results flagged with isError so that clients render them as
// tool output.
//
// A Bridge also satisfies the viant/jsonrpc transport.Handler contract and can
// be served directly by stdio, SSE or streamable HTTP transports.
package bridge
