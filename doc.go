// Package staticmcp serves static MCP content trees over JSON-RPC.
//
// A content tree is a directory or HTTP base URL holding pre-generated JSON
// documents: the "mcp.json" manifest at its root, resource documents under
// "resources/" and tool results under "tools/". No code runs per request;
// every MCP call is answered by reading one document.
//
// Example usage:
//
//	config := &staticmcp.Config{Source: "./my-static-mcp", Port: 3000}
//	service, err := staticmcp.New(ctx, config, log.Default())
//	if err != nil {
//		return err
//	}
//	return service.ListenAndServe(ctx)
package staticmcp
