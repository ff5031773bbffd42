package bridge

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/staticmcp/internal/conv"
	"github.com/viant/staticmcp/locator"
)

type (
	// ListToolsResult lists manifest tool descriptors.
	ListToolsResult struct {
		Tools []any `json:"tools"`
	}

	// CallToolResult is a synthesized tool result.
	CallToolResult struct {
		Content []TextContent `json:"content"`
		IsError bool          `json:"isError,omitempty"`
	}

	// TextContent is a text content block.
	TextContent struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
)

// ListTools returns the manifest tool descriptors.
func (b *Bridge) ListTools(_ context.Context) (*ListToolsResult, *jsonrpc.Error) {
	loaded := b.Manifest()
	if loaded == nil {
		return nil, jsonrpc.NewInternalError(manifestNotLoadedMessage, nil)
	}
	tools := loaded.Tools()
	b.logger.Info("listed tools", "count", len(tools))
	return &ListToolsResult{Tools: tools}, nil
}

// CallTool loads the pre-generated output of tool params.name for
// params.arguments. Load failures are returned in band with isError set.
func (b *Bridge) CallTool(ctx context.Context, params map[string]any) any {
	name := stringParam(params, "name")
	arguments := objectParam(params, "arguments")
	toolPath := locator.ToolPath(name, arguments)
	b.logger.Debug("calling tool", "name", name, "arguments", arguments, "path", toolPath)
	document, err := b.source.LoadJSON(ctx, toolPath)
	if err != nil {
		b.logger.Error("failed to call tool", "name", name, "err", err)
		return &CallToolResult{
			Content: []TextContent{{Type: "text", Text: fmt.Sprintf("Error calling %v: %v", name, err)}},
			IsError: true,
		}
	}
	return ToolResultOf(document)
}

// ToolResultOf normalizes a loaded document into a tool result: documents
// carrying "content" or "contents" are returned as is, anything else becomes
// a single pretty JSON text block.
func ToolResultOf(document any) any {
	if object, ok := document.(map[string]any); ok {
		_, hasContent := object["content"]
		_, hasContents := object["contents"]
		if hasContent || hasContents {
			return document
		}
	}
	return &CallToolResult{Content: []TextContent{{Type: "text", Text: conv.Pretty(document)}}}
}
