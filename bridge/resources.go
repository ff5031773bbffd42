package bridge

import (
	"context"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/staticmcp/internal/conv"
	"github.com/viant/staticmcp/locator"
)

const jsonMimeType = "application/json"

type (
	// ListResourcesResult lists manifest resource descriptors.
	ListResourcesResult struct {
		Resources []any `json:"resources"`
	}

	// ReadResourceResult holds resource contents.
	ReadResourceResult struct {
		Contents any `json:"contents"`
	}

	// ResourceContents is a single text resource content entry.
	ResourceContents struct {
		Uri      any `json:"uri"`
		MimeType any `json:"mimeType"`
		Text     any `json:"text"`
	}
)

// ListResources returns the manifest resource descriptors.
func (b *Bridge) ListResources(_ context.Context) (*ListResourcesResult, *jsonrpc.Error) {
	loaded := b.Manifest()
	if loaded == nil {
		return nil, jsonrpc.NewInternalError(manifestNotLoadedMessage, nil)
	}
	resources := loaded.Resources()
	b.logger.Info("listed resources", "count", len(resources))
	return &ListResourcesResult{Resources: resources}, nil
}

// ReadResource loads the document backing params.uri.
func (b *Bridge) ReadResource(ctx context.Context, params map[string]any) (*ReadResourceResult, *jsonrpc.Error) {
	URI := stringParam(params, "uri")
	resourcePath := locator.ResourcePath(URI)
	b.logger.Debug("reading resource", "uri", URI, "path", resourcePath)
	document, err := b.source.LoadJSON(ctx, resourcePath)
	if err != nil {
		b.logger.Error("failed to read resource", "uri", URI, "err", err)
		return nil, jsonrpc.NewInternalError(fmt.Sprintf("Failed to read resource %v: %v", URI, err), nil)
	}
	return &ReadResourceResult{Contents: ResourceContentsOf(URI, document)}, nil
}

// ResourceContentsOf normalizes a loaded document into resource contents:
// an explicit "contents" field wins, then a single uri/mimeType/text entry,
// otherwise the whole document is rendered as pretty JSON text.
func ResourceContentsOf(URI string, document any) any {
	object, _ := document.(map[string]any)
	if contents, ok := object["contents"]; ok {
		return contents
	}
	docURI, hasURI := object["uri"]
	mimeType, hasMimeType := object["mimeType"]
	text, hasText := object["text"]
	if hasURI && hasMimeType && hasText {
		return []ResourceContents{{Uri: docURI, MimeType: mimeType, Text: text}}
	}
	return []ResourceContents{{Uri: URI, MimeType: jsonMimeType, Text: conv.Pretty(document)}}
}
