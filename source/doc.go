// Package source loads JSON documents of a static MCP content tree.
//
// A content tree is either a local directory or an HTTP base URL; New picks
// the implementation from the location prefix:
//
//	src, err := source.New("https://example.com/mcp")
//	manifest, err := src.LoadManifest(ctx)
//	document, err := src.LoadJSON(ctx, "resources/readme.json")
//
// Failures are reported as *Error values matching ErrIO, ErrParse or ErrSchema
// with errors.Is.
package source
