// Package locator maps MCP resource URIs and tool invocations to storage
// relative paths of pre-generated JSON documents.
//
// Both mappings are pure: identical input always yields the identical path.
// Tool arguments are content addressed so that a static content tree can hold
// one document per distinct argument set, while the common zero, one and two
// argument cases stay human readable:
//
//	tools/search.json              search()
//	tools/search/cats.json         search(q: "cats")
//	tools/search/10/cats.json      search(q: "cats", limit: 10)
//	tools/search/<base64>.json     three or more arguments
package locator
