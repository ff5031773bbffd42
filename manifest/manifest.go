// Package manifest describes the identity and advertised capabilities of a
// static MCP content tree, as stored in its root "mcp.json" document.
package manifest

import (
	"errors"
	"fmt"
)

// FileName is the name of the manifest document at the root of a content tree.
const FileName = "mcp.json"

// ErrNotObject is returned when the manifest document is not a JSON object.
var ErrNotObject = errors.New("manifest is not a JSON object")

type (
	// Manifest represents server identity and capability descriptors.
	Manifest struct {
		ServerInfo   *ServerInfo   `json:"serverInfo"`
		Capabilities *Capabilities `json:"capabilities"`
	}

	// ServerInfo identifies the content author's server.
	ServerInfo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	// Capabilities lists resource and tool descriptors. Descriptors are opaque
	// JSON values owned by the content author and passed through as is.
	Capabilities struct {
		Resources []any `json:"resources"`
		Tools     []any `json:"tools"`
	}
)

// Resources returns resource descriptors, never nil.
func (m *Manifest) Resources() []any {
	if m == nil || m.Capabilities == nil || m.Capabilities.Resources == nil {
		return []any{}
	}
	return m.Capabilities.Resources
}

// Tools returns tool descriptors, never nil.
func (m *Manifest) Tools() []any {
	if m == nil || m.Capabilities == nil || m.Capabilities.Tools == nil {
		return []any{}
	}
	return m.Capabilities.Tools
}

// Name returns the server name or "Unknown".
func (m *Manifest) Name() string {
	if m == nil || m.ServerInfo == nil || m.ServerInfo.Name == "" {
		return "Unknown"
	}
	return m.ServerInfo.Name
}

// Version returns the server version or "0.0.0".
func (m *Manifest) Version() string {
	if m == nil || m.ServerInfo == nil || m.ServerInfo.Version == "" {
		return "0.0.0"
	}
	return m.ServerInfo.Version
}

// New reinterprets a decoded JSON document as a Manifest. Only a non-object
// top level fails; missing or wrong-typed optional fields are left unset.
func New(document any) (*Manifest, error) {
	object, ok := document.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %v", ErrNotObject, kindOf(document))
	}
	ret := &Manifest{}
	if info, ok := object["serverInfo"].(map[string]any); ok {
		ret.ServerInfo = &ServerInfo{}
		ret.ServerInfo.Name, _ = info["name"].(string)
		ret.ServerInfo.Version, _ = info["version"].(string)
	}
	if capabilities, ok := object["capabilities"].(map[string]any); ok {
		ret.Capabilities = &Capabilities{}
		ret.Capabilities.Resources, _ = capabilities["resources"].([]any)
		ret.Capabilities.Tools, _ = capabilities["tools"].([]any)
	}
	return ret, nil
}

func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return "number"
	}
}
