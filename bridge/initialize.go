package bridge

import "github.com/viant/mcp-protocol/schema"

type (
	// InitializeResult is the fixed initialize result of a static bridge.
	InitializeResult struct {
		ProtocolVersion string                `json:"protocolVersion"`
		Capabilities    Capabilities          `json:"capabilities"`
		ServerInfo      schema.Implementation `json:"serverInfo"`
	}

	// Capabilities advertises resources and tools without optional features.
	Capabilities struct {
		Resources struct{} `json:"resources"`
		Tools     struct{} `json:"tools"`
	}
)

func (b *Bridge) initializeResult() *InitializeResult {
	return &InitializeResult{
		ProtocolVersion: b.protocolVersion,
		ServerInfo:      b.info,
	}
}
