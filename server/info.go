package server

import (
	"github.com/viant/mcp-protocol/schema"
	"github.com/viant/staticmcp/bridge"
)

const (
	typeFixed   = "fixed"
	typeGeneric = "generic"
)

// Info describes a running deployment at "/".
type Info struct {
	Bridge      string            `json:"bridge"`
	Version     string            `json:"version"`
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Manifest    any               `json:"manifest,omitempty"`
	Endpoints   map[string]string `json:"endpoints"`
}

type manifestError struct {
	Error string `json:"error"`
}

func fixedInfo(b *bridge.Bridge) *Info {
	ret := &Info{
		Bridge:  b.Info().Name,
		Version: b.Info().Version,
		Type:    typeFixed,
		Endpoints: map[string]string{
			"info":       "GET /",
			"message":    "POST " + PlainURI,
			"sse":        "GET " + EventsURI,
			"sseMessage": "POST " + MessageURI,
			"streamable": "POST " + StreamableURI,
			"metrics":    "GET " + MetricsURI,
		},
	}
	if m := b.Manifest(); m != nil {
		ret.Manifest = m
	} else {
		ret.Manifest = &manifestError{Error: "Manifest not loaded"}
	}
	return ret
}

func dynamicInfo(implementation schema.Implementation) *Info {
	return &Info{
		Bridge:      implementation.Name,
		Version:     implementation.Version,
		Type:        typeGeneric,
		Description: "Generic bridge that can proxy to any remote static MCP content tree",
		Endpoints: map[string]string{
			"info":    "GET /",
			"message": "POST " + PlainURI + "?url={target}",
			"events":  "GET " + EventsURI + "?url={target}",
			"metrics": "GET " + MetricsURI,
		},
	}
}
