// Package server provides the transports serving a bridge.
//
// Two deployments are supported:
//
//   - Fixed: one bridge over one content tree, initialized at startup and
//     shared by every request. Served over HTTP (plain JSON-RPC POST, MCP SSE
//     and streamable transports) or stdio.
//   - Dynamic: a bridge built per request for the remote content tree named
//     by the "url" query parameter.
//
// Both expose an info document at "/" and prometheus metrics at "/metrics".
package server
