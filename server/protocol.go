package server

import (
	"net/http"
)

// protocolVersionMiddleware advertises the bridge protocol version on every
// response. Static content does not depend on the client version, so any
// requested version is accepted.
func protocolVersionMiddleware(version string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("MCP-Protocol-Version", version)
			next.ServeHTTP(w, r)
		})
	}
}
