package server

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/viant/jsonrpc"
)

// originMiddleware rejects browser requests whose Origin is not in allowed
// ("*" allows any). Requests without Origin pass through.
func originMiddleware(allowed []string, logger *log.Logger) Middleware {
	origins := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		origins[origin] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" || origins["*"] || origins[origin] {
				next.ServeHTTP(w, r)
				return
			}
			logger.Warn("rejected origin", "origin", origin, "path", r.URL.Path, "request_id", r.Header.Get(RequestIDHeader))
			writeJSON(w, http.StatusForbidden, &jsonrpc.Response{
				Jsonrpc: jsonrpc.Version,
				Error:   jsonrpc.NewInvalidRequest(fmt.Sprintf("Origin not allowed: %v", origin), nil),
			})
		})
	}
}
