package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/http/requestutil"
)

// NewCORSHandler returns a middleware that applies CORS headers for allowedOrigins.
// A single "*" entry allows any origin.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", requestutil.HeaderRequestID, "Mcp-Session-Id", "Mcp-Protocol-Version"},
		ExposedHeaders: []string{requestutil.HeaderRequestID, "Retry-After", "Mcp-Session-Id"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
