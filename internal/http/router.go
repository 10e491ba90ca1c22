package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. mcp is mounted on /mcp when non-nil.
func NewRouter(handler *handlers.Handler, mcp nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	handler.Register(mux)
	if mcp != nil {
		mux.Handle("/mcp", mcp)
	}
	mux.Handle("/", handler)
	return mux
}
