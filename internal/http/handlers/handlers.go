package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/league"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
)

// Handler wires HTTP routes to the league service and logo generator.
type Handler struct {
	league    *league.Service
	generator *logo.Generator
	logger    *slog.Logger
	readyFn   func() error
	mux       *nethttp.ServeMux
}

// NewHandler constructs a Handler. readyFn may be nil.
func NewHandler(svc *league.Service, generator *logo.Generator, logger *slog.Logger, readyFn func() error) *Handler {
	h := &Handler{
		league:    svc,
		generator: generator,
		logger:    logger,
		readyFn:   readyFn,
		mux:       nethttp.NewServeMux(),
	}
	h.Register(h.mux)
	return h
}

// Register adds every route to mux.
func (h *Handler) Register(mux *nethttp.ServeMux) {
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)

	mux.HandleFunc("GET /api/league", h.LoadLeague)
	mux.HandleFunc("GET /api/workspaces/{id}", h.GetWorkspace)
	mux.HandleFunc("DELETE /api/workspaces/{id}", h.ClearWorkspace)
	mux.HandleFunc("PATCH /api/workspaces/{id}/teams/{teamId}", h.PatchTeam)
	mux.HandleFunc("POST /api/workspaces/{id}/remix", h.Remix)
	mux.HandleFunc("POST /api/workspaces/{id}/logos", h.GenerateLogos)

	mux.HandleFunc("POST /api/generate-logo", h.GenerateLogo)
	mux.HandleFunc("GET /api/mascot", h.Mascot)
	mux.HandleFunc("GET /api/palette", h.Palette)
	mux.HandleFunc("GET /api/color", h.Color)
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	route, pattern := h.mux.Handler(r)
	if pattern != "" {
		// Dispatch through the mux so path wildcards are populated.
		h.mux.ServeHTTP(w, r)
		return
	}
	// Unmatched: ServeMux would answer in plain text, so record its status for 404 vs 405.
	rec := &statusRecorder{header: nethttp.Header{}}
	route.ServeHTTP(rec, r)
	if rec.status == nethttp.StatusMethodNotAllowed {
		w.Header().Set("Allow", rec.header.Get("Allow"))
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

type statusRecorder struct {
	header nethttp.Header
	status int
}

func (s *statusRecorder) Header() nethttp.Header      { return s.header }
func (s *statusRecorder) Write(b []byte) (int, error) { return len(b), nil }
func (s *statusRecorder) WriteHeader(status int)      { s.status = status }

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.readyFn != nil {
		if err := h.readyFn(); err != nil {
			writeError(w, r, nethttp.StatusServiceUnavailable, err.Error(), h.logger)
			return
		}
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
