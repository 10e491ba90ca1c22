package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
)

// LoadLeague fetches a league and returns the new workspace.
func (h *Handler) LoadLeague(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()
	provider := strings.TrimSpace(q.Get("provider"))
	if provider == "" {
		writeError(w, r, nethttp.StatusBadRequest, "provider is required", logger)
		return
	}

	ws, err := h.league.Load(r.Context(), provider, providers.LeagueQuery{
		LeagueID: q.Get("leagueId"),
		Season:   q.Get("season"),
		SWID:     q.Get("swid"),
		S2:       q.Get("s2"),
	})
	if err != nil {
		logging.Warn(logger, "league load failed",
			slog.String(logging.FieldProvider, provider),
			slog.Any(logging.FieldError, err),
		)
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ws, logger)
}

// GetWorkspace returns the current teams of a workspace.
func (h *Handler) GetWorkspace(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	ws, err := h.league.Workspace(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ws, logger)
}

// ClearWorkspace drops a workspace.
func (h *Handler) ClearWorkspace(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if err := h.league.Clear(r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	w.WriteHeader(nethttp.StatusNoContent)
}

// PatchTeam applies a user edit to one team.
func (h *Handler) PatchTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	var patch teams.Patch
	if err := decodeBody(w, r, &patch, false); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	team, err := h.league.PatchTeam(r.PathValue("id"), r.PathValue("teamId"), patch)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, team, logger)
}

// Remix re-rolls the workspace palette.
func (h *Handler) Remix(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	ws, err := h.league.Remix(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, ws, logger)
}

type logosRequest struct {
	TeamIDs []string `json:"teamIds"`
}

// GenerateLogos generates logos for some or all teams of a workspace.
func (h *Handler) GenerateLogos(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	var req logosRequest
	if err := decodeBody(w, r, &req, true); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	batch, err := h.league.GenerateLogos(r.Context(), r.PathValue("id"), req.TeamIDs)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, batch, logger)
}
