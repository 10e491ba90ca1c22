package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/league"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
)

// writeServiceError maps a league, provider or logo error onto a status code.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if rl, ok := providers.AsRateLimitError(err); ok {
		if secs := retryAfterSeconds(rl.RetryAfter); secs > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(secs))
		}
		writeError(w, r, http.StatusTooManyRequests, "league host rate limited; try again later", logger)
		return
	}

	switch {
	case providers.IsValidation(err),
		errors.Is(err, league.ErrInvalidPatch),
		errors.Is(err, logo.ErrMascotRequired):
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, league.ErrWorkspaceNotFound),
		errors.Is(err, league.ErrTeamNotFound):
		writeError(w, r, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, providers.ErrLeagueNotFound):
		writeError(w, r, http.StatusNotFound, providers.ErrLeagueNotFound.Error(), logger)
	case errors.Is(err, providers.ErrPrivateLeague):
		writeError(w, r, http.StatusForbidden, providers.ErrPrivateLeague.Error(), logger)
	case errors.Is(err, league.ErrGeneratorUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, err.Error(), logger)
	case errors.Is(err, context.Canceled):
		writeError(w, r, http.StatusServiceUnavailable, "request canceled", logger)
	default:
		writeError(w, r, http.StatusBadGateway, "upstream request failed", logger)
	}
}

func retryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return secs
}
