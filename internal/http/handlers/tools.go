package handlers

import (
	"fmt"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/branding"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/league"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
)

const defaultPaletteCount = 12

type generateLogoRequest struct {
	Team *logoTeam `json:"team"`
}

type logoTeam struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Owner     string  `json:"owner"`
	Mascot    string  `json:"mascot"`
	Primary   string  `json:"primary"`
	Secondary string  `json:"secondary"`
	Seed      *uint32 `json:"seed"`
	LogoURL   *string `json:"logoUrl"`
}

// GenerateLogo builds a logo URL for a team posted in the body, without a workspace.
func (h *Handler) GenerateLogo(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.generator == nil {
		writeServiceError(w, r, league.ErrGeneratorUnavailable, logger)
		return
	}
	var req generateLogoRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	if req.Team == nil {
		writeError(w, r, nethttp.StatusBadRequest, "team is required", logger)
		return
	}
	if strings.TrimSpace(req.Team.Primary) == "" || strings.TrimSpace(req.Team.Secondary) == "" {
		writeError(w, r, nethttp.StatusBadRequest, "primary and secondary colors are required", logger)
		return
	}

	url, err := h.generator.Generate(r.Context(), logo.Spec{
		TeamID:    req.Team.ID,
		Mascot:    req.Team.Mascot,
		Primary:   req.Team.Primary,
		Secondary: req.Team.Secondary,
		Seed:      req.Team.Seed,
	})
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"url": url}, logger)
}

// Mascot derives a mascot from a team name and owner.
func (h *Handler) Mascot(w nethttp.ResponseWriter, r *nethttp.Request) {
	q := r.URL.Query()
	name, owner := q.Get("name"), q.Get("owner")
	writeJSON(w, nethttp.StatusOK, map[string]string{
		"name":   name,
		"owner":  owner,
		"mascot": branding.DeriveMascot(name, owner),
	}, loggerFromContext(r, h.logger))
}

type paletteResponse struct {
	Seed    uint32           `json:"seed"`
	Bump    uint32           `json:"bump"`
	Palette branding.Palette `json:"palette"`
}

// Palette returns the league palette for a seed or league id.
func (h *Handler) Palette(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	q := r.URL.Query()

	count := defaultPaletteCount
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "count must be an integer", logger)
			return
		}
		count = n
	}
	bump, err := parseUint32(q.Get("bump"), "bump")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}

	var seed uint32
	if leagueID := q.Get("leagueId"); leagueID != "" {
		seed = branding.LeagueSeed(leagueID)
	} else {
		seed, err = parseUint32(q.Get("seed"), "seed")
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
			return
		}
		if seed == 0 {
			seed = branding.DefaultLeagueSeed
		}
	}

	writeJSON(w, nethttp.StatusOK, paletteResponse{
		Seed:    seed,
		Bump:    bump,
		Palette: branding.RemixPalette(count, seed, bump),
	}, logger)
}

// Color sanitizes a free-form color value.
func (h *Handler) Color(w nethttp.ResponseWriter, r *nethttp.Request) {
	value := r.URL.Query().Get("value")
	writeJSON(w, nethttp.StatusOK, map[string]string{
		"value": value,
		"color": branding.SanitizeColor(value),
	}, loggerFromContext(r, h.logger))
}

func parseUint32(raw, field string) (uint32, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be an unsigned 32-bit integer", field)
	}
	return uint32(n), nil
}
