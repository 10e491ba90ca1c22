package league

import (
	"context"
	"errors"
	"log/slog"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
)

// ErrGeneratorUnavailable is returned when no logo generator is configured.
var ErrGeneratorUnavailable = errors.New("logo generator unavailable")

// LogoBatch is the outcome of a workspace logo run.
type LogoBatch struct {
	Workspace teams.Workspace `json:"workspace"`
	Results   []logo.Result   `json:"results"`
}

// GenerateLogos generates logos for teamIDs (every team when empty) and stores
// each successful URL on its team. Failures are reported per team.
func (s *Service) GenerateLogos(ctx context.Context, wsID string, teamIDs []string) (LogoBatch, error) {
	if s.generator == nil {
		return LogoBatch{}, ErrGeneratorUnavailable
	}
	ws, ok := s.store.Get(wsID)
	if !ok {
		return LogoBatch{}, ErrWorkspaceNotFound
	}

	selected, err := selectTeams(ws, teamIDs)
	if err != nil {
		return LogoBatch{}, err
	}
	specs := make([]logo.Spec, 0, len(selected))
	for _, t := range selected {
		specs = append(specs, logo.SpecFromTeam(t))
	}

	results := s.generator.GenerateBatch(ctx, specs)

	updated, err := s.store.Update(wsID, func(ws *teams.Workspace) error {
		for i, r := range results {
			if r.Error != "" {
				continue
			}
			idx := ws.TeamIndex(r.TeamID)
			if idx < 0 {
				continue
			}
			// Skip teams edited while their logo was being generated.
			if !sameLook(ws.Teams[idx], selected[i]) {
				continue
			}
			url := r.URL
			ws.Teams[idx].LogoURL = &url
		}
		ws.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return LogoBatch{Results: results}, mapStoreErr(err)
	}

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	logging.Info(logging.FromContext(ctx, s.logger), "logos generated",
		slog.String(logging.FieldWorkspace, wsID),
		slog.Int(logging.FieldCount, len(results)),
		slog.Int("failed", failed),
	)
	return LogoBatch{Workspace: updated, Results: results}, nil
}

func selectTeams(ws teams.Workspace, ids []string) ([]teams.Team, error) {
	if len(ids) == 0 {
		return ws.Teams, nil
	}
	out := make([]teams.Team, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		idx := ws.TeamIndex(id)
		if idx < 0 {
			return nil, ErrTeamNotFound
		}
		out = append(out, ws.Teams[idx])
	}
	return out, nil
}

func sameLook(a, b teams.Team) bool {
	return a.Mascot == b.Mascot && a.Primary == b.Primary &&
		a.Secondary == b.Secondary && a.Seed == b.Seed
}
