// Package league orchestrates loading a league into a workspace and the
// edits a user makes to it afterwards.
package league

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/branding"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/metrics"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/store"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrInvalidPatch      = errors.New("invalid team edit")
)

// Store defines the contract for holding workspaces.
type Store interface {
	Get(id string) (teams.Workspace, bool)
	Put(ws teams.Workspace)
	Update(id string, fn func(*teams.Workspace) error) (teams.Workspace, error)
	Delete(id string) bool
}

// LogoGenerator produces logo URLs for a batch of teams.
type LogoGenerator interface {
	GenerateBatch(ctx context.Context, specs []logo.Spec) []logo.Result
}

// Config wires a Service.
type Config struct {
	Registry  *providers.Registry
	Store     Store
	Generator LogoGenerator
	Logger    *slog.Logger
	Recorder  *metrics.Recorder
	// SeedFunc draws per-team image seeds; defaults to logo.RandomSeed.
	SeedFunc teams.SeedFunc
}

// Service coordinates league loads and workspace edits.
type Service struct {
	registry  *providers.Registry
	store     Store
	generator LogoGenerator
	logger    *slog.Logger
	recorder  *metrics.Recorder
	seedFn    teams.SeedFunc
	now       func() time.Time
	newID     func() string
}

// NewService constructs a Service.
func NewService(cfg Config) *Service {
	seedFn := cfg.SeedFunc
	if seedFn == nil {
		seedFn = logo.RandomSeed
	}
	st := cfg.Store
	if st == nil {
		st = store.NewMemoryStore(0)
	}
	return &Service{
		registry:  cfg.Registry,
		store:     st,
		generator: cfg.Generator,
		logger:    cfg.Logger,
		recorder:  cfg.Recorder,
		seedFn:    seedFn,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Load fetches a league from the named provider and stores it as a new
// workspace. A failed load stores nothing.
func (s *Service) Load(ctx context.Context, providerName string, query providers.LeagueQuery) (teams.Workspace, error) {
	query = query.Normalize()
	provider, err := s.registry.Get(providerName)
	if err != nil {
		return teams.Workspace{}, err
	}
	if err := providers.RequireLeagueID(query); err != nil {
		return teams.Workspace{}, err
	}

	logger := logging.FromContext(ctx, s.logger)
	start := s.now()
	entries, err := provider.FetchLeague(ctx, query)
	s.recorder.RecordLeagueLoad(provider.Name(), len(entries), s.now().Sub(start), err)
	if err != nil {
		return teams.Workspace{}, err
	}

	leagueSeed := branding.LeagueSeed(query.LeagueID)
	now := s.now().UTC()
	ws := teams.Workspace{
		ID:         s.newID(),
		Provider:   provider.Name(),
		LeagueID:   query.LeagueID,
		Season:     query.Season,
		LeagueSeed: leagueSeed,
		Teams:      teams.Build(entries, leagueSeed, s.seedFn),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.store.Put(ws)

	logging.Info(logger, "league loaded",
		slog.String(logging.FieldProvider, ws.Provider),
		slog.String(logging.FieldLeagueID, ws.LeagueID),
		slog.String(logging.FieldWorkspace, ws.ID),
		slog.Int(logging.FieldCount, len(ws.Teams)),
	)
	return ws, nil
}

// Workspace returns the current team collection.
func (s *Service) Workspace(id string) (teams.Workspace, error) {
	ws, ok := s.store.Get(id)
	if !ok {
		return teams.Workspace{}, ErrWorkspaceNotFound
	}
	return ws, nil
}

// Clear drops the whole team collection.
func (s *Service) Clear(id string) error {
	if !s.store.Delete(id) {
		return ErrWorkspaceNotFound
	}
	return nil
}

// PatchTeam applies a user edit to one team.
func (s *Service) PatchTeam(wsID, teamID string, patch teams.Patch) (teams.Team, error) {
	if patch.IsEmpty() {
		return teams.Team{}, fmt.Errorf("%w: no fields to update", ErrInvalidPatch)
	}
	var updated teams.Team
	_, err := s.store.Update(wsID, func(ws *teams.Workspace) error {
		idx := ws.TeamIndex(teamID)
		if idx < 0 {
			return ErrTeamNotFound
		}
		team, err := applyPatch(ws.Teams[idx], patch)
		if err != nil {
			return err
		}
		ws.Teams[idx] = team
		ws.UpdatedAt = s.now().UTC()
		updated = team
		return nil
	})
	if err != nil {
		return teams.Team{}, mapStoreErr(err)
	}
	return updated, nil
}

// Remix re-rolls the workspace palette. Mascots and names are untouched.
func (s *Service) Remix(wsID string) (teams.Workspace, error) {
	ws, err := s.store.Update(wsID, func(ws *teams.Workspace) error {
		ws.RemixCount++
		palette := branding.RemixPalette(len(ws.Teams), ws.LeagueSeed, ws.RemixCount)
		teams.ApplyPalette(ws.Teams, palette)
		for i := range ws.Teams {
			ws.Teams[i].LogoURL = nil
		}
		ws.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return teams.Workspace{}, mapStoreErr(err)
	}
	return ws, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrWorkspaceNotFound
	}
	return err
}
