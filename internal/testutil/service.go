package testutil

import (
	"log/slog"
	"sync/atomic"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/league"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logo"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/store"
)

// NewLeagueService builds a league service over an in-memory store with the
// given providers. Image seeds count up from 1 so results are repeatable.
func NewLeagueService(gen league.LogoGenerator, logger *slog.Logger, items ...providers.LeagueProvider) *league.Service {
	var seq atomic.Uint32
	return league.NewService(league.Config{
		Registry:  providers.NewRegistry(items...),
		Store:     store.NewMemoryStore(0),
		Generator: gen,
		Logger:    logger,
		SeedFunc:  func() uint32 { return seq.Add(1) },
	})
}

// NewOfflineGenerator returns a logo generator that never touches the network.
func NewOfflineGenerator(baseURL string) *logo.Generator {
	return logo.NewGenerator(logo.Config{BaseURL: baseURL, Width: 512, Height: 512})
}
