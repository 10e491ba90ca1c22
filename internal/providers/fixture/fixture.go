// Package fixture serves a fixed league for local runs and tests.
package fixture

import (
	"context"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
)

const (
	providerName = "fixture"
	// LeagueID is the id the sample league is usually loaded under.
	LeagueID = "998877"
)

// Provider returns the same four-team league for any league id.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider.
func (p *Provider) Name() string { return providerName }

// FetchLeague returns a deterministic league. The league id still drives the palette seed.
func (p *Provider) FetchLeague(ctx context.Context, query providers.LeagueQuery) ([]teams.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := providers.RequireLeagueID(query.Normalize()); err != nil {
		return nil, err
	}
	return Entries(), nil
}

// Entries returns a fresh copy of the sample league.
func Entries() []teams.Entry {
	return []teams.Entry{
		{ID: "1", Name: "Metro Tigers", Owner: "alice"},
		{ID: "2", Name: "Team 2", Owner: "bob"},
		{ID: "3", Name: "North Ravens", Owner: "carol"},
		{ID: "4", Name: "Team 4", Owner: "dave"},
	}
}
