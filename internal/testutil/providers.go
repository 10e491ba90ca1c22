package testutil

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
)

// StubProvider returns configured entries and error while tracking calls.
type StubProvider struct {
	NameVal string
	Entries []teams.Entry
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
	// LastQuery holds the most recent query passed to FetchLeague.
	LastQuery providers.LeagueQuery
}

func (s *StubProvider) Name() string {
	if s.NameVal == "" {
		return "stub"
	}
	return s.NameVal
}

func (s *StubProvider) FetchLeague(ctx context.Context, query providers.LeagueQuery) ([]teams.Entry, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.LastQuery = query
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]teams.Entry(nil), s.Entries...), nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	NameVal string
	Err     error
}

func (p ErrProvider) Name() string { return p.NameVal }

func (p ErrProvider) FetchLeague(ctx context.Context, query providers.LeagueQuery) ([]teams.Entry, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) Name() string { return "unavailable" }

func (UnavailableProvider) FetchLeague(ctx context.Context, query providers.LeagueQuery) ([]teams.Entry, error) {
	return nil, providers.ErrProviderUnavailable
}
