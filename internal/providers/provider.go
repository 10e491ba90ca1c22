package providers

import (
	"context"
	"strings"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
)

// LeagueQuery identifies a league on a host. SWID and S2 are the ESPN
// private-league cookies and are ignored by the other hosts.
type LeagueQuery struct {
	LeagueID string `json:"leagueId"`
	Season   string `json:"season,omitempty"`
	SWID     string `json:"-"`
	S2       string `json:"-"`
}

// Normalize trims every field.
func (q LeagueQuery) Normalize() LeagueQuery {
	return LeagueQuery{
		LeagueID: strings.TrimSpace(q.LeagueID),
		Season:   strings.TrimSpace(q.Season),
		SWID:     strings.TrimSpace(q.SWID),
		S2:       strings.TrimSpace(q.S2),
	}
}

// LeagueProvider fetches a league's rosters and reduces them to entries.
// Implementations must not return a partial list on error.
type LeagueProvider interface {
	Name() string
	FetchLeague(ctx context.Context, query LeagueQuery) ([]teams.Entry, error)
}

// RequireLeagueID rejects a query without a league id.
func RequireLeagueID(q LeagueQuery) error {
	if q.LeagueID == "" {
		return ErrLeagueIDRequired
	}
	return nil
}

// RequireSeason rejects a query without a league id or season.
func RequireSeason(q LeagueQuery) error {
	if err := RequireLeagueID(q); err != nil {
		return err
	}
	if q.Season == "" {
		return ErrSeasonRequired
	}
	return nil
}
