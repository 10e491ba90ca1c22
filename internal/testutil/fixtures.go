package testutil

import (
	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
)

// SampleEntries returns a small roster in the shape providers emit.
func SampleEntries() []teams.Entry {
	return []teams.Entry{
		{ID: "1", Name: "Metro Tigers", Owner: "alice"},
		{ID: "2", Name: "", Owner: "bob"},
		{ID: "3", Name: "North Ravens", Owner: "carol"},
	}
}

// SampleTeam returns a fully branded team with the provided id.
func SampleTeam(id string) teams.Team {
	return teams.Team{
		ID:        id,
		Name:      "Team " + id,
		Owner:     "owner-" + id,
		Mascot:    "Hawks",
		Primary:   "#0076B6",
		Secondary: "#B0B7BC",
		Seed:      42,
	}
}
