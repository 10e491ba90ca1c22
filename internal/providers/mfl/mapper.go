package mfl

import "github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"

func mapEntries(items franchiseList) []teams.Entry {
	out := make([]teams.Entry, 0, len(items))
	for i, f := range items {
		out = append(out, teams.Normalize(teams.Entry{
			ID:    f.ID,
			Name:  f.Name,
			Owner: f.OwnerName,
		}, i))
	}
	return out
}
