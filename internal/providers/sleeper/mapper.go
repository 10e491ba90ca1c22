package sleeper

import (
	"strconv"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
)

func mapEntries(rosters []rosterResponse, users []userResponse) []teams.Entry {
	byID := make(map[string]userResponse, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	out := make([]teams.Entry, 0, len(rosters))
	for i, r := range rosters {
		var owner *userResponse
		if r.OwnerID != nil {
			if u, ok := byID[*r.OwnerID]; ok {
				owner = &u
			}
		}
		out = append(out, teams.Normalize(teams.Entry{
			ID:    rosterID(r, i),
			Name:  teamName(r, owner),
			Owner: ownerName(owner),
		}, i))
	}
	return out
}

func rosterID(r rosterResponse, index int) string {
	if r.RosterID != nil {
		return strconv.Itoa(*r.RosterID)
	}
	return strconv.Itoa(index)
}

func teamName(r rosterResponse, owner *userResponse) string {
	if r.Settings != nil && r.Settings.TeamName != "" {
		return r.Settings.TeamName
	}
	if owner != nil && owner.Metadata != nil {
		return owner.Metadata.TeamName
	}
	return ""
}

func ownerName(owner *userResponse) string {
	if owner == nil {
		return ""
	}
	return owner.DisplayName
}
