package espn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
)

func mapEntries(items []teamResponse) []teams.Entry {
	out := make([]teams.Entry, 0, len(items))
	for i, t := range items {
		owner := ""
		if len(t.Owners) > 0 {
			owner = t.Owners[0]
		}
		out = append(out, teams.Normalize(teams.Entry{
			ID:    strconv.Itoa(t.ID),
			Name:  teamName(t),
			Owner: owner,
		}, i))
	}
	return out
}

func teamName(t teamResponse) string {
	location := strings.TrimSpace(t.Location)
	nickname := strings.TrimSpace(t.Nickname)
	if location != "" && nickname != "" {
		return location + " " + nickname
	}
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	return fmt.Sprintf("Team %d", t.ID)
}
