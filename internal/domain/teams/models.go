package teams

import (
	"fmt"
	"time"
)

// UnknownOwner is used when a provider does not report an owner.
const UnknownOwner = "Unknown"

// Entry is the provider-agnostic roster record every league provider reduces to.
type Entry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

// Team is the presentation record for one franchise. Mascot and colors are
// suggestions derived at load time; users may edit them afterwards.
type Team struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Owner     string  `json:"owner"`
	Mascot    string  `json:"mascot"`
	Primary   string  `json:"primary"`
	Secondary string  `json:"secondary"`
	Seed      uint32  `json:"seed"`
	LogoURL   *string `json:"logoUrl"`
}

// Patch carries a partial user edit. Nil fields are left untouched.
type Patch struct {
	Name      *string `json:"name,omitempty"`
	Owner     *string `json:"owner,omitempty"`
	Mascot    *string `json:"mascot,omitempty"`
	Primary   *string `json:"primary,omitempty"`
	Secondary *string `json:"secondary,omitempty"`
	Seed      *uint32 `json:"seed,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Owner == nil && p.Mascot == nil &&
		p.Primary == nil && p.Secondary == nil && p.Seed == nil
}

// Workspace is one loaded league: the whole team collection plus the seed
// state needed to re-roll its palette.
type Workspace struct {
	ID         string    `json:"id"`
	Provider   string    `json:"provider"`
	LeagueID   string    `json:"leagueId"`
	Season     string    `json:"season,omitempty"`
	LeagueSeed uint32    `json:"leagueSeed"`
	RemixCount uint32    `json:"remixCount"`
	Teams      []Team    `json:"teams"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TeamIndex returns the position of the team with id, or -1.
func (w Workspace) TeamIndex(id string) int {
	for i, t := range w.Teams {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy safe to hand out of a store.
func (w Workspace) Clone() Workspace {
	out := w
	out.Teams = make([]Team, len(w.Teams))
	for i, t := range w.Teams {
		if t.LogoURL != nil {
			url := *t.LogoURL
			t.LogoURL = &url
		}
		out.Teams[i] = t
	}
	return out
}

// DefaultName is the placeholder for a team at a zero-based position.
func DefaultName(index int) string {
	return fmt.Sprintf("Team %d", index+1)
}
