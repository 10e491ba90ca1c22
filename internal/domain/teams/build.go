package teams

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/branding"
)

// SeedFunc supplies per-team image variation seeds.
type SeedFunc func() uint32

// Build turns normalized entries into Teams. Mascots come from each entry's
// name and owner, colors from the league palette by position. Team ids are
// unique within the result.
func Build(entries []Entry, leagueSeed uint32, seedFn SeedFunc) []Team {
	palette := branding.BuildPalette(len(entries), leagueSeed)
	ids := uniqueIDs(entries)
	out := make([]Team, 0, len(entries))
	for i, e := range entries {
		e = Normalize(e, i)
		e.ID = ids[i]
		colors := palette.At(i)
		var seed uint32
		if seedFn != nil {
			seed = seedFn()
		}
		out = append(out, Team{
			ID:        e.ID,
			Name:      e.Name,
			Owner:     e.Owner,
			Mascot:    branding.DeriveMascot(e.Name, e.Owner),
			Primary:   colors.Primary,
			Secondary: colors.Secondary,
			Seed:      seed,
		})
	}
	return out
}

// uniqueIDs returns the normalized id for each entry. Explicit ids keep
// precedence over generated ones; repeats get a "-N" suffix.
func uniqueIDs(entries []Entry) []string {
	explicit := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if id := strings.TrimSpace(e.ID); id != "" {
			explicit[id] = struct{}{}
		}
	}
	seen := make(map[string]struct{}, len(entries))
	ids := make([]string, len(entries))
	for i, e := range entries {
		id := strings.TrimSpace(e.ID)
		_, dup := seen[id]
		if id == "" {
			id = strconv.Itoa(i)
			_, reserved := explicit[id]
			_, dup = seen[id]
			dup = dup || reserved
		}
		if dup {
			id = freeID(id, seen, explicit)
		}
		seen[id] = struct{}{}
		ids[i] = id
	}
	return ids
}

func freeID(base string, seen, explicit map[string]struct{}) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", base, n)
		_, used := seen[candidate]
		_, reserved := explicit[candidate]
		if !used && !reserved {
			return candidate
		}
	}
}

// ApplyPalette overwrites every team's colors from palette, by position.
func ApplyPalette(items []Team, palette branding.Palette) {
	for i := range items {
		colors := palette.At(i)
		items[i].Primary = colors.Primary
		items[i].Secondary = colors.Secondary
	}
}

// Normalize fills the id, name and owner defaults for the entry at index.
func Normalize(e Entry, index int) Entry {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		e.ID = strconv.Itoa(index)
	}
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		e.Name = DefaultName(index)
	}
	e.Owner = strings.TrimSpace(e.Owner)
	if e.Owner == "" {
		e.Owner = UnknownOwner
	}
	return e
}
