package league

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/branding"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
)

// applyPatch returns t with patch applied. Any change to what the logo is
// drawn from drops the stale logo URL.
func applyPatch(t teams.Team, patch teams.Patch) (teams.Team, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return t, fmt.Errorf("%w: name must not be blank", ErrInvalidPatch)
		}
		t.Name = name
	}
	if patch.Owner != nil {
		owner := strings.TrimSpace(*patch.Owner)
		if owner == "" {
			owner = teams.UnknownOwner
		}
		t.Owner = owner
	}

	visual := false
	if patch.Mascot != nil {
		mascot := strings.TrimSpace(*patch.Mascot)
		if mascot == "" {
			return t, fmt.Errorf("%w: mascot must not be blank", ErrInvalidPatch)
		}
		visual = visual || mascot != t.Mascot
		t.Mascot = mascot
	}
	if patch.Primary != nil {
		primary := branding.SanitizeColor(*patch.Primary)
		visual = visual || primary != t.Primary
		t.Primary = primary
	}
	if patch.Secondary != nil {
		secondary := branding.SanitizeColor(*patch.Secondary)
		visual = visual || secondary != t.Secondary
		t.Secondary = secondary
	}
	if patch.Seed != nil {
		visual = visual || *patch.Seed != t.Seed
		t.Seed = *patch.Seed
	}
	if visual {
		t.LogoURL = nil
	}
	return t, nil
}
