// Package logo turns a team's mascot and colors into an image-generation
// prompt and a hosted image URL.
package logo

import (
	"strings"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/branding"
)

// seedJitter is mixed into every seed to avoid the generator's rare blank frames.
const seedJitter uint32 = 0x9e3779b1

// NormalizeColor canonicalizes a color for the prompt. hsl() values pass
// through upper-cased; everything else is sanitized to #RRGGBB.
func NormalizeColor(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(strings.ToLower(v), "hsl") {
		return strings.ToUpper(v)
	}
	return branding.SanitizeColor(v)
}

// BuildPrompt composes the emblem prompt. Palette and no-text constraints are
// repeated in several phrasings to bias the model toward them.
func BuildPrompt(mascot, primary, secondary string) string {
	p := NormalizeColor(primary)
	s := NormalizeColor(secondary)
	lines := []string{
		"professional american football team logo",
		"mascot head emblem: " + strings.TrimSpace(mascot),
		"vector illustration, bold geometric shapes, thick outline, sharp silhouette",
		"clean color blocking, 2–3 colors total, high contrast, centered, symmetrical",
		"flat background, no gradient, no 3d, no photo, no clutter",
		"color palette ONLY: " + p + ", " + s + ", white",
		"dominant color: " + p + "; accent color: " + s,
		"use strictly these colors: " + p + ", " + s + ", white (no other hues)",
		"limit colors to the palette; match hex codes exactly; no extra tints or shades",
		"no text, no typography, no letters, no words, no numbers, no jersey numbers",
		"no watermark, no signature, no captions, no banners, no ribbons, no wordmarks",
	}
	return strings.Join(lines, ", ")
}

// JitterSeed derives the generator seed from a team seed.
func JitterSeed(seed uint32) uint32 {
	return seed ^ seedJitter
}
