package logo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	got := BuildPrompt("Tigers", "#0076b6", "B0B7BC")

	want := "professional american football team logo, " +
		"mascot head emblem: Tigers, " +
		"vector illustration, bold geometric shapes, thick outline, sharp silhouette, " +
		"clean color blocking, 2–3 colors total, high contrast, centered, symmetrical, " +
		"flat background, no gradient, no 3d, no photo, no clutter, " +
		"color palette ONLY: #0076B6, #B0B7BC, white, " +
		"dominant color: #0076B6; accent color: #B0B7BC, " +
		"use strictly these colors: #0076B6, #B0B7BC, white (no other hues), " +
		"limit colors to the palette; match hex codes exactly; no extra tints or shades, " +
		"no text, no typography, no letters, no words, no numbers, no jersey numbers, " +
		"no watermark, no signature, no captions, no banners, no ribbons, no wordmarks"
	assert.Equal(t, want, got)
}

func TestBuildPromptDoesNotMentionTeamName(t *testing.T) {
	got := BuildPrompt("Hawks", "#000000", "#FFFFFF")
	assert.NotContains(t, strings.ToLower(got), "north ravens")
	assert.Contains(t, got, "mascot head emblem: Hawks")
}

func TestNormalizeColor(t *testing.T) {
	cases := map[string]string{
		"#00b2ca":             "#00B2CA",
		"00b2ca":              "#00B2CA",
		"B2CA":                "#B2CA00",
		" hsl(120, 50%, 50%)": "HSL(120, 50%, 50%)",
		"HSL(1,2%,3%)":        "HSL(1,2%,3%)",
		"":                    "#000000",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeColor(in), "input %q", in)
	}
}

func TestJitterSeed(t *testing.T) {
	assert.Equal(t, uint32(2654435761), JitterSeed(0))
	assert.Equal(t, uint32(0), JitterSeed(2654435761))
	assert.Equal(t, uint32(42), JitterSeed(JitterSeed(42)))
}
