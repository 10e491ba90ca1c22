package branding

// ColorPair is one team's primary/secondary combination.
type ColorPair struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Palette is an ordered, league-specific color rotation.
type Palette []ColorPair

// At returns the pair for the team at index, wrapping around the palette.
func (p Palette) At(index int) ColorPair {
	if len(p) == 0 {
		return curated[0]
	}
	n := len(p)
	return p[((index%n)+n)%n]
}

const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223

	minPaletteSize = 3

	// DefaultLeagueSeed replaces a zero seed so the generator never starts from 0.
	DefaultLeagueSeed uint32 = 0x2F6B1D35
)

// curated holds high-contrast pairs in a fixed order; shuffles permute it.
var curated = Palette{
	{Primary: "#00B2CA", Secondary: "#1A1A1A"},
	{Primary: "#C8102E", Secondary: "#FFB612"},
	{Primary: "#003594", Secondary: "#FFA300"},
	{Primary: "#004C54", Secondary: "#A5ACAF"},
	{Primary: "#4F2683", Secondary: "#FFC62F"},
	{Primary: "#FB4F14", Secondary: "#002244"},
	{Primary: "#203731", Secondary: "#FFB612"},
	{Primary: "#0B162A", Secondary: "#C83803"},
	{Primary: "#97233F", Secondary: "#000000"},
	{Primary: "#006778", Secondary: "#D7A22A"},
	{Primary: "#E31837", Secondary: "#FFB81C"},
	{Primary: "#0076B6", Secondary: "#B0B7BC"},
	{Primary: "#125740", Secondary: "#FFFFFF"},
	{Primary: "#241773", Secondary: "#9E7C0C"},
	{Primary: "#D50A0A", Secondary: "#34302B"},
	{Primary: "#69BE28", Secondary: "#002244"},
}

// CuratedSize is the number of distinct pairs available before colors repeat.
func CuratedSize() int { return len(curated) }

// BuildPalette returns max(3, min(count, CuratedSize())) pairs from a
// permutation of the curated list driven by leagueSeed. The same inputs always
// produce the same palette.
func BuildPalette(count int, leagueSeed uint32) Palette {
	shuffled := make(Palette, len(curated))
	copy(shuffled, curated)

	rng := newLCG(leagueSeed)
	for i := len(shuffled) - 1; i >= 1; i-- {
		j := int(rng.next() % uint32(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:paletteSize(count)]
}

// RemixPalette re-rolls a league palette. Each increasing bump yields a
// different but reproducible ordering.
func RemixPalette(count int, leagueSeed, bump uint32) Palette {
	return BuildPalette(count, leagueSeed+bump)
}

func paletteSize(count int) int {
	n := count
	if n > len(curated) {
		n = len(curated)
	}
	if n < minPaletteSize {
		n = minPaletteSize
	}
	return n
}

// lcg is a linear-congruential generator over uint32 state.
type lcg struct {
	state uint32
}

func newLCG(seed uint32) *lcg {
	if seed == 0 {
		seed = DefaultLeagueSeed
	}
	return &lcg{state: seed}
}

func (g *lcg) next() uint32 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state
}
