package logo

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultBaseURL = "https://image.pollinations.ai"
	defaultSize    = 1024
)

// URLBuilder renders prompt URLs for the hosted generator.
type URLBuilder struct {
	BaseURL string
	Width   int
	Height  int
}

// Build returns the image URL for prompt and an already-jittered seed.
func (b URLBuilder) Build(prompt string, seed uint32) string {
	base := strings.TrimSuffix(strings.TrimSpace(b.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	width, height := b.Width, b.Height
	if width <= 0 {
		width = defaultSize
	}
	if height <= 0 {
		height = defaultSize
	}

	// Parameter order is fixed so identical inputs give byte-identical URLs.
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("/prompt/")
	sb.WriteString(url.PathEscape(prompt))
	sb.WriteString("?seed=")
	sb.WriteString(strconv.FormatUint(uint64(seed), 10))
	sb.WriteString("&width=")
	sb.WriteString(strconv.Itoa(width))
	sb.WriteString("&height=")
	sb.WriteString(strconv.Itoa(height))
	sb.WriteString("&nologo=true&enhance=true")
	return sb.String()
}
