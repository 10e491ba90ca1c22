package branding

import "strings"

const hexDigits = 6

// SanitizeColor normalizes any user input to "#RRGGBB": non-hex characters are
// dropped, the first six digits kept, short values right-padded with "0".
func SanitizeColor(input string) string {
	var b strings.Builder
	b.Grow(hexDigits + 1)
	b.WriteByte('#')

	n := 0
	for i := 0; i < len(input) && n < hexDigits; i++ {
		c := input[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'F':
			b.WriteByte(c)
		case c >= 'a' && c <= 'f':
			b.WriteByte(c - 'a' + 'A')
		default:
			continue
		}
		n++
	}
	for ; n < hexDigits; n++ {
		b.WriteByte('0')
	}
	return b.String()
}
