package branding

// LeagueSeed folds the digits of a league identifier into a palette seed.
// Overlong identifiers wrap at 32 bits; identifiers without digits, or whose
// digits fold to zero, get DefaultLeagueSeed.
func LeagueSeed(leagueID string) uint32 {
	var seed uint32
	for i := 0; i < len(leagueID); i++ {
		c := leagueID[i]
		if c < '0' || c > '9' {
			continue
		}
		seed = seed*10 + uint32(c-'0')
	}
	if seed == 0 {
		return DefaultLeagueSeed
	}
	return seed
}
