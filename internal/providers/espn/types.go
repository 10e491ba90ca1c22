package espn

const (
	providerName   = "espn"
	defaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	userAgent      = "Mozilla/5.0"
)

type leagueResponse struct {
	Teams []teamResponse `json:"teams"`
}

type teamResponse struct {
	ID       int      `json:"id"`
	Location string   `json:"location"`
	Nickname string   `json:"nickname"`
	Name     string   `json:"name"`
	Owners   []string `json:"owners"`
}
