package sleeper

const (
	providerName   = "sleeper"
	defaultBaseURL = "https://api.sleeper.app/v1"
)

type rosterResponse struct {
	RosterID *int            `json:"roster_id"`
	OwnerID  *string         `json:"owner_id"`
	Settings *rosterSettings `json:"settings"`
}

type rosterSettings struct {
	TeamName string `json:"team_name"`
}

type userResponse struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}
