package mfl

import (
	"bytes"
	"encoding/json"
)

const (
	providerName   = "mfl"
	defaultBaseURL = "https://api.myfantasyleague.com"
)

type leagueResponse struct {
	League *struct {
		Franchises struct {
			Franchise franchiseList `json:"franchise"`
		} `json:"franchises"`
	} `json:"league"`
	Error *struct {
		Text string `json:"$t"`
	} `json:"error"`
}

type franchiseResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
}

// franchiseList accepts both a JSON array and a lone object; MFL collapses
// single-element lists.
type franchiseList []franchiseResponse

func (l *franchiseList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '{' {
		var one franchiseResponse
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*l = franchiseList{one}
		return nil
	}
	var many []franchiseResponse
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}
