// Package espn loads leagues from the ESPN fantasy API, including private
// leagues when the caller supplies SWID and ESPN_S2 cookies.
package espn

import (
	"context"
	"net/http"
	"net/url"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/upstream"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches team lists from ESPN.
type Client struct {
	baseURL    string
	httpClient upstream.HTTPDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    upstream.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient: upstream.ResolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the provider.
func (c *Client) Name() string { return providerName }

// FetchLeague loads the mTeam view of a league season.
func (c *Client) FetchLeague(ctx context.Context, query providers.LeagueQuery) ([]teams.Entry, error) {
	query = query.Normalize()
	if err := providers.RequireSeason(query); err != nil {
		return nil, err
	}

	var payload leagueResponse
	if err := upstream.GetJSON(ctx, c.httpClient, upstream.Request{
		Provider: providerName,
		URL:      c.leagueURL(query),
		Header:   requestHeader(query),
	}, &payload); err != nil {
		return nil, err
	}
	return mapEntries(payload.Teams), nil
}

func (c *Client) leagueURL(query providers.LeagueQuery) string {
	return c.baseURL + "/seasons/" + url.PathEscape(query.Season) +
		"/segments/0/leagues/" + url.PathEscape(query.LeagueID) + "?view=mTeam"
}

// requestHeader sends the cookies only when both are present.
func requestHeader(query providers.LeagueQuery) http.Header {
	h := http.Header{}
	h.Set("User-Agent", userAgent)
	if query.SWID != "" && query.S2 != "" {
		h.Set("Cookie", "SWID="+query.SWID+"; ESPN_S2="+query.S2)
	}
	return h
}
