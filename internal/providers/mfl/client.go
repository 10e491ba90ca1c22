// Package mfl loads leagues from the MyFantasyLeague export API.
package mfl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/upstream"
)

// Config controls how the MFL client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches franchise lists from MFL.
type Client struct {
	baseURL    string
	httpClient upstream.HTTPDoer
}

// NewClient constructs an MFL client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    upstream.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient: upstream.ResolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the provider.
func (c *Client) Name() string { return providerName }

// FetchLeague loads the league export for a season.
func (c *Client) FetchLeague(ctx context.Context, query providers.LeagueQuery) ([]teams.Entry, error) {
	query = query.Normalize()
	if err := providers.RequireSeason(query); err != nil {
		return nil, err
	}

	var payload leagueResponse
	if err := upstream.GetJSON(ctx, c.httpClient, upstream.Request{
		Provider: providerName,
		URL:      c.exportURL(query),
	}, &payload); err != nil {
		return nil, err
	}
	// MFL reports bad league ids as a 200 with an error object.
	if payload.League == nil {
		if payload.Error != nil && payload.Error.Text != "" {
			return nil, fmt.Errorf("%s: %w: %s", providerName, providers.ErrLeagueNotFound, payload.Error.Text)
		}
		return nil, fmt.Errorf("%s: %w", providerName, providers.ErrLeagueNotFound)
	}
	return mapEntries(payload.League.Franchises.Franchise), nil
}

func (c *Client) exportURL(query providers.LeagueQuery) string {
	q := url.Values{}
	q.Set("TYPE", "league")
	q.Set("L", query.LeagueID)
	q.Set("W", "1")
	q.Set("JSON", "1")
	return c.baseURL + "/" + url.PathEscape(query.Season) + "/export?" + q.Encode()
}
