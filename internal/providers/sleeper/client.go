// Package sleeper loads leagues from the public Sleeper API.
package sleeper

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/upstream"
)

// Config controls how the Sleeper client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches rosters and users for a Sleeper league.
type Client struct {
	baseURL    string
	httpClient upstream.HTTPDoer
}

// NewClient constructs a Sleeper client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    upstream.NormalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient: upstream.ResolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the provider.
func (c *Client) Name() string { return providerName }

// FetchLeague loads rosters and users concurrently and joins them by owner id.
// Season is ignored; Sleeper league ids are season-specific.
func (c *Client) FetchLeague(ctx context.Context, query providers.LeagueQuery) ([]teams.Entry, error) {
	query = query.Normalize()
	if err := providers.RequireLeagueID(query); err != nil {
		return nil, err
	}

	leagueURL := c.baseURL + "/league/" + url.PathEscape(query.LeagueID)
	var (
		rosters []rosterResponse
		users   []userResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return upstream.GetJSON(gctx, c.httpClient, upstream.Request{
			Provider: providerName,
			URL:      leagueURL + "/rosters",
		}, &rosters)
	})
	g.Go(func() error {
		return upstream.GetJSON(gctx, c.httpClient, upstream.Request{
			Provider: providerName,
			URL:      leagueURL + "/users",
		}, &users)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Sleeper answers unknown league ids with 200 and a null body.
	if rosters == nil {
		return nil, providers.ErrLeagueNotFound
	}
	return mapEntries(rosters, users), nil
}
