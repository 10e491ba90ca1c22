package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
)

const errorBodyLimit = 512

// Request describes one GET against a league host.
type Request struct {
	Provider string
	URL      string
	Header   http.Header
}

// GetJSON performs the request and decodes a 2xx body into dest.
// Non-2xx statuses map to the providers error taxonomy.
func GetJSON(ctx context.Context, client HTTPDoer, r Request, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for key, vals := range r.Header {
		for _, v := range vals {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", r.Provider, err)
	}
	defer resp.Body.Close()

	if err := statusError(r.Provider, resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode response: %w", r.Provider, err)
	}
	return nil
}

func statusError(provider string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	text := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			RetryAfter: ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now),
			Message:    provider + " rate limited",
		}
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", provider, providers.ErrLeagueNotFound)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", provider, providers.ErrPrivateLeague)
	default:
		return &providers.StatusError{Provider: provider, StatusCode: resp.StatusCode, Body: text}
	}
}

// ParseRetryAfter reads delta-seconds or an HTTP date; unparseable values yield 0.
func ParseRetryAfter(raw string, now func() time.Time) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := at.Sub(now()); d > 0 {
			return d
		}
	}
	return 0
}
