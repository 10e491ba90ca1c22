package providers

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLeagueIDRequired    = errors.New("league id is required")
	ErrSeasonRequired      = errors.New("season is required")
	ErrLeagueNotFound      = errors.New("league not found")
	ErrPrivateLeague       = errors.New("league is private; provide SWID and ESPN_S2 cookies")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrUnknownProvider     = errors.New("unknown provider")
)

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// StatusError is any other non-2xx upstream response.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// IsValidation reports whether err was caused by a bad query rather than the upstream.
func IsValidation(err error) bool {
	return errors.Is(err, ErrLeagueIDRequired) ||
		errors.Is(err, ErrSeasonRequired) ||
		errors.Is(err, ErrUnknownProvider)
}
