package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func respond(status int, body string, header http.Header) roundTripperFunc {
	return func(*http.Request) (*http.Response, error) {
		if header == nil {
			header = make(http.Header)
		}
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     header,
		}, nil
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "https://fallback.test", NormalizeBaseURL("", "https://fallback.test/"))
	assert.Equal(t, "https://api.example.com", NormalizeBaseURL(" https://api.example.com/ ", "x"))
}

func TestResolveHTTPClient(t *testing.T) {
	client, ok := ResolveHTTPClient(nil).(*http.Client)
	require.True(t, ok)
	assert.Equal(t, DefaultTimeout, client.Timeout)

	custom := &http.Client{Timeout: time.Second}
	assert.Same(t, custom, ResolveHTTPClient(custom))
}

func TestGetJSONDecodesAndSendsHeaders(t *testing.T) {
	var seen *http.Request
	client := &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		return respond(http.StatusOK, `{"name":"ok"}`, nil)(r)
	})}

	var out struct {
		Name string `json:"name"`
	}
	err := GetJSON(context.Background(), client, Request{
		Provider: "test",
		URL:      "https://host.test/path",
		Header:   http.Header{"Cookie": {"a=b"}},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Name)
	assert.Equal(t, "a=b", seen.Header.Get("Cookie"))
	assert.Equal(t, "application/json", seen.Header.Get("Accept"))
}

func TestGetJSONMapsStatuses(t *testing.T) {
	cases := []struct {
		status int
		check  func(t *testing.T, err error)
	}{
		{http.StatusNotFound, func(t *testing.T, err error) { assert.ErrorIs(t, err, providers.ErrLeagueNotFound) }},
		{http.StatusUnauthorized, func(t *testing.T, err error) { assert.ErrorIs(t, err, providers.ErrPrivateLeague) }},
		{http.StatusForbidden, func(t *testing.T, err error) { assert.ErrorIs(t, err, providers.ErrPrivateLeague) }},
		{http.StatusTooManyRequests, func(t *testing.T, err error) {
			rl, ok := providers.AsRateLimitError(err)
			require.True(t, ok)
			assert.Equal(t, 7*time.Second, rl.RetryAfter)
		}},
		{http.StatusInternalServerError, func(t *testing.T, err error) {
			var se *providers.StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, 500, se.StatusCode)
			assert.Equal(t, "boom", se.Body)
		}},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client := &http.Client{Transport: respond(tc.status, " boom ", http.Header{"Retry-After": {"7"}})}
			var out map[string]any
			err := GetJSON(context.Background(), client, Request{Provider: "p", URL: "https://host.test"}, &out)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestGetJSONDecodeError(t *testing.T) {
	client := &http.Client{Transport: respond(http.StatusOK, "not json", nil)}
	var out map[string]any
	err := GetJSON(context.Background(), client, Request{Provider: "p", URL: "https://host.test"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestGetJSONTransportError(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})}
	var out map[string]any
	err := GetJSON(context.Background(), client, Request{Provider: "p", URL: "https://host.test"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial failed")
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	assert.Equal(t, time.Duration(0), ParseRetryAfter("", clock))
	assert.Equal(t, 30*time.Second, ParseRetryAfter("30", clock))
	assert.Equal(t, time.Duration(0), ParseRetryAfter("-1", clock))
	assert.Equal(t, time.Minute, ParseRetryAfter(now.Add(time.Minute).Format(http.TimeFormat), clock))
	assert.Equal(t, time.Duration(0), ParseRetryAfter("soon", clock))
}
