// Package upstream is the JSON-over-HTTP plumbing shared by the league host clients.
package upstream

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a provider request when no client is supplied.
const DefaultTimeout = 10 * time.Second

// HTTPDoer is the subset of *http.Client the clients use.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResolveHTTPClient returns client, or a client with DefaultTimeout.
func ResolveHTTPClient(client *http.Client) HTTPDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// NormalizeBaseURL falls back to fallback and drops a trailing slash.
func NormalizeBaseURL(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}
