package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	leagueLoads     int
	leagueFailures  int
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about league providers and
// logo generation, mirrored to OpenTelemetry when instruments are attached.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	logos   LogoStats
	expired int
	otel    *otelInstruments
}

// LogoStats counts logo generation outcomes.
type LogoStats struct {
	Generated int
	Failed    int
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.statsLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.statsLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot returns a copy of the current stats for the provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
	LeagueLoads     int
	LeagueFailures  int
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
		LeagueLoads:     stats.leagueLoads,
		LeagueFailures:  stats.leagueFailures,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordLeagueLoad counts a league load through a provider and how many teams it produced.
func (r *Recorder) RecordLeagueLoad(provider string, teams int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.statsLocked(provider)
	if err != nil {
		stats.leagueFailures++
	} else {
		stats.leagueLoads++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLeagueLoad(provider, teams, duration, err)
	}
}

// RecordLogoGeneration counts one logo generation attempt.
func (r *Recorder) RecordLogoGeneration(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if err != nil {
		r.logos.Failed++
	} else {
		r.logos.Generated++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLogo(duration, err)
	}
}

// Logos returns the logo generation counters.
func (r *Recorder) Logos() LogoStats {
	if r == nil {
		return LogoStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logos
}

// RecordWorkspacesExpired counts workspaces dropped for being idle.
func (r *Recorder) RecordWorkspacesExpired(removed int) {
	if r == nil || removed <= 0 {
		return
	}
	r.mu.Lock()
	r.expired += removed
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordExpired(removed)
	}
}

// WorkspacesExpired returns how many workspaces have been expired.
func (r *Recorder) WorkspacesExpired() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expired
}

func (r *Recorder) statsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
