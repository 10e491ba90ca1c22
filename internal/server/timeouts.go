package server

import (
	"time"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/branding"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/config"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 2 * time.Minute
	idleTimeout  = 60 * time.Second
	// writeMargin is left after a logo batch for encoding the response.
	writeMargin = 30 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeoutFor sizes the write timeout to fit a verified logo batch for a
// full palette of teams. It never goes below writeTimeout.
func writeTimeoutFor(logo config.LogoConfig) time.Duration {
	if !logo.Verify {
		return writeTimeout
	}
	concurrency := max(logo.Concurrency, 1)
	rounds := (branding.CuratedSize() + concurrency - 1) / concurrency
	return max(writeTimeout, time.Duration(rounds)*logo.Timeout+writeMargin)
}

// batchTimeoutFor bounds a logo batch so it finishes before the write deadline.
func batchTimeoutFor(logo config.LogoConfig) time.Duration {
	return writeTimeoutFor(logo) - writeMargin
}
