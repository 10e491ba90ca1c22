package config

import "time"

const (
	defaultServiceName     = "fantasy-logo-studio"
	defaultProviderTimeout = 10 * time.Second
	defaultLogoTimeout     = 60 * time.Second
	defaultLogoSize        = 1024
	defaultLogoConcurrency = 4
	defaultMaxWorkspaces   = 256
	defaultWorkspaceTTL    = 2 * time.Hour
	defaultJanitorInterval = 5 * time.Minute
)

func positiveDuration(val, fallback time.Duration) time.Duration {
	if val <= 0 {
		return fallback
	}
	return val
}

func positiveInt(val, fallback int) int {
	if val <= 0 {
		return fallback
	}
	return val
}
