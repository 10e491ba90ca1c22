package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/config"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/metrics"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/espn"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/fixture"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/mfl"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/providers/sleeper"
)

// providerFactory assembles every league provider behind the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) *providers.Registry {
	client := &http.Client{Timeout: cfg.Providers.Timeout}
	base := []providers.LeagueProvider{
		sleeper.NewClient(sleeper.Config{BaseURL: cfg.Providers.SleeperBaseURL, HTTPClient: client}),
		mfl.NewClient(mfl.Config{BaseURL: cfg.Providers.MFLBaseURL, HTTPClient: client}),
		espn.NewClient(espn.Config{BaseURL: cfg.Providers.ESPNBaseURL, HTTPClient: client}),
		fixture.New(),
	}
	return f.wrap(base...)
}

func (f providerFactory) wrap(items ...providers.LeagueProvider) *providers.Registry {
	wrapped := make([]providers.LeagueProvider, 0, len(items))
	for _, p := range items {
		wrapped = append(wrapped, providers.NewInstrumentedProvider(p, f.logger, f.metrics))
	}
	return providers.NewRegistry(wrapped...)
}
