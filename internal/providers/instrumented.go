package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/domain/teams"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/metrics"
)

// instrumentedProvider wraps a LeagueProvider with metrics and failure logging.
// It makes exactly one upstream attempt per call.
type instrumentedProvider struct {
	inner    LeagueProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumentedProvider decorates inner. A nil inner yields ErrProviderUnavailable on fetch.
func NewInstrumentedProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder) LeagueProvider {
	return &instrumentedProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) Name() string {
	if p.inner == nil {
		return "unavailable"
	}
	return p.inner.Name()
}

func (p *instrumentedProvider) FetchLeague(ctx context.Context, query LeagueQuery) ([]teams.Entry, error) {
	name := p.Name()
	logger := logging.FromContext(ctx, p.logger)
	if p.inner == nil {
		logWithProvider(ctx, logger, slog.LevelWarn, name, "provider unavailable")
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	entries, err := p.inner.FetchLeague(ctx, query)
	elapsed := p.now().Sub(start)

	if IsValidation(err) {
		return nil, err
	}
	p.recorder.RecordProviderAttempt(name, elapsed, err)
	if rl, ok := AsRateLimitError(err); ok {
		p.recorder.RecordRateLimit(name, rl.RetryAfter)
		logWithProvider(ctx, logger, slog.LevelWarn, name, "provider rate limited",
			slog.Duration("retry_after", rl.RetryAfter),
		)
		return nil, err
	}
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, ErrLeagueNotFound) || errors.Is(err, ErrPrivateLeague) || errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		logWithProvider(ctx, logger, level, name, "provider fetch failed",
			slog.String(logging.FieldLeagueID, query.LeagueID),
			slog.Any(logging.FieldError, err),
		)
		return nil, err
	}

	logWithProvider(ctx, logger, slog.LevelDebug, name, "provider fetch ok",
		slog.String(logging.FieldLeagueID, query.LeagueID),
		slog.Int(logging.FieldCount, len(entries)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return entries, nil
}
