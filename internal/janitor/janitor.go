// Package janitor expires idle workspaces on an interval.
package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/logging"
	"github.com/preston-bernstein/fantasy-logo-studio/internal/metrics"
)

const (
	defaultInterval = 5 * time.Minute
	defaultTTL      = 2 * time.Hour
)

// Store is the part of the workspace store the janitor needs.
type Store interface {
	DeleteIdle(cutoff time.Time) []string
}

// Janitor sweeps workspaces that have not been touched for ttl.
type Janitor struct {
	store    Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the janitor's recent activity.
type Status struct {
	Sweeps      int
	Expired     int
	LastSweep   time.Time
	LastRemoved int
}

// New constructs a Janitor. Non-positive durations fall back to defaults.
func New(store Store, logger *slog.Logger, recorder *metrics.Recorder, interval, ttl time.Duration) *Janitor {
	if interval <= 0 {
		interval = defaultInterval
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Janitor{
		store:    store,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		ttl:      ttl,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins sweeping until the context is cancelled or Stop is called.
func (j *Janitor) Start(ctx context.Context) {
	j.startMu.Lock()
	if j.started {
		j.startMu.Unlock()
		return
	}
	j.started = true
	j.startMu.Unlock()

	j.ticker = time.NewTicker(j.interval)

	go func() {
		logging.Info(j.logger, "janitor started",
			slog.Int64(logging.FieldDurationMS, j.interval.Milliseconds()),
			slog.Duration("ttl", j.ttl),
		)
		for {
			select {
			case <-ctx.Done():
				j.ticker.Stop()
				logging.Info(j.logger, "janitor stopped")
				return
			case <-j.done:
				j.ticker.Stop()
				logging.Info(j.logger, "janitor stopped")
				return
			case <-j.ticker.C:
				j.SweepOnce()
			}
		}
	}()
}

// Stop halts the sweep loop.
func (j *Janitor) Stop(context.Context) error {
	j.stopOnce.Do(func() {
		close(j.done)
	})
	return nil
}

// SweepOnce removes every workspace idle for longer than the ttl and returns how many went.
func (j *Janitor) SweepOnce() int {
	now := j.now()
	removed := j.store.DeleteIdle(now.Add(-j.ttl))
	j.metrics.RecordWorkspacesExpired(len(removed))

	j.statusMu.Lock()
	j.status.Sweeps++
	j.status.Expired += len(removed)
	j.status.LastSweep = now
	j.status.LastRemoved = len(removed)
	j.statusMu.Unlock()

	if len(removed) == 0 {
		logging.Debug(j.logger, "janitor sweep found no idle workspaces")
		return 0
	}
	logging.Info(j.logger, "expired idle workspaces",
		slog.Int(logging.FieldCount, len(removed)),
		slog.Any("workspace_ids", removed),
	)
	return len(removed)
}

// Status returns a snapshot of the janitor's recent activity.
func (j *Janitor) Status() Status {
	j.statusMu.RLock()
	defer j.statusMu.RUnlock()
	return j.status
}
