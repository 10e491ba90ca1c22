package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/preston-bernstein/fantasy-logo-studio/internal/metrics"
)

// NewTelemetryRecorder returns a recorder backed by real OpenTelemetry
// instruments plus the Prometheus scrape handler. The meter provider is shut
// down when the test ends.
func NewTelemetryRecorder(t *testing.T) (*metrics.Recorder, http.Handler) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "fantasy-logo-studio-test",
	})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return rec, handler
}
