package testutil

import (
	"sync"
	"time"
)

// NowAt returns a clock frozen at t.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SteppingClock returns a clock that starts at start and advances by step on every call.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}
