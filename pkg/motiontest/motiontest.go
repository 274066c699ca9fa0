// Package motiontest provides helpers for deterministic animation tests.
package motiontest

import (
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/tween"
)

// FakeClock provides controllable time for deterministic tests of the
// real-time scheduler driver. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Drive advances the scheduler by total time in fixed steps, the way a
// frame loop would. The final step is truncated so the total is exact.
func Drive(s *tween.Scheduler, total, step time.Duration) {
	if step <= 0 {
		step = total
	}
	for total > 0 {
		dt := step
		if dt > total {
			dt = total
		}
		s.Advance(dt)
		total -= dt
	}
}

// Ticks calls Tick on the scheduler a fixed number of times with the same
// scaled and unscaled deltas, for tests that pin the two clocks apart.
func Ticks(s *tween.Scheduler, scaled, unscaled time.Duration, n int) {
	for range n {
		s.Tick(scaled, unscaled)
	}
}
