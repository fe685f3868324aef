package testutil

import (
	"sync"
	"time"
)

// DefaultNow is the instant a FixedClock starts at when none is given.
var DefaultNow = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// FixedClock is a datetime.Clock that only moves when told to.
//
// It makes relative-time output deterministic: the same scenario against the
// same FixedClock renders byte-identical traces.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock frozen at now. A zero now selects DefaultNow.
func NewFixedClock(now time.Time) *FixedClock {
	if now.IsZero() {
		now = DefaultNow
	}
	return &FixedClock{now: now}
}

// Now returns the frozen instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock by d (which may be negative).
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
