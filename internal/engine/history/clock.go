package history

import "time"

// Clock supplies the current time for undo grouping.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between two calls are not affected by clock adjustments.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a clock stopped at start.
// A zero start uses a fixed reference instant.
func NewManualClock(start time.Time) *ManualClock {
	if start.IsZero() {
		start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &ManualClock{now: start}
}

// Now implements Clock.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}
