package common

import "time"

// MaxDelta caps a single tick so a stall (window drag, breakpoint) does not
// produce one enormous step.
const MaxDelta = 0.25

// Clock measures the seconds between ticks using the monotonic clock.
type Clock struct {
	now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Tick returns the seconds since the previous Tick, zero on the first call.
// The result is never negative and never above MaxDelta.
func (c *Clock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}
