package motion

import "time"

// Clock measures elapsed time since its first tick and the delta between ticks.
type Clock struct {
	Now func() time.Time

	start    time.Time
	started  bool
	previous float64
}

// NewClock returns a clock reading the wall time.
func NewClock() *Clock {
	return &Clock{Now: time.Now}
}

// Tick returns the total elapsed seconds and the seconds since the previous
// tick. The first tick measures its delta from a zero baseline.
func (c *Clock) Tick() (elapsed, delta float64) {
	now := c.Now()
	if !c.started {
		c.start = now
		c.started = true
	}
	elapsed = now.Sub(c.start).Seconds()
	delta = elapsed - c.previous
	c.previous = elapsed
	return elapsed, delta
}
