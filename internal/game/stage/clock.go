package stage

import "time"

// Clock reports seconds elapsed since it started or was last reset. It
// must be monotonic between resets.
type Clock interface {
	Elapsed() float64
	Reset()
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Elapsed returns seconds since NewSystemClock or the last Reset.
func (c *SystemClock) Elapsed() float64 {
	return time.Since(c.start).Seconds()
}

// Reset restarts the clock at zero.
func (c *SystemClock) Reset() {
	c.start = time.Now()
}

// ManualClock is advanced explicitly. Used by tests and fixed-step capture.
type ManualClock struct {
	Now float64
}

// Elapsed returns the current time.
func (c *ManualClock) Elapsed() float64 {
	return c.Now
}

// Reset sets the clock back to zero.
func (c *ManualClock) Reset() {
	c.Now = 0
}

// Tick advances the clock by dt seconds.
func (c *ManualClock) Tick(dt float64) {
	c.Now += dt
}
