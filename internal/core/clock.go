package core

import "time"

// Clock reports the time elapsed since the previous frame, in seconds.
// It is sampled once at the top of each frame.
type Clock interface {
	DeltaTime() float64
}

// WallClock measures real elapsed time between calls.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

// NewWallClock creates a clock whose first DeltaTime call returns 0.
func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

// DeltaTime returns the seconds since the previous call.
func (c *WallClock) DeltaTime() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}

// FixedClock always reports the same step. Used for fixed-rate loops and tests.
type FixedClock struct {
	Step float64
}

// DeltaTime returns the fixed step.
func (c FixedClock) DeltaTime() float64 {
	return c.Step
}
