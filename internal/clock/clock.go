// Package clock supplies the wall clock used to stamp patients and entries.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns a Clock backed by time.Now.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// ManagedClock is a hand-driven Clock for tests.
type ManagedClock struct {
	start  time.Time
	offset time.Duration
}

// NewManaged returns a ManagedClock frozen at start.
func NewManaged(start time.Time) *ManagedClock {
	return &ManagedClock{start: start}
}

// Now returns the managed time.
func (c *ManagedClock) Now() time.Time {
	return c.start.Add(c.offset)
}

// Advance moves the clock forward and returns the new time.
func (c *ManagedClock) Advance(d time.Duration) time.Time {
	c.offset += d
	return c.Now()
}

// Set jumps the clock to t, which may be earlier than the current time.
// Useful for reproducing entries recorded out of order.
func (c *ManagedClock) Set(t time.Time) {
	c.start = t
	c.offset = 0
}
