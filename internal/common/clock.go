// Package common provides shared utilities for Compass
package common

import "time"

// Clock supplies the current time. The engines never read the wall clock
// directly; time is injected so output is reproducible under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now
type SystemClock struct{}

// Now returns the current wall-clock time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FrozenClock is a Clock pinned to a fixed instant, for tests
type FrozenClock struct {
	Instant time.Time
}

// Now returns the pinned instant
func (c FrozenClock) Now() time.Time {
	return c.Instant
}
