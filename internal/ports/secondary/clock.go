package secondary

import "time"

// Clock defines the secondary port for reading the current time.
// Wait-time math and escalation thresholds go through this so tests
// can pin the clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
