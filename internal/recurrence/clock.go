package recurrence

import "time"

// Clock supplies the current time to the engine. Injecting it keeps
// occurrence planning deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.Instant }
