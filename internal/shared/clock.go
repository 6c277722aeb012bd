package shared

import "time"

// Clock supplies the single "now" captured at the start of each
// validation call, keeping date windows deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
