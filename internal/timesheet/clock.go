package timesheet

import "time"

// Clock supplies the current time as unix seconds. Injected so tests can
// drive the state machine with deterministic timestamps.
type Clock interface {
	Now() int64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().Unix()
}
