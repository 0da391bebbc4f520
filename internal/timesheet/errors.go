package timesheet

import "errors"

// Recoverable validation failures. These are surfaced to the caller and
// logged; no state is mutated when one is returned.
var (
	// ErrNotRunning is returned when pushing an event into a finalized session.
	ErrNotRunning = errors.New("already finalized, cannot push event")

	// ErrBadTimestamp is returned for an explicit timestamp that is not
	// strictly after the last event (or the relevant start bound).
	ErrBadTimestamp = errors.New("timestamp is before the last event")

	// ErrAlreadyPaused is returned when pausing a paused session.
	ErrAlreadyPaused = errors.New("already paused")

	// ErrNotPaused is returned when resuming a session that is not paused.
	ErrNotPaused = errors.New("currently not paused")

	// ErrSessionRunning is returned when starting a session while the last
	// one is still running.
	ErrSessionRunning = errors.New("last session is still running")

	// ErrNoSession is returned by operations that need at least one session.
	ErrNoSession = errors.New("no session")
)

// FatalError marks a validation failure that ends the interaction. The core
// never terminates the process itself; the command layer checks IsFatal,
// prints the diagnostic and exits.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }

func (e *FatalError) Unwrap() error { return e.Err }

func fatal(err error) error { return &FatalError{Err: err} }

// IsFatal reports whether err is (or wraps) a FatalError.
func IsFatal(err error) bool {
	var f *FatalError
	return errors.As(err, &f)
}
