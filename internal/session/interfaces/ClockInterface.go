package interfaces

import "time"

// Timer is a handle to one scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call stopped it
	// before it ran.
	Stop() bool
}

// Clock schedules the state machine's ticks and pauses. Tests substitute a
// virtual clock that only moves when told to.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}
