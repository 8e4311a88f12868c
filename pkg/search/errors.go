package search

import (
	"errors"
	"fmt"
)

// ErrSearchAborted is matched by errors.Is for every search stopped by
// cancellation or timeout.
var ErrSearchAborted = errors.New("search aborted")

// AbortedError reports a search stopped before the tree was exhausted. The
// Result returned alongside it is marked Degraded: its generators are genuine
// automorphisms, but the group may be a proper subgroup of the full one.
type AbortedError struct {
	Cause error // ctx.Err() at the time of the stop
	Level int   // base level being processed when the search stopped, -1 before the reference leaf
}

func (e *AbortedError) Error() string {
	if e.Level < 0 {
		return fmt.Sprintf("search aborted on the reference path: %v", e.Cause)
	}
	return fmt.Sprintf("search aborted at level %d: %v", e.Level, e.Cause)
}

// Is makes errors.Is(err, ErrSearchAborted) hold.
func (e *AbortedError) Is(target error) bool { return target == ErrSearchAborted }

// Unwrap returns the cancellation cause, so errors.Is(err,
// context.DeadlineExceeded) also works.
func (e *AbortedError) Unwrap() error { return e.Cause }
