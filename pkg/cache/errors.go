package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNetwork marks a failure to reach a remote backend (Redis or MongoDB).
	ErrNetwork = errors.New("network error")

	// ErrUnknownBackend is returned by Open for a backend it does not know.
	ErrUnknownBackend = errors.New("unknown cache backend")
)

// transientError tags a backend failure that is worth another attempt.
type transientError struct{ error }

func (e transientError) Unwrap() error { return e.error }

// Retryable tags err as transient so Backoff.Do tries again. A nil error
// stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return transientError{err}
}

// IsRetryable reports whether err, or anything it wraps, was tagged by
// Retryable.
func IsRetryable(err error) bool {
	var t transientError
	return errors.As(err, &t)
}

// Backoff is the retry policy of the remote backends. The wait starts at
// Delay and doubles after every failed attempt, capped at Max.
type Backoff struct {
	Attempts int
	Delay    time.Duration
	Max      time.Duration
}

// DefaultBackoff is used by RedisCache and MongoCache. A lookup that cannot
// reach its backend gives up after well under a second so a search is never
// held up for long by a flaky cache.
var DefaultBackoff = Backoff{Attempts: 3, Delay: 100 * time.Millisecond, Max: time.Second}

// Do calls fn until it succeeds, returns an error not tagged by Retryable,
// or the attempts run out. Waiting honors ctx.
func (b Backoff) Do(ctx context.Context, fn func() error) error {
	attempts := max(b.Attempts, 1)
	wait := b.Delay
	var err error
	for i := range attempts {
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		if wait *= 2; b.Max > 0 && wait > b.Max {
			wait = b.Max
		}
	}
	return err
}
