// Package cache stores computed automorphism group results.
//
// A [Cache] maps string keys to opaque bytes with an optional time-to-live.
// Backends:
//
//   - [NullCache]: stores nothing (caching disabled)
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [BadgerCache]: embedded key-value store, for a single host
//   - [RedisCache]: shared cache for several API instances
//   - [MongoCache]: persistent result archive
//
// Keys come from a [Keyer]. Results depend only on the graph, so the default
// key is a hash of the normalized edge list; see [GraphHash].
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with expiring entries. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found. A missing or
	// expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}
