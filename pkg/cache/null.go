package cache

import (
	"context"
	"time"
)

// NullCache backs the "none" backend and --no-cache: every lookup misses and
// every write is dropped, so each request runs a fresh search.
type NullCache struct{}

// NewNullCache returns the cache behind backend "none".
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }
