package cache

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// Backend names accepted by [Open].
const (
	BackendNone   = "none"
	BackendFile   = "file"
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend       string // one of the Backend* names; empty means file
	Dir           string // file and badger directory
	RedisAddr     string
	MongoURI      string
	MongoDatabase string
	Logger        *log.Logger // passed to backends that log internally
}

// Open creates the configured backend.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch cfg.Backend {
	case BackendNone:
		return NewNullCache(), nil
	case "", BackendFile:
		c, err = NewFileCache(cfg.Dir)
	case BackendBadger:
		c, err = NewBadgerCache(BadgerConfig{Dir: cfg.Dir, Logger: cfg.Logger})
	case BackendRedis:
		c, err = NewRedisCache(ctx, cfg.RedisAddr)
	case BackendMongo:
		c, err = NewMongoCache(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cfg.Backend, err)
	}
	return c, nil
}
