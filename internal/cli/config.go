package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/autgroup/internal/server"
	"github.com/matzehuels/autgroup/pkg/cache"
	"github.com/matzehuels/autgroup/pkg/pipeline"
)

// configFile is the file name looked up in the config directory.
const configFile = "config.toml"

// Config is the on-disk configuration. Every field has a working default,
// so the file is optional.
type Config struct {
	Search SearchConfig `toml:"search"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// SearchConfig holds the search defaults.
type SearchConfig struct {
	Workers     int           `toml:"workers"`
	Timeout     time.Duration `toml:"timeout"`
	Verify      bool          `toml:"verify"`
	MaxVertices int           `toml:"max_vertices"`
}

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	Backend       string        `toml:"backend"`
	TTL           time.Duration `toml:"ttl"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	MongoURI      string        `toml:"mongo_uri"`
	MongoDatabase string        `toml:"mongo_database"`

	// KeyPrefix scopes keys so deployments can share a Redis or MongoDB backend.
	KeyPrefix string `toml:"key_prefix"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

func defaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Workers:     pipeline.DefaultWorkers,
			Timeout:     pipeline.DefaultTimeout,
			MaxVertices: pipeline.DefaultMaxVertices,
		},
		Cache: CacheConfig{
			Backend:       cache.BackendFile,
			TTL:           pipeline.DefaultTTL,
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: appName,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: server.DefaultMaxBodyBytes,
		},
	}
}

// loadConfig reads the config file at path on top of the defaults. An empty
// path means the default location, where a missing file is not an error.
// The returned keys are those present in the file but unknown to Config.
func loadConfig(path string) (Config, []string, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil, nil
		}
		path = filepath.Join(dir, configFile)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil, nil
		}
		return defaultConfig(), nil, fmt.Errorf("load config %s: %w", path, err)
	}

	var unknown []string
	for _, k := range meta.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return cfg, unknown, nil
}

// pipelineOptions converts the search section to runner options.
func (c Config) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Workers:     c.Search.Workers,
		Timeout:     c.Search.Timeout,
		Verify:      c.Search.Verify,
		MaxVertices: c.Search.MaxVertices,
		TTL:         c.Cache.TTL,
	}
}

// cacheConfig converts the cache section, resolving the default directory.
func (c Config) cacheConfig() (cache.Config, error) {
	cc := cache.Config{
		Backend:       c.Cache.Backend,
		Dir:           c.Cache.Dir,
		RedisAddr:     c.Cache.RedisAddr,
		MongoURI:      c.Cache.MongoURI,
		MongoDatabase: c.Cache.MongoDatabase,
	}
	if cc.Dir == "" && (cc.Backend == "" || cc.Backend == cache.BackendFile || cc.Backend == cache.BackendBadger) {
		dir, err := cacheDir()
		if err != nil {
			return cc, fmt.Errorf("get cache dir: %w", err)
		}
		cc.Dir = dir
		if cc.Backend == cache.BackendBadger {
			cc.Dir = filepath.Join(dir, "badger")
		}
	}
	return cc, nil
}

