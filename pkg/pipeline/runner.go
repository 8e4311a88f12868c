package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/autgroup/pkg/cache"
	"github.com/matzehuels/autgroup/pkg/errors"
	"github.com/matzehuels/autgroup/pkg/graph"
	pkgio "github.com/matzehuels/autgroup/pkg/io"
	"github.com/matzehuels/autgroup/pkg/observability"
	"github.com/matzehuels/autgroup/pkg/search"
)

// cacheKeyType labels result cache events for the observability hooks.
const cacheKeyType = "result"

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results itself. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute builds the graph of d and computes its automorphism group.
//
// Validation failures are returned as INVALID_INPUT, TOO_LARGE or
// INVALID_GRAPH errors with a nil Result. An aborted search returns a
// Degraded Result together with a SEARCH_ABORTED error.
func (r *Runner) Execute(ctx context.Context, d *pkgio.Descriptor, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := errors.ValidateVertexCount(d.N, opts.MaxVertices); err != nil {
		return nil, err
	}

	buildStart := time.Now()
	g, err := d.Build()
	if err != nil {
		return nil, err
	}
	out := &Result{
		Graph:     g,
		GraphHash: cache.GraphHash(d.N, d.Edges),
		Stats: Stats{
			Vertices:  g.VertexCount(),
			Edges:     g.EdgeCount(),
			SelfLoops: d.SelfLoops(),
			BuildTime: time.Since(buildStart),
		},
	}
	if out.Stats.SelfLoops > 0 {
		opts.Logger.Debug("dropped self-loops", "count", out.Stats.SelfLoops)
	}
	opts.Logger.Debug("built graph",
		"vertices", out.Stats.Vertices,
		"edges", out.Stats.Edges,
		"duration", out.Stats.BuildTime)

	return out, r.compute(ctx, out, opts)
}

// Compute computes the automorphism group of an already built graph.
func (r *Runner) Compute(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph is required")
	}
	if err := errors.ValidateVertexCount(g.VertexCount(), opts.MaxVertices); err != nil {
		return nil, err
	}
	out := &Result{
		Graph:     g,
		GraphHash: cache.GraphHash(g.VertexCount(), g.Edges()),
		Stats: Stats{
			Vertices: g.VertexCount(),
			Edges:    g.EdgeCount(),
		},
	}
	return out, r.compute(ctx, out, opts)
}

// compute fills out.Result from the cache or from a fresh search.
func (r *Runner) compute(ctx context.Context, out *Result, opts Options) error {
	hooks := observability.Search()
	hooks.OnSearchStart(ctx, out.Stats.Vertices, out.Stats.Edges)
	outcome := observability.SearchOutcome{
		Vertices: out.Stats.Vertices,
		Edges:    out.Stats.Edges,
	}

	key := r.Keyer.ResultKey(out.GraphHash)
	if !opts.Refresh {
		if cached, ok := r.lookup(ctx, key, opts.Logger); ok {
			out.Result = cached
			out.Cached = true
			outcome.Cached = true
			outcome.Generators = cached.NumGenerators
			hooks.OnSearchComplete(ctx, outcome)
			opts.Logger.Info("loaded automorphism group from cache",
				"order", cached.Order,
				"generators", cached.NumGenerators)
			return nil
		}
	}

	searchStart := time.Now()
	res, err := search.Run(ctx, out.Graph, opts.SearchOptions())
	out.Stats.SearchTime = time.Since(searchStart)
	outcome.Duration = out.Stats.SearchTime
	if res == nil {
		err = errors.Classify(err)
		outcome.Err = err
		hooks.OnSearchComplete(ctx, outcome)
		return err
	}

	out.Search = res
	out.Result = pkgio.NewResult(res)
	outcome.Generators = len(res.Generators)
	outcome.Nodes = res.Stats.Nodes
	outcome.Degraded = res.Degraded

	if err != nil {
		err = errors.Classify(err)
		outcome.Err = err
		hooks.OnSearchComplete(ctx, outcome)
		opts.Logger.Warn("search aborted, result is a subgroup",
			"order", res.Order,
			"generators", len(res.Generators),
			"nodes", res.Stats.Nodes,
			"duration", out.Stats.SearchTime)
		return err
	}
	hooks.OnSearchComplete(ctx, outcome)

	opts.Logger.Info("computed automorphism group",
		"order", res.Order,
		"generators", len(res.Generators),
		"orbits", len(res.Orbits),
		"nodes", res.Stats.Nodes,
		"duration", out.Stats.SearchTime)

	r.store(ctx, key, out.Result, opts)
	return nil
}

// lookup returns the cached result for key. Backend and decode failures are
// logged and treated as misses.
func (r *Runner) lookup(ctx context.Context, key string, logger *log.Logger) (*pkgio.Result, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	res, err := pkgio.ReadResultJSON(bytes.NewReader(data))
	if err != nil {
		logger.Warn("discarding unreadable cache entry", "key", key, "err", err)
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return res, true
}

// store caches a complete result. Degraded results are never stored.
func (r *Runner) store(ctx context.Context, key string, res *pkgio.Result, opts Options) {
	if res.Degraded {
		return
	}
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(res, &buf); err != nil {
		opts.Logger.Warn("encode result for cache", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, buf.Bytes(), opts.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, buf.Len())
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
