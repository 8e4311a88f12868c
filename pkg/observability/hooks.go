// Package observability provides hooks for metrics and logging.
//
// Instrumentation is optional: the search pipeline, the result caches and
// the HTTP server emit events through the hooks registered here, and the
// default hooks do nothing. A binary that wants metrics registers an
// implementation once at startup:
//
//	func main() {
//	    hooks := observability.NewPrometheusHooks(prometheus.DefaultRegisterer)
//	    observability.SetSearchHooks(hooks)
//	    observability.SetCacheHooks(hooks)
//	    observability.SetHTTPHooks(hooks)
//	    // ... run application
//	}
//
// Libraries call the registered hooks around their work:
//
//	observability.Search().OnSearchStart(ctx, n, m)
//	res, err := search.Run(ctx, g, opts)
//	observability.Search().OnSearchComplete(ctx, SearchOutcome{...})
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// SearchOutcome summarizes one Runner.Execute call, cache hits included.
type SearchOutcome struct {
	Vertices   int
	Edges      int
	Generators int
	Nodes      int64 // search tree nodes; zero for cache hits
	Degraded   bool
	Cached     bool
	Duration   time.Duration
	Err        error
}

// SearchHooks observes automorphism group computations.
type SearchHooks interface {
	OnSearchStart(ctx context.Context, vertices, edges int)
	OnSearchComplete(ctx context.Context, out SearchOutcome)
}

// CacheHooks observes result cache traffic. keyType names the kind of
// entry; the pipeline only stores "result".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks observes the API server. route is the chi route pattern, not
// the raw path, to keep label cardinality bounded.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, route string)
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

type (
	NoopSearchHooks struct{}
	NoopCacheHooks  struct{}
	NoopHTTPHooks   struct{}
)

func (NoopSearchHooks) OnSearchStart(context.Context, int, int)                      {}
func (NoopSearchHooks) OnSearchComplete(context.Context, SearchOutcome)              {}
func (NoopCacheHooks) OnCacheHit(context.Context, string)                            {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)                           {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)                       {}
func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Registry
// =============================================================================

// hookSet is replaced as a whole on every Set call, so readers on the
// search path load one pointer and never block.
type hookSet struct {
	search SearchHooks
	cache  CacheHooks
	http   HTTPHooks
}

var (
	noops   = hookSet{NoopSearchHooks{}, NoopCacheHooks{}, NoopHTTPHooks{}}
	current atomic.Pointer[hookSet]
)

func init() { Reset() }

// update applies fn to a copy of the current set and publishes it.
func update(fn func(*hookSet)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetSearchHooks installs h for all later searches. nil is ignored.
func SetSearchHooks(h SearchHooks) {
	if h != nil {
		update(func(s *hookSet) { s.search = h })
	}
}

// SetCacheHooks installs h for all later cache lookups. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(s *hookSet) { s.cache = h })
	}
}

// SetHTTPHooks installs h for all later requests. nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(s *hookSet) { s.http = h })
	}
}

func Search() SearchHooks { return current.Load().search }
func Cache() CacheHooks   { return current.Load().cache }
func HTTP() HTTPHooks     { return current.Load().http }

// Reset puts the no-op hooks back. The serve command calls it on exit so
// its Prometheus registry is not kept alive.
func Reset() {
	n := noops
	current.Store(&n)
}
