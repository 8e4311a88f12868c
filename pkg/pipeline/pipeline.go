// Package pipeline runs automorphism group computations for the CLI and the
// HTTP API.
//
// A computation has three stages:
//
//  1. Build: validate a graph descriptor and build the graph
//  2. Lookup: look the graph's hash up in the result cache
//  3. Search: run the individualization-refinement search on a miss and
//     store complete results
//
// By centralizing this logic, every entry point gets the same caching,
// logging and error classification.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, desc, pipeline.Options{Timeout: 30 * time.Second})
//	if err != nil && res == nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Result.Order)
//
// A search that hits its deadline still yields a Result; it is marked
// Degraded and returned together with a SEARCH_ABORTED error.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/autgroup/pkg/errors"
	"github.com/matzehuels/autgroup/pkg/graph"
	pkgio "github.com/matzehuels/autgroup/pkg/io"
	"github.com/matzehuels/autgroup/pkg/search"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultTimeout bounds a single search.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxVertices is the largest graph accepted. The graph keeps an
	// n-bit adjacency row per vertex, so n vertices cost n²/8 bytes before the
	// search starts (12.5 MB at this limit) and the timeout cannot bound it.
	DefaultMaxVertices = 10_000

	// DefaultTTL is how long complete results stay cached.
	DefaultTTL = 30 * 24 * time.Hour

	// DefaultWorkers runs the search sequentially.
	DefaultWorkers = 1
)

// Format constants for result output.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = []string{FormatJSON, FormatYAML}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one computation.
type Options struct {
	Workers     int           `json:"workers,omitempty"`
	Timeout     time.Duration `json:"timeout,omitempty"`
	Verify      bool          `json:"verify,omitempty"`
	MaxVertices int           `json:"max_vertices,omitempty"`
	TTL         time.Duration `json:"ttl,omitempty"`

	// Refresh skips the cache lookup; the fresh result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger            `json:"-"`
	Progress func(search.Stats)     `json:"-"`
	Debug    func(search.DebugInfo) `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Result is the wire form of the group, as cached and as served.
	Result *pkgio.Result

	// Search is the raw search result. It is nil on a cache hit.
	Search *search.Result

	// Graph is the graph the group acts on.
	Graph *graph.Graph

	// GraphHash is the content hash of the normalized edge list.
	GraphHash string

	// Cached is set when Result came from the cache.
	Cached bool

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Vertices   int
	Edges      int
	SelfLoops  int
	BuildTime  time.Duration
	SearchTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a result format is supported.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, ValidFormats...)
}

// ValidateAndSetDefaults checks option values and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must be non-negative, got %d", o.Workers)
	}
	if o.Timeout < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must be non-negative, got %s", o.Timeout)
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.MaxVertices == 0 {
		o.MaxVertices = DefaultMaxVertices
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SearchOptions returns the options handed to search.Run.
func (o *Options) SearchOptions() search.Options {
	return search.Options{
		Workers:  o.Workers,
		Timeout:  o.Timeout,
		Verify:   o.Verify,
		Progress: o.Progress,
		Debug:    o.Debug,
	}
}
