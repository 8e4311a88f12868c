package search

import "time"

// progressEvery is the number of visited nodes between Progress callbacks.
var progressEvery int64 = 1024

// Options configures a search. The zero value runs a single-threaded search
// without a deadline.
type Options struct {
	// Workers is the number of goroutines exploring the candidates of one
	// level concurrently. Values below 2 run sequentially, which also makes
	// the generator list reproducible across runs.
	Workers int

	// Timeout bounds the whole search. Zero means no limit beyond ctx.
	Timeout time.Duration

	// Verify recomputes the order with an independent Schreier-Sims chain
	// and panics if it disagrees with the order derived from the search.
	Verify bool

	// Progress, if set, is called every 1024 visited nodes and once when the
	// search ends. Calls are serialized.
	Progress func(Stats)

	// Debug, if set, is called once at the end with per-level details.
	Debug func(DebugInfo)
}

// Stats counts search work.
type Stats struct {
	Nodes            int64         // partitions produced by individualization
	Leaves           int64         // discrete partitions handed to the detector
	Pruned           int64         // subtrees cut because their invariant differs from the reference path
	OrbitSkips       int64         // branches skipped because an equivalent branch was already tried
	CanonicalUpdates int64         // times a smaller leaf replaced the canonical one
	Generators       int           // automorphisms registered so far
	Elapsed          time.Duration // wall time since the search started
}

// LevelInfo describes one level of the search base.
type LevelInfo struct {
	Depth      int // level index, 0 is the root
	Vertex     int // base vertex individualized on the reference path
	CellSize   int // size of the target cell at this level
	Candidates int // subtrees explored at this level, excluding the reference branch
	OrbitSize  int // orbit of Vertex under the automorphisms fixing earlier base vertices
}

// DebugInfo is reported once per search.
type DebugInfo struct {
	Levels []LevelInfo
	Stats  Stats
}
