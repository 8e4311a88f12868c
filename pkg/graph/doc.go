// Package graph provides the immutable graph store used by the automorphism
// search.
//
// # Model
//
// A [Graph] is a finite simple undirected graph on vertices 0..n-1. Edges are
// unordered, loops are dropped at construction and duplicate edges collapse.
// Adjacency is held as one fixed-width bit vector per vertex
// (github.com/soniakeys/bits), so [Graph.AreAdjacent] is a single bit test and
// neighbor iteration visits only set bits.
//
// # Construction
//
// [New] validates the whole descriptor first and returns an
// [*InvalidGraphError] for a negative vertex count or an out-of-range
// endpoint:
//
//	g, err := graph.New(3, [][2]int{{0, 1}, {1, 2}})
//	if errors.Is(err, graph.ErrInvalidGraph) {
//	    // reject the input
//	}
//
// The family constructors ([Complete], [Path], [Cycle], [Petersen], ...) build
// well-known graphs and are mostly used as fixtures.
//
// # Automorphisms
//
// [Graph.IsAutomorphism] checks a candidate permutation against the edge set.
// The search calls it on every leaf mapping before a generator is accepted,
// so a bug elsewhere can never register a non-automorphism.
package graph
