// Package pkg provides the core libraries for computing automorphism groups
// of graphs.
//
// # Overview
//
// An automorphism of a simple undirected graph is a relabeling of its
// vertices that maps edges to edges. The automorphism group collects all of
// them. The pkg directory computes that group exactly, for graphs with
// thousands of vertices, by an individualization-refinement search.
//
// # Architecture
//
// The typical data flow:
//
//	JSON graph descriptor
//	         ↓
//	    [io] package (decode and validate)
//	         ↓
//	    [graph] package (adjacency bitsets)
//	         ↓
//	    [search] package (refine, individualize, prune)
//	         ↓
//	    [group] package (order from the base, orbits, Schreier-Sims check)
//	         ↓
//	    JSON/YAML result, SVG drawing
//
// # Quick Start
//
//	g, _ := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
//	res, _ := search.Run(context.Background(), g, search.Options{})
//	fmt.Println(res.Order) // 8
//
// # Main Packages
//
// ## Core
//
// [perm] - Permutations of {0..n-1}: composition, inverse, cycle notation.
//
// [graph] - Simple undirected graphs stored as adjacency bitsets, with named
// families (complete, cycle, Petersen, hypercube) used as fixtures.
//
// [partition] - Ordered vertex partitions and equitable refinement, with the
// invariant trace that lets the search prune non-isomorphic subtrees.
//
// [search] - The search tree itself. Returns the group order, a generating
// set and the orbits; a search that runs out of time returns what it found,
// marked Degraded.
//
// [group] - Orbits of a generating set and a Schreier-Sims stabilizer chain
// for independent order verification.
//
// ## Infrastructure
//
// [cache] - Result caches (file, Badger, Redis, MongoDB) keyed by a hash of
// the normalized edge list.
//
// [pipeline] - Build, cache lookup and search in one call, shared by the CLI
// and the HTTP API.
//
// [observability] - Hooks for search, cache and HTTP events, with a
// Prometheus implementation.
//
// [render] - Orbit color palette; [render/nodelink] draws graphs with
// Graphviz.
//
// [errors] - Coded errors mapped to exit codes and HTTP statuses.
//
// [io] - Graph descriptors in, results out.
package pkg
