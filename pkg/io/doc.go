// Package io reads graph descriptors and writes automorphism group results.
//
// # Descriptor Format
//
// A graph is a JSON object with a vertex count and an edge list:
//
//	{
//	  "n": 3,
//	  "edges": [[0, 1], [1, 2]]
//	}
//
// Vertices are 0..n-1. Edges are unordered pairs; reversed and repeated
// pairs describe the same edge and self-loops are dropped when the graph is
// built. [ReadJSON] rejects a missing or negative "n", a missing or null
// "edges", trailing data, and any edge that is not a pair of integers with an
// INVALID_INPUT error. Endpoints outside [0, n)
// are reported by [Descriptor.Build] as INVALID_GRAPH.
//
// # Result Format
//
// [WriteJSON] emits:
//
//	{
//	  "order": 72,
//	  "num_generators": 4,
//	  "generators": [[1, 0, 2, 3, 4, 5], ...],
//	  "orbits": [[0, 1, 2, 3, 4, 5]],
//	  "degraded": false
//	}
//
// "order" is an exact integer of arbitrary size. Each generator lists the
// image of every vertex. "degraded" is true when the search was aborted and
// the group may be incomplete. [WriteYAML] uses the same field names and
// writes "order" as a decimal string.
package io
