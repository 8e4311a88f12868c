// Package partition implements ordered vertex partitions and the refinement
// operations that drive the automorphism search.
//
// A [Partition] is a coloring of the vertices where the order of colors
// matters. [Refine] turns any partition into the coarsest equitable partition
// finer than it: every vertex of a cell then has the same number of neighbors
// in every cell. [Individualize] is the single branching step, giving one
// vertex its own color ahead of the rest of its cell and refining again.
//
// Both operations are deterministic and commute with relabeling, which is
// what lets leaves reached along different paths be compared as candidate
// automorphisms. [Invariant] summarizes a node for pruning.
package partition
