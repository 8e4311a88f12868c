// Package search computes the automorphism group of a graph by
// individualization-refinement.
//
// # Overview
//
// The search tree has the refined unit partition at its root. An internal node
// branches on its target cell, the first non-singleton cell, and each child
// individualizes one vertex of it. Leaves are discrete partitions, i.e. vertex
// orderings. If two leaves relabel the graph identically, the permutation
// mapping one ordering onto the other is an automorphism.
//
// [Run] descends the leftmost branch first. The vertices it individualizes
// form the base, and its leaf is the reference. The base levels are then
// processed from the deepest to the root. A level is done once every vertex
// of its target cell has either produced an automorphism back to the
// reference or been shown equivalent to a vertex that did or did not. At that
// point the known automorphisms fixing the earlier base vertices act on the
// level's target cell with exactly the right orbit. The group order is the
// product of those orbit sizes.
//
// # Pruning
//
// Two rules keep the tree small. First, a sibling is skipped when a known
// automorphism fixing the current prefix maps it to a sibling already tried.
// Second, a node whose [partition.Invariant] differs from the reference node
// at the same depth cannot lead to an equivalent leaf, so its subtree is cut.
//
// # Canonical leaf
//
// Leaves that are not equivalent to the reference are compared against a
// running canonical leaf, the visited leaf whose relabeled adjacency matrix is
// lexicographically smallest. Meeting it again yields an automorphism too.
//
// # Cancellation and concurrency
//
// The context is checked at every node. An aborted search returns a Result
// marked Degraded, whose order is that of the subgroup found so far, together
// with an [*AbortedError]. With Options.Workers > 1 the candidates of one
// level are explored concurrently. The shared group is guarded by a mutex.
// Order and orbits do not depend on the worker count, but the exact generator
// list may.
package search
