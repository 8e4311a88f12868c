// Package group collects graph automorphisms and derives the group they
// generate: its orbits, the orbits of point stabilizers, and its exact order.
//
// [Group] is the accumulator fed by the search. Each registered generator
// merges orbit classes in a union-find, so [Group.OrbitOf] is cheap enough to
// consult before every branch. When the search completes, [Group.Finalize]
// multiplies the basic orbit sizes along the search base.
//
// [Chain] is an independent deterministic Schreier-Sims implementation. It
// computes the order of the group generated by any generator set, which the
// search uses after an aborted run and to cross-check complete runs.
package group
