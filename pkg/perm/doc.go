// Package perm provides vertex permutations for automorphism search.
//
// A [Perm] is stored as an image table: p[i] is where vertex i goes. The
// package covers the operations the search engine and group builder need:
// composition ([Perm.Then]), inversion, cycle decomposition, element order,
// and validation of externally supplied tables.
//
// # Composition Order
//
// Composition reads left to right. p.Then(q) applies p first and q second,
// so (p.Then(q))[i] == q[p[i]]. Schreier generators and transversal products
// in [github.com/matzehuels/autgroup/pkg/group] are written in this order.
//
// # Enumeration
//
// [All] yields all n! permutations with Heap's algorithm. It exists as a
// brute-force oracle for small graphs in tests and is never used by the search
// itself. [Factorial] returns exact big integers because symmetric group orders
// overflow 64 bits from n = 21 onward.
package perm
