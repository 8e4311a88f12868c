package graph

import (
	"slices"

	"github.com/soniakeys/bits"

	"github.com/matzehuels/autgroup/pkg/perm"
)

// Graph is an immutable finite simple undirected graph on vertices 0..n-1.
//
// Each vertex owns a fixed-width bit vector of its neighbors, so adjacency
// tests are O(1) and neighbor iteration is O(n/64 + degree). A Graph is never
// modified after [New] returns and is safe for concurrent read-only use.
//
// The zero value is the graph with no vertices.
type Graph struct {
	n   int
	m   int
	adj []bits.Bits
}

// New builds a graph with n vertices from an edge list.
//
// Edges are unordered pairs; (u,v) and (v,u) describe the same edge and
// repeated edges are idempotent. Self-loops (u == v) are dropped without
// error, matching the normalization applied by the original descriptor
// format.
//
// New returns an [*InvalidGraphError] if n is negative or any endpoint is
// outside [0, n). Validation runs over the whole edge list before any
// adjacency is built.
func New(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, &InvalidGraphError{N: n, Edge: -1, Reason: reasonNegative}
	}
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, &InvalidGraphError{N: n, Edge: i, U: e[0], V: e[1], Reason: reasonRange}
		}
	}

	g := &Graph{n: n, adj: make([]bits.Bits, n)}
	for v := range g.adj {
		g.adj[v] = bits.New(n)
	}
	for _, e := range edges {
		g.addEdge(e[0], e[1])
	}
	return g, nil
}

// addEdge inserts {u,v} unless it is a loop or already present.
func (g *Graph) addEdge(u, v int) {
	if u == v || g.adj[u].Bit(v) == 1 {
		return
	}
	g.adj[u].SetBit(v, 1)
	g.adj[v].SetBit(u, 1)
	g.m++
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.m }

// AreAdjacent reports whether {u,v} is an edge.
func (g *Graph) AreAdjacent(u, v int) bool {
	return g.adj[u].Bit(v) == 1
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int {
	return g.adj[v].OnesCount()
}

// Neighbors returns a copy of the neighbor bit vector of v.
// Use [Graph.IterateNeighbors] on hot paths to avoid the copy.
func (g *Graph) Neighbors(v int) bits.Bits {
	nb := bits.New(g.n)
	nb.Set(g.adj[v])
	return nb
}

// IterateNeighbors calls fn for each neighbor of v in ascending order until
// fn returns false. It reports whether the iteration ran to completion.
func (g *Graph) IterateNeighbors(v int, fn func(u int) bool) bool {
	return g.adj[v].IterateOnes(fn)
}

// Edges returns every edge once as (u,v) with u < v, sorted lexicographically.
func (g *Graph) Edges() [][2]int {
	edges := make([][2]int, 0, g.m)
	for u := range g.adj {
		g.adj[u].IterateOnes(func(v int) bool {
			if u < v {
				edges = append(edges, [2]int{u, v})
			}
			return true
		})
	}
	return edges
}

// IsAutomorphism reports whether p is a permutation of the vertex set that
// maps every edge to an edge.
//
// Because p is a bijection and the edge set is finite, mapping edges into
// edges is equivalent to preserving adjacency in both directions: non-edges
// are then mapped to non-edges as well.
func (g *Graph) IsAutomorphism(p perm.Perm) bool {
	if len(p) != g.n || !p.Valid() {
		return false
	}
	for u := range g.adj {
		pu := p[u]
		ok := g.adj[u].IterateOnes(func(v int) bool {
			return u > v || g.adj[pu].Bit(p[v]) == 1
		})
		if !ok {
			return false
		}
	}
	return true
}

// Permute returns the image of g under p: {p[u],p[v]} is an edge of the
// result exactly when {u,v} is an edge of g. p must be a valid permutation
// of degree n.
func (g *Graph) Permute(p perm.Perm) *Graph {
	h := &Graph{n: g.n, adj: make([]bits.Bits, g.n)}
	for v := range h.adj {
		h.adj[v] = bits.New(g.n)
	}
	for _, e := range g.Edges() {
		h.addEdge(p[e[0]], p[e[1]])
	}
	return h
}

// Complement returns the graph on the same vertices whose edges are exactly
// the non-edges of g. Both graphs have the same automorphism group.
func (g *Graph) Complement() *Graph {
	h := &Graph{n: g.n, adj: make([]bits.Bits, g.n)}
	for v := range h.adj {
		h.adj[v] = bits.New(g.n)
	}
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if !g.AreAdjacent(u, v) {
				h.addEdge(u, v)
			}
		}
	}
	return h
}

// Equal reports whether g and h have the same vertex count and edge set.
func (g *Graph) Equal(h *Graph) bool {
	if g.n != h.n || g.m != h.m {
		return false
	}
	for v := range g.adj {
		if !slices.Equal(g.adj[v].Bits, h.adj[v].Bits) {
			return false
		}
	}
	return true
}
