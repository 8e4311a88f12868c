package search

import (
	"fmt"
	"slices"

	"github.com/soniakeys/bits"

	"github.com/matzehuels/autgroup/pkg/graph"
	"github.com/matzehuels/autgroup/pkg/perm"
)

// leaf is a discrete partition together with the adjacency matrix of the
// graph relabeled by it. Row r of cert holds the ranks of the neighbors of
// the vertex of rank r.
type leaf struct {
	order []int
	cert  []bits.Bits
}

func newLeaf(g *graph.Graph, order []int) *leaf {
	n := len(order)
	rank := make([]int, n)
	for r, v := range order {
		rank[v] = r
	}
	cert := make([]bits.Bits, n)
	for r, v := range order {
		row := bits.New(n)
		g.IterateNeighbors(v, func(u int) bool {
			row.SetBit(rank[u], 1)
			return true
		})
		cert[r] = row
	}
	return &leaf{order: order, cert: cert}
}

// compare orders leaves by their relabeled adjacency, row by row.
func (l *leaf) compare(o *leaf) int {
	for r := range l.cert {
		if c := slices.Compare(l.cert[r].Bits, o.cert[r].Bits); c != 0 {
			return c
		}
	}
	return 0
}

// mapping returns the permutation sending from[r] to to[r] for every rank r.
func mapping(from, to []int) perm.Perm {
	p := make(perm.Perm, len(from))
	for r, v := range from {
		p[v] = to[r]
	}
	return p
}

// detect handles a leaf reached off the reference path. It reports whether
// the leaf is equivalent to the reference leaf, in which case the
// automorphism mapping one onto the other has been registered.
//
// A leaf that is not equivalent to the reference is compared with the
// canonical leaf: an equal relabeled adjacency also yields an automorphism,
// a smaller one makes the leaf canonical.
func (s *searcher) detect(order []int) bool {
	if pi := mapping(s.ref, order); s.g.IsAutomorphism(pi) {
		s.register(pi)
		return true
	}

	l := newLeaf(s.g, order)
	s.mu.Lock()
	defer s.mu.Unlock()
	switch c := l.compare(s.canon); {
	case c == 0:
		pi := mapping(s.canon.order, order)
		if !s.g.IsAutomorphism(pi) {
			panic(fmt.Sprintf("search: leaves %v and %v share a certificate but %v is not an automorphism",
				s.canon.order, order, pi))
		}
		s.grp.Register(pi)
	case c < 0:
		s.canon = l
		s.stats.canonical.Add(1)
	}
	return false
}

func (s *searcher) register(pi perm.Perm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grp.Register(pi)
}
