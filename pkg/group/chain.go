package group

import (
	"math/big"
	"slices"

	"github.com/matzehuels/autgroup/pkg/perm"
)

// Chain is a base and strong generating set for a permutation group, built
// with the deterministic Schreier-Sims algorithm.
//
// Level i stores the base point b_i, the strong generators fixing
// b_0..b_{i-1}, and a transversal: for every point x in the orbit of b_i a
// permutation u_x in the level's subgroup with u_x[b_i] = x. The group order
// is the product of the level orbit sizes.
type Chain struct {
	n      int
	levels []*level
}

type level struct {
	point int
	gens  []perm.Perm
	orbit []int
	trans []perm.Perm // indexed by point, nil outside the orbit
}

// NewChain builds a chain for the group generated by gens on n points. base
// is a prefix of the base to use; points are appended when a generator fixes
// all of it. Non-identity generators of the wrong degree are ignored.
func NewChain(n int, gens []perm.Perm, base []int) *Chain {
	c := &Chain{n: n}
	for _, b := range base {
		if b >= 0 && b < n && !slices.ContainsFunc(c.levels, func(l *level) bool { return l.point == b }) {
			c.levels = append(c.levels, &level{point: b})
		}
	}

	var kept []perm.Perm
	for _, g := range gens {
		if len(g) != n || g.IsIdentity() {
			continue
		}
		if g.Fixes(c.Base()) {
			c.levels = append(c.levels, &level{point: g.Support()[0]})
		}
		kept = append(kept, g.Clone())
	}
	for i, l := range c.levels {
		prefix := c.Base()[:i]
		for _, g := range kept {
			if g.Fixes(prefix) {
				l.gens = append(l.gens, g)
			}
		}
		l.rebuild(n)
	}

	c.complete()
	return c
}

// complete runs the Schreier-Sims loop: every Schreier generator of every
// level must sift through the levels below it.
func (c *Chain) complete() {
	for i := len(c.levels) - 1; i >= 0; {
		j, h, ok := c.checkLevel(i)
		if ok {
			i--
			continue
		}
		if j == len(c.levels) {
			c.levels = append(c.levels, &level{point: h.Support()[0]})
		}
		for l := i + 1; l <= j; l++ {
			c.levels[l].gens = append(c.levels[l].gens, h)
			c.levels[l].rebuild(c.n)
		}
		i = j
	}
}

// checkLevel sifts the Schreier generators of level i. It returns ok when all
// of them sift to the identity; otherwise the level at which the first
// failing one stopped and its residue.
func (c *Chain) checkLevel(i int) (int, perm.Perm, bool) {
	l := c.levels[i]
	for _, x := range l.orbit {
		for _, s := range l.gens {
			y := s[x]
			h := l.trans[x].Then(s).Then(l.trans[y].Inverse())
			if h.IsIdentity() {
				continue
			}
			if j, r := c.strip(h, i+1); j < len(c.levels) || !r.IsIdentity() {
				return j, r, false
			}
		}
	}
	return 0, nil, true
}

// strip sifts h through the levels starting at from. It returns the level
// where sifting stopped (len(levels) if it went through) and the residue.
func (c *Chain) strip(h perm.Perm, from int) (int, perm.Perm) {
	for j := from; j < len(c.levels); j++ {
		l := c.levels[j]
		x := h[l.point]
		if l.trans[x] == nil {
			return j, h
		}
		h = h.Then(l.trans[x].Inverse())
	}
	return len(c.levels), h
}

// rebuild recomputes the orbit and transversal of l by breadth-first search.
func (l *level) rebuild(n int) {
	l.trans = make([]perm.Perm, n)
	l.trans[l.point] = perm.Identity(n)
	l.orbit = []int{l.point}
	for k := 0; k < len(l.orbit); k++ {
		x := l.orbit[k]
		for _, s := range l.gens {
			y := s[x]
			if l.trans[y] == nil {
				l.trans[y] = l.trans[x].Then(s)
				l.orbit = append(l.orbit, y)
			}
		}
	}
}

// Order returns the exact group order.
func (c *Chain) Order() *big.Int {
	order := big.NewInt(1)
	var size big.Int
	for _, l := range c.levels {
		size.SetInt64(int64(len(l.orbit)))
		order.Mul(order, &size)
	}
	return order
}

// Base returns the base points in level order.
func (c *Chain) Base() []int {
	out := make([]int, len(c.levels))
	for i, l := range c.levels {
		out[i] = l.point
	}
	return out
}

// OrbitSizes returns the size of the basic orbit at each level.
func (c *Chain) OrbitSizes() []int {
	out := make([]int, len(c.levels))
	for i, l := range c.levels {
		out[i] = len(l.orbit)
	}
	return out
}

// Contains reports whether p is an element of the group.
func (c *Chain) Contains(p perm.Perm) bool {
	if len(p) != c.n || !p.Valid() {
		return false
	}
	j, r := c.strip(p, 0)
	return j == len(c.levels) && r.IsIdentity()
}
