package group

import (
	"math/big"

	"github.com/matzehuels/autgroup/pkg/perm"
)

// Group accumulates verified automorphisms of a graph on n vertices and keeps
// the orbit partition they generate up to date.
//
// A Group is not safe for concurrent use; callers that register from several
// goroutines must serialize access.
type Group struct {
	n      int
	gens   []perm.Perm
	orbits *Orbits
}

// New returns the trivial group on n points.
func New(n int) *Group {
	return &Group{n: n, orbits: NewOrbits(n)}
}

// Degree returns n.
func (g *Group) Degree() int { return g.n }

// Register adds p as a generator. It reports false and ignores p if p is the
// identity, has the wrong degree, or equals a generator already held.
//
// Register does not check that p is an automorphism; that is the caller's
// job.
func (g *Group) Register(p perm.Perm) bool {
	if len(p) != g.n || p.IsIdentity() {
		return false
	}
	for _, q := range g.gens {
		if q.Equal(p) {
			return false
		}
	}
	g.gens = append(g.gens, p.Clone())
	g.orbits.Add(p)
	return true
}

// Generators returns a copy of the generator list in registration order.
func (g *Group) Generators() []perm.Perm {
	out := make([]perm.Perm, len(g.gens))
	for i, p := range g.gens {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of generators.
func (g *Group) Len() int { return len(g.gens) }

// OrbitOf returns the id of the orbit containing v: its smallest vertex.
func (g *Group) OrbitOf(v int) int { return g.orbits.Find(v) }

// Orbits returns the orbits of the generated group, ordered by smallest
// vertex, each listed in ascending order. Every vertex appears exactly once;
// fixed points are singleton orbits.
func (g *Group) Orbits() [][]int { return g.orbits.Classes() }

// StabilizerOrbits returns the orbits of the subgroup generated by the
// generators that fix every point in fixed.
func (g *Group) StabilizerOrbits(fixed []int) *Orbits {
	o := NewOrbits(g.n)
	for _, p := range g.gens {
		if p.Fixes(fixed) {
			o.Add(p)
		}
	}
	return o
}

// Finalize returns the product, over every level i of base, of the size of
// the orbit of base[i] under the generators fixing base[:i].
//
// This equals the group order when the generators form a strong generating
// set relative to base, which is the case for the generators collected by a
// complete individualization-refinement search along that base. Use [Chain]
// when that is not guaranteed.
func (g *Group) Finalize(base []int) *big.Int {
	order := big.NewInt(1)
	var size big.Int
	for i, b := range base {
		size.SetInt64(int64(g.StabilizerOrbits(base[:i]).Size(b)))
		order.Mul(order, &size)
	}
	return order
}
