package perm

import (
	"iter"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// Perm is a permutation of [0, 1, ..., n-1] stored as its image table:
// p[i] is the image of i. A Perm is only meaningful when it is a bijection;
// use Valid to check values that come from outside the package.
type Perm []int

// Identity returns the identity permutation on n points, or an empty Perm
// for n <= 0.
func Identity(n int) Perm {
	p := make(Perm, max(n, 0))
	for i := range p {
		p[i] = i
	}
	return p
}

// FromCycles builds a permutation on n points from disjoint cycles.
// Points not mentioned in any cycle are fixed. FromCycles returns nil if a
// point is out of range or appears twice.
func FromCycles(n int, cycles ...[]int) Perm {
	p := Identity(n)
	seen := make([]bool, n)
	for _, c := range cycles {
		for i, v := range c {
			if v < 0 || v >= n || seen[v] {
				return nil
			}
			seen[v] = true
			p[v] = c[(i+1)%len(c)]
		}
	}
	return p
}

// Valid reports whether p is a bijection on [0, len(p)).
func (p Perm) Valid() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool {
	for i, v := range p {
		if i != v {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have the same image table.
func (p Perm) Equal(q Perm) bool {
	return slices.Equal(p, q)
}

// Apply returns the image of v under p.
func (p Perm) Apply(v int) int {
	return p[v]
}

// Fixes reports whether p fixes every vertex in points.
func (p Perm) Fixes(points []int) bool {
	for _, v := range points {
		if p[v] != v {
			return false
		}
	}
	return true
}

// Then returns the composition that applies p first and q second:
// the result maps i to q[p[i]]. Both permutations must have the same degree.
func (p Perm) Then(q Perm) Perm {
	r := make(Perm, len(p))
	for i, v := range p {
		r[i] = q[v]
	}
	return r
}

// Inverse returns the inverse permutation.
func (p Perm) Inverse() Perm {
	r := make(Perm, len(p))
	for i, v := range p {
		r[v] = i
	}
	return r
}

// Clone returns an independent copy of p.
func (p Perm) Clone() Perm {
	return slices.Clone(p)
}

// Support returns the points moved by p in ascending order.
func (p Perm) Support() []int {
	var moved []int
	for i, v := range p {
		if i != v {
			moved = append(moved, i)
		}
	}
	return moved
}

// Cycles returns the non-trivial cycles of p. Each cycle starts at its
// smallest point and cycles are ordered by that point.
func (p Perm) Cycles() [][]int {
	seen := make([]bool, len(p))
	var cycles [][]int
	for start := range p {
		if seen[start] || p[start] == start {
			continue
		}
		var c []int
		for v := start; !seen[v]; v = p[v] {
			seen[v] = true
			c = append(c, v)
		}
		cycles = append(cycles, c)
	}
	return cycles
}

// Order returns the order of p as an element of the symmetric group,
// the least common multiple of its cycle lengths.
func (p Perm) Order() *big.Int {
	order := big.NewInt(1)
	var gcd, length big.Int
	for _, c := range p.Cycles() {
		length.SetInt64(int64(len(c)))
		gcd.GCD(nil, nil, order, &length)
		order.Mul(order, length.Div(&length, &gcd))
	}
	return order
}

// String renders p in cycle notation, e.g. "(0 2)(1 3 4)". The identity is "()".
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, c := range cycles {
		b.WriteByte('(')
		for i, v := range c {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// Factorial returns n!, the order of the symmetric group on n points and
// so an upper bound on the automorphism group of any n-vertex graph. It is
// 1 for n <= 1.
func Factorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(n))
}

// All yields every permutation of n points (n! of them) in the order of
// Heap's algorithm, starting with the identity. The yielded Perm is reused
// between iterations; Clone it to keep it.
func All(n int) iter.Seq[Perm] {
	return func(yield func(Perm) bool) {
		p := Identity(n)
		if !yield(p) {
			return
		}
		// c[k] counts the swaps done at level k, as in the iterative form
		// of Heap's algorithm.
		c := make([]int, n)
		for k := 1; k < n; {
			if c[k] >= k {
				c[k] = 0
				k++
				continue
			}
			j := 0
			if k%2 == 1 {
				j = c[k]
			}
			p[j], p[k] = p[k], p[j]
			if !yield(p) {
				return
			}
			c[k]++
			k = 1
		}
	}
}
