package group

import "github.com/matzehuels/autgroup/pkg/perm"

// Orbits is a union-find over the points 0..n-1 whose classes are the orbits
// of the permutations added to it. The representative of a class is always
// its smallest point.
type Orbits struct {
	parent []int
	size   []int
}

// NewOrbits returns n singleton classes.
func NewOrbits(n int) *Orbits {
	o := &Orbits{parent: make([]int, n), size: make([]int, n)}
	for v := range o.parent {
		o.parent[v] = v
		o.size[v] = 1
	}
	return o
}

// Find returns the smallest point in the class of v.
func (o *Orbits) Find(v int) int {
	for o.parent[v] != v {
		o.parent[v] = o.parent[o.parent[v]]
		v = o.parent[v]
	}
	return v
}

// Union merges the classes of a and b and reports whether they were distinct.
func (o *Orbits) Union(a, b int) bool {
	ra, rb := o.Find(a), o.Find(b)
	if ra == rb {
		return false
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	o.parent[rb] = ra
	o.size[ra] += o.size[rb]
	return true
}

// Add merges every point with its image under p.
func (o *Orbits) Add(p perm.Perm) {
	for v, w := range p {
		o.Union(v, w)
	}
}

// Same reports whether a and b lie in one orbit.
func (o *Orbits) Same(a, b int) bool { return o.Find(a) == o.Find(b) }

// Size returns the size of the orbit of v.
func (o *Orbits) Size(v int) int { return o.size[o.Find(v)] }

// Classes returns the orbits ordered by smallest point, each ascending.
func (o *Orbits) Classes() [][]int {
	idx := make(map[int]int)
	var out [][]int
	for v := range o.parent {
		r := o.Find(v)
		i, ok := idx[r]
		if !ok {
			i = len(out)
			idx[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], v)
	}
	return out
}
