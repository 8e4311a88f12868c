package graph

// Named graph families. Each constructor returns a graph whose vertex count
// and edges are fully determined by its arguments, which makes them handy as
// fixtures with known automorphism groups.

// Complete returns K_n. Its automorphism group is the full symmetric group.
func Complete(n int) *Graph {
	edges := make([][2]int, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return mustNew(n, edges)
}

// Empty returns the edgeless graph on n vertices.
func Empty(n int) *Graph {
	return mustNew(n, nil)
}

// Path returns P_n, the path 0-1-...-(n-1).
func Path(n int) *Graph {
	var edges [][2]int
	for v := 0; v+1 < n; v++ {
		edges = append(edges, [2]int{v, v + 1})
	}
	return mustNew(n, edges)
}

// Cycle returns C_n for n >= 3. Smaller n degrade to Path(n).
func Cycle(n int) *Graph {
	if n < 3 {
		return Path(n)
	}
	edges := make([][2]int, 0, n)
	for v := 0; v < n; v++ {
		edges = append(edges, [2]int{v, (v + 1) % n})
	}
	return mustNew(n, edges)
}

// Star returns K_{1,n-1} with center 0.
func Star(n int) *Graph {
	var edges [][2]int
	for v := 1; v < n; v++ {
		edges = append(edges, [2]int{0, v})
	}
	return mustNew(n, edges)
}

// Petersen returns the Petersen graph: outer cycle 0..4, inner pentagram
// 5..9, spokes i-(i+5).
func Petersen() *Graph {
	var edges [][2]int
	for i := 0; i < 5; i++ {
		edges = append(edges,
			[2]int{i, (i + 1) % 5},
			[2]int{5 + i, 5 + (i+2)%5},
			[2]int{i, i + 5},
		)
	}
	return mustNew(10, edges)
}

// Hypercube returns Q_d on 2^d vertices, where two vertices are adjacent
// when their labels differ in exactly one bit.
func Hypercube(d int) *Graph {
	n := 1 << d
	var edges [][2]int
	for v := 0; v < n; v++ {
		for b := 0; b < d; b++ {
			if u := v ^ (1 << b); v < u {
				edges = append(edges, [2]int{v, u})
			}
		}
	}
	return mustNew(n, edges)
}

// DisjointUnion returns the graph with the vertices of each input relabeled
// consecutively: the vertices of gs[0] first, then gs[1], and so on.
func DisjointUnion(gs ...*Graph) *Graph {
	n := 0
	var edges [][2]int
	for _, g := range gs {
		for _, e := range g.Edges() {
			edges = append(edges, [2]int{e[0] + n, e[1] + n})
		}
		n += g.n
	}
	return mustNew(n, edges)
}

func mustNew(n int, edges [][2]int) *Graph {
	g, err := New(max(n, 0), edges)
	if err != nil {
		panic(err)
	}
	return g
}
