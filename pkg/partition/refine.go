package partition

import (
	"fmt"
	"slices"

	"github.com/matzehuels/autgroup/pkg/graph"
)

// Refine returns the coarsest equitable partition finer than p.
//
// Each round computes, for every vertex in a non-singleton cell, its vector
// of neighbor counts into every current cell. A cell whose vertices disagree
// is replaced in place by sub-cells ordered by ascending count vector
// (lexicographic); vertices with equal vectors keep their relative order.
// All cells of a round are split against the same snapshot, and rounds repeat
// until nothing splits. Every productive round adds at least one cell, so at
// most n rounds run.
//
// The result depends only on p and g up to relabeling: for any automorphism
// or isomorphism σ, Refine(σ(g), σ(p)) = σ(Refine(g, p)). The search relies on
// this to compare leaves reached along different paths.
func Refine(g *graph.Graph, p *Partition) *Partition {
	q := p.Clone()
	for splitRound(g, q) {
	}
	return q
}

// splitRound performs one simultaneous split of every cell of p and reports
// whether any cell split.
func splitRound(g *graph.Graph, p *Partition) bool {
	k := len(p.cells)
	if k == len(p.cellOf) {
		return false
	}

	counts := make(map[int][]int)
	for _, c := range p.cells {
		if len(c) < 2 {
			continue
		}
		for _, v := range c {
			row := make([]int, k)
			g.IterateNeighbors(v, func(u int) bool {
				row[p.cellOf[u]]++
				return true
			})
			counts[v] = row
		}
	}

	split := false
	next := make([][]int, 0, k)
	for _, c := range p.cells {
		if len(c) < 2 {
			next = append(next, c)
			continue
		}
		sorted := slices.Clone(c)
		slices.SortStableFunc(sorted, func(a, b int) int {
			return slices.Compare(counts[a], counts[b])
		})
		start := 0
		for i := 1; i <= len(sorted); i++ {
			if i == len(sorted) || !slices.Equal(counts[sorted[i]], counts[sorted[start]]) {
				next = append(next, sorted[start:i:i])
				start = i
			}
		}
		if len(next) > 0 && len(next[len(next)-1]) != len(c) {
			split = true
		}
	}
	if !split {
		return false
	}
	p.cells = next
	p.reindex()
	return true
}

// Individualize splits vertex v out of cell into a singleton placed
// immediately before the rest of that cell, then refines.
//
// It returns ErrBadCell if cell is out of range, v is not in it, or the cell
// is already a singleton.
func Individualize(g *graph.Graph, p *Partition, cell, v int) (*Partition, error) {
	if cell < 0 || cell >= len(p.cells) {
		return nil, fmt.Errorf("%w: cell %d of %d", ErrBadCell, cell, len(p.cells))
	}
	if v < 0 || v >= len(p.cellOf) || p.cellOf[v] != cell {
		return nil, fmt.Errorf("%w: vertex %d not in cell %d", ErrBadCell, v, cell)
	}
	if len(p.cells[cell]) < 2 {
		return nil, fmt.Errorf("%w: cell %d is a singleton", ErrBadCell, cell)
	}

	old := p.cells[cell]
	rest := make([]int, 0, len(old)-1)
	for _, u := range old {
		if u != v {
			rest = append(rest, u)
		}
	}

	q := &Partition{
		cells:  make([][]int, 0, len(p.cells)+1),
		cellOf: make([]int, len(p.cellOf)),
	}
	q.cells = append(q.cells, p.cells[:cell]...)
	q.cells = append(q.cells, []int{v}, rest)
	q.cells = append(q.cells, p.cells[cell+1:]...)
	q.reindex()

	for splitRound(g, q) {
	}
	return q, nil
}

// IsEquitable reports whether every vertex of each cell has the same number
// of neighbors in every cell.
func IsEquitable(g *graph.Graph, p *Partition) bool {
	k := len(p.cells)
	for _, c := range p.cells {
		if len(c) < 2 {
			continue
		}
		var first []int
		for _, v := range c {
			row := make([]int, k)
			g.IterateNeighbors(v, func(u int) bool {
				row[p.cellOf[u]]++
				return true
			})
			if first == nil {
				first = row
			} else if !slices.Equal(first, row) {
				return false
			}
		}
	}
	return true
}
