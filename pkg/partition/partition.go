package partition

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrBadCell is returned by Individualize when the cell index is out of
	// range, the vertex is not in that cell, or the cell is already a singleton.
	ErrBadCell = errors.New("bad target cell")

	// ErrInvalidCells is returned by FromCells when the cells are not a
	// partition of 0..n-1 into nonempty parts.
	ErrInvalidCells = errors.New("cells do not partition the vertex set")
)

// Partition is an ordered sequence of disjoint nonempty cells covering the
// vertices 0..n-1. Cell order is significant: it decides which cell is split
// first and which cell the search branches on.
//
// Vertices inside a cell are kept in ascending order. Partitions are treated
// as values; every operation that changes cells returns a new Partition.
type Partition struct {
	cells  [][]int
	cellOf []int
}

// Unit returns the partition with a single cell holding every vertex.
// For n == 0 it has no cells.
func Unit(n int) *Partition {
	p := &Partition{cellOf: make([]int, n)}
	if n > 0 {
		cell := make([]int, n)
		for v := range cell {
			cell[v] = v
		}
		p.cells = [][]int{cell}
	}
	return p
}

// FromCells builds a partition of 0..n-1 from explicit cells, in the given
// order. It returns ErrInvalidCells if a cell is empty, a vertex is out of
// range or repeated, or a vertex is missing.
func FromCells(n int, cells [][]int) (*Partition, error) {
	p := &Partition{cellOf: make([]int, n), cells: make([][]int, 0, len(cells))}
	seen := make([]bool, n)
	covered := 0
	for i, c := range cells {
		if len(c) == 0 {
			return nil, fmt.Errorf("%w: cell %d is empty", ErrInvalidCells, i)
		}
		for _, v := range c {
			if v < 0 || v >= n || seen[v] {
				return nil, fmt.Errorf("%w: vertex %d in cell %d", ErrInvalidCells, v, i)
			}
			seen[v] = true
			p.cellOf[v] = i
			covered++
		}
		cell := slices.Clone(c)
		slices.Sort(cell)
		p.cells = append(p.cells, cell)
	}
	if covered != n {
		return nil, fmt.Errorf("%w: %d of %d vertices covered", ErrInvalidCells, covered, n)
	}
	return p, nil
}

// Len returns the number of cells.
func (p *Partition) Len() int { return len(p.cells) }

// Cell returns the vertices of cell i. The slice must not be modified.
func (p *Partition) Cell(i int) []int { return p.cells[i] }

// Cells returns a deep copy of all cells in order.
func (p *Partition) Cells() [][]int {
	out := make([][]int, len(p.cells))
	for i, c := range p.cells {
		out[i] = slices.Clone(c)
	}
	return out
}

// CellOf returns the index of the cell containing v.
func (p *Partition) CellOf(v int) int { return p.cellOf[v] }

// IsDiscrete reports whether every cell is a singleton.
func (p *Partition) IsDiscrete() bool { return len(p.cells) == len(p.cellOf) }

// TargetCell returns the index of the first non-singleton cell, or -1 if p
// is discrete.
func (p *Partition) TargetCell() int {
	for i, c := range p.cells {
		if len(c) > 1 {
			return i
		}
	}
	return -1
}

// Order returns the vertices listed cell by cell. For a discrete partition
// this is the total order it encodes: Order()[r] is the vertex of rank r.
func (p *Partition) Order() []int {
	out := make([]int, 0, len(p.cellOf))
	for _, c := range p.cells {
		out = append(out, c...)
	}
	return out
}

// Sizes returns the cell sizes in order.
func (p *Partition) Sizes() []int {
	out := make([]int, len(p.cells))
	for i, c := range p.cells {
		out[i] = len(c)
	}
	return out
}

// Clone returns a deep copy of p.
func (p *Partition) Clone() *Partition {
	return &Partition{cells: p.Cells(), cellOf: slices.Clone(p.cellOf)}
}

// Equal reports whether p and q have the same cells in the same order.
func (p *Partition) Equal(q *Partition) bool {
	return slices.EqualFunc(p.cells, q.cells, slices.Equal)
}

// String renders p as "[0 2 | 1]".
func (p *Partition) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range p.cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		for j, v := range c {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
	}
	b.WriteByte(']')
	return b.String()
}

// reindex rebuilds cellOf after the cell list changed.
func (p *Partition) reindex() {
	for i, c := range p.cells {
		for _, v := range c {
			p.cellOf[v] = i
		}
	}
}
