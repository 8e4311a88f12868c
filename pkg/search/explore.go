package search

import (
	"context"
	"fmt"
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/matzehuels/autgroup/pkg/partition"
)

// frame is a pending child: individualize v in cell of parent.
type frame struct {
	parent *partition.Partition
	cell   int
	v      int
	depth  int   // depth of the child
	seq    []int // vertices individualized from the root to the child
}

// explore searches the subtree rooted at the child of reference node i that
// individualizes w. It stops at the first leaf equivalent to the reference
// leaf and reports whether one was found.
//
// Nodes are kept on an explicit stack so a cancelled search returns from a
// single check instead of unwinding recursion.
func (s *searcher) explore(ctx context.Context, i, w int) (bool, error) {
	stack := arraystack.New()
	stack.Push(frame{
		parent: s.path[i].p,
		cell:   s.path[i].cell,
		v:      w,
		depth:  i + 1,
		seq:    slices.Concat(s.base[:i], []int{w}),
	})

	for !stack.Empty() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		top, _ := stack.Pop()
		f := top.(frame)

		p, err := partition.Individualize(s.g, f.parent, f.cell, f.v)
		if err != nil {
			panic(fmt.Sprintf("search: child %v: %v", f.seq, err))
		}
		s.visit()

		if p.IsDiscrete() {
			s.stats.leaves.Add(1)
			if s.detect(p.Order()) {
				return true, nil
			}
			continue
		}

		ref := s.path[min(f.depth, len(s.path)-1)]
		if f.depth >= len(s.path) || ref.cell < 0 || partition.Invariant(s.g, p) != ref.inv {
			s.stats.pruned.Add(1)
			continue
		}

		cell := p.TargetCell()
		orb := s.stabilizer(f.seq)
		var kids []int
		for _, u := range p.Cell(cell) {
			if slices.ContainsFunc(kids, func(k int) bool { return orb.Same(u, k) }) {
				s.stats.orbitSkips.Add(1)
				continue
			}
			kids = append(kids, u)
		}
		for k := len(kids) - 1; k >= 0; k-- {
			stack.Push(frame{
				parent: p,
				cell:   cell,
				v:      kids[k],
				depth:  f.depth + 1,
				seq:    slices.Concat(f.seq, []int{kids[k]}),
			})
		}
	}
	return false, nil
}
