package search

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/autgroup/pkg/graph"
	"github.com/matzehuels/autgroup/pkg/group"
	"github.com/matzehuels/autgroup/pkg/partition"
	"github.com/matzehuels/autgroup/pkg/perm"
)

// Result is the outcome of a search.
type Result struct {
	// Order is the exact order of the automorphism group. For a degraded
	// result it is the order of the subgroup generated by Generators.
	Order *big.Int

	// Generators are verified automorphisms generating the group. Each maps
	// vertex i to Generators[k][i]. A generator found at a leaf sends the
	// vertex at rank r of the earlier leaf it matched (the reference or the
	// canonical leaf) to the vertex at rank r of the new leaf.
	Generators []perm.Perm

	// Orbits partitions 0..n-1 into orbits, ordered by smallest vertex, each
	// ascending.
	Orbits [][]int

	// Base is the sequence of vertices individualized on the reference path.
	Base []int

	// Degraded is set when the search was aborted.
	Degraded bool

	Stats Stats
}

// node is a search node on the reference path.
type node struct {
	p    *partition.Partition
	inv  uint64
	cell int // target cell, -1 at the leaf
}

type counters struct {
	nodes, leaves, pruned, orbitSkips, canonical atomic.Int64
}

type searcher struct {
	g     *graph.Graph
	opts  Options
	start time.Time

	path []node // path[d] is the reference node at depth d
	base []int  // base[d] is the vertex individualized at path[d]
	ref  []int  // vertex order of the reference leaf

	mu    sync.Mutex // guards grp, canon and Progress calls
	grp   *group.Group
	canon *leaf

	stats counters
}

// Run computes the automorphism group of g by individualization-refinement.
//
// The search first follows the leftmost branch to a reference leaf, fixing
// the base. It then revisits the base levels from the deepest to the root.
// At each level every vertex of the target cell that is not already known to
// be equivalent to the base vertex is tried, exploring its subtree until a
// leaf equivalent to the reference leaf yields an automorphism or the subtree
// is exhausted. Subtrees whose node invariant departs from the reference path
// are cut, and sibling branches in one orbit of the pointwise stabilizer of
// the current prefix are tried only once.
//
// When ctx is cancelled or opts.Timeout elapses, Run returns a degraded
// Result together with an [*AbortedError].
func Run(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", graph.ErrInvalidGraph)
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	s := &searcher{
		g:     g,
		opts:  opts,
		start: time.Now(),
		grp:   group.New(g.VertexCount()),
	}

	levels, at, err := s.run(ctx)
	res := s.result(err != nil)
	s.report()
	if s.opts.Debug != nil {
		s.opts.Debug(DebugInfo{Levels: levels, Stats: res.Stats})
	}
	if err != nil {
		return res, &AbortedError{Cause: err, Level: at}
	}
	return res, nil
}

// run descends the reference path and then processes the levels. It returns
// the info of every completed level ordered by depth and, on failure, the
// level that was interrupted (-1 during the descent).
func (s *searcher) run(ctx context.Context) ([]LevelInfo, int, error) {
	if err := s.descend(ctx); err != nil {
		return nil, -1, err
	}

	levels := make([]LevelInfo, len(s.base))
	for i := len(s.base) - 1; i >= 0; i-- {
		info, err := s.level(ctx, i)
		if err != nil {
			return levels[i+1:], i, err
		}
		levels[i] = info
	}
	return levels, 0, nil
}

// descend builds the reference path by always individualizing the first
// vertex of the target cell. The leaf it reaches is the reference leaf and
// the first canonical candidate.
func (s *searcher) descend(ctx context.Context) error {
	p := partition.Refine(s.g, partition.Unit(s.g.VertexCount()))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.stats.nodes.Add(1)
		cell := p.TargetCell()
		s.path = append(s.path, node{p: p, inv: partition.Invariant(s.g, p), cell: cell})
		if cell < 0 {
			break
		}
		v := p.Cell(cell)[0]
		s.base = append(s.base, v)
		next, err := partition.Individualize(s.g, p, cell, v)
		if err != nil {
			panic(fmt.Sprintf("search: reference path: %v", err))
		}
		p = next
	}
	s.stats.leaves.Add(1)
	s.ref = p.Order()
	s.canon = newLeaf(s.g, s.ref)
	return nil
}

// level tries every candidate of the target cell at base level i.
func (s *searcher) level(ctx context.Context, i int) (LevelInfo, error) {
	nd := s.path[i]
	cell := nd.p.Cell(nd.cell)
	fixed := s.base[:i]
	info := LevelInfo{Depth: i, Vertex: s.base[i], CellSize: len(cell)}

	var eg *errgroup.Group
	egCtx := ctx
	if s.opts.Workers > 1 {
		eg, egCtx = errgroup.WithContext(ctx)
		eg.SetLimit(s.opts.Workers)
	}

	tried := []int{s.base[i]}
	for _, w := range cell {
		if w == s.base[i] {
			continue
		}
		orb := s.stabilizer(fixed)
		if slices.ContainsFunc(tried, func(t int) bool { return orb.Same(w, t) }) {
			s.stats.orbitSkips.Add(1)
			continue
		}
		tried = append(tried, w)
		info.Candidates++

		if eg == nil {
			if _, err := s.explore(ctx, i, w); err != nil {
				return info, err
			}
			continue
		}
		eg.Go(func() error {
			_, err := s.explore(egCtx, i, w)
			return err
		})
	}
	if eg != nil {
		if err := eg.Wait(); err != nil {
			return info, err
		}
		// Wait also returns nil when the parent was cancelled between launches.
		if err := ctx.Err(); err != nil {
			return info, err
		}
	}

	info.OrbitSize = s.stabilizer(fixed).Size(s.base[i])
	return info, nil
}

// stabilizer returns the orbits of the known automorphisms fixing prefix.
func (s *searcher) stabilizer(prefix []int) *group.Orbits {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grp.StabilizerOrbits(prefix)
}

// visit counts a node and triggers a periodic progress report.
func (s *searcher) visit() {
	if s.stats.nodes.Add(1)%progressEvery == 0 {
		s.report()
	}
}

func (s *searcher) report() {
	if s.opts.Progress == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Progress(s.snapshot())
}

// snapshot must be called with s.mu held.
func (s *searcher) snapshot() Stats {
	return Stats{
		Nodes:            s.stats.nodes.Load(),
		Leaves:           s.stats.leaves.Load(),
		Pruned:           s.stats.pruned.Load(),
		OrbitSkips:       s.stats.orbitSkips.Load(),
		CanonicalUpdates: s.stats.canonical.Load(),
		Generators:       s.grp.Len(),
		Elapsed:          time.Since(s.start),
	}
}

// result assembles the Result. A complete search derives the order from the
// base; an aborted one falls back to a Schreier-Sims chain over whatever
// generators were found.
func (s *searcher) result(aborted bool) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.g.VertexCount()
	gens := s.grp.Generators()
	res := &Result{
		Generators: gens,
		Orbits:     s.grp.Orbits(),
		Base:       slices.Clone(s.base),
		Degraded:   aborted,
		Stats:      s.snapshot(),
	}
	if res.Orbits == nil {
		res.Orbits = [][]int{}
	}
	if res.Base == nil {
		res.Base = []int{}
	}

	if aborted {
		res.Order = group.NewChain(n, gens, s.base).Order()
		return res
	}

	res.Order = s.grp.Finalize(s.base)
	if s.opts.Verify {
		if c := group.NewChain(n, gens, s.base); c.Order().Cmp(res.Order) != 0 {
			panic(fmt.Sprintf("search: order %s from base %v disagrees with Schreier-Sims order %s",
				res.Order, s.base, c.Order()))
		}
	}
	return res
}
