package search

import (
	"context"
	"errors"
	"math/big"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/autgroup/pkg/graph"
	"github.com/matzehuels/autgroup/pkg/group"
	"github.com/matzehuels/autgroup/pkg/perm"
)

func mustGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()
	g, err := graph.New(n, edges)
	if err != nil {
		t.Fatalf("graph.New: %v", err)
	}
	return g
}

// rook returns the k x k rook's graph: cells adjacent when they share a row
// or a column.
func rook(t *testing.T, k int) *graph.Graph {
	var edges [][2]int
	for u := 0; u < k*k; u++ {
		for v := u + 1; v < k*k; v++ {
			if u/k == v/k || u%k == v%k {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return mustGraph(t, k*k, edges)
}

func completeBipartite(t *testing.T, a, b int) *graph.Graph {
	var edges [][2]int
	for u := 0; u < a; u++ {
		for v := a; v < a+b; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return mustGraph(t, a+b, edges)
}

// checkResult asserts the properties every complete result must have.
func checkResult(t *testing.T, g *graph.Graph, res *Result) {
	t.Helper()
	for _, p := range res.Generators {
		if !g.IsAutomorphism(p) {
			t.Errorf("generator %v is not an automorphism", p)
		}
	}
	seen := make([]bool, g.VertexCount())
	orbitOf := make([]int, g.VertexCount())
	for i, o := range res.Orbits {
		for _, v := range o {
			if seen[v] {
				t.Errorf("vertex %d in two orbits", v)
			}
			seen[v] = true
			orbitOf[v] = i
		}
	}
	for v, ok := range seen {
		if !ok {
			t.Errorf("vertex %d in no orbit", v)
		}
	}
	for _, p := range res.Generators {
		for v := range p {
			if orbitOf[v] != orbitOf[p[v]] {
				t.Errorf("generator %v moves %d out of its orbit", p, v)
			}
		}
	}
	if c := group.NewChain(g.VertexCount(), res.Generators, nil); c.Order().Cmp(res.Order) != 0 {
		t.Errorf("generators generate a group of order %s, result says %s", c.Order(), res.Order)
	}
}

func TestRunKnownGroups(t *testing.T) {
	tests := []struct {
		name   string
		g      *graph.Graph
		order  *big.Int
		orbits [][]int // nil to skip
	}{
		{"no vertices", graph.Empty(0), big.NewInt(1), [][]int{}},
		{"single vertex", graph.Empty(1), big.NewInt(1), [][]int{{0}}},
		{"K2", graph.Complete(2), big.NewInt(2), [][]int{{0, 1}}},
		{"K5", graph.Complete(5), perm.Factorial(5), [][]int{{0, 1, 2, 3, 4}}},
		{"K8", graph.Complete(8), perm.Factorial(8), [][]int{{0, 1, 2, 3, 4, 5, 6, 7}}},
		{"edgeless 6", graph.Empty(6), perm.Factorial(6), [][]int{{0, 1, 2, 3, 4, 5}}},
		{"P3", graph.Path(3), big.NewInt(2), [][]int{{0, 2}, {1}}},
		{"P4", graph.Path(4), big.NewInt(2), [][]int{{0, 3}, {1, 2}}},
		{"two triangles", graph.DisjointUnion(graph.Complete(3), graph.Complete(3)), big.NewInt(72), [][]int{{0, 1, 2, 3, 4, 5}}},
		{"star", graph.Star(5), big.NewInt(24), [][]int{{0}, {1, 2, 3, 4}}},
		{"C5", graph.Cycle(5), big.NewInt(10), [][]int{{0, 1, 2, 3, 4}}},
		{"C8", graph.Cycle(8), big.NewInt(16), nil},
		{"C5 complement", graph.Cycle(5).Complement(), big.NewInt(10), nil},
		{"petersen", graph.Petersen(), big.NewInt(120), [][]int{{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}}},
		{"Q3", graph.Hypercube(3), big.NewInt(48), nil},
		{"Q4", graph.Hypercube(4), big.NewInt(384), nil},
		{"rook 3x3", rook(t, 3), big.NewInt(72), nil},
		{"K3,3", completeBipartite(t, 3, 3), big.NewInt(72), nil},
		{"K2,3", completeBipartite(t, 2, 3), big.NewInt(12), [][]int{{0, 1}, {2, 3, 4}}},
		{"path plus isolated", mustGraph(t, 4, [][2]int{{0, 1}, {1, 2}}), big.NewInt(2), [][]int{{0, 2}, {1}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(context.Background(), tt.g, Options{Verify: true})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Order.Cmp(tt.order) != 0 {
				t.Errorf("Order = %s, want %s", res.Order, tt.order)
			}
			if tt.orbits != nil {
				if diff := cmp.Diff(tt.orbits, res.Orbits); diff != "" {
					t.Errorf("Orbits mismatch (-want +got):\n%s", diff)
				}
			}
			if res.Degraded {
				t.Error("complete search marked degraded")
			}
			checkResult(t, tt.g, res)
		})
	}
}

// bruteForce counts automorphisms by trying every permutation.
func bruteForce(g *graph.Graph) (int64, [][]int) {
	n := g.VertexCount()
	orbits := group.NewOrbits(n)
	var count int64
	for p := range perm.All(n) {
		if g.IsAutomorphism(p) {
			count++
			orbits.Add(p)
		}
	}
	return count, orbits.Classes()
}

func TestRunMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for trial := 0; trial < 80; trial++ {
		n := 1 + rng.IntN(7)
		density := 1 + rng.IntN(4)
		var edges [][2]int
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.IntN(5) < density {
					edges = append(edges, [2]int{u, v})
				}
			}
		}
		g := mustGraph(t, n, edges)

		wantOrder, wantOrbits := bruteForce(g)
		res, err := Run(context.Background(), g, Options{Verify: true})
		if err != nil {
			t.Fatalf("trial %d: Run: %v", trial, err)
		}
		if res.Order.Cmp(big.NewInt(wantOrder)) != 0 {
			t.Fatalf("trial %d: edges %v: Order = %s, want %d", trial, edges, res.Order, wantOrder)
		}
		if diff := cmp.Diff(wantOrbits, res.Orbits); diff != "" {
			t.Fatalf("trial %d: edges %v: Orbits mismatch (-want +got):\n%s", trial, edges, diff)
		}
		checkResult(t, g, res)
	}
}

func TestRunDeterministic(t *testing.T) {
	g := graph.Petersen()
	a, err := Run(context.Background(), g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(context.Background(), g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if a.Order.Cmp(b.Order) != 0 {
		t.Errorf("orders differ: %s vs %s", a.Order, b.Order)
	}
	if diff := cmp.Diff(a.Orbits, b.Orbits); diff != "" {
		t.Errorf("orbits differ:\n%s", diff)
	}
	if diff := cmp.Diff(a.Generators, b.Generators); diff != "" {
		t.Errorf("sequential generator lists differ:\n%s", diff)
	}
	if diff := cmp.Diff(a.Base, b.Base); diff != "" {
		t.Errorf("bases differ:\n%s", diff)
	}
}

func TestRunRelabeled(t *testing.T) {
	g := graph.Hypercube(3)
	rng := rand.New(rand.NewPCG(3, 5))
	want, err := Run(context.Background(), g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for trial := 0; trial < 5; trial++ {
		h := g.Permute(perm.Perm(rng.Perm(g.VertexCount())))
		got, err := Run(context.Background(), h, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if got.Order.Cmp(want.Order) != 0 {
			t.Errorf("trial %d: Order = %s, want %s", trial, got.Order, want.Order)
		}
	}
}

func TestRunNilGraph(t *testing.T) {
	if _, err := Run(context.Background(), nil, Options{}); !errors.Is(err, graph.ErrInvalidGraph) {
		t.Errorf("err = %v, want ErrInvalidGraph", err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, graph.Petersen(), Options{})
	if !errors.Is(err, ErrSearchAborted) {
		t.Fatalf("err = %v, want ErrSearchAborted", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, should wrap context.Canceled", err)
	}
	var ae *AbortedError
	if !errors.As(err, &ae) || ae.Level != -1 {
		t.Errorf("err = %#v, want AbortedError at level -1", err)
	}
	if res == nil || !res.Degraded {
		t.Fatalf("want a degraded result, got %+v", res)
	}
	if res.Order.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Order = %s, want 1 for an empty partial group", res.Order)
	}
}

func TestRunDeadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := Run(ctx, graph.Complete(6), Options{})
	if !errors.Is(err, context.DeadlineExceeded) || !errors.Is(err, ErrSearchAborted) {
		t.Errorf("err = %v, want aborted by deadline", err)
	}
}

func TestRunAbortMidSearch(t *testing.T) {
	old := progressEvery
	progressEvery = 1
	t.Cleanup(func() { progressEvery = old })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := graph.Complete(12)
	res, err := Run(ctx, g, Options{
		Progress: func(s Stats) {
			if s.Generators > 0 {
				cancel()
			}
		},
	})
	var ae *AbortedError
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want AbortedError", err)
	}
	if ae.Level < 0 {
		t.Errorf("Level = %d, want a base level", ae.Level)
	}
	if !res.Degraded {
		t.Error("aborted result should be degraded")
	}
	if len(res.Generators) == 0 {
		t.Fatal("expected the generators found before the abort")
	}
	for _, p := range res.Generators {
		if !g.IsAutomorphism(p) {
			t.Errorf("partial generator %v is not an automorphism", p)
		}
	}
	if res.Order.Cmp(big.NewInt(1)) <= 0 || res.Order.Cmp(perm.Factorial(12)) >= 0 {
		t.Errorf("partial order %s should lie strictly between 1 and 12!", res.Order)
	}
}

func TestRunReportsProgressAndDebug(t *testing.T) {
	var progress []Stats
	var debug []DebugInfo
	res, err := Run(context.Background(), graph.Petersen(), Options{
		Progress: func(s Stats) { progress = append(progress, s) },
		Debug:    func(d DebugInfo) { debug = append(debug, d) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(progress) == 0 {
		t.Fatal("Progress never called")
	}
	last := progress[len(progress)-1]
	if last.Generators != len(res.Generators) {
		t.Errorf("final Progress reports %d generators, want %d", last.Generators, len(res.Generators))
	}
	if len(debug) != 1 {
		t.Fatalf("Debug called %d times, want 1", len(debug))
	}

	levels := debug[0].Levels
	if len(levels) != len(res.Base) {
		t.Fatalf("%d levels, want %d", len(levels), len(res.Base))
	}
	product := big.NewInt(1)
	for i, l := range levels {
		if l.Depth != i || l.Vertex != res.Base[i] {
			t.Errorf("level %d = %+v, base %v", i, l, res.Base)
		}
		product.Mul(product, big.NewInt(int64(l.OrbitSize)))
	}
	if product.Cmp(res.Order) != 0 {
		t.Errorf("orbit size product %s != order %s", product, res.Order)
	}
	if res.Stats.Nodes == 0 || res.Stats.Leaves == 0 {
		t.Errorf("empty stats %+v", res.Stats)
	}
}

func TestRunProgressInterval(t *testing.T) {
	old := progressEvery
	progressEvery = 3
	t.Cleanup(func() { progressEvery = old })

	var progress []Stats
	res, err := Run(context.Background(), graph.Petersen(), Options{
		Progress: func(s Stats) { progress = append(progress, s) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(progress) < 2 {
		t.Fatalf("Progress called %d times, want periodic calls plus a final one", len(progress))
	}
	for i, s := range progress[:len(progress)-1] {
		if s.Nodes%progressEvery != 0 {
			t.Errorf("call %d at %d nodes, want a multiple of %d", i, s.Nodes, progressEvery)
		}
	}
	if last := progress[len(progress)-1]; last.Nodes != res.Stats.Nodes {
		t.Errorf("final call at %d nodes, want %d", last.Nodes, res.Stats.Nodes)
	}
}

func TestDefaultProgressInterval(t *testing.T) {
	if progressEvery != 1024 {
		t.Errorf("progressEvery = %d, want 1024", progressEvery)
	}
}
