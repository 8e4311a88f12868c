package group

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/autgroup/pkg/perm"
)

func TestChainOrder(t *testing.T) {
	tests := []struct {
		name string
		n    int
		gens []perm.Perm
		base []int
		want int64
	}{
		{"trivial", 4, nil, nil, 1},
		{"empty degree", 0, nil, nil, 1},
		{"S4 two generators", 4, []perm.Perm{
			perm.FromCycles(4, []int{0, 1}),
			perm.FromCycles(4, []int{0, 1, 2, 3}),
		}, nil, 24},
		{"S6 with base hint", 6, []perm.Perm{
			perm.FromCycles(6, []int{0, 1}),
			perm.FromCycles(6, []int{0, 1, 2, 3, 4, 5}),
		}, []int{5, 4}, 720},
		{"A4", 4, []perm.Perm{
			perm.FromCycles(4, []int{0, 1, 2}),
			perm.FromCycles(4, []int{1, 2, 3}),
		}, nil, 12},
		{"C7", 7, []perm.Perm{
			perm.FromCycles(7, []int{0, 1, 2, 3, 4, 5, 6}),
		}, nil, 7},
		{"D5", 5, []perm.Perm{
			perm.FromCycles(5, []int{0, 1, 2, 3, 4}),
			perm.FromCycles(5, []int{1, 4}, []int{2, 3}),
		}, nil, 10},
		{"S3 wr S2", 6, []perm.Perm{
			perm.FromCycles(6, []int{0, 1}),
			perm.FromCycles(6, []int{1, 2}),
			perm.FromCycles(6, []int{0, 3}, []int{1, 4}, []int{2, 5}),
		}, []int{0, 3}, 72},
		{"duplicate base points ignored", 3, []perm.Perm{
			perm.FromCycles(3, []int{0, 1, 2}),
		}, []int{0, 0, 9}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChain(tt.n, tt.gens, tt.base)
			if got := c.Order(); got.Cmp(big.NewInt(tt.want)) != 0 {
				t.Errorf("Order = %s, want %d (base %v, orbits %v)", got, tt.want, c.Base(), c.OrbitSizes())
			}
		})
	}
}

func TestChainContains(t *testing.T) {
	a4 := NewChain(4, []perm.Perm{
		perm.FromCycles(4, []int{0, 1, 2}),
		perm.FromCycles(4, []int{1, 2, 3}),
	}, nil)

	if !a4.Contains(perm.FromCycles(4, []int{0, 1}, []int{2, 3})) {
		t.Error("A4 contains (0 1)(2 3)")
	}
	if a4.Contains(perm.FromCycles(4, []int{0, 1})) {
		t.Error("A4 does not contain a transposition")
	}
	if !a4.Contains(perm.Identity(4)) {
		t.Error("every group contains the identity")
	}
	if a4.Contains(perm.Perm{0, 0, 1, 2}) {
		t.Error("non-permutation accepted")
	}
}

func TestChainKeepsBasePrefix(t *testing.T) {
	c := NewChain(5, []perm.Perm{perm.FromCycles(5, []int{0, 1, 2, 3, 4})}, []int{3})
	if got := c.Base(); len(got) == 0 || got[0] != 3 {
		t.Errorf("Base = %v, want prefix [3]", got)
	}
}

// closure enumerates the group generated by gens by breadth-first search.
func closure(n int, gens []perm.Perm) int {
	seen := map[string]bool{perm.Identity(n).String(): true}
	queue := []perm.Perm{perm.Identity(n)}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, s := range gens {
			q := p.Then(s)
			if k := q.String(); !seen[k] {
				seen[k] = true
				queue = append(queue, q)
			}
		}
	}
	return len(seen)
}

func TestChainMatchesClosure(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 40; trial++ {
		n := 1 + rng.IntN(6)
		gens := make([]perm.Perm, rng.IntN(3))
		for i := range gens {
			gens[i] = perm.Perm(rng.Perm(n))
		}
		want := closure(n, gens)
		c := NewChain(n, gens, nil)
		if got := c.Order(); got.Cmp(big.NewInt(int64(want))) != 0 {
			t.Fatalf("trial %d: gens %v: Order = %s, want %d", trial, gens, got, want)
		}
		for _, s := range gens {
			if !c.Contains(s) {
				t.Fatalf("trial %d: generator %v not contained", trial, s)
			}
		}
	}
}

func TestFinalizeAgreesWithChainOnStrongGenerators(t *testing.T) {
	g := New(6)
	for _, p := range []perm.Perm{
		perm.FromCycles(6, []int{0, 1}),
		perm.FromCycles(6, []int{0, 3}, []int{1, 4}, []int{2, 5}),
		perm.FromCycles(6, []int{1, 2}),
		perm.FromCycles(6, []int{3, 4}),
		perm.FromCycles(6, []int{4, 5}),
	} {
		g.Register(p)
	}
	base := []int{0, 1, 3, 4}
	c := NewChain(6, g.Generators(), base)
	if g.Finalize(base).Cmp(c.Order()) != 0 {
		t.Errorf("Finalize = %s, Chain = %s", g.Finalize(base), c.Order())
	}
}
