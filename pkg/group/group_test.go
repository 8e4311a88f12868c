package group

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/autgroup/pkg/perm"
)

func TestRegister(t *testing.T) {
	g := New(3)
	swap := perm.Perm{2, 1, 0}

	if g.Register(perm.Identity(3)) {
		t.Error("identity should be rejected")
	}
	if !g.Register(swap) {
		t.Error("first registration should succeed")
	}
	if g.Register(swap.Clone()) {
		t.Error("duplicate should be rejected")
	}
	if g.Register(perm.Perm{1, 0}) {
		t.Error("wrong degree should be rejected")
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}

	gens := g.Generators()
	gens[0][0] = 99
	if g.Generators()[0][0] != 2 {
		t.Error("Generators should return copies")
	}
}

func TestOrbits(t *testing.T) {
	tests := []struct {
		name string
		n    int
		gens []perm.Perm
		want [][]int
	}{
		{"trivial", 3, nil, [][]int{{0}, {1}, {2}}},
		{"path reversal", 3, []perm.Perm{{2, 1, 0}}, [][]int{{0, 2}, {1}}},
		{
			"two triangles",
			6,
			[]perm.Perm{
				perm.FromCycles(6, []int{0, 1}),
				perm.FromCycles(6, []int{0, 3}, []int{1, 4}, []int{2, 5}),
				perm.FromCycles(6, []int{1, 2}),
			},
			[][]int{{0, 1, 2, 3, 4, 5}},
		},
		{"empty", 0, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.n)
			for _, p := range tt.gens {
				g.Register(p)
			}
			if diff := cmp.Diff(tt.want, g.Orbits()); diff != "" {
				t.Errorf("Orbits mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOrbitOf(t *testing.T) {
	g := New(5)
	g.Register(perm.FromCycles(5, []int{4, 2}))
	g.Register(perm.FromCycles(5, []int{3, 4}))
	for v, want := range []int{0, 1, 2, 2, 2} {
		if got := g.OrbitOf(v); got != want {
			t.Errorf("OrbitOf(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestStabilizerOrbits(t *testing.T) {
	g := New(4)
	g.Register(perm.FromCycles(4, []int{0, 1}))
	g.Register(perm.FromCycles(4, []int{2, 3}))

	o := g.StabilizerOrbits([]int{0})
	if o.Same(0, 1) {
		t.Error("(0 1) does not fix 0")
	}
	if !o.Same(2, 3) {
		t.Error("(2 3) fixes 0 and should join 2 and 3")
	}
	if o.Size(2) != 2 || o.Size(0) != 1 {
		t.Errorf("sizes = %d, %d", o.Size(2), o.Size(0))
	}
}

func TestFinalize(t *testing.T) {
	g := New(4)
	g.Register(perm.FromCycles(4, []int{0, 1, 2, 3}))
	g.Register(perm.FromCycles(4, []int{1, 2, 3}))
	g.Register(perm.FromCycles(4, []int{2, 3}))

	if got := g.Finalize([]int{0, 1, 2}); got.Cmp(big.NewInt(24)) != 0 {
		t.Errorf("Finalize = %s, want 24", got)
	}
	if got := New(3).Finalize(nil); got.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("Finalize(empty base) = %s, want 1", got)
	}
}
