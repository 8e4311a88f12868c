package io

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/autgroup/pkg/errors"
	"github.com/matzehuels/autgroup/pkg/graph"
	"github.com/matzehuels/autgroup/pkg/search"
)

func TestReadJSON(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(`{"n": 3, "edges": [[0, 1], [1, 2], [2, 2]]}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	want := &Descriptor{N: 3, Edges: [][2]int{{0, 1}, {1, 2}, {2, 2}}}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("descriptor mismatch (-want +got):\n%s", diff)
	}
	if d.SelfLoops() != 1 {
		t.Errorf("SelfLoops = %d, want 1", d.SelfLoops())
	}

	g, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"n": 3, "edges": [`},
		{"missing n", `{"edges": []}`},
		{"negative n", `{"n": -2, "edges": []}`},
		{"short edge", `{"n": 3, "edges": [[0]]}`},
		{"long edge", `{"n": 3, "edges": [[0, 1, 2]]}`},
		{"fractional vertex", `{"n": 3, "edges": [[0, 1.5]]}`},
		{"string n", `{"n": "3", "edges": []}`},
		{"missing edges", `{"n": 3}`},
		{"null edges", `{"n": 3, "edges": null}`},
		{"edges not an array", `{"n": 3, "edges": {}}`},
		{"trailing data", `{"n": 3, "edges": []} trailing`},
		{"second document", `{"n": 3, "edges": []} {"n": 1, "edges": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("err = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestReadJSONEdgeless(t *testing.T) {
	d, err := ReadJSON(strings.NewReader("{\"n\": 3, \"edges\": []}\n\n"))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if d.N != 3 || len(d.Edges) != 0 {
		t.Errorf("descriptor = %+v, want 3 vertices and no edges", d)
	}
}

func TestBuildOutOfRange(t *testing.T) {
	d, err := ReadJSON(strings.NewReader(`{"n": 2, "edges": [[0, 2]]}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	_, err = d.Build()
	if !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("err = %v, want INVALID_GRAPH", err)
	}
}

func TestFromGraphRoundTrip(t *testing.T) {
	g := graph.Petersen()
	var buf bytes.Buffer
	if err := WriteDescriptor(FromGraph(g), &buf); err != nil {
		t.Fatal(err)
	}
	d, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	h, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	if !h.Equal(g) {
		t.Error("round trip changed the graph")
	}
}

func petersenResult(t *testing.T) *Result {
	t.Helper()
	res, err := search.Run(context.Background(), graph.Petersen(), search.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return NewResult(res)
}

func TestWriteJSON(t *testing.T) {
	r := petersenResult(t)
	var buf bytes.Buffer
	if err := WriteJSON(r, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"order": 120`) {
		t.Errorf("order should be a JSON number:\n%s", buf.String())
	}

	back, err := ReadResultJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if back.Order.Cmp(big.NewInt(120)) != 0 || back.NumGenerators != len(r.Generators) {
		t.Errorf("decoded %+v", back)
	}
}

func TestWriteJSONLargeOrder(t *testing.T) {
	res, err := search.Run(context.Background(), graph.Complete(25), search.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteJSON(NewResult(res), &buf); err != nil {
		t.Fatal(err)
	}
	// 25! does not fit in 64 bits.
	if !strings.Contains(buf.String(), `"order": 15511210043330985984000000`) {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	r := petersenResult(t)
	var buf bytes.Buffer
	if err := Write(r, "YAML", &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`order: "120"`, "num_generators:", "orbits: [[0, 1, 2, 3, 4, 5, 6, 7, 8, 9]]", "degraded: false"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&Result{Order: big.NewInt(1)}, "xml", &bytes.Buffer{}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}
