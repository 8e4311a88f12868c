package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/autgroup/pkg/errors"
	"github.com/matzehuels/autgroup/pkg/graph"
)

// Descriptor is a decoded graph description.
type Descriptor struct {
	N     int      `json:"n"`
	Edges [][2]int `json:"edges"`
}

type rawDescriptor struct {
	N     *int     `json:"n"`
	Edges *[][]int `json:"edges"`
}

// ReadJSON decodes a descriptor from r.
//
// ReadJSON returns an INVALID_INPUT error if the JSON is malformed or
// followed by more data, "n" is missing or negative, "edges" is missing or
// not an array, or an edge is not a pair of integers. An edgeless graph is
// written with "edges": []. Range checks of the endpoints are left to
// [Descriptor.Build]. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Descriptor, error) {
	dec := json.NewDecoder(r)
	var raw rawDescriptor
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed graph descriptor")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected data after the graph descriptor")
	}
	if raw.N == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, `graph descriptor is missing "n"`)
	}
	if err := errors.ValidateVertexCount(*raw.N, 0); err != nil {
		return nil, err
	}
	if raw.Edges == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, `graph descriptor needs an "edges" array`)
	}

	edges := *raw.Edges
	d := &Descriptor{N: *raw.N, Edges: make([][2]int, len(edges))}
	for i, e := range edges {
		if len(e) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %d has %d endpoints, want 2", i, len(e))
		}
		d.Edges[i] = [2]int{e[0], e[1]}
	}
	return d, nil
}

// ImportJSON reads a descriptor from the JSON file at path.
// A path of "-" reads standard input.
func ImportJSON(path string) (*Descriptor, error) {
	if path == "-" {
		return ReadJSON(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Build validates the descriptor and returns the graph it describes.
func (d *Descriptor) Build() (*graph.Graph, error) {
	g, err := graph.New(d.N, d.Edges)
	if err != nil {
		return nil, errors.Classify(err)
	}
	return g, nil
}

// SelfLoops counts the edges that Build drops because both endpoints are
// the same vertex.
func (d *Descriptor) SelfLoops() int {
	loops := 0
	for _, e := range d.Edges {
		if e[0] == e[1] {
			loops++
		}
	}
	return loops
}

// FromGraph returns the normalized descriptor of g: each edge once, with
// u < v, in sorted order.
func FromGraph(g *graph.Graph) *Descriptor {
	return &Descriptor{N: g.VertexCount(), Edges: g.Edges()}
}

// WriteDescriptor encodes d as indented JSON.
func WriteDescriptor(d *Descriptor, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode descriptor")
	}
	return nil
}
