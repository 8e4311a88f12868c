package io

import (
	"encoding/json"
	"io"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/autgroup/pkg/errors"
	"github.com/matzehuels/autgroup/pkg/search"
)

// Result is the wire form of an automorphism group.
type Result struct {
	Order         *big.Int `json:"order"`
	NumGenerators int      `json:"num_generators"`
	Generators    [][]int  `json:"generators"`
	Orbits        [][]int  `json:"orbits"`
	Degraded      bool     `json:"degraded"`
}

// yamlResult carries the order as a string; YAML has no arbitrary-precision
// integers.
type yamlResult struct {
	Order         string  `yaml:"order"`
	NumGenerators int     `yaml:"num_generators"`
	Generators    [][]int `yaml:"generators,flow"`
	Orbits        [][]int `yaml:"orbits,flow"`
	Degraded      bool    `yaml:"degraded"`
}

// NewResult converts a search result to its wire form.
func NewResult(res *search.Result) *Result {
	out := &Result{
		Order:         new(big.Int).Set(res.Order),
		NumGenerators: len(res.Generators),
		Generators:    make([][]int, len(res.Generators)),
		Orbits:        make([][]int, len(res.Orbits)),
		Degraded:      res.Degraded,
	}
	for i, p := range res.Generators {
		out.Generators[i] = []int(p.Clone())
	}
	for i, o := range res.Orbits {
		out.Orbits[i] = append([]int(nil), o...)
	}
	return out
}

// WriteJSON encodes r as indented JSON.
func WriteJSON(r *Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode result")
	}
	return nil
}

// ReadResultJSON decodes a result written by [WriteJSON].
func ReadResultJSON(rd io.Reader) (*Result, error) {
	var r Result
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed result")
	}
	if r.Order == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, `result is missing "order"`)
	}
	return &r, nil
}

// WriteYAML encodes r as YAML.
func WriteYAML(r *Result, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	out := yamlResult{
		Order:         r.Order.String(),
		NumGenerators: r.NumGenerators,
		Generators:    r.Generators,
		Orbits:        r.Orbits,
		Degraded:      r.Degraded,
	}
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode result")
	}
	return enc.Close()
}

// Write encodes r in the named format, "json" or "yaml".
func Write(r *Result, format string, w io.Writer) error {
	if err := errors.ValidateFormat(format, "json", "yaml"); err != nil {
		return err
	}
	if strings.EqualFold(format, "yaml") {
		return WriteYAML(r, w)
	}
	return WriteJSON(r, w)
}

// Export writes r to the file at path in the named format.
func Export(r *Result, format, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return Write(r, format, f)
}
