// Package render draws graphs with their vertices colored by orbit.
//
// # Overview
//
// Vertices in the same orbit of the automorphism group are structurally
// indistinguishable, so giving each orbit its own color makes the symmetry of
// a graph visible at a glance. This package holds the shared palette; the
// [nodelink] subpackage produces Graphviz diagrams with it, and the CLI uses
// the same colors in its terminal views.
//
//	colors := render.OrbitColors(n, res.Orbits)
//	dot := nodelink.ToDOT(g, nodelink.Options{Orbits: res.Orbits})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.LayoutCirco)
//
// [nodelink]: github.com/matzehuels/autgroup/pkg/render/nodelink
package render
