// Package nodelink renders undirected graphs as node-link diagrams.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Orbits: res.Orbits})
//	svg, err := nodelink.RenderSVG(ctx, dot, nodelink.LayoutCirco)
//
// Vertices are filled with their orbit color from the render package.
// Setting [Options.Highlight] to a generator outlines the vertices it moves,
// which is how the CLI shows individual automorphisms.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
