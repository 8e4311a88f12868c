package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/autgroup/pkg/graph"
	"github.com/matzehuels/autgroup/pkg/perm"
	"github.com/matzehuels/autgroup/pkg/render"
)

// Layout names a Graphviz layout engine.
type Layout string

// Supported layout engines.
const (
	LayoutCirco Layout = "circo"
	LayoutNeato Layout = "neato"
	LayoutDot   Layout = "dot"
	LayoutFdp   Layout = "fdp"
)

// ValidLayouts lists the layouts accepted by [ParseLayout].
var ValidLayouts = []Layout{LayoutCirco, LayoutNeato, LayoutDot, LayoutFdp}

// ParseLayout returns the layout named s.
func ParseLayout(s string) (Layout, error) {
	for _, l := range ValidLayouts {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown layout %q", s)
}

// Options configures diagram generation.
type Options struct {
	// Orbits colors the vertices; vertices sharing an orbit share a color.
	Orbits [][]int

	// Highlight, if non-nil, draws the vertices it moves with a bold outline
	// and labels the graph with its cycle notation.
	Highlight perm.Perm

	// Title is shown above the diagram.
	Title string
}

// ToDOT converts a graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(g *graph.Graph, opts Options) string {
	n := g.VertexCount()
	colors := render.OrbitColors(n, opts.Orbits)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=14, width=0.4, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#555555\"];\n")
	if label := graphLabel(opts); label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", label)
	}
	buf.WriteString("\n")

	for v := range n {
		attrs := fmtAttrs(v, colors[v], opts.Highlight)
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -- %d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func graphLabel(opts Options) string {
	switch {
	case opts.Title != "" && opts.Highlight != nil:
		return opts.Title + "\n" + opts.Highlight.String()
	case opts.Highlight != nil:
		return opts.Highlight.String()
	default:
		return opts.Title
	}
}

func fmtAttrs(v int, color string, highlight perm.Perm) []string {
	attrs := []string{fmt.Sprintf("label=%q", strconv.Itoa(v)), fmt.Sprintf("fillcolor=%q", color)}
	if v < len(highlight) && highlight[v] != v {
		attrs = append(attrs, "penwidth=3")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG with the given layout engine.
// An empty layout uses circo.
func RenderSVG(ctx context.Context, dot string, layout Layout) ([]byte, error) {
	if layout == "" {
		layout = LayoutCirco
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(layout))

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
