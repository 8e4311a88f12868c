package render

// FixedColor is used for vertices that form an orbit of their own.
const FixedColor = "#ffffff"

// palette is ColorBrewer Set3.
var palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

// PaletteColor returns the i-th palette color, wrapping around.
func PaletteColor(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// OrbitColors assigns a fill color to each of the n vertices. Non-trivial
// orbits take palette colors in the order given; singleton orbits and
// vertices not covered by orbits get FixedColor.
func OrbitColors(n int, orbits [][]int) []string {
	colors := make([]string, n)
	for v := range colors {
		colors[v] = FixedColor
	}
	next := 0
	for _, o := range orbits {
		if len(o) < 2 {
			continue
		}
		c := PaletteColor(next)
		next++
		for _, v := range o {
			if v >= 0 && v < n {
				colors[v] = c
			}
		}
	}
	return colors
}
