package primitives

import (
	"image/color"

	"transform-demo/internal/mathutil"
)

// Geometry is a fixed wireframe: vertices, edges as vertex-index pairs, and one color per edge.
type Geometry struct {
	Vertices []mathutil.Vec3
	Edges    [][2]int
	Palette  []color.RGBA
}

var (
	cubeVertices = [8]mathutil.Vec3{
		{-0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5},
		{0.5, 0.5, -0.5},
		{-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, 0.5, 0.5},
		{-0.5, 0.5, 0.5},
	}

	cubeEdges = [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	edgePalette = [12]color.RGBA{
		{255, 0, 0, 255},     // red
		{0, 255, 0, 255},     // green
		{0, 0, 255, 255},     // blue
		{255, 255, 0, 255},   // yellow
		{255, 0, 255, 255},   // magenta
		{0, 255, 255, 255},   // cyan
		{255, 128, 0, 255},   // orange
		{128, 0, 255, 255},   // purple
		{0, 128, 0, 255},     // dark green
		{128, 128, 255, 255}, // light blue
		{255, 128, 128, 255}, // pink
		{128, 128, 128, 255}, // gray
	}
)

// VertexColor is the uniform color of vertex markers.
var VertexColor = color.RGBA{255, 255, 255, 255}

// Cube returns the unit cube centered at the origin. Each call returns fresh slices so
// callers can't modify the shared tables.
func Cube() Geometry {
	g := Geometry{
		Vertices: make([]mathutil.Vec3, len(cubeVertices)),
		Edges:    make([][2]int, len(cubeEdges)),
		Palette:  make([]color.RGBA, len(edgePalette)),
	}
	copy(g.Vertices, cubeVertices[:])
	copy(g.Edges, cubeEdges[:])
	copy(g.Palette, edgePalette[:])
	return g
}

// EdgeColor returns the color of edge i, cycling through the palette.
func (g Geometry) EdgeColor(i int) color.RGBA {
	if len(g.Palette) == 0 {
		return VertexColor
	}
	return g.Palette[i%len(g.Palette)]
}
