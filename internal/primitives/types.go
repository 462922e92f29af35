package primitives

import (
	"image/color"

	"transform-demo/internal/mathutil"
)

// Segment is a colored line between two world-space points.
type Segment struct {
	A, B  mathutil.Vec3
	Color color.RGBA
	// Width is the line width in pixels; 0 means 1.
	Width float32
}

// Point is a world-space marker drawn as a small square/dot of Size pixels.
type Point struct {
	P     mathutil.Vec3
	Color color.RGBA
	Size  float32
}

// Label is screen-space text. X, Y are the top-left corner in pixels.
type Label struct {
	Text  string
	X, Y  int
	Size  int
	Color color.RGBA
}

// Frame is everything drawn in one redraw, in draw order: segments, then points, then labels.
// Renderers consume a Frame; nothing in it refers to a graphics context.
type Frame struct {
	Segments []Segment
	Points   []Point
	Labels   []Label
}

// Append adds the contents of o after the contents of f.
func (f *Frame) Append(o Frame) {
	f.Segments = append(f.Segments, o.Segments...)
	f.Points = append(f.Points, o.Points...)
	f.Labels = append(f.Labels, o.Labels...)
}
