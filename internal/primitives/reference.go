package primitives

import (
	"image/color"

	"transform-demo/internal/mathutil"
)

var (
	axisXColor = color.RGBA{255, 0, 0, 255}
	axisYColor = color.RGBA{0, 255, 0, 255}
	axisZColor = color.RGBA{0, 0, 255, 255}
	gridColor  = color.RGBA{128, 128, 128, 255}
)

const axisWidth = 2

// Reference returns the coordinate-system overlay: X/Y/Z axes through the origin spanning
// ±extent, and a grid on the XZ plane (Y=0) with one line per integer, skipping 0 where the
// axes already are.
func Reference(extent int) Frame {
	e := float32(extent)
	f := Frame{
		Segments: []Segment{
			{A: mathutil.Vec3{-e, 0, 0}, B: mathutil.Vec3{e, 0, 0}, Color: axisXColor, Width: axisWidth},
			{A: mathutil.Vec3{0, -e, 0}, B: mathutil.Vec3{0, e, 0}, Color: axisYColor, Width: axisWidth},
			{A: mathutil.Vec3{0, 0, -e}, B: mathutil.Vec3{0, 0, e}, Color: axisZColor, Width: axisWidth},
		},
	}
	for i := -extent; i <= extent; i++ {
		if i == 0 {
			continue
		}
		v := float32(i)
		f.Segments = append(f.Segments,
			Segment{A: mathutil.Vec3{v, 0, -e}, B: mathutil.Vec3{v, 0, e}, Color: gridColor, Width: axisWidth},
			Segment{A: mathutil.Vec3{-e, 0, v}, B: mathutil.Vec3{e, 0, v}, Color: gridColor, Width: axisWidth},
		)
	}
	return f
}
