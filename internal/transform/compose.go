package transform

import (
	"transform-demo/internal/mathutil"
	"transform-demo/internal/primitives"
)

// Compose returns the model matrix for s. The order is fixed regardless of the active mode:
//
//	M = T · Rx · Ry · Rz · S · Refl · Shear
//
// so a vertex is sheared first and translated last.
func Compose(s State) mathutil.Mat4 {
	m := mathutil.Translate(s.Translate)
	m = mathutil.Mul(m, mathutil.RotateX(s.Rotate[X]))
	m = mathutil.Mul(m, mathutil.RotateY(s.Rotate[Y]))
	m = mathutil.Mul(m, mathutil.RotateZ(s.Rotate[Z]))
	m = mathutil.Mul(m, mathutil.Scale(s.Scale))
	m = mathutil.Mul(m, mathutil.Scale(reflectFactors(s.Reflect)))
	if s.Shear != ([3]float32{}) {
		m = mathutil.Mul(m, ShearMatrix(s.Shear))
	}
	return m
}

// ShearMatrix returns the shear used by Compose. The coefficient layout is deliberately
// not a textbook shear: hz sits in rows 0 and 1 and hx in rows 1 and 2.
//
//	[ 1   hy  hz ]
//	[ hx  1   hz ]
//	[ hx  hy  1  ]
func ShearMatrix(h [3]float32) mathutil.Mat4 {
	hx, hy, hz := h[X], h[Y], h[Z]
	return mathutil.Mat4{
		1, hy, hz, 0,
		hx, 1, hz, 0,
		hx, hy, 1, 0,
		0, 0, 0, 1,
	}
}

func reflectFactors(r [3]bool) mathutil.Vec3 {
	f := mathutil.Vec3{1, 1, 1}
	for i, on := range r {
		if on {
			f[i] = -1
		}
	}
	return f
}

const (
	edgeWidth  = 3
	vertexSize = 5
)

// Build transforms g by Compose(s) and returns its edges as colored segments (edge i takes
// palette entry i) followed by its vertices as uniform points. It does not modify s or g.
func Build(s State, g primitives.Geometry) primitives.Frame {
	world := Vertices(s, g)
	f := primitives.Frame{
		Segments: make([]primitives.Segment, 0, len(g.Edges)),
		Points:   make([]primitives.Point, 0, len(world)),
	}
	for i, e := range g.Edges {
		f.Segments = append(f.Segments, primitives.Segment{
			A:     world[e[0]],
			B:     world[e[1]],
			Color: g.EdgeColor(i),
			Width: edgeWidth,
		})
	}
	for _, p := range world {
		f.Points = append(f.Points, primitives.Point{P: p, Color: primitives.VertexColor, Size: vertexSize})
	}
	return f
}

// Vertices returns g's vertices transformed by Compose(s).
func Vertices(s State, g primitives.Geometry) []mathutil.Vec3 {
	m := Compose(s)
	out := make([]mathutil.Vec3, len(g.Vertices))
	for i, v := range g.Vertices {
		out[i] = m.MulPoint(v)
	}
	return out
}
