package mathutil

import "github.com/chewxy/math32"

// Mat4 is a 4×4 matrix stored row-major and applied to column vectors (p' = M·p).
// Composing A then B (B applied to the result of A) is Mul(B, A).
type Mat4 [16]float32

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns a × b.
func Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// MulPoint transforms a 3D point (w=1) by the matrix, without perspective divide.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// Project transforms v (w=1) and returns clip-space xyz and w.
func (m Mat4) Project(v Vec3) (Vec3, float32) {
	p := m.MulPoint(v)
	w := m[12]*v[0] + m[13]*v[1] + m[14]*v[2] + m[15]
	return p, w
}

// Translate returns a translation by t.
func Translate(t Vec3) Mat4 {
	m := Identity()
	m[3], m[7], m[11] = t[0], t[1], t[2]
	return m
}

// Scale returns a non-uniform scale. Factors are taken as-is, zero and negative included.
func Scale(s Vec3) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = s[0], s[1], s[2]
	return m
}

// RotateX returns a right-handed rotation about +X by deg degrees.
func RotateX(deg float32) Mat4 {
	s, c := sincos(deg)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a right-handed rotation about +Y by deg degrees.
func RotateY(deg float32) Mat4 {
	s, c := sincos(deg)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a right-handed rotation about +Z by deg degrees.
func RotateZ(deg float32) Mat4 {
	s, c := sincos(deg)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// LookAt returns a right-handed view matrix (camera looks down -Z in view space).
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		-f[0], -f[1], -f[2], f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Perspective returns an OpenGL-style projection; fovy is the vertical field of view in degrees.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(DegToRad(fovy)/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / (near - far), 2 * far * near / (near - far),
		0, 0, -1, 0,
	}
}

// ApproxEqual reports whether every element of m and o differs by at most tol.
func (m Mat4) ApproxEqual(o Mat4, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}

func DegToRad(deg float32) float32 { return deg * math32.Pi / 180 }

func sincos(deg float32) (s, c float32) {
	return math32.Sincos(DegToRad(deg))
}
