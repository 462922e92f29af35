package transform

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transform-demo/internal/mathutil"
	"transform-demo/internal/primitives"
)

const tol = float32(1e-5)

func assertVertices(t *testing.T, want, got []mathutil.Vec3) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Truef(t, want[i].ApproxEqual(got[i], tol), "vertex %d: want %v, got %v", i, want[i], got[i])
	}
}

func TestDefaultIsIdentity(t *testing.T) {
	s := NewState()
	assert.Equal(t, mathutil.Identity(), Compose(*s))

	cube := primitives.Cube()
	assertVertices(t, cube.Vertices, Vertices(*s, cube))
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewState()
	s.Mode = Shearing
	s.Translate = [3]float32{1, 2, 3}
	s.Rotate = [3]float32{10, 20, 30}
	s.Scale = [3]float32{0, -1, 4}
	s.Reflect = [3]bool{true, false, true}
	s.Shear = [3]float32{0.1, 0.2, 0.3}

	s.Reset()
	assert.Equal(t, [3]float32{0, 0, 0}, s.Translate)
	assert.Equal(t, [3]float32{0, 0, 0}, s.Rotate)
	assert.Equal(t, [3]float32{1, 1, 1}, s.Scale)
	assert.Equal(t, [3]bool{false, false, false}, s.Reflect)
	assert.Equal(t, [3]float32{0, 0, 0}, s.Shear)
	assert.Equal(t, Shearing, s.Mode)
}

func TestRotationOrderMatters(t *testing.T) {
	cube := primitives.Cube()
	s := NewState()
	s.Rotate = [3]float32{90, 90, 0}
	xy := Vertices(*s, cube)

	// ry=90 applied before rx=90
	yx := mathutil.Mul(mathutil.RotateY(90), mathutil.RotateX(90))
	differs := false
	for i, v := range cube.Vertices {
		if !yx.MulPoint(v).ApproxEqual(xy[i], tol) {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestRotateZ(t *testing.T) {
	s := NewState()
	s.Rotate[Z] = 10
	got := Compose(*s).MulPoint(mathutil.Vec3{0.5, -0.5, -0.5})

	c, sn := math32.Cos(mathutil.DegToRad(10)), math32.Sin(mathutil.DegToRad(10))
	want := mathutil.Vec3{0.5*c + 0.5*sn, 0.5*sn - 0.5*c, -0.5}
	assert.Truef(t, want.ApproxEqual(got, tol), "want %v, got %v", want, got)
}

func TestReflectTwiceRestores(t *testing.T) {
	cube := primitives.Cube()
	s := NewState()
	s.Rotate = [3]float32{15, 30, 45}
	before := Vertices(*s, cube)

	s.ToggleReflect(X)
	assert.True(t, s.Reflect[X])
	mirrored := Vertices(*s, cube)
	s.ToggleReflect(X)
	assert.False(t, s.Reflect[X])

	assertVertices(t, before, Vertices(*s, cube))
	assert.NotEqual(t, before, mirrored)
}

func TestReflectNegatesAxis(t *testing.T) {
	s := NewState()
	s.Reflect = [3]bool{true, false, true}
	got := Compose(*s).MulPoint(mathutil.Vec3{0.5, 0.5, 0.5})
	assert.Equal(t, mathutil.Vec3{-0.5, 0.5, -0.5}, got)
	assert.Equal(t, [3]float32{1, 1, 1}, s.Scale)
}

func TestZeroShearIsNoop(t *testing.T) {
	s := NewState()
	s.Translate = [3]float32{0.3, -0.2, 1}
	s.Rotate = [3]float32{25, -40, 5}
	s.Scale = [3]float32{1.5, 0.5, 2}

	withShear := Compose(*s)
	explicit := mathutil.Mul(withShear, ShearMatrix([3]float32{}))
	assert.True(t, withShear.ApproxEqual(explicit, tol))
}

func TestShearCoefficients(t *testing.T) {
	s := NewState()
	s.Shear = [3]float32{0.1, 0.2, 0.3}
	got := Compose(*s).MulPoint(mathutil.Vec3{1, 1, 1})
	// rows: 1+hy+hz, hx+1+hz, hx+hy+1
	want := mathutil.Vec3{1.5, 1.4, 1.3}
	assert.Truef(t, want.ApproxEqual(got, tol), "want %v, got %v", want, got)

	x := Compose(*s).MulPoint(mathutil.Vec3{1, 0, 0})
	assert.True(t, mathutil.Vec3{1, 0.1, 0.1}.ApproxEqual(x, tol))
}

func TestComposeOrder(t *testing.T) {
	s := NewState()
	s.Translate = [3]float32{1, 0, 0}
	s.Scale = [3]float32{2, 1, 1}
	s.Rotate[Z] = 90
	// scale (1,0,0)->(2,0,0), rotate z 90 ->(0,2,0), translate ->(1,2,0)
	got := Compose(*s).MulPoint(mathutil.Vec3{1, 0, 0})
	assert.True(t, mathutil.Vec3{1, 2, 0}.ApproxEqual(got, tol), "got %v", got)
}

func TestScaleNotClamped(t *testing.T) {
	s := NewState()
	s.Scale = [3]float32{0, -0.5, 1}
	got := Compose(*s).MulPoint(mathutil.Vec3{0.5, 0.5, 0.5})
	assert.True(t, mathutil.Vec3{0, -0.25, 0.5}.ApproxEqual(got, tol))
}

func TestBuild(t *testing.T) {
	cube := primitives.Cube()
	s := NewState()
	s.Translate = [3]float32{0, 1, 0}
	f := Build(*s, cube)

	require.Len(t, f.Segments, 12)
	require.Len(t, f.Points, 8)
	assert.Empty(t, f.Labels)
	for i, seg := range f.Segments {
		assert.Equal(t, cube.Palette[i], seg.Color)
		e := cube.Edges[i]
		assert.Equal(t, cube.Vertices[e[0]].Add(mathutil.Vec3{0, 1, 0}), seg.A)
		assert.Equal(t, cube.Vertices[e[1]].Add(mathutil.Vec3{0, 1, 0}), seg.B)
	}
	for _, p := range f.Points {
		assert.Equal(t, primitives.VertexColor, p.Color)
	}
	assert.Equal(t, [3]float32{0, 1, 0}, s.Translate)
}

func TestModeCycle(t *testing.T) {
	s := NewState()
	want := []Mode{Rotation, Reflection, Shearing, Scaling, Translation}
	for _, m := range want {
		s.NextMode()
		assert.Equal(t, m, s.Mode)
	}
	assert.Equal(t, "Shearing", Shearing.String())
	assert.Equal(t, "Mode(9)", Mode(9).String())
}

func TestParse(t *testing.T) {
	m, err := ParseMode(" rotation ")
	require.NoError(t, err)
	assert.Equal(t, Rotation, m)
	_, err = ParseMode("skew")
	assert.Error(t, err)

	f, err := ParseField("HZ")
	require.NoError(t, err)
	assert.Equal(t, ShearZ, f)
	_, err = ParseField("w")
	assert.Error(t, err)
}

func TestParam(t *testing.T) {
	s := NewState()
	*s.Param(TranslateZ) = 2
	*s.Param(RotateY) = 3
	*s.Param(ScaleX) = 4
	*s.Param(ShearZ) = 5
	assert.Equal(t, float32(2), s.Translate[Z])
	assert.Equal(t, float32(3), s.Rotate[Y])
	assert.Equal(t, float32(4), s.Scale[X])
	assert.Equal(t, float32(5), s.Shear[Z])
	assert.Nil(t, s.Param(Field(-1)))
	assert.Nil(t, s.Param(fieldCount))
}
