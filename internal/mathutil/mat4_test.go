package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = float32(1e-5)

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.Truef(t, want.ApproxEqual(got, tol), "want %v, got %v", want, got)
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	assert.Equal(t, m, Mul(Identity(), m))
	assert.Equal(t, m, Mul(m, Identity()))
}

func TestRotations(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	assertVec(t, z, RotateX(90).MulPoint(y))
	assertVec(t, x, RotateY(90).MulPoint(z))
	assertVec(t, y, RotateZ(90).MulPoint(x))
	assertVec(t, Vec3{0, -1, 0}, RotateZ(-90).MulPoint(x))
}

func TestComposeOrder(t *testing.T) {
	// scale first, then translate: (1,0,0) -> (2,0,0) -> (3,1,0)
	m := Mul(Translate(Vec3{1, 1, 0}), Scale(Vec3{2, 2, 2}))
	assertVec(t, Vec3{3, 1, 0}, m.MulPoint(Vec3{1, 0, 0}))
}

func TestScaleKeepsSign(t *testing.T) {
	assertVec(t, Vec3{-2, 0, 0}, Scale(Vec3{-2, 1, 1}).MulPoint(Vec3{1, 0, 0}))
	assertVec(t, Vec3{0, 0, 0}, Scale(Vec3{0, 0, 0}).MulPoint(Vec3{1, 1, 1}))
}

func TestLookAtPerspective(t *testing.T) {
	view := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})
	assertVec(t, Vec3{0, 0, -5}, view.MulPoint(Vec3{}))

	proj := Perspective(90, 1, 0.1, 100)
	p, w := Mul(proj, view).Project(Vec3{})
	assert.InDelta(t, 5, w, 1e-4)
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 0, p[1], 1e-5)
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 1, Vec3{3, 4, 0}.Normalize().Len(), 1e-6)
}
