package scene

import (
	"transform-demo/internal/hud"
	"transform-demo/internal/mathutil"
	"transform-demo/internal/primitives"
	"transform-demo/internal/transform"
)

const (
	gridExtent = 10
	fovy       = 45
	nearPlane  = 0.1
	farPlane   = 100
)

// Camera is a perspective camera. Fovy is the vertical field of view in degrees.
type Camera struct {
	Position mathutil.Vec3
	Target   mathutil.Vec3
	Up       mathutil.Vec3
	Fovy     float32
	Near     float32
	Far      float32
}

// ViewProjection returns projection × view for a viewport with the given width/height ratio.
func (c Camera) ViewProjection(aspect float32) mathutil.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	view := mathutil.LookAt(c.Position, c.Target, c.Up)
	proj := mathutil.Perspective(c.Fovy, aspect, c.Near, c.Far)
	return mathutil.Mul(proj, view)
}

// minClipW culls points at or behind the camera plane before the perspective divide.
const minClipW = 1e-3

// ScreenPoint projects v onto a width×height viewport (pixels, y down). ok is false when v
// is behind the camera or lands outside the viewport.
func (c Camera) ScreenPoint(v mathutil.Vec3, width, height int) (x, y float32, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	p, w := c.ViewProjection(float32(width) / float32(height)).Project(v)
	if w <= minClipW {
		return 0, 0, false
	}
	x = (p[0]/w + 1) / 2 * float32(width)
	y = (1 - p[1]/w) / 2 * float32(height)
	if x < 0 || y < 0 || x >= float32(width) || y >= float32(height) {
		return 0, 0, false
	}
	return x, y, true
}

// Scene owns the fixed cube geometry and the camera, and turns a transform.State into
// the primitives of one frame. It holds no reference to the state; callers pass it in.
type Scene struct {
	Camera      Camera
	GridVisible bool
	cube        primitives.Geometry
	reference   primitives.Frame
}

// New returns a scene with the camera at (3,3,6) looking at the origin, +Y up, fovy 45°.
// Grid is visible by default.
func New() *Scene {
	return &Scene{
		Camera: Camera{
			Position: mathutil.Vec3{3, 3, 6},
			Target:   mathutil.Vec3{0, 0, 0},
			Up:       mathutil.Vec3{0, 1, 0},
			Fovy:     fovy,
			Near:     nearPlane,
			Far:      farPlane,
		},
		GridVisible: true,
		cube:        primitives.Cube(),
		reference:   primitives.Reference(gridExtent),
	}
}

// SetGridVisible sets whether the axes and XZ grid are drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// World returns the 3D primitives for state: the reference overlay (when visible) first,
// then the transformed cube.
func (s *Scene) World(state transform.State) primitives.Frame {
	var f primitives.Frame
	if s.GridVisible {
		f.Append(s.reference)
	}
	f.Append(transform.Build(state, s.cube))
	return f
}

// Frame returns World plus the HUD labels for a screen of the given height.
func (s *Scene) Frame(state transform.State, screenHeight int) primitives.Frame {
	f := s.World(state)
	f.Labels = append(f.Labels, hud.Labels(state, screenHeight)...)
	return f
}
