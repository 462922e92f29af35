package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"transform-demo/internal/mathutil"
	"transform-demo/internal/primitives"
	"transform-demo/internal/scene"
)

// Renderer draws primitives.Frame values with raylib. Zero value uses raylib's default font.
type Renderer struct {
	font rl.Font
}

// LoadFont loads a TTF/OTF font for labels. Call from Run's setup. Returns false and keeps
// the default font when loading fails.
func (r *Renderer) LoadFont(path string) bool {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return false
	}
	if r.font.Texture.ID != 0 {
		rl.UnloadFont(r.font)
	}
	r.font = f
	return true
}

// Font returns the loaded font (zero texture ID = raylib default).
func (r *Renderer) Font() rl.Font {
	return r.font
}

// Measure returns the pixel width of text at size, using the loaded font when present.
func (r *Renderer) Measure(text string, size int) int {
	if r.font.Texture.ID != 0 {
		return int(rl.MeasureTextEx(r.font, text, float32(size), 1).X)
	}
	return int(rl.MeasureText(text, int32(size)))
}

// Draw renders f: segments in 3D through cam, then points as screen-space squares (culled
// behind the camera and off-screen), then labels. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(f primitives.Frame, cam scene.Camera) {
	camera := toCamera(cam)

	rl.BeginMode3D(camera)
	width := float32(-1)
	for _, s := range f.Segments {
		w := s.Width
		if w <= 0 {
			w = 1
		}
		if w != width {
			// line width is batch state; flush what was queued at the old width
			rl.DrawRenderBatchActive()
			rl.SetLineWidth(w)
			width = w
		}
		rl.DrawLine3D(toVector3(s.A), toVector3(s.B), toColor(s.Color))
	}
	rl.DrawRenderBatchActive()
	rl.SetLineWidth(1)
	rl.EndMode3D()

	screenW, screenH := rl.GetScreenWidth(), rl.GetScreenHeight()
	for _, p := range f.Points {
		x, y, ok := cam.ScreenPoint(p.P, screenW, screenH)
		if !ok {
			continue
		}
		size := p.Size
		if size <= 0 {
			size = 1
		}
		rl.DrawRectangleV(rl.NewVector2(x-size/2, y-size/2), rl.NewVector2(size, size), toColor(p.Color))
	}

	for _, l := range f.Labels {
		if r.font.Texture.ID != 0 {
			rl.DrawTextEx(r.font, l.Text, rl.NewVector2(float32(l.X), float32(l.Y)), float32(l.Size), 1, toColor(l.Color))
		} else {
			rl.DrawText(l.Text, int32(l.X), int32(l.Y), int32(l.Size), toColor(l.Color))
		}
	}
}

func toCamera(c scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVector3(c.Position),
		Target:     toVector3(c.Target),
		Up:         toVector3(c.Up),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func toVector3(v mathutil.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
