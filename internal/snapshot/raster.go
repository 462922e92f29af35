// Package snapshot renders a primitives.Frame offscreen and writes it to disk.
package snapshot

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"transform-demo/internal/mathutil"
	"transform-demo/internal/primitives"
)

// minW keeps points behind or at the camera out of the perspective divide.
const minW = 1e-3

var background = color.NRGBA{0, 0, 0, 255}

// Options controls offscreen rendering. Size is the output width and height in pixels;
// Supersample renders at Size*Supersample and downsamples (values below 1 mean 1).
type Options struct {
	Size        int
	Supersample int
}

// Render draws f's segments and points with viewProj onto a square black image.
// Labels are screen-space and are not drawn.
func Render(f primitives.Frame, viewProj mathutil.Mat4, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	size := opts.Size
	if size < 1 {
		size = 1
	}
	full := size * ss
	img := image.NewNRGBA(image.Rect(0, 0, full, full))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	r := raster{img: img, vp: viewProj, size: float32(full), scale: float32(ss)}
	for _, s := range f.Segments {
		r.segment(s)
	}
	for _, p := range f.Points {
		r.point(p)
	}
	if ss == 1 {
		return img
	}
	return downsample(img, size)
}

type raster struct {
	img   *image.NRGBA
	vp    mathutil.Mat4
	size  float32
	scale float32
}

type clip struct {
	p mathutil.Vec3
	w float32
}

func (r raster) project(v mathutil.Vec3) clip {
	p, w := r.vp.Project(v)
	return clip{p, w}
}

// toScreen maps a clip-space point with w >= minW to pixel coordinates (y down).
func (r raster) toScreen(c clip) (float32, float32) {
	x := c.p[0] / c.w
	y := c.p[1] / c.w
	return (x + 1) / 2 * r.size, (1 - y) / 2 * r.size
}

func (r raster) segment(s primitives.Segment) {
	a, b := r.project(s.A), r.project(s.B)
	if a.w < minW && b.w < minW {
		return
	}
	// clip the part behind the camera
	if a.w < minW || b.w < minW {
		t := (minW - a.w) / (b.w - a.w)
		cut := clip{
			p: a.p.Add(b.p.Sub(a.p).Scale(t)),
			w: minW,
		}
		if a.w < minW {
			a = cut
		} else {
			b = cut
		}
	}
	x0, y0 := r.toScreen(a)
	x1, y1 := r.toScreen(b)
	width := s.Width
	if width <= 0 {
		width = 1
	}
	r.line(x0, y0, x1, y1, int(width*r.scale+0.5), toNRGBA(s.Color))
}

func (r raster) point(p primitives.Point) {
	c := r.project(p.P)
	if c.w < minW {
		return
	}
	x, y := r.toScreen(c)
	size := p.Size
	if size <= 0 {
		size = 1
	}
	r.dot(int(x), int(y), int(size*r.scale+0.5), toNRGBA(p.Color))
}

// line walks from (x0,y0) to (x1,y1) with Bresenham and stamps a width×width square per step.
func (r raster) line(fx0, fy0, fx1, fy1 float32, width int, c color.NRGBA) {
	b := r.img.Bounds()
	lim := float32(4 * (b.Dx() + b.Dy()))
	if outside(fx0, lim) || outside(fy0, lim) || outside(fx1, lim) || outside(fy1, lim) {
		// far off-screen endpoints; shorten so the walk stays bounded
		var ok bool
		fx0, fy0, fx1, fy1, ok = clampSegment(fx0, fy0, fx1, fy1, lim)
		if !ok {
			return
		}
	}
	x0, y0, x1, y1 := int(fx0), int(fy0), int(fx1), int(fy1)
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r.dot(x0, y0, width, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (r raster) dot(cx, cy, size int, c color.NRGBA) {
	half := size / 2
	rect := image.Rect(cx-half, cy-half, cx-half+size, cy-half+size).Intersect(r.img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.img.SetNRGBA(x, y, c)
		}
	}
}

// downsample scales img to size×size with Catmull-Rom. Every pixel is opaque, so there is
// no premultiplication step.
func downsample(img *image.NRGBA, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func outside(v, lim float32) bool {
	return v < -lim || v > lim
}

// clampSegment moves the endpoints of a segment toward each other until both lie within
// ±lim, keeping the direction of the segment. ok is false when no part of it is inside.
func clampSegment(x0, y0, x1, y1, lim float32) (cx0, cy0, cx1, cy1 float32, ok bool) {
	t0, t1 := float32(0), float32(1)
	dx, dy := x1-x0, y1-y0
	for _, e := range [4]struct{ p, q float32 }{
		{-dx, x0 + lim}, {dx, lim - x0}, {-dy, y0 + lim}, {dy, lim - y0},
	} {
		if e.p == 0 {
			if e.q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := e.q / e.p
		if e.p < 0 {
			if t > t0 {
				t0 = t
			}
		} else if t < t1 {
			t1 = t
		}
	}
	if t0 > t1 {
		return 0, 0, 0, 0, false
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
