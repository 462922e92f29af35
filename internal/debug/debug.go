package debug

import (
	"fmt"
	"image/color"
	"runtime"

	"transform-demo/internal/primitives"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var overlayColor = color.RGBA{0, 228, 48, 255}

// MeasureFunc returns the pixel width of text drawn at size.
type MeasureFunc func(text string, size int) int

// Debug holds runtime overlays (FPS, heap). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	measure      MeasureFunc
	readMem      func() uint64
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
}

// New returns a Debug system with all overlays hidden. measure right-aligns the text;
// nil assumes half the font size per character.
func New(measure MeasureFunc) *Debug {
	if measure == nil {
		measure = func(text string, size int) int { return len(text) * size / 2 }
	}
	return &Debug{measure: measure, readMem: heapAlloc}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the heap allocation counter is drawn under FPS.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Labels returns the enabled overlays for this frame, right-aligned to screenWidth.
// Call once per frame; text is only recomputed every updateInterval frames.
func (d *Debug) Labels(fps int, screenWidth int) []primitives.Label {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.lastFpsText == "") || (d.ShowMemAlloc && d.lastMemText == "") {
		update = true
	}

	var out []primitives.Label
	y := fpsPadding
	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", fps)
		}
		out = append(out, d.label(d.lastFpsText, y, screenWidth))
		y += fpsLineHeight
	}
	if d.ShowMemAlloc {
		if update {
			mb := float64(d.readMem()) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		out = append(out, d.label(d.lastMemText, y, screenWidth))
	}
	return out
}

func (d *Debug) label(text string, y, screenWidth int) primitives.Label {
	x := screenWidth - d.measure(text, fpsFontSize) - fpsPadding
	return primitives.Label{Text: text, X: x, Y: y, Size: fpsFontSize, Color: overlayColor}
}

func heapAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}
