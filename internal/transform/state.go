package transform

import (
	"fmt"
	"strings"
)

// Mode selects which group of parameters keyboard input adjusts.
type Mode int

const (
	Translation Mode = iota
	Rotation
	Reflection
	Shearing
	Scaling

	modeCount
)

var modeNames = [modeCount]string{"Translation", "Rotation", "Reflection", "Shearing", "Scaling"}

func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next returns the mode after m, wrapping from Scaling back to Translation.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// ParseMode accepts a mode name case-insensitively ("rotation", "Shearing", ...).
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// Axis indexes the X, Y, Z components of a parameter triple.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

// State holds every transform parameter plus the active mode. Parameters of inactive modes
// keep their values and still take part in Compose.
//
// Scale is never clamped: 0 and negative factors are allowed. Mirroring goes through
// Reflect, not through negative scale.
type State struct {
	Mode      Mode
	Translate [3]float32
	Rotate    [3]float32 // degrees, applied X, then Y, then Z
	Scale     [3]float32
	Reflect   [3]bool
	Shear     [3]float32
}

// NewState returns a state whose composed transform is the identity.
func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores all parameters to their defaults. The active mode is kept.
func (s *State) Reset() {
	s.Translate = [3]float32{}
	s.Rotate = [3]float32{}
	s.Scale = [3]float32{1, 1, 1}
	s.Reflect = [3]bool{}
	s.Shear = [3]float32{}
}

// NextMode switches to the next mode in the cycle.
func (s *State) NextMode() {
	s.Mode = s.Mode.Next()
}

// ToggleReflect flips the reflection flag of one axis.
func (s *State) ToggleReflect(a Axis) {
	s.Reflect[a] = !s.Reflect[a]
}
