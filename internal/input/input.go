// Package input maps key presses to changes of a transform.State.
//
// Each press affects at most one parameter. Which one depends on the active mode and is
// looked up in a (mode, key) table rather than in per-key switch statements.
package input

import "transform-demo/internal/transform"

// Key is a keyboard key the viewer reacts to, independent of the windowing library.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyM
	KeyR
	KeyX
	KeyY
	KeyZ
	KeyEscape
)

// Action tells the caller what a key press did.
type Action int

const (
	ActionNone Action = iota
	ActionChanged
	ActionQuit
)

// Step sizes per press.
const (
	TranslationStep = float32(0.1)
	RotationStep    = float32(5.0)
	ScaleStep       = float32(0.1)
	ShearStep       = float32(0.1)
)

type adjust struct {
	field transform.Field
	delta float32
}

type binding struct {
	mode transform.Mode
	key  Key
}

// adjustments holds the directional keys for the four numeric modes. Reflection has no
// directional bindings. In Rotation mode Up decreases rx and Down increases it.
var adjustments = map[binding]adjust{
	{transform.Translation, KeyLeft}:     {transform.TranslateX, -TranslationStep},
	{transform.Translation, KeyRight}:    {transform.TranslateX, TranslationStep},
	{transform.Translation, KeyUp}:       {transform.TranslateY, TranslationStep},
	{transform.Translation, KeyDown}:     {transform.TranslateY, -TranslationStep},
	{transform.Translation, KeyPageUp}:   {transform.TranslateZ, TranslationStep},
	{transform.Translation, KeyPageDown}: {transform.TranslateZ, -TranslationStep},

	{transform.Rotation, KeyLeft}:     {transform.RotateY, -RotationStep},
	{transform.Rotation, KeyRight}:    {transform.RotateY, RotationStep},
	{transform.Rotation, KeyUp}:       {transform.RotateX, -RotationStep},
	{transform.Rotation, KeyDown}:     {transform.RotateX, RotationStep},
	{transform.Rotation, KeyPageUp}:   {transform.RotateZ, RotationStep},
	{transform.Rotation, KeyPageDown}: {transform.RotateZ, -RotationStep},

	{transform.Shearing, KeyLeft}:     {transform.ShearX, -ShearStep},
	{transform.Shearing, KeyRight}:    {transform.ShearX, ShearStep},
	{transform.Shearing, KeyUp}:       {transform.ShearY, ShearStep},
	{transform.Shearing, KeyDown}:     {transform.ShearY, -ShearStep},
	{transform.Shearing, KeyPageUp}:   {transform.ShearZ, ShearStep},
	{transform.Shearing, KeyPageDown}: {transform.ShearZ, -ShearStep},

	{transform.Scaling, KeyLeft}:     {transform.ScaleX, -ScaleStep},
	{transform.Scaling, KeyRight}:    {transform.ScaleX, ScaleStep},
	{transform.Scaling, KeyUp}:       {transform.ScaleY, ScaleStep},
	{transform.Scaling, KeyDown}:     {transform.ScaleY, -ScaleStep},
	{transform.Scaling, KeyPageUp}:   {transform.ScaleZ, ScaleStep},
	{transform.Scaling, KeyPageDown}: {transform.ScaleZ, -ScaleStep},
}

// toggles maps the axis keys to reflection flags; honored only in Reflection mode.
var toggles = map[Key]transform.Axis{
	KeyX: transform.X,
	KeyY: transform.Y,
	KeyZ: transform.Z,
}

// Dispatch applies key to s and reports the outcome. Keys without a binding in the
// current mode return ActionNone and leave s untouched.
func Dispatch(s *transform.State, key Key) Action {
	switch key {
	case KeyEscape:
		return ActionQuit
	case KeyM:
		s.NextMode()
		return ActionChanged
	case KeyR:
		s.Reset()
		return ActionChanged
	}

	if axis, ok := toggles[key]; ok {
		if s.Mode != transform.Reflection {
			return ActionNone
		}
		s.ToggleReflect(axis)
		return ActionChanged
	}

	a, ok := adjustments[binding{s.Mode, key}]
	if !ok {
		return ActionNone
	}
	*s.Param(a.field) += a.delta
	return ActionChanged
}

// Keys lists every key Dispatch understands, in a stable order. Window adapters poll these.
func Keys() []Key {
	return []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeyPageUp, KeyPageDown, KeyM, KeyR, KeyX, KeyY, KeyZ, KeyEscape}
}
