// Package hud builds the text overlay: active mode, its parameters, and key help.
package hud

import (
	"fmt"
	"image/color"

	"transform-demo/internal/primitives"
	"transform-demo/internal/transform"
)

// Instructions is the key help shown at the bottom of the window.
const Instructions = "Keys: M - Change Mode, R - Reset, Arrow Keys/Page Up/Down - Adjust, X/Y/Z - Select Axis"

const (
	margin        = 10
	titleSize     = 18
	bodySize      = 12
	titleTop      = 2
	paramsTop     = 28
	bottomPadding = 20
)

var textColor = color.RGBA{255, 255, 255, 255}

// ModeLine returns "Mode: <name>".
func ModeLine(s transform.State) string {
	return "Mode: " + s.Mode.String()
}

// ParamLine describes the parameters of the active mode. Numbers use six decimals.
func ParamLine(s transform.State) string {
	switch s.Mode {
	case transform.Translation:
		return triple("Translation", s.Translate, "")
	case transform.Rotation:
		return triple("Rotation", s.Rotate, "°")
	case transform.Reflection:
		return fmt.Sprintf("Reflection: X=%s, Y=%s, Z=%s", onOff(s.Reflect[0]), onOff(s.Reflect[1]), onOff(s.Reflect[2]))
	case transform.Shearing:
		return triple("Shearing", s.Shear, "")
	case transform.Scaling:
		return triple("Scaling", s.Scale, "")
	}
	return ""
}

// Lines returns the three overlay lines in display order.
func Lines(s transform.State) []string {
	return []string{ModeLine(s), ParamLine(s), Instructions}
}

// Labels places the overlay lines for a screen screenHeight pixels tall: mode and
// parameters at the top-left, instructions at the bottom-left.
func Labels(s transform.State, screenHeight int) []primitives.Label {
	return []primitives.Label{
		{Text: ModeLine(s), X: margin, Y: titleTop, Size: titleSize, Color: textColor},
		{Text: ParamLine(s), X: margin, Y: paramsTop, Size: bodySize, Color: textColor},
		{Text: Instructions, X: margin, Y: screenHeight - bottomPadding - bodySize, Size: bodySize, Color: textColor},
	}
}

func triple(name string, v [3]float32, unit string) string {
	return fmt.Sprintf("%s: X=%f%s, Y=%f%s, Z=%f%s", name, v[0], unit, v[1], unit, v[2], unit)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
