package transform

import (
	"fmt"
	"strings"
)

// Field names one numeric parameter of State.
type Field int

const (
	TranslateX Field = iota
	TranslateY
	TranslateZ
	RotateX
	RotateY
	RotateZ
	ScaleX
	ScaleY
	ScaleZ
	ShearX
	ShearY
	ShearZ

	fieldCount
)

var fieldNames = [fieldCount]string{"tx", "ty", "tz", "rx", "ry", "rz", "sx", "sy", "sz", "hx", "hy", "hz"}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField accepts the short names tx..hz.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range fieldNames {
		if n == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// Param returns a pointer to the parameter named by f, or nil for an invalid field.
func (s *State) Param(f Field) *float32 {
	if f < 0 || f >= fieldCount {
		return nil
	}
	axis := int(f) % 3
	switch f / 3 {
	case 0:
		return &s.Translate[axis]
	case 1:
		return &s.Rotate[axis]
	case 2:
		return &s.Scale[axis]
	default:
		return &s.Shear[axis]
	}
}
