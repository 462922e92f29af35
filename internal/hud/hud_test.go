package hud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transform-demo/internal/transform"
)

func TestParamLine(t *testing.T) {
	s := transform.NewState()
	tests := []struct {
		mode transform.Mode
		edit func(*transform.State)
		want string
	}{
		{transform.Translation, func(s *transform.State) { s.Translate[0] = 0.5 },
			"Translation: X=0.500000, Y=0.000000, Z=0.000000"},
		{transform.Rotation, func(s *transform.State) { s.Rotate[2] = -15 },
			"Rotation: X=0.000000°, Y=0.000000°, Z=-15.000000°"},
		{transform.Reflection, func(s *transform.State) { s.Reflect[1] = true },
			"Reflection: X=OFF, Y=ON, Z=OFF"},
		{transform.Shearing, func(s *transform.State) { s.Shear[0] = 0.25 },
			"Shearing: X=0.250000, Y=0.000000, Z=0.000000"},
		{transform.Scaling, func(s *transform.State) {},
			"Scaling: X=1.000000, Y=1.000000, Z=1.000000"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			st := *s
			st.Mode = tt.mode
			tt.edit(&st)
			assert.Equal(t, tt.want, ParamLine(st))
			assert.Equal(t, "Mode: "+tt.mode.String(), ModeLine(st))
		})
	}
}

func TestLabels(t *testing.T) {
	s := transform.NewState()
	labels := Labels(*s, 600)
	require.Len(t, labels, 3)
	assert.Equal(t, Lines(*s), []string{labels[0].Text, labels[1].Text, labels[2].Text})
	assert.Less(t, labels[0].Y, labels[1].Y)
	assert.Equal(t, 600-bottomPadding-bodySize, labels[2].Y)
	assert.Equal(t, Instructions, labels[2].Text)
}
