package okgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHueLUT_Validation(t *testing.T) {
	_, err := NewHueLUT(nil)
	require.Error(t, err)

	_, err = NewHueLUT([][3]float64{{0.5, 0.5, 0.5}})
	require.Error(t, err)

	lut, err := NewHueLUT([][3]float64{{0, 0, 0}, {1, 1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, lut.Width())
}

func TestNewHueLUT_CopiesEntries(t *testing.T) {
	entries := [][3]float64{{0, 0, 0}, {1, 1, 1}}
	lut, err := NewHueLUT(entries)
	require.NoError(t, err)

	entries[0] = [3]float64{0.9, 0.9, 0.9}

	h, c, l := lut.Sample(0)
	assert.Zero(t, h)
	assert.Zero(t, c)
	assert.Zero(t, l)
}

func TestHueLUT_Sample(t *testing.T) {
	lut, err := NewHueLUT([][3]float64{{0, 0, 0}, {1, 1, 1}})
	require.NoError(t, err)

	tests := []struct {
		name string
		hue  float64
		want float64
	}{
		{"start", 0, 0},
		{"quarter", 90, 0.25},
		{"half", 180, 0.5},
		{"near end", 359.64, 0.999},
		{"full turn wraps", 360, 0},
		{"negative wraps", -90, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, c, l := lut.Sample(tt.hue)
			assert.InDelta(t, tt.want, h, 1e-9)
			assert.InDelta(t, tt.want, c, 1e-9)
			assert.InDelta(t, tt.want, l, 1e-9)
		})
	}
}

func TestHueLUT_SampleInterpolatesPerChannel(t *testing.T) {
	lut, err := NewHueLUT([][3]float64{
		{0, 1, 0.5},
		{1, 0, 0.5},
		{0, 1, 0.5},
	})
	require.NoError(t, err)

	// Hue 90 lands halfway between entries 0 and 1.
	h, c, l := lut.Sample(90)
	assert.InDelta(t, 0.5, h, 1e-9)
	assert.InDelta(t, 0.5, c, 1e-9)
	assert.InDelta(t, 0.5, l, 1e-9)

	// Hue 180 lands exactly on the middle entry.
	h, c, l = lut.Sample(180)
	assert.InDelta(t, 1, h, 1e-9)
	assert.InDelta(t, 0, c, 1e-9)
	assert.InDelta(t, 0.5, l, 1e-9)
}

func TestNeutralHueLUT(t *testing.T) {
	lut := NeutralHueLUT(16)
	assert.Equal(t, 16, lut.Width())

	for hue := 0.0; hue < 360; hue += 17 {
		h, c, l := lut.Sample(hue)
		assert.Equal(t, 0.5, h)
		assert.Equal(t, 0.5, c)
		assert.Equal(t, 0.5, l)
	}

	// Degenerate widths are raised to the minimum.
	assert.Equal(t, 2, NeutralHueLUT(0).Width())
	assert.Equal(t, 2, NeutralHueLUT(-3).Width())
}

func TestNeutralHueLUT_IsIdentityGrade(t *testing.T) {
	// Grading with a neutral LUT equals grading with curves disabled.
	p := DefaultParams()
	p.LOffset = 0.1
	p.HueShiftGreen = 15
	p.HueCurves = true

	withLUT := New(p, WithHueLUT(NeutralHueLUT(360)))

	p2 := p
	p2.HueCurves = false
	without := New(p2)

	for _, tt := range gradeTestColors {
		got := withLUT.Pixel(tt.px)
		want := without.Pixel(tt.px)
		assert.InDelta(t, want.R, got.R, 1e-9, tt.name)
		assert.InDelta(t, want.G, got.G, 1e-9, tt.name)
		assert.InDelta(t, want.B, got.B, 1e-9, tt.name)
		assert.Equal(t, want.A, got.A, tt.name)
	}
}
