package okgrade

import (
	"image/color"

	"github.com/gogpu/okgrade/internal/srgb"
)

// RGBA represents a linear-light color with red, green, blue, and alpha
// components. Components are nominally in [0, 1] but values outside that
// range are preserved (the grade is HDR-safe unless clamping is requested).
// Alpha is always linear, never gamma-encoded.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque linear-light color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts the linear-light RGBA to the standard color.Color
// interface, applying the sRGB transfer function to R, G, and B.
// Components are clamped to [0, 1] by the 8-bit encode.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: srgb.FromLinear8(c.R),
		G: srgb.FromLinear8(c.G),
		B: srgb.FromLinear8(c.B),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to a linear-light RGBA,
// removing the sRGB transfer function from R, G, and B.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: srgb.ToLinear(float64(r) / 65535),
		G: srgb.ToLinear(float64(g) / 65535),
		B: srgb.ToLinear(float64(b) / 65535),
		A: float64(a) / 65535,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors (linear-light).
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	MidGray     = RGB(0.18, 0.18, 0.18)
	PureRed     = RGB(1, 0, 0)
	PureGreen   = RGB(0, 1, 0)
	PureBlue    = RGB(0, 0, 1)
	Transparent = RGBA{}
)
