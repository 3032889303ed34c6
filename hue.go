package okgrade

import "math"

// Band centers on the OKLCH hue wheel, placed perceptually rather than at
// even 60° steps. Red additionally gets a second window at 360° so hues
// just below the wrap still receive its influence.
const (
	bandRed     = 0.0
	bandYellow  = 85.0
	bandGreen   = 145.0
	bandCyan    = 195.0
	bandBlue    = 265.0
	bandMagenta = 325.0

	// bandHalfWidth is the cosine-window half-angle shared by the six
	// fixed bands; adjacent bands overlap and blend like a color wheel
	// divided into six sectors.
	bandHalfWidth = 60.0
)

// wrapHue wraps an angle in degrees into [0, 360).
func wrapHue(h float64) float64 {
	w := h - 360*math.Floor(h/360)
	if w < 0 {
		return w + 360
	}
	return w
}

// hueDelta returns the shortest signed angular distance from a to b,
// in degrees, in [-180, 180].
func hueDelta(a, b float64) float64 {
	d := wrapHue(b) - wrapHue(a)
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	return d
}

// hueBandWeight returns the cosine-window weight of hue h for a band
// centered at center with the given half-width, all in degrees.
// 1 at the center, 0 at ±halfWidth, smooth cosine falloff in between,
// exactly 0 outside the window.
func hueBandWeight(h, center, halfWidth float64) float64 {
	norm := hueDelta(h, center) / halfWidth
	if norm < -1 || norm > 1 {
		return 0
	}
	return 0.5 * (1 + math.Cos(math.Pi*norm))
}

// smoothRamp is the standard cubic Hermite ramp 3t²−2t³ over [edge0, edge1]:
// 0 at or below edge0, 1 at or above edge1, smooth and monotone in between.
func smoothRamp(edge0, edge1, x float64) float64 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
