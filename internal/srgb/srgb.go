// Package srgb provides the sRGB transfer function, with lookup tables
// for the 8-bit fast paths.
//
// The grade itself runs entirely in linear light; this package is only
// used at the boundary when pixels enter from or leave to sRGB-encoded
// images. The 8-bit tables replace math.Pow with array lookups, which
// matters when converting whole buffers.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package srgb

import "math"

// toLinearLUT provides O(1) sRGB byte → linear conversion.
// Pre-computed 256 entries.
var toLinearLUT [256]float64

// fromLinearLUT provides O(1) linear → sRGB byte conversion.
// 4096 entries give 12-bit precision, more than sufficient for 8-bit
// output.
var fromLinearLUT [4096]uint8

func init() {
	for i := range toLinearLUT {
		toLinearLUT[i] = ToLinear(float64(i) / 255)
	}
	for i := range fromLinearLUT {
		s := FromLinear(float64(i) / 4095)
		v := int(s*255 + 0.5)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		fromLinearLUT[i] = uint8(v)
	}
}

// ToLinear converts an sRGB-encoded component to linear light (EOTF).
// Input and output are in [0, 1].
func ToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// FromLinear converts a linear-light component to sRGB encoding (OETF).
// Input and output are in [0, 1].
func FromLinear(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// ToLinear8 converts an sRGB byte to linear light using the lookup table.
func ToLinear8(s uint8) float64 {
	return toLinearLUT[s]
}

// FromLinear8 converts linear light to an sRGB byte using the lookup
// table. Input is clamped to [0, 1].
func FromLinear8(l float64) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return fromLinearLUT[int(l*4095+0.5)]
}
