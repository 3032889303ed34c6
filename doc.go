// Package okgrade provides a parametric color grade in the OKLCH color space.
//
// # Overview
//
// okgrade implements a per-pixel grading transform operating on linear-light
// RGBA pixels. Pixels are converted to OKLCH (the polar form of OKLab, a
// perceptually uniform color space), graded with artist-friendly controls
// (lightness gain/offset/contrast, chroma gain/offset, global and per-band
// hue shifts, an aimable target-hue correction, and optional per-hue LUT
// curves), then converted back to linear RGB and blended with the source.
//
// The transform is a pure function of one pixel plus a read-only parameter
// set: it holds no cross-pixel state, never blocks, and is safe to evaluate
// from any number of goroutines at once.
//
// # Quick Start
//
//	import "github.com/gogpu/okgrade"
//
//	p := okgrade.DefaultParams()
//	p.LContrast = 1.2
//	p.HueShiftRed = 10 // warm up the reds
//
//	g := okgrade.New(p)
//
//	// Grade a single linear-light pixel.
//	out := g.Pixel(okgrade.RGBA{R: 0.8, G: 0.2, B: 0.1, A: 1})
//
//	// Or grade a whole buffer in parallel.
//	pm := okgrade.NewPixmap(1920, 1080)
//	g.Apply(pm)
//
// # Architecture
//
// The pipeline evaluates in strict order per pixel:
//
//   - Color-space conversion: linear RGB → XYZ → OKLab → OKLCH
//   - Lightness/chroma grading (gain, offset, contrast about a pivot)
//   - Hue compositing: chroma-weighted global shift, six cosine-window
//     color bands, a user-positioned target band, optional LUT hue offset
//   - Debug short-circuit (optional intermediate visualization)
//   - Reconstruction: OKLCH → OKLab → XYZ → linear RGB, clamp, mix
//
// Conversion matrices match the CSS Color 4 reference constants exactly so
// grades interoperate bit-for-bit with other implementations of the same
// transform.
//
// # Color Space
//
// All pixel values entering and leaving the grade are linear-light. The
// Pixmap and image helpers apply the sRGB transfer function only at the
// boundary when converting from or to 8/16-bit images; alpha is never
// gamma-encoded and always passes through the grade untouched.
package okgrade

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
