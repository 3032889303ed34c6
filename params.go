package okgrade

// Params is the complete, immutable parameter set for one grade. A Params
// value is copied into the Grader at construction and never mutated, so
// the same set applies to every pixel of an image.
//
// All angles are in degrees. Neutral values (see DefaultParams) leave the
// image unchanged apart from floating-point round-trip noise.
type Params struct {
	// Lightness: L' = (L·LGain + LOffset − pivot)·contrast + pivot,
	// where pivot = max(LPivot, 0) and contrast = max(LContrast, 0).
	// The result is clamped to ≥ 0.
	LGain     float64
	LOffset   float64
	LContrast float64
	LPivot    float64

	// Chroma: C' = C·CGain + COffset, clamped to ≥ 0.
	CGain   float64
	COffset float64

	// HueShift rotates all hues by a constant offset. Like every hue
	// adjustment it fades to zero below HueChromaThreshold so
	// near-achromatic pixels never acquire a hue cast.
	HueShift           float64
	HueChromaThreshold float64

	// Per-band hue shifts. Each affects only pixels whose original hue
	// falls inside that band's 60° half-width cosine window.
	HueShiftRed     float64
	HueShiftYellow  float64
	HueShiftGreen   float64
	HueShiftCyan    float64
	HueShiftBlue    float64
	HueShiftMagenta float64

	// Target-hue correction: a user-aimable band at HueTarget with
	// half-width HueTargetFalloff (floored at 0.1°), shifting by
	// HueTargetShift.
	HueTarget        float64
	HueTargetShift   float64
	HueTargetFalloff float64

	// Mix blends between the untouched source (0) and the fully graded
	// result (1). Clamped to [0, 1] on use.
	Mix float64

	// ClampOutput clamps each graded RGB channel to [0, 1] before the
	// final mix.
	ClampOutput bool

	// Bypass short-circuits the whole grade: the output pixel equals the
	// input verbatim, alpha included.
	Bypass bool

	// DebugMode replaces the output with an intermediate quantity for
	// visualization. DebugOff grades normally.
	DebugMode DebugMode

	// HueCurves enables the per-hue LUT correction. It only takes effect
	// when a LUT with at least 2 entries is attached via WithHueLUT.
	HueCurves bool
}

// DefaultParams returns the neutral parameter set: unit gains, zero
// offsets and shifts, contrast 1 about a 0.18 pivot, 0.05 chroma
// threshold, 25° target falloff, full mix, no clamping, curves disabled.
func DefaultParams() Params {
	return Params{
		LGain:              1,
		LOffset:            0,
		LContrast:          1,
		LPivot:             0.18,
		CGain:              1,
		COffset:            0,
		HueShift:           0,
		HueChromaThreshold: 0.05,
		HueTarget:          0,
		HueTargetShift:     0,
		HueTargetFalloff:   25,
		Mix:                1,
	}
}
