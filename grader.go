package okgrade

import (
	"math"
	"runtime"
)

// Option configures a Grader during creation.
//
// Example:
//
//	// Plain grade
//	g := okgrade.New(params)
//
//	// Grade with hue curves and a fixed worker count
//	g := okgrade.New(params, okgrade.WithHueLUT(lut), okgrade.WithWorkers(4))
type Option func(*Grader)

// WithHueLUT attaches a per-hue correction LUT. The LUT only takes effect
// when Params.HueCurves is enabled and the LUT has at least 2 entries;
// otherwise every curve branch is skipped and the output matches the
// no-LUT grade bit-for-bit.
func WithHueLUT(lut *HueLUT) Option {
	return func(g *Grader) {
		g.lut = lut
	}
}

// WithWorkers sets the number of goroutines used by Apply and ApplyImage.
// Zero or negative means GOMAXPROCS. Pixel is unaffected.
func WithWorkers(n int) Option {
	return func(g *Grader) {
		g.workers = n
	}
}

// Grader evaluates the OKLCH grade. It is immutable after New and safe
// for concurrent use from any number of goroutines: the only state is the
// parameter copy and the read-only LUT.
type Grader struct {
	params  Params
	lut     *HueLUT
	workers int
}

// New creates a Grader for the given parameter set.
func New(p Params, opts ...Option) *Grader {
	g := &Grader{params: p}
	for _, opt := range opts {
		opt(g)
	}
	if g.workers <= 0 {
		g.workers = runtime.GOMAXPROCS(0)
	}
	return g
}

// Params returns the grader's parameter set.
func (g *Grader) Params() Params {
	return g.params
}

// curvesActive reports whether the hue-curve branches run: curves enabled
// and a usable LUT attached.
func (g *Grader) curvesActive() bool {
	return g.params.HueCurves && g.lut != nil && g.lut.Width() > 1
}

// Pixel grades one linear-light pixel. It is a pure function: no state,
// no allocation, total over all finite inputs. Negative R, G, or B are
// treated as 0 for the color math; alpha passes through untouched.
func (g *Grader) Pixel(src RGBA) RGBA {
	if g.params.Bypass {
		return src
	}

	inR := math.Max(src.R, 0)
	inG := math.Max(src.G, 0)
	inB := math.Max(src.B, 0)

	lch := ToOKLCH(inR, inG, inB)
	p := &g.params

	// Grade L and C.
	gradedL := lch.L*p.LGain + p.LOffset
	pivot := math.Max(p.LPivot, 0)
	contrast := math.Max(p.LContrast, 0)
	gradedL = (gradedL-pivot)*contrast + pivot
	gradedC := lch.C*p.CGain + p.COffset

	if gradedL < 0 {
		gradedL = 0
	}
	if gradedC < 0 {
		gradedC = 0
	}

	// Hue curves: per-hue L/C multipliers, sampled at the original hue,
	// applied on top of the additive grade.
	curves := g.curvesActive()
	if curves {
		_, cCh, lCh := g.lut.Sample(lch.H)
		gradedL = math.Max(gradedL*(lCh*2), 0)
		gradedC = math.Max(gradedC*(cCh*2), 0)
	}

	// Grade H. All shifts scale with the chroma weight: a cubic Hermite
	// ramp that reaches 1 at the chroma threshold, so neutrals and
	// near-blacks never pick up a hue cast. The threshold is floored to
	// keep the ramp's denominator away from zero.
	threshold := math.Max(p.HueChromaThreshold, 1e-4)
	chromaWeight := smoothRamp(0, threshold, lch.C)

	origH := lch.H
	totalShift := p.HueShift * chromaWeight

	totalShift += p.HueShiftRed * hueBandWeight(origH, bandRed, bandHalfWidth) * chromaWeight
	totalShift += p.HueShiftYellow * hueBandWeight(origH, bandYellow, bandHalfWidth) * chromaWeight
	totalShift += p.HueShiftGreen * hueBandWeight(origH, bandGreen, bandHalfWidth) * chromaWeight
	totalShift += p.HueShiftCyan * hueBandWeight(origH, bandCyan, bandHalfWidth) * chromaWeight
	totalShift += p.HueShiftBlue * hueBandWeight(origH, bandBlue, bandHalfWidth) * chromaWeight
	totalShift += p.HueShiftMagenta * hueBandWeight(origH, bandMagenta, bandHalfWidth) * chromaWeight

	// Second Red lobe at the top of the wheel.
	totalShift += p.HueShiftRed * hueBandWeight(origH, 360, bandHalfWidth) * chromaWeight

	// Target-hue correction around a user-picked center.
	targetFalloff := math.Max(p.HueTargetFalloff, 0.1)
	totalShift += p.HueTargetShift * hueBandWeight(origH, wrapHue(p.HueTarget), targetFalloff) * chromaWeight

	// Hue curves: per-hue offset, an independent second LUT sample.
	if curves {
		hCh, _, _ := g.lut.Sample(origH)
		totalShift += (hCh - 0.5) * 360 * chromaWeight
	}

	gradedH := wrapHue(origH + totalShift)

	// Debug short-circuits replace the output before reconstruction;
	// clamp and mix do not apply to them.
	switch p.DebugMode {
	case DebugLightness:
		return RGBA{R: gradedL, G: gradedL, B: gradedL, A: src.A}
	case DebugChroma:
		return RGBA{R: gradedC, G: gradedC, B: gradedC, A: src.A}
	case DebugHue:
		v := gradedH / 360
		return RGBA{R: v, G: v, B: v, A: src.A}
	case DebugChromaWeight:
		return RGBA{R: chromaWeight, G: chromaWeight, B: chromaWeight, A: src.A}
	case DebugHueLUT:
		if curves {
			hCh, cCh, lCh := g.lut.Sample(origH)
			return RGBA{R: hCh, G: cCh, B: lCh, A: src.A}
		}
		return RGBA{R: 0.5, G: 0.5, B: 0.5, A: src.A}
	}

	// Reconstruct and blend.
	outR, outG, outB := OKLCH{L: gradedL, C: gradedC, H: gradedH}.LinearRGB()
	if p.ClampOutput {
		outR = clamp01(outR)
		outG = clamp01(outG)
		outB = clamp01(outB)
	}

	t := clamp01(p.Mix)
	return RGBA{
		R: inR + (outR-inR)*t,
		G: inG + (outG-inG)*t,
		B: inB + (outB-inB)*t,
		A: src.A,
	}
}
