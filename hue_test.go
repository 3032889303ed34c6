package okgrade

import (
	"math"
	"testing"
)

func TestWrapHue(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		want float64
	}{
		{"zero", 0, 0},
		{"full turn", 360, 0},
		{"two turns", 720, 0},
		{"negative turn", -360, 0},
		{"in range", 359.5, 359.5},
		{"just over", 361, 1},
		{"negative", -1, 359},
		{"large", 1234.5, 154.5},
		{"large negative", -1234.5, 205.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapHue(tt.h)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("wrapHue(%g) = %g, want %g", tt.h, got, tt.want)
			}
		})
	}
}

func TestWrapHue_Range(t *testing.T) {
	// wrapHue lands in [0, 360) for any finite input and is periodic with
	// period 360.
	for h := -1080.0; h <= 1080.0; h += 7.3 {
		w := wrapHue(h)
		if w < 0 || w >= 360 {
			t.Fatalf("wrapHue(%g) = %g, out of [0, 360)", h, w)
		}
		for k := -3; k <= 3; k++ {
			if shifted := wrapHue(h + 360*float64(k)); math.Abs(shifted-w) > 1e-9 {
				t.Fatalf("wrapHue(%g + 360·%d) = %g, want %g", h, k, shifted, w)
			}
		}
	}
}

func TestHueDelta(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"identical", 90, 90, 0},
		{"forward", 10, 30, 20},
		{"backward", 30, 10, -20},
		{"across seam forward", 350, 10, 20},
		{"across seam backward", 10, 350, -20},
		{"opposite", 0, 180, 180},
		{"just past opposite", 0, 181, -179},
		{"unwrapped inputs", 370, -350, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hueDelta(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("hueDelta(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.want)
			}
			if got < -180 || got > 180 {
				t.Errorf("hueDelta(%g, %g) = %g, out of [-180, 180]", tt.a, tt.b, got)
			}
		})
	}
}

func TestHueBandWeight_Boundaries(t *testing.T) {
	const center, half = 100.0, 60.0

	if w := hueBandWeight(center, center, half); w != 1 {
		t.Errorf("weight at center = %g, want 1", w)
	}
	if w := hueBandWeight(center-half, center, half); w > 1e-15 {
		t.Errorf("weight at lower edge = %g, want 0", w)
	}
	if w := hueBandWeight(center+half, center, half); w > 1e-15 {
		t.Errorf("weight at upper edge = %g, want 0", w)
	}
	if w := hueBandWeight(center-half-0.1, center, half); w != 0 {
		t.Errorf("weight below window = %g, want exactly 0", w)
	}
	if w := hueBandWeight(center+half+0.1, center, half); w != 0 {
		t.Errorf("weight above window = %g, want exactly 0", w)
	}
	if w := hueBandWeight(center+half/2, center, half); math.Abs(w-0.5) > 1e-12 {
		t.Errorf("weight at half window = %g, want 0.5", w)
	}
}

func TestHueBandWeight_Symmetric(t *testing.T) {
	const center, half = 200.0, 60.0
	for d := 0.0; d <= half; d += 5 {
		lo := hueBandWeight(center-d, center, half)
		hi := hueBandWeight(center+d, center, half)
		if math.Abs(lo-hi) > 1e-12 {
			t.Errorf("weight asymmetric at ±%g: %g vs %g", d, lo, hi)
		}
	}
}

func TestHueBandWeight_WrapCoverage(t *testing.T) {
	// Magenta's window (center 325°) reaches across the 0/360 seam.
	if w := hueBandWeight(5, bandMagenta, bandHalfWidth); w <= 0 {
		t.Errorf("magenta weight at hue 5 = %g, want > 0", w)
	}
	// But not past its half-width.
	if w := hueBandWeight(30, bandMagenta, bandHalfWidth); w != 0 {
		t.Errorf("magenta weight at hue 30 = %g, want 0", w)
	}
}

func TestRedBand_SecondLobe(t *testing.T) {
	// The Red band is evaluated at both 0° and 360°. With wrapped
	// shortest-distance arithmetic the two windows coincide, so the
	// summed red contribution is exactly twice the single window and
	// remains continuous across the seam.
	redWeight := func(h float64) float64 {
		return hueBandWeight(h, bandRed, bandHalfWidth) + hueBandWeight(h, 360, bandHalfWidth)
	}

	for h := 0.0; h < 360; h += 2.5 {
		single := hueBandWeight(h, bandRed, bandHalfWidth)
		if got := redWeight(h); math.Abs(got-2*single) > 1e-12 {
			t.Fatalf("red weight at %g = %g, want 2·%g", h, got, single)
		}
	}

	if math.Abs(redWeight(359.9)-redWeight(0.1)) > 1e-3 {
		t.Errorf("red weight discontinuous across the seam: %g vs %g",
			redWeight(359.9), redWeight(0.1))
	}
	if got := redWeight(0); got != 2 {
		t.Errorf("red weight at 0 = %g, want 2", got)
	}
}

func TestSmoothRamp(t *testing.T) {
	const threshold = 0.05

	if got := smoothRamp(0, threshold, 0); got != 0 {
		t.Errorf("ramp at 0 = %g, want 0", got)
	}
	if got := smoothRamp(0, threshold, threshold); got != 1 {
		t.Errorf("ramp at threshold = %g, want 1", got)
	}
	if got := smoothRamp(0, threshold, 1); got != 1 {
		t.Errorf("ramp above threshold = %g, want 1", got)
	}
	if got := smoothRamp(0, threshold, -0.1); got != 0 {
		t.Errorf("ramp below edge = %g, want 0", got)
	}
	if got := smoothRamp(0, threshold, threshold/2); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("ramp at midpoint = %g, want 0.5", got)
	}
}

func TestSmoothRamp_Monotonic(t *testing.T) {
	const threshold = 0.05
	prev := -1.0
	for x := 0.0; x <= threshold*1.2; x += threshold / 100 {
		got := smoothRamp(0, threshold, x)
		if got < prev {
			t.Fatalf("ramp not monotonic: ramp(%g) = %g < %g", x, got, prev)
		}
		prev = got
	}
}
