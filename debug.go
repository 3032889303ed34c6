package okgrade

// DebugMode selects an intermediate quantity to visualize instead of the
// graded output. Every mode passes the source alpha through unchanged.
type DebugMode int

const (
	// DebugOff grades normally.
	DebugOff DebugMode = iota

	// DebugLightness outputs the graded L as grayscale.
	DebugLightness

	// DebugChroma outputs the graded C as grayscale.
	DebugChroma

	// DebugHue outputs the graded hue divided by 360 as grayscale.
	DebugHue

	// DebugChromaWeight outputs the achromatic-falloff weight applied to
	// all hue shifts: black below the chroma threshold, white above.
	DebugChromaWeight

	// DebugHueLUT outputs the raw hue-curve LUT channels sampled at the
	// original hue, or flat 0.5 gray when no LUT is active.
	DebugHueLUT
)

// String returns the debug mode name.
func (m DebugMode) String() string {
	switch m {
	case DebugOff:
		return "Off"
	case DebugLightness:
		return "Lightness"
	case DebugChroma:
		return "Chroma"
	case DebugHue:
		return "Hue"
	case DebugChromaWeight:
		return "ChromaWeight"
	case DebugHueLUT:
		return "HueLUT"
	default:
		return "Unknown"
	}
}
