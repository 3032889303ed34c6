package okgrade

import "fmt"

// HueLUT is a read-only 1D lookup table indexed by hue, driving the
// optional per-hue correction curves. Each entry holds three channels in
// [0, 1]:
//
//   - channel 0: hue offset, centered so 0.5 means no shift, scaled to ±180°
//   - channel 1: chroma multiplier, doubled so 0.5 means ×1.0
//   - channel 2: lightness multiplier, same doubling convention
//
// The table is sampled with linear interpolation along the wrapped hue
// axis. A HueLUT is immutable after construction and safe for concurrent
// use.
type HueLUT struct {
	entries [][3]float64
}

// NewHueLUT builds a hue LUT from the given entries. At least two entries
// are required; the caller keeps ownership of the slice, the LUT stores a
// copy.
func NewHueLUT(entries [][3]float64) (*HueLUT, error) {
	if len(entries) < 2 {
		return nil, fmt.Errorf("okgrade: hue LUT needs at least 2 entries, got %d", len(entries))
	}
	cp := make([][3]float64, len(entries))
	copy(cp, entries)
	return &HueLUT{entries: cp}, nil
}

// NeutralHueLUT returns an identity LUT of the given width: every channel
// is 0.5, so hue offset is 0 and both multipliers are ×1.0. Widths below 2
// are raised to 2.
func NeutralHueLUT(width int) *HueLUT {
	if width < 2 {
		width = 2
	}
	entries := make([][3]float64, width)
	for i := range entries {
		entries[i] = [3]float64{0.5, 0.5, 0.5}
	}
	return &HueLUT{entries: entries}
}

// Width returns the number of entries in the LUT.
func (l *HueLUT) Width() int {
	return len(l.entries)
}

// Sample reads the LUT at the given hue (degrees, any finite value) with
// linear interpolation, returning the raw channel values.
func (l *HueLUT) Sample(hueDeg float64) (hue, chroma, light float64) {
	w := len(l.entries)
	x := wrapHue(hueDeg) / 360 * float64(w-1)

	i := int(x)
	if i > w-2 {
		i = w - 2
	}
	frac := x - float64(i)

	lo, hi := l.entries[i], l.entries[i+1]
	hue = lo[0] + (hi[0]-lo[0])*frac
	chroma = lo[1] + (hi[1]-lo[1])*frac
	light = lo[2] + (hi[2]-lo[2])*frac
	return hue, chroma, light
}
