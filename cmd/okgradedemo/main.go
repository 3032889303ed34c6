// Command okgradedemo demonstrates the okgrade color-grading library.
//
// It renders a test card (a hue/chroma sweep over a neutral gray ramp),
// applies a sample grade, and writes the result as a PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/okgrade"
)

func main() {
	var (
		width  = flag.Int("width", 720, "image width")
		height = flag.Int("height", 480, "image height")
		output = flag.String("output", "grade.png", "output file")
		debug  = flag.Int("debug", 0, "debug mode (0=off, 1=L, 2=C, 3=H, 4=chroma weight, 5=LUT)")
	)
	flag.Parse()

	pm := drawTestCard(*width, *height)

	p := okgrade.DefaultParams()
	p.LContrast = 1.15
	p.CGain = 1.1
	p.HueShiftRed = 8    // warm the reds
	p.HueShiftBlue = -12 // push blues toward cyan
	p.DebugMode = okgrade.DebugMode(*debug)

	g := okgrade.New(p, okgrade.WithHueLUT(okgrade.NeutralHueLUT(360)))
	g.Apply(pm)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, pm.ToImage()); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawTestCard fills a pixmap with a hue sweep (hue across x, chroma
// across y) above a neutral gray ramp. The gray ramp stays untouched by
// hue adjustments thanks to the chroma-weight falloff.
func drawTestCard(w, h int) *okgrade.Pixmap {
	pm := okgrade.NewPixmap(w, h)

	split := h * 2 / 3
	for y := 0; y < split; y++ {
		chroma := 0.25 * float64(y) / float64(split)
		for x := 0; x < w; x++ {
			hue := 360 * float64(x) / float64(w)
			r, g, b := okgrade.OKLCH{L: 0.72, C: chroma, H: hue}.LinearRGB()
			pm.SetPixel(x, y, okgrade.RGBA{R: r, G: g, B: b, A: 1})
		}
	}
	for y := split; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float64(x) / float64(w)
			pm.SetPixel(x, y, okgrade.RGB(v, v, v))
		}
	}
	return pm
}
