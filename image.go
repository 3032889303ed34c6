package okgrade

import (
	"image"
	"log/slog"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/okgrade/internal/srgb"
)

// Apply grades every pixel of the pixmap in place. Rows are split into
// contiguous stripes, one goroutine per worker; the grade itself is pure,
// so no synchronization beyond the final join is needed.
func (g *Grader) Apply(pm *Pixmap) {
	Logger().Debug("okgrade: apply pixmap",
		slog.Int("width", pm.width),
		slog.Int("height", pm.height),
		slog.Int("workers", g.workers))

	g.stripes(pm.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < pm.width; x++ {
				pm.SetPixel(x, y, g.Pixel(pm.GetPixel(x, y)))
			}
		}
	})
}

// ApplyImage grades an sRGB-encoded image and returns the result as a
// 16-bit NRGBA64. The source is first normalized through
// golang.org/x/image/draw so any image.Image works; R, G, and B are
// decoded to linear light before grading and re-encoded after. Values
// the grade pushes outside [0, 1] are clamped by the 16-bit encode.
func (g *Grader) ApplyImage(src image.Image) *image.NRGBA64 {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	Logger().Debug("okgrade: apply image",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("workers", g.workers))

	dst := image.NewNRGBA64(image.Rect(0, 0, width, height))
	xdraw.Copy(dst, image.Point{}, src, bounds, xdraw.Src, nil)

	g.stripes(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+width*8]
			for x := 0; x < width; x++ {
				i := x * 8
				in := RGBA{
					R: srgb.ToLinear(float64(uint16(row[i+0])<<8|uint16(row[i+1])) / 65535),
					G: srgb.ToLinear(float64(uint16(row[i+2])<<8|uint16(row[i+3])) / 65535),
					B: srgb.ToLinear(float64(uint16(row[i+4])<<8|uint16(row[i+5])) / 65535),
					A: float64(uint16(row[i+6])<<8|uint16(row[i+7])) / 65535,
				}
				out := g.Pixel(in)
				putNRGBA64(row[i:i+8:i+8], out)
			}
		}
	})
	return dst
}

// putNRGBA64 encodes a linear-light pixel into 8 bytes of NRGBA64 data,
// applying the sRGB transfer to R, G, and B.
func putNRGBA64(b []byte, c RGBA) {
	r := uint16(clamp01(srgb.FromLinear(clamp01(c.R)))*65535 + 0.5)
	g := uint16(clamp01(srgb.FromLinear(clamp01(c.G)))*65535 + 0.5)
	bl := uint16(clamp01(srgb.FromLinear(clamp01(c.B)))*65535 + 0.5)
	a := uint16(clamp01(c.A)*65535 + 0.5)
	b[0], b[1] = uint8(r>>8), uint8(r)
	b[2], b[3] = uint8(g>>8), uint8(g)
	b[4], b[5] = uint8(bl>>8), uint8(bl)
	b[6], b[7] = uint8(a>>8), uint8(a)
}

// stripes runs fn over [0, height) split into contiguous row ranges, one
// per worker. Heights smaller than the worker count and single-worker
// graders run inline.
func (g *Grader) stripes(height int, fn func(y0, y1 int)) {
	workers := g.workers
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		fn(0, height)
		return
	}

	var wg sync.WaitGroup
	rows := height / workers
	extra := height % workers

	y := 0
	for w := 0; w < workers; w++ {
		y0 := y
		y1 := y0 + rows
		if w < extra {
			y1++
		}
		y = y1

		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(y0, y1)
		}()
	}
	wg.Wait()
}
