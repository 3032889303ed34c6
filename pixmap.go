package okgrade

import (
	"image"
	"image/color"

	"github.com/gogpu/okgrade/internal/srgb"
)

// Pixmap represents a rectangular linear-light pixel buffer.
// Pixels are stored as float32 RGBA, 4 components per pixel, so HDR
// values survive grading without quantization. The sRGB transfer function
// is applied only when converting from or to 8-bit images.
type Pixmap struct {
	width  int
	height int
	data   []float32 // RGBA format, 4 floats per pixel, linear light
}

// NewPixmap creates a new pixmap with the given dimensions, initialized
// to transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (linear-light RGBA floats).
func (p *Pixmap) Data() []float32 {
	return p.data
}

// SetPixel sets the color of a single pixel. Values are stored as-is,
// without clamping.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = float32(c.R)
	p.data[i+1] = float32(c.G)
	p.data[i+2] = float32(c.B)
	p.data[i+3] = float32(c.A)
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]),
		G: float64(p.data[i+1]),
		B: float64(p.data[i+2]),
		A: float64(p.data[i+3]),
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := float32(c.R)
	g := float32(c.G)
	b := float32(c.B)
	a := float32(c.A)

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// ToImage converts the pixmap to an image.NRGBA, encoding R, G, and B to
// sRGB. Values outside [0, 1] are clamped by the 8-bit encode.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < len(p.data); i += 4 {
		img.Pix[i+0] = srgb.FromLinear8(float64(p.data[i+0]))
		img.Pix[i+1] = srgb.FromLinear8(float64(p.data[i+1]))
		img.Pix[i+2] = srgb.FromLinear8(float64(p.data[i+2]))
		img.Pix[i+3] = uint8(clamp01(float64(p.data[i+3]))*255 + 0.5)
	}
	return img
}

// FromImage creates a pixmap from an image, decoding sRGB to linear
// light. *image.NRGBA sources take a table-lookup fast path; everything
// else goes through the generic color.Color interface.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+width*4]
			out := pm.data[y*width*4 : (y+1)*width*4]
			for x := 0; x < width; x++ {
				out[x*4+0] = float32(srgb.ToLinear8(row[x*4+0]))
				out[x*4+1] = float32(srgb.ToLinear8(row[x*4+1]))
				out[x*4+2] = float32(srgb.ToLinear8(row[x*4+2]))
				out[x*4+3] = float32(row[x*4+3]) / 255
			}
		}
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
