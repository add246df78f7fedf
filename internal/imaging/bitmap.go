// Package imaging turns request payloads into BGR bitmaps and samples
// pixel patches out of them.
package imaging

import (
	"image"
	"image/color"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// Bitmap is a decoded 3-channel image. Pix holds blue, green, red bytes,
// row-major, with no padding between rows. It lives for a single request.
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8

	// Format is the name reported by image.Decode ("jpeg", "png", ...).
	Format string
	// Encoded keeps the original bytes so remote locators can forward them
	// without re-encoding.
	Encoded []byte
}

// NewBitmap allocates a black bitmap.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// FromImage copies any image.Image into BGR storage. Alpha is dropped, not
// composited, so a transparent pixel keeps its colour channels.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < b.Height; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+b.Width*4]
			for x := 0; x < b.Width; x++ {
				b.set(x, y, row[x*4+2], row[x*4+1], row[x*4])
			}
		}
	default:
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				b.set(x, y, c.B, c.G, c.R)
			}
		}
	}

	return b
}

func (b *Bitmap) offset(x, y int) int {
	return (y*b.Width + x) * 3
}

func (b *Bitmap) set(x, y int, blue, green, red uint8) {
	i := b.offset(x, y)
	b.Pix[i] = blue
	b.Pix[i+1] = green
	b.Pix[i+2] = red
}

// Set writes one pixel. Coordinates outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, c domain.ColorTuple) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.set(x, y, c[0], c[1], c[2])
}

// Fill paints r, clipped to the bitmap.
func (b *Bitmap) Fill(r image.Rectangle, c domain.ColorTuple) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.set(x, y, c[0], c[1], c[2])
		}
	}
}

// Tuple returns the pixel at (x, y). The caller guarantees bounds.
func (b *Bitmap) Tuple(x, y int) domain.ColorTuple {
	i := b.offset(x, y)
	return domain.ColorTuple{b.Pix[i], b.Pix[i+1], b.Pix[i+2]}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(b.Bounds()) {
		return color.RGBA{}
	}
	c := b.Tuple(x, y)
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xff}
}

var _ image.Image = (*Bitmap)(nil)
