package imaging

import (
	"image"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// PatchHalfSize is the half-width of a sampling patch.
const PatchHalfSize = 5

// PatchRect returns the patch around center: rows [cy-half, cy+half) and
// columns [cx-half, cx+half), clipped to the bitmap. The result may be empty.
func (b *Bitmap) PatchRect(center domain.AnchorPoint, half int) image.Rectangle {
	r := image.Rectangle{
		Min: image.Point{X: max(0, center.X-half), Y: max(0, center.Y-half)},
		Max: image.Point{X: center.X + half, Y: center.Y + half},
	}
	return r.Intersect(b.Bounds())
}

// Sample collects every pixel of every non-empty patch, in anchor order
// and row-major within a patch. Empty patches are skipped.
func Sample(b *Bitmap, anchors []domain.AnchorPoint, half int) []domain.ColorTuple {
	var pixels []domain.ColorTuple

	for _, a := range anchors {
		r := b.PatchRect(a, half)
		if r.Empty() {
			continue
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				pixels = append(pixels, b.Tuple(x, y))
			}
		}
	}

	return pixels
}
