// Package imagingtest builds synthetic bitmaps and base64 payloads for tests.
package imagingtest

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
)

// CreateSquareImage returns a width x height bitmap filled with background
// and a square of fill at square.
func CreateSquareImage(width, height int, background domain.ColorTuple, square image.Rectangle, fill domain.ColorTuple) *imaging.Bitmap {
	b := imaging.NewBitmap(width, height)
	b.Fill(b.Bounds(), background)
	b.Fill(square, fill)
	return b
}

// EncodePNGBase64 encodes img as a standard base64 PNG payload and fails
// the test when encoding is not possible.
func EncodePNGBase64(tb testing.TB, img image.Image) string {
	tb.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		tb.Fatalf("encode png: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
