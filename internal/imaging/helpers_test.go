package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

func createSquareImage(width, height int, background domain.ColorTuple, square image.Rectangle, fill domain.ColorTuple) *Bitmap {
	b := NewBitmap(width, height)
	b.Fill(b.Bounds(), background)
	b.Fill(square, fill)
	return b
}

func encodePNGBase64(t *testing.T, img image.Image) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
