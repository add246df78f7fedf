package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// MaxPixels bounds the decoded image size (about 50 megapixels).
const MaxPixels = 50_000_000

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// Decode turns a base64 payload, optionally wrapped in a data URL, into a
// Bitmap.
func Decode(payload string) (*Bitmap, error) {
	raw, err := DecodeBase64(payload)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(raw)
}

// DecodeBase64 strips a "data:<mime>;base64," prefix and any whitespace,
// then tries the standard and URL alphabets, padded and unpadded.
func DecodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if strings.HasPrefix(payload, "data:") {
		if i := strings.Index(payload, ","); i >= 0 {
			payload = payload[i+1:]
		}
	}
	payload = strings.Join(strings.Fields(payload), "")

	if payload == "" {
		return nil, domain.ErrMissingImage
	}

	var lastErr error
	for _, enc := range base64Encodings {
		data, err := enc.DecodeString(payload)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}

	return nil, domain.ErrInvalidBase64.WithError(lastErr)
}

// DecodeBytes decodes an encoded image (JPEG, PNG, GIF, BMP, TIFF, WebP).
func DecodeBytes(data []byte) (*Bitmap, error) {
	if len(data) == 0 {
		return nil, domain.ErrDecodeImage.WithError(fmt.Errorf("empty image"))
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, domain.ErrDecodeImage.WithError(err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, domain.ErrDecodeImage.WithError(fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.Width*cfg.Height > MaxPixels {
		return nil, domain.ErrDecodeImage.WithError(fmt.Errorf("image too large (%dx%d, maximum %d pixels)", cfg.Width, cfg.Height, MaxPixels))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.ErrDecodeImage.WithError(err)
	}

	b := FromImage(img)
	b.Format = format
	b.Encoded = data
	return b, nil
}
