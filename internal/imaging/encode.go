package imaging

import (
	"bytes"
	"fmt"
	"image/png"
)

// EncodeFor returns image bytes in one of the accepted formats. The original
// payload is reused when its format is accepted and it fits maxBytes
// (maxBytes <= 0 means no limit); otherwise the bitmap is re-encoded as PNG.
func (b *Bitmap) EncodeFor(maxBytes int, accepted ...string) ([]byte, error) {
	if len(b.Encoded) > 0 && (maxBytes <= 0 || len(b.Encoded) <= maxBytes) {
		for _, f := range accepted {
			if f == b.Format {
				return b.Encoded, nil
			}
		}
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, b); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	if maxBytes > 0 && buf.Len() > maxBytes {
		return nil, fmt.Errorf("encoded image too large (%d bytes, maximum %d)", buf.Len(), maxBytes)
	}
	return buf.Bytes(), nil
}
