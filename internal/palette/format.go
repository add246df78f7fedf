package palette

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// ToColorful converts a BGR tuple into a go-colorful sRGB colour.
func ToColorful(c domain.ColorTuple) colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255.0,
		G: float64(c.G()) / 255.0,
		B: float64(c.B()) / 255.0,
	}
}

// Hex renders a BGR tuple as "#rrggbb", lowercase.
func Hex(c domain.ColorTuple) string {
	return ToColorful(c).Hex()
}
