package palette

import (
	"fmt"
	"math"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// ToneClassifier labels a dominant skin colour.
type ToneClassifier interface {
	Classify(c domain.ColorTuple) string
}

// DefaultToneLabel is the label the landmark variant has always answered with.
const DefaultToneLabel = "Wheatish"

// FixedTone answers with the same label for every colour.
type FixedTone struct {
	Label string
}

func (f FixedTone) Classify(domain.ColorTuple) string {
	return f.Label
}

// ITATone buckets colours by Individual Typology Angle,
// ITA = atan((L* - 50) / b*) * 180 / pi, computed in CIE L*a*b* (D65).
type ITATone struct{}

// ITA thresholds in degrees, lightest first.
var itaCategories = []struct {
	min   float64
	label string
}{
	{55, "Very Light"},
	{41, "Light"},
	{28, "Intermediate"},
	{10, "Tan"},
	{-30, "Brown"},
}

func (ITATone) Classify(c domain.ColorTuple) string {
	angle := ITA(c)
	for _, cat := range itaCategories {
		if angle > cat.min {
			return cat.label
		}
	}
	return "Dark"
}

// ITA returns the Individual Typology Angle of c in degrees.
func ITA(c domain.ColorTuple) float64 {
	l, _, b := ToColorful(c).Lab()
	// go-colorful scales L* and b* by 1/100
	l *= 100
	b *= 100

	// achromatic colours: the angle saturates
	if math.Abs(b) < 1e-6 {
		if l >= 50 {
			return 90
		}
		return -90
	}
	return math.Atan((l-50)/b) * 180 / math.Pi
}

// NewToneClassifier maps a configured classifier name to an implementation.
func NewToneClassifier(name, label string) (ToneClassifier, error) {
	switch name {
	case "fixed", "":
		if label == "" {
			label = DefaultToneLabel
		}
		return FixedTone{Label: label}, nil
	case "ita":
		return ITATone{}, nil
	default:
		return nil, fmt.Errorf("unknown tone classifier: %s (supported: fixed, ita)", name)
	}
}
