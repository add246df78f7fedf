// Package static provides a locator that always reports the same face box.
// It backs tests and local development without a detection model.
package static

import (
	"context"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator"
)

const name = "static"

// Locator implementa locator.Locator com uma região fixa
type Locator struct {
	region  *domain.FaceRegion
	variant domain.Variant
}

// New creates a locator answering with region. A nil region reports no face.
func New(region *domain.FaceRegion) *Locator {
	return &Locator{
		region:  region,
		variant: domain.VariantClassical,
	}
}

// WithVariant changes the response contract the locator advertises.
func (l *Locator) WithVariant(v domain.Variant) *Locator {
	l.variant = v
	return l
}

// Locate returns the anchors of the configured region.
func (l *Locator) Locate(ctx context.Context, img *imaging.Bitmap) ([]domain.AnchorPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.region == nil || l.region.Empty() {
		return nil, domain.ErrNoFace
	}
	return locator.AnchorsFromRegion(*l.region), nil
}

func (l *Locator) Name() string {
	return name
}

func (l *Locator) Variant() domain.Variant {
	return l.variant
}

var _ locator.Locator = (*Locator)(nil)
