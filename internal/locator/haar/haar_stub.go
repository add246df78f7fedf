//go:build !opencv
// +build !opencv

package haar

import (
	"context"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator"
)

// Locator is the placeholder used when OpenCV is not compiled in.
type Locator struct{}

// New always fails without the opencv build tag.
func New(cfg Config) (*Locator, error) {
	return nil, ErrOpenCVUnavailable
}

func (l *Locator) Locate(ctx context.Context, img *imaging.Bitmap) ([]domain.AnchorPoint, error) {
	return nil, ErrOpenCVUnavailable
}

func (l *Locator) Close() error {
	return nil
}

func (l *Locator) Name() string {
	return name
}

func (l *Locator) Variant() domain.Variant {
	return domain.VariantClassical
}

var _ locator.Locator = (*Locator)(nil)
