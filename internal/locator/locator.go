// Package locator defines how a face is turned into skin sampling anchors.
//
// Strategies live in sub-packages and are built once at startup by
// face.NewLocator. A built Locator is shared by every request and must be
// safe for concurrent use.
package locator

import (
	"context"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
)

// Locator finds the first face in an image and returns the pixel anchors
// to sample skin from. It returns domain.ErrNoFace when nothing is found.
type Locator interface {
	Locate(ctx context.Context, img *imaging.Bitmap) ([]domain.AnchorPoint, error)

	// Name identifies the strategy in logs and audit events.
	Name() string

	// Variant selects the response contract for this strategy.
	Variant() domain.Variant
}
