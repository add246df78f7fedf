// Package mesh locates faces through a remote 478-point face mesh service.
package mesh

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator"
)

const name = "mesh"

// Formats the service accepts without re-encoding.
var acceptedFormats = []string{"jpeg", "png", "webp"}

// Locator implements locator.Locator on top of Client.
type Locator struct {
	client *Client
}

// New creates a mesh locator. No request is made until Locate.
func New(cfg Config) *Locator {
	return &Locator{client: NewClient(cfg)}
}

// Locate sends the image, keeps the first face and maps its landmarks to
// pixel anchors.
func (l *Locator) Locate(ctx context.Context, img *imaging.Bitmap) ([]domain.AnchorPoint, error) {
	raw, err := img.EncodeFor(0, acceptedFormats...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageEncoding, err)
	}

	resp, err := l.client.Landmarks(ctx, base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		return nil, err
	}

	if len(resp.Faces) == 0 {
		return nil, domain.ErrNoFace
	}

	anchors, err := locator.AnchorsFromLandmarks(resp.Faces[0].Landmarks, img.Width, img.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteMesh, err)
	}

	return anchors, nil
}

func (l *Locator) Name() string {
	return name
}

func (l *Locator) Variant() domain.Variant {
	return domain.VariantLandmark
}

var _ locator.Locator = (*Locator)(nil)
