// Package rekognition locates faces with AWS Rekognition DetectFaces.
package rekognition

import (
	"context"
	"fmt"
	"image"

	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator"
)

const name = "rekognition"

// Locator implements locator.Locator with DetectFaces
type Locator struct {
	api    DetectFacesAPI
	config Config
}

// New creates a Rekognition locator using the AWS default credential chain
func New(ctx context.Context, cfg Config) (*Locator, error) {
	client, err := NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithAPI(client, cfg), nil
}

// NewWithAPI creates a locator on top of any DetectFacesAPI (useful for tests)
func NewWithAPI(api DetectFacesAPI, cfg Config) *Locator {
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = DefaultConfig().MaxImageBytes
	}
	return &Locator{api: api, config: cfg}
}

// Locate sends the image to DetectFaces and anchors on the first face box.
func (l *Locator) Locate(ctx context.Context, img *imaging.Bitmap) ([]domain.AnchorPoint, error) {
	raw, err := img.EncodeFor(l.config.MaxImageBytes, "jpeg", "png")
	if err != nil {
		return nil, domain.ErrDecodeImage.WithError(err)
	}

	output, err := l.api.DetectFaces(ctx, &rekognition.DetectFacesInput{
		Image: &types.Image{
			Bytes: raw,
		},
		Attributes: []types.Attribute{types.AttributeDefault},
	})
	if err != nil {
		return nil, parseDetectError(err)
	}

	if len(output.FaceDetails) == 0 {
		return nil, domain.ErrNoFace
	}

	region, ok := regionFromBox(output.FaceDetails[0].BoundingBox, img.Width, img.Height)
	if !ok {
		return nil, domain.ErrNoFace
	}

	return locator.AnchorsFromRegion(region), nil
}

// regionFromBox denormalizes a ratio bounding box and clips it to the image.
func regionFromBox(box *types.BoundingBox, width, height int) (domain.FaceRegion, bool) {
	if box == nil || box.Left == nil || box.Top == nil || box.Width == nil || box.Height == nil {
		return domain.FaceRegion{}, false
	}

	x := int(float64(*box.Left) * float64(width))
	y := int(float64(*box.Top) * float64(height))
	w := int(float64(*box.Width) * float64(width))
	h := int(float64(*box.Height) * float64(height))

	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, width, height))
	region := domain.FaceRegion{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
	return region, !region.Empty()
}

func (l *Locator) Name() string {
	return name
}

func (l *Locator) Variant() domain.Variant {
	return domain.VariantClassical
}

func (l *Locator) String() string {
	return fmt.Sprintf("rekognition(%s)", l.config.Region)
}

var _ locator.Locator = (*Locator)(nil)
