//go:build opencv
// +build opencv

package haar

import (
	"context"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator"
)

// Locator implements locator.Locator with cv::CascadeClassifier.
type Locator struct {
	config Config

	// detectMultiScale is not safe for concurrent calls on one classifier
	mu         sync.Mutex
	classifier gocv.CascadeClassifier
}

// New loads the cascade XML once.
func New(cfg Config) (*Locator, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(cfg.CascadePath) {
		_ = classifier.Close()
		return nil, fmt.Errorf("load haar cascade %s", cfg.CascadePath)
	}

	return &Locator{
		config:     cfg,
		classifier: classifier,
	}, nil
}

// Locate converts the bitmap to grayscale and runs detectMultiScale.
func (l *Locator) Locate(ctx context.Context, img *imaging.Bitmap) ([]domain.AnchorPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := gocv.NewMatFromBytes(img.Height, img.Width, gocv.MatTypeCV8UC3, img.Pix)
	if err != nil {
		return nil, fmt.Errorf("wrap bitmap: %w", err)
	}
	defer src.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	l.mu.Lock()
	rects := l.classifier.DetectMultiScaleWithParams(
		gray,
		l.config.ScaleFactor,
		l.config.MinNeighbors,
		0,
		image.Point{},
		image.Point{},
	)
	l.mu.Unlock()

	region, ok := firstRegion(rects)
	if !ok {
		return nil, domain.ErrNoFace
	}

	return locator.AnchorsFromRegion(region), nil
}

// Close releases the native classifier.
func (l *Locator) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.classifier.Close()
}

func (l *Locator) Name() string {
	return name
}

func (l *Locator) Variant() domain.Variant {
	return domain.VariantClassical
}

var _ locator.Locator = (*Locator)(nil)
