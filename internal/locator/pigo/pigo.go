// Package pigo locates faces with the pure Go pixel-intensity-comparison
// cascade from github.com/esimov/pigo.
package pigo

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"

	pigo "github.com/esimov/pigo/core"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator"
)

const (
	name = "pigo"

	// clusterIoU merges overlapping raw detections
	clusterIoU = 0.2
)

// facefinder is the frontal face cascade shipped with github.com/esimov/pigo.
//
//go:embed cascade/facefinder
var facefinder []byte

// Config holds the cascade location and detection parameters. An empty
// CascadePath uses the embedded facefinder cascade.
type Config struct {
	CascadePath string
	MinSize     int
	MaxSize     int
	ShiftFactor float64
	ScaleFactor float64
	MinQuality  float64
}

// DefaultConfig returns the parameters the upstream face finder example uses.
func DefaultConfig() Config {
	return Config{
		CascadePath: "",
		MinSize:     40,
		MaxSize:     1000,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		MinQuality:  5.0,
	}
}

// Locator implements locator.Locator with a pigo cascade. The unpacked
// classifier is only read after construction.
type Locator struct {
	config Config
	detect func(img *imaging.Bitmap) []pigo.Detection
}

// New loads and unpacks the cascade file.
func New(cfg Config) (*Locator, error) {
	data, source := facefinder, "embedded facefinder"
	if cfg.CascadePath != "" {
		var err error
		data, err = os.ReadFile(cfg.CascadePath)
		if err != nil {
			return nil, fmt.Errorf("read pigo cascade %s: %w", cfg.CascadePath, err)
		}
		source = cfg.CascadePath
	}

	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpack pigo cascade %s: %w", source, err)
	}

	l := &Locator{config: cfg}
	l.detect = func(img *imaging.Bitmap) []pigo.Detection {
		params := pigo.CascadeParams{
			MinSize:     cfg.MinSize,
			MaxSize:     cfg.MaxSize,
			ShiftFactor: cfg.ShiftFactor,
			ScaleFactor: cfg.ScaleFactor,
			ImageParams: pigo.ImageParams{
				Pixels: pigo.RgbToGrayscale(img),
				Rows:   img.Height,
				Cols:   img.Width,
				Dim:    img.Width,
			},
		}
		dets := classifier.RunCascade(params, 0.0)
		return classifier.ClusterDetections(dets, clusterIoU)
	}

	return l, nil
}

// Locate runs the cascade and places the region anchors inside the best
// scoring face.
func (l *Locator) Locate(ctx context.Context, img *imaging.Bitmap) ([]domain.AnchorPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	region, ok := l.firstFace(l.detect(img), img)
	if !ok {
		return nil, domain.ErrNoFace
	}

	return locator.AnchorsFromRegion(region), nil
}

// firstFace drops detections under MinQuality, orders the rest by score and
// converts the winner into a square region clipped to the image.
func (l *Locator) firstFace(dets []pigo.Detection, img *imaging.Bitmap) (domain.FaceRegion, bool) {
	kept := make([]pigo.Detection, 0, len(dets))
	for _, d := range dets {
		if float64(d.Q) >= l.config.MinQuality {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		return domain.FaceRegion{}, false
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Q > kept[j].Q
	})

	region := regionFromDetection(kept[0], img.Width, img.Height)
	if region.Empty() {
		return domain.FaceRegion{}, false
	}
	return region, true
}

// regionFromDetection turns a centre/scale detection into a box.
func regionFromDetection(d pigo.Detection, width, height int) domain.FaceRegion {
	half := d.Scale / 2
	x0 := max(0, d.Col-half)
	y0 := max(0, d.Row-half)
	x1 := min(width, d.Col-half+d.Scale)
	y1 := min(height, d.Row-half+d.Scale)

	return domain.FaceRegion{
		X:      x0,
		Y:      y0,
		Width:  x1 - x0,
		Height: y1 - y0,
	}
}

func (l *Locator) Name() string {
	return name
}

func (l *Locator) Variant() domain.Variant {
	return domain.VariantClassical
}

var _ locator.Locator = (*Locator)(nil)
