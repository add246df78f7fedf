// Package haar locates faces with an OpenCV Haar cascade through gocv.
//
// The OpenCV binding is only compiled with the "opencv" build tag; without
// it New reports ErrOpenCVUnavailable so the rest of the service builds as
// pure Go.
package haar

import (
	"errors"
	"image"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

const name = "haar"

// ErrOpenCVUnavailable is returned by New in binaries built without OpenCV.
var ErrOpenCVUnavailable = errors.New("haar locator requires a build with -tags opencv")

// Config holds the cascade file and the detectMultiScale parameters.
type Config struct {
	CascadePath  string
	ScaleFactor  float64
	MinNeighbors int
}

// DefaultConfig mirrors the frontal face defaults: scale 1.3, 5 neighbours.
func DefaultConfig() Config {
	return Config{
		CascadePath:  "models/haarcascade_frontalface_default.xml",
		ScaleFactor:  1.3,
		MinNeighbors: 5,
	}
}

// firstRegion keeps the first rectangle OpenCV reports.
func firstRegion(rects []image.Rectangle) (domain.FaceRegion, bool) {
	if len(rects) == 0 {
		return domain.FaceRegion{}, false
	}
	r := rects[0]
	region := domain.FaceRegion{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Dx(),
		Height: r.Dy(),
	}
	return region, !region.Empty()
}
