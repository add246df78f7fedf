package face

import (
	"context"
	"fmt"

	"github.com/saturnino-fabrica-de-software/skintone/internal/config"
	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator/haar"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator/mesh"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator/pigo"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator/rekognition"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator/static"
)

// LocatorType defines supported face locator strategies
type LocatorType string

const (
	// LocatorTypePigo is the pure Go cascade (default)
	LocatorTypePigo LocatorType = "pigo"
	// LocatorTypeHaar is the OpenCV Haar cascade, needs -tags opencv
	LocatorTypeHaar LocatorType = "haar"
	// LocatorTypeMesh is the remote 478-point face mesh
	LocatorTypeMesh LocatorType = "mesh"
	// LocatorTypeRekognition is AWS Rekognition DetectFaces
	LocatorTypeRekognition LocatorType = "rekognition"
	// LocatorTypeStatic answers a fixed region, for tests and calibration
	LocatorTypeStatic LocatorType = "static"
)

// NewLocator creates the Locator selected by configuration. It is built
// once at startup and shared by every request.
//
// Environment variables:
//   - LOCATOR: "pigo", "haar", "mesh", "rekognition" or "static" (default: "pigo")
//   - PIGO_CASCADE_PATH, PIGO_MIN_SIZE, ...: pigo cascade parameters
//   - HAAR_CASCADE_PATH, CASCADE_SCALE_FACTOR, CASCADE_MIN_NEIGHBORS: OpenCV cascade
//   - MESH_URL, MESH_TIMEOUT, MESH_RETRY_COUNT, MESH_MIN_CONFIDENCE: face mesh service
//   - AWS_REGION: AWS region for Rekognition (credentials via the SDK chain)
//   - STATIC_REGION: "x,y,w,h" for the static locator
func NewLocator(ctx context.Context, cfg *config.Config) (locator.Locator, error) {
	switch LocatorType(cfg.Locator) {
	case LocatorTypePigo, "":
		return createPigoLocator(cfg)

	case LocatorTypeHaar:
		return createHaarLocator(cfg)

	case LocatorTypeMesh:
		return createMeshLocator(cfg), nil

	case LocatorTypeRekognition:
		return createRekognitionLocator(ctx, cfg)

	case LocatorTypeStatic:
		return createStaticLocator(cfg)

	default:
		return nil, fmt.Errorf("unknown locator type: %s (supported: %s, %s, %s, %s, %s)",
			cfg.Locator, LocatorTypePigo, LocatorTypeHaar, LocatorTypeMesh, LocatorTypeRekognition, LocatorTypeStatic)
	}
}

func createPigoLocator(cfg *config.Config) (locator.Locator, error) {
	pigoConfig := pigo.DefaultConfig()
	if cfg.PigoCascadePath != "" {
		pigoConfig.CascadePath = cfg.PigoCascadePath
	}
	if cfg.PigoMinSize > 0 {
		pigoConfig.MinSize = cfg.PigoMinSize
	}
	if cfg.PigoMaxSize > 0 {
		pigoConfig.MaxSize = cfg.PigoMaxSize
	}
	if cfg.PigoShiftFactor > 0 {
		pigoConfig.ShiftFactor = cfg.PigoShiftFactor
	}
	if cfg.PigoScaleFactor > 0 {
		pigoConfig.ScaleFactor = cfg.PigoScaleFactor
	}
	if cfg.PigoMinQuality > 0 {
		pigoConfig.MinQuality = cfg.PigoMinQuality
	}

	loc, err := pigo.New(pigoConfig)
	if err != nil {
		return nil, fmt.Errorf("create pigo locator: %w", err)
	}
	return loc, nil
}

func createHaarLocator(cfg *config.Config) (locator.Locator, error) {
	haarConfig := haar.DefaultConfig()
	if cfg.HaarCascadePath != "" {
		haarConfig.CascadePath = cfg.HaarCascadePath
	}
	if cfg.CascadeScaleFactor > 0 {
		haarConfig.ScaleFactor = cfg.CascadeScaleFactor
	}
	if cfg.CascadeMinNeighbors > 0 {
		haarConfig.MinNeighbors = cfg.CascadeMinNeighbors
	}

	loc, err := haar.New(haarConfig)
	if err != nil {
		return nil, fmt.Errorf("create haar locator: %w", err)
	}
	return loc, nil
}

// createMeshLocator never fails; the service is only contacted on Locate
func createMeshLocator(cfg *config.Config) locator.Locator {
	meshConfig := mesh.DefaultConfig()
	if cfg.MeshURL != "" {
		meshConfig.BaseURL = cfg.MeshURL
	}
	if cfg.MeshTimeout > 0 {
		meshConfig.Timeout = cfg.MeshTimeout
	}
	if cfg.MeshRetryCount >= 0 {
		meshConfig.RetryCount = cfg.MeshRetryCount
	}
	if cfg.MeshMinConfidence > 0 {
		meshConfig.MinConfidence = cfg.MeshMinConfidence
	}

	return mesh.New(meshConfig)
}

func createRekognitionLocator(ctx context.Context, cfg *config.Config) (locator.Locator, error) {
	rekogConfig := rekognition.DefaultConfig()
	if cfg.AWSRegion != "" {
		rekogConfig.Region = cfg.AWSRegion
	}

	loc, err := rekognition.New(ctx, rekogConfig)
	if err != nil {
		return nil, fmt.Errorf("create rekognition locator in %s: %w", rekogConfig.Region, err)
	}
	return loc, nil
}

func createStaticLocator(cfg *config.Config) (locator.Locator, error) {
	values, err := cfg.ParseStaticRegion()
	if err != nil {
		return nil, err
	}
	if values == nil {
		return static.New(nil), nil
	}

	return static.New(&domain.FaceRegion{
		X:      values[0],
		Y:      values[1],
		Width:  values[2],
		Height: values[3],
	}), nil
}
