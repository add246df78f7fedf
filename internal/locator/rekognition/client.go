package rekognition

import (
	"context"
	"errors"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/smithy-go"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

const (
	errCodeAccessDenied        = "AccessDeniedException"
	errCodeInvalidParameter    = "InvalidParameterException"
	errCodeInvalidImageFormat  = "InvalidImageFormatException"
	errCodeImageTooLarge       = "ImageTooLargeException"
	errCodeThroughputExceeded  = "ProvisionedThroughputExceededException"
	errCodeThrottlingException = "ThrottlingException"
	errCodeUnrecognizedClient  = "UnrecognizedClientException"
)

// DetectFacesAPI is the subset of the Rekognition client the locator uses
type DetectFacesAPI interface {
	DetectFaces(ctx context.Context, params *rekognition.DetectFacesInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectFacesOutput, error)
}

// NewClient creates a Rekognition client with the AWS default credential chain
func NewClient(ctx context.Context, cfg Config) (*rekognition.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return rekognition.NewFromConfig(awsCfg), nil
}

// parseDetectError translates AWS error codes into domain errors
func parseDetectError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case errCodeInvalidParameter:
			// Rekognition answers InvalidParameter when it finds nothing usable
			return domain.ErrNoFace
		case errCodeInvalidImageFormat, errCodeImageTooLarge:
			return domain.ErrDecodeImage.WithError(err)
		case errCodeAccessDenied, errCodeUnrecognizedClient:
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.ErrorMessage())
		case errCodeThroughputExceeded, errCodeThrottlingException:
			return fmt.Errorf("%w: %s", ErrThrottled, apiErr.ErrorMessage())
		}
	}

	return fmt.Errorf("detect faces: %w", err)
}
