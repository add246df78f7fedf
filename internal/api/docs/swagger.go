package docs

import (
	"github.com/go-swagno/swagno"
	"github.com/go-swagno/swagno/components/endpoint"
	"github.com/go-swagno/swagno/components/http/response"
	"github.com/go-swagno/swagno/components/mime"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// AnalyzeRequest represents the body of POST /analyze
type AnalyzeRequest struct {
	Image string `json:"image" example:"iVBORw0KGgoAAAANSUhEUgAA..."`
}

// ClassicalAnalyzeResponse is returned when a box-based locator is configured
type ClassicalAnalyzeResponse struct {
	DominantBGR []int  `json:"dominant_bgr" example:"130,160,210"`
	DominantHex string `json:"dominant_hex" example:"#d2a082"`
}

// LandmarkAnalyzeResponse is returned when the face mesh locator is configured
type LandmarkAnalyzeResponse struct {
	BGR  []int  `json:"bgr" example:"130,160,210"`
	Hex  string `json:"hex" example:"#d2a082"`
	Tone string `json:"tone" example:"Wheatish"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error" example:"No face detected"`
}

// HealthResponse represents /health and /ready
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Version string `json:"version,omitempty" example:"0.1.0"`
	Locator string `json:"locator,omitempty" example:"pigo"`
}

// NewSwagger creates and configures the Swagger documentation. The
// /analyze contract follows the variant of the configured locator.
func NewSwagger(variant domain.Variant) *swagno.Swagger {
	sw := swagno.New(swagno.Config{
		Title:       "Skin Tone API",
		Version:     "v1.0.0",
		Description: "Locates the first face in a photograph, samples skin patches and returns the most frequent colour",
		Host:        "localhost:3000",
		Path:        "/",
	})

	endpoints := []*endpoint.EndPoint{
		analyzeEndpoint(variant),

		// GET / - liveness
		endpoint.New(
			endpoint.GET,
			"/",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Liveness message"),
			endpoint.WithProduce([]mime.MIME{mime.MIME("text/plain")}),
		),

		// GET /health - Health check
		endpoint.New(
			endpoint.GET,
			"/health",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Health check"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is healthy"),
			}),
		),

		// GET /ready - Readiness check
		endpoint.New(
			endpoint.GET,
			"/ready",
			endpoint.WithTags("Health"),
			endpoint.WithSummary("Readiness check"),
			endpoint.WithDescription("Reports the face locator strategy in use"),
			endpoint.WithProduce([]mime.MIME{mime.JSON}),
			endpoint.WithSuccessfulReturns([]response.Response{
				response.New(HealthResponse{}, "200", "Service is ready"),
			}),
		),
	}

	sw.AddEndpoints(endpoints)

	return sw
}

// analyzeEndpoint documents POST /analyze for one response variant
func analyzeEndpoint(variant domain.Variant) *endpoint.EndPoint {
	success := response.New(ClassicalAnalyzeResponse{}, "200", "Dominant colour (box-based locator)")
	errs := []response.Response{
		response.New(ErrorResponse{Error: "No image data provided"}, "400", "Bad Request"),
		response.New(ErrorResponse{Error: "No face detected"}, "404", "Not Found"),
	}
	description := "Accepts a base64 image (optionally a data URL) and answers the dominant BGR colour and its hex form. 404 when no face is found."

	if variant == domain.VariantLandmark {
		success = response.New(LandmarkAnalyzeResponse{}, "200", "Dominant colour and tone (face mesh locator)")
		errs = []response.Response{
			response.New(ErrorResponse{Error: "No face detected"}, "400", "Bad Request: missing image, invalid base64 or no face detected"),
		}
		description = "Accepts a base64 image (optionally a data URL) and answers the dominant BGR colour, its hex form and a tone label. 400 when no face is found."
	}

	errs = append(errs,
		response.New(ErrorResponse{Error: "Too many requests"}, "429", "Too Many Requests"),
		response.New(ErrorResponse{Error: "Failed to decode image: image: unknown format"}, "500", "Internal Server Error"),
		response.New(ErrorResponse{Error: "Face locator unavailable"}, "503", "Service Unavailable"),
	)

	return endpoint.New(
		endpoint.POST,
		"/analyze",
		endpoint.WithTags("Analysis"),
		endpoint.WithSummary("Dominant skin colour of the first face"),
		endpoint.WithDescription(description),
		endpoint.WithBody(AnalyzeRequest{}),
		endpoint.WithConsume([]mime.MIME{mime.JSON}),
		endpoint.WithProduce([]mime.MIME{mime.JSON}),
		endpoint.WithSuccessfulReturns([]response.Response{success}),
		endpoint.WithErrors(errs),
	)
}
