package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/saturnino-fabrica-de-software/skintone/internal/audit"
	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

// SkinAnalyzer interface for the service
type SkinAnalyzer interface {
	Analyze(ctx context.Context, payload string) (*domain.Analysis, error)
}

type AnalyzeHandler struct {
	service SkinAnalyzer
	logger  *slog.Logger
}

func NewAnalyzeHandler(service SkinAnalyzer, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		service: service,
		logger:  logger,
	}
}

type AnalyzeRequest struct {
	Image string `json:"image"`
}

// ClassicalResponse is the body returned by box-based locators
type ClassicalResponse struct {
	DominantBGR []int  `json:"dominant_bgr"`
	DominantHex string `json:"dominant_hex"`
}

// LandmarkResponse is the body returned by landmark-based locators
type LandmarkResponse struct {
	BGR  []int  `json:"bgr"`
	Hex  string `json:"hex"`
	Tone string `json:"tone"`
}

// Analyze POST /analyze - dominant skin colour of the first face
func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("invalid analyze body",
			slog.String("content_type", c.Get(fiber.HeaderContentType)),
			slog.String("error", err.Error()),
		)
		return domain.ErrBadRequest.WithError(err)
	}

	if req.Image == "" {
		return domain.ErrMissingImage
	}

	ctx := audit.WithRequestInfo(c.UserContext(), audit.RequestInfo{
		RequestID: requestID(c),
		IPAddress: c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	})

	analysis, err := h.service.Analyze(ctx, req.Image)
	if err != nil {
		return err
	}

	if analysis.Variant == domain.VariantLandmark {
		return c.JSON(LandmarkResponse{
			BGR:  analysis.Dominant.Ints(),
			Hex:  analysis.Hex,
			Tone: analysis.Tone,
		})
	}

	return c.JSON(ClassicalResponse{
		DominantBGR: analysis.Dominant.Ints(),
		DominantHex: analysis.Hex,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
