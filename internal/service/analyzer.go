package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/saturnino-fabrica-de-software/skintone/internal/audit"
	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
	"github.com/saturnino-fabrica-de-software/skintone/internal/locator"
	"github.com/saturnino-fabrica-de-software/skintone/internal/palette"
)

type Analyzer struct {
	locator  locator.Locator
	tone     palette.ToneClassifier
	audit    audit.Logger
	logger   *slog.Logger
	halfSize int
}

func NewAnalyzer(loc locator.Locator, tone palette.ToneClassifier, auditLogger audit.Logger, logger *slog.Logger) *Analyzer {
	if tone == nil {
		tone = palette.FixedTone{Label: palette.DefaultToneLabel}
	}
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Analyzer{
		locator:  loc,
		tone:     tone,
		audit:    auditLogger,
		logger:   logger,
		halfSize: imaging.PatchHalfSize,
	}
}

// WithPatchHalfSize changes the sampling patch size; patches are 2*half wide.
func (s *Analyzer) WithPatchHalfSize(half int) *Analyzer {
	s.halfSize = half
	return s
}

// Locator exposes the strategy the analyzer was built with.
func (s *Analyzer) Locator() locator.Locator {
	return s.locator
}

// Variant is the response contract of the configured locator.
func (s *Analyzer) Variant() domain.Variant {
	return s.locator.Variant()
}

// Analyze decodes payload, finds the first face and returns the dominant
// skin colour around its anchors.
func (s *Analyzer) Analyze(ctx context.Context, payload string) (*domain.Analysis, error) {
	img, err := imaging.Decode(payload)
	if err != nil {
		return nil, err
	}

	anchors, err := s.locate(ctx, img)
	if err != nil {
		return nil, err
	}

	samples := imaging.Sample(img, anchors, s.halfSize)

	dominant, count, err := palette.Dominant(samples)
	if err != nil {
		s.logAudit(ctx, audit.EventToneAnalyzed, false, err, map[string]string{
			"anchors_count": strconv.Itoa(len(anchors)),
		})
		return nil, domain.ErrEmptySampleSet.WithError(err)
	}

	analysis := &domain.Analysis{
		Locator:  s.locator.Name(),
		Variant:  s.locator.Variant(),
		Anchors:  anchors,
		Samples:  len(samples),
		Count:    count,
		Dominant: dominant,
		Hex:      palette.Hex(dominant),
	}

	// só a variante landmark responde com tom
	if analysis.Variant == domain.VariantLandmark {
		analysis.Tone = s.tone.Classify(dominant)
	}

	s.logger.DebugContext(ctx, "skin tone analyzed",
		slog.String("locator", analysis.Locator),
		slog.Any("anchors", anchors),
		slog.Int("samples", analysis.Samples),
		slog.Int("dominant_count", count),
		slog.String("dominant_hex", analysis.Hex),
	)

	s.logAudit(ctx, audit.EventToneAnalyzed, true, nil, map[string]string{
		"samples":        strconv.Itoa(analysis.Samples),
		"dominant_count": strconv.Itoa(count),
	})

	return analysis, nil
}

func (s *Analyzer) locate(ctx context.Context, img *imaging.Bitmap) ([]domain.AnchorPoint, error) {
	start := time.Now()
	anchors, err := s.locator.Locate(ctx, img)

	meta := map[string]string{
		"image_size": fmt.Sprintf("%dx%d", img.Width, img.Height),
		"latency_ms": strconv.FormatInt(time.Since(start).Milliseconds(), 10),
	}
	if err == nil {
		meta["anchors_count"] = strconv.Itoa(len(anchors))
	}
	s.logAudit(ctx, audit.EventFaceLocated, err == nil, err, meta)

	if err == nil {
		return anchors, nil
	}

	var appErr *domain.AppError
	switch {
	case errors.Is(err, domain.ErrNoFace):
		return nil, s.noFaceError()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, err
	case errors.As(err, &appErr):
		return nil, appErr
	default:
		s.logger.ErrorContext(ctx, "face locator failed",
			slog.String("locator", s.locator.Name()),
			slog.String("error", err.Error()),
		)
		return nil, domain.ErrLocatorUnavailable.WithError(err)
	}
}

// noFaceError keeps each variant's historical status code.
func (s *Analyzer) noFaceError() *domain.AppError {
	if s.locator.Variant() == domain.VariantLandmark {
		return domain.ErrNoFaceDetected.WithStatus(400)
	}
	return domain.ErrNoFaceDetected
}

// logAudit errors are not returned; the request outcome is already known
func (s *Analyzer) logAudit(ctx context.Context, eventType audit.EventType, success bool, err error, metadata map[string]string) {
	event := audit.Event{
		EventType: eventType,
		Provider:  s.locator.Name(),
		Variant:   string(s.locator.Variant()),
		Success:   success,
		Metadata:  metadata,
	}
	if err != nil {
		event.Error = err.Error()
	}

	_ = s.audit.Log(ctx, event)
}
