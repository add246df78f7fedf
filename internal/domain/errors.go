package domain

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError with the same Code, so copies made by WithError
// and WithStatus still satisfy errors.Is against the predefined values.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// WithStatus returns a copy answering with a different HTTP status.
func (e *AppError) WithStatus(status int) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: status,
		Err:        e.Err,
	}
}

// Adapter-level sentinels. Locators and the sampler return these; the
// service maps them onto AppErrors.
var (
	ErrNoFace      = errors.New("no face found")
	ErrEmptySample = errors.New("no pixels sampled")
)

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request body",
		StatusCode: 400,
	}

	ErrMissingImage = &AppError{
		Code:       "MISSING_IMAGE",
		Message:    "No image data provided",
		StatusCode: 400,
	}

	ErrInvalidBase64 = &AppError{
		Code:       "INVALID_BASE64",
		Message:    "Image data is not valid base64",
		StatusCode: 400,
	}

	ErrDecodeImage = &AppError{
		Code:       "DECODE_FAILED",
		Message:    "Failed to decode image",
		StatusCode: 500,
	}

	// ErrNoFaceDetected answers 404 for the classical variant; the landmark
	// variant re-issues it with 400 through WithStatus.
	ErrNoFaceDetected = &AppError{
		Code:       "NO_FACE_DETECTED",
		Message:    "No face detected",
		StatusCode: 404,
	}

	ErrEmptySampleSet = &AppError{
		Code:       "EMPTY_SAMPLE",
		Message:    "No skin pixels could be sampled",
		StatusCode: 500,
	}

	ErrRateLimitExceeded = &AppError{
		Code:       "RATE_LIMIT_EXCEEDED",
		Message:    "Too many requests",
		StatusCode: 429,
	}

	ErrLocatorUnavailable = &AppError{
		Code:       "LOCATOR_UNAVAILABLE",
		Message:    "Face locator unavailable",
		StatusCode: 503,
	}
)
