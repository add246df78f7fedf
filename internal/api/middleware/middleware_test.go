package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readError(t *testing.T, body io.Reader) string {
	t.Helper()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)

	var result map[string]string
	require.NoError(t, json.Unmarshal(raw, &result), "body: %s", string(raw))
	return result["error"]
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "client app error uses the message only",
			err:        domain.ErrInvalidBase64.WithError(errors.New("illegal base64 data at input byte 3")),
			wantStatus: 400,
			wantError:  "Image data is not valid base64",
		},
		{
			name:       "server app error includes the cause",
			err:        domain.ErrEmptySampleSet.WithError(domain.ErrEmptySample),
			wantStatus: 500,
			wantError:  "No skin pixels could be sampled: no pixels sampled",
		},
		{
			name:       "fiber error",
			err:        fiber.ErrRequestEntityTooLarge,
			wantStatus: 413,
			wantError:  "Request Entity Too Large",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: 500,
			wantError:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(discardLogger())})
			app.Get("/", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantError, readError(t, resp.Body))
		})
	}
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fiber.New()
	app.Use(Recover(logger))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("nil map write")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)

	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "An unexpected error occurred", readError(t, resp.Body))
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "nil map write")
}

func TestLogger_UsesErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(discardLogger())})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "req-42")
		return c.Next()
	})
	app.Use(Logger(logger))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return domain.ErrNoFaceDetected
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, float64(404), entry["status"])
	assert.Equal(t, "req-42", entry["request_id"])
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, 404, statusFromError(domain.ErrNoFaceDetected))
	assert.Equal(t, 413, statusFromError(fiber.ErrRequestEntityTooLarge))
	assert.Equal(t, 500, statusFromError(errors.New("boom")))
}
