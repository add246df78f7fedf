package mesh

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging"
	"github.com/saturnino-fabrica-de-software/skintone/internal/imaging/imagingtest"
)

func fullMesh() domain.LandmarkSet {
	set := make(domain.LandmarkSet, domain.MeshSize)
	for i := range set {
		set[i] = domain.Landmark{X: 0.5, Y: 0.5}
	}
	set[205] = domain.Landmark{X: 0.25, Y: 0.625}
	set[425] = domain.Landmark{X: 0.75, Y: 0.625}
	set[151] = domain.Landmark{X: 0.5, Y: 0.25}
	set[108] = domain.Landmark{X: 0.375, Y: 0.25}
	set[200] = domain.Landmark{X: 0.5, Y: 0.875}
	return set
}

func newTestLocator(t *testing.T, handler http.HandlerFunc, retries int) *Locator {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = server.URL
	cfg.Timeout = 5 * time.Second
	cfg.RetryCount = retries

	l := New(cfg)
	l.client.backoff = func(int) time.Duration { return 0 }
	return l
}

func testBitmap(t *testing.T) *imaging.Bitmap {
	t.Helper()

	b64 := imagingtest.EncodePNGBase64(t, imagingtest.CreateSquareImage(100, 200, domain.ColorTuple{}, image.Rectangle{}, domain.ColorTuple{}))
	bmp, err := imaging.Decode(b64)
	require.NoError(t, err)
	return bmp
}

func TestLocator_Locate(t *testing.T) {
	bmp := testBitmap(t)

	l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/landmarks", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req LandmarksRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.MaxNumFaces)
		assert.Equal(t, 0.5, req.MinDetectionConfidence)

		raw, err := base64.StdEncoding.DecodeString(req.Img)
		require.NoError(t, err)
		assert.Equal(t, bmp.Encoded, raw)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(LandmarksResponse{
			Faces: []FaceMesh{{Landmarks: fullMesh()}},
		})
	}, 0)

	anchors, err := l.Locate(context.Background(), bmp)
	require.NoError(t, err)

	assert.Equal(t, []domain.AnchorPoint{
		{X: 25, Y: 125},
		{X: 75, Y: 125},
		{X: 50, Y: 50},
		{X: 37, Y: 50},
		{X: 50, Y: 175},
	}, anchors)
}

func TestLocator_Locate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    interface{}
		retries int
		wantErr error
		calls   int32
	}{
		{
			name:    "no faces",
			status:  http.StatusOK,
			body:    LandmarksResponse{Faces: []FaceMesh{}},
			wantErr: domain.ErrNoFace,
			calls:   1,
		},
		{
			name:    "incomplete mesh",
			status:  http.StatusOK,
			body:    LandmarksResponse{Faces: []FaceMesh{{Landmarks: make(domain.LandmarkSet, 10)}}},
			wantErr: ErrIncompleteMesh,
			calls:   1,
		},
		{
			name:    "invalid json is not retried",
			status:  http.StatusOK,
			body:    "not a mesh",
			retries: 2,
			wantErr: ErrInvalidResponse,
			calls:   1,
		},
		{
			name:    "server error is retried",
			status:  http.StatusInternalServerError,
			body:    map[string]string{"error": "boom"},
			retries: 2,
			wantErr: ErrMeshUnavailable,
			calls:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(tt.body)
			}, tt.retries)

			_, err := l.Locate(context.Background(), testBitmap(t))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.calls, atomic.LoadInt32(&calls))
		})
	}
}

func TestLocator_Locate_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad image"}`))
	}, 3)

	_, err := l.Locate(context.Background(), testBitmap(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.NotErrorIs(t, err, ErrMeshUnavailable)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLocator_Locate_ContextCanceled(t *testing.T) {
	l := newTestLocator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Locate(ctx, testBitmap(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoff(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{10, 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, calculateBackoff(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestLocator_Metadata(t *testing.T) {
	l := New(DefaultConfig())

	assert.Equal(t, "mesh", l.Name())
	assert.Equal(t, domain.VariantLandmark, l.Variant())
}
