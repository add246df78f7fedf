package haar

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1.3, cfg.ScaleFactor)
	assert.Equal(t, 5, cfg.MinNeighbors)
	assert.Equal(t, "models/haarcascade_frontalface_default.xml", cfg.CascadePath)
}

func TestFirstRegion(t *testing.T) {
	tests := []struct {
		name   string
		rects  []image.Rectangle
		want   domain.FaceRegion
		wantOK bool
	}{
		{
			name:   "no rectangles",
			rects:  nil,
			wantOK: false,
		},
		{
			name:   "first rectangle wins",
			rects:  []image.Rectangle{image.Rect(50, 50, 150, 150), image.Rect(0, 0, 300, 300)},
			want:   domain.FaceRegion{X: 50, Y: 50, Width: 100, Height: 100},
			wantOK: true,
		},
		{
			name:   "degenerate rectangle",
			rects:  []image.Rectangle{image.Rect(10, 10, 10, 20)},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := firstRegion(tt.rects)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
