package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
)

func TestNewSwagger_AnalyzeContract(t *testing.T) {
	tests := []struct {
		name    string
		variant domain.Variant
		want    []string
		absent  []string
	}{
		{
			name:    "classical",
			variant: domain.VariantClassical,
			want:    []string{`"dominant_bgr"`, `"dominant_hex"`, `"404"`},
			absent:  []string{`"tone"`},
		},
		{
			name:    "landmark",
			variant: domain.VariantLandmark,
			want:    []string{`"bgr"`, `"hex"`, `"tone"`, `"400"`},
			absent:  []string{`"dominant_hex"`, `"404"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := string(NewSwagger(tt.variant).MustToJson())

			assert.Contains(t, doc, `"/analyze"`)
			for _, s := range tt.want {
				assert.Contains(t, doc, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, doc, s)
			}
		})
	}
}
