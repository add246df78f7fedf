package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			name: "loads with explicit vars",
			envVars: map[string]string{
				"PORT":            "8080",
				"ENV":             "production",
				"LOCATOR":         "mesh",
				"MESH_URL":        "http://mesh:9000",
				"MESH_TIMEOUT":    "5s",
				"TONE_CLASSIFIER": "ita",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 8080 &&
					c.Environment == "production" &&
					c.Locator == "mesh" &&
					c.MeshURL == "http://mesh:9000" &&
					c.MeshTimeout == 5*time.Second &&
					c.ToneClassifier == "ita"
			},
		},
		{
			name:    "uses defaults when no vars set",
			envVars: map[string]string{},
			wantErr: false,
			check: func(c *Config) bool {
				return c.Port == 3000 &&
					c.Environment == "development" &&
					c.Locator == "pigo" &&
					c.PigoCascadePath == "" &&
					c.CascadeScaleFactor == 1.3 &&
					c.CascadeMinNeighbors == 5 &&
					c.ToneLabel == "Wheatish" &&
					c.CORSAllowOrigins == "*" &&
					c.RateLimitMax == 0 &&
					c.PatchHalfSize == 5
			},
		},
		{
			name: "fails on unknown locator",
			envVars: map[string]string{
				"LOCATOR": "dlib",
			},
			wantErr: true,
		},
		{
			name: "fails on unknown tone classifier",
			envVars: map[string]string{
				"TONE_CLASSIFIER": "fitzpatrick",
			},
			wantErr: true,
		},
		{
			name: "fails on malformed static region",
			envVars: map[string]string{
				"LOCATOR":       "static",
				"STATIC_REGION": "10,20,30",
			},
			wantErr: true,
		},
		{
			name: "fails on non numeric port",
			envVars: map[string]string{
				"PORT": "http",
			},
			wantErr: true,
		},
		{
			name: "loads rate limit settings",
			envVars: map[string]string{
				"RATE_LIMIT_MAX":    "30",
				"RATE_LIMIT_WINDOW": "10s",
			},
			wantErr: false,
			check: func(c *Config) bool {
				return c.RateLimitMax == 30 && c.RateLimitWindow == 10*time.Second
			},
		},
		{
			name: "fails on zero patch half size",
			envVars: map[string]string{
				"PATCH_HALF_SIZE": "0",
			},
			wantErr: true,
		},
		{
			name: "fails on negative rate limit",
			envVars: map[string]string{
				"RATE_LIMIT_MAX": "-1",
			},
			wantErr: true,
		},
		{
			name: "fails on scale factor not above one",
			envVars: map[string]string{
				"CASCADE_SCALE_FACTOR": "1.0",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Load() unexpected error: %v", err)
				return
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Load() config check failed, got: %+v", cfg)
			}
		})
	}
}

func TestConfig_ParseStaticRegion(t *testing.T) {
	tests := []struct {
		name    string
		region  string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"valid", "50,50,100,100", []int{50, 50, 100, 100}, false},
		{"spaces", " 1, 2 ,3,4 ", []int{1, 2, 3, 4}, false},
		{"too few parts", "1,2,3", nil, true},
		{"not a number", "a,2,3,4", nil, true},
		{"zero width", "1,2,0,4", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{StaticRegion: tt.region}
			got, err := c.ParseStaticRegion()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStaticRegion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseStaticRegion() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseStaticRegion()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"development", "development", true},
		{"production", "production", false},
		{"staging", "staging", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Environment: tt.env}
			if got := c.IsDevelopment(); got != tt.want {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want bool
	}{
		{"production", "production", true},
		{"development", "development", false},
		{"staging", "staging", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Environment: tt.env}
			if got := c.IsProduction(); got != tt.want {
				t.Errorf("IsProduction() = %v, want %v", got, tt.want)
			}
		})
	}
}
