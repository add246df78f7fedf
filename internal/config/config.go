package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port             int    `envconfig:"PORT" default:"3000"`
	Environment      string `envconfig:"ENV" default:"development"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:""`
	BodyLimit        int    `envconfig:"BODY_LIMIT" default:"16777216"`
	CORSAllowOrigins string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`

	// Per-IP limit on /analyze, 0 disables it
	RateLimitMax    int           `envconfig:"RATE_LIMIT_MAX" default:"0"`
	RateLimitWindow time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`

	// Locator
	Locator string `envconfig:"LOCATOR" default:"pigo"`

	// Pigo cascade
	PigoCascadePath string  `envconfig:"PIGO_CASCADE_PATH" default:""`
	PigoMinSize     int     `envconfig:"PIGO_MIN_SIZE" default:"40"`
	PigoMaxSize     int     `envconfig:"PIGO_MAX_SIZE" default:"1000"`
	PigoShiftFactor float64 `envconfig:"PIGO_SHIFT_FACTOR" default:"0.1"`
	PigoScaleFactor float64 `envconfig:"PIGO_SCALE_FACTOR" default:"1.1"`
	PigoMinQuality  float64 `envconfig:"PIGO_MIN_QUALITY" default:"5.0"`

	// OpenCV Haar cascade
	HaarCascadePath     string  `envconfig:"HAAR_CASCADE_PATH" default:"models/haarcascade_frontalface_default.xml"`
	CascadeScaleFactor  float64 `envconfig:"CASCADE_SCALE_FACTOR" default:"1.3"`
	CascadeMinNeighbors int     `envconfig:"CASCADE_MIN_NEIGHBORS" default:"5"`

	// Face mesh sidecar
	MeshURL           string        `envconfig:"MESH_URL" default:"http://localhost:5005"`
	MeshTimeout       time.Duration `envconfig:"MESH_TIMEOUT" default:"30s"`
	MeshRetryCount    int           `envconfig:"MESH_RETRY_COUNT" default:"2"`
	MeshMinConfidence float64       `envconfig:"MESH_MIN_CONFIDENCE" default:"0.5"`

	// AWS
	AWSRegion string `envconfig:"AWS_REGION" default:"us-east-1"`

	// Static locator, "x,y,w,h"
	StaticRegion string `envconfig:"STATIC_REGION" default:""`

	// Sampling patches are 2*PATCH_HALF_SIZE pixels wide
	PatchHalfSize int `envconfig:"PATCH_HALF_SIZE" default:"5"`

	// Tone
	ToneClassifier string `envconfig:"TONE_CLASSIFIER" default:"fixed"`
	ToneLabel      string `envconfig:"TONE_LABEL" default:"Wheatish"`
}

var (
	supportedLocators        = []string{"pigo", "haar", "mesh", "rekognition", "static"}
	supportedToneClassifiers = []string{"fixed", "ita"}
)

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Validate rejects combinations that would only fail later at request time.
func (c *Config) Validate() error {
	if !contains(supportedLocators, c.Locator) {
		return fmt.Errorf("unknown locator %q (supported: %s)", c.Locator, strings.Join(supportedLocators, ", "))
	}
	if !contains(supportedToneClassifiers, c.ToneClassifier) {
		return fmt.Errorf("unknown tone classifier %q (supported: %s)", c.ToneClassifier, strings.Join(supportedToneClassifiers, ", "))
	}
	if c.BodyLimit <= 0 {
		return fmt.Errorf("BODY_LIMIT must be positive, got %d", c.BodyLimit)
	}
	if c.CascadeScaleFactor <= 1 {
		return fmt.Errorf("CASCADE_SCALE_FACTOR must be greater than 1, got %v", c.CascadeScaleFactor)
	}
	if c.PigoScaleFactor <= 1 {
		return fmt.Errorf("PIGO_SCALE_FACTOR must be greater than 1, got %v", c.PigoScaleFactor)
	}
	if c.PatchHalfSize <= 0 {
		return fmt.Errorf("PATCH_HALF_SIZE must be positive, got %d", c.PatchHalfSize)
	}
	if c.RateLimitMax < 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must not be negative, got %d", c.RateLimitMax)
	}
	if c.MeshRetryCount < 0 {
		return fmt.Errorf("MESH_RETRY_COUNT must not be negative, got %d", c.MeshRetryCount)
	}
	if _, err := c.ParseStaticRegion(); err != nil {
		return err
	}
	return nil
}

// ParseStaticRegion parses STATIC_REGION. An empty value yields nil.
func (c *Config) ParseStaticRegion() ([]int, error) {
	raw := strings.TrimSpace(c.StaticRegion)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("STATIC_REGION must be \"x,y,w,h\", got %q", c.StaticRegion)
	}

	values := make([]int, 0, 4)
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("STATIC_REGION: %w", err)
		}
		values = append(values, v)
	}
	if values[2] <= 0 || values[3] <= 0 {
		return nil, fmt.Errorf("STATIC_REGION width and height must be positive, got %q", c.StaticRegion)
	}
	return values, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
