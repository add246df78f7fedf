package rekognition

// Config holds configuration for the AWS Rekognition locator
type Config struct {
	// Region is the AWS region where Rekognition will be used (e.g., "us-east-1")
	Region string

	// MaxImageBytes is the largest payload DetectFaces accepts as raw bytes
	MaxImageBytes int
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Region:        "us-east-1",
		MaxImageBytes: 5 * 1024 * 1024,
	}
}
