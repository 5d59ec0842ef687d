package lessons

import "time"

// Config holds lesson generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one generation including provider retries.
	Timeout time.Duration
}

// DefaultConfig returns defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   3000,
		Temperature: 0.7,
		Timeout:     60 * time.Second,
	}
}
