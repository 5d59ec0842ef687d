package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "huggingface", "anthropic", "openai", "gemini", "openrouter", "mock"
	Provider string

	Anthropic   AnthropicConfig
	OpenAI      OpenAIConfig
	Gemini      GeminiConfig
	OpenRouter  OpenRouterConfig
	HuggingFace HuggingFaceConfig
	Retry       RetryConfig

	// Timeout bounds a single Generate call including retries.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// HuggingFaceConfig targets the Hugging Face inference router. The
// router speaks the OpenAI chat API but most hosted models ignore
// response_format, so JSON is pulled out of the reply text.
type HuggingFaceConfig struct {
	APIKey        string
	Model         string // Default: "google/gemma-2-9b-it"
	FallbackModel string // Tried once when Model fails. Empty disables.
	BaseURL       string // Default: "https://router.huggingface.co/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with defaults for every provider.
func DefaultConfig() Config {
	return Config{
		Provider:    "huggingface",
		Anthropic:   AnthropicConfig{Model: "claude-haiku"},
		OpenAI:      OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:      GeminiConfig{Model: "gemini-flash"},
		OpenRouter:  OpenRouterConfig{Model: "google/gemma-2-9b-it"},
		HuggingFace: HuggingFaceConfig{Model: "google/gemma-2-9b-it", FallbackModel: "deepseek-ai/DeepSeek-R1"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     15 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 40 * time.Second,
	}
}

// DiscoverConfig checks the standard API key variables and returns a
// Config for the first provider whose key is set. Hugging Face comes
// first because lessons were tuned against its hosted models.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("HF_TOKEN"); k != "" {
		cfg.Provider = "huggingface"
		cfg.HuggingFace.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case "anthropic":
		key = c.Anthropic.APIKey
	case "openai":
		key = c.OpenAI.APIKey
	case "gemini":
		key = c.Gemini.APIKey
	case "openrouter":
		key = c.OpenRouter.APIKey
	case "huggingface":
		key = c.HuggingFace.APIKey
	case "mock":
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("TYPORAX_LLM_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
