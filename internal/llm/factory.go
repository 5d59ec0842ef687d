package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider creates a Provider from configuration, wrapped as
// caller → retry → [fallback →] logging → base. Each attempt, including
// fallback attempts, is recorded through events when it is non-nil.
func NewProvider(ctx context.Context, cfg Config, events EventAppender, logger *zap.Logger) (Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("provider", cfg.Provider))

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "huggingface":
		base, err = newHuggingFace(cfg, events, logger)
		if err == nil {
			return WithRetry(base, cfg.Retry), nil
		}
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initialize %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, events, logger)
	return WithRetry(logged, cfg.Retry), nil
}

func newHuggingFace(cfg Config, events EventAppender, logger *zap.Logger) (Provider, error) {
	hf := cfg.HuggingFace
	primary, err := NewHuggingFaceProvider(hf, hf.Model)
	if err != nil {
		return nil, err
	}
	p := WithLogging(primary, "huggingface", events, logger)
	if hf.FallbackModel == "" || hf.FallbackModel == hf.Model {
		return p, nil
	}
	secondary, err := NewHuggingFaceProvider(hf, hf.FallbackModel)
	if err != nil {
		return nil, err
	}
	return WithFallback(p, WithLogging(secondary, "huggingface", events, logger), logger), nil
}
