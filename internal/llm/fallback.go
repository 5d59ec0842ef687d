package llm

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// FallbackProvider tries a secondary model when the primary fails with
// anything other than a cancelled context.
type FallbackProvider struct {
	primary   Provider
	secondary Provider
	logger    *zap.Logger
}

// WithFallback wraps primary so that secondary serves failed requests.
func WithFallback(primary, secondary Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackProvider{primary: primary, secondary: secondary, logger: logger}
}

func (f *FallbackProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := f.primary.Generate(ctx, req)
	if err == nil {
		return resp, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return nil, err
	}

	f.logger.Warn("primary model failed, trying fallback",
		zap.String("primary", f.primary.ModelID()),
		zap.String("fallback", f.secondary.ModelID()),
		zap.Error(err),
	)
	resp, ferr := f.secondary.Generate(ctx, req)
	if ferr != nil {
		return nil, errors.Join(err, ferr)
	}
	return resp, nil
}

// ModelID reports the primary model.
func (f *FallbackProvider) ModelID() string {
	return f.primary.ModelID()
}
