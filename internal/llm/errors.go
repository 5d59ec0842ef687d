package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit means the provider answered 429. RetryAfter is zero when
// the provider gave no hint.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse means the model replied with something that is not a
// usable lesson document: no JSON, bad JSON, or JSON the schema rejects.
type ErrInvalidResponse struct {
	Content json.RawMessage

	// Path is the JSON pointer of the rejected value, when known.
	Path string

	Err error
}

func (e *ErrInvalidResponse) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid LLM response at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// Excerpt returns at most n bytes of the rejected content for log lines.
func (e *ErrInvalidResponse) Excerpt(n int) string {
	if len(e.Content) <= n {
		return string(e.Content)
	}
	return string(e.Content[:n]) + "..."
}

// ErrProviderUnavailable means the provider could not be reached or
// failed server-side.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded means a structured reply was cut off at MaxTokens.
// Content holds the partial reply.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("LLM response truncated after %d bytes: max tokens exceeded", len(e.Content))
}

// retryPolicy is how RetryProvider treats a failed attempt.
type retryPolicy int

const (
	retryNever retryPolicy = iota
	retryOnce
	retryBackoff
)

// policyFor classifies a provider error. Cancellation and truncation are
// final, a rejected reply earns one more sample, and everything else,
// including unknown transport errors, is retried with backoff.
func policyFor(err error) retryPolicy {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryNever
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}
	return retryBackoff
}
