package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

// lessonRequest is the shape of request the lesson service sends.
func lessonRequest() Request {
	return Request{
		System:    "You write short Dutch practice lessons.",
		Messages:  []Message{UserMessage("Topic: boodschappen. Five exercises.")},
		Schema:    testSchema(),
		MaxTokens: 1024,
	}
}

func lessonCtx() context.Context {
	return WithPurpose(context.Background(), PurposeLesson)
}

func TestRetry_LessonOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(sampleLesson)})
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(lessonCtx(), lessonRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != sampleLesson {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_OutageThenLesson(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("model is loading")}},
		MockResponse{Content: json.RawMessage(sampleLesson)},
	)
	p := WithRetry(mock, retryConfig())

	if _, err := p.Generate(lessonCtx(), lessonRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
	if mock.Calls[1].Schema != mock.Calls[0].Schema {
		t.Error("retry should resend the same lesson request")
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	mock := NewMockProvider(down, down, down, down)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(lessonCtx(), lessonRequest())
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
	if mock.CallCount() != 3 || mock.Pending() != 1 {
		t.Fatalf("calls = %d pending = %d, want 3 and 1", mock.CallCount(), mock.Pending())
	}
}

func TestRetry_TruncatedLessonNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"lesson_title":"Op het sta`)}},
		MockResponse{Content: json.RawMessage(sampleLesson)},
	)
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(lessonCtx(), lessonRequest())
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_MalformedLessonResampledOnce(t *testing.T) {
	malformed := `{"lesson_title":"Dieren","exercises":[{"type":"essay","question":"q","correct_answer":"a"}]}`
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(malformed)},
		MockResponse{Content: json.RawMessage(sampleLesson)},
	)
	mock.Strict = true
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(lessonCtx(), lessonRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != sampleLesson {
		t.Errorf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_MalformedLessonTwiceFails(t *testing.T) {
	malformed := MockResponse{Content: json.RawMessage(`{"lesson_title":"Leeg","exercises":[]}`)}
	mock := NewMockProvider(malformed, malformed, MockResponse{Content: json.RawMessage(sampleLesson)})
	mock.Strict = true
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(lessonCtx(), lessonRequest())
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
	if inv.Path != "/exercises" {
		t.Errorf("path = %q, want /exercises", inv.Path)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(sampleLesson)},
	)
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(lessonCtx())
	cancel()

	_, err := p.Generate(ctx, lessonRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitWaitsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 20 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(sampleLesson)},
	)
	p := WithRetry(mock, retryConfig())

	start := time.Now()
	if _, err := p.Generate(lessonCtx(), lessonRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("retried after %s, want at least the 20ms Retry-After", elapsed)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_BackoffCapped(t *testing.T) {
	r := &RetryProvider{config: retryConfig()}
	for attempt := range 8 {
		wait := r.backoff(attempt, errors.New("down"))
		if wait > 12*time.Millisecond {
			t.Errorf("attempt %d waited %s, want at most MaxWait plus jitter", attempt, wait)
		}
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
