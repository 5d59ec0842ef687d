package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := NewMockProvider(MockResponse{Content: json.RawMessage(`{"from":"primary"}`)})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`{"from":"secondary"}`)})
	p := WithFallback(primary, secondary, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"from":"primary"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("secondary called %d times", secondary.CallCount())
	}
}

func TestFallback_SecondaryServesFailure(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("loading")}})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`{"from":"secondary"}`)})
	p := WithFallback(primary, secondary, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"from":"secondary"}` {
		t.Errorf("content = %s", resp.Content)
	}
}

func TestFallback_BothFail(t *testing.T) {
	first := &ErrProviderUnavailable{Err: errors.New("first")}
	second := &ErrRateLimit{Err: errors.New("second")}
	p := WithFallback(
		NewMockProvider(MockResponse{Err: first}),
		NewMockProvider(MockResponse{Err: second}),
		nil,
	)

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	var rl *ErrRateLimit
	if !errors.As(err, &unavail) || !errors.As(err, &rl) {
		t.Fatalf("expected both errors joined, got %v", err)
	}
}

func TestFallback_CancelledContextSkipsSecondary(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithFallback(NewMockProvider(MockResponse{Err: context.Canceled}), secondary, nil)

	if _, err := p.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if secondary.CallCount() != 0 {
		t.Error("secondary should not be tried after cancellation")
	}
}
