package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

type fakeAppender struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeAppender) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return f.err
}

func TestLogging_RecordsEvent(t *testing.T) {
	events := &fakeAppender{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, "huggingface", events, nil)

	ctx := WithPurpose(context.Background(), PurposeLesson)
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hallo"}},
		Schema:   testSchema(),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(events.events) != 1 {
		t.Fatalf("events = %d, want 1", len(events.events))
	}
	e := events.events[0]
	if e.Provider != "huggingface" || e.Purpose != "lesson" || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.InputTokens != 12 || e.OutputTokens != 7 || e.ResponseBody != `{"ok":true}` {
		t.Errorf("event usage/body = %+v", e)
	}
	for _, part := range []string{"[system]", "[user]", "hallo", "[schema: test-lesson]"} {
		if !strings.Contains(e.RequestBody, part) {
			t.Errorf("request body missing %q", part)
		}
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	events := &fakeAppender{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, "openai", events, nil)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	e := events.events[0]
	if e.Success || e.ErrorMessage == "" || e.Purpose != "unknown" {
		t.Errorf("event = %+v", e)
	}
}

func TestLogging_PersistenceFailureIsWarned(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	events := &fakeAppender{err: errors.New("database is locked")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", events, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("persistence failure leaked: %v", err)
	}
	if logs.FilterMessage("record llm request").Len() != 1 {
		t.Errorf("expected one warning, got %v", logs.All())
	}
}
