package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// chatServer answers every chat completion with the given content and
// records the last request body.
func chatServer(t *testing.T, status int, content, finish string, got *map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got != nil {
			json.NewDecoder(r.Body).Decode(got)
		}
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"type": "server_error", "message": "nope"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "google/gemma-2-9b-it",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finish,
			}},
			"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var body map[string]any
	server := chatServer(t, http.StatusOK, sampleLesson, "stop", &body)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a Dutch teacher.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate a lesson."}},
		Schema:    testSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Fatalf("usage = %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
	if _, ok := body["response_format"]; !ok {
		t.Error("structured provider should send response_format")
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	server := chatServer(t, http.StatusTooManyRequests, "", "", nil)
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	server := chatServer(t, http.StatusInternalServerError, "", "", nil)
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestHuggingFaceProvider_ExtractsFencedJSON(t *testing.T) {
	var body map[string]any
	reply := "Natuurlijk! Hier is de les:\n```json\n" + sampleLesson + "\n```"
	server := chatServer(t, http.StatusOK, reply, "stop", &body)

	p, err := NewHuggingFaceProvider(HuggingFaceConfig{APIKey: "hf", BaseURL: server.URL + "/v1"}, "google/gemma-2-9b-it")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := p.Generate(context.Background(), Request{
		System:   "You are a Dutch teacher.",
		Messages: []Message{{Role: RoleUser, Content: "Generate."}},
		Schema:   testSchema(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != sampleLesson {
		t.Errorf("content = %s", resp.Content)
	}

	if _, ok := body["response_format"]; ok {
		t.Error("huggingface provider should not send response_format")
	}
	msgs, _ := body["messages"].([]any)
	if len(msgs) == 0 {
		t.Fatal("no messages sent")
	}
	system, _ := msgs[0].(map[string]any)["content"].(string)
	if !strings.Contains(system, "JSON Schema") {
		t.Errorf("system prompt missing schema instructions: %q", system)
	}
}

func TestHuggingFaceProvider_NoJSON(t *testing.T) {
	server := chatServer(t, http.StatusOK, "Sorry, I cannot help with that.", "stop", nil)
	p, _ := NewHuggingFaceProvider(HuggingFaceConfig{APIKey: "hf", BaseURL: server.URL + "/v1"}, "m")

	_, err := p.Generate(context.Background(), Request{Schema: testSchema()})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	server := chatServer(t, http.StatusOK, `{"lesson_title":"Bij de`, "length", nil)
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o", BaseURL: server.URL + "/v1"})

	_, err := p.Generate(context.Background(), Request{Schema: testSchema(), MaxTokens: 5})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
}

func TestCompatConstructors(t *testing.T) {
	t.Run("openrouter requires key", func(t *testing.T) {
		if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "x"}); err == nil {
			t.Fatal("expected error for empty API key")
		}
	})
	t.Run("openrouter model pass-through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "anthropic/claude-3-haiku"})
		if err != nil {
			t.Fatal(err)
		}
		if p.ModelID() != "anthropic/claude-3-haiku" {
			t.Errorf("model = %q", p.ModelID())
		}
	})
	t.Run("huggingface requires token", func(t *testing.T) {
		if _, err := NewHuggingFaceProvider(HuggingFaceConfig{}, "m"); err == nil {
			t.Fatal("expected error for empty token")
		}
	})
	t.Run("openai friendly name", func(t *testing.T) {
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-4o"})
		if err != nil {
			t.Fatal(err)
		}
		if p.ModelID() != "gpt-4o" {
			t.Errorf("model = %q", p.ModelID())
		}
	})
}
