package llm

import (
	"fmt"
	"net/http"
	"slices"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash-lite", "gemini-2.0-flash-lite"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema_Lesson(t *testing.T) {
	schema := buildGeminiSchema(testSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if !slices.Equal(schema.PropertyOrdering, []string{"lesson_title", "exercises"}) {
		t.Errorf("property ordering = %v", schema.PropertyOrdering)
	}

	exercises := schema.Properties["exercises"]
	if exercises == nil || exercises.Type != genai.TypeArray {
		t.Fatalf("exercises = %+v", exercises)
	}
	if exercises.MinItems == nil || *exercises.MinItems != 1 {
		t.Errorf("exercises minItems = %v, want 1", exercises.MinItems)
	}

	item := exercises.Items
	if item == nil || item.Type != genai.TypeObject {
		t.Fatalf("exercise item = %+v", item)
	}
	if len(item.Properties["type"].Enum) != 4 {
		t.Errorf("exercise type enum = %v", item.Properties["type"].Enum)
	}
	if item.Properties["options"].Items.Type != genai.TypeString {
		t.Errorf("options items = %s, want STRING", item.Properties["options"].Items.Type)
	}
	wantOrder := []string{"type", "question", "correct_answer", "options"}
	if !slices.Equal(item.PropertyOrdering, wantOrder) {
		t.Errorf("exercise ordering = %v, want %v", item.PropertyOrdering, wantOrder)
	}
}

func TestBuildGeminiSchema_GoSlices(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type":     "array",
		"maxItems": 8,
		"items":    map[string]any{"type": "string", "enum": []string{"typing", "matching"}},
	})
	if schema.MaxItems == nil || *schema.MaxItems != 8 {
		t.Errorf("maxItems = %v, want 8", schema.MaxItems)
	}
	if len(schema.Items.Enum) != 2 {
		t.Errorf("enum = %v", schema.Items.Enum)
	}
}

func TestMapGeminiError(t *testing.T) {
	rate := mapGeminiError(fmt.Errorf("generate: %w", genai.APIError{Code: http.StatusTooManyRequests}))
	if _, ok := rate.(*ErrRateLimit); !ok {
		t.Errorf("429 mapped to %T, want *ErrRateLimit", rate)
	}
	down := mapGeminiError(genai.APIError{Code: http.StatusServiceUnavailable})
	if _, ok := down.(*ErrProviderUnavailable); !ok {
		t.Errorf("503 mapped to %T, want *ErrProviderUnavailable", down)
	}
}
