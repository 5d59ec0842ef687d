package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// testSchema mirrors the shape of the practice lesson schema.
func testSchema() *Schema {
	return &Schema{
		Name:        "test-lesson",
		Description: "A short practice lesson",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lesson_title": map[string]any{"type": "string"},
				"exercises": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"type": map[string]any{
								"type": "string",
								"enum": []any{"typing", "fill_blank", "word_order", "matching"},
							},
							"question":       map[string]any{"type": "string"},
							"correct_answer": map[string]any{"type": "string"},
							"options": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
						},
						"required": []any{"type", "question", "correct_answer"},
					},
				},
			},
			"required": []any{"lesson_title", "exercises"},
		},
	}
}

const sampleLesson = `{"lesson_title":"Bij de bakker","exercises":[{"type":"typing","question":"Type 'bread'","correct_answer":"brood"}]}`

func assertInvalid(t *testing.T, err error) *ErrInvalidResponse {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
	return inv
}

func TestSchemaCheck_ValidLesson(t *testing.T) {
	if err := testSchema().Check(json.RawMessage(sampleLesson)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestSchemaCheck_OptionalFieldsMayBeOmittedOrSet(t *testing.T) {
	raw := json.RawMessage(`{"lesson_title":"Kleuren","exercises":[
		{"type":"fill_blank","question":"Het gras is ___","correct_answer":"groen","options":["groen","rood"]}
	]}`)
	if err := testSchema().Check(raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestSchemaCheck_MalformedLesson(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantPath string
	}{
		{
			name:     "missing exercises",
			raw:      `{"lesson_title":"Leeg"}`,
			wantPath: "/",
		},
		{
			name:     "empty exercises",
			raw:      `{"lesson_title":"Leeg","exercises":[]}`,
			wantPath: "/exercises",
		},
		{
			name:     "unknown exercise type",
			raw:      `{"lesson_title":"Dieren","exercises":[{"type":"typing","question":"q","correct_answer":"a"},{"type":"essay","question":"q","correct_answer":"a"}]}`,
			wantPath: "/exercises/1/type",
		},
		{
			name:     "options are not strings",
			raw:      `{"lesson_title":"Getallen","exercises":[{"type":"fill_blank","question":"q","correct_answer":"twee","options":[1,2]}]}`,
			wantPath: "/exercises/0/options/0",
		},
		{
			name:     "exercise missing answer",
			raw:      `{"lesson_title":"Fruit","exercises":[{"type":"typing","question":"Type 'apple'"}]}`,
			wantPath: "/exercises/0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := assertInvalid(t, testSchema().Check(json.RawMessage(tt.raw)))
			if inv.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", inv.Path, tt.wantPath)
			}
			if string(inv.Content) != tt.raw {
				t.Error("rejected content should be kept for logging")
			}
		})
	}
}

func TestSchemaCheck_NotJSON(t *testing.T) {
	for _, raw := range []string{``, `{not json}`, `Hier is je les!`, sampleLesson + ` {}`} {
		inv := assertInvalid(t, testSchema().Check(json.RawMessage(raw)))
		if inv.Path != "" {
			t.Errorf("decode failure for %q should have no path, got %q", raw, inv.Path)
		}
	}
}

func TestSchemaCheck_NilSchemaAcceptsAnything(t *testing.T) {
	var s *Schema
	if err := s.Check(json.RawMessage(`Gewoon tekst`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestSchemaCheck_CompiledOncePerName(t *testing.T) {
	s := testSchema()
	s.Name = "test-lesson-cache"
	first, err := s.compile()
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.compile()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected the cached schema on the second compile")
	}
}

func TestErrInvalidResponse_Message(t *testing.T) {
	err := &ErrInvalidResponse{Content: json.RawMessage(sampleLesson), Path: "/exercises/0", Err: errors.New("missing correct_answer")}
	if !strings.Contains(err.Error(), "/exercises/0") {
		t.Errorf("error = %q, want path", err.Error())
	}
	if got := err.Excerpt(15); got != `{"lesson_title"...` {
		t.Errorf("excerpt = %q", got)
	}
	if got := err.Excerpt(1000); got != sampleLesson {
		t.Errorf("short content should not be cut: %q", got)
	}
}
