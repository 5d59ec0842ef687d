package llm

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"json fence", "Here you go:\n```json\n{\"a\":1}\n```\nEnjoy!", `{"a":1}`},
		{"plain fence", "```\n{\"a\":[1,2]}\n```", `{"a":[1,2]}`},
		{"prose around", `Sure! {"lesson_title":"Zorg"} Hope this helps.`, `{"lesson_title":"Zorg"}`},
		{"nested", `x {"a":{"b":{"c":1}}} y`, `{"a":{"b":{"c":1}}}`},
		{"brace in string", `{"q":"use } here","n":2}`, `{"q":"use } here","n":2}`},
		{"think block", "<think>maybe {not json}</think>\n{\"ok\":true}", `{"ok":true}`},
		{"skips invalid span", `{oops} then {"a":1}`, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			if err != nil {
				t.Fatalf("ExtractJSON(%q) error: %v", tt.in, err)
			}
			if string(got) != tt.want {
				t.Errorf("ExtractJSON(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSON_None(t *testing.T) {
	for _, in := range []string{"", "no json here", "{unterminated", "<think>{\"a\":1}</think>"} {
		if _, err := ExtractJSON(in); !errors.Is(err, ErrNoJSON) {
			t.Errorf("ExtractJSON(%q) err = %v, want ErrNoJSON", in, err)
		}
	}
}
