package fuzzy

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"hallo", "hallo", 0},
		{"hallo", "halo", 1},
		{"我在学习中文", "我在学中文", 1},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name               string
		expected, answered string
		want               int
	}{
		{"identical", "Ik voel me niet lekker.", "Ik voel me niet lekker.", 100},
		{"case and spaces", "Hallo", "  hALLO ", 100},
		{"both empty", "", "", 100},
		{"one deletion in five", "hallo", "halo", 80},
		{"one substitution in six", "school", "schoel", 83},
		{"completely different", "dag", "xyz", 0},
		{"longer than expected clamps to zero", "ja", "absolutely not", 0},
		{"empty expected", "", "a", 0},
		{"cjk counts runes", "我在学习中文。", "我在学习中文", 86},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.expected, tt.answered); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.expected, tt.answered, got, tt.want)
			}
		})
	}
}

func TestScoreMonotoneInDistance(t *testing.T) {
	expected := "goedemorgen"
	answers := []string{"goedemorgen", "goedemorgn", "goedemrgn", "gdemrgn", "xxxx"}

	prev := 101
	for _, a := range answers {
		s := Score(expected, a)
		if s > prev {
			t.Errorf("Score(%q) = %d, exceeds previous %d", a, s, prev)
		}
		prev = s
	}
}
