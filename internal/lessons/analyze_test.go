package lessons

import (
	"slices"
	"testing"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

func TestAnalyze_Difficulty(t *testing.T) {
	tests := []struct {
		accuracy int
		want     Difficulty
	}{
		{0, Beginner},
		{49, Beginner},
		{50, Intermediate},
		{79, Intermediate},
		{80, Advanced},
		{100, Advanced},
	}
	for _, tt := range tests {
		if got := Analyze(nil, tt.accuracy).Difficulty; got != tt.want {
			t.Errorf("Analyze(nil, %d).Difficulty = %s, want %s", tt.accuracy, got, tt.want)
		}
	}
}

func TestAnalyze_FocusAndMix(t *testing.T) {
	a := Analyze(map[diagnosis.Category]int{
		diagnosis.CategoryWordOrder:  5,
		diagnosis.CategorySpelling:   2,
		diagnosis.CategoryNone:       40,
		diagnosis.CategoryVocabulary: 0,
	}, 60)

	wantFocus := []string{
		diagnosis.Lookup(diagnosis.CategoryWordOrder).Focus,
		diagnosis.Lookup(diagnosis.CategorySpelling).Focus,
	}
	if !slices.Equal(a.FocusAreas, wantFocus) {
		t.Errorf("focus = %v, want %v", a.FocusAreas, wantFocus)
	}

	// grammar family first, then vocabulary, then general; deduplicated.
	wantMix := []exercise.Type{
		exercise.TypeFillBlank, exercise.TypeWordOrder,
		exercise.TypeMatching, exercise.TypeTyping,
	}
	if !slices.Equal(a.ExerciseMix, wantMix) {
		t.Errorf("mix = %v, want %v", a.ExerciseMix, wantMix)
	}
	if _, ok := a.Mistakes[diagnosis.CategoryNone]; ok {
		t.Error("correct answers should not count as mistakes")
	}
}

func TestAnalyze_NoMistakes(t *testing.T) {
	a := Analyze(nil, 0)
	if len(a.FocusAreas) != 0 {
		t.Errorf("focus = %v, want none", a.FocusAreas)
	}
	if len(a.ExerciseMix) != 3 {
		t.Errorf("mix = %v, want the general mix", a.ExerciseMix)
	}
}

func TestAnalyzeCounts(t *testing.T) {
	a := AnalyzeCounts(map[string]int{"grammar": 3}, 90)
	if a.Mistakes[diagnosis.CategoryGrammar] != 3 || a.Difficulty != Advanced {
		t.Errorf("analysis = %+v", a)
	}
}

func TestFallback_AllLanguagesPlayable(t *testing.T) {
	cases := []struct{ language, topic string }{
		{"dutch", "healthcare"},
		{"dutch", "general"},
		{"english", ""},
		{"chinese", ""},
		{"japanese", ""},
		{"", ""},
	}
	for _, c := range cases {
		l := Fallback(c.language, c.topic)
		if l.Len() == 0 || !l.Metadata.Fallback {
			t.Errorf("Fallback(%q, %q) = %+v", c.language, c.topic, l)
		}
	}

	hc := Fallback("Dutch", "Healthcare")
	kinds := map[exercise.Type]bool{}
	for _, ex := range hc.Exercises {
		kinds[ex.Type] = true
	}
	if len(kinds) != 4 {
		t.Errorf("healthcare lesson should cover all four types, got %v", kinds)
	}
}

func TestLookupLanguage(t *testing.T) {
	l, ok := LookupLanguage(" Japanese ")
	if !ok || l.TTSCode != "ja" || l.Voice != "ja-JP-NanamiNeural" {
		t.Errorf("LookupLanguage(japanese) = %+v, %v", l, ok)
	}
	if l, ok := LookupLanguage("zh-cn"); !ok || l.Name != "chinese" {
		t.Errorf("LookupLanguage(zh-cn) = %+v, %v", l, ok)
	}
	if _, ok := LookupLanguage("klingon"); ok {
		t.Error("unknown language should not be found")
	}
	if TTSCode("klingon") != "nl" {
		t.Error("TTSCode should default to Dutch")
	}
}
