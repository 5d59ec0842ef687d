package diagnosis

import (
	"testing"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

func classify(t *testing.T, ex exercise.Exercise, raw string) Result {
	t.Helper()
	ans, err := exercise.ParseAnswer(ex, raw)
	if err != nil {
		t.Fatalf("ParseAnswer(%q): %v", raw, err)
	}
	res, err := exercise.Checker{}.Check(ex, ans)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	return Classify(&ClassifyInput{Exercise: ex, Answer: ans, Result: res})
}

func TestClassify(t *testing.T) {
	typing := exercise.Exercise{Type: exercise.TypeTyping, CorrectAnswer: "Goedemorgen"}
	fill := exercise.Exercise{Type: exercise.TypeFillBlank, CorrectAnswer: "pijn", Options: []string{"pijn", "pijnen"}}
	order := exercise.Exercise{Type: exercise.TypeWordOrder, CorrectAnswer: "ik ga naar school"}
	match := exercise.Exercise{Type: exercise.TypeMatching, CorrectAnswer: "ziek=sick,pijn=pain"}

	tests := []struct {
		name string
		ex   exercise.Exercise
		raw  string
		want Category
	}{
		{"correct", typing, "goedemorgen", CategoryNone},
		{"blank typing", typing, "   ", CategoryBlank},
		{"blank word order", order, "", CategoryBlank},
		{"spelling slip", typing, "Goedmorgn", CategorySpelling},
		{"wrong word", typing, "Hallo", CategoryVocabulary},
		{"wrong option", fill, "pijnen", CategoryGrammar},
		{"right words wrong order", order, "ga ik naar school", CategoryWordOrder},
		{"missing word", order, "ik ga school", CategoryUnclassified},
		{"wrong pairs", match, "ziek=pain,pijn=sick", CategoryVocabulary},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(t, tc.ex, tc.raw)
			if got.Category != tc.want {
				t.Errorf("category = %q (by %s), want %q", got.Category, got.ClassifierName, tc.want)
			}
		})
	}
}

func TestRunClassifiers_BlankPriority(t *testing.T) {
	// A blank typing answer also scores 0, which vocabulary would match.
	input := &ClassifyInput{
		Exercise: exercise.Exercise{Type: exercise.TypeTyping, CorrectAnswer: "dag"},
	}
	cat, conf, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != CategoryBlank {
		t.Errorf("got category %q, want %q", cat, CategoryBlank)
	}
	if conf != 1.0 {
		t.Errorf("got confidence %f, want 1.0", conf)
	}
	if name != "blank" {
		t.Errorf("got classifier %q, want blank", name)
	}
}

func TestSpellingClassifier_Threshold(t *testing.T) {
	c := &SpellingClassifier{}
	ex := exercise.Exercise{Type: exercise.TypeTyping}

	cat, _ := c.Classify(&ClassifyInput{Exercise: ex, Result: exercise.Result{Score: 50}})
	if cat != CategorySpelling {
		t.Errorf("score 50: got %q, want %q", cat, CategorySpelling)
	}
	cat, _ = c.Classify(&ClassifyInput{Exercise: ex, Result: exercise.Result{Score: 49}})
	if cat != "" {
		t.Errorf("score 49: got %q, want empty", cat)
	}
}

func TestLookup(t *testing.T) {
	for _, info := range All() {
		got := Lookup(info.Category)
		if got == nil || got.Label == "" || got.Focus == "" {
			t.Errorf("Lookup(%q) = %+v, want populated info", info.Category, got)
		}
	}
	if Lookup(CategoryNone) != nil {
		t.Error("Lookup(none) should be nil")
	}
}
