package diagnosis

import (
	"slices"
	"strings"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

// SpellingScoreThreshold is the minimum similarity (inclusive) for a wrong
// free-text answer to count as a spelling slip rather than a wrong word.
const SpellingScoreThreshold = 50

// BlankClassifier flags submissions with nothing in them.
type BlankClassifier struct{}

func (c *BlankClassifier) Name() string { return "blank" }

func (c *BlankClassifier) Classify(input *ClassifyInput) (Category, float64) {
	a := input.Answer
	if strings.TrimSpace(a.Text) == "" && strings.TrimSpace(a.Choice) == "" &&
		len(a.Tokens) == 0 && len(a.Pairs) == 0 {
		return CategoryBlank, 1.0
	}
	return "", 0
}

// WordOrderClassifier flags word_order answers that use exactly the right
// words in the wrong order.
type WordOrderClassifier struct{}

func (c *WordOrderClassifier) Name() string { return "word-order" }

func (c *WordOrderClassifier) Classify(input *ClassifyInput) (Category, float64) {
	if input.Exercise.Kind() != exercise.KindWordOrder {
		return "", 0
	}
	want := strings.Fields(input.Exercise.CorrectAnswer)
	got := slices.Clone(input.Answer.Tokens)
	slices.Sort(want)
	slices.Sort(got)
	if slices.Equal(want, got) {
		return CategoryWordOrder, 0.9
	}
	return "", 0
}

// SpellingClassifier flags near-miss free-text answers.
type SpellingClassifier struct{}

func (c *SpellingClassifier) Name() string { return "spelling" }

func (c *SpellingClassifier) Classify(input *ClassifyInput) (Category, float64) {
	if !input.Exercise.Kind().FreeText() {
		return "", 0
	}
	if input.Result.Score >= SpellingScoreThreshold {
		return CategorySpelling, float64(input.Result.Score) / 100
	}
	return "", 0
}

// GrammarClassifier flags a wrong fill_blank choice. The options of a
// fill_blank are usually inflections of one word, so a wrong pick is a
// grammar mistake more often than a vocabulary one.
type GrammarClassifier struct{}

func (c *GrammarClassifier) Name() string { return "grammar" }

func (c *GrammarClassifier) Classify(input *ClassifyInput) (Category, float64) {
	if input.Exercise.Kind() == exercise.KindFillBlank {
		return CategoryGrammar, 0.6
	}
	return "", 0
}

// VocabularyClassifier flags wrong matching pairs and free-text answers
// too far from the expected text to be a spelling slip.
type VocabularyClassifier struct{}

func (c *VocabularyClassifier) Name() string { return "vocabulary" }

func (c *VocabularyClassifier) Classify(input *ClassifyInput) (Category, float64) {
	switch k := input.Exercise.Kind(); {
	case k == exercise.KindMatching:
		return CategoryVocabulary, 0.7
	case k.FreeText():
		return CategoryVocabulary, 0.5
	}
	return "", 0
}
