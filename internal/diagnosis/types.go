package diagnosis

import "github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"

// Category classifies a wrong answer.
type Category string

const (
	CategoryNone         Category = "none" // answer was correct
	CategoryBlank        Category = "blank"
	CategorySpelling     Category = "spelling"
	CategoryWordOrder    Category = "word_order"
	CategoryGrammar      Category = "grammar"
	CategoryVocabulary   Category = "vocabulary"
	CategoryUnclassified Category = "unclassified"
)

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Exercise exercise.Exercise
	Answer   exercise.Answer
	Result   exercise.Result
}

// Result is the output of classifying an answer.
type Result struct {
	Category       Category
	Confidence     float64 // 0.0–1.0
	ClassifierName string  // Which rule produced this result
}
