package lessons

import (
	"errors"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

// ErrNoProvider is the fallback cause when no LLM is configured.
var ErrNoProvider = errors.New("no LLM provider configured")

// Difficulty is the proficiency band a lesson targets.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Analysis summarizes recent practice for lesson planning.
type Analysis struct {
	Difficulty      Difficulty
	AccuracyPercent int

	// Mistakes counts wrong answers per category.
	Mistakes map[diagnosis.Category]int

	// FocusAreas are human-readable practice targets, most frequent first.
	FocusAreas []string

	// ExerciseMix lists the exercise types to emphasise, in order.
	ExerciseMix []exercise.Type
}

// Request describes the lesson to generate.
type Request struct {
	Language string
	Topic    string

	// Analysis is optional; nil means a first lesson at beginner level.
	Analysis *Analysis
}

// Generated is the outcome of one generation. Lesson is always playable.
type Generated struct {
	Lesson exercise.Lesson

	// ID is the stored lesson ID, or 0 when it was not persisted.
	ID int

	// Cause is why the fallback lesson was used; nil when the model
	// produced the lesson.
	Cause error
}
