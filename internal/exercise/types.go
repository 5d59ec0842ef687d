// Package exercise defines lesson content and the per-type answer checks.
package exercise

import "time"

// Type is the raw type tag of an exercise as it appears in lesson JSON.
type Type string

const (
	TypeTyping    Type = "typing"
	TypeFillBlank Type = "fill_blank"
	TypeWordOrder Type = "word_order"
	TypeMatching  Type = "matching"
)

// Kind is the closed set of validation strategies. Any tag that is not one
// of the four known types maps to KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindTyping
	KindFillBlank
	KindWordOrder
	KindMatching
)

// Kind maps a type tag onto its validation strategy.
func (t Type) Kind() Kind {
	switch t {
	case TypeTyping:
		return KindTyping
	case TypeFillBlank:
		return KindFillBlank
	case TypeWordOrder:
		return KindWordOrder
	case TypeMatching:
		return KindMatching
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindTyping:
		return "typing"
	case KindFillBlank:
		return "fill_blank"
	case KindWordOrder:
		return "word_order"
	case KindMatching:
		return "matching"
	default:
		return "unknown"
	}
}

// FreeText reports whether answers of this kind are graded by similarity.
func (k Kind) FreeText() bool {
	return k == KindTyping || k == KindUnknown
}

// Exercise is one gradable unit of a lesson. It is never modified once the
// lesson has been prepared.
type Exercise struct {
	// ID identifies the exercise within its lesson, e.g. "ex_1".
	ID string `json:"id"`

	// Type is the raw type tag. Use Type.Kind() to dispatch.
	Type Type `json:"type"`

	// Question is the prompt shown to the learner.
	Question string `json:"question"`

	// CorrectAnswer is the canonical answer. For matching it is an encoded
	// "left=right,left=right" list; for word_order the space-joined order.
	CorrectAnswer string `json:"correct_answer"`

	// Options is the choice pool for fill_blank, the word tokens for
	// word_order and the right-hand values for matching.
	Options []string `json:"options"`

	// Hints are cycled through on request.
	Hints []string `json:"hints"`

	// Explanation is shown after grading regardless of outcome.
	Explanation string `json:"explanation,omitempty"`

	// AudioText is spoken when the exercise is presented or replayed.
	AudioText string `json:"audio_text,omitempty"`
}

// Kind is shorthand for e.Type.Kind().
func (e Exercise) Kind() Kind {
	return e.Type.Kind()
}

// Metadata describes where a lesson came from.
type Metadata struct {
	Language    string    `json:"language"`
	Topic       string    `json:"topic,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Model       string    `json:"model,omitempty"`
	Fallback    bool      `json:"fallback"`
	GeneratedAt time.Time `json:"generated_at,omitzero"`
}

// Lesson is an ordered, non-empty sequence of exercises.
type Lesson struct {
	Title       string     `json:"lesson_title"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
	Metadata    Metadata   `json:"metadata"`
}

// Len returns the number of exercises.
func (l Lesson) Len() int {
	return len(l.Exercises)
}
