// Package session runs a learner through a lesson: it grades answers,
// tracks lives, XP and streak, cycles hints and reports the outcome.
package session

// Phase is the lifecycle status of a session. Completed and Failed are
// terminal.
type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseCompleted
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further answers can be accepted.
func (p Phase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

const (
	// DefaultMaxLives is the number of wrong answers allowed per session.
	DefaultMaxLives = 3

	// BaseXP is awarded for every correct answer.
	BaseXP = 10

	// StreakBonus is added once the running streak reaches StreakBonusFrom.
	StreakBonus     = 5
	StreakBonusFrom = 3
)

// State is the mutable progress of one attempt at a lesson. It is owned by
// a single Controller and never shared.
type State struct {
	// Length is the number of exercises in the lesson.
	Length int

	// Cursor is the index of the current exercise, 0 <= Cursor < Length.
	Cursor int

	// Lives starts at MaxLives and never goes below 0.
	Lives    int
	MaxLives int

	// XP never decreases during a session.
	XP int

	// Streak counts consecutive correct answers.
	Streak     int
	BestStreak int

	CorrectCount int
	TotalCount   int

	// HintsUsed counts hints over the whole session.
	HintsUsed int

	// HintCursor indexes the hint cycle of the current exercise and
	// resets when the cursor moves.
	HintCursor int

	Phase Phase

	// Answered is true once the current exercise was answered correctly.
	Answered bool

	// Attempts counts submissions per exercise.
	Attempts []int

	// SolvedOn is the attempt number on which each exercise was first
	// answered correctly, or 0 if it has not been.
	SolvedOn []int
}

// NewState returns the initial state for a lesson of length exercises.
// A non-positive maxLives selects DefaultMaxLives.
func NewState(length, maxLives int) *State {
	if maxLives <= 0 {
		maxLives = DefaultMaxLives
	}
	return &State{
		Length:   length,
		Lives:    maxLives,
		MaxLives: maxLives,
		Phase:    PhaseInProgress,
		Attempts: make([]int, length),
		SolvedOn: make([]int, length),
	}
}

// Clone returns a deep copy, safe to hand to renderers.
func (s *State) Clone() State {
	c := *s
	c.Attempts = append([]int(nil), s.Attempts...)
	c.SolvedOn = append([]int(nil), s.SolvedOn...)
	return c
}

// IsLast reports whether the cursor is on the final exercise.
func (s *State) IsLast() bool {
	return s.Cursor == s.Length-1
}
