package session

import (
	"math"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

// Summary is the end-of-session report.
type Summary struct {
	SessionID   string
	LessonTitle string
	Language    string
	Phase       Phase

	CorrectCount    int
	TotalCount      int
	AccuracyPercent int
	XP              int

	LivesLeft     int
	MaxLives      int
	BestStreak    int
	HintsUsed     int
	ExerciseCount int
	Solved        int

	// LessonScore weights each exercise by the attempt it was solved on.
	LessonScore int

	StartedAt time.Time
	Duration  time.Duration
}

// Outcome is one graded submission, kept for persistence.
type Outcome struct {
	ExerciseID   string
	ExerciseType exercise.Type
	Correct      bool
	Score        int
	Attempt      int

	// HintsUsed is the session hint counter when the answer was given.
	HintsUsed int

	Mistake  diagnosis.Category
	Answer   string
	Expected string
	At       time.Time
}

// Report is emitted once when a session reaches a terminal phase.
type Report struct {
	Summary  Summary
	Outcomes []Outcome
}

// Attempt weights for LessonScore.
const (
	FirstTryPoints  = 100
	SecondTryPoints = 75
	LaterTryPoints  = 50
)

// LessonScore averages per-exercise points over every exercise:
// FirstTryPoints when solved on the first attempt, SecondTryPoints on the
// second, LaterTryPoints after that and 0 when never solved.
func LessonScore(solvedOn []int) int {
	if len(solvedOn) == 0 {
		return 0
	}
	total := 0
	for _, attempt := range solvedOn {
		switch {
		case attempt == 1:
			total += FirstTryPoints
		case attempt == 2:
			total += SecondTryPoints
		case attempt > 2:
			total += LaterTryPoints
		}
	}
	return int(math.Round(float64(total) / float64(len(solvedOn))))
}

func buildSummary(s *State) Summary {
	solved := 0
	for _, a := range s.SolvedOn {
		if a > 0 {
			solved++
		}
	}
	return Summary{
		Phase:           s.Phase,
		CorrectCount:    s.CorrectCount,
		TotalCount:      s.TotalCount,
		AccuracyPercent: Accuracy(s.CorrectCount, s.TotalCount),
		XP:              s.XP,
		LivesLeft:       s.Lives,
		MaxLives:        s.MaxLives,
		BestStreak:      s.BestStreak,
		HintsUsed:       s.HintsUsed,
		ExerciseCount:   s.Length,
		Solved:          solved,
		LessonScore:     LessonScore(s.SolvedOn),
	}
}
