package session

import (
	"errors"
	"testing"
)

func TestRecordAnswer_StreakBonus(t *testing.T) {
	s := NewState(5, 0)

	want := []int{10, 10, 15, 15}
	for i, w := range want {
		got, err := RecordAnswer(s, true)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if got != w {
			t.Errorf("answer %d: xp gained = %d, want %d", i, got, w)
		}
		if err := Advance(s); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}
	if s.XP != 50 {
		t.Errorf("XP = %d, want 50", s.XP)
	}
	if s.Streak != 4 || s.BestStreak != 4 {
		t.Errorf("streak = %d best = %d, want 4/4", s.Streak, s.BestStreak)
	}
}

func TestRecordAnswer_WrongResetsStreak(t *testing.T) {
	s := NewState(3, 3)
	s.Streak = 5
	s.BestStreak = 5

	if _, err := RecordAnswer(s, false); err != nil {
		t.Fatal(err)
	}
	if s.Streak != 0 {
		t.Errorf("streak = %d, want 0", s.Streak)
	}
	if s.BestStreak != 5 {
		t.Errorf("best streak = %d, want 5", s.BestStreak)
	}
	if s.Lives != 2 {
		t.Errorf("lives = %d, want 2", s.Lives)
	}
	if s.TotalCount != 1 || s.CorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 0/1", s.CorrectCount, s.TotalCount)
	}
	if s.Phase != PhaseInProgress {
		t.Errorf("phase = %v, want in_progress", s.Phase)
	}
}

func TestRecordAnswer_LivesToFailure(t *testing.T) {
	s := NewState(5, 3)

	for i := 1; i <= 3; i++ {
		if _, err := RecordAnswer(s, false); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if i < 3 && s.Phase != PhaseInProgress {
			t.Fatalf("phase after %d wrong = %v, want in_progress", i, s.Phase)
		}
	}
	if s.Phase != PhaseFailed {
		t.Fatalf("phase = %v, want failed", s.Phase)
	}
	if s.Lives != 0 {
		t.Errorf("lives = %d, want 0", s.Lives)
	}

	if _, err := RecordAnswer(s, true); !errors.Is(err, ErrNoActiveExercise) {
		t.Errorf("answer after failure: err = %v, want ErrNoActiveExercise", err)
	}
	if err := Advance(s); !errors.Is(err, ErrNoActiveExercise) {
		t.Errorf("advance after failure: err = %v, want ErrNoActiveExercise", err)
	}
	if s.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor)
	}
}

func TestRecordAnswer_AlreadyAnswered(t *testing.T) {
	s := NewState(2, 3)
	if _, err := RecordAnswer(s, true); err != nil {
		t.Fatal(err)
	}
	if _, err := RecordAnswer(s, true); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("err = %v, want ErrAlreadyAnswered", err)
	}
	if s.TotalCount != 1 {
		t.Errorf("total = %d, want 1", s.TotalCount)
	}
}

func TestAdvance_RequiresCorrectAnswer(t *testing.T) {
	s := NewState(2, 3)

	if err := Advance(s); !errors.Is(err, ErrNotAnswered) {
		t.Errorf("advance unanswered: err = %v, want ErrNotAnswered", err)
	}

	RecordAnswer(s, false)
	if err := Advance(s); !errors.Is(err, ErrNotAnswered) {
		t.Errorf("advance after wrong: err = %v, want ErrNotAnswered", err)
	}

	RecordAnswer(s, true)
	if err := Advance(s); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if s.Cursor != 1 || s.Answered {
		t.Errorf("cursor = %d answered = %v, want 1/false", s.Cursor, s.Answered)
	}

	RecordAnswer(s, true)
	if err := Advance(s); err != nil {
		t.Fatalf("advance last: %v", err)
	}
	if s.Phase != PhaseCompleted {
		t.Errorf("phase = %v, want completed", s.Phase)
	}
	if s.Cursor != 1 {
		t.Errorf("cursor = %d, want 1 (stays on last)", s.Cursor)
	}
}

func TestNextHint_Cycles(t *testing.T) {
	s := NewState(1, 3)
	hints := []string{"first", "second"}

	want := []string{"first", "second", "first"}
	for i, w := range want {
		got, ok, err := NextHint(s, hints)
		if err != nil || !ok {
			t.Fatalf("hint %d: ok=%v err=%v", i, ok, err)
		}
		if got != w {
			t.Errorf("hint %d = %q, want %q", i, got, w)
		}
	}
	if s.HintsUsed != 3 {
		t.Errorf("hints used = %d, want 3", s.HintsUsed)
	}
	if s.Lives != 3 || s.XP != 0 || s.Streak != 0 {
		t.Errorf("hints must not penalize: lives=%d xp=%d streak=%d", s.Lives, s.XP, s.Streak)
	}
}

func TestNextHint_CycleRestartsPerExercise(t *testing.T) {
	s := NewState(2, 3)
	if _, _, err := NextHint(s, []string{"a0", "a1"}); err != nil {
		t.Fatal(err)
	}
	RecordAnswer(s, true)
	if err := Advance(s); err != nil {
		t.Fatal(err)
	}
	if s.HintCursor != 0 {
		t.Errorf("hint cursor after advance = %d, want 0", s.HintCursor)
	}
	got, _, _ := NextHint(s, []string{"b0", "b1"})
	if got != "b0" {
		t.Errorf("first hint on second exercise = %q, want b0", got)
	}
	if s.HintsUsed != 2 {
		t.Errorf("hints used = %d, want 2", s.HintsUsed)
	}
}

func TestNextHint_NoHints(t *testing.T) {
	s := NewState(1, 3)
	got, ok, err := NextHint(s, nil)
	if err != nil || ok || got != "" {
		t.Errorf("NextHint(nil) = %q, %v, %v; want \"\", false, nil", got, ok, err)
	}
	if s.HintsUsed != 0 {
		t.Errorf("hints used = %d, want 0", s.HintsUsed)
	}
}

func TestRestart(t *testing.T) {
	s := NewState(4, 5)
	RecordAnswer(s, true)
	Advance(s)
	RecordAnswer(s, false)
	NextHint(s, []string{"h"})

	Restart(s)

	if s.Length != 4 || s.MaxLives != 5 || s.Lives != 5 {
		t.Errorf("restart lost config: %+v", s)
	}
	if s.Cursor != 0 || s.XP != 0 || s.TotalCount != 0 || s.HintsUsed != 0 || s.HintCursor != 0 || s.Phase != PhaseInProgress {
		t.Errorf("restart did not reset: %+v", s)
	}
	if len(s.Attempts) != 4 || s.Attempts[0] != 0 {
		t.Errorf("attempts = %v", s.Attempts)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{2, 3, 67},
		{1, 3, 33},
		{3, 3, 100},
		{1, 8, 13},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.correct, tt.total); got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestLessonScore(t *testing.T) {
	tests := []struct {
		solved []int
		want   int
	}{
		{nil, 0},
		{[]int{1, 1}, 100},
		{[]int{1, 2}, 88},
		{[]int{1, 3, 5, 0}, 50},
		{[]int{0, 0}, 0},
	}
	for _, tt := range tests {
		if got := LessonScore(tt.solved); got != tt.want {
			t.Errorf("LessonScore(%v) = %d, want %d", tt.solved, got, tt.want)
		}
	}
}
