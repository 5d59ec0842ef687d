package session

import "math"

// RecordAnswer applies one graded answer to s and returns the XP gained.
//
// Every answer counts toward TotalCount. A correct answer extends the
// streak and earns BaseXP, plus StreakBonus once the streak reaches
// StreakBonusFrom. A wrong answer costs a life and resets the streak;
// losing the last life fails the session.
func RecordAnswer(s *State, correct bool) (int, error) {
	if s.Phase.Terminal() {
		return 0, ErrNoActiveExercise
	}
	if s.Answered {
		return 0, ErrAlreadyAnswered
	}

	s.TotalCount++
	s.Attempts[s.Cursor]++

	if !correct {
		s.Lives = max(s.Lives-1, 0)
		s.Streak = 0
		if s.Lives <= 0 {
			s.Phase = PhaseFailed
		}
		return 0, nil
	}

	s.CorrectCount++
	s.Streak++
	s.BestStreak = max(s.BestStreak, s.Streak)
	s.Answered = true
	s.SolvedOn[s.Cursor] = s.Attempts[s.Cursor]

	gained := BaseXP
	if s.Streak >= StreakBonusFrom {
		gained += StreakBonus
	}
	s.XP += gained
	return gained, nil
}

// Advance moves past the current exercise, which must have been answered
// correctly. Advancing from the last exercise completes the session.
func Advance(s *State) error {
	if s.Phase.Terminal() {
		return ErrNoActiveExercise
	}
	if !s.Answered {
		return ErrNotAnswered
	}

	if s.IsLast() {
		s.Phase = PhaseCompleted
		return nil
	}
	s.Cursor++
	s.Answered = false
	s.HintCursor = 0
	return nil
}

// NextHint returns the next hint in the current exercise's cycle and
// counts it. An exercise without hints yields ("", false) and changes nothing. Hints never cost
// lives, XP or streak.
func NextHint(s *State, hints []string) (string, bool, error) {
	if s.Phase.Terminal() {
		return "", false, ErrNoActiveExercise
	}
	if len(hints) == 0 {
		return "", false, nil
	}
	h := hints[s.HintCursor%len(hints)]
	s.HintCursor++
	s.HintsUsed++
	return h, true, nil
}

// Restart resets every counter and the cursor, keeping the lesson length
// and life allowance.
func Restart(s *State) {
	*s = *NewState(s.Length, s.MaxLives)
}

// Accuracy returns correct/total as a rounded percentage, 0 when total is 0.
func Accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
