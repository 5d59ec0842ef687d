package session

import "errors"

var (
	// ErrNotStarted is returned before Start has succeeded.
	ErrNotStarted = errors.New("session not started")

	// ErrNoActiveExercise is returned when the session phase is terminal.
	ErrNoActiveExercise = errors.New("no active exercise: session has ended")

	// ErrNotAnswered is returned by Advance before a correct answer.
	ErrNotAnswered = errors.New("current exercise has not been answered correctly")

	// ErrAlreadyAnswered is returned when submitting to an exercise that
	// was already answered correctly.
	ErrAlreadyAnswered = errors.New("current exercise already answered correctly")

	// ErrSessionInProgress is returned by Summary while the session runs.
	ErrSessionInProgress = errors.New("session still in progress")
)
