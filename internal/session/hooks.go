package session

import (
	"context"
	"errors"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

// Speaker vocalizes exercise audio. Speak must return promptly; the
// controller never waits on playback and ignores its outcome.
type Speaker interface {
	Speak(text, language string)
}

// StartInfo describes a session attempt that has begun.
type StartInfo struct {
	SessionID     string
	LessonTitle   string
	Language      string
	ExerciseCount int
	At            time.Time
}

// HintInfo describes a hint that was shown.
type HintInfo struct {
	SessionID  string
	ExerciseID   string
	ExerciseType exercise.Type
	Hint         string

	// HintsUsed counts the whole session; ExerciseHints only this
	// exercise, so it is the 1-based position in the hint cycle.
	HintsUsed     int
	ExerciseHints int
}

// Recorder receives session lifecycle events for persistence or rewards.
// Errors are logged by the controller and never affect grading.
type Recorder interface {
	Started(ctx context.Context, info StartInfo) error
	Hinted(ctx context.Context, info HintInfo) error
	Finished(ctx context.Context, report Report) error
}

// NopRecorder implements Recorder with no-ops. Embed it to implement only
// the events you need.
type NopRecorder struct{}

func (NopRecorder) Started(context.Context, StartInfo) error { return nil }
func (NopRecorder) Hinted(context.Context, HintInfo) error   { return nil }
func (NopRecorder) Finished(context.Context, Report) error   { return nil }

// Recorders fans events out to every recorder in order. All recorders are
// called even if one fails; the errors are joined.
func Recorders(rs ...Recorder) Recorder {
	return multiRecorder(rs)
}

type multiRecorder []Recorder

func (m multiRecorder) Started(ctx context.Context, info StartInfo) error {
	var errs []error
	for _, r := range m {
		errs = append(errs, r.Started(ctx, info))
	}
	return errors.Join(errs...)
}

func (m multiRecorder) Hinted(ctx context.Context, info HintInfo) error {
	var errs []error
	for _, r := range m {
		errs = append(errs, r.Hinted(ctx, info))
	}
	return errors.Join(errs...)
}

func (m multiRecorder) Finished(ctx context.Context, report Report) error {
	var errs []error
	for _, r := range m {
		errs = append(errs, r.Finished(ctx, report))
	}
	return errors.Join(errs...)
}
