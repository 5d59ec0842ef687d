package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

// Options configures a Controller. The zero value is usable.
type Options struct {
	// MaxLives defaults to DefaultMaxLives.
	MaxLives int

	// Strict rejects unknown exercise types instead of grading them
	// loosely.
	Strict bool

	// Speaker receives exercise audio; nil disables speech.
	Speaker Speaker

	// Recorder receives lifecycle events; nil disables persistence.
	Recorder Recorder

	Logger *zap.Logger

	// Now overrides the clock in tests.
	Now func() time.Time
}

// Feedback is the result of one submission, for the front-end to render.
type Feedback struct {
	Result   exercise.Result
	Mistake  diagnosis.Result
	Outcome  Outcome
	XPGained int

	// Explanation is shown regardless of the outcome.
	Explanation string

	// State after the answer was applied.
	State State
}

// Controller drives one learner through one lesson at a time. It owns the
// lesson and the session state. A Controller is not safe for concurrent
// use; see Manager.
type Controller struct {
	opts    Options
	checker exercise.Checker
	logger  *zap.Logger

	lesson    exercise.Lesson
	state     *State
	sessionID string
	startedAt time.Time
	outcomes  []Outcome
	reported  bool
}

// NewController creates an idle controller. Call Start to begin a lesson.
func NewController(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Recorder == nil {
		opts.Recorder = NopRecorder{}
	}
	return &Controller{
		opts:    opts,
		checker: exercise.Checker{Strict: opts.Strict},
		logger:  opts.Logger,
	}
}

// Start validates lesson and begins a new session on it, abandoning any
// session in progress. It fails with *exercise.InvalidLessonError for an
// empty lesson and *exercise.MalformedExerciseError for a bad exercise.
func (c *Controller) Start(ctx context.Context, lesson exercise.Lesson) error {
	prepared, err := exercise.Prepare(lesson)
	if err != nil {
		return err
	}
	c.lesson = prepared
	c.begin(ctx)
	return nil
}

func (c *Controller) begin(ctx context.Context) {
	c.state = NewState(c.lesson.Len(), c.opts.MaxLives)
	c.sessionID = uuid.NewString()
	c.startedAt = c.opts.Now()
	c.outcomes = nil
	c.reported = false

	err := c.opts.Recorder.Started(ctx, StartInfo{
		SessionID:     c.sessionID,
		LessonTitle:   c.lesson.Title,
		Language:      c.lesson.Metadata.Language,
		ExerciseCount: c.lesson.Len(),
		At:            c.startedAt,
	})
	if err != nil {
		c.logger.Warn("record session start", zap.String("session_id", c.sessionID), zap.Error(err))
	}

	c.logger.Debug("session started",
		zap.String("session_id", c.sessionID),
		zap.String("lesson", c.lesson.Title),
		zap.Int("exercises", c.lesson.Len()),
	)
	c.speakCurrent()
}

// SessionID identifies the current attempt; it changes on Restart.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Lesson returns the prepared lesson.
func (c *Controller) Lesson() exercise.Lesson {
	return c.lesson
}

// Started reports whether a lesson has been loaded.
func (c *Controller) Started() bool {
	return c.state != nil
}

// State returns a copy of the current state.
func (c *Controller) State() (State, error) {
	if c.state == nil {
		return State{}, ErrNotStarted
	}
	return c.state.Clone(), nil
}

// Current returns the exercise under the cursor.
func (c *Controller) Current() (exercise.Exercise, error) {
	if err := c.active(); err != nil {
		return exercise.Exercise{}, err
	}
	return c.lesson.Exercises[c.state.Cursor], nil
}

func (c *Controller) active() error {
	if c.state == nil {
		return ErrNotStarted
	}
	if c.state.Phase.Terminal() {
		return ErrNoActiveExercise
	}
	return nil
}

// SubmitAnswer parses raw input for the current exercise and submits it.
// Input that cannot be parsed for the exercise type (a matching item
// without "=") is returned as an error and does not count as an attempt.
func (c *Controller) SubmitAnswer(ctx context.Context, raw string) (*Feedback, error) {
	ex, err := c.Current()
	if err != nil {
		return nil, err
	}
	ans, err := exercise.ParseAnswer(ex, raw)
	if err != nil {
		return nil, fmt.Errorf("parse answer: %w", err)
	}
	return c.Submit(ctx, ans)
}

// Submit grades ans against the current exercise and applies the outcome.
// Wrong answers are a normal outcome, not an error.
func (c *Controller) Submit(ctx context.Context, ans exercise.Answer) (*Feedback, error) {
	if err := c.active(); err != nil {
		return nil, err
	}
	if c.state.Answered {
		return nil, ErrAlreadyAnswered
	}

	ex := c.lesson.Exercises[c.state.Cursor]
	res, err := c.checker.Check(ex, ans)
	if err != nil {
		return nil, err
	}

	gained, err := RecordAnswer(c.state, res.Correct)
	if err != nil {
		return nil, err
	}

	mistake := diagnosis.Classify(&diagnosis.ClassifyInput{Exercise: ex, Answer: ans, Result: res})
	outcome := Outcome{
		ExerciseID:   ex.ID,
		ExerciseType: ex.Type,
		Correct:      res.Correct,
		Score:        res.Score,
		Attempt:      c.state.Attempts[c.state.Cursor],
		HintsUsed:    c.state.HintsUsed,
		Mistake:      mistake.Category,
		Answer:       ans.Raw(ex.Kind()),
		Expected:     ex.CorrectAnswer,
		At:           c.opts.Now(),
	}
	c.outcomes = append(c.outcomes, outcome)

	c.logger.Debug("answer graded",
		zap.String("session_id", c.sessionID),
		zap.String("exercise_id", ex.ID),
		zap.Bool("correct", res.Correct),
		zap.Int("score", res.Score),
		zap.Int("lives", c.state.Lives),
	)

	if c.state.Phase == PhaseFailed {
		c.finish(ctx)
	}

	return &Feedback{
		Result:      res,
		Mistake:     mistake,
		Outcome:     outcome,
		XPGained:    gained,
		Explanation: ex.Explanation,
		State:       c.state.Clone(),
	}, nil
}

// RequestHint returns the next hint for the current exercise. It reports
// false when the exercise has no hints.
func (c *Controller) RequestHint(ctx context.Context) (string, bool, error) {
	if err := c.active(); err != nil {
		return "", false, err
	}
	ex := c.lesson.Exercises[c.state.Cursor]
	hint, ok, err := NextHint(c.state, ex.Hints)
	if err != nil || !ok {
		return "", false, err
	}

	err = c.opts.Recorder.Hinted(ctx, HintInfo{
		SessionID:     c.sessionID,
		ExerciseID:    ex.ID,
		ExerciseType:  ex.Type,
		Hint:          hint,
		HintsUsed:     c.state.HintsUsed,
		ExerciseHints: c.state.HintCursor,
	})
	if err != nil {
		c.logger.Warn("record hint", zap.String("session_id", c.sessionID), zap.Error(err))
	}
	return hint, true, nil
}

// Advance moves to the next exercise once the current one is answered
// correctly. It returns the new current exercise, or nil when the lesson
// is now complete.
func (c *Controller) Advance(ctx context.Context) (*exercise.Exercise, error) {
	if c.state == nil {
		return nil, ErrNotStarted
	}
	if err := Advance(c.state); err != nil {
		return nil, err
	}
	if c.state.Phase == PhaseCompleted {
		c.finish(ctx)
		return nil, nil
	}
	ex := c.lesson.Exercises[c.state.Cursor]
	c.speakCurrent()
	return &ex, nil
}

// Replay speaks the current exercise's audio again.
func (c *Controller) Replay() error {
	if err := c.active(); err != nil {
		return err
	}
	c.speakCurrent()
	return nil
}

// Summary returns the final report. It is only available once the session
// has completed or failed.
func (c *Controller) Summary() (Summary, error) {
	if c.state == nil {
		return Summary{}, ErrNotStarted
	}
	if !c.state.Phase.Terminal() {
		return Summary{}, ErrSessionInProgress
	}
	return c.summary(), nil
}

func (c *Controller) summary() Summary {
	sum := buildSummary(c.state)
	sum.SessionID = c.sessionID
	sum.LessonTitle = c.lesson.Title
	sum.Language = c.lesson.Metadata.Language
	sum.StartedAt = c.startedAt
	sum.Duration = c.opts.Now().Sub(c.startedAt)
	return sum
}

// Restart begins a fresh attempt at the same lesson with a new session ID.
// An unfinished attempt is discarded without a report.
func (c *Controller) Restart(ctx context.Context) error {
	if c.state == nil {
		return ErrNotStarted
	}
	c.begin(ctx)
	return nil
}

// finish emits the report exactly once per attempt.
func (c *Controller) finish(ctx context.Context) {
	if c.reported {
		return
	}
	c.reported = true

	report := Report{Summary: c.summary(), Outcomes: append([]Outcome(nil), c.outcomes...)}
	if err := c.opts.Recorder.Finished(ctx, report); err != nil {
		c.logger.Warn("record session end", zap.String("session_id", c.sessionID), zap.Error(err))
	}
	c.logger.Info("session finished",
		zap.String("session_id", c.sessionID),
		zap.Stringer("phase", c.state.Phase),
		zap.Int("correct", c.state.CorrectCount),
		zap.Int("total", c.state.TotalCount),
		zap.Int("xp", c.state.XP),
	)
}

func (c *Controller) speakCurrent() {
	if c.opts.Speaker == nil {
		return
	}
	ex := c.lesson.Exercises[c.state.Cursor]
	if ex.AudioText == "" {
		return
	}
	c.opts.Speaker.Speak(ex.AudioText, c.lesson.Metadata.Language)
}
