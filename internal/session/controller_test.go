package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/diagnosis"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
)

type spokenLine struct {
	text, language string
}

type mockSpeaker struct {
	mu     sync.Mutex
	spoken []spokenLine
}

func (m *mockSpeaker) Speak(text, language string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spoken = append(m.spoken, spokenLine{text, language})
}

type mockRecorder struct {
	starts  []StartInfo
	hints   []HintInfo
	reports []Report
	err     error
}

func (m *mockRecorder) Started(_ context.Context, info StartInfo) error {
	m.starts = append(m.starts, info)
	return m.err
}

func (m *mockRecorder) Hinted(_ context.Context, info HintInfo) error {
	m.hints = append(m.hints, info)
	return m.err
}

func (m *mockRecorder) Finished(_ context.Context, r Report) error {
	m.reports = append(m.reports, r)
	return m.err
}

func twoWordLesson() exercise.Lesson {
	return exercise.Lesson{
		Title: "Greetings",
		Exercises: []exercise.Exercise{
			{Type: exercise.TypeTyping, Question: "Say hello", CorrectAnswer: "hallo", Hints: []string{"h...", "ha..."}},
			{Type: exercise.TypeTyping, Question: "Say good day", CorrectAnswer: "dag"},
		},
		Metadata: exercise.Metadata{Language: "dutch"},
	}
}

func newTestController(t *testing.T) (*Controller, *mockRecorder, *mockSpeaker) {
	t.Helper()
	rec := &mockRecorder{}
	sp := &mockSpeaker{}
	c := NewController(Options{Recorder: rec, Speaker: sp})
	if err := c.Start(context.Background(), twoWordLesson()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return c, rec, sp
}

func TestController_EndToEnd(t *testing.T) {
	ctx := context.Background()
	c, rec, _ := newTestController(t)

	fb, err := c.SubmitAnswer(ctx, "hallo")
	if err != nil {
		t.Fatalf("submit hallo: %v", err)
	}
	if !fb.Result.Correct || fb.State.XP != 10 || fb.State.Streak != 1 {
		t.Fatalf("after hallo: correct=%v xp=%d streak=%d", fb.Result.Correct, fb.State.XP, fb.State.Streak)
	}

	next, err := c.Advance(ctx)
	if err != nil || next == nil {
		t.Fatalf("advance: %v, %v", next, err)
	}
	if next.CorrectAnswer != "dag" {
		t.Errorf("next exercise = %q, want dag", next.CorrectAnswer)
	}

	fb, err = c.SubmitAnswer(ctx, "dax")
	if err != nil {
		t.Fatalf("submit dax: %v", err)
	}
	if fb.Result.Correct {
		t.Error("dax should be incorrect")
	}
	if fb.Result.Score != 67 {
		t.Errorf("dax score = %d, want 67", fb.Result.Score)
	}
	if fb.State.Lives != 2 || fb.State.Streak != 0 {
		t.Errorf("after dax: lives=%d streak=%d, want 2/0", fb.State.Lives, fb.State.Streak)
	}
	if fb.Mistake.Category != diagnosis.CategorySpelling {
		t.Errorf("mistake = %q, want spelling", fb.Mistake.Category)
	}

	if _, err := c.Advance(ctx); !errors.Is(err, ErrNotAnswered) {
		t.Errorf("advance after wrong: err = %v, want ErrNotAnswered", err)
	}

	fb, err = c.SubmitAnswer(ctx, "dag")
	if err != nil {
		t.Fatalf("submit dag: %v", err)
	}
	if !fb.Result.Correct || fb.State.XP != 20 {
		t.Errorf("after dag: correct=%v xp=%d, want true/20", fb.Result.Correct, fb.State.XP)
	}

	if _, err := c.Summary(); !errors.Is(err, ErrSessionInProgress) {
		t.Errorf("summary before end: err = %v, want ErrSessionInProgress", err)
	}

	next, err = c.Advance(ctx)
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if next != nil {
		t.Errorf("final advance returned %+v, want nil", next)
	}

	sum, err := c.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Phase != PhaseCompleted || sum.CorrectCount != 2 || sum.TotalCount != 3 || sum.AccuracyPercent != 67 || sum.XP != 20 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.LessonScore != 88 {
		t.Errorf("lesson score = %d, want 88", sum.LessonScore)
	}

	if len(rec.reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(rec.reports))
	}
	outcomes := rec.reports[0].Outcomes
	if len(outcomes) != 3 {
		t.Fatalf("outcomes = %d, want 3", len(outcomes))
	}
	if outcomes[1].ExerciseID != "ex_2" || outcomes[1].Correct || outcomes[1].Attempt != 1 {
		t.Errorf("outcome[1] = %+v", outcomes[1])
	}
	if outcomes[2].Attempt != 2 || !outcomes[2].Correct {
		t.Errorf("outcome[2] = %+v", outcomes[2])
	}

	if _, err := c.SubmitAnswer(ctx, "dag"); !errors.Is(err, ErrNoActiveExercise) {
		t.Errorf("submit after completion: err = %v, want ErrNoActiveExercise", err)
	}
	if _, _, err := c.RequestHint(ctx); !errors.Is(err, ErrNoActiveExercise) {
		t.Errorf("hint after completion: err = %v, want ErrNoActiveExercise", err)
	}
}

func TestController_FailsAfterThreeWrong(t *testing.T) {
	ctx := context.Background()
	c, rec, _ := newTestController(t)

	for i := 0; i < 3; i++ {
		fb, err := c.SubmitAnswer(ctx, "zzzzz")
		if err != nil {
			t.Fatalf("wrong answer %d: %v", i, err)
		}
		if i < 2 && fb.State.Phase != PhaseInProgress {
			t.Fatalf("phase after %d wrong = %v", i+1, fb.State.Phase)
		}
	}

	st, _ := c.State()
	if st.Phase != PhaseFailed {
		t.Fatalf("phase = %v, want failed", st.Phase)
	}
	if _, err := c.Current(); !errors.Is(err, ErrNoActiveExercise) {
		t.Errorf("current after failure: err = %v, want ErrNoActiveExercise", err)
	}
	if len(rec.reports) != 1 || rec.reports[0].Summary.Phase != PhaseFailed {
		t.Fatalf("reports = %+v, want one failed report", rec.reports)
	}

	sum, err := c.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.TotalCount != 3 || sum.CorrectCount != 0 || sum.AccuracyPercent != 0 || sum.LivesLeft != 0 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestController_HintCountIsSessionWide(t *testing.T) {
	ctx := context.Background()
	c, rec, _ := newTestController(t)

	var got []string
	for i := 0; i < 3; i++ {
		h, ok, err := c.RequestHint(ctx)
		if err != nil || !ok {
			t.Fatalf("hint %d: ok=%v err=%v", i, ok, err)
		}
		got = append(got, h)
	}
	want := []string{"h...", "ha...", "h..."}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hint %d = %q, want %q", i, got[i], want[i])
		}
	}
	if len(rec.hints) != 3 || rec.hints[2].HintsUsed != 3 {
		t.Errorf("recorded hints = %+v", rec.hints)
	}

	fb, err := c.SubmitAnswer(ctx, "hallo")
	if err != nil {
		t.Fatal(err)
	}
	if fb.Outcome.HintsUsed != 3 {
		t.Errorf("outcome hints used = %d, want 3", fb.Outcome.HintsUsed)
	}
	if _, err := c.Advance(ctx); err != nil {
		t.Fatal(err)
	}

	// Second exercise has no hints: no-op, counter unchanged.
	h, ok, err := c.RequestHint(ctx)
	if err != nil || ok || h != "" {
		t.Errorf("hint on hintless exercise = %q, %v, %v", h, ok, err)
	}
	st, _ := c.State()
	if st.HintsUsed != 3 {
		t.Errorf("hints used = %d, want 3", st.HintsUsed)
	}
}

func TestController_HintCycleFollowsExercise(t *testing.T) {
	ctx := context.Background()
	rec := &mockRecorder{}
	c := NewController(Options{Recorder: rec})
	lesson := exercise.Lesson{
		Title: "Numbers",
		Exercises: []exercise.Exercise{
			{Type: exercise.TypeTyping, Question: "One", CorrectAnswer: "een", Hints: []string{"a0", "a1"}},
			{Type: exercise.TypeTyping, Question: "Two", CorrectAnswer: "twee", Hints: []string{"b0", "b1"}},
		},
		Metadata: exercise.Metadata{Language: "dutch"},
	}
	if err := c.Start(ctx, lesson); err != nil {
		t.Fatal(err)
	}

	if h, _, _ := c.RequestHint(ctx); h != "a0" {
		t.Fatalf("first hint = %q, want a0", h)
	}
	if _, err := c.SubmitAnswer(ctx, "een"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Advance(ctx); err != nil {
		t.Fatal(err)
	}

	var got []string
	for i := 0; i < 3; i++ {
		h, ok, err := c.RequestHint(ctx)
		if err != nil || !ok {
			t.Fatalf("hint %d: ok=%v err=%v", i, ok, err)
		}
		got = append(got, h)
	}
	want := []string{"b0", "b1", "b0"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hint %d = %q, want %q", i, got[i], want[i])
		}
	}
	st, _ := c.State()
	if st.HintsUsed != 4 {
		t.Errorf("hints used = %d, want 4", st.HintsUsed)
	}
	last := rec.hints[len(rec.hints)-1]
	if last.HintsUsed != 4 || last.Hint != "b0" || last.ExerciseHints != 3 || last.ExerciseType != exercise.TypeTyping {
		t.Errorf("last recorded hint = %+v", last)
	}
	if first := rec.hints[1]; first.ExerciseHints != 1 || first.Hint != "b0" {
		t.Errorf("first hint on exercise 2 = %+v", first)
	}
}

func TestController_ResubmitAfterCorrect(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if _, err := c.SubmitAnswer(ctx, "hallo"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitAnswer(ctx, "hallo"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("err = %v, want ErrAlreadyAnswered", err)
	}
	st, _ := c.State()
	if st.TotalCount != 1 || st.XP != 10 {
		t.Errorf("state changed on resubmit: %+v", st)
	}
}

func TestController_SpeaksOnPresentAndReplay(t *testing.T) {
	ctx := context.Background()
	c, _, sp := newTestController(t)

	if err := c.Replay(); err != nil {
		t.Fatal(err)
	}
	c.SubmitAnswer(ctx, "hallo")
	c.Advance(ctx)

	want := []spokenLine{{"hallo", "dutch"}, {"hallo", "dutch"}, {"dag", "dutch"}}
	if len(sp.spoken) != len(want) {
		t.Fatalf("spoken = %v, want %v", sp.spoken, want)
	}
	for i := range want {
		if sp.spoken[i] != want[i] {
			t.Errorf("spoken[%d] = %v, want %v", i, sp.spoken[i], want[i])
		}
	}
}

func TestController_RecorderErrorsDoNotAffectGrading(t *testing.T) {
	ctx := context.Background()
	rec := &mockRecorder{err: errors.New("disk full")}
	c := NewController(Options{Recorder: rec})
	if err := c.Start(ctx, twoWordLesson()); err != nil {
		t.Fatalf("start: %v", err)
	}
	fb, err := c.SubmitAnswer(ctx, "hallo")
	if err != nil || !fb.Result.Correct {
		t.Fatalf("submit: %v, %+v", err, fb)
	}
}

func TestController_StartRejectsBadLessons(t *testing.T) {
	c := NewController(Options{})
	ctx := context.Background()

	var invalid *exercise.InvalidLessonError
	if err := c.Start(ctx, exercise.Lesson{}); !errors.As(err, &invalid) {
		t.Errorf("empty lesson: err = %v, want InvalidLessonError", err)
	}

	bad := twoWordLesson()
	bad.Exercises = append(bad.Exercises, exercise.Exercise{Type: exercise.TypeFillBlank, Question: "Pick", CorrectAnswer: "x", Options: []string{"y"}})
	var malformed *exercise.MalformedExerciseError
	if err := c.Start(ctx, bad); !errors.As(err, &malformed) {
		t.Errorf("bad fill_blank: err = %v, want MalformedExerciseError", err)
	}
	if c.Started() {
		t.Error("controller should not be started after rejected lessons")
	}
	if _, err := c.SubmitAnswer(ctx, "x"); !errors.Is(err, ErrNotStarted) {
		t.Errorf("submit before start: err = %v, want ErrNotStarted", err)
	}
}

func TestController_StrictRejectsUnknownType(t *testing.T) {
	ctx := context.Background()
	lesson := exercise.Lesson{Exercises: []exercise.Exercise{
		{Type: "pronunciation", Question: "Say it", CorrectAnswer: "goedemorgen"},
	}}

	loose := NewController(Options{})
	if err := loose.Start(ctx, lesson); err != nil {
		t.Fatal(err)
	}
	fb, err := loose.SubmitAnswer(ctx, "goedemorgn")
	if err != nil || !fb.Result.Correct {
		t.Errorf("loose: %v, %+v", err, fb)
	}

	strict := NewController(Options{Strict: true})
	if err := strict.Start(ctx, lesson); err != nil {
		t.Fatal(err)
	}
	var unsupported *exercise.UnsupportedTypeError
	if _, err := strict.SubmitAnswer(ctx, "goedemorgen"); !errors.As(err, &unsupported) {
		t.Errorf("strict: err = %v, want UnsupportedTypeError", err)
	}
	st, _ := strict.State()
	if st.TotalCount != 0 {
		t.Errorf("strict rejection counted an attempt: %+v", st)
	}
}

func TestController_Restart(t *testing.T) {
	ctx := context.Background()
	c, rec, _ := newTestController(t)
	firstID := c.SessionID()

	for i := 0; i < 3; i++ {
		c.SubmitAnswer(ctx, "nope")
	}
	if err := c.Restart(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}

	if c.SessionID() == firstID {
		t.Error("restart should assign a new session id")
	}
	st, _ := c.State()
	if st.Phase != PhaseInProgress || st.Lives != DefaultMaxLives || st.Cursor != 0 || st.TotalCount != 0 {
		t.Errorf("state after restart = %+v", st)
	}
	if c.Lesson().Title != "Greetings" {
		t.Errorf("lesson changed on restart")
	}
	if len(rec.starts) != 2 {
		t.Errorf("starts = %d, want 2", len(rec.starts))
	}
}

func TestController_ParseError(t *testing.T) {
	ctx := context.Background()
	c := NewController(Options{})
	lesson := exercise.Lesson{Exercises: []exercise.Exercise{
		{Type: exercise.TypeMatching, Question: "Match", CorrectAnswer: "a=1,b=2"},
	}}
	if err := c.Start(ctx, lesson); err != nil {
		t.Fatal(err)
	}
	if _, err := c.SubmitAnswer(ctx, "a 1"); err == nil {
		t.Error("expected parse error")
	}
	st, _ := c.State()
	if st.TotalCount != 0 || st.Lives != DefaultMaxLives {
		t.Errorf("parse error changed state: %+v", st)
	}
}

func TestController_Duration(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	c := NewController(Options{Now: func() time.Time { return now }})
	lesson := exercise.Lesson{Exercises: []exercise.Exercise{
		{Type: exercise.TypeTyping, Question: "Type", CorrectAnswer: "ja"},
	}}
	c.Start(ctx, lesson)
	now = now.Add(90 * time.Second)
	c.SubmitAnswer(ctx, "ja")
	c.Advance(ctx)

	sum, err := c.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if sum.Duration != 90*time.Second {
		t.Errorf("duration = %v, want 90s", sum.Duration)
	}
}
