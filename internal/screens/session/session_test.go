package session

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/router"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/summary"
	sess "github.com/Yusuprozimemet/TyporaX-AI/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testLesson() exercise.Lesson {
	return exercise.Lesson{
		Title:    "Dutch Basics",
		Metadata: exercise.Metadata{Language: "dutch"},
		Exercises: []exercise.Exercise{
			{Type: exercise.TypeTyping, Question: "Translate: hello", CorrectAnswer: "hallo", Hints: []string{"Starts with h"}},
			{Type: exercise.TypeFillBlank, Question: "Ik ___ een student", CorrectAnswer: "ben", Options: []string{"ben", "bent", "is"}},
			{Type: exercise.TypeWordOrder, Question: "I live in Amsterdam", CorrectAnswer: "ik woon in amsterdam"},
			{Type: exercise.TypeMatching, Question: "Match the numbers", CorrectAnswer: "een=one,twee=two", Options: []string{"two", "one", "three"}},
		},
	}
}

// startScreen returns a screen with testLesson loaded.
func startScreen(t *testing.T, opts Options) *SessionScreen {
	t.Helper()
	l := testLesson()
	opts.Lesson = &l
	s := New(opts)
	msg := s.Init()()
	if _, ok := msg.(lessonReadyMsg); !ok {
		t.Fatalf("expected lessonReadyMsg, got %T", msg)
	}
	s.Update(msg)
	if s.ctrl == nil {
		t.Fatalf("lesson did not start: %s", s.errMsg)
	}
	return s
}

func typeText(s *SessionScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func enter(s *SessionScreen) tea.Cmd {
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	return cmd
}

func currentState(t *testing.T, s *SessionScreen) sess.State {
	t.Helper()
	st, err := s.ctrl.State()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	return st
}

// solveCurrent answers the current exercise correctly through the widgets.
func solveCurrent(t *testing.T, s *SessionScreen) {
	t.Helper()
	ex, err := s.ctrl.Current()
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	switch ex.Kind() {
	case exercise.KindFillBlank:
		for i, opt := range ex.Options {
			if opt == ex.CorrectAnswer {
				s.Update(keyPress(rune('1' + i)))
			}
		}
	case exercise.KindWordOrder:
		for _, word := range strings.Fields(ex.CorrectAnswer) {
			for i, tok := range s.input.tokens.Pool {
				if tok == word && !strings.Contains(" "+s.input.tokens.Value()+" ", " "+tok+" ") {
					s.input.tokens.Cursor = i
					break
				}
			}
			s.Update(keyPress(' '))
		}
	case exercise.KindMatching:
		pairs, _ := exercise.ParsePairs(ex.CorrectAnswer)
		for row, p := range pairs {
			for range s.input.pairs.Options {
				s.Update(specialKey(tea.KeyRight))
				if strings.Contains(","+s.input.pairs.Value()+",", ","+p.String()+",") {
					break
				}
			}
			if row < len(pairs)-1 {
				s.Update(specialKey(tea.KeyDown))
			}
		}
	default:
		typeText(s, ex.CorrectAnswer)
	}
	enter(s)
	if s.feedback == nil || !s.feedback.Result.Correct {
		t.Fatalf("exercise %s: expected a correct verdict, input %q", ex.ID, func() string { v, _ := s.input.Value(); return v }())
	}
}

func TestSessionScreen_LoadsLesson(t *testing.T) {
	s := startScreen(t, Options{})
	if s.Title() != "Dutch Basics" {
		t.Errorf("Title = %q, want %q", s.Title(), "Dutch Basics")
	}
	if !strings.Contains(s.View(100, 30), "Translate: hello") {
		t.Error("view should show the first question")
	}
}

func TestSessionScreen_FallbackWithoutGenerator(t *testing.T) {
	s := New(Options{Language: "dutch", Topic: "general"})
	msg, ok := s.Init()().(lessonReadyMsg)
	if !ok {
		t.Fatal("expected lessonReadyMsg")
	}
	if msg.Lesson.Len() == 0 {
		t.Error("fallback lesson should have exercises")
	}
}

func TestSessionScreen_CorrectAnswerAdvances(t *testing.T) {
	s := startScreen(t, Options{})

	typeText(s, "hallo")
	enter(s)
	if !s.solved() {
		t.Fatal("expected the exercise to be solved")
	}
	if st := currentState(t, s); st.XP != sess.BaseXP {
		t.Errorf("XP = %d, want %d", st.XP, sess.BaseXP)
	}

	enter(s)
	if st := currentState(t, s); st.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", st.Cursor)
	}
	if s.feedback != nil {
		t.Error("feedback should clear on advance")
	}
	if s.input.kind != exercise.KindFillBlank {
		t.Errorf("input kind = %v, want fill_blank", s.input.kind)
	}
}

func TestSessionScreen_WrongAnswerCostsLife(t *testing.T) {
	s := startScreen(t, Options{})

	typeText(s, "goodbye")
	enter(s)
	if s.feedback == nil || s.feedback.Result.Correct {
		t.Fatal("expected a wrong verdict")
	}
	st := currentState(t, s)
	if st.Lives != sess.DefaultMaxLives-1 {
		t.Errorf("Lives = %d, want %d", st.Lives, sess.DefaultMaxLives-1)
	}

	// Enter retries rather than advancing.
	enter(s)
	if st := currentState(t, s); st.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", st.Cursor)
	}
}

func TestSessionScreen_EmptyAnswerNotSubmitted(t *testing.T) {
	s := startScreen(t, Options{})
	enter(s)
	if s.inputErr == "" {
		t.Error("expected an input error")
	}
	if st := currentState(t, s); st.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", st.TotalCount)
	}
}

func TestSessionScreen_Hint(t *testing.T) {
	s := startScreen(t, Options{})

	s.Update(ctrlKey('h'))
	if s.hint != "Starts with h" {
		t.Errorf("hint = %q, want %q", s.hint, "Starts with h")
	}

	s.Update(keyPress('?'))
	if st := currentState(t, s); st.HintsUsed != 2 {
		t.Errorf("HintsUsed = %d, want 2", st.HintsUsed)
	}
}

func TestSessionScreen_QuestionMarkTypesWhenInputHasText(t *testing.T) {
	s := startScreen(t, Options{})
	typeText(s, "wat?")
	if st := currentState(t, s); st.HintsUsed != 0 {
		t.Errorf("HintsUsed = %d, want 0", st.HintsUsed)
	}
	if v, _ := s.input.Value(); v != "wat?" {
		t.Errorf("input = %q, want %q", v, "wat?")
	}
}

func TestSessionScreen_FullLessonShowsSummary(t *testing.T) {
	g := gems.NewService(nil, nil)
	s := startScreen(t, Options{Gems: g, Session: sess.Options{Recorder: g}})

	var cmd tea.Cmd
	for i := 0; i < 4; i++ {
		solveCurrent(t, s)
		cmd = enter(s)
	}
	if cmd == nil {
		t.Fatal("expected a command after the last exercise")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	scr, ok := push.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("expected summary screen, got %T", push.Screen)
	}
	view := scr.View(100, 40)
	if !strings.Contains(view, "Lesson complete!") {
		t.Error("summary should report completion")
	}
	if !strings.Contains(view, "Perfect") {
		t.Error("a flawless lesson should earn a perfect gem")
	}
}

func TestSessionScreen_OutOfLives(t *testing.T) {
	s := startScreen(t, Options{Session: sess.Options{MaxLives: 1}})

	typeText(s, "nope")
	enter(s)
	if !s.failed() {
		t.Fatal("expected the session to fail")
	}

	cmd := enter(s)
	if cmd == nil {
		t.Fatal("expected summary after failing")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestSessionScreen_RestartResets(t *testing.T) {
	s := startScreen(t, Options{})
	solveCurrent(t, s)
	first := s.ctrl.SessionID()

	s.Update(restartMsg{})

	st := currentState(t, s)
	if st.Cursor != 0 || st.XP != 0 {
		t.Errorf("state not reset: cursor=%d xp=%d", st.Cursor, st.XP)
	}
	if s.ctrl.SessionID() == first {
		t.Error("restart should start a new session")
	}
	if s.feedback != nil {
		t.Error("feedback should clear on restart")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := startScreen(t, Options{})

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Fatal("n should cancel the confirmation")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command on confirm")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestSessionScreen_InvalidLesson(t *testing.T) {
	s := New(Options{Lesson: &exercise.Lesson{Title: "empty"}})
	s.Update(s.Init()())
	if s.errMsg == "" {
		t.Fatal("expected an error for an empty lesson")
	}
	_, cmd := s.Update(keyPress('x'))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("any key should go back from the error view")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := startScreen(t, Options{})
	if hints := s.KeyHints(); len(hints) != 4 {
		t.Errorf("KeyHints length = %d, want 4", len(hints))
	}
	solveCurrent(t, s)
	if hints := s.KeyHints(); hints[0].Description != "Next" {
		t.Errorf("first hint = %q, want Next", hints[0].Description)
	}
}
