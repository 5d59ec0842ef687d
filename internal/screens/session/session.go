package session

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/exercise"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/lessons"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/router"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screen"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/summary"
	sess "github.com/Yusuprozimemet/TyporaX-AI/internal/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/layout"
)

// Options wires a practice screen.
type Options struct {
	// Lessons generates lessons; nil plays the built-in lesson.
	Lessons *lessons.Service

	// History tailors generated lessons to recent mistakes.
	History lessons.HistoryReader

	// Gems lists the awards of a finished session on the summary.
	Gems *gems.Service

	// Session configures the controller, recorder and speaker included.
	Session sess.Options

	Language string
	Topic    string

	// Lesson, when set, is played instead of generating one.
	Lesson *exercise.Lesson
}

// SessionScreen implements screen.Screen for a practice session.
type SessionScreen struct {
	opts   Options
	ctrl   *sess.Controller
	logger *zap.Logger

	input    answerInput
	feedback *sess.Feedback
	hint     string
	notice   string
	inputErr string
	errMsg   string

	confirmQuit bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a practice screen. The lesson is loaded by Init.
func New(opts Options) *SessionScreen {
	logger := opts.Session.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionScreen{opts: opts, logger: logger}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.loadLesson()
}

func (s *SessionScreen) Title() string {
	if s.ctrl != nil && s.ctrl.Started() {
		return s.ctrl.Lesson().Title
	}
	return "Practice"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.ctrl == nil:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep going"},
		}
	case s.solved():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+R", Description: "Replay audio"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Ctrl+H", Description: "Hint"},
		{Key: "Ctrl+R", Description: "Replay audio"},
		{Key: "Esc", Description: "Quit"},
	}
}

// solved reports whether the current exercise was answered correctly and
// is waiting for the learner to move on.
func (s *SessionScreen) solved() bool {
	return s.feedback != nil && s.feedback.Result.Correct
}

// failed reports whether the last answer cost the final life.
func (s *SessionScreen) failed() bool {
	return s.feedback != nil && s.feedback.State.Phase == sess.PhaseFailed
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		return s.handleLessonReady(msg)

	case restartMsg:
		if s.ctrl == nil {
			return s, nil
		}
		if err := s.ctrl.Restart(context.Background()); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, s.resetExercise()

	case nextLessonMsg:
		s.ctrl = nil
		s.feedback = nil
		s.notice = ""
		s.opts.Lesson = nil
		return s, s.loadLesson()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.ctrl != nil && !s.solved() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// loadLesson resolves the lesson to play: an explicit lesson, a prefetched
// one, a generated one or the built-in fallback.
func (s *SessionScreen) loadLesson() tea.Cmd {
	opts := s.opts
	logger := s.logger
	return func() tea.Msg {
		if opts.Lesson != nil {
			return lessonReadyMsg{Lesson: *opts.Lesson}
		}
		if opts.Lessons == nil {
			return lessonReadyMsg{Lesson: lessons.Fallback(opts.Language, opts.Topic)}
		}

		lang, _ := lessons.LookupLanguage(opts.Language)
		if g, ok := opts.Lessons.ConsumeLesson(); ok && g.Lesson.Metadata.Language == lang.Name {
			return readyFrom(*g)
		}

		ctx := context.Background()
		analysis, err := lessons.AnalyzeHistory(ctx, opts.History, lang.Name)
		if err != nil {
			logger.Warn("analyze history", zap.Error(err))
		}
		return readyFrom(opts.Lessons.Generate(ctx, lessons.Request{
			Language: opts.Language,
			Topic:    opts.Topic,
			Analysis: analysis,
		}))
	}
}

func readyFrom(g lessons.Generated) lessonReadyMsg {
	msg := lessonReadyMsg{Lesson: g.Lesson}
	if g.Cause != nil {
		msg.Notice = "The lesson generator is unavailable, so here is a built-in lesson."
		if errors.Is(g.Cause, lessons.ErrNoProvider) {
			msg.Notice = "No LLM is configured, so here is a built-in lesson."
		}
	}
	return msg
}

func (s *SessionScreen) handleLessonReady(msg lessonReadyMsg) (screen.Screen, tea.Cmd) {
	ctrl := sess.NewController(s.opts.Session)
	if err := ctrl.Start(context.Background(), msg.Lesson); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.ctrl = ctrl
	s.notice = msg.Notice
	return s, s.resetExercise()
}

// resetExercise prepares the widgets for the controller's current exercise.
func (s *SessionScreen) resetExercise() tea.Cmd {
	s.feedback = nil
	s.hint = ""
	s.inputErr = ""
	ex, err := s.ctrl.Current()
	if err != nil {
		return nil
	}
	s.input = newAnswerInput(ex)
	return s.input.Init()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, popScreen
	}
	if s.ctrl == nil {
		if key == "esc" {
			return s, popScreen
		}
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, popScreen
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.failed() {
		if key == "enter" || key == "esc" {
			return s, s.showSummary()
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "ctrl+r":
		if err := s.ctrl.Replay(); err != nil {
			s.logger.Debug("replay", zap.Error(err))
		}
		return s, nil
	}

	if s.solved() {
		switch key {
		case "enter", "n", "ctrl+n", "space":
			return s.advance()
		}
		return s, nil
	}

	switch key {
	case "ctrl+h":
		return s.requestHint()
	case "?":
		if s.input.Empty() || !s.input.kind.FreeText() {
			return s.requestHint()
		}
	case "enter":
		return s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		s.inputErr = ""
	}
	return s, cmd
}

func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	raw, ready := s.input.Value()
	if !ready {
		s.inputErr = incompleteMessage(s.input.kind)
		return s, nil
	}

	fb, err := s.ctrl.SubmitAnswer(context.Background(), raw)
	if err != nil {
		if errors.Is(err, exercise.ErrPairFormat) {
			s.inputErr = "Write each match as left=right."
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.feedback = fb
	s.inputErr = ""
	s.input.Mark(fb.Result.Correct)
	return s, nil
}

func incompleteMessage(k exercise.Kind) string {
	switch k {
	case exercise.KindWordOrder:
		return "Place every word first."
	case exercise.KindMatching:
		return "Match every item first."
	default:
		return "Type an answer first."
	}
}

func (s *SessionScreen) requestHint() (screen.Screen, tea.Cmd) {
	hint, ok, err := s.ctrl.RequestHint(context.Background())
	switch {
	case err != nil:
		s.errMsg = err.Error()
	case !ok:
		s.hint = "No hints for this one."
	default:
		s.hint = hint
	}
	return s, nil
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	next, err := s.ctrl.Advance(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if next == nil {
		return s, s.showSummary()
	}
	s.notice = ""
	return s, s.resetExercise()
}

// showSummary pushes the summary screen and starts fetching the next
// lesson in the background.
func (s *SessionScreen) showSummary() tea.Cmd {
	sum, err := s.ctrl.Summary()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}

	var awards []gems.GemAward
	if s.opts.Gems != nil {
		awards = s.opts.Gems.SessionGems(sum.SessionID)
	}

	if s.opts.Lessons != nil && s.opts.Lesson == nil {
		s.opts.Lessons.RequestLesson(context.Background(), lessons.Request{
			Language: s.opts.Language,
			Topic:    s.opts.Topic,
		})
	}

	scr := summary.New(sum, awards, summary.Actions{
		Restart: func() tea.Msg { return restartMsg{} },
		Next:    func() tea.Msg { return nextLessonMsg{} },
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

func popScreen() tea.Msg {
	return router.PopScreenMsg{}
}
