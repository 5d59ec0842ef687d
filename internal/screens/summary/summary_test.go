package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/gems"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/router"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
)

type restartMsg struct{}

func testSummary(phase session.Phase) session.Summary {
	return session.Summary{
		SessionID:       "s-1",
		LessonTitle:     "Dutch Basics",
		Language:        "dutch",
		Phase:           phase,
		CorrectCount:    4,
		TotalCount:      5,
		AccuracyPercent: 80,
		XP:              45,
		LivesLeft:       2,
		MaxLives:        3,
		BestStreak:      3,
		ExerciseCount:   4,
		Solved:          4,
		LessonScore:     94,
		Duration:        3*time.Minute + 5*time.Second,
	}
}

func testAwards() []gems.GemAward {
	return []gems.GemAward{
		{Type: gems.GemSession, Rarity: gems.RarityRare, Reason: "Finished Dutch Basics"},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(session.PhaseCompleted), nil, Actions{})
	if s.Title() != "Lesson Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lesson Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(session.PhaseCompleted), testAwards(), Actions{})
	view := s.View(100, 30)
	for _, want := range []string{"Lesson complete!", "Dutch Basics", "Accuracy: 80%", "+45 XP", "3:05", "Finished Dutch Basics"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_FailedHeadline(t *testing.T) {
	s := New(testSummary(session.PhaseFailed), nil, Actions{})
	if !strings.Contains(s.View(100, 30), "Out of lives!") {
		t.Error("failed session should say so")
	}
}

func TestSummaryScreen_EnterPopsToRoot(t *testing.T) {
	s := New(testSummary(session.PhaseCompleted), nil, Actions{})
	for _, key := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatal("expected a command")
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("expected PopToRootMsg, got %T", cmd())
		}
	}
}

func TestSummaryScreen_RestartNeedsAction(t *testing.T) {
	s := New(testSummary(session.PhaseCompleted), nil, Actions{})
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd != nil {
		t.Error("restart without an action should do nothing")
	}

	s = New(testSummary(session.PhaseCompleted), nil, Actions{
		Restart: func() tea.Msg { return restartMsg{} },
	})
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"}); cmd == nil {
		t.Error("expected a command on R")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(session.PhaseCompleted), nil, Actions{})
	if n := len(s.KeyHints()); n != 1 {
		t.Errorf("KeyHints length = %d, want 1", n)
	}

	s = New(testSummary(session.PhaseCompleted), nil, Actions{
		Restart: func() tea.Msg { return restartMsg{} },
		Next:    func() tea.Msg { return restartMsg{} },
	})
	if n := len(s.KeyHints()); n != 3 {
		t.Errorf("KeyHints length = %d, want 3", n)
	}
}
