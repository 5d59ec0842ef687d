package history

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

func openRepo(t *testing.T) store.EventRepo {
	t.Helper()
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st.EventRepo()
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(openRepo(t))
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 30), "No lessons yet") {
		t.Error("expected the empty message")
	}
}

func TestHistoryScreen_ListsAndExpands(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()
	err := repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     "s-1",
		Action:        "end",
		LessonTitle:   "Greetings",
		Language:      "dutch",
		ExerciseCount: 4,
		Phase:         "completed",
		CorrectCount:  4,
		TotalCount:    5,
		Accuracy:      80,
		XP:            45,
		LessonScore:   94,
		DurationSecs:  125,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendGemEvent(ctx, store.GemEventData{GemType: "session", Rarity: "rare", SessionID: "s-1", Reason: "Finished Greetings"}); err != nil {
		t.Fatal(err)
	}

	s := New(repo)
	s.Update(s.Init()())
	view := s.View(120, 30)
	for _, want := range []string{"dutch", "2:05", "80%", "+45 XP", "1 gem"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view = s.View(120, 30)
	if !strings.Contains(view, "Greetings") || !strings.Contains(view, "Finished Greetings") {
		t.Error("expanded view should show lesson details and gems")
	}
}
