package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/router"
	sessionscreen "github.com/Yusuprozimemet/TyporaX-AI/internal/screens/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

type snapRepo struct{ snap *store.Snapshot }

func (r *snapRepo) Save(context.Context, *store.Snapshot) error { return nil }
func (r *snapRepo) Latest(context.Context) (*store.Snapshot, error) {
	return r.snap, nil
}
func (r *snapRepo) Prune(context.Context, int) error { return nil }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestHomeScreen_DefaultLanguage(t *testing.T) {
	h := New(Options{Practice: sessionscreen.Options{Language: "japanese"}})
	if h.Language() != "japanese" {
		t.Errorf("Language = %q, want japanese", h.Language())
	}

	h = New(Options{})
	if h.Language() != "dutch" {
		t.Errorf("Language = %q, want dutch", h.Language())
	}
}

func TestHomeScreen_CycleLanguage(t *testing.T) {
	h := New(Options{Practice: sessionscreen.Options{Language: "dutch"}})

	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyRight))
	if h.Language() != "english" {
		t.Errorf("Language = %q, want english", h.Language())
	}
	if !strings.Contains(h.menu.Items[itemLanguage].Label, "ENGLISH") {
		t.Errorf("label = %q", h.menu.Items[itemLanguage].Label)
	}

	h.Update(specialKey(tea.KeyEnter))
	if h.Language() != "chinese" {
		t.Errorf("Language = %q, want chinese", h.Language())
	}
}

func TestHomeScreen_StartLessonPushesSession(t *testing.T) {
	h := New(Options{})
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("expected session screen, got %T", msg.Screen)
	}
}

func TestHomeScreen_NoEventsDisablesHistory(t *testing.T) {
	h := New(Options{})
	if !h.menu.Items[itemHistory].Disabled || !h.menu.Items[itemGems].Disabled {
		t.Error("history and gem vault need an event store")
	}
}

func TestHomeScreen_RefreshLoadsStats(t *testing.T) {
	repo := &snapRepo{snap: &store.Snapshot{Data: store.SnapshotData{
		Progress: &store.ProgressSnapshot{TotalXP: 120, DayStreak: 3},
		Gems:     &store.GemsSnapshot{Total: 5},
	}}}
	h := New(Options{Snapshots: repo})

	h.Update(h.Refresh()())
	if h.stats != (stats{XP: 120, DayStreak: 3, Gems: 5}) {
		t.Errorf("stats = %+v", h.stats)
	}
	if !strings.Contains(h.View(120, 40), "120 XP") {
		t.Error("view should show total XP")
	}
}

func TestMascotFor(t *testing.T) {
	tests := []struct {
		streak int
		want   MascotVariant
	}{
		{0, MascotIdle},
		{1, MascotPracticing},
		{6, MascotPracticing},
		{7, MascotCelebrating},
	}
	for _, tt := range tests {
		if got := mascotFor(tt.streak); got != tt.want {
			t.Errorf("mascotFor(%d) = %v, want %v", tt.streak, got, tt.want)
		}
	}
}
