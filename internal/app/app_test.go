package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/router"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/home"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/screens/welcome"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

func TestNewAppModel_StartsOnWelcome(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Fatalf("active = %T, want *welcome.WelcomeScreen", m.router.Active())
	}

	m = newAppModel(Options{SkipWelcome: true})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("active = %T, want *home.HomeScreen", m.router.Active())
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestAppModel_EscIsLeftToScreens(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	m.router.Push(home.New(home.Options{}))

	model, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if d := model.(AppModel).router.Depth(); d != 2 {
		t.Errorf("depth after esc = %d, want 2", d)
	}
}

func TestAppModel_FooterHints(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	hints := m.footerHints(m.router.Active())
	if len(hints) != 3 || hints[0].Description != "Navigate" {
		t.Errorf("root hints = %+v", hints)
	}

	m.router.Push(home.New(home.Options{}))
	hints = m.footerHints(m.router.Active())
	if len(hints) != 2 || hints[0].Key != "Esc" {
		t.Errorf("nested hints = %+v", hints)
	}
}

func TestAppModel_HeaderFromSnapshot(t *testing.T) {
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	err = st.SnapshotRepo().Save(context.Background(), &store.Snapshot{
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:  1,
			Progress: &store.ProgressSnapshot{TotalXP: 120, DayStreak: 4},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	m := newAppModel(Options{SkipWelcome: true, Home: home.Options{Snapshots: st.SnapshotRepo()}})
	msg := m.loadHeader()()
	got, ok := msg.(headerMsg)
	if !ok || got.XP != 120 || got.DayStreak != 4 {
		t.Fatalf("header = %#v", msg)
	}

	model, _ := m.Update(got)
	if h := model.(AppModel).header; h.XP != 120 {
		t.Errorf("header after update = %+v", h)
	}
}

func TestAppModel_PopReloadsHeader(t *testing.T) {
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	m := newAppModel(Options{SkipWelcome: true, Home: home.Options{Snapshots: st.SnapshotRepo()}})
	m.router.Push(home.New(home.Options{}))

	_, cmd := m.Update(router.PopScreenMsg{})
	if cmd == nil {
		t.Fatal("expected header reload command after pop")
	}
	if d := m.router.Depth(); d != 1 {
		t.Errorf("depth after pop = %d, want 1", d)
	}
}

func TestAppModel_NoSnapshotsNoHeaderLoad(t *testing.T) {
	m := newAppModel(Options{SkipWelcome: true})
	if cmd := m.loadHeader(); cmd != nil {
		t.Error("loadHeader without a snapshot repo should be nil")
	}
}
