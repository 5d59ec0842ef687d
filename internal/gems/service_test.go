package gems

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/session"
	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

type mockRepo struct {
	gemEvents []store.GemEventData
	counts    map[string]int
	total     int
	err       error
}

func (m *mockRepo) AppendGemEvent(_ context.Context, data store.GemEventData) error {
	if m.err != nil {
		return m.err
	}
	m.gemEvents = append(m.gemEvents, data)
	return nil
}

func (m *mockRepo) GemCounts(_ context.Context) (map[string]int, int, error) {
	return m.counts, m.total, nil
}

func newTestService() (*Service, *mockRepo) {
	repo := &mockRepo{
		counts: map[string]int{"session": 3, "streak": 2},
		total:  5,
	}
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func report(phase session.Phase, correct, total, best, exercises int) session.Report {
	return session.Report{Summary: session.Summary{
		SessionID:       "sess-1",
		LessonTitle:     "Bij de huisarts",
		Language:        "dutch",
		Phase:           phase,
		CorrectCount:    correct,
		TotalCount:      total,
		AccuracyPercent: session.Accuracy(correct, total),
		BestStreak:      best,
		ExerciseCount:   exercises,
	}}
}

func TestEvaluate_PerfectLesson(t *testing.T) {
	awards := Evaluate(report(session.PhaseCompleted, 6, 6, 6, 6), time.Now())

	if len(awards) != 3 {
		t.Fatalf("got %d awards, want 3: %+v", len(awards), awards)
	}
	want := []GemType{GemStreak, GemSession, GemPerfect}
	for i, w := range want {
		if awards[i].Type != w {
			t.Errorf("awards[%d].Type = %q, want %q", i, awards[i].Type, w)
		}
	}
	if awards[1].Rarity != RarityLegendary {
		t.Errorf("session rarity = %q, want legendary", awards[1].Rarity)
	}
	if awards[2].Rarity != RarityEpic {
		t.Errorf("perfect rarity = %q, want epic", awards[2].Rarity)
	}
}

func TestEvaluate_CompletedWithMistakes(t *testing.T) {
	awards := Evaluate(report(session.PhaseCompleted, 4, 6, 2, 4), time.Now())

	if len(awards) != 1 {
		t.Fatalf("got %d awards, want 1: %+v", len(awards), awards)
	}
	if awards[0].Type != GemSession || awards[0].Rarity != RarityRare {
		t.Errorf("award = %s/%s, want session/rare", awards[0].Type, awards[0].Rarity)
	}
}

func TestEvaluate_FailedKeepsStreakOnly(t *testing.T) {
	awards := Evaluate(report(session.PhaseFailed, 5, 8, 5, 10), time.Now())

	if len(awards) != 1 || awards[0].Type != GemStreak {
		t.Fatalf("awards = %+v, want one streak gem", awards)
	}
	if awards[0].Reason != "5 correct in a row!" {
		t.Errorf("reason = %q", awards[0].Reason)
	}
}

func TestEvaluate_ShortStreakNoGem(t *testing.T) {
	awards := Evaluate(report(session.PhaseFailed, 4, 7, 4, 10), time.Now())
	if len(awards) != 0 {
		t.Errorf("awards = %+v, want none", awards)
	}
}

func TestService_FinishedPersists(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if err := svc.Started(ctx, session.StartInfo{SessionID: "sess-1"}); err != nil {
		t.Fatalf("Started: %v", err)
	}
	if err := svc.Finished(ctx, report(session.PhaseCompleted, 3, 3, 3, 3)); err != nil {
		t.Fatalf("Finished: %v", err)
	}

	if len(repo.gemEvents) != 2 {
		t.Fatalf("persisted %d events, want 2", len(repo.gemEvents))
	}
	ev := repo.gemEvents[0]
	if ev.GemType != "session" || ev.SessionID != "sess-1" || ev.Language != "dutch" {
		t.Errorf("event = %+v", ev)
	}
	if ev.LessonTitle == nil || *ev.LessonTitle != "Bij de huisarts" {
		t.Error("persisted event missing lesson title")
	}

	got := svc.SessionGems("sess-1")
	if len(got) != 2 {
		t.Fatalf("SessionGems = %d, want 2", len(got))
	}
	if !got[0].AwardedAt.Equal(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("AwardedAt = %v", got[0].AwardedAt)
	}
	if len(svc.SessionGems("other")) != 0 {
		t.Error("unknown session should have no gems")
	}
}

func TestService_PersistError(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("disk full")

	err := svc.Finished(context.Background(), report(session.PhaseCompleted, 3, 3, 3, 3))
	if err == nil {
		t.Fatal("expected error")
	}
	// Awards stay visible even when persistence fails.
	if len(svc.SessionGems("sess-1")) != 2 {
		t.Error("awards should be cached before persisting")
	}
}

func TestService_NilRepo(t *testing.T) {
	svc := NewService(nil, nil)
	if err := svc.Finished(context.Background(), report(session.PhaseCompleted, 1, 1, 1, 1)); err != nil {
		t.Fatalf("Finished: %v", err)
	}
	snap, err := svc.SnapshotData(context.Background())
	if err != nil {
		t.Fatalf("SnapshotData: %v", err)
	}
	if snap.Total != 0 {
		t.Errorf("Total = %d, want 0", snap.Total)
	}
}

func TestService_SessionCacheBounded(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	for i := 0; i < sessionsKept+5; i++ {
		r := report(session.PhaseCompleted, 1, 1, 1, 1)
		r.Summary.SessionID = time.Duration(i).String()
		if err := svc.Finished(ctx, r); err != nil {
			t.Fatal(err)
		}
	}
	if len(svc.byID) != sessionsKept {
		t.Errorf("cached %d sessions, want %d", len(svc.byID), sessionsKept)
	}
	if len(svc.SessionGems(time.Duration(0).String())) != 0 {
		t.Error("oldest session should have been evicted")
	}
}

func TestSnapshotData(t *testing.T) {
	svc, _ := newTestService()
	snap, err := svc.SnapshotData(context.Background())
	if err != nil {
		t.Fatalf("SnapshotData: %v", err)
	}
	if snap.Total != 5 {
		t.Errorf("Total = %d, want 5", snap.Total)
	}
	if snap.Counts["session"] != 3 {
		t.Errorf("Counts[session] = %d, want 3", snap.Counts["session"])
	}
}

var _ session.Recorder = (*Service)(nil)
