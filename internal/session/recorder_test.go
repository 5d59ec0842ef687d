package session

import (
	"context"
	"testing"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

func TestEventRecorder_PersistsSession(t *testing.T) {
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	ctx := context.Background()

	rec := NewEventRecorder(st.EventRepo(), st.SnapshotRepo())
	c := NewController(Options{Recorder: rec})
	if err := c.Start(ctx, twoWordLesson()); err != nil {
		t.Fatal(err)
	}
	c.RequestHint(ctx)
	c.SubmitAnswer(ctx, "hallo")
	c.Advance(ctx)
	c.SubmitAnswer(ctx, "dax")
	c.SubmitAnswer(ctx, "dag")
	c.Advance(ctx)

	sums, err := st.EventRepo().QuerySessionSummaries(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 1 {
		t.Fatalf("summaries = %d, want 1", len(sums))
	}
	if sums[0].SessionID != c.SessionID() || sums[0].Accuracy != 67 || sums[0].XP != 20 || sums[0].Phase != "completed" {
		t.Errorf("summary = %+v", sums[0])
	}

	answers, err := st.EventRepo().QueryAnswers(ctx, c.SessionID())
	if err != nil {
		t.Fatal(err)
	}
	if len(answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(answers))
	}
	if answers[0].HintsUsed != 1 || answers[0].Language != "dutch" {
		t.Errorf("answer[0] = %+v", answers[0])
	}
	if answers[1].Mistake != "spelling" {
		t.Errorf("answer[1] mistake = %q, want spelling", answers[1].Mistake)
	}

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil || snap == nil || snap.Data.Progress == nil {
		t.Fatalf("snapshot = %+v, %v", snap, err)
	}
	if snap.Data.Progress.TotalXP != 20 || snap.Data.Progress.SessionsCompleted != 1 {
		t.Errorf("progress = %+v", snap.Data.Progress)
	}
	if snap.SessionID != c.SessionID() {
		t.Errorf("snapshot session = %q, want %q", snap.SessionID, c.SessionID())
	}

	hints, err := st.EventRepo().HintCounts(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if hints["typing"] != 1 {
		t.Errorf("hint counts = %v, want typing 1", hints)
	}
}

func TestApplyToProgress_DayStreak(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 10, d, 12, 0, 0, 0, time.Local) }
	sum := Summary{Phase: PhaseCompleted, XP: 10, Language: "dutch"}

	p := ApplyToProgress(nil, sum, day(10))
	if p.DayStreak != 1 || p.TotalXP != 10 {
		t.Fatalf("first day = %+v", p)
	}
	p = ApplyToProgress(&p, sum, day(10))
	if p.DayStreak != 1 || p.TotalXP != 20 || p.ByLanguage["dutch"] != 2 {
		t.Errorf("same day = %+v", p)
	}
	p = ApplyToProgress(&p, sum, day(11))
	if p.DayStreak != 2 {
		t.Errorf("next day streak = %d, want 2", p.DayStreak)
	}
	failed := Summary{Phase: PhaseFailed}
	p = ApplyToProgress(&p, failed, day(14))
	if p.DayStreak != 1 || p.BestDayStreak != 2 || p.SessionsFailed != 1 || p.SessionsCompleted != 3 {
		t.Errorf("after gap = %+v", p)
	}
}

type fixedGems struct{ total int }

func (f fixedGems) SnapshotData(context.Context) (*store.GemsSnapshot, error) {
	return &store.GemsSnapshot{Counts: map[string]int{"session": f.total}, Total: f.total}, nil
}

func TestEventRecorder_FoldsGems(t *testing.T) {
	st, err := store.Open("file:recorder_gems?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	ctx := context.Background()

	rec := NewEventRecorder(st.EventRepo(), st.SnapshotRepo()).WithGems(fixedGems{total: 4})
	c := NewController(Options{Recorder: rec})
	if err := c.Start(ctx, twoWordLesson()); err != nil {
		t.Fatal(err)
	}
	c.SubmitAnswer(ctx, "hallo")
	c.Advance(ctx)
	c.SubmitAnswer(ctx, "dag")
	c.Advance(ctx)

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil || snap == nil {
		t.Fatalf("snapshot = %+v, %v", snap, err)
	}
	if snap.Data.Gems == nil || snap.Data.Gems.Total != 4 {
		t.Errorf("gems = %+v, want total 4", snap.Data.Gems)
	}
}
