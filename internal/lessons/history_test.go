package lessons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

type fakeHistory struct {
	sums     []store.SessionSummaryRecord
	counts   map[string]int
	err      error
	lastFrom time.Time
}

func (f *fakeHistory) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return f.sums, f.err
}

func (f *fakeHistory) MistakeCounts(_ context.Context, opts store.QueryOpts) (map[string]int, error) {
	f.lastFrom = opts.From
	return f.counts, nil
}

func TestAnalyzeHistory_NoHistory(t *testing.T) {
	a, err := AnalyzeHistory(context.Background(), &fakeHistory{}, "dutch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != nil {
		t.Errorf("expected nil analysis, got %+v", a)
	}

	a, err = AnalyzeHistory(context.Background(), nil, "dutch")
	if err != nil || a != nil {
		t.Errorf("nil reader: got %+v, %v", a, err)
	}
}

func TestAnalyzeHistory_FiltersLanguage(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h := &fakeHistory{
		sums: []store.SessionSummaryRecord{
			{Language: "dutch", CorrectCount: 9, TotalCount: 10, Timestamp: now},
			{Language: "english", CorrectCount: 0, TotalCount: 10, Timestamp: now.Add(-time.Hour)},
			{Language: "dutch", CorrectCount: 7, TotalCount: 10, Timestamp: now.Add(-2 * time.Hour)},
		},
		counts: map[string]int{"spelling": 3},
	}

	a, err := AnalyzeHistory(context.Background(), h, "dutch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == nil {
		t.Fatal("expected analysis")
	}
	if a.AccuracyPercent != 80 {
		t.Errorf("accuracy = %d, want 80", a.AccuracyPercent)
	}
	if a.Difficulty != Advanced {
		t.Errorf("difficulty = %s, want advanced", a.Difficulty)
	}
	if want := now.Add(-2*time.Hour - time.Minute); !h.lastFrom.Equal(want) {
		t.Errorf("mistakes from %v, want %v", h.lastFrom, want)
	}
}

func TestAnalyzeHistory_QueryError(t *testing.T) {
	_, err := AnalyzeHistory(context.Background(), &fakeHistory{err: errors.New("boom")}, "")
	if err == nil {
		t.Fatal("expected error")
	}
}
