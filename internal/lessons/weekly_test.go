package lessons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

var weekNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(d float64) time.Time {
	return weekNow.Add(-time.Duration(d * float64(24*time.Hour)))
}

func TestSummarizeWeek(t *testing.T) {
	sums := []store.SessionSummaryRecord{
		{Timestamp: daysAgo(0.5), Phase: "completed", Accuracy: 90, XP: 30, DurationSecs: 600},
		{Timestamp: daysAgo(2), Phase: "failed", Accuracy: 40, XP: 5, DurationSecs: 300},
		{Timestamp: daysAgo(5), Phase: "completed", Accuracy: 70, XP: 20, DurationSecs: 420},
		{Timestamp: daysAgo(6), Phase: "completed", Accuracy: 60, XP: 15, DurationSecs: 180},
		{Timestamp: daysAgo(9), Phase: "completed", Accuracy: 100, XP: 50, DurationSecs: 900},
	}

	w := SummarizeWeek(sums, weekNow)
	if w.Sessions != 4 || w.Completed != 3 {
		t.Errorf("sessions = %d completed = %d, want 4 and 3", w.Sessions, w.Completed)
	}
	if w.Minutes != 25 {
		t.Errorf("minutes = %d, want 25", w.Minutes)
	}
	if w.XP != 70 {
		t.Errorf("xp = %d, want 70", w.XP)
	}
	if w.AvgAccuracy != 65 {
		t.Errorf("avg accuracy = %d, want 65", w.AvgAccuracy)
	}
	// oldest first: 60 70 | 40 90
	if w.Improvement != 0 {
		t.Errorf("improvement = %v, want 0", w.Improvement)
	}
}

func TestSummarizeWeek_Empty(t *testing.T) {
	w := SummarizeWeek(nil, weekNow)
	if w != (WeeklySummary{}) {
		t.Errorf("empty week = %+v", w)
	}

	old := []store.SessionSummaryRecord{{Timestamp: daysAgo(8), Accuracy: 80}}
	if w := SummarizeWeek(old, weekNow); w.Sessions != 0 {
		t.Errorf("sessions outside the week counted: %+v", w)
	}
}

func TestImprovementRate(t *testing.T) {
	tests := []struct {
		name string
		accs []int // oldest first
		want float64
	}{
		{"none", nil, 0},
		{"single", []int{80}, 0},
		{"rising", []int{50, 60, 80, 90}, 30},
		{"falling", []int{90, 70}, -20},
		{"odd count", []int{50, 60, 70}, 15},
		{"rounded", []int{0, 0, 0, 1, 1, 2}, 1.33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// newest first, as the store returns them
			var sums []store.SessionSummaryRecord
			for i := len(tt.accs) - 1; i >= 0; i-- {
				sums = append(sums, store.SessionSummaryRecord{
					Timestamp: daysAgo(float64(len(tt.accs) - i)),
					Accuracy:  tt.accs[i],
				})
			}
			if got := ImprovementRate(sums); got != tt.want {
				t.Errorf("ImprovementRate = %v, want %v", got, tt.want)
			}
		})
	}
}

type weekReader struct {
	fakeHistory
	from time.Time
}

func (w *weekReader) QuerySessionSummaries(ctx context.Context, opts store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	w.from = opts.From
	return w.fakeHistory.QuerySessionSummaries(ctx, opts)
}

func TestLoadWeek(t *testing.T) {
	r := &weekReader{fakeHistory: fakeHistory{sums: []store.SessionSummaryRecord{
		{Timestamp: daysAgo(1), Phase: "completed", Accuracy: 80, XP: 25, DurationSecs: 240},
	}}}

	w, err := LoadWeek(context.Background(), r, weekNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.from.Equal(weekNow.Add(-Week)) {
		t.Errorf("queried from %v, want %v", r.from, weekNow.Add(-Week))
	}
	if w.Sessions != 1 || w.XP != 25 || w.Minutes != 4 {
		t.Errorf("week = %+v", w)
	}

	r.err = errors.New("db closed")
	if _, err := LoadWeek(context.Background(), r, weekNow); err == nil {
		t.Error("expected error from reader")
	}
}
