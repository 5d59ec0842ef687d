package lessons

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

// Week is how far back a weekly summary looks.
const Week = 7 * 24 * time.Hour

// WeeklySummary aggregates the sessions finished in the last week.
type WeeklySummary struct {
	Sessions    int
	Completed   int
	Minutes     int
	XP          int
	AvgAccuracy int

	// Improvement is the mean accuracy of the later half of the week's
	// sessions minus the earlier half, in percentage points.
	Improvement float64
}

// SummarizeWeek builds the summary for the week ending at now. Sessions
// outside the window are ignored, so sums may be any superset.
func SummarizeWeek(sums []store.SessionSummaryRecord, now time.Time) WeeklySummary {
	from := now.Add(-Week)
	week := lo.Filter(sums, func(s store.SessionSummaryRecord, _ int) bool {
		return !s.Timestamp.Before(from) && !s.Timestamp.After(now)
	})

	w := WeeklySummary{Sessions: len(week)}
	if w.Sessions == 0 {
		return w
	}
	w.Completed = lo.CountBy(week, func(s store.SessionSummaryRecord) bool { return s.Phase == "completed" })
	w.Minutes = lo.SumBy(week, func(s store.SessionSummaryRecord) int { return s.DurationSecs }) / 60
	w.XP = lo.SumBy(week, func(s store.SessionSummaryRecord) int { return s.XP })
	w.AvgAccuracy = lo.SumBy(week, func(s store.SessionSummaryRecord) int { return s.Accuracy }) / w.Sessions
	w.Improvement = ImprovementRate(week)
	return w
}

// ImprovementRate compares the mean accuracy of the later half of sums
// against the earlier half, ordered by timestamp. An odd middle session
// counts toward the later half. Fewer than two sessions give 0.
func ImprovementRate(sums []store.SessionSummaryRecord) float64 {
	if len(sums) < 2 {
		return 0
	}
	ordered := append([]store.SessionSummaryRecord(nil), sums...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})
	mid := len(ordered) / 2
	diff := meanAccuracy(ordered[mid:]) - meanAccuracy(ordered[:mid])
	return math.Round(diff*100) / 100
}

func meanAccuracy(sums []store.SessionSummaryRecord) float64 {
	total := lo.SumBy(sums, func(s store.SessionSummaryRecord) int { return s.Accuracy })
	return float64(total) / float64(len(sums))
}

// LoadWeek reads the last week of sessions from r and summarizes them.
func LoadWeek(ctx context.Context, r HistoryReader, now time.Time) (WeeklySummary, error) {
	sums, err := r.QuerySessionSummaries(ctx, store.QueryOpts{From: now.Add(-Week)})
	if err != nil {
		return WeeklySummary{}, fmt.Errorf("load week: %w", err)
	}
	return SummarizeWeek(sums, now), nil
}
