package lessons

import (
	"context"
	"fmt"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

// HistoryReader is the part of store.EventRepo lesson planning reads.
type HistoryReader interface {
	MistakeCounts(ctx context.Context, opts store.QueryOpts) (map[string]int, error)
	QuerySessionSummaries(ctx context.Context, opts store.QueryOpts) ([]store.SessionSummaryRecord, error)
}

// recentSessions is how many finished sessions feed one analysis.
const recentSessions = 5

// AnalyzeHistory plans the next lesson from the learner's recent sessions
// in language. It returns nil when there is nothing to go on yet.
func AnalyzeHistory(ctx context.Context, r HistoryReader, language string) (*Analysis, error) {
	if r == nil {
		return nil, nil
	}
	sums, err := r.QuerySessionSummaries(ctx, store.QueryOpts{Limit: recentSessions * 4})
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var correct, total int
	var oldest time.Time
	n := 0
	for _, s := range sums {
		if language != "" && s.Language != language {
			continue
		}
		correct += s.CorrectCount
		total += s.TotalCount
		oldest = s.Timestamp
		if n++; n == recentSessions {
			break
		}
	}
	if total == 0 {
		return nil, nil
	}

	// Answers are written just before the session end event.
	counts, err := r.MistakeCounts(ctx, store.QueryOpts{From: oldest.Add(-time.Minute)})
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}

	a := AnalyzeCounts(counts, correct*100/total)
	return &a, nil
}
