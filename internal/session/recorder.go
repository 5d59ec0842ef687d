package session

import (
	"context"
	"fmt"
	"time"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/store"
)

// EventAppender is the subset of store.EventRepo the recorder writes to.
type EventAppender interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
	AppendHintEvent(ctx context.Context, data store.HintEventData) error
}

// GemCounter reports the gem collection totals for the snapshot.
// *gems.Service satisfies it.
type GemCounter interface {
	SnapshotData(ctx context.Context) (*store.GemsSnapshot, error)
}

// snapshotsKept bounds the snapshot table.
const snapshotsKept = 10

// EventRecorder persists session events and keeps the progress snapshot
// current.
type EventRecorder struct {
	events    EventAppender
	snapshots store.SnapshotRepo
	gems      GemCounter
	now       func() time.Time
}

// NewEventRecorder creates a recorder. snapshots may be nil to skip
// progress tracking.
func NewEventRecorder(events EventAppender, snapshots store.SnapshotRepo) *EventRecorder {
	return &EventRecorder{events: events, snapshots: snapshots, now: time.Now}
}

// WithGems folds gem totals into every saved snapshot. The gem recorder
// must run before this one so the totals include the finished session.
func (r *EventRecorder) WithGems(g GemCounter) *EventRecorder {
	r.gems = g
	return r
}

func (r *EventRecorder) Started(ctx context.Context, info StartInfo) error {
	return r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     info.SessionID,
		Action:        "start",
		LessonTitle:   info.LessonTitle,
		Language:      info.Language,
		ExerciseCount: info.ExerciseCount,
	})
}

func (r *EventRecorder) Hinted(ctx context.Context, info HintInfo) error {
	return r.events.AppendHintEvent(ctx, store.HintEventData{
		SessionID:     info.SessionID,
		ExerciseID:    info.ExerciseID,
		ExerciseType:  string(info.ExerciseType),
		HintText:      info.Hint,
		HintsUsed:     info.HintsUsed,
		ExerciseHints: info.ExerciseHints,
	})
}

func (r *EventRecorder) Finished(ctx context.Context, report Report) error {
	sum := report.Summary
	for _, o := range report.Outcomes {
		err := r.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:      sum.SessionID,
			ExerciseID:     o.ExerciseID,
			ExerciseType:   string(o.ExerciseType),
			Language:       sum.Language,
			ExpectedAnswer: o.Expected,
			LearnerAnswer:  o.Answer,
			Correct:        o.Correct,
			Score:          o.Score,
			Attempt:        o.Attempt,
			HintsUsed:      o.HintsUsed,
			Mistake:        string(o.Mistake),
		})
		if err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
	}

	err := r.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     sum.SessionID,
		Action:        "end",
		LessonTitle:   sum.LessonTitle,
		Language:      sum.Language,
		ExerciseCount: sum.ExerciseCount,
		Phase:         sum.Phase.String(),
		CorrectCount:  sum.CorrectCount,
		TotalCount:    sum.TotalCount,
		Accuracy:      sum.AccuracyPercent,
		XP:            sum.XP,
		HintsUsed:     sum.HintsUsed,
		LessonScore:   sum.LessonScore,
		DurationSecs:  int(sum.Duration.Seconds()),
	})
	if err != nil {
		return fmt.Errorf("record session end: %w", err)
	}

	if r.snapshots == nil {
		return nil
	}
	return r.updateProgress(ctx, sum)
}

func (r *EventRecorder) updateProgress(ctx context.Context, sum Summary) error {
	prev, err := r.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	data := store.SnapshotData{Version: 1}
	if prev != nil {
		data = prev.Data
	}
	p := ApplyToProgress(data.Progress, sum, r.now())
	data.Progress = &p
	if r.gems != nil {
		g, err := r.gems.SnapshotData(ctx)
		if err != nil {
			return fmt.Errorf("count gems: %w", err)
		}
		data.Gems = g
	}

	err = r.snapshots.Save(ctx, &store.Snapshot{
		SessionID: sum.SessionID,
		Timestamp: r.now(),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return r.snapshots.Prune(ctx, snapshotsKept)
}

// ApplyToProgress folds a finished session into the running totals. Any
// finished session counts as practice for the day streak; a gap of more
// than one calendar day resets it.
func ApplyToProgress(prev *store.ProgressSnapshot, sum Summary, now time.Time) store.ProgressSnapshot {
	var p store.ProgressSnapshot
	if prev != nil {
		p = *prev
	}
	byLang := make(map[string]int, len(p.ByLanguage)+1)
	for k, v := range p.ByLanguage {
		byLang[k] = v
	}
	p.ByLanguage = byLang

	p.TotalXP += sum.XP
	switch sum.Phase {
	case PhaseCompleted:
		p.SessionsCompleted++
	case PhaseFailed:
		p.SessionsFailed++
	}
	if sum.Language != "" {
		p.ByLanguage[sum.Language]++
	}

	today := now.Format(time.DateOnly)
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)
	switch p.LastPracticeDay {
	case today:
		if p.DayStreak == 0 {
			p.DayStreak = 1
		}
	case yesterday:
		p.DayStreak++
	default:
		p.DayStreak = 1
	}
	p.LastPracticeDay = today
	p.BestDayStreak = max(p.BestDayStreak, p.DayStreak)
	return p
}
