package store

import (
	"context"
	"fmt"

	"github.com/Yusuprozimemet/TyporaX-AI/ent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/gemevent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetLessonTitle(data.LessonTitle).
		SetLanguage(data.Language).
		SetExerciseCount(data.ExerciseCount).
		SetPhase(data.Phase).
		SetCorrectCount(data.CorrectCount).
		SetTotalCount(data.TotalCount).
		SetAccuracy(data.Accuracy).
		SetXp(data.XP).
		SetHintsUsed(data.HintsUsed).
		SetLessonScore(data.LessonScore).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, len(events))
	for i, e := range events {
		gemCount, _ := r.client.GemEvent.Query().
			Where(gemevent.SessionID(e.SessionID)).
			Count(ctx)

		records[i] = SessionSummaryRecord{
			SessionID:    e.SessionID,
			Timestamp:    e.Timestamp,
			LessonTitle:  e.LessonTitle,
			Language:     e.Language,
			Phase:        e.Phase,
			CorrectCount: e.CorrectCount,
			TotalCount:   e.TotalCount,
			Accuracy:     e.Accuracy,
			XP:           e.Xp,
			HintsUsed:    e.HintsUsed,
			LessonScore:  e.LessonScore,
			DurationSecs: e.DurationSecs,
			GemCount:     gemCount,
		}
	}
	return records, nil
}
