package store

import (
	"context"
	"fmt"

	"github.com/Yusuprozimemet/TyporaX-AI/ent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/hintevent"
)

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetExerciseID(data.ExerciseID).
		SetExerciseType(data.ExerciseType).
		SetHintText(data.HintText).
		SetHintsUsed(data.HintsUsed).
		SetExerciseHints(data.ExerciseHints).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

// HintCounts groups hints by exercise type. Hints recorded without a
// type are counted under "".
func (r *eventRepo) HintCounts(ctx context.Context, opts QueryOpts) (map[string]int, error) {
	query := r.client.HintEvent.Query()
	if opts.After > 0 {
		query = query.Where(hintevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(hintevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(hintevent.TimestampLTE(opts.To))
	}

	var rows []struct {
		ExerciseType string `json:"exercise_type"`
		Count        int    `json:"count"`
	}
	err := query.
		GroupBy(hintevent.FieldExerciseType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query hint counts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ExerciseType] = row.Count
	}
	return counts, nil
}
