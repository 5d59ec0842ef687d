package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/Yusuprozimemet/TyporaX-AI/ent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	mistake := data.Mistake
	if mistake == "" {
		mistake = "none"
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetExerciseID(data.ExerciseID).
		SetExerciseType(data.ExerciseType).
		SetLanguage(data.Language).
		SetExpectedAnswer(data.ExpectedAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetScore(data.Score).
		SetAttempt(data.Attempt).
		SetHintsUsed(data.HintsUsed).
		SetMistake(mistake).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnswers(ctx context.Context, sessionID string) ([]AnswerEventRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	records := make([]AnswerEventRecord, len(events))
	for i, e := range events {
		records[i] = AnswerEventRecord{
			AnswerEventData: AnswerEventData{
				SessionID:      e.SessionID,
				ExerciseID:     e.ExerciseID,
				ExerciseType:   e.ExerciseType,
				Language:       e.Language,
				ExpectedAnswer: e.ExpectedAnswer,
				LearnerAnswer:  e.LearnerAnswer,
				Correct:        e.Correct,
				Score:          e.Score,
				Attempt:        e.Attempt,
				HintsUsed:      e.HintsUsed,
				Mistake:        e.Mistake,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) MistakeCounts(ctx context.Context, opts QueryOpts) (map[string]int, error) {
	query := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(false))
	if opts.After > 0 {
		query = query.Where(answerevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		query = query.Where(answerevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(answerevent.TimestampLTE(opts.To))
	}

	var rows []struct {
		Mistake string `json:"mistake"`
		Count   int    `json:"count"`
	}
	err := query.
		GroupBy(answerevent.FieldMistake).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query mistake counts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Mistake] = row.Count
	}
	return counts, nil
}

func (r *eventRepo) AccuracyByType(ctx context.Context) ([]TypeAccuracy, error) {
	var rows []struct {
		ExerciseType string `json:"exercise_type"`
		Total        int    `json:"total"`
		Correct      int    `json:"correct"`
	}
	err := r.client.AnswerEvent.Query().
		GroupBy(answerevent.FieldExerciseType).
		Aggregate(
			ent.As(ent.Count(), "total"),
			func(s *sql.Selector) string {
				return sql.As(fmt.Sprintf("SUM(CASE WHEN %s THEN 1 ELSE 0 END)", s.C(answerevent.FieldCorrect)), "correct")
			},
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query accuracy by type: %w", err)
	}

	out := make([]TypeAccuracy, len(rows))
	for i, row := range rows {
		out[i] = TypeAccuracy{ExerciseType: row.ExerciseType, Total: row.Total, Correct: row.Correct}
	}
	return out, nil
}
