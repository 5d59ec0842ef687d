package store

import (
	"context"
	"fmt"

	"github.com/Yusuprozimemet/TyporaX-AI/ent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/gemevent"
)

func (r *eventRepo) AppendGemEvent(ctx context.Context, data GemEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.GemEvent.Create().
		SetSequence(seqNum).
		SetGemType(gemevent.GemType(data.GemType)).
		SetRarity(gemevent.Rarity(data.Rarity)).
		SetLanguage(data.Language).
		SetSessionID(data.SessionID).
		SetReason(data.Reason)

	if data.LessonTitle != nil {
		builder = builder.SetLessonTitle(*data.LessonTitle)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save gem event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGemEvents(ctx context.Context, opts QueryOpts) ([]GemEventRecord, error) {
	query := r.client.GemEvent.Query().
		Order(ent.Desc(gemevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(gemevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(gemevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(gemevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(gemevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query gem events: %w", err)
	}

	records := make([]GemEventRecord, len(events))
	for i, e := range events {
		records[i] = GemEventRecord{
			GemType:     string(e.GemType),
			Rarity:      string(e.Rarity),
			Language:    e.Language,
			LessonTitle: e.LessonTitle,
			SessionID:   e.SessionID,
			Reason:      e.Reason,
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) GemCounts(ctx context.Context) (map[string]int, int, error) {
	var rows []struct {
		GemType string `json:"gem_type"`
		Count   int    `json:"count"`
	}
	err := r.client.GemEvent.Query().
		GroupBy(gemevent.FieldGemType).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, 0, fmt.Errorf("query gem counts: %w", err)
	}

	byType := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		byType[row.GemType] = row.Count
		total += row.Count
	}
	return byType, total, nil
}
