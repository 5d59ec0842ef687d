package store

import (
	"context"
	"fmt"

	"github.com/Yusuprozimemet/TyporaX-AI/ent"
	"github.com/Yusuprozimemet/TyporaX-AI/ent/lessonevent"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) (int, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	doc := data.Document
	if doc == nil {
		doc = map[string]any{}
	}

	e, err := r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetLessonTitle(data.LessonTitle).
		SetLanguage(data.Language).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetExerciseCount(data.ExerciseCount).
		SetFallback(data.Fallback).
		SetModel(data.Model).
		SetDocument(doc).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save lesson event: %w", err)
	}
	return e.ID, nil
}

func (r *eventRepo) QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonRecord, error) {
	query := r.client.LessonEvent.Query().
		Order(ent.Desc(lessonevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(lessonevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(lessonevent.SequenceLT(opts.Before))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}

	records := make([]LessonRecord, len(events))
	for i, e := range events {
		records[i] = lessonRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetLesson(ctx context.Context, id int) (*LessonRecord, error) {
	e, err := r.client.LessonEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	rec := lessonRecord(e)
	return &rec, nil
}

func lessonRecord(e *ent.LessonEvent) LessonRecord {
	return LessonRecord{
		LessonEventData: LessonEventData{
			LessonTitle:   e.LessonTitle,
			Language:      e.Language,
			Topic:         e.Topic,
			Difficulty:    e.Difficulty,
			ExerciseCount: e.ExerciseCount,
			Fallback:      e.Fallback,
			Model:         e.Model,
			Document:      e.Document,
		},
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
	}
}
