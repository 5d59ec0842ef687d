package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events of one session attempt"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("lesson_title").
			Default(""),
		field.String("language").
			Default(""),
		field.Int("exercise_count").
			Default(0),
		field.String("phase").
			Default("").
			Comment("completed or failed (on end only)"),
		field.Int("correct_count").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("total_count").
			Default(0).
			Comment("Total answers (on end only)"),
		field.Int("accuracy").
			Default(0).
			Comment("Accuracy percent (on end only)"),
		field.Int("xp").
			Default(0).
			Comment("XP earned (on end only)"),
		field.Int("hints_used").
			Default(0),
		field.Int("lesson_score").
			Default(0).
			Comment("Attempt-weighted score (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
