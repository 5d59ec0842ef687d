package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintEvent records one hint shown during a session. Hints are free, so
// these rows are the only trace of how much help an exercise needed.
type HintEvent struct {
	ent.Schema
}

func (HintEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("exercise_id").NotEmpty(),
		field.String("exercise_type").
			Default(""),
		field.String("hint_text").NotEmpty(),
		field.Int("hints_used").
			NonNegative().
			Comment("Session-wide hint count after this hint"),
		field.Int("exercise_hints").
			NonNegative().
			Default(0).
			Comment("Hints shown for this exercise so far, including this one"),
	}
}

func (HintEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "exercise_id"),
		index.Fields("exercise_type"),
	}
}
