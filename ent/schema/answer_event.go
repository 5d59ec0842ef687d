package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records the graded outcome of one submission within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("exercise_id").
			NotEmpty().
			Comment("Exercise identifier within the lesson, e.g. ex_1"),
		field.String("exercise_type").
			NotEmpty().
			Comment("typing, fill_blank, word_order, matching or an unknown tag"),
		field.String("language").
			Default("").
			Comment("Target language of the lesson"),
		field.String("expected_answer").
			Default("").
			Comment("The canonical correct answer"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner entered"),
		field.Bool("correct").
			Comment("Whether the answer was accepted"),
		field.Int("score").
			Default(0).
			Comment("Similarity score 0-100 for free-text kinds"),
		field.Int("attempt").
			Default(1).
			Comment("1-based attempt number for this exercise"),
		field.Int("hints_used").
			Default(0).
			Comment("Session hint counter at the time of the answer"),
		field.String("mistake").
			Default("none").
			Comment("Mistake category from the classifier"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("exercise_type"),
		index.Fields("correct"),
		index.Fields("mistake"),
	}
}
