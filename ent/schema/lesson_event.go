package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records that a lesson was generated or loaded from a fallback.
// The full lesson document is kept so it can be replayed later.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_title").NotEmpty(),
		field.String("language").NotEmpty(),
		field.String("topic").Default(""),
		field.String("difficulty").Default(""),
		field.Int("exercise_count"),
		field.Bool("fallback").
			Comment("True when the built-in lesson was used instead of the LLM"),
		field.String("model").
			Default("").
			Comment("Model that produced the lesson, empty for fallbacks"),
		field.JSON("document", map[string]any{}).
			Comment("Lesson document as JSON"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("language"),
		index.Fields("fallback"),
	}
}
