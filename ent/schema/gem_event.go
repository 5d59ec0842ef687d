package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GemEvent records a gem earned at the end of a practice session.
type GemEvent struct {
	ent.Schema
}

func (GemEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GemEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("gem_type").
			Values("streak", "session", "perfect"),
		field.Enum("rarity").
			Values("common", "rare", "epic", "legendary"),
		field.String("language").
			Default("").
			Comment("Practice language of the session, empty for older rows"),
		field.String("lesson_title").Optional().Nillable(),
		field.String("session_id").NotEmpty(),
		field.String("reason").NotEmpty(),
	}
}

func (GemEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("gem_type", "rarity"),
		index.Fields("session_id"),
		index.Fields("language"),
	}
}
