package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin gives every practice event its place in the global order.
// Sequences come from the store's global_sequence counter and start at 1,
// so a zero sequence means the caller forgot to allocate one.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Positive().
			Unique().
			Immutable().
			Comment("Position in the store-wide event order, shared by all event tables"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("Local time the event was written"),
	}
}

// Indexes serve the two history reads: time windows (weekly stats,
// mistakes since a session) ordered newest first by sequence.
// The unique constraint already indexes sequence on its own.
func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp", "sequence"),
	}
}
