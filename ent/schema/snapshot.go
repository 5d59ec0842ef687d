package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot holds the learner's running totals (XP, day streak, gems)
// after a session, so the header and stats never replay the event log.
// Rows are written once and pruned, never updated.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Default("").
			Immutable().
			Comment("Session whose end produced the snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.JSON("data", json.RawMessage{}).
			Immutable().
			Comment("store.SnapshotData, versioned by its own version key"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("session_id"),
	}
}
