// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "exercise_type", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "expected_answer", Type: field.TypeString, Default: ""},
		{Name: "learner_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "mistake", Type: field.TypeString, Default: "none"},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_timestamp_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2], AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_exercise_type",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
			{
				Name:    "answerevent_mistake",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[13]},
			},
		},
	}
	// GemEventsColumns holds the columns for the "gem_events" table.
	GemEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "gem_type", Type: field.TypeEnum, Enums: []string{"streak", "session", "perfect"}},
		{Name: "rarity", Type: field.TypeEnum, Enums: []string{"common", "rare", "epic", "legendary"}},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "lesson_title", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
	}
	// GemEventsTable holds the schema information for the "gem_events" table.
	GemEventsTable = &schema.Table{
		Name:       "gem_events",
		Columns:    GemEventsColumns,
		PrimaryKey: []*schema.Column{GemEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gemevent_timestamp_sequence",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[2], GemEventsColumns[1]},
			},
			{
				Name:    "gemevent_gem_type_rarity",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[3], GemEventsColumns[4]},
			},
			{
				Name:    "gemevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[7]},
			},
			{
				Name:    "gemevent_language",
				Unique:  false,
				Columns: []*schema.Column{GemEventsColumns[5]},
			},
		},
	}
	// HintEventsColumns holds the columns for the "hint_events" table.
	HintEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "exercise_type", Type: field.TypeString, Default: ""},
		{Name: "hint_text", Type: field.TypeString},
		{Name: "hints_used", Type: field.TypeInt},
		{Name: "exercise_hints", Type: field.TypeInt, Default: 0},
	}
	// HintEventsTable holds the schema information for the "hint_events" table.
	HintEventsTable = &schema.Table{
		Name:       "hint_events",
		Columns:    HintEventsColumns,
		PrimaryKey: []*schema.Column{HintEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintevent_timestamp_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[2], HintEventsColumns[1]},
			},
			{
				Name:    "hintevent_session_id_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[3], HintEventsColumns[4]},
			},
			{
				Name:    "hintevent_exercise_type",
				Unique:  false,
				Columns: []*schema.Column{HintEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2], LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "lesson_title", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "exercise_count", Type: field.TypeInt},
		{Name: "fallback", Type: field.TypeBool},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "document", Type: field.TypeJSON},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_timestamp_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2], LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_language",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[4]},
			},
			{
				Name:    "lessonevent_fallback",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[8]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "lesson_title", Type: field.TypeString, Default: ""},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "exercise_count", Type: field.TypeInt, Default: 0},
		{Name: "phase", Type: field.TypeString, Default: ""},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "total_count", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeInt, Default: 0},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "lesson_score", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_timestamp_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2], SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_session_id",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		GemEventsTable,
		HintEventsTable,
		LlmRequestEventsTable,
		LessonEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
