// Code generated by ent, DO NOT EDIT.

package gemevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gemevent type in the database.
	Label = "gem_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldGemType holds the string denoting the gem_type field in the database.
	FieldGemType = "gem_type"
	// FieldRarity holds the string denoting the rarity field in the database.
	FieldRarity = "rarity"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldLessonTitle holds the string denoting the lesson_title field in the database.
	FieldLessonTitle = "lesson_title"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// Table holds the table name of the gemevent in the database.
	Table = "gem_events"
)

// Columns holds all SQL columns for gemevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldGemType,
	FieldRarity,
	FieldLanguage,
	FieldLessonTitle,
	FieldSessionID,
	FieldReason,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	SequenceValidator func(int64) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ReasonValidator func(string) error
)

// GemType defines the type for the "gem_type" enum field.
type GemType string

// GemType values.
const (
	GemTypeStreak  GemType = "streak"
	GemTypeSession GemType = "session"
	GemTypePerfect GemType = "perfect"
)

func (gt GemType) String() string {
	return string(gt)
}

// GemTypeValidator is a validator for the "gem_type" field enum values. It is called by the builders before save.
func GemTypeValidator(gt GemType) error {
	switch gt {
	case GemTypeStreak, GemTypeSession, GemTypePerfect:
		return nil
	default:
		return fmt.Errorf("gemevent: invalid enum value for gem_type field: %q", gt)
	}
}

// Rarity defines the type for the "rarity" enum field.
type Rarity string

// Rarity values.
const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) String() string {
	return string(r)
}

// RarityValidator is a validator for the "rarity" field enum values. It is called by the builders before save.
func RarityValidator(r Rarity) error {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return nil
	default:
		return fmt.Errorf("gemevent: invalid enum value for rarity field: %q", r)
	}
}

// OrderOption defines the ordering options for the GemEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByGemType orders the results by the gem_type field.
func ByGemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGemType, opts...).ToFunc()
}

// ByRarity orders the results by the rarity field.
func ByRarity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRarity, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByLessonTitle orders the results by the lesson_title field.
func ByLessonTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonTitle, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}
