// Code generated by ent, DO NOT EDIT.

package journalevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the journalevent type in the database.
	Label = "journal_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEntryID holds the string denoting the entry_id field in the database.
	FieldEntryID = "entry_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldTimeOfDay holds the string denoting the time_of_day field in the database.
	FieldTimeOfDay = "time_of_day"
	// FieldEmotion holds the string denoting the emotion field in the database.
	FieldEmotion = "emotion"
	// FieldIntensity holds the string denoting the intensity field in the database.
	FieldIntensity = "intensity"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// Table holds the table name of the journalevent in the database.
	Table = "journal_events"
)

// Columns holds all SQL columns for journalevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldEntryID,
	FieldDate,
	FieldTimeOfDay,
	FieldEmotion,
	FieldIntensity,
	FieldNote,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	EntryIDValidator func(string) error
	// DateValidator is a validator for the "date" field. It is called by the builders before save.
	DateValidator func(string) error
	// TimeOfDayValidator is a validator for the "time_of_day" field. It is called by the builders before save.
	TimeOfDayValidator func(string) error
	// EmotionValidator is a validator for the "emotion" field. It is called by the builders before save.
	EmotionValidator func(string) error
	// DefaultNote holds the default value on creation for the "note" field.
	DefaultNote string
)

// OrderOption defines the ordering options for the JournalEvent queries.
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

// ByEntryID orders the results by the entry_id field.
func ByEntryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntryID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByTimeOfDay orders the results by the time_of_day field.
func ByTimeOfDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeOfDay, opts...).ToFunc()
}

// ByEmotion orders the results by the emotion field.
func ByEmotion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmotion, opts...).ToFunc()
}

// ByIntensity orders the results by the intensity field.
func ByIntensity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntensity, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}
