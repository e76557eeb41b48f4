// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gwcare/glowy/ent/journalevent"
)

// JournalEvent is the model entity for the JournalEvent schema.
type JournalEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the entry
	EntryID string `json:"entry_id,omitempty"`
	// Calendar date of the check-in (YYYY-MM-DD)
	Date string `json:"date,omitempty"`
	// morning, noon, or evening
	TimeOfDay string `json:"time_of_day,omitempty"`
	// joy, sadness, anger, calm, or anxiety
	Emotion string `json:"emotion,omitempty"`
	// 1 (faint) to 5 (overwhelming)
	Intensity int `json:"intensity,omitempty"`
	// Free-text note
	Note         string `json:"note,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JournalEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case journalevent.FieldID, journalevent.FieldSequence, journalevent.FieldIntensity:
			values[i] = new(sql.NullInt64)
		case journalevent.FieldEntryID, journalevent.FieldDate, journalevent.FieldTimeOfDay, journalevent.FieldEmotion, journalevent.FieldNote:
			values[i] = new(sql.NullString)
		case journalevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JournalEvent fields.
func (_m *JournalEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case journalevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case journalevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case journalevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case journalevent.FieldEntryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entry_id", values[i])
			} else if value.Valid {
				_m.EntryID = value.String
			}
		case journalevent.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case journalevent.FieldTimeOfDay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_of_day", values[i])
			} else if value.Valid {
				_m.TimeOfDay = value.String
			}
		case journalevent.FieldEmotion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field emotion", values[i])
			} else if value.Valid {
				_m.Emotion = value.String
			}
		case journalevent.FieldIntensity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intensity", values[i])
			} else if value.Valid {
				_m.Intensity = int(value.Int64)
			}
		case journalevent.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JournalEvent.
// This includes values selected through modifiers, order, etc.
func (_m *JournalEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this JournalEvent.
// Note that you need to call JournalEvent.Unwrap() before calling this method if this JournalEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JournalEvent) Update() *JournalEventUpdateOne {
	return NewJournalEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JournalEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JournalEvent) Unwrap() *JournalEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JournalEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JournalEvent) String() string {
	var builder strings.Builder
	builder.WriteString("JournalEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("entry_id=")
	builder.WriteString(_m.EntryID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("time_of_day=")
	builder.WriteString(_m.TimeOfDay)
	builder.WriteString(", ")
	builder.WriteString("emotion=")
	builder.WriteString(_m.Emotion)
	builder.WriteString(", ")
	builder.WriteString("intensity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Intensity))
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteByte(')')
	return builder.String()
}

// JournalEvents is a parsable slice of JournalEvent.
type JournalEvents []*JournalEvent
