// Code generated by ent, DO NOT EDIT.

package journalevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gwcare/glowy/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EntryID applies equality check predicate on the "entry_id" field. It's identical to EntryIDEQ.
func EntryID(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldEntryID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldDate, v))
}

// TimeOfDay applies equality check predicate on the "time_of_day" field. It's identical to TimeOfDayEQ.
func TimeOfDay(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldTimeOfDay, v))
}

// Emotion applies equality check predicate on the "emotion" field. It's identical to EmotionEQ.
func Emotion(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldEmotion, v))
}

// Intensity applies equality check predicate on the "intensity" field. It's identical to IntensityEQ.
func Intensity(v int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldIntensity, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldNote, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EntryIDEQ applies the EQ predicate on the "entry_id" field.
func EntryIDEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldEntryID, v))
}

// EntryIDNEQ applies the NEQ predicate on the "entry_id" field.
func EntryIDNEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldEntryID, v))
}

// EntryIDIn applies the In predicate on the "entry_id" field.
func EntryIDIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldEntryID, vs...))
}

// EntryIDNotIn applies the NotIn predicate on the "entry_id" field.
func EntryIDNotIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldEntryID, vs...))
}

// EntryIDGT applies the GT predicate on the "entry_id" field.
func EntryIDGT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldEntryID, v))
}

// EntryIDGTE applies the GTE predicate on the "entry_id" field.
func EntryIDGTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldEntryID, v))
}

// EntryIDLT applies the LT predicate on the "entry_id" field.
func EntryIDLT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldEntryID, v))
}

// EntryIDLTE applies the LTE predicate on the "entry_id" field.
func EntryIDLTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldEntryID, v))
}

// EntryIDContains applies the Contains predicate on the "entry_id" field.
func EntryIDContains(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContains(FieldEntryID, v))
}

// EntryIDHasPrefix applies the HasPrefix predicate on the "entry_id" field.
func EntryIDHasPrefix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasPrefix(FieldEntryID, v))
}

// EntryIDHasSuffix applies the HasSuffix predicate on the "entry_id" field.
func EntryIDHasSuffix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasSuffix(FieldEntryID, v))
}

// EntryIDEqualFold applies the EqualFold predicate on the "entry_id" field.
func EntryIDEqualFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEqualFold(FieldEntryID, v))
}

// EntryIDContainsFold applies the ContainsFold predicate on the "entry_id" field.
func EntryIDContainsFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContainsFold(FieldEntryID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContainsFold(FieldDate, v))
}

// TimeOfDayEQ applies the EQ predicate on the "time_of_day" field.
func TimeOfDayEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldTimeOfDay, v))
}

// TimeOfDayNEQ applies the NEQ predicate on the "time_of_day" field.
func TimeOfDayNEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldTimeOfDay, v))
}

// TimeOfDayIn applies the In predicate on the "time_of_day" field.
func TimeOfDayIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldTimeOfDay, vs...))
}

// TimeOfDayNotIn applies the NotIn predicate on the "time_of_day" field.
func TimeOfDayNotIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldTimeOfDay, vs...))
}

// TimeOfDayGT applies the GT predicate on the "time_of_day" field.
func TimeOfDayGT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldTimeOfDay, v))
}

// TimeOfDayGTE applies the GTE predicate on the "time_of_day" field.
func TimeOfDayGTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldTimeOfDay, v))
}

// TimeOfDayLT applies the LT predicate on the "time_of_day" field.
func TimeOfDayLT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldTimeOfDay, v))
}

// TimeOfDayLTE applies the LTE predicate on the "time_of_day" field.
func TimeOfDayLTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldTimeOfDay, v))
}

// TimeOfDayContains applies the Contains predicate on the "time_of_day" field.
func TimeOfDayContains(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContains(FieldTimeOfDay, v))
}

// TimeOfDayHasPrefix applies the HasPrefix predicate on the "time_of_day" field.
func TimeOfDayHasPrefix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasPrefix(FieldTimeOfDay, v))
}

// TimeOfDayHasSuffix applies the HasSuffix predicate on the "time_of_day" field.
func TimeOfDayHasSuffix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasSuffix(FieldTimeOfDay, v))
}

// TimeOfDayEqualFold applies the EqualFold predicate on the "time_of_day" field.
func TimeOfDayEqualFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEqualFold(FieldTimeOfDay, v))
}

// TimeOfDayContainsFold applies the ContainsFold predicate on the "time_of_day" field.
func TimeOfDayContainsFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContainsFold(FieldTimeOfDay, v))
}

// EmotionEQ applies the EQ predicate on the "emotion" field.
func EmotionEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldEmotion, v))
}

// EmotionNEQ applies the NEQ predicate on the "emotion" field.
func EmotionNEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldEmotion, v))
}

// EmotionIn applies the In predicate on the "emotion" field.
func EmotionIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldEmotion, vs...))
}

// EmotionNotIn applies the NotIn predicate on the "emotion" field.
func EmotionNotIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldEmotion, vs...))
}

// EmotionGT applies the GT predicate on the "emotion" field.
func EmotionGT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldEmotion, v))
}

// EmotionGTE applies the GTE predicate on the "emotion" field.
func EmotionGTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldEmotion, v))
}

// EmotionLT applies the LT predicate on the "emotion" field.
func EmotionLT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldEmotion, v))
}

// EmotionLTE applies the LTE predicate on the "emotion" field.
func EmotionLTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldEmotion, v))
}

// EmotionContains applies the Contains predicate on the "emotion" field.
func EmotionContains(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContains(FieldEmotion, v))
}

// EmotionHasPrefix applies the HasPrefix predicate on the "emotion" field.
func EmotionHasPrefix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasPrefix(FieldEmotion, v))
}

// EmotionHasSuffix applies the HasSuffix predicate on the "emotion" field.
func EmotionHasSuffix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasSuffix(FieldEmotion, v))
}

// EmotionEqualFold applies the EqualFold predicate on the "emotion" field.
func EmotionEqualFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEqualFold(FieldEmotion, v))
}

// EmotionContainsFold applies the ContainsFold predicate on the "emotion" field.
func EmotionContainsFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContainsFold(FieldEmotion, v))
}

// IntensityEQ applies the EQ predicate on the "intensity" field.
func IntensityEQ(v int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldIntensity, v))
}

// IntensityNEQ applies the NEQ predicate on the "intensity" field.
func IntensityNEQ(v int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldIntensity, v))
}

// IntensityIn applies the In predicate on the "intensity" field.
func IntensityIn(vs ...int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldIntensity, vs...))
}

// IntensityNotIn applies the NotIn predicate on the "intensity" field.
func IntensityNotIn(vs ...int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldIntensity, vs...))
}

// IntensityGT applies the GT predicate on the "intensity" field.
func IntensityGT(v int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldIntensity, v))
}

// IntensityGTE applies the GTE predicate on the "intensity" field.
func IntensityGTE(v int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldIntensity, v))
}

// IntensityLT applies the LT predicate on the "intensity" field.
func IntensityLT(v int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldIntensity, v))
}

// IntensityLTE applies the LTE predicate on the "intensity" field.
func IntensityLTE(v int) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldIntensity, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldHasSuffix(FieldNote, v))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.JournalEvent {
	return predicate.JournalEvent(sql.FieldContainsFold(FieldNote, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JournalEvent) predicate.JournalEvent {
	return predicate.JournalEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JournalEvent) predicate.JournalEvent {
	return predicate.JournalEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JournalEvent) predicate.JournalEvent {
	return predicate.JournalEvent(sql.NotPredicates(p))
}
