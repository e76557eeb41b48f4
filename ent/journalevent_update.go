// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gwcare/glowy/ent/journalevent"
	"github.com/gwcare/glowy/ent/predicate"
)

// JournalEventUpdate is the builder for updating JournalEvent entities.
type JournalEventUpdate struct {
	config
	hooks    []Hook
	mutation *JournalEventMutation
}

// Where appends a list predicates to the JournalEventUpdate builder.
func (_u *JournalEventUpdate) Where(ps ...predicate.JournalEvent) *JournalEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntryID sets the "entry_id" field.
func (_u *JournalEventUpdate) SetEntryID(v string) *JournalEventUpdate {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *JournalEventUpdate) SetNillableEntryID(v *string) *JournalEventUpdate {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *JournalEventUpdate) SetDate(v string) *JournalEventUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *JournalEventUpdate) SetNillableDate(v *string) *JournalEventUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTimeOfDay sets the "time_of_day" field.
func (_u *JournalEventUpdate) SetTimeOfDay(v string) *JournalEventUpdate {
	_u.mutation.SetTimeOfDay(v)
	return _u
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_u *JournalEventUpdate) SetNillableTimeOfDay(v *string) *JournalEventUpdate {
	if v != nil {
		_u.SetTimeOfDay(*v)
	}
	return _u
}

// SetEmotion sets the "emotion" field.
func (_u *JournalEventUpdate) SetEmotion(v string) *JournalEventUpdate {
	_u.mutation.SetEmotion(v)
	return _u
}

// SetNillableEmotion sets the "emotion" field if the given value is not nil.
func (_u *JournalEventUpdate) SetNillableEmotion(v *string) *JournalEventUpdate {
	if v != nil {
		_u.SetEmotion(*v)
	}
	return _u
}

// SetIntensity sets the "intensity" field.
func (_u *JournalEventUpdate) SetIntensity(v int) *JournalEventUpdate {
	_u.mutation.ResetIntensity()
	_u.mutation.SetIntensity(v)
	return _u
}

// SetNillableIntensity sets the "intensity" field if the given value is not nil.
func (_u *JournalEventUpdate) SetNillableIntensity(v *int) *JournalEventUpdate {
	if v != nil {
		_u.SetIntensity(*v)
	}
	return _u
}

// AddIntensity adds value to the "intensity" field.
func (_u *JournalEventUpdate) AddIntensity(v int) *JournalEventUpdate {
	_u.mutation.AddIntensity(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *JournalEventUpdate) SetNote(v string) *JournalEventUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *JournalEventUpdate) SetNillableNote(v *string) *JournalEventUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// Mutation returns the JournalEventMutation object of the builder.
func (_u *JournalEventUpdate) Mutation() *JournalEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JournalEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JournalEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JournalEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JournalEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JournalEventUpdate) check() error {
	if v, ok := _u.mutation.EntryID(); ok {
		if err := journalevent.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := journalevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeOfDay(); ok {
		if err := journalevent.TimeOfDayValidator(v); err != nil {
			return &ValidationError{Name: "time_of_day", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.time_of_day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Emotion(); ok {
		if err := journalevent.EmotionValidator(v); err != nil {
			return &ValidationError{Name: "emotion", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.emotion": %w`, err)}
		}
	}
	return nil
}

func (_u *JournalEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journalevent.Table, journalevent.Columns, sqlgraph.NewFieldSpec(journalevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(journalevent.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(journalevent.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeOfDay(); ok {
		_spec.SetField(journalevent.FieldTimeOfDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Emotion(); ok {
		_spec.SetField(journalevent.FieldEmotion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intensity(); ok {
		_spec.SetField(journalevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensity(); ok {
		_spec.AddField(journalevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(journalevent.FieldNote, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journalevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JournalEventUpdateOne is the builder for updating a single JournalEvent entity.
type JournalEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JournalEventMutation
}

// SetEntryID sets the "entry_id" field.
func (_u *JournalEventUpdateOne) SetEntryID(v string) *JournalEventUpdateOne {
	_u.mutation.SetEntryID(v)
	return _u
}

// SetNillableEntryID sets the "entry_id" field if the given value is not nil.
func (_u *JournalEventUpdateOne) SetNillableEntryID(v *string) *JournalEventUpdateOne {
	if v != nil {
		_u.SetEntryID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *JournalEventUpdateOne) SetDate(v string) *JournalEventUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *JournalEventUpdateOne) SetNillableDate(v *string) *JournalEventUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTimeOfDay sets the "time_of_day" field.
func (_u *JournalEventUpdateOne) SetTimeOfDay(v string) *JournalEventUpdateOne {
	_u.mutation.SetTimeOfDay(v)
	return _u
}

// SetNillableTimeOfDay sets the "time_of_day" field if the given value is not nil.
func (_u *JournalEventUpdateOne) SetNillableTimeOfDay(v *string) *JournalEventUpdateOne {
	if v != nil {
		_u.SetTimeOfDay(*v)
	}
	return _u
}

// SetEmotion sets the "emotion" field.
func (_u *JournalEventUpdateOne) SetEmotion(v string) *JournalEventUpdateOne {
	_u.mutation.SetEmotion(v)
	return _u
}

// SetNillableEmotion sets the "emotion" field if the given value is not nil.
func (_u *JournalEventUpdateOne) SetNillableEmotion(v *string) *JournalEventUpdateOne {
	if v != nil {
		_u.SetEmotion(*v)
	}
	return _u
}

// SetIntensity sets the "intensity" field.
func (_u *JournalEventUpdateOne) SetIntensity(v int) *JournalEventUpdateOne {
	_u.mutation.ResetIntensity()
	_u.mutation.SetIntensity(v)
	return _u
}

// SetNillableIntensity sets the "intensity" field if the given value is not nil.
func (_u *JournalEventUpdateOne) SetNillableIntensity(v *int) *JournalEventUpdateOne {
	if v != nil {
		_u.SetIntensity(*v)
	}
	return _u
}

// AddIntensity adds value to the "intensity" field.
func (_u *JournalEventUpdateOne) AddIntensity(v int) *JournalEventUpdateOne {
	_u.mutation.AddIntensity(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *JournalEventUpdateOne) SetNote(v string) *JournalEventUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *JournalEventUpdateOne) SetNillableNote(v *string) *JournalEventUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// Mutation returns the JournalEventMutation object of the builder.
func (_u *JournalEventUpdateOne) Mutation() *JournalEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the JournalEventUpdate builder.
func (_u *JournalEventUpdateOne) Where(ps ...predicate.JournalEvent) *JournalEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JournalEventUpdateOne) Select(field string, fields ...string) *JournalEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JournalEvent entity.
func (_u *JournalEventUpdateOne) Save(ctx context.Context) (*JournalEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JournalEventUpdateOne) SaveX(ctx context.Context) *JournalEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JournalEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JournalEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JournalEventUpdateOne) check() error {
	if v, ok := _u.mutation.EntryID(); ok {
		if err := journalevent.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.entry_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := journalevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeOfDay(); ok {
		if err := journalevent.TimeOfDayValidator(v); err != nil {
			return &ValidationError{Name: "time_of_day", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.time_of_day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Emotion(); ok {
		if err := journalevent.EmotionValidator(v); err != nil {
			return &ValidationError{Name: "emotion", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.emotion": %w`, err)}
		}
	}
	return nil
}

func (_u *JournalEventUpdateOne) sqlSave(ctx context.Context) (_node *JournalEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(journalevent.Table, journalevent.Columns, sqlgraph.NewFieldSpec(journalevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JournalEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, journalevent.FieldID)
		for _, f := range fields {
			if !journalevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != journalevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntryID(); ok {
		_spec.SetField(journalevent.FieldEntryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(journalevent.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeOfDay(); ok {
		_spec.SetField(journalevent.FieldTimeOfDay, field.TypeString, value)
	}
	if value, ok := _u.mutation.Emotion(); ok {
		_spec.SetField(journalevent.FieldEmotion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intensity(); ok {
		_spec.SetField(journalevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensity(); ok {
		_spec.AddField(journalevent.FieldIntensity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(journalevent.FieldNote, field.TypeString, value)
	}
	_node = &JournalEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{journalevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
