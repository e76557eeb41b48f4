// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gwcare/glowy/ent/journalevent"
)

// JournalEventCreate is the builder for creating a JournalEvent entity.
type JournalEventCreate struct {
	config
	mutation *JournalEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *JournalEventCreate) SetSequence(v int64) *JournalEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *JournalEventCreate) SetTimestamp(v time.Time) *JournalEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *JournalEventCreate) SetNillableTimestamp(v *time.Time) *JournalEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetEntryID sets the "entry_id" field.
func (_c *JournalEventCreate) SetEntryID(v string) *JournalEventCreate {
	_c.mutation.SetEntryID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *JournalEventCreate) SetDate(v string) *JournalEventCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTimeOfDay sets the "time_of_day" field.
func (_c *JournalEventCreate) SetTimeOfDay(v string) *JournalEventCreate {
	_c.mutation.SetTimeOfDay(v)
	return _c
}

// SetEmotion sets the "emotion" field.
func (_c *JournalEventCreate) SetEmotion(v string) *JournalEventCreate {
	_c.mutation.SetEmotion(v)
	return _c
}

// SetIntensity sets the "intensity" field.
func (_c *JournalEventCreate) SetIntensity(v int) *JournalEventCreate {
	_c.mutation.SetIntensity(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *JournalEventCreate) SetNote(v string) *JournalEventCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *JournalEventCreate) SetNillableNote(v *string) *JournalEventCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// Mutation returns the JournalEventMutation object of the builder.
func (_c *JournalEventCreate) Mutation() *JournalEventMutation {
	return _c.mutation
}

// Save creates the JournalEvent in the database.
func (_c *JournalEventCreate) Save(ctx context.Context) (*JournalEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JournalEventCreate) SaveX(ctx context.Context) *JournalEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JournalEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JournalEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JournalEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := journalevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Note(); !ok {
		v := journalevent.DefaultNote
		_c.mutation.SetNote(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JournalEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "JournalEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "JournalEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EntryID(); !ok {
		return &ValidationError{Name: "entry_id", err: errors.New(`ent: missing required field "JournalEvent.entry_id"`)}
	}
	if v, ok := _c.mutation.EntryID(); ok {
		if err := journalevent.EntryIDValidator(v); err != nil {
			return &ValidationError{Name: "entry_id", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.entry_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "JournalEvent.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := journalevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeOfDay(); !ok {
		return &ValidationError{Name: "time_of_day", err: errors.New(`ent: missing required field "JournalEvent.time_of_day"`)}
	}
	if v, ok := _c.mutation.TimeOfDay(); ok {
		if err := journalevent.TimeOfDayValidator(v); err != nil {
			return &ValidationError{Name: "time_of_day", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.time_of_day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Emotion(); !ok {
		return &ValidationError{Name: "emotion", err: errors.New(`ent: missing required field "JournalEvent.emotion"`)}
	}
	if v, ok := _c.mutation.Emotion(); ok {
		if err := journalevent.EmotionValidator(v); err != nil {
			return &ValidationError{Name: "emotion", err: fmt.Errorf(`ent: validator failed for field "JournalEvent.emotion": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Intensity(); !ok {
		return &ValidationError{Name: "intensity", err: errors.New(`ent: missing required field "JournalEvent.intensity"`)}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "JournalEvent.note"`)}
	}
	return nil
}

func (_c *JournalEventCreate) sqlSave(ctx context.Context) (*JournalEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JournalEventCreate) createSpec() (*JournalEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &JournalEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(journalevent.Table, sqlgraph.NewFieldSpec(journalevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(journalevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(journalevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EntryID(); ok {
		_spec.SetField(journalevent.FieldEntryID, field.TypeString, value)
		_node.EntryID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(journalevent.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.TimeOfDay(); ok {
		_spec.SetField(journalevent.FieldTimeOfDay, field.TypeString, value)
		_node.TimeOfDay = value
	}
	if value, ok := _c.mutation.Emotion(); ok {
		_spec.SetField(journalevent.FieldEmotion, field.TypeString, value)
		_node.Emotion = value
	}
	if value, ok := _c.mutation.Intensity(); ok {
		_spec.SetField(journalevent.FieldIntensity, field.TypeInt, value)
		_node.Intensity = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(journalevent.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	return _node, _spec
}

// JournalEventCreateBulk is the builder for creating many JournalEvent entities in bulk.
type JournalEventCreateBulk struct {
	config
	err      error
	builders []*JournalEventCreate
}

// Save creates the JournalEvent entities in the database.
func (_c *JournalEventCreateBulk) Save(ctx context.Context) ([]*JournalEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JournalEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JournalEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JournalEventCreateBulk) SaveX(ctx context.Context) []*JournalEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JournalEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JournalEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
