package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records daily-activity cache events: a new batch being
// adopted for a date (generated or fallback) and per-item toggles.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("generated, fallback, or toggled"),
		field.String("date").
			NotEmpty().
			Comment("Calendar date key (YYYY-MM-DD)"),
		field.String("activity_id").
			Default("").
			Comment("Toggled activity id (on toggled only)"),
		field.Int("count").
			Default(0).
			Comment("Batch size (on generated/fallback only)"),
		field.Bool("completed").
			Default(false).
			Comment("New completed state (on toggled only)"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
		index.Fields("date"),
	}
}
