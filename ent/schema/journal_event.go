package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JournalEvent records one emotion check-in.
type JournalEvent struct {
	ent.Schema
}

func (JournalEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (JournalEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("entry_id").
			NotEmpty().
			Unique().
			Comment("UUID of the entry"),
		field.String("date").
			NotEmpty().
			Comment("Calendar date of the check-in (YYYY-MM-DD)"),
		field.String("time_of_day").
			NotEmpty().
			Comment("morning, noon, or evening"),
		field.String("emotion").
			NotEmpty().
			Comment("joy, sadness, anger, calm, or anxiety"),
		field.Int("intensity").
			Comment("1 (faint) to 5 (overwhelming)"),
		field.String("note").
			Default("").
			Comment("Free-text note"),
	}
}

func (JournalEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
		index.Fields("emotion"),
	}
}
