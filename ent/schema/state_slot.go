package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// StateSlot holds one durable engine value keyed by slot name.
// The engine owns exactly one value per slot (assessment record, support
// plan, daily activity cache, user profile, subscription tier); writes
// replace the previous value wholesale, never merge.
type StateSlot struct {
	ent.Schema
}

func (StateSlot) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Slot name: assessment, plan, activities, profile, tier"),
		field.JSON("data", map[string]any{}).
			Comment("Slot value as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the slot was last written"),
	}
}
