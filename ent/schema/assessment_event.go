package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records assessment lifecycle events (submit/retake).
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("submitted or retaken"),
		field.String("profile_key").
			Default("").
			Comment("Resolved profile (on submitted only)"),
		field.Int("score").
			Default(0).
			Comment("Total assessment score (on submitted only)"),
		field.Int("answered").
			Default(0).
			Comment("Number of scoreable answers counted"),
		field.Bool("plan_bound").
			Default(false).
			Comment("Whether a support plan was bound for the profile"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
		index.Fields("profile_key"),
	}
}
