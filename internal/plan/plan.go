// Package plan binds resolved assessment profiles to support plan
// instances.
package plan

import (
	"errors"

	"github.com/gwcare/glowy/internal/catalog"
)

// ErrPlanUnavailable indicates no template exists for a profile. Soft:
// assessment completion proceeds and any existing plan stays untouched.
var ErrPlanUnavailable = errors.New("no plan template for profile")

// SupportPlan is a plan template bound to one user's resolved profile.
// Profile holds the human-readable label, not the raw key.
type SupportPlan struct {
	Profile string             `json:"profile"`
	Weeks   []catalog.PlanWeek `json:"weeks"`
}

// Bind looks up the template for profileKey and combines it with the
// display label. Returns ErrPlanUnavailable when the profile has no
// template.
func Bind(cat *catalog.Catalog, profileKey, profileLabel string) (*SupportPlan, error) {
	tmpl := cat.PlanFor(profileKey)
	if tmpl == nil {
		return nil, ErrPlanUnavailable
	}

	weeks := make([]catalog.PlanWeek, len(tmpl.Weeks))
	copy(weeks, tmpl.Weeks)

	return &SupportPlan{Profile: profileLabel, Weeks: weeks}, nil
}
