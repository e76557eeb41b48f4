package catalog

import (
	"fmt"
	"sort"
)

// Validate checks the loaded tables for configuration defects. The
// engine refuses to start on a malformed catalog rather than failing at
// point of use.
func (c *Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog: no questions configured")
	}

	seen := make(map[string]bool, len(c.Questions))
	scoreable := 0
	for i, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("catalog: question %d has empty id", i)
		}
		if seen[q.ID] {
			return fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		switch q.Kind {
		case KindChoice:
			if q.ChoiceCount < 2 {
				return fmt.Errorf("catalog: question %q has %d choices, need at least 2", q.ID, q.ChoiceCount)
			}
		case KindText:
			if _, scored := c.Scoring[q.ID]; scored {
				return fmt.Errorf("catalog: text question %q appears in the scoring table", q.ID)
			}
		default:
			return fmt.Errorf("catalog: question %q has unknown answer kind %q", q.ID, q.Kind)
		}

		if _, ok := c.Scoring[q.ID]; ok {
			scoreable++
		}
	}

	for id, weights := range c.Scoring {
		q := c.Question(id)
		if q == nil {
			return fmt.Errorf("catalog: scoring entry %q has no matching question", id)
		}
		if len(weights) != q.ChoiceCount {
			return fmt.Errorf("catalog: scoring entry %q has %d weights, question has %d choices",
				id, len(weights), q.ChoiceCount)
		}
	}

	if scoreable < RequiredScoreableAnswers {
		return fmt.Errorf("catalog: only %d scoreable questions configured, %d required for submission",
			scoreable, RequiredScoreableAnswers)
	}

	if err := c.validateProfiles(); err != nil {
		return err
	}

	return c.validatePlans()
}

// validateProfiles checks that the profile ranges are well-formed,
// mutually non-overlapping, and cover the full reachable score axis.
func (c *Catalog) validateProfiles() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("catalog: no profile ranges configured")
	}

	for _, p := range c.Profiles {
		if p.ProfileKey == "" {
			return fmt.Errorf("catalog: profile range [%d,%d] has empty profile key", p.MinScore, p.MaxScore)
		}
		if p.MinScore > p.MaxScore {
			return fmt.Errorf("catalog: profile %q has inverted range [%d,%d]", p.ProfileKey, p.MinScore, p.MaxScore)
		}
	}

	sorted := make([]ProfileRange, len(c.Profiles))
	copy(sorted, c.Profiles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinScore < sorted[j].MinScore })

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.MinScore <= prev.MaxScore {
			return fmt.Errorf("catalog: profile ranges %q and %q overlap", prev.ProfileKey, cur.ProfileKey)
		}
		if cur.MinScore != prev.MaxScore+1 {
			return fmt.Errorf("catalog: gap between profile ranges %q and %q (scores %d..%d uncovered)",
				prev.ProfileKey, cur.ProfileKey, prev.MaxScore+1, cur.MinScore-1)
		}
	}

	min, max := c.ScoreBounds()
	if sorted[0].MinScore > min {
		return fmt.Errorf("catalog: scores %d..%d below the lowest profile range are reachable", min, sorted[0].MinScore-1)
	}
	last := sorted[len(sorted)-1]
	if last.MaxScore < max {
		return fmt.Errorf("catalog: scores %d..%d above the highest profile range are reachable", last.MaxScore+1, max)
	}

	return nil
}

// validatePlans checks template uniqueness per profile key. A profile
// without a template is allowed; binding degrades softly.
func (c *Catalog) validatePlans() error {
	seen := make(map[string]bool, len(c.Plans))
	for _, p := range c.Plans {
		if p.ProfileKey == "" {
			return fmt.Errorf("catalog: plan template with empty profile key")
		}
		if seen[p.ProfileKey] {
			return fmt.Errorf("catalog: duplicate plan template for profile %q", p.ProfileKey)
		}
		seen[p.ProfileKey] = true
		if len(p.Weeks) == 0 {
			return fmt.Errorf("catalog: plan template %q has no weeks", p.ProfileKey)
		}
	}
	return nil
}
