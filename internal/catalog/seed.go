package catalog

import "fmt"

// seedCatalog returns the compiled-in assessment configuration: 29
// scored multiple-choice questions plus one free-text reflection, four
// profile bands partitioning the 0-87 score axis, one plan template per
// profile, and the generic activity pool.
func seedCatalog() *Catalog {
	// q4, q11, q18 and q25 are phrased positively, so their option
	// order maps to descending weights.
	reversed := map[string]bool{"q4": true, "q11": true, "q18": true, "q25": true}

	questions := make([]Question, 0, 30)
	scoring := make(ScoringTable, 29)
	for i := 1; i <= 29; i++ {
		id := fmt.Sprintf("q%d", i)
		questions = append(questions, Question{
			ID:          id,
			PromptRef:   "assessment." + id,
			Kind:        KindChoice,
			ChoiceCount: 4,
			OptionRef:   "assessment." + id + "_opt",
		})
		if reversed[id] {
			scoring[id] = []int{3, 2, 1, 0}
		} else {
			scoring[id] = []int{0, 1, 2, 3}
		}
	}
	questions = append(questions, Question{
		ID:             "q30",
		PromptRef:      "assessment.q30",
		Kind:           KindText,
		PlaceholderRef: "assessment.q30_placeholder",
	})

	return &Catalog{
		Questions: questions,
		Scoring:   scoring,
		Profiles: []ProfileRange{
			{ProfileKey: "radiant", MinScore: 0, MaxScore: 21},
			{ProfileKey: "balanced", MinScore: 22, MaxScore: 43},
			{ProfileKey: "strained", MinScore: 44, MaxScore: 65},
			{ProfileKey: "overwhelmed", MinScore: 66, MaxScore: 87},
		},
		Plans: []PlanTemplate{
			{ProfileKey: "radiant", Weeks: []PlanWeek{
				{ThemeRef: "plan.radiant_w1_theme", FocusRef: "plan.radiant_w1_focus"},
				{ThemeRef: "plan.radiant_w2_theme", FocusRef: "plan.radiant_w2_focus"},
				{ThemeRef: "plan.radiant_w3_theme", FocusRef: "plan.radiant_w3_focus"},
				{ThemeRef: "plan.radiant_w4_theme", FocusRef: "plan.radiant_w4_focus"},
			}},
			{ProfileKey: "balanced", Weeks: []PlanWeek{
				{ThemeRef: "plan.balanced_w1_theme", FocusRef: "plan.balanced_w1_focus"},
				{ThemeRef: "plan.balanced_w2_theme", FocusRef: "plan.balanced_w2_focus"},
				{ThemeRef: "plan.balanced_w3_theme", FocusRef: "plan.balanced_w3_focus"},
				{ThemeRef: "plan.balanced_w4_theme", FocusRef: "plan.balanced_w4_focus"},
			}},
			{ProfileKey: "strained", Weeks: []PlanWeek{
				{ThemeRef: "plan.strained_w1_theme", FocusRef: "plan.strained_w1_focus"},
				{ThemeRef: "plan.strained_w2_theme", FocusRef: "plan.strained_w2_focus"},
				{ThemeRef: "plan.strained_w3_theme", FocusRef: "plan.strained_w3_focus"},
				{ThemeRef: "plan.strained_w4_theme", FocusRef: "plan.strained_w4_focus"},
				{ThemeRef: "plan.strained_w5_theme", FocusRef: "plan.strained_w5_focus"},
				{ThemeRef: "plan.strained_w6_theme", FocusRef: "plan.strained_w6_focus"},
			}},
			{ProfileKey: "overwhelmed", Weeks: []PlanWeek{
				{ThemeRef: "plan.overwhelmed_w1_theme", FocusRef: "plan.overwhelmed_w1_focus"},
				{ThemeRef: "plan.overwhelmed_w2_theme", FocusRef: "plan.overwhelmed_w2_focus"},
				{ThemeRef: "plan.overwhelmed_w3_theme", FocusRef: "plan.overwhelmed_w3_focus"},
				{ThemeRef: "plan.overwhelmed_w4_theme", FocusRef: "plan.overwhelmed_w4_focus"},
				{ThemeRef: "plan.overwhelmed_w5_theme", FocusRef: "plan.overwhelmed_w5_focus"},
				{ThemeRef: "plan.overwhelmed_w6_theme", FocusRef: "plan.overwhelmed_w6_focus"},
				{ThemeRef: "plan.overwhelmed_w7_theme", FocusRef: "plan.overwhelmed_w7_focus"},
				{ThemeRef: "plan.overwhelmed_w8_theme", FocusRef: "plan.overwhelmed_w8_focus"},
			}},
		},
		FallbackPool: []FallbackActivity{
			{ID: "gen-1", TaskRef: "activities.generic_1"},
			{ID: "gen-2", TaskRef: "activities.generic_2"},
			{ID: "gen-3", TaskRef: "activities.generic_3"},
			{ID: "gen-4", TaskRef: "activities.generic_4"},
			{ID: "gen-5", TaskRef: "activities.generic_5"},
			{ID: "gen-6", TaskRef: "activities.generic_6"},
			{ID: "gen-7", TaskRef: "activities.generic_7"},
		},
		Inspiration: []InspirationTemplate{
			{Category: "grounding", Examples: []string{
				"Take five slow breaths before opening your phone",
				"Name three sounds you can hear right now",
			}},
			{Category: "movement", Examples: []string{
				"Take a ten-minute walk without headphones",
				"Stretch your shoulders and neck for two minutes",
			}},
			{Category: "connection", Examples: []string{
				"Send a short message to someone you miss",
				"Thank one person for something specific today",
			}},
			{Category: "reflection", Examples: []string{
				"Write down one thing that went well today",
				"Note one worry, then one thing you can control about it",
			}},
		},
	}
}
