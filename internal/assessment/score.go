package assessment

import "github.com/gwcare/glowy/internal/catalog"

// Score computes the total assessment score. It iterates the scoring
// table, not the answer set, so a scored question the user never
// answered contributes zero instead of erroring, and stray answer keys
// are ignored. Answers that are not a valid index into the question's
// weight sequence are skipped.
func Score(answers AnswerSet, table catalog.ScoringTable) int {
	total := 0
	for id, weights := range table {
		a, ok := answers[id]
		if !ok || !a.IsChoice {
			continue
		}
		if a.Choice < 0 || a.Choice >= len(weights) {
			continue
		}
		total += weights[a.Choice]
	}
	return total
}

// ScoreableAnswered counts answers that are numeric and belong to
// questions present in the scoring table. Text answers and answers to
// unscored questions never count.
func ScoreableAnswered(answers AnswerSet, table catalog.ScoringTable) int {
	n := 0
	for id, a := range answers {
		if _, scored := table[id]; scored && a.IsChoice {
			n++
		}
	}
	return n
}

// ResolveProfile finds the profile band covering score. Ranges are
// checked in table order and the first match wins; a validated catalog
// has no overlaps, so the tie-break only matters for hand-built tables.
func ResolveProfile(score int, ranges []catalog.ProfileRange) (string, error) {
	for _, r := range ranges {
		if score >= r.MinScore && score <= r.MaxScore {
			return r.ProfileKey, nil
		}
	}
	return "", &ErrNoMatchingProfile{Score: score}
}
