package assessment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwcare/glowy/internal/catalog"
)

func TestScore(t *testing.T) {
	table := catalog.ScoringTable{
		"q1": {0, 1, 2, 3},
		"q2": {3, 2, 1, 0},
		"q3": {0, 1, 2, 3},
	}

	tests := []struct {
		name    string
		answers AnswerSet
		want    int
	}{
		{
			name:    "empty answers score zero",
			answers: AnswerSet{},
			want:    0,
		},
		{
			name: "sums weights by choice index",
			answers: AnswerSet{
				"q1": ChoiceAnswer(3),
				"q2": ChoiceAnswer(0),
				"q3": ChoiceAnswer(1),
			},
			want: 7,
		},
		{
			name: "unanswered scored question contributes zero",
			answers: AnswerSet{
				"q1": ChoiceAnswer(2),
			},
			want: 2,
		},
		{
			name: "text answers never score",
			answers: AnswerSet{
				"q1": TextAnswer("feeling fine"),
				"q2": ChoiceAnswer(1),
			},
			want: 2,
		},
		{
			name: "answers outside the table are ignored",
			answers: AnswerSet{
				"q1":    ChoiceAnswer(1),
				"bogus": ChoiceAnswer(3),
			},
			want: 1,
		},
		{
			name: "out of range index is skipped",
			answers: AnswerSet{
				"q1": ChoiceAnswer(9),
				"q2": ChoiceAnswer(-1),
				"q3": ChoiceAnswer(3),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.answers, table))
		})
	}
}

func TestScoreableAnswered(t *testing.T) {
	table := catalog.ScoringTable{
		"q1": {0, 1},
		"q2": {0, 1},
	}
	answers := AnswerSet{
		"q1": ChoiceAnswer(0),
		"q2": TextAnswer("not a choice"),
		"q3": ChoiceAnswer(1), // unscored
	}
	assert.Equal(t, 1, ScoreableAnswered(answers, table))
}

func TestResolveProfile(t *testing.T) {
	ranges := []catalog.ProfileRange{
		{ProfileKey: "radiant", MinScore: 0, MaxScore: 21},
		{ProfileKey: "balanced", MinScore: 22, MaxScore: 43},
		{ProfileKey: "strained", MinScore: 44, MaxScore: 65},
		{ProfileKey: "overwhelmed", MinScore: 66, MaxScore: 87},
	}

	tests := []struct {
		score int
		want  string
	}{
		{0, "radiant"},
		{21, "radiant"},
		{22, "balanced"},
		{42, "balanced"},
		{65, "strained"},
		{87, "overwhelmed"},
	}
	for _, tt := range tests {
		got, err := ResolveProfile(tt.score, ranges)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "score %d", tt.score)
	}
}

func TestResolveProfileNoMatch(t *testing.T) {
	ranges := []catalog.ProfileRange{
		{ProfileKey: "only", MinScore: 0, MaxScore: 87},
	}

	_, err := ResolveProfile(150, ranges)
	require.Error(t, err)

	var noMatch *ErrNoMatchingProfile
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, 150, noMatch.Score)
}

func TestResolveProfileFirstMatchWins(t *testing.T) {
	// Overlapping ranges only occur in hand-built tables; declaration
	// order decides.
	ranges := []catalog.ProfileRange{
		{ProfileKey: "first", MinScore: 0, MaxScore: 50},
		{ProfileKey: "second", MinScore: 40, MaxScore: 87},
	}
	got, err := ResolveProfile(45, ranges)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}
