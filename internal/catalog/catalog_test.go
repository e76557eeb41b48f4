package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCatalogIsValid(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30, c.Steps())
	assert.Len(t, c.Scoring, RequiredScoreableAnswers)
	assert.Len(t, c.FallbackPool, 7)
	assert.NotEmpty(t, c.Inspiration)

	// One text question, never scored.
	q30 := c.Question("q30")
	require.NotNil(t, q30)
	assert.Equal(t, KindText, q30.Kind)
	_, scored := c.Scoring["q30"]
	assert.False(t, scored)

	min, max := c.ScoreBounds()
	assert.Equal(t, 0, min)
	assert.Equal(t, 87, max)
}

func TestSeedPlansCoverEveryProfile(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	for _, p := range c.Profiles {
		tmpl := c.PlanFor(p.ProfileKey)
		require.NotNil(t, tmpl, "profile %s has no plan", p.ProfileKey)
		assert.NotEmpty(t, tmpl.Weeks)
	}
	assert.Nil(t, c.PlanFor("unknown"))
}

func TestQuestionLookup(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	q := c.Question("q7")
	require.NotNil(t, q)
	assert.Equal(t, "q7", q.ID)
	assert.Nil(t, c.Question("q99"))
}

func TestQuestionLookupWithoutLoad(t *testing.T) {
	// Catalog literals never see Load's indexing pass; lookup must
	// still find questions.
	c := &Catalog{Questions: []Question{
		{ID: "a", Kind: KindChoice, ChoiceCount: 2},
		{ID: "b", Kind: KindText},
	}}

	q := c.Question("b")
	require.NotNil(t, q)
	assert.Equal(t, "b", q.ID)
	assert.Nil(t, c.Question("missing"))
}

// validSmall returns a minimal catalog that passes validation, for
// mutation in the failure cases below.
func validSmall() *Catalog {
	questions := make([]Question, 0, RequiredScoreableAnswers)
	scoring := make(ScoringTable, RequiredScoreableAnswers)
	for i := 1; i <= RequiredScoreableAnswers; i++ {
		id := fmt.Sprintf("s%d", i)
		questions = append(questions, Question{ID: id, Kind: KindChoice, ChoiceCount: 2})
		scoring[id] = []int{0, 1}
	}
	return &Catalog{
		Questions: questions,
		Scoring:   scoring,
		Profiles: []ProfileRange{
			{ProfileKey: "low", MinScore: 0, MaxScore: 14},
			{ProfileKey: "high", MinScore: 15, MaxScore: 29},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Catalog) {},
		},
		{
			name: "duplicate question id",
			mutate: func(c *Catalog) {
				c.Questions = append(c.Questions, Question{ID: "s1", Kind: KindChoice, ChoiceCount: 2})
			},
			wantErr: "duplicate question id",
		},
		{
			name: "too few choices",
			mutate: func(c *Catalog) {
				c.Questions[0].ChoiceCount = 1
				c.Scoring["s1"] = []int{0}
			},
			wantErr: "at least 2",
		},
		{
			name: "scored text question",
			mutate: func(c *Catalog) {
				c.Questions[0].Kind = KindText
				c.Questions[0].ChoiceCount = 0
			},
			wantErr: "scoring table",
		},
		{
			name: "weight count mismatch",
			mutate: func(c *Catalog) {
				c.Scoring["s1"] = []int{0, 1, 2}
			},
			wantErr: "weights",
		},
		{
			name: "orphan scoring entry",
			mutate: func(c *Catalog) {
				c.Scoring["ghost"] = []int{0, 1}
			},
			wantErr: "no matching question",
		},
		{
			name: "too few scoreable questions",
			mutate: func(c *Catalog) {
				delete(c.Scoring, "s1")
			},
			wantErr: "scoreable questions",
		},
		{
			name: "overlapping profiles",
			mutate: func(c *Catalog) {
				c.Profiles[1].MinScore = 10
			},
			wantErr: "overlap",
		},
		{
			name: "gap between profiles",
			mutate: func(c *Catalog) {
				c.Profiles[1].MinScore = 20
			},
			wantErr: "gap",
		},
		{
			name: "inverted range",
			mutate: func(c *Catalog) {
				c.Profiles[0].MinScore = 20
				c.Profiles[0].MaxScore = 5
			},
			wantErr: "inverted",
		},
		{
			name: "top of score axis uncovered",
			mutate: func(c *Catalog) {
				c.Profiles[1].MaxScore = 20
			},
			wantErr: "reachable",
		},
		{
			name: "duplicate plan template",
			mutate: func(c *Catalog) {
				c.Plans = []PlanTemplate{
					{ProfileKey: "low", Weeks: []PlanWeek{{ThemeRef: "t", FocusRef: "f"}}},
					{ProfileKey: "low", Weeks: []PlanWeek{{ThemeRef: "t", FocusRef: "f"}}},
				}
			},
			wantErr: "duplicate plan",
		},
		{
			name: "plan without weeks",
			mutate: func(c *Catalog) {
				c.Plans = []PlanTemplate{{ProfileKey: "low"}}
			},
			wantErr: "no weeks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validSmall()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	seed := seedCatalog()

	writeDoc(t, dir, questionsFile, questionsDoc{Questions: seed.Questions})
	writeDoc(t, dir, resultsFile, resultsDoc{Scoring: seed.Scoring, Profiles: seed.Profiles})
	writeDoc(t, dir, plansFile, seed.Plans)
	writeDoc(t, dir, activitiesFile, activitiesDoc{Pool: seed.FallbackPool, Inspiration: seed.Inspiration})

	c, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, seed.Steps(), c.Steps())
	assert.Equal(t, seed.Profiles, c.Profiles)
}

func TestLoadFromDirectoryMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog document")
}

func TestLoadFromDirectoryRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	seed := seedCatalog()

	// Break the profile partition: leave a gap at the top.
	profiles := append([]ProfileRange(nil), seed.Profiles...)
	profiles[len(profiles)-1].MaxScore = 80

	writeDoc(t, dir, questionsFile, questionsDoc{Questions: seed.Questions})
	writeDoc(t, dir, resultsFile, resultsDoc{Scoring: seed.Scoring, Profiles: profiles})
	writeDoc(t, dir, plansFile, seed.Plans)
	writeDoc(t, dir, activitiesFile, activitiesDoc{Pool: seed.FallbackPool, Inspiration: seed.Inspiration})

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reachable")
}

func writeDoc(t *testing.T, dir, name string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0o644))
}
