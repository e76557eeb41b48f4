package assessment

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwcare/glowy/internal/catalog"
)

// recordingListener captures every wizard signal.
type recordingListener struct {
	steps     []int
	succeeded []Result
	planBound []bool
	failed    []error
}

func (r *recordingListener) StepChanged(step int) { r.steps = append(r.steps, step) }
func (r *recordingListener) SubmissionSucceeded(res Result, bound bool) {
	r.succeeded = append(r.succeeded, res)
	r.planBound = append(r.planBound, bound)
}
func (r *recordingListener) SubmissionFailed(err error)         { r.failed = append(r.failed, err) }
func (r *recordingListener) RetakeAvailability(bool, time.Time) {}

func seedCat(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

func TestWizardAnswerValidation(t *testing.T) {
	cat := seedCat(t)
	w := NewWizard(cat, NewRecord(), WizardConfig{})

	tests := []struct {
		name       string
		questionID string
		answer     Answer
	}{
		{"unknown question id", "q99", ChoiceAnswer(0)},
		{"index below range", "q1", ChoiceAnswer(-1)},
		{"index above range", "q1", ChoiceAnswer(4)},
		{"text for choice question", "q1", TextAnswer("often")},
		{"choice for text question", "q30", ChoiceAnswer(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.Answer(tt.questionID, tt.answer)
			var invalid *ErrInvalidAnswer
			require.ErrorAs(t, err, &invalid)
		})
	}

	// Nothing was stored.
	assert.Empty(t, w.Record().Answers)
}

func TestWizardAnswerUpsert(t *testing.T) {
	cat := seedCat(t)
	w := NewWizard(cat, NewRecord(), WizardConfig{})

	require.NoError(t, w.Answer("q1", ChoiceAnswer(0)))
	require.NoError(t, w.Answer("q1", ChoiceAnswer(3)))

	assert.Equal(t, ChoiceAnswer(3), w.Record().Answers["q1"])
	assert.Len(t, w.Record().Answers, 1)
}

func TestWizardNavigation(t *testing.T) {
	cat := seedCat(t)
	listener := &recordingListener{}
	w := NewWizard(cat, NewRecord(), WizardConfig{Listener: listener})

	// Next is refused while the current step is unanswered.
	w.Next()
	assert.Equal(t, 0, w.Step())

	require.NoError(t, w.Answer("q1", ChoiceAnswer(1)))
	w.Next()
	assert.Equal(t, 1, w.Step())
	assert.Equal(t, "q2", w.Current().ID)

	w.Back()
	assert.Equal(t, 0, w.Step())

	// Back clamps at the first step.
	w.Back()
	assert.Equal(t, 0, w.Step())

	assert.Equal(t, []int{1, 0}, listener.steps)
}

func TestWizardAutoAdvance(t *testing.T) {
	cat := seedCat(t)
	w := NewWizard(cat, NewRecord(), WizardConfig{AutoAdvanceOnChoice: true})

	require.NoError(t, w.Answer("q1", ChoiceAnswer(2)))
	assert.Equal(t, 1, w.Step())

	// The final step never auto-advances, and text answers never do.
	for i := 2; i <= 29; i++ {
		require.NoError(t, w.Answer(fmt.Sprintf("q%d", i), ChoiceAnswer(2)))
	}
	assert.Equal(t, 29, w.Step())
	require.NoError(t, w.Answer("q30", TextAnswer("ok")))
	assert.Equal(t, 29, w.Step())
}

func TestWizardCanSubmit(t *testing.T) {
	cat := seedCat(t)
	w := NewWizard(cat, NewRecord(), WizardConfig{})

	for i := 1; i <= 28; i++ {
		require.NoError(t, w.Answer(fmt.Sprintf("q%d", i), ChoiceAnswer(0)))
	}
	assert.False(t, w.CanSubmit())

	// The text answer never counts toward the threshold.
	require.NoError(t, w.Answer("q30", TextAnswer("long day")))
	assert.False(t, w.CanSubmit())

	require.NoError(t, w.Answer("q29", ChoiceAnswer(0)))
	assert.True(t, w.CanSubmit())
}

func TestWizardSubmit(t *testing.T) {
	cat := seedCat(t)
	listener := &recordingListener{}
	now := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)

	persisted := 0
	w := NewWizard(cat, NewRecord(), WizardConfig{
		Listener: listener,
		Now:      func() time.Time { return now },
		Persist: func(*Record) error {
			persisted++
			return nil
		},
		BindPlan: func(res Result) bool { return res.ProfileKey == "strained" },
	})

	// Option index 2 weighs 2 on regular questions and 1 on the four
	// reversed ones: 25*2 + 4*1 = 54, inside the strained band.
	for i := 1; i <= 29; i++ {
		require.NoError(t, w.Answer(fmt.Sprintf("q%d", i), ChoiceAnswer(2)))
	}

	res, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, "strained", res.ProfileKey)
	assert.Equal(t, 54, res.Score)

	rec := w.Record()
	require.NotNil(t, rec.Result)
	assert.Equal(t, *res, *rec.Result)
	require.NotNil(t, rec.LastCompletedAt)
	assert.Equal(t, now, *rec.LastCompletedAt)

	require.Len(t, listener.succeeded, 1)
	assert.True(t, listener.planBound[0])
	assert.Greater(t, persisted, 29) // every answer plus the submission
}

func TestWizardSubmitIncomplete(t *testing.T) {
	cat := seedCat(t)
	w := NewWizard(cat, NewRecord(), WizardConfig{})

	require.NoError(t, w.Answer("q1", ChoiceAnswer(1)))

	_, err := w.Submit()
	assert.ErrorIs(t, err, ErrIncompleteSubmission)
	assert.Nil(t, w.Record().Result)
}

func TestWizardSubmitNoMatchingProfilePreservesAnswers(t *testing.T) {
	// Hand-built catalog whose profile table cannot cover the reachable
	// scores; Load would reject it, the wizard must survive it.
	questions := make([]catalog.Question, 0, 29)
	scoring := make(catalog.ScoringTable, 29)
	for i := 1; i <= 29; i++ {
		id := fmt.Sprintf("q%d", i)
		questions = append(questions, catalog.Question{ID: id, Kind: catalog.KindChoice, ChoiceCount: 2})
		scoring[id] = []int{0, 10}
	}
	cat := &catalog.Catalog{
		Questions: questions,
		Scoring:   scoring,
		Profiles:  []catalog.ProfileRange{{ProfileKey: "only", MinScore: 0, MaxScore: 5}},
	}

	listener := &recordingListener{}
	w := NewWizard(cat, NewRecord(), WizardConfig{Listener: listener})

	for i := 1; i <= 29; i++ {
		require.NoError(t, w.Answer(fmt.Sprintf("q%d", i), ChoiceAnswer(1)))
	}

	_, err := w.Submit()
	var noMatch *ErrNoMatchingProfile
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, 290, noMatch.Score)

	// Answers survive the failed submission; no result is stamped.
	assert.Len(t, w.Record().Answers, 29)
	assert.Nil(t, w.Record().Result)
	assert.Nil(t, w.Record().LastCompletedAt)
	require.Len(t, listener.failed, 1)
}
