package assessment

import (
	"fmt"
	"sync"
	"time"

	"github.com/gwcare/glowy/internal/catalog"
)

// WizardConfig configures a Wizard.
type WizardConfig struct {
	// AutoAdvanceOnChoice advances to the next step immediately after a
	// choice answer on a non-final step. A UX affordance, not a
	// correctness requirement.
	AutoAdvanceOnChoice bool

	// Listener receives presentation signals. Nil means NopListener.
	Listener Listener

	// Now supplies the clock used to stamp completions. Nil means
	// time.Now.
	Now func() time.Time

	// Persist writes the record back to its durable slot after each
	// mutation. Nil disables write-back (tests).
	Persist func(*Record) error

	// BindPlan attempts to bind a support plan for a freshly resolved
	// result and reports whether a template existed. Nil means no
	// binding.
	BindPlan func(Result) bool
}

// Wizard drives step-by-step navigation over the question catalog,
// validates answers, and gates submission. One wizard serves one
// logical user session.
type Wizard struct {
	cat *catalog.Catalog
	rec *Record
	cfg WizardConfig

	step int

	mu       sync.Mutex
	inFlight bool
}

// NewWizard creates a wizard at step 0, seeded from rec (possibly
// partial or previously completed).
func NewWizard(cat *catalog.Catalog, rec *Record, cfg WizardConfig) *Wizard {
	if cfg.Listener == nil {
		cfg.Listener = NopListener{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if rec.Answers == nil {
		rec.Answers = make(AnswerSet)
	}
	return &Wizard{cat: cat, rec: rec, cfg: cfg}
}

// Step returns the current step index.
func (w *Wizard) Step() int { return w.step }

// Current returns the question for the current step.
func (w *Wizard) Current() *catalog.Question {
	return &w.cat.Questions[w.step]
}

// Record returns the wizard's assessment record.
func (w *Wizard) Record() *Record { return w.rec }

// Answer validates and stores an answer for a catalog question. Choice
// answers on non-final steps advance the wizard when
// AutoAdvanceOnChoice is set. Invalid input mutates nothing.
func (w *Wizard) Answer(questionID string, a Answer) error {
	q := w.cat.Question(questionID)
	if q == nil {
		return &ErrInvalidAnswer{QuestionID: questionID, Reason: "not in catalog"}
	}

	switch q.Kind {
	case catalog.KindChoice:
		if !a.IsChoice {
			return &ErrInvalidAnswer{QuestionID: questionID, Reason: "choice question needs an option index"}
		}
		if a.Choice < 0 || a.Choice >= q.ChoiceCount {
			return &ErrInvalidAnswer{
				QuestionID: questionID,
				Reason:     fmt.Sprintf("option index %d out of range [0,%d)", a.Choice, q.ChoiceCount),
			}
		}
	case catalog.KindText:
		if a.IsChoice {
			return &ErrInvalidAnswer{QuestionID: questionID, Reason: "text question needs a string"}
		}
	}

	w.rec.Answers[questionID] = a
	w.persist()

	if a.IsChoice && w.cfg.AutoAdvanceOnChoice && w.step < w.cat.Steps()-1 {
		w.Next()
	}
	return nil
}

// Next advances one step. It requires the current step to be answered
// and is a no-op on the final step.
func (w *Wizard) Next() {
	if !w.currentAnswered() || w.step >= w.cat.Steps()-1 {
		return
	}
	w.step++
	w.cfg.Listener.StepChanged(w.step)
}

// Back moves one step back, clamped at the first step.
func (w *Wizard) Back() {
	if w.step == 0 {
		return
	}
	w.step--
	w.cfg.Listener.StepChanged(w.step)
}

func (w *Wizard) currentAnswered() bool {
	a, ok := w.rec.Answers[w.cat.Questions[w.step].ID]
	return ok && !a.Empty()
}

// CanSubmit reports whether enough scoreable questions have been
// answered. Text answers and unscored questions never count.
func (w *Wizard) CanSubmit() bool {
	return ScoreableAnswered(w.rec.Answers, w.cat.Scoring) >= catalog.RequiredScoreableAnswers
}

// Submit scores the answer set, resolves the profile, stamps the
// completion time, and binds the support plan. At most one submission
// is in flight at a time; concurrent calls are rejected. On a profile
// resolution failure the answers are preserved so the user loses
// nothing.
func (w *Wizard) Submit() (*Result, error) {
	w.mu.Lock()
	if w.inFlight {
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	w.inFlight = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.inFlight = false
		w.mu.Unlock()
	}()

	if !w.CanSubmit() {
		return nil, ErrIncompleteSubmission
	}

	score := Score(w.rec.Answers, w.cat.Scoring)
	profileKey, err := ResolveProfile(score, w.cat.Profiles)
	if err != nil {
		w.cfg.Listener.SubmissionFailed(err)
		return nil, err
	}

	res := Result{ProfileKey: profileKey, Score: score}
	now := w.cfg.Now()
	w.rec.Result = &res
	w.rec.LastCompletedAt = &now

	planBound := false
	if w.cfg.BindPlan != nil {
		planBound = w.cfg.BindPlan(res)
	}

	w.persist()
	w.cfg.Listener.SubmissionSucceeded(res, planBound)
	return &res, nil
}

func (w *Wizard) persist() {
	if w.cfg.Persist == nil {
		return
	}
	// Write-back failures are reported by the persist hook itself; the
	// in-memory state stays authoritative for the session.
	_ = w.cfg.Persist(w.rec)
}
