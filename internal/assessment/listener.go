package assessment

import "time"

// Listener receives the signals the wizard emits for its presentation
// collaborator. Implementations must be fast; signals fire on the
// calling goroutine.
type Listener interface {
	// StepChanged fires whenever the wizard moves to a new step.
	StepChanged(step int)

	// SubmissionSucceeded fires after a successful submission.
	// planBound reports whether a support plan template existed for the
	// resolved profile.
	SubmissionSucceeded(result Result, planBound bool)

	// SubmissionFailed fires when a submission could not resolve a
	// profile.
	SubmissionFailed(err error)

	// RetakeAvailability fires when retake eligibility is evaluated.
	// nextAt is the zero time when eligibility is immediate.
	RetakeAvailability(ok bool, nextAt time.Time)
}

// NopListener discards every signal.
type NopListener struct{}

func (NopListener) StepChanged(int)                    {}
func (NopListener) SubmissionSucceeded(Result, bool)   {}
func (NopListener) SubmissionFailed(error)             {}
func (NopListener) RetakeAvailability(bool, time.Time) {}
