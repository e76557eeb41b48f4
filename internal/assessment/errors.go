package assessment

import (
	"errors"
	"fmt"
)

// ErrIncompleteSubmission indicates Submit was called before the
// required number of scoreable answers was reached. Rejected locally;
// no state changes.
var ErrIncompleteSubmission = errors.New("assessment incomplete: required answers missing")

// ErrSubmissionInFlight indicates a Submit call arrived while another
// was still pending. The late call is rejected, never queued.
var ErrSubmissionInFlight = errors.New("submission already in progress")

// ErrInvalidAnswer indicates malformed input to Answer: an unknown
// question id, an out-of-range choice index, or the wrong answer kind.
type ErrInvalidAnswer struct {
	QuestionID string
	Reason     string
}

func (e *ErrInvalidAnswer) Error() string {
	return fmt.Sprintf("invalid answer for %q: %s", e.QuestionID, e.Reason)
}

// ErrNoMatchingProfile indicates the total score fell outside every
// configured profile range. This is a configuration defect, not a user
// error; it is surfaced loudly and the answers are preserved.
type ErrNoMatchingProfile struct {
	Score int
}

func (e *ErrNoMatchingProfile) Error() string {
	return fmt.Sprintf("no profile range covers score %d", e.Score)
}
