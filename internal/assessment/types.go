package assessment

import (
	"encoding/json"
	"fmt"
	"time"
)

// Answer is one user response: either a choice index or free text.
type Answer struct {
	Choice int
	Text   string
	// IsChoice distinguishes the two arms; a zero Answer is an empty
	// text answer.
	IsChoice bool
}

// ChoiceAnswer returns an Answer holding a choice index.
func ChoiceAnswer(idx int) Answer {
	return Answer{Choice: idx, IsChoice: true}
}

// TextAnswer returns an Answer holding free text.
func TextAnswer(s string) Answer {
	return Answer{Text: s}
}

// Empty reports whether the answer carries no content. Choice answers
// are never empty; index 0 is a valid selection.
func (a Answer) Empty() bool {
	return !a.IsChoice && a.Text == ""
}

// MarshalJSON encodes choice answers as JSON numbers and text answers
// as strings, the shape the durable slot has always used.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsChoice {
		return json.Marshal(a.Choice)
	}
	return json.Marshal(a.Text)
}

// UnmarshalJSON accepts either a number (choice index) or a string.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var idx int
	if err := json.Unmarshal(data, &idx); err == nil {
		*a = ChoiceAnswer(idx)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = TextAnswer(s)
		return nil
	}
	return fmt.Errorf("answer must be a choice index or a string: %s", data)
}

// AnswerSet maps question ids to the user's answers.
type AnswerSet map[string]Answer

// Clone returns a shallow copy of the set.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Result is the outcome of one successful submission.
type Result struct {
	ProfileKey string `json:"profileKey"`
	Score      int    `json:"score"`
}

// Record is the durable assessment state: the answer set plus the
// latest result, if any. Persisted as one slot and overwritten after
// every mutation.
type Record struct {
	Answers         AnswerSet  `json:"answers"`
	Result          *Result    `json:"result"`
	LastCompletedAt *time.Time `json:"lastCompleted"`
}

// NewRecord returns an empty record ready for a first assessment.
func NewRecord() *Record {
	return &Record{Answers: make(AnswerSet)}
}

// Completed reports whether the record holds a finished assessment.
func (r *Record) Completed() bool {
	return r.Result != nil
}
