package assessment

import "time"

// CanRetake reports whether the user may discard a completed assessment
// and start over. Premium subscribers may always retake; everyone else
// waits one calendar month after their last completion.
func CanRetake(rec *Record, premium bool, now time.Time) bool {
	if premium {
		return true
	}
	if rec == nil || rec.LastCompletedAt == nil {
		return true
	}
	return !now.Before(addOneMonth(*rec.LastCompletedAt))
}

// NextAvailableAt returns the instant a non-premium retake becomes
// available. ok is false when the record has no completion to wait on.
func NextAvailableAt(rec *Record) (next time.Time, ok bool) {
	if rec == nil || rec.LastCompletedAt == nil {
		return time.Time{}, false
	}
	return addOneMonth(*rec.LastCompletedAt), true
}

// Retake resets the record for a fresh assessment. Prior answers are
// dropped along with the result, so the new run starts unanchored.
func Retake(rec *Record) {
	rec.Answers = make(AnswerSet)
	rec.Result = nil
	rec.LastCompletedAt = nil
}

// addOneMonth advances t by one calendar month, clamping the day to the
// target month's length: Jan 31 becomes Feb 28 (or 29), not Mar 3.
// time.AddDate normalizes overflow instead, which is the wrong rule here.
func addOneMonth(t time.Time) time.Time {
	y, m, d := t.Date()
	m++
	if m > time.December {
		m = time.January
		y++
	}
	if last := daysIn(y, m); d > last {
		d = last
	}
	h, min, sec := t.Clock()
	return time.Date(y, m, d, h, min, sec, t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
