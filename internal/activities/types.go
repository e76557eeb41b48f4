package activities

import "time"

// Activity is one actionable daily task. Generated activities carry
// direct Task text; fallback activities carry a TaskRef localization
// key. Completed is the only field that changes after creation.
type Activity struct {
	ID        string `json:"id"`
	Task      string `json:"task,omitempty"`
	TaskRef   string `json:"taskRef,omitempty"`
	Completed bool   `json:"completed"`
}

// CacheEntry is one day's activity batch. Exactly one entry is live at
// a time; a new calendar date invalidates the previous one wholesale.
type CacheEntry struct {
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

// DateKey formats t as the YYYY-MM-DD cache key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FallbackBatchSize is how many activities a fallback draw produces.
const FallbackBatchSize = 4
