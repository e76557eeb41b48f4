package store

import (
	"context"
	"time"
)

// Slot keys for the engine's durable single-value state.
const (
	SlotAssessment = "assessment"
	SlotPlan       = "plan"
	SlotActivities = "activities"
	SlotProfile    = "profile"
	SlotTier       = "tier"
)

// SlotRepo stores one JSON value per named slot. The engine reads its
// slots at startup and writes them back after each mutating operation;
// values are replaced wholesale, never merged.
type SlotRepo interface {
	// Get unmarshals the slot value into dest. Returns false when the
	// slot has never been written.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Put replaces the slot value.
	Put(ctx context.Context, key string, value any) error

	// Delete clears one slot. Deleting an absent slot is a no-op.
	Delete(ctx context.Context, key string) error

	// Clear deletes every slot.
	Clear(ctx context.Context) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	Date  string // restrict to one calendar date (YYYY-MM-DD), when set
}

// AssessmentEventData captures one assessment lifecycle event.
type AssessmentEventData struct {
	Action     string // submitted or retaken
	ProfileKey string
	Score      int
	Answered   int
	PlanBound  bool
}

// ActivityEventData captures one daily-activity cache event.
type ActivityEventData struct {
	Action     string // generated, fallback, or toggled
	Date       string
	ActivityID string
	Count      int
	Completed  bool
}

// JournalEventData captures one emotion check-in.
type JournalEventData struct {
	EntryID   string
	Date      string
	TimeOfDay string
	Emotion   string
	Intensity int
	Note      string
}

// JournalRecord is a stored journal entry with its event metadata.
type JournalRecord struct {
	JournalEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	LLMRequestEventData
	ID        int
	Timestamp time.Time
}

// LLMUsageStats aggregates request events per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendAssessment(ctx context.Context, data AssessmentEventData) error
	AppendActivity(ctx context.Context, data ActivityEventData) error

	AppendJournal(ctx context.Context, data JournalEventData) error
	// QueryJournal returns entries newest-first, optionally filtered to
	// one date.
	QueryJournal(ctx context.Context, opts QueryOpts) ([]JournalRecord, error)

	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
}
