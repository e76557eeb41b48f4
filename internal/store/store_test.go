package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSlotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SlotRepo()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var got payload
	ok, err := repo.Get(ctx, SlotProfile, &got)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for unwritten slot")
	}

	want := payload{Name: "Explorer", Count: 3}
	if err := repo.Put(ctx, SlotProfile, want); err != nil {
		t.Fatalf("put: %v", err)
	}

	ok, err = repo.Get(ctx, SlotProfile, &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("got %+v (ok=%v), want %+v", got, ok, want)
	}

	// Put replaces wholesale.
	want = payload{Name: "Explorer", Count: 4}
	if err := repo.Put(ctx, SlotProfile, want); err != nil {
		t.Fatalf("put (overwrite): %v", err)
	}
	if _, err := repo.Get(ctx, SlotProfile, &got); err != nil {
		t.Fatalf("get (overwrite): %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSlotDeleteAndClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SlotRepo()
	ctx := context.Background()

	if err := repo.Put(ctx, SlotAssessment, map[string]any{"a": 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put(ctx, SlotPlan, map[string]any{"b": 2}); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Deleting an absent slot is a no-op.
	if err := repo.Delete(ctx, SlotTier); err != nil {
		t.Fatalf("delete absent: %v", err)
	}

	if err := repo.Delete(ctx, SlotAssessment); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var v map[string]any
	if ok, _ := repo.Get(ctx, SlotAssessment, &v); ok {
		t.Fatal("expected assessment slot gone after delete")
	}
	if ok, _ := repo.Get(ctx, SlotPlan, &v); !ok {
		t.Fatal("expected plan slot to survive delete of another slot")
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if ok, _ := repo.Get(ctx, SlotPlan, &v); ok {
		t.Fatal("expected all slots gone after clear")
	}
}

func TestJournalEventsOrderedNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	entries := []JournalEventData{
		{EntryID: "e1", Date: "2026-08-30", TimeOfDay: "morning", Emotion: "joy", Intensity: 4},
		{EntryID: "e2", Date: "2026-08-30", TimeOfDay: "evening", Emotion: "calm", Intensity: 2},
		{EntryID: "e3", Date: "2026-08-31", TimeOfDay: "noon", Emotion: "anxiety", Intensity: 5},
	}
	for _, e := range entries {
		if err := repo.AppendJournal(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.EntryID, err)
		}
	}

	got, err := repo.QueryJournal(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	if got[0].EntryID != "e3" || got[2].EntryID != "e1" {
		t.Fatalf("unexpected order: %s, %s, %s", got[0].EntryID, got[1].EntryID, got[2].EntryID)
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Fatal("expected descending sequence numbers")
	}

	byDate, err := repo.QueryJournal(ctx, QueryOpts{Date: "2026-08-30"})
	if err != nil {
		t.Fatalf("query by date: %v", err)
	}
	if len(byDate) != 2 {
		t.Fatalf("expected 2 records for 2026-08-30, got %d", len(byDate))
	}

	limited, err := repo.QueryJournal(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 1 || limited[0].EntryID != "e3" {
		t.Fatalf("expected just e3, got %v", limited)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAssessment(ctx, AssessmentEventData{Action: "submitted", ProfileKey: "balanced", Score: 30, Answered: 29}); err != nil {
		t.Fatalf("append assessment: %v", err)
	}
	if err := repo.AppendActivity(ctx, ActivityEventData{Action: "generated", Date: "2026-08-31", Count: 4}); err != nil {
		t.Fatalf("append activity: %v", err)
	}
	if err := repo.AppendJournal(ctx, JournalEventData{EntryID: "e1", Date: "2026-08-31", TimeOfDay: "morning", Emotion: "joy", Intensity: 3}); err != nil {
		t.Fatalf("append journal: %v", err)
	}

	got, err := repo.QueryJournal(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query journal: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 journal record, got %d", len(got))
	}
	// Two events of other types came first; the counter is global.
	if got[0].Sequence != 3 {
		t.Fatalf("expected sequence 3, got %d", got[0].Sequence)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "daily-activities",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    450,
		Success:      true,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: `{"activities":[]}`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Purpose != "daily-activities" || events[0].OutputTokens != 80 {
		t.Fatalf("unexpected event: %+v", events[0])
	}

	byID, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if byID.RequestBody != data.RequestBody {
		t.Fatalf("request body mismatch: %q", byID.RequestBody)
	}

	if _, err := repo.GetLLMEvent(ctx, 9999); err == nil {
		t.Fatal("expected error for unknown event id")
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 1 || stats[0].Calls != 1 || stats[0].InputTokens != 120 {
		t.Fatalf("unexpected usage stats: %+v", stats)
	}
}
