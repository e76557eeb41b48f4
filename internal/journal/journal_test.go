package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwcare/glowy/internal/store"
)

// mockEventRepo captures journal appends and serves canned queries.
type mockEventRepo struct {
	appended []store.JournalEventData
	records  []store.JournalRecord
}

func (m *mockEventRepo) AppendAssessment(context.Context, store.AssessmentEventData) error {
	return nil
}
func (m *mockEventRepo) AppendActivity(context.Context, store.ActivityEventData) error { return nil }
func (m *mockEventRepo) AppendJournal(_ context.Context, data store.JournalEventData) error {
	m.appended = append(m.appended, data)
	return nil
}
func (m *mockEventRepo) QueryJournal(_ context.Context, opts store.QueryOpts) ([]store.JournalRecord, error) {
	if opts.Date == "" {
		return m.records, nil
	}
	var out []store.JournalRecord
	for _, r := range m.records {
		if r.Date == opts.Date {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *mockEventRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func newTestService(repo *mockEventRepo) *Service {
	svc := NewService(repo)
	svc.Now = func() time.Time {
		return time.Date(2026, time.August, 31, 14, 0, 0, 0, time.UTC)
	}
	svc.NewID = func() string { return "entry-1" }
	return svc
}

func TestAdd(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestService(repo)

	entry, err := svc.Add(context.Background(), AddInput{
		TimeOfDay: Evening,
		Emotion:   Calm,
		Intensity: 3,
		Note:      "quiet evening",
	})
	require.NoError(t, err)

	assert.Equal(t, "entry-1", entry.ID)
	assert.Equal(t, "2026-08-31", entry.Date) // defaults to today
	assert.Equal(t, Evening, entry.TimeOfDay)
	assert.Equal(t, Calm, entry.Emotion)

	require.Len(t, repo.appended, 1)
	assert.Equal(t, "entry-1", repo.appended[0].EntryID)
	assert.Equal(t, "evening", repo.appended[0].TimeOfDay)
	assert.Equal(t, "calm", repo.appended[0].Emotion)
	assert.Equal(t, 3, repo.appended[0].Intensity)
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   AddInput
		wantErr string
	}{
		{
			name:    "unknown time of day",
			input:   AddInput{TimeOfDay: "midnight", Emotion: Joy, Intensity: 3},
			wantErr: "time of day",
		},
		{
			name:    "unknown emotion",
			input:   AddInput{TimeOfDay: Morning, Emotion: "boredom", Intensity: 3},
			wantErr: "emotion",
		},
		{
			name:    "intensity too low",
			input:   AddInput{TimeOfDay: Morning, Emotion: Joy, Intensity: 0},
			wantErr: "intensity",
		},
		{
			name:    "intensity too high",
			input:   AddInput{TimeOfDay: Morning, Emotion: Joy, Intensity: 6},
			wantErr: "intensity",
		},
		{
			name:    "malformed date",
			input:   AddInput{Date: "31/08/2026", TimeOfDay: Morning, Emotion: Joy, Intensity: 3},
			wantErr: "bad date",
		},
	}

	repo := &mockEventRepo{}
	svc := newTestService(repo)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
	assert.Empty(t, repo.appended)
}

func TestListOrdersByDayThenTimeOfDay(t *testing.T) {
	repo := &mockEventRepo{records: []store.JournalRecord{
		{JournalEventData: store.JournalEventData{EntryID: "e1", Date: "2026-08-30", TimeOfDay: "evening", Emotion: "joy", Intensity: 4}},
		{JournalEventData: store.JournalEventData{EntryID: "e2", Date: "2026-08-31", TimeOfDay: "noon", Emotion: "calm", Intensity: 2}},
		{JournalEventData: store.JournalEventData{EntryID: "e3", Date: "2026-08-31", TimeOfDay: "morning", Emotion: "anxiety", Intensity: 5}},
		{JournalEventData: store.JournalEventData{EntryID: "e4", Date: "2026-08-30", TimeOfDay: "morning", Emotion: "sadness", Intensity: 1}},
	}}
	svc := newTestService(repo)

	entries, err := svc.List(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	ids := []string{entries[0].ID, entries[1].ID, entries[2].ID, entries[3].ID}
	assert.Equal(t, []string{"e3", "e2", "e4", "e1"}, ids)
}

func TestListFiltersByDate(t *testing.T) {
	repo := &mockEventRepo{records: []store.JournalRecord{
		{JournalEventData: store.JournalEventData{EntryID: "e1", Date: "2026-08-30", TimeOfDay: "morning", Emotion: "joy", Intensity: 4}},
		{JournalEventData: store.JournalEventData{EntryID: "e2", Date: "2026-08-31", TimeOfDay: "noon", Emotion: "calm", Intensity: 2}},
	}}
	svc := newTestService(repo)

	entries, err := svc.List(context.Background(), "2026-08-31", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e2", entries[0].ID)
}
