package activities

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwcare/glowy/internal/catalog"
	"github.com/gwcare/glowy/internal/plan"
	"github.com/gwcare/glowy/internal/store"
)

// mockGenerator returns canned batches or errors and counts calls.
type mockGenerator struct {
	mu     sync.Mutex
	result []Activity
	err    error
	delay  time.Duration
	calls  int
	inputs []GenerateInput
}

func (g *mockGenerator) Generate(_ context.Context, input GenerateInput) ([]Activity, error) {
	g.mu.Lock()
	g.calls++
	g.inputs = append(g.inputs, input)
	g.mu.Unlock()
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

func (g *mockGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

// mockSlotRepo records slot writes.
type mockSlotRepo struct {
	mu   sync.Mutex
	puts map[string][]any
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{puts: make(map[string][]any)}
}

func (m *mockSlotRepo) Get(context.Context, string, any) (bool, error) { return false, nil }
func (m *mockSlotRepo) Put(_ context.Context, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts[key] = append(m.puts[key], value)
	return nil
}
func (m *mockSlotRepo) Delete(context.Context, string) error { return nil }
func (m *mockSlotRepo) Clear(context.Context) error          { return nil }

// mockEventRepo records appended activity events.
type mockEventRepo struct {
	mu       sync.Mutex
	activity []store.ActivityEventData
}

func (m *mockEventRepo) AppendAssessment(context.Context, store.AssessmentEventData) error {
	return nil
}
func (m *mockEventRepo) AppendActivity(_ context.Context, data store.ActivityEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activity = append(m.activity, data)
	return nil
}
func (m *mockEventRepo) AppendJournal(context.Context, store.JournalEventData) error { return nil }
func (m *mockEventRepo) QueryJournal(context.Context, store.QueryOpts) ([]store.JournalRecord, error) {
	return nil, nil
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

func (m *mockEventRepo) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.activity))
	for i, e := range m.activity {
		out[i] = e.Action
	}
	return out
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load("")
	require.NoError(t, err)
	return c
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testPlan() *plan.SupportPlan {
	return &plan.SupportPlan{Profile: "Balanced", Weeks: []catalog.PlanWeek{{ThemeRef: "t", FocusRef: "f"}}}
}

var day1 = time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)

func TestTodayGeneratesOncePerDate(t *testing.T) {
	gen := &mockGenerator{result: []Activity{
		{ID: "act-1", Task: "Take a slow walk"},
		{ID: "act-2", Task: "Write one sentence about today"},
		{ID: "act-3", Task: "Stretch for two minutes"},
	}}
	slots := newMockSlotRepo()
	events := &mockEventRepo{}
	svc := NewService(testCatalog(t), slots, events, gen, nil, ServiceConfig{
		Now:  fixedClock(day1),
		Rand: testRand(),
	})

	ctx := context.Background()
	first, err := svc.Today(ctx, testPlan(), "en")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", first.Date)
	assert.Len(t, first.Activities, 3)

	second, err := svc.Today(ctx, testPlan(), "en")
	require.NoError(t, err)
	assert.Same(t, first, second)

	assert.Equal(t, 1, gen.callCount())
	assert.Equal(t, []string{"generated"}, events.actions())
	assert.Len(t, slots.puts[store.SlotActivities], 1)

	// The generator saw the profile label and the inspiration pool.
	require.Len(t, gen.inputs, 1)
	assert.Equal(t, "Balanced", gen.inputs[0].ProfileLabel)
	assert.NotEmpty(t, gen.inputs[0].Inspiration)
	assert.Equal(t, "en", gen.inputs[0].LanguageTag)
}

func TestTodayFallsBackOnGeneratorError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider down")}
	events := &mockEventRepo{}
	svc := NewService(testCatalog(t), newMockSlotRepo(), events, gen, nil, ServiceConfig{
		Now:  fixedClock(day1),
		Rand: testRand(),
	})

	ctx := context.Background()
	entry, err := svc.Today(ctx, testPlan(), "en")
	require.NoError(t, err)
	require.Len(t, entry.Activities, FallbackBatchSize)

	seen := make(map[string]bool)
	for _, act := range entry.Activities {
		assert.False(t, act.Completed)
		assert.NotEmpty(t, act.TaskRef)
		assert.False(t, seen[act.ID], "duplicate activity %s", act.ID)
		seen[act.ID] = true
	}
	assert.Equal(t, []string{"fallback"}, events.actions())

	// The failed generation is not retried for the same date.
	again, err := svc.Today(ctx, testPlan(), "en")
	require.NoError(t, err)
	assert.Same(t, entry, again)
	assert.Equal(t, 1, gen.callCount())
}

func TestTodayFallsBackWithoutPlan(t *testing.T) {
	gen := &mockGenerator{result: []Activity{{ID: "act-1", Task: "x"}}}
	svc := NewService(testCatalog(t), nil, nil, gen, nil, ServiceConfig{
		Now:  fixedClock(day1),
		Rand: testRand(),
	})

	entry, err := svc.Today(context.Background(), nil, "en")
	require.NoError(t, err)
	assert.Len(t, entry.Activities, FallbackBatchSize)
	assert.Equal(t, 0, gen.callCount())
}

func TestTodayFallsBackOnEmptyGeneration(t *testing.T) {
	gen := &mockGenerator{result: nil}
	svc := NewService(testCatalog(t), nil, nil, gen, nil, ServiceConfig{
		Now:  fixedClock(day1),
		Rand: testRand(),
	})

	entry, err := svc.Today(context.Background(), testPlan(), "en")
	require.NoError(t, err)
	assert.Len(t, entry.Activities, FallbackBatchSize)
	assert.Equal(t, 1, gen.callCount())
}

func TestTodayRollsOverAtMidnight(t *testing.T) {
	gen := &mockGenerator{result: []Activity{{ID: "act-1", Task: "x"}}}
	now := day1
	var mu sync.Mutex
	svc := NewService(testCatalog(t), nil, nil, gen, nil, ServiceConfig{
		Now: func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		},
		Rand: testRand(),
	})

	ctx := context.Background()
	first, err := svc.Today(ctx, testPlan(), "en")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", first.Date)

	mu.Lock()
	now = now.AddDate(0, 0, 1)
	mu.Unlock()

	second, err := svc.Today(ctx, testPlan(), "en")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", second.Date)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, gen.callCount())
}

func TestTodayUsesSeededSlotEntry(t *testing.T) {
	gen := &mockGenerator{result: []Activity{{ID: "act-1", Task: "x"}}}
	seeded := &CacheEntry{
		Date:       "2026-08-31",
		Activities: []Activity{{ID: "gen-1", TaskRef: "activities.generic_1", Completed: true}},
	}
	svc := NewService(testCatalog(t), nil, nil, gen, seeded, ServiceConfig{
		Now:  fixedClock(day1),
		Rand: testRand(),
	})

	entry, err := svc.Today(context.Background(), testPlan(), "en")
	require.NoError(t, err)
	assert.Same(t, seeded, entry)
	assert.Equal(t, 0, gen.callCount())
}

func TestTodaySharesOneGenerationAcrossCallers(t *testing.T) {
	gen := &mockGenerator{
		result: []Activity{{ID: "act-1", Task: "x"}},
		delay:  20 * time.Millisecond,
	}
	svc := NewService(testCatalog(t), nil, nil, gen, nil, ServiceConfig{
		Now:  fixedClock(day1),
		Rand: testRand(),
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	entries := make([]*CacheEntry, 5)
	for i := range entries {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			e, err := svc.Today(ctx, testPlan(), "en")
			assert.NoError(t, err)
			entries[i] = e
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, gen.callCount())
	for _, e := range entries[1:] {
		assert.Same(t, entries[0], e)
	}
}

func TestToggleComplete(t *testing.T) {
	gen := &mockGenerator{result: []Activity{
		{ID: "act-1", Task: "x"},
		{ID: "act-2", Task: "y"},
	}}
	slots := newMockSlotRepo()
	events := &mockEventRepo{}
	svc := NewService(testCatalog(t), slots, events, gen, nil, ServiceConfig{
		Now:  fixedClock(day1),
		Rand: testRand(),
	})

	ctx := context.Background()
	_, err := svc.Today(ctx, testPlan(), "en")
	require.NoError(t, err)

	require.True(t, svc.ToggleComplete(ctx, "act-1"))
	assert.True(t, svc.Entry().Activities[0].Completed)
	assert.False(t, svc.Entry().Activities[1].Completed)

	require.True(t, svc.ToggleComplete(ctx, "act-1"))
	assert.False(t, svc.Entry().Activities[0].Completed)

	// A stale id is a silent no-op with no persistence traffic.
	before := len(slots.puts[store.SlotActivities])
	assert.False(t, svc.ToggleComplete(ctx, "act-99"))
	assert.Len(t, slots.puts[store.SlotActivities], before)

	assert.Equal(t, []string{"generated", "toggled", "toggled"}, events.actions())
}

func TestDrawFallback(t *testing.T) {
	pool := testCatalog(t).FallbackPool

	batch := drawFallback(pool, testRand())
	require.Len(t, batch, FallbackBatchSize)
	seen := make(map[string]bool)
	for _, act := range batch {
		assert.False(t, seen[act.ID])
		seen[act.ID] = true
	}

	small := pool[:2]
	assert.Len(t, drawFallback(small, testRand()), 2)
}
