package activities

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/gwcare/glowy/internal/catalog"
	"github.com/gwcare/glowy/internal/plan"
	"github.com/gwcare/glowy/internal/store"
)

// Listener receives activity signals for the presentation collaborator.
type Listener interface {
	// ActivitiesChanged fires when a new batch is adopted or an item is
	// toggled.
	ActivitiesChanged(entry *CacheEntry)
}

// NopListener discards every signal.
type NopListener struct{}

func (NopListener) ActivitiesChanged(*CacheEntry) {}

// ServiceConfig configures a Service.
type ServiceConfig struct {
	// Now supplies the clock the date key is computed from. Nil means
	// time.Now.
	Now func() time.Time

	// Rand drives fallback sampling. Nil means a time-seeded PCG.
	Rand *rand.Rand

	// Listener receives signals. Nil means NopListener.
	Listener Listener
}

// Service owns the per-day activity batch: generation, fallback,
// caching keyed by calendar date, and completion toggling.
type Service struct {
	cat    *catalog.Catalog
	slots  store.SlotRepo
	events store.EventRepo
	gen    Generator
	cfg    ServiceConfig

	mu     sync.Mutex
	entry  *CacheEntry
	flight singleflight.Group
}

// NewService creates an activity service. entry seeds the in-memory
// cache from the durable slot and may be nil. gen may be nil when
// generation is disabled; the service then always draws from the
// fallback pool.
func NewService(cat *catalog.Catalog, slots store.SlotRepo, events store.EventRepo, gen Generator, entry *CacheEntry, cfg ServiceConfig) *Service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		now := time.Now().UnixNano()
		cfg.Rand = rand.New(rand.NewPCG(uint64(now), uint64(now>>32)))
	}
	if cfg.Listener == nil {
		cfg.Listener = NopListener{}
	}
	return &Service{cat: cat, slots: slots, events: events, gen: gen, entry: entry, cfg: cfg}
}

// Today returns the activity batch for the current calendar date,
// producing and persisting a new one when the date has advanced. The
// date key is computed at the point of query, never cached across
// midnight. Generation runs at most once per date; concurrent callers
// for the same day share one attempt. Generation failures degrade
// silently to the fallback pool.
func (s *Service) Today(ctx context.Context, sp *plan.SupportPlan, languageTag string) (*CacheEntry, error) {
	key := DateKey(s.cfg.Now())

	if e := s.cached(key); e != nil {
		return e, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		return s.buildToday(ctx, key, sp, languageTag), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CacheEntry), nil
}

// cached returns the live entry when it matches key and is non-empty.
func (s *Service) cached(key string) *CacheEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entry != nil && s.entry.Date == key && len(s.entry.Activities) > 0 {
		return s.entry
	}
	return nil
}

func (s *Service) buildToday(ctx context.Context, key string, sp *plan.SupportPlan, languageTag string) *CacheEntry {
	// A duplicate caller may have been queued behind the winner.
	if e := s.cached(key); e != nil {
		return e
	}

	action := "fallback"
	var batch []Activity

	if s.gen != nil && sp != nil {
		generated, err := s.gen.Generate(ctx, GenerateInput{
			ProfileLabel: sp.Profile,
			Inspiration:  s.cat.Inspiration,
			LanguageTag:  languageTag,
		})
		if err != nil {
			// Degrades to the fallback pool; never user-facing.
			fmt.Fprintf(os.Stderr, "warning: activity generation failed, using fallback pool: %v\n", err)
		} else if len(generated) > 0 {
			batch = generated
			action = "generated"
		}
	}

	if batch == nil {
		batch = drawFallback(s.cat.FallbackPool, s.cfg.Rand)
	}

	entry := &CacheEntry{Date: key, Activities: batch}

	s.mu.Lock()
	s.entry = entry
	s.mu.Unlock()

	s.persist(ctx, entry)
	s.appendEvent(ctx, store.ActivityEventData{
		Action: action,
		Date:   key,
		Count:  len(batch),
	})
	s.cfg.Listener.ActivitiesChanged(entry)
	return entry
}

// ToggleComplete flips the completed flag on the matching activity in
// the live batch. Unknown ids (e.g. a stale reference from before a
// day rollover) are a silent no-op.
func (s *Service) ToggleComplete(ctx context.Context, activityID string) bool {
	s.mu.Lock()
	var toggled *Activity
	if s.entry != nil {
		for i := range s.entry.Activities {
			if s.entry.Activities[i].ID == activityID {
				s.entry.Activities[i].Completed = !s.entry.Activities[i].Completed
				toggled = &s.entry.Activities[i]
				break
			}
		}
	}
	entry := s.entry
	s.mu.Unlock()

	if toggled == nil {
		return false
	}

	s.persist(ctx, entry)
	s.appendEvent(ctx, store.ActivityEventData{
		Action:     "toggled",
		Date:       entry.Date,
		ActivityID: activityID,
		Completed:  toggled.Completed,
	})
	s.cfg.Listener.ActivitiesChanged(entry)
	return true
}

// Entry returns the live cache entry without producing a new one.
func (s *Service) Entry() *CacheEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry
}

func (s *Service) persist(ctx context.Context, entry *CacheEntry) {
	if s.slots == nil {
		return
	}
	if err := s.slots.Put(ctx, store.SlotActivities, entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist today's activities: %v\n", err)
	}
}

func (s *Service) appendEvent(ctx context.Context, data store.ActivityEventData) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendActivity(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log activity event: %v\n", err)
	}
}
