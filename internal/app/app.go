// Package app wires the engine together: catalog, store, LLM provider,
// and the services the commands drive.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gwcare/glowy/internal/activities"
	"github.com/gwcare/glowy/internal/assessment"
	"github.com/gwcare/glowy/internal/catalog"
	"github.com/gwcare/glowy/internal/journal"
	"github.com/gwcare/glowy/internal/llm"
	"github.com/gwcare/glowy/internal/plan"
	"github.com/gwcare/glowy/internal/store"
	"github.com/gwcare/glowy/internal/user"
)

// Options configures App construction.
type Options struct {
	// DBPath is the SQLite file path.
	DBPath string

	// CatalogDir overrides the built-in question/plan/activity catalog.
	// Empty means the embedded seed catalog.
	CatalogDir string

	// Language selects the generated-activity language tag. Empty means
	// GLOWY_LANG, falling back to "en".
	Language string

	// DisableLLM skips provider discovery entirely.
	DisableLLM bool

	// ProfileLabel resolves a profile key to its display name. The
	// bound plan and the generation prompt carry the resolved label.
	// Nil keeps the raw key.
	ProfileLabel func(key string) string
}

// App holds every wired dependency for one process.
type App struct {
	Catalog  *catalog.Catalog
	Store    *store.Store
	Provider llm.Provider

	Activities *activities.Service
	Journal    *journal.Service

	Language string

	labelFor func(string) string
}

// New opens the store, loads the catalog, discovers an LLM provider,
// and builds the services. A missing or misconfigured provider is not
// fatal; generation degrades to the fallback pool.
func New(ctx context.Context, opts Options) (*App, error) {
	cat, err := catalog.Load(opts.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	lang := opts.Language
	if lang == "" {
		lang = os.Getenv("GLOWY_LANG")
	}
	if lang == "" {
		lang = "en"
	}

	labelFor := opts.ProfileLabel
	if labelFor == nil {
		labelFor = func(key string) string { return key }
	}

	a := &App{
		Catalog:  cat,
		Store:    st,
		Journal:  journal.NewService(st.EventRepo()),
		Language: lang,
		labelFor: labelFor,
	}

	var gen activities.Generator
	if !opts.DisableLLM {
		if cfg, ok := llm.DiscoverConfig(); ok {
			provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
			if err != nil {
				fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
				fmt.Fprintln(os.Stderr, "Daily activities will come from the generic pool.")
			} else if provider != nil {
				a.Provider = provider
				gen = activities.NewLLMGenerator(provider, activities.DefaultConfig())
			}
		}
	}

	var cached activities.CacheEntry
	entry := &cached
	if ok, err := st.SlotRepo().Get(ctx, store.SlotActivities, entry); err != nil || !ok {
		entry = nil
	}
	a.Activities = activities.NewService(cat, st.SlotRepo(), st.EventRepo(), gen, entry, activities.ServiceConfig{})

	return a, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// Assessment loads the assessment slot, returning a fresh record when
// none has been written.
func (a *App) Assessment(ctx context.Context) (*assessment.Record, error) {
	rec := assessment.NewRecord()
	ok, err := a.Store.SlotRepo().Get(ctx, store.SlotAssessment, rec)
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	if !ok {
		return assessment.NewRecord(), nil
	}
	if rec.Answers == nil {
		rec.Answers = make(assessment.AnswerSet)
	}
	return rec, nil
}

// SaveAssessment writes the assessment slot.
func (a *App) SaveAssessment(ctx context.Context, rec *assessment.Record) error {
	return a.Store.SlotRepo().Put(ctx, store.SlotAssessment, rec)
}

// Plan loads the bound support plan, or nil when none is bound.
func (a *App) Plan(ctx context.Context) (*plan.SupportPlan, error) {
	var sp plan.SupportPlan
	ok, err := a.Store.SlotRepo().Get(ctx, store.SlotPlan, &sp)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &sp, nil
}

// BindPlan binds and persists the support plan for a resolved result.
// It reports whether a template existed for the profile.
func (a *App) BindPlan(ctx context.Context, res assessment.Result) bool {
	sp, err := plan.Bind(a.Catalog, res.ProfileKey, a.labelFor(res.ProfileKey))
	if err != nil {
		return false
	}
	if err := a.Store.SlotRepo().Put(ctx, store.SlotPlan, sp); err != nil {
		fmt.Fprintln(os.Stderr, "warning: persist plan:", err)
	}
	return true
}

// ClearPlan removes the bound plan, if any.
func (a *App) ClearPlan(ctx context.Context) error {
	return a.Store.SlotRepo().Delete(ctx, store.SlotPlan)
}

// User loads the user profile slot, defaulting for a fresh install.
func (a *App) User(ctx context.Context) (user.Data, error) {
	d := user.DefaultData()
	if _, err := a.Store.SlotRepo().Get(ctx, store.SlotProfile, &d); err != nil {
		return d, fmt.Errorf("load user profile: %w", err)
	}
	return d, nil
}

// SaveUser writes the user profile slot.
func (a *App) SaveUser(ctx context.Context, d user.Data) error {
	return a.Store.SlotRepo().Put(ctx, store.SlotProfile, d)
}

// Tier loads the subscription tier, defaulting to free.
func (a *App) Tier(ctx context.Context) (user.Tier, error) {
	var slot user.TierSlot
	ok, err := a.Store.SlotRepo().Get(ctx, store.SlotTier, &slot)
	if err != nil {
		return user.TierFree, fmt.Errorf("load tier: %w", err)
	}
	if !ok || !slot.Tier.Valid() {
		return user.TierFree, nil
	}
	return slot.Tier, nil
}

// SaveTier writes the subscription tier slot.
func (a *App) SaveTier(ctx context.Context, t user.Tier) error {
	return a.Store.SlotRepo().Put(ctx, store.SlotTier, user.TierSlot{Tier: t})
}

// Reset clears every durable slot. The event log is kept; it is an
// audit trail, not user state.
func (a *App) Reset(ctx context.Context) error {
	return a.Store.SlotRepo().Clear(ctx)
}
