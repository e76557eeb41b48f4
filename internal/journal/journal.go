// Package journal records short emotional check-ins in the event log.
package journal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gwcare/glowy/internal/store"
)

// TimeOfDay buckets an entry within its day.
type TimeOfDay string

const (
	Morning TimeOfDay = "morning"
	Noon    TimeOfDay = "noon"
	Evening TimeOfDay = "evening"
)

var timeOfDayRank = map[TimeOfDay]int{Morning: 0, Noon: 1, Evening: 2}

// Valid reports whether t is a known bucket.
func (t TimeOfDay) Valid() bool {
	_, ok := timeOfDayRank[t]
	return ok
}

// Emotion is the named feeling attached to an entry.
type Emotion string

const (
	Joy     Emotion = "joy"
	Sadness Emotion = "sadness"
	Anger   Emotion = "anger"
	Calm    Emotion = "calm"
	Anxiety Emotion = "anxiety"
)

// Valid reports whether e is a known emotion.
func (e Emotion) Valid() bool {
	switch e {
	case Joy, Sadness, Anger, Calm, Anxiety:
		return true
	}
	return false
}

// Entry is a single check-in.
type Entry struct {
	ID        string
	Date      string // YYYY-MM-DD
	TimeOfDay TimeOfDay
	Emotion   Emotion
	Intensity int // 1..5
	Note      string
	CreatedAt time.Time
}

// Service validates and appends journal entries.
type Service struct {
	events store.EventRepo

	// Now is the clock used to stamp new entries. Tests override it.
	Now func() time.Time
	// NewID mints entry ids. Tests override it.
	NewID func() string
}

// NewService returns a Service writing through events.
func NewService(events store.EventRepo) *Service {
	return &Service{
		events: events,
		Now:    time.Now,
		NewID:  uuid.NewString,
	}
}

// AddInput is what callers supply for a new entry. Date defaults to
// today when empty.
type AddInput struct {
	Date      string
	TimeOfDay TimeOfDay
	Emotion   Emotion
	Intensity int
	Note      string
}

// Add validates in and appends it to the event log.
func (s *Service) Add(ctx context.Context, in AddInput) (Entry, error) {
	if !in.TimeOfDay.Valid() {
		return Entry{}, fmt.Errorf("journal: unknown time of day %q", in.TimeOfDay)
	}
	if !in.Emotion.Valid() {
		return Entry{}, fmt.Errorf("journal: unknown emotion %q", in.Emotion)
	}
	if in.Intensity < 1 || in.Intensity > 5 {
		return Entry{}, fmt.Errorf("journal: intensity %d out of range 1..5", in.Intensity)
	}
	now := s.Now()
	date := in.Date
	if date == "" {
		date = now.Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return Entry{}, fmt.Errorf("journal: bad date %q: %w", in.Date, err)
	}
	e := Entry{
		ID:        s.NewID(),
		Date:      date,
		TimeOfDay: in.TimeOfDay,
		Emotion:   in.Emotion,
		Intensity: in.Intensity,
		Note:      in.Note,
		CreatedAt: now,
	}
	err := s.events.AppendJournal(ctx, store.JournalEventData{
		EntryID:   e.ID,
		Date:      e.Date,
		TimeOfDay: string(e.TimeOfDay),
		Emotion:   string(e.Emotion),
		Intensity: e.Intensity,
		Note:      e.Note,
	})
	if err != nil {
		return Entry{}, fmt.Errorf("journal: append: %w", err)
	}
	return e, nil
}

// List returns entries, newest day first, ordered morning to evening
// within a day. A non-empty date restricts to that day.
func (s *Service) List(ctx context.Context, date string, limit int) ([]Entry, error) {
	recs, err := s.events.QueryJournal(ctx, store.QueryOpts{Date: date, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("journal: query: %w", err)
	}
	entries := make([]Entry, 0, len(recs))
	for _, r := range recs {
		entries = append(entries, Entry{
			ID:        r.EntryID,
			Date:      r.Date,
			TimeOfDay: TimeOfDay(r.TimeOfDay),
			Emotion:   Emotion(r.Emotion),
			Intensity: r.Intensity,
			Note:      r.Note,
			CreatedAt: r.Timestamp,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return timeOfDayRank[entries[i].TimeOfDay] < timeOfDayRank[entries[j].TimeOfDay]
	})
	return entries, nil
}
