package testutil

import (
	"time"

	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/google/uuid"
)

// Date returns local midnight of the given calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// FixedClock returns a clock func that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Entry options
type EntryOption func(*domain.CountEntry)

func WithCreatedAt(t time.Time) EntryOption {
	return func(e *domain.CountEntry) {
		e.CreatedAt = t
	}
}

func WithPrevious(n int) EntryOption {
	return func(e *domain.CountEntry) {
		e.Previous = n
		e.New = n + e.Delta
	}
}

func NewTestEntry(date string, delta int, opts ...EntryOption) *domain.CountEntry {
	e := &domain.CountEntry{
		ID:        uuid.New().String(),
		Date:      date,
		Delta:     delta,
		Previous:  0,
		New:       delta,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestLog builds a DailyLog from alternating date/count pairs.
func NewTestLog(pairs ...any) domain.DailyLog {
	log := domain.DailyLog{}
	for i := 0; i+1 < len(pairs); i += 2 {
		log[pairs[i].(string)] = pairs[i+1].(int)
	}
	return log
}
