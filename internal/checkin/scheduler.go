// Package checkin runs the periodic progress check-in.
package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chantcounter/internal/contract"
	"github.com/alexanderramin/chantcounter/internal/notify"
)

const DefaultInterval = time.Hour

// Scheduler calls Check every Interval until its context is cancelled.
// A failed check is reported to OnError and does not stop the schedule.
type Scheduler struct {
	Interval time.Duration
	Check    func(ctx context.Context) error
	OnError  func(err error)
}

// Run blocks until ctx is cancelled. The first check happens one interval
// after Run starts.
func (s *Scheduler) Run(ctx context.Context) error {
	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	if s.Check == nil {
		return fmt.Errorf("checkin: no check function")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Check(ctx); err != nil && s.OnError != nil && ctx.Err() == nil {
				s.OnError(err)
			}
		}
	}
}

// StatusSource reports progress for a date.
type StatusSource interface {
	Today(ctx context.Context, asOf time.Time) (*contract.TodayStatus, error)
}

// NotifyProgress returns a check that sends today's progress as a check-in
// notification.
func NotifyProgress(src StatusSource, n notify.Notifier, clock func() time.Time) func(ctx context.Context) error {
	if clock == nil {
		clock = time.Now
	}
	n = notify.OrNoop(n)
	return func(ctx context.Context) error {
		status, err := src.Today(ctx, clock())
		if err != nil {
			return fmt.Errorf("checkin: %w", err)
		}
		n.Notify(ctx, notify.Checkin(status.Count, status.Target))
		return nil
	}
}
