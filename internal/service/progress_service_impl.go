package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/chantcounter/internal/contract"
	"github.com/alexanderramin/chantcounter/internal/db"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/alexanderramin/chantcounter/internal/notify"
	"github.com/alexanderramin/chantcounter/internal/repository"
	"github.com/google/uuid"
)

type progressService struct {
	state    repository.StateRepo
	entries  repository.EntryRepo
	uow      db.UnitOfWork
	notifier notify.Notifier
	clock    func() time.Time
	reader   stateReader
	observer UseCaseObserver
}

func NewProgressService(
	state repository.StateRepo,
	entries repository.EntryRepo,
	uow db.UnitOfWork,
	notifier notify.Notifier,
	opts Options,
	observers ...UseCaseObserver,
) ProgressService {
	opts = opts.withDefaults()
	return &progressService{
		state:    state,
		entries:  entries,
		uow:      uow,
		notifier: notify.OrNoop(notifier),
		clock:    opts.Clock,
		reader:   stateReader{policy: opts.OnCorrupt, logger: opts.Logger},
		observer: combineObservers(observers),
	}
}

func (s *progressService) RecordCount(ctx context.Context, date string, delta int) (result *contract.RecordResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": date, "delta": delta}
	defer func() {
		if result != nil {
			fields["new"] = result.New
			fields["event"] = string(result.Event.Kind)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record_count",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := s.clock()
	date, err = resolveDate(date, now)
	if err != nil {
		return nil, err
	}
	if delta <= 0 {
		return nil, fmt.Errorf("count %d must be greater than zero: %w", delta, domain.ErrInvalidCount)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txState := repository.NewKVStateRepo(repository.NewSQLiteKVStore(tx))
		txEntries := repository.NewSQLiteEntryRepo(tx)

		log, err := s.reader.log(ctx, txState)
		if err != nil {
			return err
		}
		target, err := s.reader.target(ctx, txState)
		if err != nil {
			return err
		}

		previous, current, err := log.Add(date, delta)
		if err != nil {
			return err
		}
		if err := txState.SaveLog(ctx, log); err != nil {
			return fmt.Errorf("saving log: %w", err)
		}

		entry := &domain.CountEntry{
			ID:        uuid.New().String(),
			Date:      date,
			Delta:     delta,
			Previous:  previous,
			New:       current,
			CreatedAt: now.UTC(),
		}
		if err := txEntries.Create(ctx, entry); err != nil {
			return err
		}

		result = &contract.RecordResult{
			Date:     date,
			Delta:    delta,
			Previous: previous,
			New:      current,
			Target:   target.Daily,
			Event:    domain.ClassifyProgress(previous, current, target.Daily),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Addition(delta))
	if n, ok := notify.FromEvent(result.Event, result.Target); ok {
		s.notifier.Notify(ctx, n)
	}
	return result, nil
}

func (s *progressService) ResetDate(ctx context.Context, date string) (result *contract.ResetResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"date": date}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "reset_date",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	date, err = resolveDate(date, s.clock())
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txState := repository.NewKVStateRepo(repository.NewSQLiteKVStore(tx))
		log, err := s.reader.log(ctx, txState)
		if err != nil {
			return err
		}
		previous := log.Count(date)
		if err := log.Reset(date); err != nil {
			return err
		}
		if err := txState.SaveLog(ctx, log); err != nil {
			return fmt.Errorf("saving log: %w", err)
		}
		result = &contract.ResetResult{Date: date, Previous: previous}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["previous"] = result.Previous
	s.notifier.Notify(ctx, notify.Reset(date))
	return result, nil
}

func (s *progressService) SetTarget(ctx context.Context, mode domain.TargetMode, value int) (target domain.Target, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"mode": string(mode), "value": value}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "set_target",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if _, err := domain.ParseTargetMode(string(mode)); err != nil {
		return domain.Target{}, err
	}
	target, err = domain.NewTarget(mode, value, s.clock().Year())
	if err != nil {
		return domain.Target{}, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txState := repository.NewKVStateRepo(repository.NewSQLiteKVStore(tx))
		if err := txState.SaveTarget(ctx, target); err != nil {
			return fmt.Errorf("saving target: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Target{}, err
	}

	s.notifier.Notify(ctx, notify.TargetUpdated(target))
	return target, nil
}

func (s *progressService) Target(ctx context.Context) (domain.Target, error) {
	return s.reader.target(ctx, s.state)
}

func (s *progressService) Log(ctx context.Context) (domain.DailyLog, error) {
	return s.reader.log(ctx, s.state)
}

func (s *progressService) TotalCount(ctx context.Context) (int, error) {
	log, err := s.Log(ctx)
	if err != nil {
		return 0, err
	}
	return log.Total(), nil
}

func (s *progressService) DaysAtOrAboveTarget(ctx context.Context) (int, error) {
	log, err := s.Log(ctx)
	if err != nil {
		return 0, err
	}
	target, err := s.Target(ctx)
	if err != nil {
		return 0, err
	}
	return log.DaysAtOrAbove(target.Daily), nil
}

func (s *progressService) CompletionRate(ctx context.Context, asOf time.Time) (int, error) {
	stats, err := s.Stats(ctx, asOf)
	if err != nil {
		return 0, err
	}
	return stats.CompletionRate, nil
}

// Stats counts qualifying days across the whole log but divides by the days
// elapsed in asOf's year only, so the rate can exceed 100 once earlier years
// are logged.
func (s *progressService) Stats(ctx context.Context, asOf time.Time) (resp *contract.StatsResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "stats",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"as_of": domain.DateKey(asOf)},
		})
	}()

	log, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	target, err := s.Target(ctx)
	if err != nil {
		return nil, err
	}

	days := log.DaysAtOrAbove(target.Daily)
	elapsed := max(1, asOf.YearDay())
	return &contract.StatsResponse{
		AsOf:                asOf,
		Target:              target,
		TotalCount:          log.Total(),
		DaysAtOrAboveTarget: days,
		DaysElapsed:         elapsed,
		CompletionRate:      domain.PercentOf(days, elapsed),
	}, nil
}

func (s *progressService) Today(ctx context.Context, asOf time.Time) (*contract.TodayStatus, error) {
	log, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	target, err := s.Target(ctx)
	if err != nil {
		return nil, err
	}
	date := domain.DateKey(asOf)
	count := log.Count(date)
	return &contract.TodayStatus{
		Date:      date,
		Count:     count,
		Target:    target.Daily,
		RawPct:    domain.PercentOf(count, target.Daily),
		VisualPct: domain.CappedPercent(count, target.Daily),
	}, nil
}

func (s *progressService) History(ctx context.Context, date string, limit int) ([]*domain.CountEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if date == "" {
		return s.entries.ListRecent(ctx, limit)
	}
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	slices.Reverse(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
