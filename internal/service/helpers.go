package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/alexanderramin/chantcounter/internal/repository"
)

// Options tunes a service. The zero value uses the wall clock, fails on
// corrupt state and discards warnings.
type Options struct {
	Clock     func() time.Time
	OnCorrupt domain.CorruptStatePolicy
	Logger    *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.OnCorrupt == "" {
		o.OnCorrupt = domain.CorruptStateFail
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// stateReader applies the corrupt-state policy to reads of the persisted
// progress state.
type stateReader struct {
	policy domain.CorruptStatePolicy
	logger *slog.Logger
}

func (r stateReader) log(ctx context.Context, repo repository.StateRepo) (domain.DailyLog, error) {
	log, err := repo.LoadLog(ctx)
	if r.recover(ctx, "log", err) {
		return domain.DailyLog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading log: %w", err)
	}
	return log, nil
}

func (r stateReader) target(ctx context.Context, repo repository.StateRepo) (domain.Target, error) {
	t, err := repo.LoadTarget(ctx)
	if r.recover(ctx, "target", err) {
		return domain.DefaultTarget(), nil
	}
	if err != nil {
		return domain.Target{}, fmt.Errorf("loading target: %w", err)
	}
	return t, nil
}

func (r stateReader) recover(ctx context.Context, record string, err error) bool {
	if err == nil || !errors.Is(err, repository.ErrCorruptState) || r.policy != domain.CorruptStateReset {
		return false
	}
	r.logger.WarnContext(ctx, "discarding corrupt state", "record", record, "error", err.Error())
	return true
}

// resolveDate returns date, or today's local date when date is empty.
func resolveDate(date string, now time.Time) (string, error) {
	if date == "" {
		return domain.DateKey(now), nil
	}
	if _, err := domain.ParseDate(date); err != nil {
		return "", err
	}
	return date, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
