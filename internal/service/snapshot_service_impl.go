package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chantcounter/internal/contract"
	"github.com/alexanderramin/chantcounter/internal/db"
	"github.com/alexanderramin/chantcounter/internal/importer"
	"github.com/alexanderramin/chantcounter/internal/repository"
)

type snapshotService struct {
	state    repository.StateRepo
	uow      db.UnitOfWork
	clock    func() time.Time
	reader   stateReader
	observer UseCaseObserver
}

func NewSnapshotService(state repository.StateRepo, uow db.UnitOfWork, opts Options, observers ...UseCaseObserver) SnapshotService {
	opts = opts.withDefaults()
	return &snapshotService{
		state:    state,
		uow:      uow,
		clock:    opts.Clock,
		reader:   stateReader{policy: opts.OnCorrupt, logger: opts.Logger},
		observer: combineObservers(observers),
	}
}

func (s *snapshotService) Export(ctx context.Context) (*importer.Snapshot, error) {
	log, err := s.reader.log(ctx, s.state)
	if err != nil {
		return nil, err
	}
	target, err := s.reader.target(ctx, s.state)
	if err != nil {
		return nil, err
	}
	return importer.NewSnapshot(log, target), nil
}

func (s *snapshotService) Import(ctx context.Context, filePath string) (*contract.ImportResult, error) {
	snap, err := importer.LoadSnapshot(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSnapshot(ctx, snap)
}

// ImportSnapshot replaces the log and target with the snapshot's. The
// addition history is cleared since it no longer adds up to the log.
func (s *snapshotService) ImportSnapshot(ctx context.Context, snap *importer.Snapshot) (result *contract.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dates": len(snap.ChantData)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import_snapshot",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateSnapshot(snap); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	log, target, err := importer.Convert(snap, s.clock().Year())
	if err != nil {
		return nil, fmt.Errorf("converting snapshot: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txState := repository.NewKVStateRepo(repository.NewSQLiteKVStore(tx))
		if err := txState.SaveLog(ctx, log); err != nil {
			return fmt.Errorf("saving log: %w", err)
		}
		if err := txState.SaveTarget(ctx, target); err != nil {
			return fmt.Errorf("saving target: %w", err)
		}
		return repository.NewSQLiteEntryRepo(tx).DeleteAll(ctx)
	})
	if err != nil {
		return nil, err
	}

	return &contract.ImportResult{
		Dates:      len(log),
		TotalCount: log.Total(),
		Target:     target,
	}, nil
}
