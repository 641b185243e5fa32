package service

import (
	"context"
	"time"

	"github.com/alexanderramin/chantcounter/internal/contract"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/alexanderramin/chantcounter/internal/importer"
)

// ProgressService owns the daily log and the target. Mutations persist
// before they return and dispatch notifications after the commit.
type ProgressService interface {
	// RecordCount adds delta to date. An empty date means today.
	RecordCount(ctx context.Context, date string, delta int) (*contract.RecordResult, error)
	// ResetDate sets the count for date to zero. An empty date means today.
	ResetDate(ctx context.Context, date string) (*contract.ResetResult, error)
	SetTarget(ctx context.Context, mode domain.TargetMode, value int) (domain.Target, error)

	Target(ctx context.Context) (domain.Target, error)
	Log(ctx context.Context) (domain.DailyLog, error)
	TotalCount(ctx context.Context) (int, error)
	DaysAtOrAboveTarget(ctx context.Context) (int, error)
	CompletionRate(ctx context.Context, asOf time.Time) (int, error)
	Stats(ctx context.Context, asOf time.Time) (*contract.StatsResponse, error)
	Today(ctx context.Context, asOf time.Time) (*contract.TodayStatus, error)
	// History lists recent additions, newest first. An empty date lists
	// every date.
	History(ctx context.Context, date string, limit int) ([]*domain.CountEntry, error)
}

type SnapshotService interface {
	Export(ctx context.Context) (*importer.Snapshot, error)
	Import(ctx context.Context, filePath string) (*contract.ImportResult, error)
	ImportSnapshot(ctx context.Context, s *importer.Snapshot) (*contract.ImportResult, error)
}

// InstallService tracks whether the user accepted the install prompt.
type InstallService interface {
	Accepted(ctx context.Context) (bool, error)
	Accept(ctx context.Context) error
}
