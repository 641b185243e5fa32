package repository

import (
	"context"

	"github.com/alexanderramin/chantcounter/internal/domain"
)

// Keys of the persisted records in the key-value store.
const (
	KeyLog             = "chantData"
	KeyTargetMode      = "targetType"
	KeyDailyTarget     = "dailyTarget"
	KeyMonthlyTarget   = "monthlyTarget"
	KeyYearlyTarget    = "yearlyTarget"
	KeyInstallAccepted = "installAccepted"
)

// KVStore is the opaque key-value persistence the progress state lives in.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// StateRepo reads and writes the typed progress state held in a KVStore.
// Missing records load as defaults.
type StateRepo interface {
	LoadLog(ctx context.Context) (domain.DailyLog, error)
	SaveLog(ctx context.Context, log domain.DailyLog) error
	LoadTarget(ctx context.Context) (domain.Target, error)
	SaveTarget(ctx context.Context, t domain.Target) error
	LoadInstallAccepted(ctx context.Context) (bool, error)
	SaveInstallAccepted(ctx context.Context, accepted bool) error
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.CountEntry) error
	ListRecent(ctx context.Context, limit int) ([]*domain.CountEntry, error)
	ListByDate(ctx context.Context, date string) ([]*domain.CountEntry, error)
	DeleteAll(ctx context.Context) error
}
