package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/chantcounter/internal/domain"
)

// KVStateRepo stores the progress state as flat records: the daily log as
// one JSON object and each target field as its own key.
type KVStateRepo struct {
	kv KVStore
}

func NewKVStateRepo(kv KVStore) *KVStateRepo {
	return &KVStateRepo{kv: kv}
}

func (r *KVStateRepo) LoadLog(ctx context.Context) (domain.DailyLog, error) {
	raw, err := r.kv.Get(ctx, KeyLog)
	if errors.Is(err, ErrNotFound) {
		return domain.DailyLog{}, nil
	}
	if err != nil {
		return nil, err
	}

	log := domain.DailyLog{}
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil, fmt.Errorf("decoding %s: %v: %w", KeyLog, err, ErrCorruptState)
	}
	if log == nil {
		log = domain.DailyLog{}
	}
	if errs := log.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("decoding %s: %v: %w", KeyLog, errs[0], ErrCorruptState)
	}
	return log, nil
}

func (r *KVStateRepo) SaveLog(ctx context.Context, log domain.DailyLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", KeyLog, err)
	}
	return r.kv.Set(ctx, KeyLog, string(data))
}

// LoadTarget starts from the default target and overrides each field that
// has been persisted.
func (r *KVStateRepo) LoadTarget(ctx context.Context) (domain.Target, error) {
	t := domain.DefaultTarget()

	mode, err := r.kv.Get(ctx, KeyTargetMode)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return t, err
	default:
		m, parseErr := domain.ParseTargetMode(mode)
		if parseErr != nil {
			return t, fmt.Errorf("decoding %s: %v: %w", KeyTargetMode, parseErr, ErrCorruptState)
		}
		t.Mode = m
	}

	fields := []struct {
		key string
		dst *int
	}{
		{KeyDailyTarget, &t.Daily},
		{KeyMonthlyTarget, &t.Monthly},
		{KeyYearlyTarget, &t.Yearly},
	}
	for _, f := range fields {
		if err := r.loadInt(ctx, f.key, f.dst); err != nil {
			return t, err
		}
	}
	return t, nil
}

func (r *KVStateRepo) loadInt(ctx context.Context, key string, dst *int) error {
	raw, err := r.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fmt.Errorf("decoding %s=%q: %w", key, raw, ErrCorruptState)
	}
	*dst = n
	return nil
}

func (r *KVStateRepo) SaveTarget(ctx context.Context, t domain.Target) error {
	records := []struct {
		key   string
		value string
	}{
		{KeyTargetMode, string(t.Mode)},
		{KeyDailyTarget, strconv.Itoa(t.Daily)},
		{KeyMonthlyTarget, strconv.Itoa(t.Monthly)},
		{KeyYearlyTarget, strconv.Itoa(t.Yearly)},
	}
	for _, rec := range records {
		if err := r.kv.Set(ctx, rec.key, rec.value); err != nil {
			return err
		}
	}
	return nil
}

func (r *KVStateRepo) LoadInstallAccepted(ctx context.Context) (bool, error) {
	raw, err := r.kv.Get(ctx, KeyInstallAccepted)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	accepted, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("decoding %s=%q: %w", KeyInstallAccepted, raw, ErrCorruptState)
	}
	return accepted, nil
}

func (r *KVStateRepo) SaveInstallAccepted(ctx context.Context, accepted bool) error {
	return r.kv.Set(ctx, KeyInstallAccepted, boolToString(accepted))
}
