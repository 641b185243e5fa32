package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/chantcounter/internal/db"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/alexanderramin/chantcounter/internal/notify"
	"github.com/alexanderramin/chantcounter/internal/repository"
	"github.com/alexanderramin/chantcounter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	got []notify.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n notify.Notification) {
	r.got = append(r.got, n)
}

func (r *recordingNotifier) kinds() []notify.Kind {
	out := make([]notify.Kind, 0, len(r.got))
	for _, n := range r.got {
		out = append(out, n.Kind)
	}
	return out
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

type progressFixture struct {
	svc      ProgressService
	state    repository.StateRepo
	entries  repository.EntryRepo
	notifier *recordingNotifier
	kv       *repository.SQLiteKVStore
}

var fixedNow = testutil.Date(2024, time.March, 15).Add(9 * time.Hour)

func newProgressFixture(t *testing.T, uowFor func(database *sql.DB) db.UnitOfWork, opts Options, observers ...UseCaseObserver) *progressFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	kv := repository.NewSQLiteKVStore(database)
	state := repository.NewKVStateRepo(kv)
	entries := repository.NewSQLiteEntryRepo(database)
	notifier := &recordingNotifier{}
	if opts.Clock == nil {
		opts.Clock = testutil.FixedClock(fixedNow)
	}

	uow := testutil.NewTestUoW(database)
	if uowFor != nil {
		uow = uowFor(database)
	}
	return &progressFixture{
		svc:      NewProgressService(state, entries, uow, notifier, opts, observers...),
		state:    state,
		entries:  entries,
		notifier: notifier,
		kv:       kv,
	}
}

func TestRecordCount_RejectsOverflow(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()

	_, err := f.svc.RecordCount(ctx, "2024-03-01", math.MaxInt)
	assert.ErrorIs(t, err, domain.ErrInvalidCount)

	require.NoError(t, f.state.SaveLog(ctx, domain.DailyLog{"2024-03-01": math.MaxInt - 1}))
	_, err = f.svc.RecordCount(ctx, "2024-03-01", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidCount)

	log, err := f.state.LoadLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt-1, log.Count("2024-03-01"), "state unchanged")
	entries, err := f.entries.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordCount_NewDate(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()

	res, err := f.svc.RecordCount(ctx, "2024-03-01", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Previous)
	assert.Equal(t, 10, res.New)
	assert.Equal(t, 108, res.Target)
	assert.Equal(t, domain.EventNone, res.Event.Kind)

	log, err := f.state.LoadLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, log.Count("2024-03-01"))

	entries, err := f.entries.ListByDate(ctx, "2024-03-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 10, entries[0].Delta)
	assert.Equal(t, []notify.Kind{notify.KindAddition}, f.notifier.kinds())
}

func TestRecordCount_Accumulates(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()

	_, err := f.svc.RecordCount(ctx, "2024-03-01", 30)
	require.NoError(t, err)
	res, err := f.svc.RecordCount(ctx, "2024-03-01", 12)
	require.NoError(t, err)
	assert.Equal(t, 30, res.Previous)
	assert.Equal(t, 42, res.New)
}

func TestRecordCount_Events(t *testing.T) {
	tests := []struct {
		name      string
		seed      int
		delta     int
		wantKind  domain.EventKind
		wantPct   int
		wantKinds []notify.Kind
	}{
		{"milestone at half", 50, 10, domain.EventMilestone, 50, []notify.Kind{notify.KindAddition, notify.KindMilestone}},
		{"target achieved", 100, 10, domain.EventTargetAchieved, 100, []notify.Kind{notify.KindAddition, notify.KindAchieved}},
		{"zero to over target fires once", 0, 500, domain.EventTargetAchieved, 100, []notify.Kind{notify.KindAddition, notify.KindAchieved}},
		{"already past target", 120, 1, domain.EventNone, 0, []notify.Kind{notify.KindAddition}},
		{"milestone at 150", 150, 20, domain.EventMilestone, 150, []notify.Kind{notify.KindAddition, notify.KindMilestone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProgressFixture(t, nil, Options{})
			ctx := context.Background()
			if tt.seed > 0 {
				require.NoError(t, f.state.SaveLog(ctx, domain.DailyLog{"2024-03-15": tt.seed}))
			}

			res, err := f.svc.RecordCount(ctx, "", tt.delta)
			require.NoError(t, err)
			assert.Equal(t, "2024-03-15", res.Date)
			assert.Equal(t, tt.wantKind, res.Event.Kind)
			assert.Equal(t, tt.wantPct, res.Event.Percent)
			assert.Equal(t, tt.wantKinds, f.notifier.kinds())
		})
	}
}

func TestRecordCount_RejectsInvalidInput(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()

	for _, delta := range []int{0, -5} {
		_, err := f.svc.RecordCount(ctx, "2024-03-01", delta)
		assert.ErrorIs(t, err, domain.ErrInvalidCount)
	}
	_, err := f.svc.RecordCount(ctx, "03/01/2024", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	log, err := f.state.LoadLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)
	assert.Empty(t, f.notifier.got)
}

func TestRecordCount_RollbackOnEntryInsertFailure(t *testing.T) {
	// Exec #1 saves the log, exec #2 inserts the count entry.
	injected := errors.New("injected entry insert failure")
	f := newProgressFixture(t, func(database *sql.DB) db.UnitOfWork {
		return &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	}, Options{})
	ctx := context.Background()

	_, err := f.svc.RecordCount(ctx, "2024-03-01", 10)
	require.ErrorIs(t, err, injected)

	log, err := f.state.LoadLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, log.Count("2024-03-01"))

	entries, err := f.entries.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, f.notifier.got)
}

func TestResetDate_Idempotent(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()
	require.NoError(t, f.state.SaveLog(ctx, domain.DailyLog{"2024-03-15": 77, "2024-03-14": 5}))

	res, err := f.svc.ResetDate(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", res.Date)
	assert.Equal(t, 77, res.Previous)

	res, err = f.svc.ResetDate(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Previous)

	log, err := f.state.LoadLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, log.Count("2024-03-15"))
	assert.Equal(t, 5, log.Count("2024-03-14"))
	assert.Equal(t, []notify.Kind{notify.KindReset, notify.KindReset}, f.notifier.kinds())
}

func TestSetTarget_RecomputesAndPersists(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()

	got, err := f.svc.SetTarget(ctx, domain.TargetMonthly, 3000)
	require.NoError(t, err)
	assert.Equal(t, domain.Target{Mode: domain.TargetMonthly, Daily: 100, Monthly: 3000, Yearly: 36600}, got)

	stored, err := f.svc.Target(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
	assert.Equal(t, []notify.Kind{notify.KindTarget}, f.notifier.kinds())
}

func TestSetTarget_RejectsInvalidInput(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()

	_, err := f.svc.SetTarget(ctx, domain.TargetDaily, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
	_, err = f.svc.SetTarget(ctx, domain.TargetMode("weekly"), 10)
	assert.ErrorIs(t, err, domain.ErrInvalidTargetMode)

	stored, err := f.svc.Target(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTarget(), stored)
	assert.Empty(t, f.notifier.got)
}

func TestStats(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()
	require.NoError(t, f.state.SaveLog(ctx, testutil.NewTestLog(
		"2024-01-01", 108,
		"2024-01-02", 50,
		"2023-12-31", 200,
	)))

	asOf := testutil.Date(2024, time.January, 10)
	stats, err := f.svc.Stats(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 358, stats.TotalCount)
	assert.Equal(t, 2, stats.DaysAtOrAboveTarget)
	assert.Equal(t, 10, stats.DaysElapsed)
	assert.Equal(t, 20, stats.CompletionRate)

	total, err := f.svc.TotalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 358, total)
	days, err := f.svc.DaysAtOrAboveTarget(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, days)
	rate, err := f.svc.CompletionRate(ctx, asOf)
	require.NoError(t, err)
	assert.Equal(t, 20, rate)
}

func TestStats_EmptyLog(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	stats, err := f.svc.Stats(context.Background(), testutil.Date(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalCount)
	assert.Equal(t, 0, stats.CompletionRate)
	assert.Equal(t, 1, stats.DaysElapsed)
}

func TestToday_PercentagesAndCap(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()
	require.NoError(t, f.state.SaveLog(ctx, domain.DailyLog{"2024-03-15": 162}))

	status, err := f.svc.Today(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 162, status.Count)
	assert.Equal(t, 150, status.RawPct)
	assert.Equal(t, 100, status.VisualPct)
	assert.Equal(t, 0, status.Remaining())
}

func TestHistory_NewestFirst(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, delta := range []int{5, 7, 9} {
		require.NoError(t, f.entries.Create(ctx, testutil.NewTestEntry("2024-03-01", delta,
			testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)))))
	}
	require.NoError(t, f.entries.Create(ctx, testutil.NewTestEntry("2024-03-02", 1,
		testutil.WithCreatedAt(base.Add(time.Hour)))))

	byDate, err := f.svc.History(ctx, "2024-03-01", 2)
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, 9, byDate[0].Delta)
	assert.Equal(t, 7, byDate[1].Delta)

	all, err := f.svc.History(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2024-03-02", all[0].Date)

	_, err = f.svc.History(ctx, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestCorruptState_FailPolicy(t *testing.T) {
	f := newProgressFixture(t, nil, Options{})
	ctx := context.Background()
	require.NoError(t, f.kv.Set(ctx, repository.KeyLog, "{not json"))

	_, err := f.svc.Log(ctx)
	assert.ErrorIs(t, err, repository.ErrCorruptState)
	_, err = f.svc.RecordCount(ctx, "2024-03-01", 1)
	assert.ErrorIs(t, err, repository.ErrCorruptState)
}

func TestCorruptState_ResetPolicy(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	f := newProgressFixture(t, nil, Options{OnCorrupt: domain.CorruptStateReset, Logger: logger})
	ctx := context.Background()
	require.NoError(t, f.kv.Set(ctx, repository.KeyLog, "{not json"))
	require.NoError(t, f.kv.Set(ctx, repository.KeyTargetMode, "weekly"))

	log, err := f.svc.Log(ctx)
	require.NoError(t, err)
	assert.Empty(t, log)
	target, err := f.svc.Target(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTarget(), target)
	assert.Contains(t, buf.String(), "discarding corrupt state")

	res, err := f.svc.RecordCount(ctx, "2024-03-01", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, res.New)

	stored, err := f.state.LoadLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DailyLog{"2024-03-01": 4}, stored)
}

func TestRecordCount_ObservesUseCase(t *testing.T) {
	obs := &recordingObserver{}
	f := newProgressFixture(t, nil, Options{}, obs)

	_, err := f.svc.RecordCount(context.Background(), "2024-03-01", 3)
	require.NoError(t, err)
	_, err = f.svc.RecordCount(context.Background(), "2024-03-01", 0)
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, "record_count", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 3, obs.events[0].Fields["new"])
	assert.False(t, obs.events[1].Success)
	assert.ErrorIs(t, obs.events[1].Err, domain.ErrInvalidCount)
}
