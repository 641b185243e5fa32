package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/chantcounter/internal/notify"
	"github.com/alexanderramin/chantcounter/internal/repository"
	"github.com/alexanderramin/chantcounter/internal/service"
	"github.com/alexanderramin/chantcounter/internal/testutil"
)

var testNow = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.Local)

type notifySpy struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (s *notifySpy) Notify(_ context.Context, n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
}

func (s *notifySpy) count(kind notify.Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, got := range s.got {
		if got.Kind == kind {
			n++
		}
	}
	return n
}

func newTestApp(t *testing.T) (*App, *notifySpy) {
	t.Helper()
	database := testutil.NewTestDB(t)
	state := repository.NewKVStateRepo(repository.NewSQLiteKVStore(database))
	entries := repository.NewSQLiteEntryRepo(database)
	uow := testutil.NewTestUoW(database)
	spy := &notifySpy{}
	clock := testutil.FixedClock(testNow)
	opts := service.Options{Clock: clock}

	app := &App{
		Progress:        service.NewProgressService(state, entries, uow, spy, opts),
		Snapshots:       service.NewSnapshotService(state, uow, opts),
		Install:         service.NewInstallService(state),
		Notifier:        spy,
		Permission:      func() bool { return true },
		Clock:           clock,
		IsInteractive:   func() bool { return false },
		TerminalWidth:   func() int { return 120 },
		CheckinInterval: time.Hour,
		HomeDir:         t.TempDir(),
	}
	return app, spy
}

func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stripANSI(buf.String()), err
}
