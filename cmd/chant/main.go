package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/chantcounter/internal/cli"
	"github.com/alexanderramin/chantcounter/internal/cli/formatter"
	"github.com/alexanderramin/chantcounter/internal/config"
	"github.com/alexanderramin/chantcounter/internal/db"
	"github.com/alexanderramin/chantcounter/internal/install"
	"github.com/alexanderramin/chantcounter/internal/notify"
	"github.com/alexanderramin/chantcounter/internal/repository"
	"github.com/alexanderramin/chantcounter/internal/service"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", cfgPath, err)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	// Wire repositories
	state := repository.NewKVStateRepo(repository.NewSQLiteKVStore(database))
	entries := repository.NewSQLiteEntryRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Notifications: gate -> relay -> dashboard toasts, or stderr outside it.
	sinks := notify.Multi{notify.NewWriterNotifier(os.Stderr, formatter.FormatNotification)}
	if cfg.Log.UseCases {
		sinks = append(sinks, notify.NewLogNotifier(logger))
	}
	relay := cli.NewNotificationRelay(sinks)

	every, err := cfg.NotifyEvery()
	if err != nil {
		return err
	}
	gate := notify.NewGate(relay, notify.GateConfig{
		Enabled: cfg.Notifications.Enabled,
		Every:   every,
		Burst:   cfg.Notifications.Burst,
	}).OnDrop(notify.LogDropped(logger))

	interval, err := cfg.CheckinInterval()
	if err != nil {
		return err
	}

	opts := service.Options{OnCorrupt: cfg.CorruptStatePolicy(), Logger: logger}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	app := &cli.App{
		Progress:        service.NewProgressService(state, entries, uow, gate, opts, observers...),
		Snapshots:       service.NewSnapshotService(state, uow, opts, observers...),
		Install:         service.NewInstallService(state),
		Notifier:        gate,
		Relay:           relay,
		Permission:      gate.Enabled,
		Breakpoint:      cfg.Calendar.MobileBreakpoint,
		CheckinInterval: interval,
		Shell:           install.DetectShell(os.Getenv("SHELL")),
		HomeDir:         home,
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.TerminalWidth = func() int {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return 0
		}
		return w
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
