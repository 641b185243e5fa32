package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/alexanderramin/chantcounter/internal/notify"
	"github.com/alexanderramin/chantcounter/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and terminal collaborators used by CLI commands.
type App struct {
	Progress  service.ProgressService
	Snapshots service.SnapshotService
	Install   service.InstallService

	// Notifier is what commands send notifications through; the services
	// hold the same one. Its output ends in Relay, which the dashboard
	// attaches to in order to show notifications as toasts.
	Notifier notify.Notifier
	Relay    *NotificationRelay
	// Permission reports whether system notifications are enabled.
	Permission func() bool

	Clock           func() time.Time
	IsInteractive   func() bool
	TerminalWidth   func() int
	Breakpoint      int
	CheckinInterval time.Duration

	// Shell and HomeDir locate the completion script for "install".
	Shell   string
	HomeDir string

	// Confirm asks a yes/no question. Defaults to a huh confirmation.
	Confirm func(ctx context.Context, question string) (bool, error)
}

func (a *App) now() time.Time {
	if a.Clock != nil {
		return a.Clock()
	}
	return time.Now()
}

func (a *App) today() string {
	return domain.DateKey(a.now())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) notifier() notify.Notifier {
	if a.Notifier != nil {
		return a.Notifier
	}
	if a.Relay != nil {
		return a.Relay
	}
	return notify.NoopNotifier{}
}

func (a *App) confirm(ctx context.Context, question string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(ctx, question)
	}
	return huhConfirm(ctx, question)
}

// NewRootCmd creates the top-level "chant" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// dashboard on a terminal and prints today's progress otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chant",
		Short:         "Daily chant counter with a heat-map calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd.Context(), app)
			}
			return printToday(cmd, app)
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newResetCmd(app),
		newTodayCmd(app),
		newStatsCmd(app),
		newHistoryCmd(app),
		newTargetCmd(app),
		newCalendarCmd(app),
		newNotifyCmd(app),
		newCheckinCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newInstallCmd(app),
		newDashboardCmd(app),
	)

	return root
}
