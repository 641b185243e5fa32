package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/chantcounter/internal/checkin"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd.Context(), app)
		},
	}
}

// runDashboard runs the dashboard and the periodic check-in side by side.
// Quitting the dashboard stops the check-in; notifications raised while
// it runs are shown as toasts.
func runDashboard(ctx context.Context, app *App) error {
	model := newDashboardModel(ctx, app)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if app.Relay != nil {
		detach := app.Relay.Attach(p.Send)
		defer detach()
	}

	g, gctx := errgroup.WithContext(ctx)
	checkCtx, stopCheckin := context.WithCancel(gctx)

	g.Go(func() error {
		defer stopCheckin()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("running dashboard: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s := &checkin.Scheduler{
			Interval: app.CheckinInterval,
			Check:    checkin.NotifyProgress(app.Progress, app.notifier(), app.now),
			OnError:  func(err error) { p.Send(errMsg{err: err}) },
		}
		return s.Run(checkCtx)
	})

	return g.Wait()
}
