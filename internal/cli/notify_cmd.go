package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/chantcounter/internal/checkin"
	"github.com/alexanderramin/chantcounter/internal/cli/formatter"
	"github.com/alexanderramin/chantcounter/internal/notify"
	"github.com/spf13/cobra"
)

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Notification helpers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Send a test notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Permission != nil && !app.Permission() {
				return errors.New("notifications are disabled; set notifications.enabled in the config or CHANT_NOTIFY=true")
			}
			app.notifier().Notify(cmd.Context(), notify.Test())
			return nil
		},
	})
	return cmd
}

func newCheckinCmd(app *App) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Send a progress check-in periodically until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			check := checkin.NotifyProgress(app.Progress, app.notifier(), app.now)
			if once {
				return check(cmd.Context())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			interval := app.CheckinInterval
			if interval <= 0 {
				interval = checkin.DefaultInterval
			}
			s := &checkin.Scheduler{
				Interval: interval,
				Check:    check,
				OnError: func(err error) {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleRed.Render(err.Error()))
				},
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("Checking in every %s. Press Ctrl+C to stop.", s.Interval)))
			return s.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Send one check-in now and exit")
	return cmd
}
