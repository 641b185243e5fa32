package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/chantcounter/internal/cli/formatter"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add N",
		Short: "Add N chants to today (or --date)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("count %q is not a whole number: %w", args[0], domain.ErrInvalidCount)
			}
			res, err := app.Progress.RecordCount(cmd.Context(), date, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecord(res))
			return nil
		},
	}

	dateFlag(cmd.Flags(), &date)
	return cmd
}

func newResetCmd(app *App) *cobra.Command {
	var date string
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset today's (or --date's) count to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target := date
			if target == "" {
				target = app.today()
			}
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to reset %s without --yes", target)
				}
				ok, err := app.confirm(ctx, fmt.Sprintf("Reset the count for %s?", target))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			res, err := app.Progress.ResetDate(ctx, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s (was %s).\n", res.Date, formatter.Count(res.Previous))
			return nil
		},
	}

	dateFlag(cmd.Flags(), &date)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")
	return cmd
}

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printToday(cmd, app)
		},
	}
}

func printToday(cmd *cobra.Command, app *App) error {
	status, err := app.Progress.Today(cmd.Context(), app.now())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatToday(status))
	return nil
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show total chants, days at target and completion rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Progress.Stats(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(stats))
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	var date string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent additions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Progress.History(cmd.Context(), date, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(entries, app.now()))
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only additions to this date (YYYY-MM-DD)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of additions")
	return cmd
}
