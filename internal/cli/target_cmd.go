package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/chantcounter/internal/cli/formatter"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/spf13/cobra"
)

func newTargetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Show the daily, monthly and yearly targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Progress.Target(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTarget(t))
			return nil
		},
	}

	cmd.AddCommand(newTargetSetCmd(app))
	return cmd
}

func newTargetSetCmd(app *App) *cobra.Command {
	var mode domain.TargetMode

	cmd := &cobra.Command{
		Use:   "set [VALUE]",
		Short: "Set the target; the other two are derived from it",
		Long: `Set the target for --mode (daily, monthly or yearly). The other two
targets are recomputed: a month counts as 30 days and a year as 365 or 366.
Without VALUE on a terminal, a form asks for both.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var raw string
			switch {
			case len(args) == 1:
				raw = args[0]
			case app.interactive():
				current, err := app.Progress.Target(ctx)
				if err != nil {
					return err
				}
				if err := targetForm(current, &mode, &raw).RunWithContext(ctx); err != nil {
					return err
				}
			default:
				return fmt.Errorf("target value required")
			}

			value, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("target %q is not a whole number: %w", raw, domain.ErrInvalidTarget)
			}
			t, err := app.Progress.SetTarget(ctx, mode, value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Target updated successfully!"))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTarget(t))
			return nil
		},
	}

	cmd.Flags().VarP(newTargetModeValue(domain.TargetDaily, &mode), "mode", "m", "Target mode: daily, monthly or yearly")
	return cmd
}
