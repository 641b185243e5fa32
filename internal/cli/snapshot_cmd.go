package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/chantcounter/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the log and target as JSON (stdout without FILE)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Snapshots.Export(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return snap.Encode(cmd.OutOrStdout())
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			if err := snap.Encode(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s days to %s\n", formatter.Count(len(snap.ChantData)), args[0])
			return nil
		},
	}
}

func newImportCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the log and target with a JSON export",
		Long: `Replace the log and target with a JSON export. Besides files written by
"chant export", a dump of the browser app's localStorage is accepted, where
chantData and the targets are stored as strings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !yes && app.interactive() {
				ok, err := app.confirm(ctx, "Replace all logged chants with "+args[0]+"?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			res, err := app.Snapshots.Import(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s days, %s chants. Daily target %s.\n",
				formatter.Count(res.Dates), formatter.Count(res.TotalCount), formatter.Count(res.Target.Daily))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")
	return cmd
}
