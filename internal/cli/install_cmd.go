package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chantcounter/internal/cli/formatter"
	"github.com/alexanderramin/chantcounter/internal/install"
	"github.com/spf13/cobra"
)

func newInstallCmd(app *App) *cobra.Command {
	var yes bool
	var shell, dir string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install shell completion for chant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.completionInstaller(cmd.Root(), shell, dir)
			if yes {
				p.Confirm = nil
			}

			outcome, err := install.Offer(cmd.Context(), p, app.Install)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch outcome {
			case install.Accepted:
				fmt.Fprintln(out, formatter.StyleGreen.Render("Installed "+p.Path()))
			case install.Unavailable:
				return fmt.Errorf("cannot install completion for shell %q; pass --shell bash, zsh or fish", p.Shell)
			default:
				fmt.Fprintln(out, formatter.Dim("Not installed."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Install without asking")
	cmd.Flags().StringVar(&shell, "shell", "", "Shell to install for (default from $SHELL)")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write the script to")
	return cmd
}

func (a *App) completionInstaller(root *cobra.Command, shell, dir string) *install.CompletionInstaller {
	if shell == "" {
		shell = a.Shell
	}
	if dir == "" {
		dir = install.DefaultDir(shell, a.HomeDir)
	}
	return &install.CompletionInstaller{
		Root:  root,
		Shell: shell,
		Dir:   dir,
		Confirm: func(ctx context.Context, q string) (bool, error) {
			return a.confirm(ctx, q)
		},
	}
}
