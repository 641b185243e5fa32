package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chantcounter/internal/calendar"
	"github.com/alexanderramin/chantcounter/internal/cli/formatter"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var year, month, width, page int
	var detail bool

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the heat-map calendar",
		Long: `Show the heat-map calendar. Wide terminals show four months per page and
narrow ones a single month. --page moves that many pages forward (or back
when negative) from the starting month.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be 1-12, got %d", month)
			}

			if width <= 0 {
				width = app.terminalWidth()
			}
			class := calendar.ClassifyWidth(width, app.breakpoint())

			anchor := app.now()
			if year > 0 || month > 0 {
				y, m := anchor.Year(), anchor.Month()
				if year > 0 {
					y = year
				}
				if month > 0 {
					m = time.Month(month)
				}
				anchor = time.Date(y, m, 1, 0, 0, 0, 0, time.Local)
			}
			view := calendar.Initial(anchor, class)
			for ; page > 0; page-- {
				view = view.Next(class)
			}
			for ; page < 0; page++ {
				view = view.Prev(class)
			}

			log, err := app.Progress.Log(ctx)
			if err != nil {
				return err
			}
			target, err := app.Progress.Target(ctx)
			if err != nil {
				return err
			}

			g := calendar.Build(view.Request(class, log, app.today(), target.Daily))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatCalendar(g))
			if detail {
				if d := formatter.FormatDayDetail(g); d != "" {
					fmt.Fprintln(out)
					fmt.Fprintln(out, d)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to show (default current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month to start from, 1-12 (default current)")
	cmd.Flags().IntVar(&width, "width", 0, "Viewport width in columns (default terminal width)")
	cmd.Flags().IntVar(&page, "page", 0, "Pages to move from the starting month")
	cmd.Flags().BoolVar(&detail, "detail", false, "List every logged day on the page")
	return cmd
}

func (a *App) terminalWidth() int {
	if a.TerminalWidth != nil {
		if w := a.TerminalWidth(); w > 0 {
			return w
		}
	}
	return calendar.DefaultBreakpoint
}

func (a *App) breakpoint() int {
	if a.Breakpoint > 0 {
		return a.Breakpoint
	}
	return calendar.DefaultBreakpoint
}

func (a *App) deviceClass(width int) domain.DeviceClass {
	return calendar.ClassifyWidth(width, a.breakpoint())
}
