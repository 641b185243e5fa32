package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chantcounter/internal/calendar"
)

const (
	weekdayWidth = 4 // "Sun "
	cellWidth    = 3
	monthDivider = " │"
	emptyCell    = "  ·"
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatCalendar renders the grid as a heat map: one line per weekday with
// each displayed month's six week columns, months separated by a divider.
// Heat is shown as the cell background and today is underlined.
func FormatCalendar(g *calendar.Grid) string {
	lines := make([]string, 0, 10)
	lines = append(lines, Bold(fmt.Sprint(g.Year)))

	monthWidth := calendar.WeeksPerMonth * cellWidth
	var header strings.Builder
	header.WriteString(strings.Repeat(" ", weekdayWidth))
	for i, m := range g.Months {
		if i > 0 {
			header.WriteString(strings.Repeat(" ", len([]rune(monthDivider))))
		}
		header.WriteString(fmt.Sprintf("%-*s", monthWidth, " "+m.Label()))
	}
	lines = append(lines, StyleHeader.Render(strings.TrimRight(header.String(), " ")))

	for w := 0; w < 7; w++ {
		var row strings.Builder
		row.WriteString(Dim(weekdayLabels[w]) + " ")
		for i := range g.Months {
			if i > 0 {
				row.WriteString(Dim(monthDivider))
			}
			for k := 0; k < calendar.WeeksPerMonth; k++ {
				row.WriteString(formatCell(g.Cell(w, i, k)))
			}
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, HeatLegend())
	return strings.Join(lines, "\n")
}

func formatCell(c calendar.Cell) string {
	if c.Empty {
		return Dim(emptyCell)
	}
	day := fmt.Sprintf("%2d", c.Day)
	style := HeatStyle(c.Heat)
	if c.IsToday {
		style = style.Inherit(StyleToday)
	}
	return " " + style.Render(day)
}

// HeatLegend renders the scale from level 0 to the maximum.
func HeatLegend() string {
	var b strings.Builder
	b.WriteString(Dim("Less "))
	for level := 0; level <= calendar.MaxHeat; level++ {
		b.WriteString(HeatStyle(level).Render("■"))
	}
	b.WriteString(Dim(" More"))
	return b.String()
}

// FormatDayDetail renders the tooltip lines of every logged day on the
// page, for terminals without hover.
func FormatDayDetail(g *calendar.Grid) string {
	var lines []string
	for i := range g.Months {
		for k := 0; k < calendar.WeeksPerMonth; k++ {
			for w := 0; w < 7; w++ {
				c := g.Cell(w, i, k)
				if c.Empty || c.Count == 0 {
					continue
				}
				lines = append(lines, HeatStyle(c.Heat).Render("  ")+" "+c.Tooltip)
			}
		}
	}
	return strings.Join(lines, "\n")
}
