package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chantcounter/internal/calendar"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// HeatColors holds one background per heat level, 0 (nothing logged)
// through calendar.MaxHeat.
var HeatColors = [calendar.MaxHeat + 1]lipgloss.Color{
	"#3c3836",
	"#4a5d3a",
	"#5b7a3f",
	"#79943f",
	"#98b13f",
	"#b8bb26",
}

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleToday  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// HeatStyle is the cell style for a heat level. Out-of-range levels are
// clamped.
func HeatStyle(level int) lipgloss.Style {
	level = min(calendar.MaxHeat, max(0, level))
	fg := ColorFg
	if level >= 4 {
		fg = lipgloss.Color("#282828")
	}
	return lipgloss.NewStyle().Background(HeatColors[level]).Foreground(fg)
}

// PercentStyle colors a whole percentage: green at the target, yellow from
// halfway, red below.
func PercentStyle(pct int) lipgloss.Style {
	switch {
	case pct >= 100:
		return StyleGreen
	case pct >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
