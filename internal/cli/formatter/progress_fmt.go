package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chantcounter/internal/contract"
	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/alexanderramin/chantcounter/internal/notify"
)

const barWidth = 24

// FormatToday renders today's count against the daily target.
func FormatToday(s *contract.TodayStatus) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s / %s\n", Bold(Count(s.Count)), Count(s.Target))
	b.WriteString(RenderProgress(s.RawPct, barWidth))
	b.WriteString("\n")
	if rem := s.Remaining(); rem > 0 {
		b.WriteString(Dim(fmt.Sprintf("%s to go", Count(rem))))
	} else {
		b.WriteString(StyleGreen.Render("Target reached ✓"))
	}
	return RenderBox("Today · "+s.Date, b.String())
}

// FormatStats renders the all-time statistics.
func FormatStats(s *contract.StatsResponse) string {
	rows := [][]string{
		{"Total chants", Count(s.TotalCount)},
		{"Days at target", Count(s.DaysAtOrAboveTarget)},
		{"Completion rate", PercentStyle(s.CompletionRate).Render(fmt.Sprintf("%d%%", s.CompletionRate))},
		{"Daily target", Count(s.Target.Daily)},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-16s", r[0])), r[1])
	}
	b.WriteString(Dim(fmt.Sprintf("%d days elapsed in %d", s.DaysElapsed, s.AsOf.Year())))
	return RenderBox("Stats", b.String())
}

// FormatTarget renders the three interconverted targets, marking the
// authoritative one.
func FormatTarget(t domain.Target) string {
	entries := []struct {
		mode  domain.TargetMode
		value int
	}{
		{domain.TargetDaily, t.Daily},
		{domain.TargetMonthly, t.Monthly},
		{domain.TargetYearly, t.Yearly},
	}
	var lines []string
	for _, e := range entries {
		marker := "  "
		label := Dim(fmt.Sprintf("%-8s", e.mode))
		if e.mode == t.Mode {
			marker = StyleGreen.Render("● ")
			label = Bold(fmt.Sprintf("%-8s", e.mode))
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", marker, label, Count(e.value)))
	}
	return strings.Join(lines, "\n")
}

// FormatRecord renders the confirmation of an addition.
func FormatRecord(r *contract.RecordResult) string {
	line := fmt.Sprintf("%s %s on %s  (%s → %s of %s)",
		StyleGreen.Render("Added"), Bold(Count(r.Delta)), r.Date,
		Count(r.Previous), Count(r.New), Count(r.Target))
	switch r.Event.Kind {
	case domain.EventTargetAchieved:
		line += "\n" + StyleGreen.Render("🎉 Target achieved!")
	case domain.EventMilestone:
		line += "\n" + StyleYellow.Render(fmt.Sprintf("📈 %d%% of your daily target", r.Event.Percent))
	}
	return line
}

// FormatHistory renders recent additions, newest first.
func FormatHistory(entries []*domain.CountEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No additions recorded yet.")
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			TruncID(e.ID),
			e.Date,
			Signed(e.Delta),
			Count(e.New),
			HumanTimestamp(e.CreatedAt, now),
		})
	}
	return RenderTable([]string{"ID", "DATE", "ADDED", "TOTAL", "WHEN"}, rows, 2, 3)
}

// FormatNotification renders a notification as a one- or two-line toast.
func FormatNotification(n notify.Notification) string {
	title := StyleBold.Render(n.Title)
	if n.Kind.RequiresPermission() {
		title = StyleHeader.Render(n.Title)
	}
	if n.Body == "" {
		return title
	}
	return title + "\n" + Dim(n.Body)
}
