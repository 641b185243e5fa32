// Package calendar lays out the heat-map calendar: one row per weekday, and
// for every displayed month six week slots per row.
package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chantcounter/internal/domain"
)

// WeeksPerMonth is the number of week slots reserved per month. Six covers
// a 31-day month starting on a Saturday.
const WeeksPerMonth = 6

// MaxHeat is the heat level of a cell at or above the scale maximum.
const MaxHeat = 5

const tooltipDateLayout = "Mon, Jan 2, 2006"

type Request struct {
	Year        int
	StartMonth  int // 0 = January
	Months      int
	Log         domain.DailyLog
	Today       string // YYYY-MM-DD
	DailyTarget int
}

type Cell struct {
	Empty   bool
	Date    string
	Day     int
	Count   int
	Heat    int
	IsToday bool
	Tooltip string
}

type Month struct {
	Year  int
	Month time.Month
}

// Label is the three-letter month name.
func (m Month) Label() string {
	return m.Month.String()[:3]
}

// Grid is the laid-out calendar. Rows[w] holds, for weekday w (0 = Sunday),
// WeeksPerMonth cells for each month in Months, month by month.
type Grid struct {
	Year   int
	Months []Month
	Rows   [7][]Cell
	// Max is the top of the heat scale: the largest logged count or the
	// daily target, whichever is larger.
	Max int
}

// Cell returns the cell for weekday w, the i-th displayed month and week
// slot k.
func (g *Grid) Cell(w, i, k int) Cell {
	return g.Rows[w][i*WeeksPerMonth+k]
}

// Build lays out req.Months months starting at req.StartMonth. Months past
// December are not shown; the page does not roll into the next year.
func Build(req Request) *Grid {
	g := &Grid{Year: req.Year, Max: max(req.Log.Max(), req.DailyTarget)}

	for i := 0; i < req.Months; i++ {
		m := req.StartMonth + i
		if m < 0 || m > 11 {
			continue
		}
		g.Months = append(g.Months, Month{Year: req.Year, Month: time.Month(m + 1)})
	}

	for w := 0; w < 7; w++ {
		row := make([]Cell, 0, len(g.Months)*WeeksPerMonth)
		for _, m := range g.Months {
			days := domain.DaysInMonth(m.Year, m.Month)
			first := int(domain.FirstWeekday(m.Year, m.Month))
			for k := 0; k < WeeksPerMonth; k++ {
				day := k*7 + w - first + 1
				if day < 1 || day > days {
					row = append(row, Cell{Empty: true})
					continue
				}
				row = append(row, newCell(m, day, req, g.Max))
			}
		}
		g.Rows[w] = row
	}
	return g
}

func newCell(m Month, day int, req Request, scaleMax int) Cell {
	date := time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
	key := domain.DateKey(date)
	count := req.Log.Count(key)
	return Cell{
		Date:    key,
		Day:     day,
		Count:   count,
		Heat:    HeatLevel(count, scaleMax),
		IsToday: key == req.Today,
		Tooltip: Tooltip(date, count, req.DailyTarget),
	}
}

// HeatLevel buckets count against scaleMax into 0..5. Any positive count is
// at least level 1.
func HeatLevel(count, scaleMax int) int {
	if count <= 0 || scaleMax <= 0 {
		return 0
	}
	pct := float64(count) / float64(scaleMax) * 100
	switch {
	case pct >= 100:
		return 5
	case pct >= 80:
		return 4
	case pct >= 60:
		return 3
	case pct >= 40:
		return 2
	default:
		return 1
	}
}

// Tooltip describes one day, marked with a check when the target was met.
func Tooltip(date time.Time, count, dailyTarget int) string {
	s := fmt.Sprintf("%d chants on %s", count, date.Format(tooltipDateLayout))
	if count >= dailyTarget {
		s += " ✓"
	}
	return s
}
