package contract

import (
	"time"

	"github.com/alexanderramin/chantcounter/internal/domain"
)

// RecordResult is the outcome of adding a count to one date.
type RecordResult struct {
	Date     string
	Delta    int
	Previous int
	New      int
	Target   int
	Event    domain.ProgressEvent
}

// TodayStatus summarises progress on a single date against the daily target.
type TodayStatus struct {
	Date      string
	Count     int
	Target    int
	RawPct    int // rounded, may exceed 100
	VisualPct int // RawPct capped to 0..100
}

// Remaining returns how many more counts are needed to reach the target.
func (s TodayStatus) Remaining() int {
	return max(0, s.Target-s.Count)
}

type StatsResponse struct {
	AsOf                time.Time
	Target              domain.Target
	TotalCount          int
	DaysAtOrAboveTarget int
	DaysElapsed         int
	CompletionRate      int // whole percent
}

// ResetResult reports the count a date held before it was reset.
type ResetResult struct {
	Date     string
	Previous int
}

// ImportResult summarises a replaced progress state.
type ImportResult struct {
	Dates      int
	TotalCount int
	Target     domain.Target
}
