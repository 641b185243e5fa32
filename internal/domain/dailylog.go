package domain

import (
	"fmt"
	"math"
)

// MaxDelta is the largest count a single addition may carry.
const MaxDelta = 999_999_999

// DailyLog maps a YYYY-MM-DD date to the count logged on that day.
// A date that is absent has a count of zero.
type DailyLog map[string]int

// Count returns the count logged for date.
func (l DailyLog) Count(date string) int {
	return l[date]
}

// Add increments the count for date by delta and returns the totals before
// and after the update. delta must be positive.
func (l DailyLog) Add(date string, delta int) (previous, current int, err error) {
	if delta <= 0 {
		return 0, 0, fmt.Errorf("count %d must be greater than zero: %w", delta, ErrInvalidCount)
	}
	if delta > MaxDelta {
		return 0, 0, fmt.Errorf("count %d exceeds %d per addition: %w", delta, MaxDelta, ErrInvalidCount)
	}
	if _, err := ParseDate(date); err != nil {
		return 0, 0, err
	}
	previous = l[date]
	if delta > math.MaxInt-previous {
		return 0, 0, fmt.Errorf("count for %s would overflow: %w", date, ErrInvalidCount)
	}
	current = previous + delta
	l[date] = current
	return previous, current, nil
}

// Reset sets the count for date to zero. Resetting twice is a no-op.
func (l DailyLog) Reset(date string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	l[date] = 0
	return nil
}

// Total returns the sum of every logged count.
func (l DailyLog) Total() int {
	var total int
	for _, c := range l {
		total += c
	}
	return total
}

// DaysAtOrAbove returns how many dates have a count of at least target.
func (l DailyLog) DaysAtOrAbove(target int) int {
	var days int
	for _, c := range l {
		if c >= target {
			days++
		}
	}
	return days
}

// Max returns the largest logged count, or zero for an empty log.
func (l DailyLog) Max() int {
	var m int
	for _, c := range l {
		if c > m {
			m = c
		}
	}
	return m
}

// Clone returns an independent copy of the log.
func (l DailyLog) Clone() DailyLog {
	out := make(DailyLog, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Validate checks every key is a date and every count is non-negative.
func (l DailyLog) Validate() []error {
	var errs []error
	for date, c := range l {
		if _, err := ParseDate(date); err != nil {
			errs = append(errs, err)
			continue
		}
		if c < 0 {
			errs = append(errs, fmt.Errorf("count for %s is negative (%d): %w", date, c, ErrInvalidCount))
		}
	}
	return errs
}
