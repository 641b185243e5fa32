package domain

import "fmt"

const (
	// DaysPerMonth is the fixed month length used when converting targets.
	DaysPerMonth = 30

	DefaultDailyTarget   = 108
	DefaultMonthlyTarget = DefaultDailyTarget * DaysPerMonth
	DefaultYearlyTarget  = DefaultDailyTarget * 365
)

// Target holds the active target mode and the three interconverted values.
// Mode is authoritative; the other two values are derived from it.
type Target struct {
	Mode    TargetMode
	Daily   int
	Monthly int
	Yearly  int
}

// DefaultTarget returns the target used before the user saves one.
func DefaultTarget() Target {
	return Target{
		Mode:    TargetDaily,
		Daily:   DefaultDailyTarget,
		Monthly: DefaultMonthlyTarget,
		Yearly:  DefaultYearlyTarget,
	}
}

// NewTarget builds a Target whose mode value is value and whose other two
// values are recomputed from it. year selects 365 or 366 days per year.
func NewTarget(mode TargetMode, value int, year int) (Target, error) {
	if value < 1 {
		return Target{}, fmt.Errorf("target %d must be at least 1: %w", value, ErrInvalidTarget)
	}
	days := DaysInYear(year)

	t := Target{Mode: mode}
	switch mode {
	case TargetDaily:
		t.Daily = value
		t.Monthly = value * DaysPerMonth
		t.Yearly = value * days
	case TargetMonthly:
		t.Monthly = value
		t.Daily = ceilDiv(value, DaysPerMonth)
		t.Yearly = t.Daily * days
	case TargetYearly:
		t.Yearly = value
		t.Daily = ceilDiv(value, days)
		t.Monthly = t.Daily * DaysPerMonth
	default:
		return Target{}, fmt.Errorf("target mode %q: %w", mode, ErrInvalidTargetMode)
	}
	return t, nil
}

// Value returns the value of the authoritative mode.
func (t Target) Value() int {
	switch t.Mode {
	case TargetMonthly:
		return t.Monthly
	case TargetYearly:
		return t.Yearly
	default:
		return t.Daily
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
