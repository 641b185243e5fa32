package importer

import (
	"fmt"

	"github.com/alexanderramin/chantcounter/internal/domain"
)

// ValidateSnapshot checks the snapshot before conversion and returns every
// problem found.
func ValidateSnapshot(s *Snapshot) []error {
	var errs []error

	errs = append(errs, domain.DailyLog(s.ChantData).Validate()...)

	if s.TargetType != "" && !domain.ValidTargetModes[s.TargetType] {
		errs = append(errs, fmt.Errorf("targetType: invalid value %q", s.TargetType))
	}

	targets := []struct {
		name string
		v    *FlexInt
	}{
		{"dailyTarget", s.DailyTarget},
		{"monthlyTarget", s.MonthlyTarget},
		{"yearlyTarget", s.YearlyTarget},
	}
	for _, tgt := range targets {
		if tgt.v != nil && *tgt.v < 1 {
			errs = append(errs, fmt.Errorf("%s: must be at least 1, got %d", tgt.name, *tgt.v))
		}
	}

	return errs
}
