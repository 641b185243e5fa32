package importer

import (
	"fmt"

	"github.com/alexanderramin/chantcounter/internal/domain"
)

// Convert turns a validated snapshot into a log and a target. The value of
// the snapshot's own mode is authoritative when present; otherwise the
// daily target is, which is all the browser app persisted.
func Convert(s *Snapshot, year int) (domain.DailyLog, domain.Target, error) {
	log := domain.DailyLog{}
	for date, c := range s.ChantData {
		log[date] = c
	}

	mode := domain.TargetDaily
	if s.TargetType != "" {
		mode = domain.TargetMode(s.TargetType)
	}

	var own *FlexInt
	switch mode {
	case domain.TargetDaily:
		own = s.DailyTarget
	case domain.TargetMonthly:
		own = s.MonthlyTarget
	case domain.TargetYearly:
		own = s.YearlyTarget
	}

	switch {
	case own != nil:
		t, err := domain.NewTarget(mode, int(*own), year)
		if err != nil {
			return nil, domain.Target{}, fmt.Errorf("converting %s target: %w", mode, err)
		}
		return log, t, nil
	case s.DailyTarget != nil:
		t, err := domain.NewTarget(domain.TargetDaily, int(*s.DailyTarget), year)
		if err != nil {
			return nil, domain.Target{}, fmt.Errorf("converting daily target: %w", err)
		}
		return log, t, nil
	default:
		return log, domain.DefaultTarget(), nil
	}
}
