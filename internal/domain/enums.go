package domain

import "fmt"

type TargetMode string

const (
	TargetDaily   TargetMode = "daily"
	TargetMonthly TargetMode = "monthly"
	TargetYearly  TargetMode = "yearly"
)

// ValidTargetModes is the canonical set of accepted target mode strings.
var ValidTargetModes = map[string]bool{
	"daily": true, "monthly": true, "yearly": true,
}

// ParseTargetMode converts a user-supplied string into a TargetMode.
func ParseTargetMode(s string) (TargetMode, error) {
	if !ValidTargetModes[s] {
		return "", fmt.Errorf("target mode %q (want daily, monthly or yearly): %w", s, ErrInvalidTargetMode)
	}
	return TargetMode(s), nil
}

type EventKind string

const (
	EventNone           EventKind = "none"
	EventMilestone      EventKind = "milestone"
	EventTargetAchieved EventKind = "target_achieved"
)

type DeviceClass string

const (
	DeviceMobile  DeviceClass = "mobile"
	DeviceDesktop DeviceClass = "desktop"
)

type CorruptStatePolicy string

const (
	CorruptStateFail  CorruptStatePolicy = "fail"
	CorruptStateReset CorruptStatePolicy = "reset"
)
