package domain

import "math"

// ProgressEvent is the classification of a single count update.
type ProgressEvent struct {
	Kind    EventKind
	Percent int // milestone percentage; 100 for EventTargetAchieved
}

// ClassifyProgress compares the totals before and after one update against
// the daily target. Crossing 100% wins over any milestone; otherwise a
// milestone fires when the update moves into a higher 50% band, reported at
// the highest band reached. Only these two totals are considered, so an
// update that skips several bands still yields a single event.
func ClassifyProgress(previous, current, target int) ProgressEvent {
	if target <= 0 || current <= previous {
		return ProgressEvent{Kind: EventNone}
	}
	if previous < target && current >= target {
		return ProgressEvent{Kind: EventTargetAchieved, Percent: 100}
	}
	// floor(pct/50) == floor(count*2/target) in integer arithmetic.
	prevBand := previous * 2 / target
	currBand := current * 2 / target
	if prevBand < currBand {
		return ProgressEvent{Kind: EventMilestone, Percent: currBand * 50}
	}
	return ProgressEvent{Kind: EventNone}
}

// PercentOf returns count as a whole percentage of target, rounded half up.
// The result is not capped.
func PercentOf(count, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(target) * 100))
}

// CappedPercent is PercentOf limited to the range 0..100.
func CappedPercent(count, target int) int {
	return min(100, max(0, PercentOf(count, target)))
}
