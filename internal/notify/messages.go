package notify

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chantcounter/internal/domain"
	"github.com/google/uuid"
)

const checkinTag = "hourly-update"

func newNotification(kind Kind, title, body string) Notification {
	return Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
}

// Test is sent on an explicit request to check delivery.
func Test() Notification {
	return newNotification(KindTest, "🔔 It Works!",
		"This is how your hourly updates will look.")
}

// Addition confirms that delta counts were logged.
func Addition(delta int) Notification {
	return newNotification(KindAddition, fmt.Sprintf("Added %d chants!", delta), "")
}

// TargetAchieved is sent when an update first reaches the daily target.
func TargetAchieved(target int) Notification {
	return newNotification(KindAchieved, "🎉 Target Achieved!",
		fmt.Sprintf("Congratulations! You've completed your daily target of %d chants.", target))
}

// Milestone is sent when an update crosses into a new 50% band.
func Milestone(percent int) Notification {
	return newNotification(KindMilestone, "📈 Progress Update",
		fmt.Sprintf("You've reached %d%% of your daily target! Keep going!", percent))
}

// Checkin is the periodic status message.
func Checkin(count, target int) Notification {
	n := newNotification(KindCheckin, "⏳ Hourly Check-in",
		fmt.Sprintf("You've completed %d%% of your daily target (%d/%d). Keep going! 🕉️",
			domain.PercentOf(count, target), count, target))
	n.Tag = checkinTag
	return n
}

// Reset confirms a date's count was cleared.
func Reset(date string) Notification {
	return newNotification(KindReset, "Progress reset", fmt.Sprintf("The count for %s is back to 0.", date))
}

// TargetUpdated confirms a saved target.
func TargetUpdated(t domain.Target) Notification {
	return newNotification(KindTarget, "Target updated successfully!",
		fmt.Sprintf("Daily %d · monthly %d · yearly %d", t.Daily, t.Monthly, t.Yearly))
}

// FromEvent maps a progress event to its notification. ok is false for
// EventNone.
func FromEvent(ev domain.ProgressEvent, target int) (n Notification, ok bool) {
	switch ev.Kind {
	case domain.EventTargetAchieved:
		return TargetAchieved(target), true
	case domain.EventMilestone:
		return Milestone(ev.Percent), true
	default:
		return Notification{}, false
	}
}
