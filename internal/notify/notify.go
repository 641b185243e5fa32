// Package notify delivers best-effort, fire-and-forget notifications about
// progress. Delivery is never acknowledged and failures are swallowed.
package notify

import (
	"context"
	"time"
)

type Kind string

const (
	KindTest      Kind = "test"
	KindAddition  Kind = "addition"
	KindAchieved  Kind = "target_achieved"
	KindMilestone Kind = "milestone"
	KindCheckin   Kind = "checkin"
	KindReset     Kind = "reset"
	KindTarget    Kind = "target_updated"
)

// RequiresPermission reports whether the kind is a system notification that
// is only shown when notifications are enabled. The others are in-app
// confirmations and always pass.
func (k Kind) RequiresPermission() bool {
	switch k {
	case KindTest, KindAchieved, KindMilestone, KindCheckin:
		return true
	default:
		return false
	}
}

type Notification struct {
	ID        string
	Kind      Kind
	Title     string
	Body      string
	Tag       string // notifications sharing a tag replace each other
	CreatedAt time.Time
}

// Notifier receives notifications. Implementations must not block for long
// and must not report errors back to the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NoopNotifier drops every notification.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, Notification) {}

// Func adapts a plain function to the Notifier interface.
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, next := range m {
		if next != nil {
			next.Notify(ctx, n)
		}
	}
}

// OrNoop returns the first non-nil notifier, or NoopNotifier.
func OrNoop(notifiers ...Notifier) Notifier {
	for _, n := range notifiers {
		if n != nil {
			return n
		}
	}
	return NoopNotifier{}
}
