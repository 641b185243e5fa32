package cli

import (
	"context"
	"sync"

	"github.com/alexanderramin/chantcounter/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
)

// NotificationRelay forwards notifications to the dashboard while one is
// running and to Fallback otherwise.
type NotificationRelay struct {
	mu       sync.Mutex
	send     func(tea.Msg)
	Fallback notify.Notifier
}

func NewNotificationRelay(fallback notify.Notifier) *NotificationRelay {
	return &NotificationRelay{Fallback: notify.OrNoop(fallback)}
}

// Attach routes notifications to send until the returned detach func is
// called.
func (r *NotificationRelay) Attach(send func(tea.Msg)) (detach func()) {
	r.mu.Lock()
	r.send = send
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.send = nil
		r.mu.Unlock()
	}
}

func (r *NotificationRelay) Notify(ctx context.Context, n notify.Notification) {
	r.mu.Lock()
	send := r.send
	r.mu.Unlock()
	if send != nil {
		send(toastMsg{n: n})
		return
	}
	notify.OrNoop(r.Fallback).Notify(ctx, n)
}
