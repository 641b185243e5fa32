package notify

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// GateConfig controls which notifications reach the wrapped notifier.
type GateConfig struct {
	// Enabled is the permission for system notifications.
	Enabled bool
	// Every is the minimum spacing of system notifications once Burst is
	// used up. Zero disables rate limiting.
	Every time.Duration
	Burst int
}

// Gate drops system notifications when permission is not granted or when
// they arrive faster than the configured rate. In-app confirmations always
// pass through.
type Gate struct {
	next    Notifier
	enabled bool
	limiter *rate.Limiter
	dropped func(n Notification, reason string)
}

func NewGate(next Notifier, cfg GateConfig) *Gate {
	g := &Gate{next: OrNoop(next), enabled: cfg.Enabled}
	if cfg.Every > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Every(cfg.Every), burst)
	}
	return g
}

// OnDrop registers a callback invoked for every notification the gate drops.
func (g *Gate) OnDrop(fn func(n Notification, reason string)) *Gate {
	g.dropped = fn
	return g
}

// Enabled reports whether system notifications are permitted.
func (g *Gate) Enabled() bool {
	return g.enabled
}

func (g *Gate) Notify(ctx context.Context, n Notification) {
	if n.Kind.RequiresPermission() {
		if !g.enabled {
			g.drop(n, "permission")
			return
		}
		if g.limiter != nil && !g.limiter.Allow() {
			g.drop(n, "rate_limited")
			return
		}
	}
	g.next.Notify(ctx, n)
}

func (g *Gate) drop(n Notification, reason string) {
	if g.dropped != nil {
		g.dropped(n, reason)
	}
}
