package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// WriterNotifier prints each notification to w using render.
type WriterNotifier struct {
	mu     sync.Mutex
	w      io.Writer
	render func(Notification) string
}

// NewWriterNotifier returns a notifier that writes to w. A nil render
// prints "title: body".
func NewWriterNotifier(w io.Writer, render func(Notification) string) *WriterNotifier {
	if render == nil {
		render = PlainText
	}
	return &WriterNotifier{w: w, render: render}
}

func (n *WriterNotifier) Notify(_ context.Context, msg Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.w, n.render(msg))
}

// PlainText renders a notification on a single line.
func PlainText(n Notification) string {
	if n.Body == "" {
		return n.Title
	}
	return n.Title + ": " + n.Body
}

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier records notifications as structured log lines.
func NewLogNotifier(logger *slog.Logger) Notifier {
	if logger == nil {
		return NoopNotifier{}
	}
	return &logNotifier{logger: logger}
}

func (l *logNotifier) Notify(ctx context.Context, n Notification) {
	l.logger.InfoContext(ctx, "notification",
		"id", n.ID,
		"kind", string(n.Kind),
		"title", n.Title,
		"tag", n.Tag,
	)
}

// LogDropped returns a Gate.OnDrop callback that records each dropped
// notification at info level.
func LogDropped(logger *slog.Logger) func(n Notification, reason string) {
	if logger == nil {
		return nil
	}
	return func(n Notification, reason string) {
		logger.Info("notification dropped",
			"kind", string(n.Kind),
			"title", n.Title,
			"reason", reason,
		)
	}
}
