package notify

import (
	"context"
	"log/slog"

	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"github.com/nikolayk812/cartstate-demo/internal/port"
)

// Channel is a transient notification feed. Publishing never blocks:
// when the buffer is full the notification is dropped.
type Channel struct {
	ch chan domain.Notification
}

func NewChannel(buf int) *Channel {
	return &Channel{ch: make(chan domain.Notification, buf)}
}

func (c *Channel) Notify(_ context.Context, n domain.Notification) {
	select {
	case c.ch <- n:
	default:
	}
}

func (c *Channel) C() <-chan domain.Notification { return c.ch }

// Drain returns the buffered notifications without waiting for more.
func (c *Channel) Drain() []domain.Notification {
	var out []domain.Notification
	for {
		select {
		case n := <-c.ch:
			out = append(out, n)
		default:
			return out
		}
	}
}

type logNotifier struct {
	log *slog.Logger
}

func NewLog(log *slog.Logger) port.Notifier {
	if log == nil {
		log = slog.Default()
	}
	return logNotifier{log: log}
}

func (l logNotifier) Notify(ctx context.Context, n domain.Notification) {
	l.log.InfoContext(ctx, n.Message,
		"notification_id", n.ID,
		"kind", n.Kind,
		"product_id", n.ProductID,
		"error", n.Err,
	)
}

type fanout []port.Notifier

// Fanout delivers every notification to all of notifiers in order.
func Fanout(notifiers ...port.Notifier) port.Notifier {
	return fanout(notifiers)
}

func (f fanout) Notify(ctx context.Context, n domain.Notification) {
	for _, notifier := range f {
		notifier.Notify(ctx, n)
	}
}
