// Package notifiers delivers operation outcomes to the user-facing notification channels.
package notifiers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// Sink receives operation outcomes. Delivery errors are logged, never returned.
type Sink interface {
	Notify(ctx context.Context, level models.Level, message string)
}

// newNotification stamps a message with an id and the current time.
func newNotification(level models.Level, message string) models.Notification {
	return models.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		Timestamp: time.Now().Unix(),
	}
}

// MultiSink fans a notification out to every sink in order.
type MultiSink []Sink

// NewMultiSink skips nil sinks.
func NewMultiSink(sinks ...Sink) MultiSink {
	out := make(MultiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

// Notify implements Sink.
func (m MultiSink) Notify(ctx context.Context, level models.Level, message string) {
	for _, s := range m {
		s.Notify(ctx, level, message)
	}
}
