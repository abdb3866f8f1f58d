package notifiers

import (
	"context"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"go.uber.org/zap"
)

// LogSink writes notifications to a zap logger.
type LogSink struct {
	log *zap.SugaredLogger
}

// NewLogSink creates a sink over log.
func NewLogSink(log *zap.SugaredLogger) *LogSink {
	return &LogSink{log: log}
}

// Notify implements Sink.
func (s *LogSink) Notify(_ context.Context, level models.Level, message string) {
	switch level {
	case models.LevelError:
		s.log.Warnw("notification", "level", level, "message", message)
	default:
		s.log.Infow("notification", "level", level, "message", message)
	}
}
