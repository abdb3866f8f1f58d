package notifiers

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=notifiers

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaSink publishes notifications as JSON keyed by notification id.
type KafkaSink struct {
	writer KafkaWriter
}

// NewKafkaSink creates a sink over writer.
func NewKafkaSink(writer KafkaWriter) *KafkaSink {
	return &KafkaSink{writer: writer}
}

// Notify implements Sink.
func (s *KafkaSink) Notify(ctx context.Context, level models.Level, message string) {
	if s.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping notification", "level", level)
		return
	}

	n := newNotification(level, message)
	data, err := json.Marshal(n)
	if err != nil {
		logger.Log.Errorw("Failed to marshal notification for Kafka", "notification_id", n.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(n.ID),
		Value: data,
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish notification to Kafka", "notification_id", n.ID, "error", err)
		return
	}
	logger.Log.Debugw("Notification published to Kafka", "notification_id", n.ID, "level", level)
}
