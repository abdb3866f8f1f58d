package notifiers

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-ledger-operations/internal/logger"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
)

// DefaultRedisChannel is the pub/sub channel used when none is configured.
const DefaultRedisChannel = "ledger:notifications"

// RedisSink publishes notifications as JSON on a pub/sub channel.
type RedisSink struct {
	client  redis.UniversalClient
	channel string
}

// NewRedisSink creates a sink publishing on channel.
func NewRedisSink(client redis.UniversalClient, channel string) *RedisSink {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	return &RedisSink{client: client, channel: channel}
}

// Notify implements Sink.
func (s *RedisSink) Notify(ctx context.Context, level models.Level, message string) {
	n := newNotification(level, message)
	data, err := json.Marshal(n)
	if err != nil {
		logger.Log.Errorw("Failed to marshal notification for Redis", "notification_id", n.ID, "error", err)
		return
	}

	receivers, err := s.client.Publish(ctx, s.channel, data).Result()
	logger.Log.Debugw("publish",
		"channel", s.channel,
		"notification_id", n.ID,
		"result", receivers,
		"error", err,
	)
	if err != nil {
		logger.Log.Errorw("Failed to publish notification to Redis", "notification_id", n.ID, "error", err)
	}
}
