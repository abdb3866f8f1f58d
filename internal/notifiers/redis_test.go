package notifiers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRedisSink_Notify(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	sub := rdb.Subscribe(ctx, "ledger:test")
	defer sub.Close()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	NewRedisSink(rdb, "ledger:test").Notify(ctx, models.LevelSuccess, "Exchange of $10.00 to €8.50 completed successfully!")

	select {
	case msg := <-sub.Channel():
		var n models.Notification
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &n))
		assert.Equal(t, models.LevelSuccess, n.Level)
		assert.Equal(t, "Exchange of $10.00 to €8.50 completed successfully!", n.Message)
		assert.NotEmpty(t, n.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("notification was not published")
	}
}

func TestRedisSink_DefaultChannel(t *testing.T) {
	sink := NewRedisSink(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "")
	assert.Equal(t, DefaultRedisChannel, sink.channel)
}
