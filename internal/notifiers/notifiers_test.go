package notifiers

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gw-ledger-operations/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	name  string
	calls *[]string
}

func (s recordingSink) Notify(_ context.Context, _ models.Level, message string) {
	*s.calls = append(*s.calls, s.name+":"+message)
}

func TestMultiSink_Notify(t *testing.T) {
	var calls []string
	sink := NewMultiSink(
		recordingSink{name: "a", calls: &calls},
		nil,
		recordingSink{name: "b", calls: &calls},
	)

	require.Len(t, sink, 2)
	sink.Notify(context.Background(), models.LevelSuccess, "done")
	assert.Equal(t, []string{"a:done", "b:done"}, calls)
}

func TestLogSink_Notify(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewLogSink(zap.New(core).Sugar())

	sink.Notify(context.Background(), models.LevelSuccess, "Transfer of $1.00 to Savings Account initiated successfully!")
	sink.Notify(context.Background(), models.LevelError, "Transfer of 0 to 2 failed: amount must be greater than zero")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "notification", entries[0].Message)
	assert.Equal(t, "Transfer of $1.00 to Savings Account initiated successfully!", entries[0].ContextMap()["message"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, models.LevelError, entries[1].ContextMap()["level"])
}
