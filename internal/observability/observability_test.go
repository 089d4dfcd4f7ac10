package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lutia-ai/lutia/internal/observability"
)

func TestFromContext_AttachesContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(zap.NewNop()) })

	ctx := context.Background()
	ctx = observability.WithRequestID(ctx, "req-1")
	ctx = observability.WithProvider(ctx, "claude")
	ctx = observability.WithUserID(ctx, 42)
	ctx = observability.WithConversationID(ctx, "conv-9")

	observability.FromContext(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "claude", fields["provider"])
	require.Equal(t, int64(42), fields["user_id"])
	require.Equal(t, "conv-9", fields["conversation_id"])
	require.NotContains(t, fields, "trace_id")
}

func TestEventBus_Publish(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	bus := observability.NewEventBus(zap.New(core))

	ctx := observability.WithRequestID(context.Background(), "req-2")
	bus.Publish(ctx, "billing.finalized", map[string]interface{}{
		"status":     "COMPLETED",
		"message_id": int64(7),
	})

	entries := logs.FilterMessage("domain event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "billing.finalized", fields["event_type"])
	require.Equal(t, "COMPLETED", fields["status"])
	require.Equal(t, int64(7), fields["message_id"])
	require.Equal(t, "req-2", fields["request_id"])
}

func TestEventBus_NilSafe(t *testing.T) {
	var bus *observability.EventBus
	require.NotPanics(t, func() {
		bus.Publish(context.Background(), "noop", nil)
	})
}

func TestGenerateIDs(t *testing.T) {
	require.Len(t, observability.GenerateTraceID(), 32)
	require.Len(t, observability.GenerateSpanID(), 16)
	require.NotEqual(t, observability.GenerateRequestID(), observability.GenerateRequestID())
	require.NotEqual(t, observability.GenerateConversationID(), observability.GenerateConversationID())
}
