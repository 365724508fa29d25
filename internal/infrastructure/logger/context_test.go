package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fieldMap(entry observer.LoggedEntry) map[string]string {
	out := make(map[string]string, len(entry.Context))
	for _, f := range entry.Context {
		out[f.Key] = f.String
	}
	return out
}

func spanContext(t *testing.T) context.Context {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	if err != nil {
		t.Fatal(err)
	}
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	if err != nil {
		t.Fatal(err)
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	log := zap.NewExample()
	assert.Same(t, log, FromContext(WithContext(context.Background(), log)))
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, UserID(ctx))
	assert.Empty(t, SessionID(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithIdentity(ctx, "user-1", "sess-1")

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "user-1", UserID(ctx))
	assert.Equal(t, "sess-1", SessionID(ctx))
}

func TestTraceID(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", TraceID(spanContext(t)))
}

func TestL_EnrichesEntries(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	ctx := WithContext(spanContext(t), zap.New(core))
	ctx = WithRequestID(ctx, "req-9")
	ctx = WithIdentity(ctx, "user-9", "sess-9")

	L(ctx).Info("profile saved")

	entries := recorded.All()
	assert.Len(t, entries, 1)
	fields := fieldMap(entries[0])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	assert.Equal(t, "req-9", fields["request_id"])
	assert.Equal(t, "user-9", fields["user_id"])
	assert.Equal(t, "sess-9", fields["session_id"])
}

func TestL_WithoutLoggerIsNop(t *testing.T) {
	assert.NotPanics(t, func() {
		L(context.Background()).Info("dropped")
	})
}

func TestWith_UsesProvidedLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	With(WithRequestID(context.Background(), "req-2"), zap.New(core)).Warn("slow lookup")

	entries := recorded.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "req-2", fieldMap(entries[0])["request_id"])
	assert.NotContains(t, fieldMap(entries[0]), "user_id")
}

func TestWith_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		With(context.Background(), nil).Info("dropped")
	})
}
