package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func TestInitTracer(t *testing.T) {
	// OTLP gRPC连接是惰性的，没有collector也能初始化
	shutdown, err := InitTracer("bookstore-admin-test", "localhost:4317", 0.5)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	_ = shutdown(context.Background())
}

func TestStartSpan_ParentChild(t *testing.T) {
	recorder := withRecorder(t)

	ctx, root := StartSpan(context.Background(), "test", "CreateOrder")
	traceID := ExtractTraceID(ctx)
	rootSpanID := ExtractSpanID(ctx)

	childCtx, child := StartSpan(ctx, "test", "LockBooks")
	assert.Equal(t, traceID, ExtractTraceID(childCtx))
	assert.NotEqual(t, rootSpanID, ExtractSpanID(childCtx))
	child.End()
	root.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "LockBooks", spans[0].Name())
	assert.Equal(t, rootSpanID, spans[0].Parent().SpanID().String())
}

func TestRecordError(t *testing.T) {
	recorder := withRecorder(t)

	_, span := StartSpan(context.Background(), "test", "Failing")
	RecordError(span, nil)
	RecordError(span, errors.New("库存不足"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Events(), 1)
}

func TestExtractIDs_NoSpan(t *testing.T) {
	assert.Empty(t, ExtractTraceID(context.Background()))
	assert.Empty(t, ExtractSpanID(context.Background()))
}
