package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/pipeline"
	"github.com/zjrosen/xroot/internal/transform"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return recorder, tp
}

func attrMap(attrs []attribute.KeyValue) map[string]any {
	m := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value.AsInterface()
	}
	return m
}

func TestTracingMiddleware_Success(t *testing.T) {
	recorder, tp := setupRecorder(t)
	e := pipeline.Chain(
		pipeline.FromDispatcher(transform.Default()),
		NewTracingMiddleware(tp.Tracer("test"), operation.Default()),
	)

	out, err := e.Execute(context.Background(), operation.ToBase64, "hi")
	require.NoError(t, err)
	require.Equal(t, "aGk=", out)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, SpanExecute, span.Name())
	assert.Equal(t, codes.Ok, span.Status().Code)

	attrs := attrMap(span.Attributes())
	assert.Equal(t, operation.ToBase64, attrs[AttrOperationID])
	assert.Equal(t, "encoding", attrs[AttrOperationCategory])
	assert.Equal(t, int64(2), attrs[AttrInputBytes])
	assert.Equal(t, int64(4), attrs[AttrOutputBytes])
	assert.NotContains(t, attrs, AttrErrorKind)
}

func TestTracingMiddleware_Failure(t *testing.T) {
	recorder, tp := setupRecorder(t)
	e := pipeline.Chain(
		pipeline.FromDispatcher(transform.Default()),
		NewTracingMiddleware(tp.Tracer("test"), operation.Default()),
	)

	_, err := e.Execute(context.Background(), operation.JSONPretty, "{")
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Contains(t, span.Status().Description, "Invalid JSON")

	attrs := attrMap(span.Attributes())
	assert.Equal(t, "invalid_input", attrs[AttrErrorKind])
	assert.NotContains(t, attrs, AttrOutputBytes)

	require.NotEmpty(t, span.Events(), "error recorded as span event")
	assert.Equal(t, "exception", span.Events()[0].Name)
}

func TestTracingMiddleware_UnknownOperationCategory(t *testing.T) {
	recorder, tp := setupRecorder(t)
	e := pipeline.Chain(
		pipeline.FromDispatcher(transform.Default()),
		NewTracingMiddleware(tp.Tracer("test"), operation.Default()),
	)

	_, _ = e.Execute(context.Background(), "Nope", "x")

	attrs := attrMap(recorder.Ended()[0].Attributes())
	assert.Equal(t, "unknown", attrs[AttrOperationCategory])
	assert.Equal(t, "unknown_operation", attrs[AttrErrorKind])
}

func TestTracingMiddleware_NilTracerPassesThrough(t *testing.T) {
	base := pipeline.FromDispatcher(transform.Default())
	e := pipeline.Chain(base, NewTracingMiddleware(nil, operation.Default()))

	out, err := e.Execute(context.Background(), operation.ToUpper, "x")
	require.NoError(t, err)
	require.Equal(t, "X", out)
}
