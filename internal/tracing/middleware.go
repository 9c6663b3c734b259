package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/pipeline"
	"github.com/zjrosen/xroot/internal/transform"
)

// SpanExecute is the span name for one operation run.
const SpanExecute = "transform.execute"

// Span attribute keys.
const (
	AttrOperationID       = "operation.id"
	AttrOperationCategory = "operation.category"
	AttrInputBytes        = "input.bytes"
	AttrOutputBytes       = "output.bytes"
	AttrErrorKind         = "error.kind"
)

// NewTracingMiddleware starts a span around each execution. A nil tracer
// yields a pass-through middleware.
func NewTracingMiddleware(tracer trace.Tracer, catalog *operation.Catalog) pipeline.Middleware {
	if tracer == nil {
		return func(next pipeline.Executor) pipeline.Executor { return next }
	}

	return func(next pipeline.Executor) pipeline.Executor {
		return pipeline.ExecutorFunc(func(ctx context.Context, id, input string) (string, error) {
			ctx, span := tracer.Start(ctx, SpanExecute, trace.WithSpanKind(trace.SpanKindInternal))
			defer span.End()

			category := "unknown"
			if d, ok := catalog.Lookup(id); ok {
				category = string(d.Category)
			}
			span.SetAttributes(
				attribute.String(AttrOperationID, id),
				attribute.String(AttrOperationCategory, category),
				attribute.Int(AttrInputBytes, len(input)),
			)

			out, err := next.Execute(ctx, id, input)
			if err != nil {
				span.RecordError(err)
				span.SetAttributes(attribute.String(AttrErrorKind, transform.KindOf(err).String()))
				span.SetStatus(codes.Error, err.Error())
				return out, err
			}

			span.SetAttributes(attribute.Int(AttrOutputBytes, len(out)))
			span.SetStatus(codes.Ok, "")
			return out, nil
		})
	}
}
