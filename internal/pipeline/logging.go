package pipeline

import (
	"context"
	"time"

	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/transform"
)

// NewLoggingMiddleware logs each execution with its sizes and duration.
func NewLoggingMiddleware() Middleware {
	return func(next Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, id, input string) (string, error) {
			start := time.Now()
			out, err := next.Execute(ctx, id, input)
			duration := time.Since(start)

			if err != nil {
				log.Warn(log.CatPipeline, "operation failed",
					"op", id,
					"kind", transform.KindOf(err),
					"input_bytes", len(input),
					"duration", duration,
					"error", err.Error(),
				)
				return out, err
			}
			log.Info(log.CatPipeline, "operation completed",
				"op", id,
				"input_bytes", len(input),
				"output_bytes", len(out),
				"duration", duration,
			)
			return out, nil
		})
	}
}
