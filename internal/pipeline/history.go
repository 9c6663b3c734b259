package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/xroot/internal/history"
	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/transform"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// NewHistoryMiddleware records every execution, successful or not. A failed
// Record is logged and never changes the execution result.
func NewHistoryMiddleware(rec history.Recorder, catalog *operation.Catalog, clock Clock) Middleware {
	if clock == nil {
		clock = RealClock{}
	}
	return func(next Executor) Executor {
		return ExecutorFunc(func(ctx context.Context, id, input string) (string, error) {
			start := clock.Now()
			out, err := next.Execute(ctx, id, input)

			entry := history.Entry{
				ID:          uuid.New(),
				Operation:   id,
				InputBytes:  len(input),
				OutputBytes: len(out),
				Success:     err == nil,
				DurationMs:  clock.Now().Sub(start).Milliseconds(),
				CreatedAt:   start,
			}
			if d, ok := catalog.Lookup(id); ok {
				entry.Category = string(d.Category)
			} else {
				entry.Category = "unknown"
			}
			if err != nil {
				entry.ErrorKind = transform.KindOf(err).String()
			}

			// Recording outlives a cancelled request context.
			if recErr := rec.Record(context.WithoutCancel(ctx), entry); recErr != nil {
				log.ErrorErr(log.CatHistory, "failed to record execution", recErr, "op", id)
			}
			return out, err
		})
	}
}
