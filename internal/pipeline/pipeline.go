// Package pipeline wraps the transform dispatcher with cross-cutting
// behaviour: logging, result caching, history recording and tracing.
// Middleware composes around an Executor the same way for the panel and the
// CLI.
package pipeline

import (
	"context"

	"github.com/zjrosen/xroot/internal/transform"
)

// Executor runs an operation over input.
type Executor interface {
	Execute(ctx context.Context, id, input string) (string, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, id, input string) (string, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, id, input string) (string, error) {
	return f(ctx, id, input)
}

// Middleware wraps an Executor.
type Middleware func(Executor) Executor

// Chain applies middlewares so the first one is the outermost wrapper:
// Chain(e, logging, cache) runs logging(cache(e)).
func Chain(e Executor, middlewares ...Middleware) Executor {
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] != nil {
			e = middlewares[i](e)
		}
	}
	return e
}

// FromDispatcher adapts the context-free dispatcher. A cancelled context
// short-circuits before the transform runs.
func FromDispatcher(d *transform.Dispatcher) Executor {
	return ExecutorFunc(func(ctx context.Context, id, input string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return d.Execute(id, input)
	})
}
