package cmd

import (
	"errors"
	"fmt"

	"github.com/zjrosen/xroot/internal/cachemanager"
	"github.com/zjrosen/xroot/internal/config"
	"github.com/zjrosen/xroot/internal/history"
	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/pipeline"
	"github.com/zjrosen/xroot/internal/tracing"
	"github.com/zjrosen/xroot/internal/transform"
)

// stack is the executor with its middleware and the resources behind it.
type stack struct {
	catalog  *operation.Catalog
	executor pipeline.Executor
	history  *history.Store
	tracing  *tracing.Provider
}

// newStack assembles logging, tracing, history and cache around the
// dispatcher, in that order from the outside in.
func newStack(c config.Config) (*stack, error) {
	catalog := operation.Default()
	dispatcher, err := transform.New(catalog, c.Transforms.Options())
	if err != nil {
		return nil, fmt.Errorf("building dispatcher: %w", err)
	}

	provider, err := tracing.NewProvider(c.Tracing)
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}

	s := &stack{catalog: catalog, tracing: provider}
	middlewares := []pipeline.Middleware{
		pipeline.NewLoggingMiddleware(),
		tracing.NewTracingMiddleware(provider.Tracer(), catalog),
	}

	if c.History.Enabled {
		store, err := history.Open(c.History.Path)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("opening history: %w", err)
		}
		s.history = store
		middlewares = append(middlewares, pipeline.NewHistoryMiddleware(store, catalog, pipeline.RealClock{}))
	}

	if c.Cache.Enabled {
		cache := cachemanager.NewInMemoryCacheManager[string, string]("transform results", c.Cache.TTL, cachemanager.DefaultCleanupInterval)
		middlewares = append(middlewares, pipeline.NewCacheMiddleware(cache, c.Cache.TTL))
	}

	s.executor = pipeline.Chain(pipeline.FromDispatcher(dispatcher), middlewares...)
	return s, nil
}

// Close flushes traces and closes the history database.
func (s *stack) Close() {
	var errs []error
	if s.tracing != nil {
		ctx, cancel := shutdownContext()
		errs = append(errs, s.tracing.Shutdown(ctx))
		cancel()
	}
	if s.history != nil {
		errs = append(errs, s.history.Close())
	}
	if err := errors.Join(errs...); err != nil {
		log.ErrorErr(log.CatPipeline, "closing execution stack", err)
	}
}
