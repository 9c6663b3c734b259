// Package cachemanager keeps recently computed transform results.
//
// CacheManager is the storage contract; InMemoryCacheManager backs it with
// go-cache. Memo layers compute-on-miss on top of any CacheManager.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values of type V under keys of type K, each with its
// own lifetime. Implementations are safe for concurrent use.
type CacheManager[K comparable, V any] interface {
	// Get returns the live value for key.
	Get(ctx context.Context, key K) (V, bool)
	// Set stores value for ttl; zero means the cache default.
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
	Len() int
}
