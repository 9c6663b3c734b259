package cachemanager

import (
	"context"
	"sync/atomic"
	"time"
)

// LoadFunc computes the value for input on a cache miss.
type LoadFunc[I, V any] func(ctx context.Context, input I) (V, error)

// Memo answers lookups from a CacheManager and falls back to a LoadFunc,
// storing what it loads. Failed loads are never stored.
type Memo[K comparable, V any, I any] struct {
	store  CacheManager[K, V]
	load   LoadFunc[I, V]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewMemo returns a memo over store. A nil store makes every lookup a load.
func NewMemo[K comparable, V any, I any](store CacheManager[K, V], load LoadFunc[I, V]) *Memo[K, V, I] {
	return &Memo[K, V, I]{store: store, load: load}
}

// Get returns the value for key, loading it from input on a miss. hit
// reports whether the value came from the store.
func (m *Memo[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (value V, hit bool, err error) {
	if m.store != nil {
		if v, ok := m.store.Get(ctx, key); ok {
			m.hits.Add(1)
			return v, true, nil
		}
	}
	m.misses.Add(1)

	value, err = m.load(ctx, input)
	if err != nil {
		return value, false, err
	}
	if m.store != nil {
		m.store.Set(ctx, key, value, ttl)
	}
	return value, false, nil
}

// Stats returns the hit and miss counts so far.
func (m *Memo[K, V, I]) Stats() (hits, misses int64) {
	return m.hits.Load(), m.misses.Load()
}
