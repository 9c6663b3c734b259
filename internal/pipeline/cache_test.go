package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xroot/internal/cachemanager"
	"github.com/zjrosen/xroot/internal/mocks"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/transform"
)

func countingExecutor(calls *int) Executor {
	inner := FromDispatcher(transform.Default())
	return ExecutorFunc(func(ctx context.Context, id, input string) (string, error) {
		*calls++
		return inner.Execute(ctx, id, input)
	})
}

func TestCacheKey(t *testing.T) {
	require.Len(t, CacheKey("a", "b"), 64)
	require.Equal(t, CacheKey("a", "b"), CacheKey("a", "b"))
	require.NotEqual(t, CacheKey("ab", ""), CacheKey("a", "b"), "separator keeps id and input apart")
}

func TestCacheMiddleware_HitAndMiss(t *testing.T) {
	var calls int
	cache := cachemanager.NewInMemoryCacheManager[string, string]("results", time.Minute, time.Minute)
	e := Chain(countingExecutor(&calls), NewCacheMiddleware(cache, time.Minute))
	ctx := context.Background()

	out, err := e.Execute(ctx, operation.ToBase64, "hello")
	require.NoError(t, err)
	require.Equal(t, "aGVsbG8=", out)

	out, err = e.Execute(ctx, operation.ToBase64, "hello")
	require.NoError(t, err)
	require.Equal(t, "aGVsbG8=", out)
	require.Equal(t, 1, calls, "second call served from cache")

	_, err = e.Execute(ctx, operation.ToHex, "hello")
	require.NoError(t, err)
	require.Equal(t, 2, calls, "different operation is a miss")
	require.Equal(t, 2, cache.Len())
}

func TestCacheMiddleware_FailuresNotCached(t *testing.T) {
	var calls int
	cache := cachemanager.NewInMemoryCacheManager[string, string]("results", time.Minute, time.Minute)
	e := Chain(countingExecutor(&calls), NewCacheMiddleware(cache, time.Minute))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		out, err := e.Execute(ctx, operation.JSONPretty, "{nope")
		require.Empty(t, out)
		require.True(t, errors.Is(err, transform.ErrInvalidInput))
	}
	require.Equal(t, 2, calls)
	require.Zero(t, cache.Len())
}

func TestCacheMiddleware_UsesKeyAndTTL(t *testing.T) {
	cache := mocks.NewMockCacheManager[string, string](t)
	key := CacheKey(operation.ToUpper, "abc")
	cache.EXPECT().Get(mock.Anything, key).Return("", false).Once()
	cache.EXPECT().Set(mock.Anything, key, "ABC", 5*time.Minute).Return().Once()

	e := Chain(FromDispatcher(transform.Default()), NewCacheMiddleware(cache, 5*time.Minute))
	out, err := e.Execute(context.Background(), operation.ToUpper, "abc")
	require.NoError(t, err)
	require.Equal(t, "ABC", out)
}

func TestCacheMiddleware_NilCache(t *testing.T) {
	var calls int
	e := Chain(countingExecutor(&calls), NewCacheMiddleware(nil, time.Minute))

	for i := 0; i < 2; i++ {
		_, err := e.Execute(context.Background(), operation.ToLower, "A")
		require.NoError(t, err)
	}
	require.Equal(t, 2, calls)
}
