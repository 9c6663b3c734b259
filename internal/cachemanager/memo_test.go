package cachemanager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xroot/internal/mocks"
)

func exclaim(_ context.Context, in string) (string, error) {
	if in == "" {
		return "", errors.New("empty")
	}
	return in + "!", nil
}

func TestMemo_Hit(t *testing.T) {
	store := mocks.NewMockCacheManager[string, string](t)
	store.EXPECT().Get(mock.Anything, "key").Return("cached", true).Once()

	memo := NewMemo[string, string, string](store, exclaim)

	got, hit, err := memo.Get(context.Background(), "key", "hi", time.Minute)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, "cached", got)
}

func TestMemo_MissStores(t *testing.T) {
	store := mocks.NewMockCacheManager[string, string](t)
	store.EXPECT().Get(mock.Anything, "key").Return("", false).Once()
	store.EXPECT().Set(mock.Anything, "key", "hi!", time.Minute).Return().Once()

	memo := NewMemo[string, string, string](store, exclaim)

	got, hit, err := memo.Get(context.Background(), "key", "hi", time.Minute)
	require.NoError(t, err)
	require.False(t, hit)
	require.Equal(t, "hi!", got)
}

func TestMemo_ErrorNotStored(t *testing.T) {
	store := mocks.NewMockCacheManager[string, string](t)
	store.EXPECT().Get(mock.Anything, "key").Return("", false).Once()

	memo := NewMemo[string, string, string](store, exclaim)

	_, _, err := memo.Get(context.Background(), "key", "", time.Minute)
	require.EqualError(t, err, "empty")
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMemo_NilStoreAlwaysLoads(t *testing.T) {
	memo := NewMemo[string, string, string](nil, exclaim)

	for range 3 {
		got, hit, err := memo.Get(context.Background(), "key", "x", time.Minute)
		require.NoError(t, err)
		require.False(t, hit)
		require.Equal(t, "x!", got)
	}
	hits, misses := memo.Stats()
	require.Zero(t, hits)
	require.EqualValues(t, 3, misses)
}

func TestMemo_ConcurrentStats(t *testing.T) {
	store := NewInMemoryCacheManager[string, string]("memo", time.Minute, time.Minute)
	memo := NewMemo[string, string, string](store, exclaim)
	ctx := context.Background()

	_, _, err := memo.Get(ctx, "k", "v", time.Minute)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, hit, err := memo.Get(ctx, "k", "v", time.Minute)
			require.NoError(t, err)
			require.True(t, hit)
			require.Equal(t, "v!", got)
		}()
	}
	wg.Wait()

	hits, misses := memo.Stats()
	require.EqualValues(t, 50, hits)
	require.EqualValues(t, 1, misses)
}
