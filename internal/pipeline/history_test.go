package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/xroot/internal/history"
	"github.com/zjrosen/xroot/internal/mocks"
	"github.com/zjrosen/xroot/internal/operation"
	"github.com/zjrosen/xroot/internal/transform"
)

func TestHistoryMiddleware_RecordsSuccess(t *testing.T) {
	start := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(start).Once()
	clock.EXPECT().Now().Return(start.Add(7 * time.Millisecond)).Once()

	rec := mocks.NewMockRecorder(t)
	var got history.Entry
	rec.EXPECT().Record(mock.Anything, mock.Anything).Run(func(_ context.Context, e history.Entry) {
		got = e
	}).Return(nil).Once()

	e := Chain(FromDispatcher(transform.Default()), NewHistoryMiddleware(rec, operation.Default(), clock))
	out, err := e.Execute(context.Background(), operation.ToHex, "Hi")
	require.NoError(t, err)
	require.Equal(t, "48 69", out)

	require.NotEqual(t, uuid.Nil, got.ID)
	require.Equal(t, history.Entry{
		ID:          got.ID,
		Operation:   operation.ToHex,
		Category:    "encoding",
		InputBytes:  2,
		OutputBytes: 5,
		Success:     true,
		DurationMs:  7,
		CreatedAt:   start,
	}, got)
}

func TestHistoryMiddleware_RecordsFailure(t *testing.T) {
	rec := mocks.NewMockRecorder(t)
	var got history.Entry
	rec.EXPECT().Record(mock.Anything, mock.Anything).Run(func(_ context.Context, e history.Entry) {
		got = e
	}).Return(nil).Once()

	e := Chain(FromDispatcher(transform.Default()), NewHistoryMiddleware(rec, operation.Default(), nil))
	_, err := e.Execute(context.Background(), "Nope", "x")
	require.Error(t, err)

	require.False(t, got.Success)
	require.Equal(t, "unknown", got.Category)
	require.Equal(t, "unknown_operation", got.ErrorKind)
}

func TestHistoryMiddleware_RecordErrorIsSwallowed(t *testing.T) {
	rec := mocks.NewMockRecorder(t)
	rec.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	e := Chain(FromDispatcher(transform.Default()), NewHistoryMiddleware(rec, operation.Default(), nil))
	out, err := e.Execute(context.Background(), operation.ROT13, "a")
	require.NoError(t, err)
	require.Equal(t, "n", out)
}

func TestHistoryMiddleware_WithSQLiteStore(t *testing.T) {
	store, err := history.Open(t.TempDir() + "/history.db")
	require.NoError(t, err)
	defer store.Close()

	e := Chain(FromDispatcher(transform.Default()), NewHistoryMiddleware(store, operation.Default(), nil))
	_, _ = e.Execute(context.Background(), operation.CRC32, "123456789")
	_, _ = e.Execute(context.Background(), operation.FromHex, "zz")

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "invalid_encoding", entries[0].ErrorKind)
	require.Equal(t, "hashing", entries[1].Category)
}
