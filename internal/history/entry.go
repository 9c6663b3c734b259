// Package history persists a log of executed operations in SQLite.
// Only metadata is stored: operation, sizes, outcome and timing. Inputs and
// outputs never leave memory.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded execution.
type Entry struct {
	ID          uuid.UUID
	Operation   string
	Category    string
	InputBytes  int
	OutputBytes int
	Success     bool
	ErrorKind   string // empty on success
	DurationMs  int64
	CreatedAt   time.Time
}

// OperationStats aggregates entries for one operation.
type OperationStats struct {
	Operation string
	Total     int
	Failures  int
	AvgMs     float64
	LastRunAt time.Time
}

// Recorder accepts execution entries.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Repository is the full history store contract.
type Repository interface {
	Recorder
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Stats(ctx context.Context) ([]OperationStats, error)
	Clear(ctx context.Context) (int64, error)
}
