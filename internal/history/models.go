package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// entryModel mirrors a row of the executions table. Times are Unix
// milliseconds.
type entryModel struct {
	ID          string
	Operation   string
	Category    string
	InputBytes  int64
	OutputBytes int64
	Success     bool
	ErrorKind   *string // nullable
	DurationMs  int64
	CreatedAt   int64
}

func toEntryModel(e Entry) entryModel {
	m := entryModel{
		ID:          e.ID.String(),
		Operation:   e.Operation,
		Category:    e.Category,
		InputBytes:  int64(e.InputBytes),
		OutputBytes: int64(e.OutputBytes),
		Success:     e.Success,
		DurationMs:  e.DurationMs,
		CreatedAt:   e.CreatedAt.UnixMilli(),
	}
	if e.ErrorKind != "" {
		kind := e.ErrorKind
		m.ErrorKind = &kind
	}
	return m
}

func (m entryModel) toEntry() (Entry, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing entry id %q: %w", m.ID, err)
	}
	e := Entry{
		ID:          id,
		Operation:   m.Operation,
		Category:    m.Category,
		InputBytes:  int(m.InputBytes),
		OutputBytes: int(m.OutputBytes),
		Success:     m.Success,
		DurationMs:  m.DurationMs,
		CreatedAt:   time.UnixMilli(m.CreatedAt),
	}
	if m.ErrorKind != nil {
		e.ErrorKind = *m.ErrorKind
	}
	return e, nil
}
