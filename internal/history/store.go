package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/xroot/internal/log"
)

// DefaultRecentLimit is used when Recent is called with a non-positive limit.
const DefaultRecentLimit = 20

const entryColumns = `id, operation, category, input_bytes, output_bytes, success,
	error_kind, duration_ms, created_at`

func scanEntry(scanner interface{ Scan(...any) error }) (Entry, error) {
	var m entryModel
	if err := scanner.Scan(
		&m.ID, &m.Operation, &m.Category, &m.InputBytes, &m.OutputBytes, &m.Success,
		&m.ErrorKind, &m.DurationMs, &m.CreatedAt,
	); err != nil {
		return Entry{}, err
	}
	return m.toEntry()
}

// Record inserts e. A zero ID or CreatedAt is filled in.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	m := toEntryModel(e)

	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO executions (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Operation, m.Category, m.InputBytes, m.OutputBytes, m.Success,
		m.ErrorKind, m.DurationMs, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	log.Debug(log.CatHistory, "recorded execution", "op", e.Operation, "success", e.Success)
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	rows, err := s.conn.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM executions ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return entries, nil
}

// Stats returns per-operation totals ordered by run count, then name.
func (s *Store) Stats(ctx context.Context) ([]OperationStats, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT operation,
		       COUNT(*),
		       SUM(CASE WHEN success THEN 0 ELSE 1 END),
		       AVG(duration_ms),
		       MAX(created_at)
		FROM executions
		GROUP BY operation
		ORDER BY COUNT(*) DESC, operation ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats []OperationStats
	for rows.Next() {
		var (
			st   OperationStats
			last int64
		)
		if err := rows.Scan(&st.Operation, &st.Total, &st.Failures, &st.AvgMs, &last); err != nil {
			return nil, fmt.Errorf("failed to scan history stats: %w", err)
		}
		st.LastRunAt = time.UnixMilli(last)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history stats: %w", err)
	}
	return stats, nil
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM executions`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared entries: %w", err)
	}
	log.Info(log.CatHistory, "history cleared", "entries", n)
	return n, nil
}
