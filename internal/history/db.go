package history

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/xroot/internal/log"
)

// migrations are applied in order; the schema version is the number of
// applied steps, tracked in PRAGMA user_version.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS executions (
		id           TEXT PRIMARY KEY,
		operation    TEXT NOT NULL,
		category     TEXT NOT NULL,
		input_bytes  INTEGER NOT NULL,
		output_bytes INTEGER NOT NULL,
		success      INTEGER NOT NULL,
		error_kind   TEXT,
		duration_ms  INTEGER NOT NULL,
		created_at   INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_executions_created_at ON executions (created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_executions_operation ON executions (operation)`,
}

// SchemaVersion is the user_version after all migrations have run.
var SchemaVersion = len(migrations)

// Store is the SQLite-backed Repository.
type Store struct {
	conn *sql.DB
	path string
}

var _ Repository = (*Store)(nil)

// Open opens (creating if needed) the history database at path, enables
// WAL and applies pending migrations. An existing database at an older
// schema version is copied to path+".bak" first.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	_, statErr := os.Stat(path)
	existed := statErr == nil

	dsn := "file:" + path +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)&_pragma=foreign_keys(1)"
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connecting to history database: %w", err)
	}

	s := &Store{conn: conn, path: path}
	if err := s.migrate(existed); err != nil {
		_ = conn.Close()
		return nil, err
	}
	log.Debug(log.CatHistory, "history store opened", "path", path, "schema", SchemaVersion)
	return s, nil
}

func (s *Store) migrate(existed bool) error {
	var version int
	if err := s.conn.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version > SchemaVersion {
		return fmt.Errorf("history database schema %d is newer than supported %d", version, SchemaVersion)
	}
	if version == SchemaVersion {
		return nil
	}

	if existed && version > 0 {
		if err := backupFile(s.path, s.path+".bak"); err != nil {
			return fmt.Errorf("backing up history database: %w", err)
		}
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := version; i < SchemaVersion; i++ {
		if _, err := tx.Exec(migrations[i]); err != nil {
			return fmt.Errorf("applying migration %d: %w", i+1, err)
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("setting schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration: %w", err)
	}
	log.Info(log.CatHistory, "history schema migrated", "from", version, "to", SchemaVersion)
	return nil
}

func backupFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // G304: src is the configured history path
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600) //nolint:gosec // G304: derived from the history path
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Connection returns the underlying database handle.
func (s *Store) Connection() *sql.DB {
	return s.conn
}

// Close closes the database.
func (s *Store) Close() error {
	return s.conn.Close()
}
