// Package sqlite provides a SQLite-backed document cache.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB wraps a SQLite connection and owns schema creation.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB prepares a handle for the database at path; ":memory:" selects
// an in-memory database. Nothing is opened until Open.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open connects, applies connection pragmas and creates the schema
// when missing.
func (db *DB) Open() (err error) {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err != nil {
			conn.Close()
		}
	}()

	// SQLite allows one writer at a time; a single connection keeps
	// our own writers from tripping over each other.
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	// Wait up to 5s on lock contention rather than failing with
	// "database is locked" immediately.
	if _, err = conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}

	// WAL keeps readers unblocked while the cache fills, at the cost
	// of -wal and -shm files next to the database. In-memory databases
	// don't support it.
	if db.path != ":memory:" {
		if _, err = conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			return fmt.Errorf("enable WAL: %w", err)
		}
	}

	db.db = conn
	if err = db.createSchema(); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext runs a query expected to return at most one row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext runs a query returning rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext runs a statement that returns no rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// Stats reports connection pool statistics.
func (db *DB) Stats() sql.DBStats {
	return db.db.Stats()
}

// createSchema creates the tables if they don't exist. Cached pages
// are keyed by (url, format): the same page rendered as markdown and
// as text occupies two rows.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			format TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			truncated INTEGER NOT NULL DEFAULT 0,
			fetched_at TEXT NOT NULL,
			UNIQUE (url, format)
		);

		CREATE INDEX IF NOT EXISTS idx_documents_url ON documents(url);
		CREATE INDEX IF NOT EXISTS idx_documents_fetched_at ON documents(fetched_at);
	`

	_, err := db.db.Exec(schema)
	return err
}
