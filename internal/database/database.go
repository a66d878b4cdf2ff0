package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"explodata/internal/log"
)

// DB owns the sqlite connection pool for the exploration store. It is
// safe for concurrent use; concurrent replay tasks each take their own
// Session so no statement state is shared between goroutines.
type DB struct {
	db              *sql.DB
	path            string
	migrationFailed bool
}

// Open opens (creating if necessary) the exploration database at the
// given path and applies any pending schema migrations. A migration
// failure does not abort the open; it is recorded and queryable via
// MigrationFailed so the host can surface it.
func Open(path string) (*DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		renameLegacyDatabase(path)
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &DB{db: db, path: path}
	if err = d.migrate(); err != nil {
		log.Error("Database migration failed", "error", err)
		d.migrationFailed = true
	}
	return d, nil
}

// renameLegacyDatabase adopts a database file left by the plugin's
// previous name, if one exists and the new path does not.
func renameLegacyDatabase(path string) {
	legacy := filepath.Join(filepath.Dir(path), "bioscan.db")
	if _, err := os.Stat(legacy); err != nil {
		return
	}
	if _, err := os.Stat(path); err == nil {
		return
	}
	if err := os.Rename(legacy, path); err != nil {
		log.Warn("Could not adopt legacy database", "path", legacy, "error", err)
	}
}

func dsn(path string) string {
	pragmas := "_pragma=busy_timeout(30000)&_pragma=foreign_keys(1)"
	if path == ":memory:" {
		return "file::memory:?mode=memory&cache=shared&" + pragmas
	}
	return "file:" + path + "?" + pragmas + "&_pragma=journal_mode(WAL)"
}

// MigrationFailed reports whether the startup schema migration failed.
// The host consults this flag instead of receiving an error.
func (d *DB) MigrationFailed() bool {
	return d.migrationFailed
}

// Close closes the underlying connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// NewSession reserves a dedicated connection for one task. Every
// concurrent file-replay task must own its own Session; Sessions are
// not safe for concurrent use.
func (d *DB) NewSession(ctx context.Context) (*Session, error) {
	conn, err := d.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve connection: %w", err)
	}
	return &Session{ctx: ctx, conn: conn}, nil
}

// Session is a single-owner handle to the store. Each mutating method
// is a single auto-committed statement, so partial failure never
// leaves multi-row state half written within one call.
type Session struct {
	ctx  context.Context
	conn *sql.Conn
}

// Close returns the reserved connection to the pool.
func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) exec(query string, args ...any) (sql.Result, error) {
	return s.conn.ExecContext(s.ctx, query, args...)
}

func (s *Session) queryRow(query string, args ...any) *sql.Row {
	return s.conn.QueryRowContext(s.ctx, query, args...)
}

func (s *Session) query(query string, args ...any) (*sql.Rows, error) {
	return s.conn.QueryContext(s.ctx, query, args...)
}
