package database

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// DB is a live handle on one named database. It is owned by a Manager;
// gateways keep a reference to it but never close it.
type DB struct {
	*sql.DB
	name   string
	path   string
	closed atomic.Bool
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func databasePath(dataDir, name string) string {
	return filepath.Join(dataDir, name+".db")
}

// openSQLite opens path and applies the connection pragmas. The file is
// created if it does not exist.
func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Single connection: one handle, one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return db, nil
}

func (db *DB) Name() string {
	return db.name
}

func (db *DB) Path() string {
	return db.path
}

func (db *DB) IsClosed() bool {
	return db == nil || db.closed.Load()
}

// Close releases the connection. Closing twice is a no-op.
func (db *DB) Close() error {
	if db == nil || db.closed.Swap(true) {
		return nil
	}
	return db.DB.Close()
}

func (db *DB) ensureOpen() error {
	if db.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Version returns the stored schema version.
func (db *DB) Version(ctx context.Context) (int, error) {
	if err := db.ensureOpen(); err != nil {
		return 0, err
	}
	return userVersion(ctx, db.DB)
}

// transaction runs fn inside one transaction. Begin and commit failures are
// wrapped with class; errors returned by fn are passed through unchanged and
// roll the transaction back.
func (db *DB) transaction(ctx context.Context, class error, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w: %w", class, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w: %w", class, err)
	}
	return nil
}

func userVersion(ctx context.Context, q querier) (int, error) {
	var version int
	if err := q.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return version, nil
}
