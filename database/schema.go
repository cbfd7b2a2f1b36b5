package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SchemaVersion is the version a database is created at. Opening a database
// stored at a lower version is treated as "upgrade needed".
const SchemaVersion = 1

const (
	StoreNotes      = "NOTES"
	StoreCategories = "CATEGORIES"
)

// collection declares one object store: an auto-incrementing ID key plus
// one non-unique index per field.
type collection struct {
	name   string
	fields []string
}

var collections = []collection{
	{name: StoreNotes, fields: []string{"TITLE", "CONTENT", "CATEGORY", "CREATED_DATE", "UPDATED_DATE"}},
	{name: StoreCategories, fields: []string{"TITLE", "DESCRIPTION"}},
}

func (c collection) createTable() string {
	columns := []string{"ID INTEGER PRIMARY KEY AUTOINCREMENT"}
	for _, f := range c.fields {
		columns = append(columns, f+" TEXT NOT NULL DEFAULT ''")
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", c.name, strings.Join(columns, ",\n\t"))
}

// indexName is qualified by collection because SQLite index names share one
// namespace per database.
func (c collection) indexName(field string) string {
	return c.name + "_" + field
}

func (c collection) createIndexes() []string {
	stmts := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", c.indexName(f), c.name, f))
	}
	return stmts
}

func collectionExists(ctx context.Context, q querier, name string) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check collection %s: %w", name, err)
	}
	return n > 0, nil
}

// upgradeSchema is the version-upgrade step. It only creates what is missing,
// so running it against an upgraded schema changes nothing.
func upgradeSchema(ctx context.Context, tx *sql.Tx) error {
	for _, c := range collections {
		exists, err := collectionExists(ctx, tx, c.name)
		if err != nil {
			return err
		}
		if !exists {
			if _, err := tx.ExecContext(ctx, c.createTable()); err != nil {
				return fmt.Errorf("create collection %s: %w", c.name, err)
			}
		}
		for _, stmt := range c.createIndexes() {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("create index on %s: %w", c.name, err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// CollectionNames lists the object stores in the database, sorted by name.
func (db *DB) CollectionNames(ctx context.Context) ([]string, error) {
	if err := db.ensureOpen(); err != nil {
		return nil, err
	}
	return db.names(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
}

// IndexNames lists the secondary indexes declared on a collection, sorted by name.
func (db *DB) IndexNames(ctx context.Context, collectionName string) ([]string, error) {
	if err := db.ensureOpen(); err != nil {
		return nil, err
	}
	return db.names(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'index' AND tbl_name = ? AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`, collectionName)
}

func (db *DB) names(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return names, nil
}
