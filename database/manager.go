package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// Manager owns the single database handle of the process. It is the only
// code that opens, upgrades or closes the handle, and it hands out gateways
// bound to whichever handle is currently open.
type Manager struct {
	dataDir string
	seed    bool
	logger  *slog.Logger
	now     func() time.Time

	mu         sync.RWMutex
	db         *DB
	notes      *NotesGateway
	categories *CategoryGateway
}

// NewManager creates a manager storing databases under dataDir. When seed is
// true, newly created databases are populated with the bundled sample data.
func NewManager(dataDir string, seed bool, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		dataDir: dataDir,
		seed:    seed,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle returns the open handle, or nil when nothing is open.
func (m *Manager) Handle() *DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

// Notes returns the notes gateway, or nil when no database is open.
func (m *Manager) Notes() *NotesGateway {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.notes
}

// Categories returns the category gateway, or nil when no database is open.
func (m *Manager) Categories() *CategoryGateway {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.categories
}

// Name returns the name of the open database, or "" when nothing is open.
func (m *Manager) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.db == nil {
		return ""
	}
	return m.db.name
}

// Initialise opens the named database, creating and seeding it first if it
// does not exist yet. Seeding is advisory: its failures are logged and the
// returned handle is ready either way. Any other failing step aborts and its
// error is returned.
func (m *Manager) Initialise(ctx context.Context, name string) (*DB, error) {
	m.logger.Info("initialising database", "name", name, "data_dir", m.dataDir)

	if err := validateName(name); err != nil {
		m.logger.Error("no usable database name supplied", "name", name, "error", err)
		return nil, err
	}

	if err := m.CheckSupport(ctx); err != nil {
		m.logger.Error("storage engine not supported", "error", err)
		return nil, err
	}

	exists, err := m.DatabaseExists(ctx, name)
	if err != nil {
		return nil, err
	}

	if exists {
		m.logger.Info("database exists", "name", name)
		return m.OpenDB(ctx, name)
	}

	m.logger.Info("database does not exist, creating", "name", name)
	if err := m.DeleteDatabase(ctx, name); err != nil {
		return nil, err
	}
	if err := m.CreateNewDB(ctx, name); err != nil {
		return nil, err
	}
	db, err := m.OpenDB(ctx, name)
	if err != nil {
		return nil, err
	}

	if m.seed {
		m.seedSampleData(ctx, db)
	}

	m.logger.Info("database is open and ready for use", "name", name)
	return db, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: no database name supplied", ErrConfiguration)
	}
	// The name becomes both a file name and a driver DSN, where '?' starts
	// connection parameters and "file:" switches to URI parsing
	if strings.ContainsAny(name, "/\\?#:\x00") || name == "." || name == ".." {
		return fmt.Errorf("%w: invalid database name %q", ErrConfiguration, name)
	}
	return nil
}

// CheckSupport verifies that the SQLite driver is usable on this host and
// that the data directory can be created.
func (m *Manager) CheckSupport(ctx context.Context) error {
	if !slices.Contains(sql.Drivers(), driverName) {
		return fmt.Errorf("%w: %s driver is not registered", ErrUnsupportedPlatform, driverName)
	}

	// Fails here when the binary was built without cgo
	probe, err := sql.Open(driverName, ":memory:")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
	}
	defer probe.Close()
	if err := probe.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedPlatform, err)
	}

	if err := os.MkdirAll(m.dataDir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create data directory: %w", ErrUnsupportedPlatform, err)
	}
	return nil
}

// DatabaseExists opens the named database without forcing a version. A
// stored version below SchemaVersion means an upgrade would be needed, so the
// database is reported as absent. The probe can leave an empty file behind,
// which is why creation always deletes first.
func (m *Manager) DatabaseExists(ctx context.Context, name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}

	sqlDB, err := openSQLite(ctx, databasePath(m.dataDir, name))
	if err != nil {
		return false, fmt.Errorf("check database %s: %w: %w", name, ErrRead, err)
	}
	defer sqlDB.Close()

	version, err := userVersion(ctx, sqlDB)
	if err != nil {
		return false, fmt.Errorf("check database %s: %w: %w", name, ErrRead, err)
	}

	switch {
	case version < SchemaVersion:
		return false, nil
	case version > SchemaVersion:
		return false, fmt.Errorf("check database %s: %w: stored version %d is newer than %d",
			name, ErrSchema, version, SchemaVersion)
	default:
		return true, nil
	}
}

// CreateNewDB applies the version 1 schema to the named database: both
// collections with their indexes. Re-running it against an upgraded
// database is harmless.
func (m *Manager) CreateNewDB(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	m.logger.Info("creating database", "name", name, "version", SchemaVersion)

	sqlDB, err := openSQLite(ctx, databasePath(m.dataDir, name))
	if err != nil {
		return fmt.Errorf("create database %s: %w: %w", name, ErrSchema, err)
	}
	defer sqlDB.Close()

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create database %s: %w: %w", name, ErrSchema, err)
	}

	if err := upgradeSchema(ctx, tx); err != nil {
		_ = tx.Rollback()
		m.logger.Error("error in creating database", "name", name, "error", err)
		return fmt.Errorf("create database %s: %w: %w", name, ErrSchema, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create database %s: %w: %w", name, ErrSchema, err)
	}

	m.logger.Info("database created successfully", "name", name)
	return nil
}

// DeleteDatabase removes the named database. Deleting a database that does
// not exist succeeds. If the manager holds a handle on it, the handle is
// closed first.
func (m *Manager) DeleteDatabase(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	m.mu.Lock()
	if m.db != nil && m.db.name == name {
		m.closeLocked()
	}
	m.mu.Unlock()

	path := databasePath(m.dataDir, name)
	for _, p := range []string{path, path + "-wal", path + "-shm", path + "-journal"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			m.logger.Error("error deleting database", "name", name, "path", p, "error", err)
			return fmt.Errorf("delete database %s: %w: %w", name, ErrStorage, err)
		}
	}

	m.logger.Info("database deleted", "name", name)
	return nil
}

// OpenDB opens an existing database at SchemaVersion and binds fresh
// gateways to it, replacing any handle the manager held before.
func (m *Manager) OpenDB(ctx context.Context, name string) (*DB, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	path := databasePath(m.dataDir, name)
	sqlDB, err := openSQLite(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w: %w", name, ErrRead, err)
	}

	version, err := userVersion(ctx, sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open database %s: %w: %w", name, ErrRead, err)
	}
	if version != SchemaVersion {
		sqlDB.Close()
		return nil, fmt.Errorf("open database %s: %w: stored version %d, expected %d",
			name, ErrSchema, version, SchemaVersion)
	}

	db := &DB{DB: sqlDB, name: name, path: path}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeLocked()
	m.db = db

	m.logger.Info("initialising gateways", "name", name)
	m.notes = &NotesGateway{db: db, now: m.now}
	m.categories = NewCategoryGateway(db)

	return db, nil
}

// CloseDB closes the open handle and clears the gateway references. It is a
// no-op when nothing is open.
func (m *Manager) CloseDB() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeLocked()
}

func (m *Manager) closeLocked() error {
	var err error
	if m.db != nil {
		err = m.db.Close()
		m.logger.Info("database connection closed", "name", m.db.name)
	}

	m.notes = nil
	m.categories = nil
	m.db = nil
	return err
}
