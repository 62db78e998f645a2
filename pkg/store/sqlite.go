package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DatabaseFile is the sqlite file created under the base path.
const DatabaseFile = "diario.db"

type sqliteBackend struct {
	db  *sqlx.DB
	dir string
}

// NewSQLite opens (or creates) basePath/diario.db and applies pending
// migrations.
func NewSQLite(basePath string) (Backend, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	b, err := openSQLite(filepath.Join(basePath, DatabaseFile))
	if err != nil {
		return nil, err
	}
	b.dir = basePath
	return b, nil
}

// openSQLite opens the database at dsn. ":memory:" gives a private database
// for tests.
func openSQLite(dsn string) (*sqliteBackend, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: opening sqlite db: %w", err)
	}
	// Every connection to ":memory:" is its own database.
	db.SetMaxOpenConns(1)

	if dsn != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: enabling WAL mode: %w", err)
		}
	}

	b := &sqliteBackend{db: db}
	if err := b.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: running migrations: %w", err)
	}
	return b, nil
}

func (b *sqliteBackend) runMigrations() error {
	current := 0

	var tableCount int
	err := b.db.Get(&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'")
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}
	if tableCount > 0 {
		if err := b.db.Get(&current, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := b.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}
	return nil
}

func (b *sqliteBackend) Read(key string) ([]byte, error) {
	var value string
	err := b.db.Get(&value, "SELECT value FROM blobs WHERE key = ?", key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return []byte(value), nil
}

func (b *sqliteBackend) Write(key string, value []byte) error {
	const query = `
		INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := b.db.Exec(query, key, string(value), time.Now().UTC()); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (b *sqliteBackend) Dir() string {
	return b.dir
}

func (b *sqliteBackend) Close() error {
	return b.db.Close()
}
