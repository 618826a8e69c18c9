// Package store provides a SQLite-backed key-value store for the padma
// state blob.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DBFile is the database file name inside the data directory.
const DBFile = "padma.db"

// KV is a key-value table in a SQLite database.
type KV struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at dbPath and migrates it.
func Open(dbPath string) (*KV, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting db: %w", err)
	}

	return &KV{db: db, now: time.Now}, nil
}

// Close closes the database.
func (k *KV) Close() error {
	return k.db.Close()
}

// Get returns the value for key and whether it exists.
func (k *KV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := k.db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value for key.
func (k *KV) Set(key string, value []byte) error {
	_, err := k.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, k.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Removing a missing key is not an error.
func (k *KV) Delete(key string) error {
	if _, err := k.db.Exec("DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when key was last written.
func (k *KV) UpdatedAt(key string) (time.Time, bool, error) {
	var ts string
	err := k.db.QueryRow("SELECT updated_at FROM kv_store WHERE key = ?", key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("reading %s: %w", key, err)
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, true, nil
}
