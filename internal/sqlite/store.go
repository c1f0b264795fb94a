package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/daybook-app/daybook/pkg/types"
)

// schemaVersion is the schema generation this binary writes. Any field
// addition or removal across the entity tables bumps it and adds a migration
// step below.
const schemaVersion = 1

// dbFileName is the database file created inside Config.DataDir.
const dbFileName = "daybook.db"

// Store is the process-wide handle to the embedded record store. It is
// constructed once by Open and passed to services explicitly; there is no
// package-level singleton. The single connection serializes writes, and every
// multi-statement mutation runs inside one transaction.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// Open opens (or creates) the database file under cfg.DataDir, applies
// pragmas and migrates the schema to the current version. It returns
// types.ErrSchemaTooNew when the on-disk schema was written by a newer
// binary; that is fatal for the session.
func Open(cfg types.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return open(filepath.Join(cfg.DataDir, dbFileName))
}

// OpenMemory opens an in-memory store for tests.
func OpenMemory() (*Store, error) {
	return open(":memory:")
}

func open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection: the store itself serializes all writes.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// migrate brings the on-disk schema up to schemaVersion. Older data is
// migrated forward step by step; data from a newer binary is rejected rather
// than dropped.
func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading user_version: %w", err)
	}

	if version > schemaVersion {
		return fmt.Errorf("on-disk version %d, supported %d: %w",
			version, schemaVersion, types.ErrSchemaTooNew)
	}
	if version == schemaVersion {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer tx.Rollback()

	if version < 1 {
		for _, ddl := range schemaDDL {
			if _, err := tx.Exec(ddl); err != nil {
				return fmt.Errorf("creating table: %w", err)
			}
		}
		for _, ddl := range indexDDL {
			if _, err := tx.Exec(ddl); err != nil {
				return fmt.Errorf("creating index: %w", err)
			}
		}
	}

	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("bumping user_version: %w", err)
	}
	return tx.Commit()
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// conn returns the live connection, or ErrStoreClosed after Close.
func (s *Store) conn() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// withTx runs fn inside a single write transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteAll removes every entity record inside one transaction. Local flags
// are kept: they describe this installation, not the account data.
func (s *Store) DeleteAll(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return wipeEntities(ctx, tx)
	})
}

func wipeEntities(ctx context.Context, tx *sql.Tx) error {
	for _, table := range entityTables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("wiping %s: %w", table, err)
		}
	}
	return nil
}
