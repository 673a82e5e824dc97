// Package study implements the local store engine for the vido study
// organizer: four SQLite-backed collections (folders, saved videos, video
// moments, video notes) plus the domain invariants layered on top of them
// (tree deletes, first-run seeding, the folder color/icon taxonomies, and
// full-state export/import).
package study

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	pkgdb "github.com/vidostudy/vido/pkg/db"
)

// Store owns the four entity collections of one vido installation. It is
// constructed once at startup and passed by reference to every caller; there
// is no package-level instance.
type Store struct {
	db       *sql.DB
	validate *validator.Validate
}

// Open opens (creating and migrating if necessary) the database at path and
// returns a ready store. The caller owns the Close.
func Open(path string, enableWAL bool, syncPragma string) (*Store, error) {
	conn, err := pkgdb.OpenDBConnection(path, enableWAL, syncPragma)
	if err != nil {
		return nil, fmt.Errorf("failed to open study database: %w", err)
	}

	if err := pkgdb.UpgradeDB(conn, path, pkgdb.TargetSchemaVersion); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize/upgrade study database '%s': %w", path, err)
	}

	return NewStore(conn), nil
}

// NewStore wraps an already-opened and migrated database connection. Useful
// for callers that manage the connection lifecycle themselves.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		validate: validator.New(),
	}
}

// Close checkpoints the WAL and closes the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	// TRUNCATE mode waits for transactions and writes the WAL back to the main DB.
	s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE);")
	return s.db.Close()
}

// DB exposes the underlying *sql.DB for callers that need raw access.
func (s *Store) DB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.db
}

// ready gates every operation: a nil or unopened store fails with
// ErrNotInitialized rather than panicking inside database/sql.
func (s *Store) ready() error {
	if s == nil || s.db == nil {
		return ErrNotInitialized
	}
	return nil
}

// checkRequest runs boundary validation and wraps failures in
// ErrInvalidRequest so callers can branch on the sentinel.
func (s *Store) checkRequest(req any) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return nil
}

// nowISO returns the RFC 3339 UTC timestamp the store stamps onto records.
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// newID returns a globally unique opaque record id. Ids are never reused.
func newID() string {
	return uuid.NewString()
}

const clearTablesStatement = `
	DELETE FROM video_notes;
	DELETE FROM video_moments;
	DELETE FROM saved_videos;
	DELETE FROM folders;
	`

// ClearAllData empties all four collections inside a single transaction, so
// the wipe is all-or-nothing from the caller's perspective.
func (s *Store) ClearAllData(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return writeErr("clear all data", err)
	}

	if _, err := tx.ExecContext(ctx, clearTablesStatement); err != nil {
		tx.Rollback()
		return writeErr("clear all data", err)
	}

	if err := tx.Commit(); err != nil {
		return writeErr("clear all data", err)
	}

	return nil
}
