package study

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when an operation is invoked on a store
	// whose database has not been opened.
	ErrNotInitialized = errors.New("store not initialized")

	// ErrNotFound is returned when a record addressed by id is absent: deletes
	// and single-record gets. List operations never return it; an empty result
	// is not an error. Callers running cascades use it to tell an already-gone
	// child apart from a failed delete.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRequest wraps boundary validation failures.
	ErrInvalidRequest = errors.New("invalid request")
)

// ErrorKind classifies the underlying engine failure carried by a
// StorageError.
type ErrorKind string

const (
	KindRead  ErrorKind = "read"
	KindWrite ErrorKind = "write"
)

// StorageError marks an underlying SQLite failure (disk, quota, corruption)
// as distinct from the benign-absence cases covered by ErrNotFound.
type StorageError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func readErr(op string, err error) error {
	return &StorageError{Op: op, Kind: KindRead, Err: err}
}

func writeErr(op string, err error) error {
	return &StorageError{Op: op, Kind: KindWrite, Err: err}
}
