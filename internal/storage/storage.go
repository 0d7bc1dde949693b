// Package storage provides local key-value persistence for vow.
//
// All application state goes through the same narrow contract: read a
// string value by key, replace it wholesale, close the backend. The
// backends make no attempt at cross-process consistency; a second vow
// instance sees another's writes only after it reopens the store.
package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// Storage is the persistence contract used by all vow state.
type Storage interface {
	// Get retrieves the value for the given key.
	// Returns ErrNotFound if the key does not exist.
	Get(key string) (string, error)

	// Set stores the value for the given key, replacing any previous
	// value entirely.
	Set(key, value string) error

	// Close releases any resources held by the backend.
	Close() error
}

// New creates a Storage backed by the given path.
// Paths ending in .db, .sqlite or .sqlite3 select the SQLite backend;
// anything else is treated as a directory holding one file per key.
func New(path string) (Storage, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLite(path)
	default:
		return NewDir(path)
	}
}
