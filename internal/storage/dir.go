package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir implements key-value storage with one file per key inside a
// directory. This is the default backend.
type Dir struct {
	root string
}

// NewDir creates a directory-backed store rooted at the given path.
// The directory is created if it does not exist.
func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Dir{root: root}, nil
}

// Get retrieves the value for the given key.
// Returns ErrNotFound if the key file does not exist.
func (d *Dir) Get(key string) (string, error) {
	path, err := d.keyPath(key)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(data), nil
}

// Set stores the value for the given key.
// The value is written atomically via a temp file so a crash mid-write
// never leaves a truncated value behind.
func (d *Dir) Set(key, value string) error {
	path, err := d.keyPath(key)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return os.Rename(tmpPath, path)
}

// Close is a no-op for the directory backend.
func (d *Dir) Close() error {
	return nil
}

// keyPath maps a key to its file path, rejecting keys that would
// escape the storage directory.
func (d *Dir) keyPath(key string) (string, error) {
	if key == "" || !validKey(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(d.root, key), nil
}

// validKey reports whether the key is safe to use as a filename.
func validKey(key string) bool {
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	// Dot-only names would collide with directory entries
	return key != "." && key != ".."
}
