package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStorageContract exercises the behavior every backend must share.
func runStorageContract(t *testing.T, s Storage) {
	t.Helper()

	// Missing key
	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// Set and get
	require.NoError(t, s.Set("theme", "dark"))
	got, err := s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	// Whole-value replace
	require.NoError(t, s.Set("theme", "light"))
	got, err = s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)

	// Values round-trip verbatim, including JSON payloads
	payload := `[{"category":"Health","text":"Walk daily","remind":"Weekly","timestamp":"2024-01-05T10:30:00Z"}]`
	require.NoError(t, s.Set("commitments", payload))
	got, err = s.Get("commitments")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Keys are independent
	got, err = s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)
}

func TestDir_Contract(t *testing.T) {
	s, err := NewDir(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	defer s.Close()

	runStorageContract(t, s)
}

func TestSQLite_Contract(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "vow.db"))
	require.NoError(t, err)
	defer s.Close()

	runStorageContract(t, s)
}

func TestMemory_Contract(t *testing.T) {
	s := NewMemory()
	defer s.Close()

	runStorageContract(t, s)
}

func TestNew_Dispatch(t *testing.T) {
	dir := t.TempDir()

	t.Run("db extension selects sqlite", func(t *testing.T) {
		s, err := New(filepath.Join(dir, "data.db"))
		require.NoError(t, err)
		defer s.Close()
		_, ok := s.(*SQLite)
		assert.True(t, ok)
	})

	t.Run("sqlite extension selects sqlite", func(t *testing.T) {
		s, err := New(filepath.Join(dir, "data.sqlite"))
		require.NoError(t, err)
		defer s.Close()
		_, ok := s.(*SQLite)
		assert.True(t, ok)
	})

	t.Run("plain path selects dir", func(t *testing.T) {
		s, err := New(filepath.Join(dir, "plain"))
		require.NoError(t, err)
		defer s.Close()
		_, ok := s.(*Dir)
		assert.True(t, ok)
	})
}

func TestDir_SurvivesReopen(t *testing.T) {
	root := filepath.Join(t.TempDir(), "store")

	s, err := NewDir(root)
	require.NoError(t, err)
	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Close())

	s, err = NewDir(root)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vow.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestDir_RejectsUnsafeKeys(t *testing.T) {
	s, err := NewDir(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	tests := []string{"", "../escape", "a/b", "a\\b", "..", "key with space"}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			err := s.Set(key, "value")
			assert.Error(t, err)
			_, err = s.Get(key)
			assert.Error(t, err)
		})
	}
}

func TestDir_NoTempFileLeftBehind(t *testing.T) {
	root := t.TempDir()
	s, err := NewDir(root)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("theme", "dark"))

	matches, err := filepath.Glob(filepath.Join(root, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
