package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/vow/internal/model"
	"github.com/jmylchreest/vow/internal/storage"
)

func TestPrefs_Theme_Default(t *testing.T) {
	p := New(storage.NewMemory())
	assert.Equal(t, model.ThemeLight, p.Theme())
}

func TestPrefs_Theme_StoredDark(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(model.ThemeKey, "dark"))

	p := New(store)
	assert.Equal(t, model.ThemeDark, p.Theme())
}

func TestPrefs_Theme_UnknownValue(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(model.ThemeKey, "sepia"))

	p := New(store)
	assert.Equal(t, model.ThemeLight, p.Theme())
}

func TestPrefs_SetTheme(t *testing.T) {
	store := storage.NewMemory()
	p := New(store)

	require.NoError(t, p.SetTheme(model.ThemeDark))

	raw, err := store.Get(model.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", raw)
}

func TestPrefs_ToggleTheme(t *testing.T) {
	store := storage.NewMemory()
	p := New(store)

	// Default light, first toggle goes dark
	got, err := p.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, got)

	raw, err := store.Get(model.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", raw)

	// Second toggle restores light, in memory and in storage
	got, err = p.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, got)

	raw, err = store.Get(model.ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "light", raw)
}
