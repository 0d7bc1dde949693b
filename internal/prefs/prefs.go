// Package prefs persists small user preferences.
package prefs

import (
	"errors"
	"log/slog"

	"github.com/jmylchreest/vow/internal/model"
	"github.com/jmylchreest/vow/internal/storage"
)

// Prefs reads and writes user preferences through the storage layer.
type Prefs struct {
	store storage.Storage
}

// New creates a Prefs over the given storage.
func New(store storage.Storage) *Prefs {
	return &Prefs{store: store}
}

// Theme returns the persisted theme preference.
// An absent, unreadable or unrecognized value falls back to light.
func (p *Prefs) Theme() model.Theme {
	raw, err := p.store.Get(model.ThemeKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Debug("failed to read theme preference", "error", err)
		}
		return model.ThemeLight
	}
	return model.ParseTheme(raw)
}

// SetTheme persists the theme preference.
func (p *Prefs) SetTheme(t model.Theme) error {
	return p.store.Set(model.ThemeKey, t.String())
}

// ToggleTheme flips the persisted theme preference.
// Returns the new theme; the returned value is valid even when
// persisting failed, so callers can still reflect the flip.
func (p *Prefs) ToggleTheme() (model.Theme, error) {
	next := p.Theme().Toggle()
	if err := p.SetTheme(next); err != nil {
		return next, err
	}
	return next, nil
}
