// Package pledge manages the persisted commitment list.
package pledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmylchreest/vow/internal/model"
	"github.com/jmylchreest/vow/internal/storage"
)

// Book holds the in-memory commitment list backed by storage.
// The persisted value is a single JSON array; every write replaces it
// wholesale. Commitments keep their submission order and are never
// reordered or removed.
type Book struct {
	store       storage.Storage
	commitments []model.Commitment
}

// Open loads the commitment list from storage.
// An absent value, a read failure or a value that does not parse as a
// commitment array is treated as an empty list. The next successful
// submission overwrites whatever was stored.
func Open(store storage.Storage) *Book {
	b := &Book{store: store}

	raw, err := store.Get(model.StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Debug("failed to read commitments, starting empty", "error", err)
		}
		return b
	}

	var commitments []model.Commitment
	if err := json.Unmarshal([]byte(raw), &commitments); err != nil {
		slog.Debug("stored commitments did not parse, starting empty", "error", err)
		return b
	}

	b.commitments = commitments
	return b
}

// Add appends a commitment and persists the full list.
// On a persistence failure the in-memory list is left unchanged.
func (b *Book) Add(c model.Commitment) error {
	if err := c.Validate(); err != nil {
		return err
	}

	next := append(append([]model.Commitment{}, b.commitments...), c)
	if err := b.persist(next); err != nil {
		return err
	}

	b.commitments = next
	return nil
}

// All returns the commitments in submission order.
// The returned slice is a copy; mutating it does not affect the book.
func (b *Book) All() []model.Commitment {
	out := make([]model.Commitment, len(b.commitments))
	copy(out, b.commitments)
	return out
}

// Len returns the number of recorded commitments.
func (b *Book) Len() int {
	return len(b.commitments)
}

// Last returns the most recently recorded commitment.
func (b *Book) Last() (model.Commitment, bool) {
	if len(b.commitments) == 0 {
		return model.Commitment{}, false
	}
	return b.commitments[len(b.commitments)-1], true
}

// persist writes the given list as one JSON array.
func (b *Book) persist(commitments []model.Commitment) error {
	data, err := json.Marshal(commitments)
	if err != nil {
		return fmt.Errorf("failed to marshal commitments: %w", err)
	}
	if err := b.store.Set(model.StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist commitments: %w", err)
	}
	return nil
}
