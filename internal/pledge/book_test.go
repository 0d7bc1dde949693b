package pledge

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/vow/internal/model"
	"github.com/jmylchreest/vow/internal/storage"
)

func TestOpen_EmptyStorage(t *testing.T) {
	b := Open(storage.NewMemory())
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.All())
}

func TestOpen_CorruptedValue(t *testing.T) {
	tests := []struct {
		name   string
		stored string
	}{
		{"not json", "{{{"},
		{"json object", `{"category":"Health"}`},
		{"json string", `"hello"`},
		{"json number", "42"},
		{"array of numbers", "[1, 2, 3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemory()
			require.NoError(t, store.Set(model.StorageKey, tt.stored))

			b := Open(store)
			assert.Equal(t, 0, b.Len())
		})
	}
}

func TestBook_Add(t *testing.T) {
	store := storage.NewMemory()
	b := Open(store)

	c, err := model.NewCommitment("Health", "Walk daily", "Weekly")
	require.NoError(t, err)
	require.NoError(t, b.Add(c))

	assert.Equal(t, 1, b.Len())

	// The persisted value is exactly that one record as a JSON array
	raw, err := store.Get(model.StorageKey)
	require.NoError(t, err)

	var stored []model.Commitment
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "Health", stored[0].Category)
	assert.Equal(t, "Walk daily", stored[0].Text)
	assert.Equal(t, "Weekly", stored[0].Remind)
	assert.NotEmpty(t, stored[0].Timestamp)
}

func TestBook_Add_RejectsEmptyText(t *testing.T) {
	store := storage.NewMemory()
	b := Open(store)

	err := b.Add(model.Commitment{Category: "Health", Text: "   ", Remind: "Weekly"})
	assert.ErrorIs(t, err, model.ErrEmptyText)

	// Nothing recorded, nothing persisted
	assert.Equal(t, 0, b.Len())
	_, err = store.Get(model.StorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestBook_RoundTrip(t *testing.T) {
	store := storage.NewMemory()
	b := Open(store)

	want := []model.Commitment{
		{Category: "Health", Text: "Walk daily", Remind: "Weekly", Timestamp: "2024-01-05T10:30:00Z"},
		{Category: "Learning", Text: "Read a chapter", Remind: "Daily", Timestamp: "2024-01-06T08:00:00Z"},
		{Category: "Finance", Text: "Track spending", Remind: "Monthly", Timestamp: "2024-01-07T19:45:00Z"},
	}
	for _, c := range want {
		require.NoError(t, b.Add(c))
	}

	// Reopening replays the stored sequence in the same order
	reopened := Open(store)
	assert.Equal(t, want, reopened.All())
}

func TestBook_Add_AppendsInOrder(t *testing.T) {
	b := Open(storage.NewMemory())

	first, err := model.NewCommitment("Health", "Walk daily", "Weekly")
	require.NoError(t, err)
	second, err := model.NewCommitment("Community", "Volunteer", "Monthly")
	require.NoError(t, err)

	require.NoError(t, b.Add(first))
	require.NoError(t, b.Add(second))

	all := b.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Walk daily", all[0].Text)
	assert.Equal(t, "Volunteer", all[1].Text)
}

func TestBook_Last(t *testing.T) {
	b := Open(storage.NewMemory())

	_, ok := b.Last()
	assert.False(t, ok)

	c, err := model.NewCommitment("Health", "Walk daily", "Weekly")
	require.NoError(t, err)
	require.NoError(t, b.Add(c))

	last, ok := b.Last()
	assert.True(t, ok)
	assert.Equal(t, "Walk daily", last.Text)
}

func TestBook_All_ReturnsCopy(t *testing.T) {
	b := Open(storage.NewMemory())

	c, err := model.NewCommitment("Health", "Walk daily", "Weekly")
	require.NoError(t, err)
	require.NoError(t, b.Add(c))

	all := b.All()
	all[0].Text = "mutated"

	fresh := b.All()
	assert.Equal(t, "Walk daily", fresh[0].Text)
}

// failingStore returns an error on every write.
type failingStore struct {
	storage.Storage
}

func (f failingStore) Set(key, value string) error {
	return errors.New("disk full")
}

func TestBook_Add_PersistFailureLeavesMemoryUnchanged(t *testing.T) {
	b := Open(failingStore{Storage: storage.NewMemory()})

	c, err := model.NewCommitment("Health", "Walk daily", "Weekly")
	require.NoError(t, err)

	assert.Error(t, b.Add(c))
	assert.Equal(t, 0, b.Len())
}

func TestBook_Add_OverwritesCorruptedValue(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(model.StorageKey, "{{{"))

	b := Open(store)
	require.Equal(t, 0, b.Len())

	c, err := model.NewCommitment("Health", "Walk daily", "Weekly")
	require.NoError(t, err)
	require.NoError(t, b.Add(c))

	raw, err := store.Get(model.StorageKey)
	require.NoError(t, err)

	var stored []model.Commitment
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Len(t, stored, 1)
}
