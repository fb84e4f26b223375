package tasks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "tasks.json"), nil)
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.Load())
}

func TestStoreLoadCorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o600))
	assert.Empty(t, store.Load())
}

func TestStoreLoadWrongShape(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"id":"x"}`), 0o600))
	assert.Empty(t, store.Load())
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := []Task{
		{ID: "a", Title: "buy milk", Priority: 1, Due: "tomorrow", Created: "2026-08-26T08:00:00Z", Updated: "2026-08-26T08:00:00Z"},
		{ID: "b", Title: "call mom", Done: true, Created: "2026-08-26T08:01:00Z", Updated: "2026-08-26T09:00:00Z"},
	}
	require.NoError(t, store.Save(in))

	out := store.Load()
	assert.Equal(t, in, out)
}

func TestStoreSaveNilWritesEmptyArray(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(nil))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestStoreSaveOmitsUnsetOptionalFields(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]Task{{ID: "a", Title: "buy milk"}}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "priority")
	assert.NotContains(t, string(data), "due")
}

func TestStoreLoadIgnoresUnknownFields(t *testing.T) {
	store := newTestStore(t)
	raw := `[{"id":"a","title":"buy milk","done":false,"created":"","updated":"","extra":42}]`
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0o600))

	list := store.Load()
	require.Len(t, list, 1)
	assert.Equal(t, "buy milk", list[0].Title)
}

func TestStoreSaveOverwritesCompletely(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]Task{{ID: "a", Title: "one"}, {ID: "b", Title: "two"}}))
	require.NoError(t, store.Save([]Task{{ID: "c", Title: "three"}}))

	list := store.Load()
	require.Len(t, list, 1)
	assert.Equal(t, "three", list[0].Title)
}

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]Task{{ID: "a", Title: "buy milk"}}))

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(store.Path()), entries[0].Name())
}

func TestStoreSaveProducesValidJSON(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]Task{{ID: "a", Title: "buy milk"}}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestStorePathFromEnv(t *testing.T) {
	t.Setenv("TASKS_PATH", "")
	assert.Equal(t, DefaultStorePath, StorePathFromEnv())

	t.Setenv("TASKS_PATH", "/data/tasks.json")
	assert.Equal(t, "/data/tasks.json", StorePathFromEnv())
}
