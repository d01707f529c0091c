package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(filepath.Join(dir, "nested"))
	require.NoError(t, err)

	_, err = store.Load("snapshot.json")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save("snapshot.json", []byte(`{"v":1}`)))
	require.NoError(t, store.Save("snapshot.json", []byte(`{"v":2}`)))

	data, err := store.Load("snapshot.json")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(data))

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not linger")

	require.NoError(t, store.Delete("snapshot.json"))
	require.NoError(t, store.Delete("snapshot.json"))
	_, err = store.Load("snapshot.json")
	assert.ErrorIs(t, err, ErrNotFound)
}
