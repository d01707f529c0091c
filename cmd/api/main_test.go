package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/soutien-scolaire-api/pkg/config"
)

func memoryConfig(snapshotPath string) *config.Config {
	return &config.Config{Storage: config.StorageConfig{Driver: config.StorageMemory, SnapshotPath: snapshotPath}}
}

func TestOpenStoreRejectsCorruptSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, closeStore, err := openStore(context.Background(), memoryConfig(path), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load snapshot")
	assert.Nil(t, closeStore)
}

func TestOpenStoreMemoryBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	repos, checks, closeStore, err := openStore(context.Background(), memoryConfig(path), zap.NewNop())
	require.NoError(t, err)
	require.Contains(t, checks, "store")
	assert.NoError(t, checks["store"].Ping(context.Background()))

	rooms, err := repos.Rooms.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)

	closeStore()
	closeStore()
}
