package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_FillsKnobs(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, DefaultBulkStoreChunkSize, cfg.BulkStoreChunkSize)
	require.Equal(t, DefaultReconstructChunkSize, cfg.ReconstructChunkSize)
	require.Equal(t, DefaultProgressWindow, cfg.ProgressWindow)
	require.Greater(t, cfg.BlockStoreMaxMapSize, int64(0))
}

func TestLoadConfig_OverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bulk_store_chunk_size: 42\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 42, cfg.BulkStoreChunkSize)
	require.Equal(t, DefaultReconstructChunkSize, cfg.ReconstructChunkSize)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
