package snapshot

import (
	"fmt"
	"os"

	"github.com/pbnjay/memory"
	"gopkg.in/yaml.v3"
)

// Default tuning knobs (spec §9 "Atomic write chunking": "expose as
// constants, not magic numbers").
const (
	// DefaultBulkStoreChunkSize bounds how many history entries C5a
	// commits per atomic write scope.
	DefaultBulkStoreChunkSize = 5000
	// DefaultReconstructChunkSize bounds how many re-applied blocks C5b
	// commits per atomic write scope.
	DefaultReconstructChunkSize = 1000
	// DefaultProgressWindow is the "roughly every N" cadence for
	// progress reporting during consistency checking and bulk storage.
	DefaultProgressWindow = 1000
)

// Config carries the tunables the spec calls out as knobs. It is
// loadable from YAML, the configuration-file format the rest of the
// teacher's dependency graph already pulls in transitively
// (gopkg.in/yaml.v3, promoted to direct use here).
type Config struct {
	BulkStoreChunkSize       int   `yaml:"bulk_store_chunk_size"`
	ReconstructChunkSize     int   `yaml:"reconstruct_chunk_size"`
	ProgressWindow           int   `yaml:"progress_window"`
	BlockStoreMaxMapSize     int64 `yaml:"block_store_max_map_size"`
}

// DefaultConfig returns tunables sized from the host's available memory
// (spec §4.5 step 2 calls for "large maximum map size (~40 GiB)"; here
// that figure scales with what the host actually has, via
// github.com/pbnjay/memory, rather than being a fixed constant).
func DefaultConfig() Config {
	total := memory.TotalMemory()
	mapSize := total / 4
	const fortyGiB = 40 << 30
	if mapSize == 0 || mapSize > fortyGiB {
		mapSize = fortyGiB
	}
	return Config{
		BulkStoreChunkSize:   DefaultBulkStoreChunkSize,
		ReconstructChunkSize: DefaultReconstructChunkSize,
		ProgressWindow:       DefaultProgressWindow,
		BlockStoreMaxMapSize: int64(mapSize),
	}
}

// LoadConfig reads a YAML config file, filling in defaults for any zero
// fields left unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.BulkStoreChunkSize <= 0 {
		cfg.BulkStoreChunkSize = DefaultBulkStoreChunkSize
	}
	if cfg.ReconstructChunkSize <= 0 {
		cfg.ReconstructChunkSize = DefaultReconstructChunkSize
	}
	if cfg.ProgressWindow <= 0 {
		cfg.ProgressWindow = DefaultProgressWindow
	}
	return cfg, nil
}
