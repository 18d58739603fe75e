package snapshot

import (
	"fmt"
	"os"

	"github.com/cernak/tezos/common"
	"gopkg.in/yaml.v3"
)

// Manifest is a small out-of-band descriptor written alongside an
// exported snapshot file, for operator tooling (inventory, retention
// scripts) that wants to know what a snapshot contains without opening
// it. It is never read by Import and carries none of the context
// subsystem's wire format — dropping it changes nothing about a
// snapshot's importability.
type Manifest struct {
	HistoryMode string `yaml:"history_mode"`
	TargetLevel int32  `yaml:"target_level"`
	TargetHash  string `yaml:"target_hash"`
	OldestLevel int32  `yaml:"oldest_level"`
	CreatedAt   string `yaml:"created_at"`
}

// manifestPath derives the sibling manifest filename for a snapshot file.
func manifestPath(filename string) string {
	return filename + ".manifest.yaml"
}

// writeManifest marshals m as YAML to filename's manifest sidecar.
func writeManifest(filename string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling snapshot manifest: %w", err)
	}
	return os.WriteFile(manifestPath(filename), data, 0o644)
}

func newManifest(mode HistoryMode, target BlockHeader, targetHash common.BlockHash, oldestLevel int32, createdAt string) Manifest {
	return Manifest{
		HistoryMode: mode.String(),
		TargetLevel: target.Level,
		TargetHash:  targetHash.String(),
		OldestLevel: oldestLevel,
		CreatedAt:   createdAt,
	}
}
