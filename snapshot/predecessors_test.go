package snapshot

import (
	"testing"

	"github.com/cernak/tezos/common"
	"github.com/stretchr/testify/require"
)

func hashOf(t *testing.T, header BlockHeader) common.BlockHash {
	t.Helper()
	hash, err := common.HashBlockHeader(header)
	require.NoError(t, err)
	return hash
}

func chainFromGenesis(t *testing.T, genesis common.BlockHash, n int) []HistoryEntry {
	t.Helper()
	history := make([]HistoryEntry, n)
	predecessor := genesis
	for i := 0; i < n; i++ {
		header := BlockHeader{Level: int32(i + 1), Predecessor: predecessor}
		hash := hashOf(t, header)
		history[i] = HistoryEntry{Hash: hash, Block: PrunedBlock{Header: header}}
		predecessor = hash
	}
	return history
}

func TestBuildPredecessorTables_FirstEntryPointsAtGenesis(t *testing.T) {
	var genesis common.BlockHash
	genesis[0] = 0xAB
	history := chainFromGenesis(t, genesis, 5)

	tables := BuildPredecessorTables(history, genesis)
	require.Len(t, tables, 5)

	require.Equal(t, []PredecessorEntry{{Rank: 0, Hash: genesis}}, tables[0])
}

func TestBuildPredecessorTables_DoublingDistances(t *testing.T) {
	var genesis common.BlockHash
	history := chainFromGenesis(t, genesis, 8)

	tables := BuildPredecessorTables(history, genesis)

	// entry 7 (level 8): ranks at distances 1,2,4 -> indices 6,5,3; the
	// next distance, 8, lands one before the start, so genesis is rank 3
	got := tables[7]
	require.Equal(t, PredecessorEntry{Rank: 0, Hash: history[6].Hash}, got[0])
	require.Equal(t, PredecessorEntry{Rank: 1, Hash: history[5].Hash}, got[1])
	require.Equal(t, PredecessorEntry{Rank: 2, Hash: history[3].Hash}, got[2])
	require.Len(t, got, 4)
}

func TestBuildPredecessorTables_NotRolledFromGenesisHasNoGenesisEntry(t *testing.T) {
	// Rolling snapshot: oldest block is not at level 1, so running past
	// the start of the array never substitutes genesis.
	history := []HistoryEntry{
		{Hash: common.BlockHash{0x1}, Block: PrunedBlock{Header: BlockHeader{Level: 100}}},
		{Hash: common.BlockHash{0x2}, Block: PrunedBlock{Header: BlockHeader{Level: 101}}},
	}
	var genesis common.BlockHash

	tables := BuildPredecessorTables(history, genesis)
	require.Empty(t, tables[0])
}
