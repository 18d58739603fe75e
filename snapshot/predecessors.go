package snapshot

import "github.com/cernak/tezos/common"

// PredecessorEntry is one rank/hash pair in a block's predecessor
// skip-list (spec §4.2).
type PredecessorEntry struct {
	Rank int
	Hash common.BlockHash
}

// BuildPredecessorTables computes, for every block in history (sorted
// oldest-to-newest by level, with consecutive levels and chained
// predecessor links), the skip-list of ancestor pointers described in
// spec §4.2: predecessors[i] = [(0, history[i-1]), (1, history[i-2]),
// (2, history[i-4]), ...], terminated once the offset runs past the
// start of the array.
//
// genesisHash is substituted for the final entry exactly when history's
// oldest block sits at level 1 (i.e. directly after genesis) and the
// next doubling step would land one index before the array's start —
// genesis is then a legitimate predecessor (spec §4.2 "Special case").
func BuildPredecessorTables(history []HistoryEntry, genesisHash common.BlockHash) [][]PredecessorEntry {
	tables := make([][]PredecessorEntry, len(history))
	oldestLevel := int32(0)
	if len(history) > 0 {
		oldestLevel = history[0].Block.Header.Level
	}

	for i := range history {
		var table []PredecessorEntry
		rank := 0
		distance := 1
		for i-distance >= 0 {
			table = append(table, PredecessorEntry{Rank: rank, Hash: history[i-distance].Hash})
			rank++
			distance *= 2
		}
		if oldestLevel == 1 && i-distance == -1 {
			table = append(table, PredecessorEntry{Rank: rank, Hash: genesisHash})
		}
		tables[i] = table
	}
	return tables
}
