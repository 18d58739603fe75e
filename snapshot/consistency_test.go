package snapshot

import (
	"testing"

	"github.com/cernak/tezos/common"
	"github.com/stretchr/testify/require"
	"slices"
)

// buildPrunedBlock constructs a PrunedBlock whose OperationsHash and
// OperationHashes are all internally consistent, from validation passes
// given oldest-pass-first (the Merkle tree's own ordering); the result
// carries them newest-first, matching the wire convention.
func buildPrunedBlock(passes [][]string) PrunedBlock {
	oldestFirstOps := make([]OperationPass[Operation], len(passes))
	oldestFirstHashes := make([]OperationPass[common.OperationHash], len(passes))
	lists := make([]common.OperationListHash, len(passes))

	for i, pass := range passes {
		ops := make([]Operation, len(pass))
		hashes := make([]common.OperationHash, len(pass))
		for j, payload := range pass {
			ops[j] = Operation(payload)
			hashes[j] = ops[j].Hash()
		}
		oldestFirstOps[i] = OperationPass[Operation]{PassIndex: i, Items: ops}
		oldestFirstHashes[i] = OperationPass[common.OperationHash]{PassIndex: i, Items: hashes}
		lists[i] = common.ComputeOperationListHash(hashes)
	}

	root := common.ComputeOperationListListHash(lists)

	newestFirstOps := append([]OperationPass[Operation]{}, oldestFirstOps...)
	newestFirstHashes := append([]OperationPass[common.OperationHash]{}, oldestFirstHashes...)
	slices.Reverse(newestFirstOps)
	slices.Reverse(newestFirstHashes)

	return PrunedBlock{
		Header:          BlockHeader{OperationsHash: root},
		Operations:      newestFirstOps,
		OperationHashes: newestFirstHashes,
	}
}

func TestCheckOperationsConsistency_Valid(t *testing.T) {
	pb := buildPrunedBlock([][]string{{"op1", "op2"}, {"op3"}})
	require.NoError(t, CheckOperationsConsistency(pb))
}

func TestCheckOperationsConsistency_RootMismatch(t *testing.T) {
	pb := buildPrunedBlock([][]string{{"op1"}})
	pb.Header.OperationsHash = common.OperationListListHash{0xFF}

	err := CheckOperationsConsistency(pb)
	require.Error(t, err)
	var inconsistent *InconsistentOperationHashesError
	require.ErrorAs(t, err, &inconsistent)
}

func TestCheckOperationsConsistency_PerOpHashMismatchPanics(t *testing.T) {
	pb := buildPrunedBlock([][]string{{"op1"}})
	pb.OperationHashes[0].Items[0] = common.OperationHash{0x1}

	require.Panics(t, func() {
		_ = CheckOperationsConsistency(pb)
	})
}

func TestCheckHistoryConsistency_Valid(t *testing.T) {
	var genesis common.BlockHash
	history := chainFromGenesis(t, genesis, 4)
	for i := range history {
		history[i].Block = buildPrunedBlock([][]string{{"op"}})
		history[i].Block.Header.Level = int32(i + 1)
		if i == 0 {
			history[i].Block.Header.Predecessor = genesis
		} else {
			history[i].Block.Header.Predecessor = history[i-1].Hash
		}
		history[i].Hash = hashOf(t, history[i].Block.Header)
	}

	head := BlockHeader{Level: 5, Predecessor: history[3].Hash}

	err := CheckHistoryConsistency(head, history, genesis, NoopObserver{}, 0)
	require.NoError(t, err)
}

func TestCheckHistoryConsistency_BrokenLink(t *testing.T) {
	var genesis common.BlockHash
	history := chainFromGenesis(t, genesis, 3)
	head := BlockHeader{Level: 4, Predecessor: common.BlockHash{0xDE, 0xAD}}

	err := CheckHistoryConsistency(head, history, genesis, NoopObserver{}, 0)
	require.Error(t, err)
}
