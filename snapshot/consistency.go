package snapshot

import (
	"fmt"

	"github.com/cernak/tezos/common"
	"slices"
)

// CheckOperationsConsistency verifies a PrunedBlock's operation-hash
// trees against its header-declared Merkle root (spec §4.3).
//
// Per-operation hash mismatches are programming-level invariant
// violations: the operation_hashes carried alongside a PrunedBlock are
// supposed to be exactly map(hash, operations) (spec §3 invariant), so a
// mismatch means the context subsystem handed us a corrupt record, not a
// recoverable import-time condition. Such mismatches panic rather than
// returning an error, matching how database/mpt/io/verification_proof.go
// treats PrunedBlock-shaped invariant breaks.
func CheckOperationsConsistency(pb PrunedBlock) error {
	for _, pass := range pb.Operations {
		var expected OperationPass[common.OperationHash]
		found := false
		for _, candidate := range pb.OperationHashes {
			if candidate.PassIndex == pass.PassIndex {
				expected = candidate
				found = true
				break
			}
		}
		if !found || len(expected.Items) != len(pass.Items) {
			panic(fmt.Sprintf("pruned block pass %d: operation/hash count mismatch", pass.PassIndex))
		}
		for i, op := range pass.Items {
			if got, want := op.Hash(), expected.Items[i]; got != want {
				panic(fmt.Sprintf("pruned block pass %d op %d: hash mismatch", pass.PassIndex, i))
			}
		}
	}

	// The Merkle tree is defined oldest-pass-first, but PrunedBlock
	// carries its passes newest-first (spec §4.3 "Note the reversal").
	reversed := make([]OperationPass[Operation], len(pb.Operations))
	copy(reversed, pb.Operations)
	slices.Reverse(reversed)

	lists := make([]common.OperationListHash, len(reversed))
	for i, pass := range reversed {
		hashes := make([]common.OperationHash, len(pass.Items))
		for j, op := range pass.Items {
			hashes[j] = op.Hash()
		}
		lists[i] = common.ComputeOperationListHash(hashes)
	}
	observed := common.ComputeOperationListListHash(lists)

	if observed != pb.Header.OperationsHash {
		return &InconsistentOperationHashesError{Observed: observed, Expected: pb.Header.OperationsHash}
	}
	return nil
}

// CheckHistoryConsistency verifies that a head header's predecessor
// chains correctly through history down to genesis, and that every
// entry's operation-hash tree matches its header (spec §4.3
// check_history_consistency).
//
// history must be sorted oldest-to-newest. observer receives a progress
// notification roughly every progressWindow blocks.
func CheckHistoryConsistency(headHeader BlockHeader, history []HistoryEntry, genesis common.BlockHash, observer ProgressObserver, progressWindow int) error {
	if observer == nil {
		observer = NoopObserver{}
	}
	if progressWindow <= 0 {
		progressWindow = DefaultProgressWindow
	}

	n := len(history)
	if n == 0 {
		return &InconsistentHistoryError{Reason: "empty history"}
	}

	last := history[n-1]
	lastHash, err := common.HashBlockHeader(last.Block.Header)
	if err != nil {
		return err
	}
	if headHeader.Predecessor != lastHash {
		return &InconsistentHistoryError{Reason: "head predecessor does not match last history entry"}
	}

	oldest := history[0].Block.Header
	if oldest.Level < 1 {
		return &InconsistentHistoryError{Reason: "oldest history entry has level < 1"}
	}
	if oldest.Level == 1 && oldest.Predecessor != genesis {
		return &InconsistentHistoryError{Reason: "oldest history entry at level 1 does not point at genesis"}
	}

	if err := CheckOperationsConsistency(history[0].Block); err != nil {
		return err
	}

	for i := n - 1; i >= 1; i-- {
		if err := CheckOperationsConsistency(history[i].Block); err != nil {
			return err
		}
		header := history[i].Block.Header
		if header.Level < 2 {
			return &InconsistentHistoryError{Reason: fmt.Sprintf("history entry %d has level < 2", i)}
		}
		predHash, err := common.HashBlockHeader(history[i-1].Block.Header)
		if err != nil {
			return err
		}
		if header.Predecessor != predHash {
			return &InconsistentHistoryError{Reason: fmt.Sprintf("history entry %d predecessor mismatch", i)}
		}
		if every(n-i, progressWindow) {
			observer.Progress(fmt.Sprintf("checked %d/%d history entries", n-i, n))
		}
	}

	return nil
}
