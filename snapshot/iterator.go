package snapshot

import (
	"context"
	"errors"

	"github.com/cernak/tezos/common/interrupt"
)

// PrunedBlockIterator walks headers backward from an export's target
// block, emitting pruned-block records and protocol-transition markers
// until the configured depth limit is reached (spec §4.1).
//
// It is a pull-based producer: the context subsystem drives it by
// repeatedly calling Step with the current header, feeding back the
// predecessor header of the previous result, until Step signals
// termination by returning a nil *PrunedBlock.
type PrunedBlockIterator struct {
	store      BlockStore
	context    ContextSubsystem
	limit      int32
}

// NewPrunedBlockIterator creates a C1 iterator bound to store and context,
// terminating once a header at or below limit is reached.
func NewPrunedBlockIterator(store BlockStore, context ContextSubsystem, limit int32) *PrunedBlockIterator {
	return &PrunedBlockIterator{store: store, context: context, limit: limit}
}

// Step evaluates one iteration (spec §4.1).
//
//   - If header.Level <= limit, iteration is over: no pruned block is
//     produced, but a ProtocolData marker for header is returned so the
//     importer can re-commit the oldest context.
//   - Otherwise the predecessor of header is read, along with its
//     operations and operation hashes, and returned as a PrunedBlock. If
//     header and its predecessor straddle a protocol transition
//     (differing ProtoLevel), a ProtocolData marker is emitted alongside
//     the pruned block.
func (it *PrunedBlockIterator) Step(ctx context.Context, header BlockHeader) (*PrunedBlock, *ProtocolData, error) {
	if interrupt.IsCancelled(ctx) {
		return nil, nil, interrupt.ErrCanceled
	}

	if header.Level <= it.limit {
		data, err := it.context.GetProtocolData(ctx, header)
		if err != nil {
			return nil, nil, err
		}
		return nil, &data, nil
	}

	predHash := header.Predecessor
	pred, found, err := it.store.ReadHeaderOpt(ctx, predHash)
	if err != nil {
		return nil, nil, err
	}
	if !found {
		return nil, nil, &WrongBlockExportError{Hash: predHash, Reason: ReasonPruned}
	}

	ops, err := it.store.ReadOperations(ctx, predHash)
	if err != nil {
		return nil, nil, err
	}
	opHashes, err := it.store.OperationHashBindings(ctx, predHash)
	if err != nil {
		return nil, nil, err
	}

	pruned := &PrunedBlock{
		Header:          pred,
		Operations:      ops,
		OperationHashes: opHashes,
	}

	if header.ProtoLevel != pred.ProtoLevel {
		data, err := it.context.GetProtocolData(ctx, header)
		if err != nil {
			return nil, nil, err
		}
		return pruned, &data, nil
	}

	return pruned, nil, nil
}

// DriveIterator pulls a PrunedBlockIterator to completion starting from
// head, accumulating pruned blocks (oldest last, i.e. the wire's
// newest-first order — spec §3 "Snapshot payload") and protocol-data
// markers. This mirrors how the context subsystem is expected to drive
// the iterator (spec §4.1 "The caller drives iteration..."); it is used
// directly by tests and by any ContextSubsystem implementation that
// wants the reference driving loop instead of writing its own.
func DriveIterator(ctx context.Context, it *PrunedBlockIterator, head BlockHeader) ([]PrunedBlock, []ProtocolData, error) {
	var blocks []PrunedBlock
	var protocolData []ProtocolData

	header := head
	for {
		pruned, proto, err := it.Step(ctx, header)
		if err != nil {
			if errors.Is(err, interrupt.ErrCanceled) {
				return nil, nil, err
			}
			return nil, nil, err
		}
		if proto != nil {
			protocolData = append(protocolData, *proto)
		}
		if pruned == nil {
			return blocks, protocolData, nil
		}
		blocks = append(blocks, *pruned)
		header = pruned.Header
	}
}
