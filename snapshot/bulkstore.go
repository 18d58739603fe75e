package snapshot

import (
	"context"
	"fmt"

	"github.com/0xsoniclabs/tracy"
	"github.com/cernak/tezos/common"
	"github.com/cernak/tezos/common/future"
	"github.com/cernak/tezos/common/interrupt"
)

// StoreHistoryBulk implements C5a: it walks history in ascending order,
// storing each entry's header, operations, operation hashes and
// predecessor table, and recording a main-branch link for its rank-0
// predecessor, in chunks of chunkSize entries (spec §4.5 "C5a").
//
// chunkSize sets how many entries are handled per chunk (surfaced as
// Config.BulkStoreChunkSize). Each write goes to the store on its own:
// no transaction spans a chunk, so a failure part-way leaves the writes
// made before it in place. A chunk ends only once all of its pipelined
// writes have completed. progressWindow controls how often
// observer.Progress is called.
func StoreHistoryBulk(ctx context.Context, store BlockStore, history []HistoryEntry, predecessorTables [][]PredecessorEntry, chunkSize, progressWindow int, observer ProgressObserver) error {
	if observer == nil {
		observer = NoopObserver{}
	}
	if chunkSize <= 0 {
		chunkSize = DefaultBulkStoreChunkSize
	}
	if progressWindow <= 0 {
		progressWindow = DefaultProgressWindow
	}

	zone := tracy.ZoneBegin("snapshot::bulk-store")
	defer zone.End()

	for start := 0; start < len(history); start += chunkSize {
		end := start + chunkSize
		if end > len(history) {
			end = len(history)
		}
		if err := storeChunk(ctx, store, history[start:end], predecessorTables[start:end], start, progressWindow, observer); err != nil {
			return err
		}
	}
	return nil
}

// asyncBlockStore is implemented by BlockStore backends that can pipeline
// a chunk's writes in the background instead of blocking the caller on
// every Put (store/blockstore.Store is one). storeChunk falls back to the
// fully synchronous path when the store given to it does not implement
// this.
type asyncBlockStore interface {
	StoreChunkAsync(ctx context.Context, hash common.BlockHash, header BlockHeader, ops []OperationPass[Operation], opHashes []OperationPass[common.OperationHash], predecessors []PredecessorEntry) future.Future[struct{}]
}

// storeChunk stores one chunk's worth of history entries.
// Every write below is a suspension point subject to cooperative
// cancellation (spec §5).
func storeChunk(ctx context.Context, store BlockStore, chunk []HistoryEntry, tables [][]PredecessorEntry, globalOffset, progressWindow int, observer ProgressObserver) error {
	async, pipelined := store.(asyncBlockStore)

	var pending []future.Future[struct{}]
	for i, entry := range chunk {
		if interrupt.IsCancelled(ctx) {
			return interrupt.ErrCanceled
		}

		table := tables[i]
		if pipelined {
			pending = append(pending, async.StoreChunkAsync(ctx, entry.Hash, entry.Block.Header, entry.Block.Operations, entry.Block.OperationHashes, table))
		} else {
			if err := store.StoreHeader(ctx, entry.Hash, entry.Block.Header); err != nil {
				return err
			}
			if err := store.StoreOperations(ctx, entry.Hash, entry.Block.Operations); err != nil {
				return err
			}
			if err := store.StoreOperationHashes(ctx, entry.Hash, entry.Block.OperationHashes); err != nil {
				return err
			}
			if err := store.StorePredecessors(ctx, entry.Hash, table); err != nil {
				return err
			}
		}
		if rank0 := rank0Predecessor(table); rank0 != nil {
			if err := setMainBranch(ctx, store, *rank0, entry.Hash); err != nil {
				return err
			}
		}

		index := globalOffset + i + 1
		if every(index, progressWindow) {
			observer.Progress(fmt.Sprintf("stored %d history entries", index))
		}
	}

	for _, fut := range pending {
		if _, err := fut.Await(); err != nil {
			return err
		}
	}
	return nil
}

func rank0Predecessor(table []PredecessorEntry) *common.BlockHash {
	for _, entry := range table {
		if entry.Rank == 0 {
			h := entry.Hash
			return &h
		}
	}
	return nil
}

// setMainBranch records predecessor -> successor on the canonical chain.
// It is factored out because not every BlockStore implementation backs
// InMainBranch with the block store itself (store/chaindata keeps it,
// grounded on spec §3's description of InMainBranch as chain-data, not
// block-store, state) — callers that split the two stores wire this
// through a small BlockStore adapter whose SetMainBranchSuccessor method
// forwards to ChainDataStore.SetMainBranchSuccessor; the reference
// BlockStore in store/blockstore keeps both together for simplicity and
// exposes this hook as its own SetMainBranchSuccessor method. When store
// has no such method, no main-branch link is recorded.
func setMainBranch(ctx context.Context, store BlockStore, predecessor, successor common.BlockHash) error {
	if setter, ok := store.(interface {
		SetMainBranchSuccessor(ctx context.Context, predecessor, successor common.BlockHash) error
	}); ok {
		return setter.SetMainBranchSuccessor(ctx, predecessor, successor)
	}
	return nil
}
