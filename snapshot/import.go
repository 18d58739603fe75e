package snapshot

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/cernak/tezos/common"
)

// ImportOptions names the parameters the caller-side CLI/config layer is
// expected to have already parsed (spec §6 "CLI-level options consumed").
type ImportOptions struct {
	DataDir     string
	Filename    string
	Block       *common.BlockHash
	Reconstruct bool
}

// Importer drives C5: it orchestrates import by restoring contexts,
// validating the head block, running C3, storing pruned blocks via
// C2/C5a, advancing chain metadata, and optionally
// reconstructing every context by re-applying blocks from genesis (spec
// §4.5).
//
// data_dir is assumed empty at entry (spec §4.5 "Guarantee"); violating
// that assumption is a programming error the importer panics on, not a
// recoverable condition.
type Importer struct {
	Store        BlockStore
	Chain        ChainDataStore
	Context      ContextSubsystem
	Validator    Validator
	Genesis      Genesis
	Observer     ProgressObserver
	Config       Config
	DirCleaner   DirCleaner
	PatchContext PatchContext
}

// Import runs the full C5 flow. Any error, and any panic raised while
// running it, triggers DirCleaner(opts.DataDir) before propagating (spec
// §4.5, §5 "Cancellation", §7 "Propagation").
func (imp *Importer) Import(ctx context.Context, opts ImportOptions) (err error) {
	observer := imp.Observer
	if observer == nil {
		observer = NoopObserver{}
	}
	observer.StartImport()

	defer func() {
		if r := recover(); r != nil {
			if imp.DirCleaner != nil {
				_ = imp.DirCleaner(opts.DataDir)
			}
			observer.EndImport(fmt.Errorf("import panicked: %v", r))
			panic(r)
		}
		if err != nil && imp.DirCleaner != nil {
			if cleanErr := imp.DirCleaner(opts.DataDir); cleanErr != nil {
				err = errors.Join(err, fmt.Errorf("cleanup after failed import: %w", cleanErr))
			}
		}
		observer.EndImport(err)
	}()

	err = imp.runImport(ctx, opts, observer)
	return err
}

func (imp *Importer) runImport(ctx context.Context, opts ImportOptions, observer ProgressObserver) (err error) {
	defer func() {
		err = errors.Join(err, imp.Store.Close(), imp.Context.Close())
	}()

	// Step 1: placeholder history mode, corrected per-tuple at step 4.8.
	if err := imp.Chain.WriteHistoryMode(ctx, Rolling); err != nil {
		return err
	}

	// Step 2 (opening the block store with a large max map size) is the
	// caller's concern: imp.Store already names its sizing via
	// Config.BlockStoreMaxMapSize when constructed (store/blockstore).

	snapshots, err := imp.Context.RestoreContexts(ctx, opts.Filename)
	if err != nil {
		return err
	}

	for _, tuple := range snapshots {
		if err := imp.importOne(ctx, tuple, opts, observer); err != nil {
			return err
		}
	}

	return nil
}

func (imp *Importer) importOne(ctx context.Context, tuple RestoredSnapshot, opts ImportOptions, observer ProgressObserver) error {
	// 4.1
	blockHash, err := common.HashBlockHeader(tuple.Head.Header)
	if err != nil {
		return err
	}
	if opts.Block != nil {
		if *opts.Block != blockHash {
			return &InconsistentImportedBlockError{Expected: *opts.Block, Got: blockHash}
		}
	} else {
		observer.Progress(fmt.Sprintf("importing snapshot head %s (no expected block given)", blockHash))
	}

	// 4.2
	if _, found, err := imp.Store.ReadHeaderOpt(ctx, blockHash); err != nil {
		return err
	} else if found {
		panic(fmt.Sprintf("import invariant violated: block %s already present in a supposedly empty data dir", blockHash))
	}

	// 4.3
	predecessorContext, err := imp.Context.CheckoutExn(ctx, tuple.PredecessorHeader.Context)
	if err != nil {
		return err
	}
	if imp.PatchContext != nil {
		predecessorContext, err = imp.PatchContext(ctx, predecessorContext)
		if err != nil {
			return err
		}
	}

	// 4.4: max_operations_ttl is passed as predecessor_header.level, not
	// the protocol's actual TTL — see the comment at the Validator.Apply
	// call in reconstruct.go for why this quirk is preserved rather than
	// fixed.
	result, err := imp.Validator.Apply(
		ctx,
		imp.Genesis.ChainId,
		tuple.PredecessorHeader.Level,
		tuple.PredecessorHeader,
		predecessorContext,
		tuple.Head.Header,
		tuple.Head.Operations,
	)
	if err != nil {
		return err
	}

	// 4.5
	if result.ContextHash != tuple.Head.Header.Context {
		return &SnapshotImportFailureError{Message: "Resulting context hash does not match"}
	}

	// 4.6
	oldBlocks := make([]PrunedBlock, len(tuple.OldBlocksNewestFirst))
	copy(oldBlocks, tuple.OldBlocksNewestFirst)
	slices.Reverse(oldBlocks)

	history := make([]HistoryEntry, len(oldBlocks))
	for i, block := range oldBlocks {
		hash, err := common.HashBlockHeader(block.Header)
		if err != nil {
			return err
		}
		history[i] = HistoryEntry{Hash: hash, Block: block}
	}

	// 4.7
	if err := CheckHistoryConsistency(tuple.Head.Header, history, imp.Genesis.BlockHash, observer, imp.Config.ProgressWindow); err != nil {
		return err
	}

	oldestLevel := history[0].Block.Header.Level

	// 4.8
	mode := historyModeFromOldestLevel(oldestLevel)
	if mode == Full {
		if err := imp.Chain.WriteHistoryMode(ctx, Full); err != nil {
			return err
		}
	}

	// 4.9
	if err := imp.importProtocolData(ctx, tuple, history, oldestLevel); err != nil {
		return err
	}

	// 4.10
	predecessorTables := BuildPredecessorTables(history, imp.Genesis.BlockHash)
	if err := StoreHistoryBulk(ctx, imp.Store, history, predecessorTables, imp.Config.BulkStoreChunkSize, imp.Config.ProgressWindow, observer); err != nil {
		return err
	}

	// 4.11
	if err := imp.storeHead(ctx, blockHash, tuple, result); err != nil {
		return err
	}

	// 4.12
	if err := imp.advanceCheckpoints(ctx, blockHash, tuple.Head.Header, history[0], result.ValidationResult.MaxOperationsTTL); err != nil {
		return err
	}

	// 4.13
	if opts.Reconstruct {
		if mode != Full {
			return &WrongReconstructModeError{Mode: mode}
		}
		if err := ReconstructContexts(ctx, imp.Genesis.ChainId, tuple.PredecessorHeader, history, imp.Validator, imp.Context, imp.Config.ReconstructChunkSize, observer); err != nil {
			return err
		}
	}

	return nil
}

func (imp *Importer) importProtocolData(ctx context.Context, tuple RestoredSnapshot, history []HistoryEntry, oldestLevel int32) error {
	for _, entry := range tuple.ProtocolData {
		idx := entry.Level - oldestLevel
		if idx < 0 || int(idx) >= len(history) {
			return &InconsistentHistoryError{Reason: fmt.Sprintf("protocol data at level %d outside history range", entry.Level)}
		}
		target := history[idx]
		pd := entry.ProtocolData

		ok, err := imp.Context.ValidateContextHashConsistencyAndCommit(
			ctx,
			pd.Author,
			pd.Timestamp,
			pd.Message,
			pd.DataKey,
			pd.Parents,
			target.Block.Header.Context,
			pd.TestChainStatus,
			pd.ProtocolHash,
		)
		if err != nil {
			return err
		}
		if !ok {
			return &WrongProtocolHashError{ProtocolHash: pd.ProtocolHash}
		}
		if err := imp.Chain.RecordProtocol(ctx, pd.ProtocolLevel, pd.ProtocolHash); err != nil {
			return err
		}
	}
	return nil
}

func (imp *Importer) storeHead(ctx context.Context, blockHash common.BlockHash, tuple RestoredSnapshot, result ApplyResult) error {
	if err := imp.Store.StoreHeader(ctx, blockHash, tuple.Head.Header); err != nil {
		return err
	}
	if err := imp.Store.StoreOperations(ctx, blockHash, tuple.Head.Operations); err != nil {
		return err
	}
	if err := imp.Store.StoreHead(ctx, blockHash, HeadRecord{
		BlockMetadata:      result.BlockMetadata,
		OperationsMetadata: result.OperationsMetadata,
		ForkingTestchain:   result.ForkingTestchain,
		Validation: ValidationRecord{
			ContextHash:          result.ContextHash,
			Message:              result.ValidationResult.Message,
			MaxOperationsTTL:     result.ValidationResult.MaxOperationsTTL,
			LastAllowedForkLevel: result.ValidationResult.LastAllowedForkLevel,
		},
	}); err != nil {
		return err
	}

	if err := imp.Chain.RemoveKnownHead(ctx, imp.Genesis.BlockHash); err != nil {
		return err
	}
	if err := imp.Chain.AddKnownHead(ctx, blockHash); err != nil {
		return err
	}
	return imp.Chain.WriteCurrentHead(ctx, blockHash)
}

func (imp *Importer) advanceCheckpoints(ctx context.Context, headHash common.BlockHash, headHeader BlockHeader, oldest HistoryEntry, maxOperationsTTL int32) error {
	if err := imp.Chain.WriteCheckpoint(ctx, headHeader); err != nil {
		return err
	}
	if err := imp.Chain.WriteSavePoint(ctx, headHeader.Level, headHash); err != nil {
		return err
	}

	cabooseLevel := oldest.Block.Header.Level
	cabooseHash := oldest.Hash
	if oldest.Block.Header.Level == 1 {
		cabooseLevel = 0
		cabooseHash = imp.Genesis.BlockHash
	}
	if cabooseLevel > headHeader.Level-maxOperationsTTL {
		return &InconsistentHistoryError{Reason: "caboose level exceeds target level minus max_operations_ttl"}
	}
	return imp.Chain.WriteCaboose(ctx, cabooseLevel, cabooseHash)
}
