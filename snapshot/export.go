package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/cernak/tezos/common"
)

// ExportOptions names the parameters the caller-side CLI/config layer is
// expected to have already parsed (spec §6 "CLI-level options consumed").
// Parsing those options from argv is explicitly out of this engine's
// scope (spec §1).
type ExportOptions struct {
	DataDir       string
	Filename      string
	Block         *common.BlockHash
	ExportRolling bool
}

// Exporter drives C4: it orchestrates export by resolving the target
// block, computing the export depth limit for the node's history mode,
// driving a PrunedBlockIterator, and delegating the actual file write to
// the context subsystem (spec §4.4).
type Exporter struct {
	Store    BlockStore
	Chain    ChainDataStore
	Context  ContextSubsystem
	Genesis  Genesis
	Observer ProgressObserver
}

// Export runs the full C4 flow.
func (e *Exporter) Export(ctx context.Context, opts ExportOptions) error {
	observer := e.Observer
	if observer == nil {
		observer = NoopObserver{}
	}
	observer.StartExport()

	err := e.export(ctx, opts, observer)
	observer.EndExport(err)
	return err
}

func (e *Exporter) export(ctx context.Context, opts ExportOptions, observer ProgressObserver) error {
	mode, present, err := e.Chain.ReadHistoryMode(ctx)
	if err != nil {
		return err
	}
	if present && mode == Rolling && !opts.ExportRolling {
		return &WrongSnapshotExportError{Source: Rolling, Destination: Full}
	}

	targetHash, err := e.resolveTarget(ctx, opts.Block, observer)
	if err != nil {
		return err
	}

	target, found, err := e.Store.ReadHeaderOpt(ctx, targetHash)
	if err != nil {
		return err
	}
	if !found {
		return &WrongBlockExportError{Hash: targetHash, Reason: ReasonCannotBeFound}
	}

	predHeader, found, err := e.Store.ReadHeaderOpt(ctx, target.Predecessor)
	if err != nil {
		return err
	}
	if !found {
		return &WrongBlockExportError{Hash: target.Predecessor, Reason: ReasonCannotBeFound}
	}

	operations, err := e.Store.ReadOperations(ctx, targetHash)
	if err != nil {
		return err
	}

	limit, err := e.computeExportLimit(ctx, targetHash, target, opts.ExportRolling)
	if err != nil {
		return err
	}

	iterator := NewPrunedBlockIterator(e.Store, e.Context, limit)
	item := DumpWorkItem{
		PredecessorHeader: predHeader,
		Head:              BlockData{Header: target, Operations: operations},
		Iterator:          iterator,
		TargetHeader:      target,
	}

	if err := e.Context.DumpContexts(ctx, []DumpWorkItem{item}, opts.Filename); err != nil {
		return err
	}

	oldestLevel := exportedOldestLevel(target, limit)
	snapshotMode := historyModeFromOldestLevel(oldestLevel)
	manifest := newManifest(snapshotMode, target, targetHash, oldestLevel, time.Now().UTC().Format(time.RFC3339))
	if err := writeManifest(opts.Filename, manifest); err != nil {
		return err
	}

	observer.Progress(fmt.Sprintf("exported snapshot for block %s to %s", targetHash, opts.Filename))
	return nil
}

// resolveTarget implements spec §4.4 step 3: use the caller-supplied
// block if present, otherwise fall back to the checkpoint.
func (e *Exporter) resolveTarget(ctx context.Context, block *common.BlockHash, observer ProgressObserver) (common.BlockHash, error) {
	if block != nil {
		return *block, nil
	}
	checkpoint, err := e.Chain.ReadCheckpoint(ctx)
	if err != nil {
		return common.BlockHash{}, err
	}
	if checkpoint.Level == 0 {
		return common.BlockHash{}, &WrongBlockExportError{Hash: e.Genesis.BlockHash, Reason: ReasonTooFewPredecessors}
	}
	hash, err := common.HashBlockHeader(checkpoint)
	if err != nil {
		return common.BlockHash{}, err
	}
	observer.Progress(fmt.Sprintf("no block specified, defaulting to checkpoint %s", hash))
	return hash, nil
}

// computeExportLimit implements spec §4.4 step 5.
func (e *Exporter) computeExportLimit(ctx context.Context, targetHash common.BlockHash, target BlockHeader, exportRolling bool) (int32, error) {
	contents, found, err := e.Store.ReadContentsOpt(ctx, targetHash)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, &WrongBlockExportError{Hash: targetHash, Reason: ReasonPruned}
	}

	if !exportRolling {
		cabooseLevel, _, err := e.Chain.ReadCaboose(ctx)
		if err != nil {
			return 0, err
		}
		if cabooseLevel < 1 {
			cabooseLevel = 1
		}
		return cabooseLevel, nil
	}

	limit := target.Level - contents.MaxOperationsTTL
	if limit <= 0 {
		return 0, &WrongBlockExportError{Hash: targetHash, Reason: ReasonTooFewPredecessors}
	}
	return limit, nil
}

// exportedOldestLevel derives the level of the oldest pruned-block entry
// a PrunedBlockIterator bound to limit will actually emit for target
// (spec §4.1): Step keeps producing predecessors down to and including a
// block at level == limit, as long as target sits above that boundary;
// when target is already at or below limit, no pruned block is produced
// at all and target itself is the oldest (and only) entry. limit is a
// depth boundary, not the oldest level directly — the two coincide only
// in the common case handled by the final return below.
func exportedOldestLevel(target BlockHeader, limit int32) int32 {
	if target.Level <= limit {
		return target.Level
	}
	return limit
}
