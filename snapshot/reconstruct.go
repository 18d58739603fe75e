package snapshot

import (
	"context"
	"fmt"

	"github.com/0xsoniclabs/tracy"
	"github.com/cernak/tezos/common"
	"github.com/cernak/tezos/common/interrupt"
)

// ReconstructContexts implements C5b: for every level in history, it
// re-applies the block against its predecessor's context and verifies
// the resulting context hash (spec §4.5 "C5b").
//
// The chunk cadence is spec §9's resolved Open Question: the source
// expression `level + 1 mod 1000 == 0` is ambiguous operator-precedence
// (it parses as `level + (1 mod 1000) == level + 1`, which never holds)
// and is not replicated here; a chunk boundary falls explicitly on
// `(level + 1) % chunkSize == 0`. At a boundary only a progress message
// is emitted: no transaction or commit is issued to the context
// subsystem or any store.
func ReconstructContexts(
	ctx context.Context,
	chain common.ChainId,
	tuplePredecessorHeader BlockHeader,
	history []HistoryEntry,
	validator Validator,
	contextIndex ContextSubsystem,
	chunkSize int,
	observer ProgressObserver,
) error {
	if observer == nil {
		observer = NoopObserver{}
	}
	if chunkSize <= 0 {
		chunkSize = DefaultReconstructChunkSize
	}

	zone := tracy.ZoneBegin("snapshot::reconstruct")
	defer zone.End()

	for level := 0; level < len(history); level++ {
		if interrupt.IsCancelled(ctx) {
			return interrupt.ErrCanceled
		}

		entry := history[level]
		var predecessorHeader BlockHeader
		if level == 0 {
			// history[0]'s predecessor sits outside the history array
			// entirely (it is genesis for a Full snapshot, or the
			// oldest pruned boundary block for a Rolling one); its
			// header is the one carried alongside the snapshot tuple.
			predecessorHeader = tuplePredecessorHeader
		} else {
			predecessorHeader = history[level-1].Block.Header
		}

		predecessorContext, err := contextIndex.CheckoutExn(ctx, predecessorHeader.Context)
		if err != nil {
			return err
		}

		// max_operations_ttl is passed as predecessor_header.level here,
		// not the protocol's actual operations TTL. This reproduces a
		// quirk in the system this engine is modeled on (spec §9 Open
		// Question): ttl <= level always holds, so it is a safe
		// upper-bound substitute, but validator-observable behavior
		// depends on it, so it is kept verbatim rather than "fixed".
		result, err := validator.Apply(
			ctx,
			chain,
			predecessorHeader.Level,
			predecessorHeader,
			predecessorContext,
			entry.Block.Header,
			entry.Block.Operations,
		)
		if err != nil {
			return err
		}
		if result.ContextHash != entry.Block.Header.Context {
			return &SnapshotImportFailureError{Message: fmt.Sprintf("reconstructed context for level %d does not match", entry.Block.Header.Level)}
		}

		observer.Progress(fmt.Sprintf("reconstructed context for level %d (%d/%d)", entry.Block.Header.Level, level+1, len(history)))

		if (level+1)%chunkSize == 0 {
			observer.Progress(fmt.Sprintf("reached reconstruction chunk boundary at level %d", entry.Block.Header.Level))
		}
	}
	return nil
}
