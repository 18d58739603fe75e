package snapshot

import (
	"context"

	"github.com/cernak/tezos/common"
)

//go:generate mockgen -source contracts.go -destination contracts_mocks.go -package snapshot

// BlockContents exposes the per-block metadata the exporter needs beyond
// the header itself — notably max_operations_ttl (spec §4.4 step 5).
type BlockContents struct {
	MaxOperationsTTL int32
}

// BlockStore is the external, content-addressed block/operation key-value
// store (spec §6 "Block-store contract"). Implementations live in
// store/blockstore.
type BlockStore interface {
	ReadHeader(ctx context.Context, hash common.BlockHash) (BlockHeader, error)
	ReadHeaderOpt(ctx context.Context, hash common.BlockHash) (BlockHeader, bool, error)
	StoreHeader(ctx context.Context, hash common.BlockHash, header BlockHeader) error

	ReadContentsOpt(ctx context.Context, hash common.BlockHash) (BlockContents, bool, error)

	ReadOperations(ctx context.Context, hash common.BlockHash) ([]OperationPass[Operation], error)
	StoreOperations(ctx context.Context, hash common.BlockHash, ops []OperationPass[Operation]) error

	StoreOperationHashes(ctx context.Context, hash common.BlockHash, hashes []OperationPass[common.OperationHash]) error
	OperationHashBindings(ctx context.Context, hash common.BlockHash) ([]OperationPass[common.OperationHash], error)

	ReadPredecessors(ctx context.Context, hash common.BlockHash) ([]PredecessorEntry, error)
	StorePredecessors(ctx context.Context, hash common.BlockHash, table []PredecessorEntry) error

	// StoreHead persists the head block's metadata, ops metadata,
	// forking-testchain flag and validation-store record in one call
	// (spec §4.5 step 4.11).
	StoreHead(ctx context.Context, hash common.BlockHash, record HeadRecord) error

	Close() error
}

// HeadRecord bundles everything the importer writes for the new head
// block once it has been validated (spec §4.5 step 4.11).
type HeadRecord struct {
	BlockMetadata      []byte
	OperationsMetadata []byte
	ForkingTestchain   bool
	Validation         ValidationRecord
}

// ValidationRecord is the validation-store record spec §4.5 step 4.11
// calls for: {context_hash, message, max_operations_ttl,
// last_allowed_fork_level}.
type ValidationRecord struct {
	ContextHash          common.ContextHash
	Message              string
	MaxOperationsTTL     int32
	LastAllowedForkLevel int32
}

// ChainDataStore is the external, typed-cell store for mutable chain-wide
// state (spec §6 "Chain-data-store contract", §9 "Mutable chain-wide
// state"). Implementations live in store/chaindata.
type ChainDataStore interface {
	ReadCheckpoint(ctx context.Context) (BlockHeader, error)
	WriteCheckpoint(ctx context.Context, header BlockHeader) error

	ReadSavePoint(ctx context.Context) (level int32, hash common.BlockHash, err error)
	WriteSavePoint(ctx context.Context, level int32, hash common.BlockHash) error

	ReadCaboose(ctx context.Context) (level int32, hash common.BlockHash, err error)
	WriteCaboose(ctx context.Context, level int32, hash common.BlockHash) error

	KnownHeads(ctx context.Context) ([]common.BlockHash, error)
	AddKnownHead(ctx context.Context, hash common.BlockHash) error
	RemoveKnownHead(ctx context.Context, hash common.BlockHash) error

	ReadCurrentHead(ctx context.Context) (common.BlockHash, error)
	WriteCurrentHead(ctx context.Context, hash common.BlockHash) error

	SetMainBranchSuccessor(ctx context.Context, predecessor, successor common.BlockHash) error

	ReadHistoryMode(ctx context.Context) (HistoryMode, bool, error)
	WriteHistoryMode(ctx context.Context, mode HistoryMode) error

	RecordProtocol(ctx context.Context, protoLevel uint8, hash common.ProtocolHash) error

	Close() error
}

// ValidationResult is what the external validator returns on success
// (spec §6 "Validator contract").
type ValidationResult struct {
	Message               string
	MaxOperationsTTL       int32
	LastAllowedForkLevel   int32
}

// ApplyResult bundles everything apply() returns (spec §4.5 step 4.4).
type ApplyResult struct {
	ValidationResult  ValidationResult
	BlockMetadata     []byte
	OperationsMetadata []byte
	ForkingTestchain  bool
	ContextHash       common.ContextHash
}

// Validator re-executes a block against a predecessor context (spec §6
// "Validator contract"). It is the engine's sole authority on whether a
// block's operations were applied correctly.
type Validator interface {
	Apply(
		ctx context.Context,
		chainId common.ChainId,
		maxOperationsTTL int32,
		predecessorHeader BlockHeader,
		predecessorContext common.ContextHash,
		header BlockHeader,
		operations []OperationPass[Operation],
	) (ApplyResult, error)
}

// ContextSubsystem is the content-addressed Merkle state store this
// engine treats as an external collaborator (spec §1 "Out of scope", §6
// "Context subsystem contract"). The snapshot file's wire format is
// entirely its concern; the engine only drives the iterator it is handed
// and consumes the tuples it is given back.
type ContextSubsystem interface {
	// GetProtocolData builds the ProtocolData marker for a protocol
	// transition at the given header.
	GetProtocolData(ctx context.Context, header BlockHeader) (ProtocolData, error)

	// DumpContexts drains the given iterator and writes filename. Each
	// work item names the predecessor header and head block data the
	// iterator starts from, plus the boundary header the iterator was
	// bound to (used for logging/verification, not reinterpreted).
	DumpContexts(ctx context.Context, items []DumpWorkItem, filename string) error

	// RestoreContexts reads filename and yields the tuples needed to
	// drive C3 and C5: each predecessor header, the head block data,
	// the pruned history (newest-first, as carried on the wire), and
	// any protocol-data markers within the range.
	RestoreContexts(ctx context.Context, filename string) ([]RestoredSnapshot, error)

	CheckoutExn(ctx context.Context, hash common.ContextHash) (common.ContextHash, error)

	ValidateContextHashConsistencyAndCommit(
		ctx context.Context,
		author string,
		timestamp []byte,
		message string,
		dataKey common.ContextHash,
		parents []common.ContextHash,
		expectedContextHash common.ContextHash,
		testChain []byte,
		protocolHash common.ProtocolHash,
	) (bool, error)

	Close() error
}

// DumpWorkItem is one unit of export work handed to DumpContexts (spec
// §4.4 step 6).
type DumpWorkItem struct {
	PredecessorHeader BlockHeader
	Head              BlockData
	Iterator          *PrunedBlockIterator
	TargetHeader      BlockHeader
}

// RestoredSnapshot is one tuple RestoreContexts yields (spec §3 "Snapshot
// payload", §4.5 step 3). OldBlocksNewestFirst preserves the wire
// ordering exactly as received; callers reverse it themselves (spec §3
// "Lifecycle").
type RestoredSnapshot struct {
	PredecessorHeader     BlockHeader
	Head                  BlockData
	OldBlocksNewestFirst  []PrunedBlock
	ProtocolData          []ProtocolDataAtLevel
}

// ProtocolDataAtLevel pairs a ProtocolData marker with the level of the
// block it was emitted at (spec §4.5 step 4.9, "for each (level,
// protocol_data) entry").
type ProtocolDataAtLevel struct {
	Level        int32
	ProtocolData ProtocolData
}

// DirCleaner removes partially-written node state after a failed import
// (spec §4.5, §5 "Cancellation").
type DirCleaner func(dataDir string) error

// PatchContext lets the caller transform a restored context before it is
// used further (spec §6 "Configuration cell" / CLI options).
type PatchContext func(ctx context.Context, hash common.ContextHash) (common.ContextHash, error)
