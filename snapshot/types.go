// Package snapshot implements the block-history / context snapshot
// export-import engine: packaging a prefix of a chain's block history plus
// one context commitment into a portable file, and rehydrating such a file
// into a fresh node's block store and context database.
//
// The package is organized leaf-first, matching spec §2:
//
//	iterator.go      C1 pruned-block iterator
//	predecessors.go  C2 predecessor-table builder
//	consistency.go   C3 consistency checker
//	export.go        C4 exporter
//	import.go        C5 importer/reconstructor
//	bulkstore.go     C5a atomic bulk block storage
//	reconstruct.go   C5b context reconstruction
package snapshot

import (
	"io"

	"github.com/cernak/tezos/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// BlockHeader carries the minimum fields the engine needs to cross-check
// block history and operations (spec §3). Opaque payloads (fitness,
// timestamp, protocol_data) are kept as raw bytes: the engine never
// interprets them, only hashes and forwards them.
type BlockHeader struct {
	Level             int32
	Predecessor       common.BlockHash
	ProtoLevel        uint8
	ValidationPasses  uint8
	OperationsHash    common.OperationListListHash
	Context           common.ContextHash
	Fitness           common.Fitness
	Timestamp         []byte
	ProtocolData      []byte
}

// rlpBlockHeader mirrors BlockHeader field-for-field except Level, which
// it widens to an unsigned integer: go-ethereum's rlp package (unlike
// go-ethereum's own block headers, which use uint64 block numbers) has
// no signed-integer encoding, and the spec's int32 Level is never
// negative in practice (genesis is level 0).
type rlpBlockHeader struct {
	Level            uint32
	Predecessor      common.BlockHash
	ProtoLevel       uint8
	ValidationPasses uint8
	OperationsHash   common.OperationListListHash
	Context          common.ContextHash
	Fitness          []byte
	Timestamp        []byte
	ProtocolData     []byte
}

// EncodeRLP makes BlockHeader satisfy rlp.Encoder, so
// common.HashBlockHeader can hash it the way go-ethereum hashes its own
// headers: Keccak256 over an RLP encoding (see go-ethereum's rlpHash
// convention, mirrored by database/flat.State's use of common.Keccak256
// for content hashing).
func (h BlockHeader) EncodeRLP(w io.Writer) error {
	return rlp.Encode(w, rlpBlockHeader{
		Level:            uint32(h.Level),
		Predecessor:      h.Predecessor,
		ProtoLevel:       h.ProtoLevel,
		ValidationPasses: h.ValidationPasses,
		OperationsHash:   h.OperationsHash,
		Context:          h.Context,
		Fitness:          h.Fitness,
		Timestamp:        h.Timestamp,
		ProtocolData:     h.ProtocolData,
	})
}

// Operation is an opaque, hashable payload. The engine never interprets
// operation contents; it hashes them and checks them against the
// operation-hash trees carried alongside a PrunedBlock.
type Operation []byte

// Hash returns this operation's content hash.
func (o Operation) Hash() common.OperationHash {
	return common.HashOperation(o)
}

// OperationPass holds one validation pass's operations, or their hashes.
type OperationPass[T any] struct {
	PassIndex int
	Items     []T
}

// PrunedBlock is a history entry stripped of contents and metadata: a
// header plus its operations and their hashes, carried newest-pass-first
// as produced by the context subsystem's wire format (spec §3, §4.3).
type PrunedBlock struct {
	Header          BlockHeader
	Operations      []OperationPass[Operation]
	OperationHashes []OperationPass[common.OperationHash]
}

// BlockData is the head block of a snapshot, carried with its full
// operations (no pruning).
type BlockData struct {
	Header     BlockHeader
	Operations []OperationPass[Operation]
}

// ProtocolData marks a protocol transition inside an exported range
// (spec §3). It is opaque to the engine beyond the fields needed to
// re-commit the protocol epoch root in a restored context.
type ProtocolData struct {
	Author            string
	Timestamp         []byte
	Message           string
	TestChainStatus   []byte
	DataKey           common.ContextHash
	Parents           []common.ContextHash
	ProtocolHash      common.ProtocolHash
	ProtocolLevel     uint8
}

// HistoryEntry pairs a PrunedBlock with the hash of its own header, as
// produced once the engine reverses a newest-first wire payload into an
// oldest-to-newest array (spec §3 "Lifecycle").
type HistoryEntry struct {
	Hash  common.BlockHash
	Block PrunedBlock
}

// Genesis identifies the chain's genesis block and protocol.
type Genesis struct {
	ChainId      common.ChainId
	BlockHash    common.BlockHash
	ProtocolHash common.ProtocolHash
}
