package common

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// hashSize is the width, in bytes, of every hash family defined in this
// package. All hashes in the snapshot engine's data model are opaque,
// content-derived, fixed-width byte strings; equality and ordering are
// purely byte-wise (spec §3, GLOSSARY).
const hashSize = 32

// rawHash is the shared representation behind every hash newtype below. It
// is deliberately unexported so that, e.g., a BlockHash cannot be assigned
// to an OperationHash-typed variable without an explicit conversion —
// mixing up hash families is a common source of snapshot-import bugs and
// this makes it a compile error instead.
type rawHash [hashSize]byte

func (h rawHash) bytes() []byte { return h[:] }

func (h rawHash) hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h rawHash) compare(o rawHash) int { return bytes.Compare(h[:], o[:]) }

// BlockHash identifies a block by the hash of its header.
type BlockHash rawHash

func (h BlockHash) Bytes() []byte       { return rawHash(h).bytes() }
func (h BlockHash) String() string      { return rawHash(h).hex() }
func (h BlockHash) Equal(o BlockHash) bool { return h == o }
func (h BlockHash) Compare(o BlockHash) int { return rawHash(h).compare(rawHash(o)) }
func (h BlockHash) IsZero() bool        { return h == BlockHash{} }

// ParseBlockHash decodes a "0x"-prefixed (or bare) hex string into a
// BlockHash, the counterpart to BlockHash.String — grounded on
// go-ethereum/common's HexToHash convention for CLI/config-level hash
// parsing.
func ParseBlockHash(s string) (BlockHash, error) {
	s = strings.TrimPrefix(s, "0x")
	data, err := hex.DecodeString(s)
	if err != nil {
		return BlockHash{}, fmt.Errorf("parsing block hash %q: %w", s, err)
	}
	if len(data) != hashSize {
		return BlockHash{}, fmt.Errorf("parsing block hash %q: want %d bytes, got %d", s, hashSize, len(data))
	}
	var h BlockHash
	copy(h[:], data)
	return h, nil
}

// ContextHash commits to the full state after applying a block.
type ContextHash rawHash

func (h ContextHash) Bytes() []byte          { return rawHash(h).bytes() }
func (h ContextHash) String() string         { return rawHash(h).hex() }
func (h ContextHash) Equal(o ContextHash) bool { return h == o }
func (h ContextHash) Compare(o ContextHash) int { return rawHash(h).compare(rawHash(o)) }

// OperationHash identifies a single operation.
type OperationHash rawHash

func (h OperationHash) Bytes() []byte            { return rawHash(h).bytes() }
func (h OperationHash) String() string           { return rawHash(h).hex() }
func (h OperationHash) Equal(o OperationHash) bool { return h == o }

// OperationListHash is the Merkle root of one validation-pass's operations.
type OperationListHash rawHash

func (h OperationListHash) Bytes() []byte { return rawHash(h).bytes() }
func (h OperationListHash) String() string { return rawHash(h).hex() }

// OperationListListHash is the Merkle root over all validation passes,
// i.e. the value carried in a BlockHeader's operations_hash field.
type OperationListListHash rawHash

func (h OperationListListHash) Bytes() []byte              { return rawHash(h).bytes() }
func (h OperationListListHash) String() string              { return rawHash(h).hex() }
func (h OperationListListHash) Equal(o OperationListListHash) bool { return h == o }

// ProtocolHash identifies a protocol implementation.
type ProtocolHash rawHash

func (h ProtocolHash) Bytes() []byte  { return rawHash(h).bytes() }
func (h ProtocolHash) String() string { return rawHash(h).hex() }

// ChainId identifies the chain a node belongs to.
type ChainId rawHash

func (h ChainId) Bytes() []byte            { return rawHash(h).bytes() }
func (h ChainId) String() string           { return rawHash(h).hex() }
func (h ChainId) Equal(o ChainId) bool { return h == o }

// Fitness is a consensus-relevant ordering value. It is opaque to the
// snapshot engine itself (spec §3/GLOSSARY) but is interpreted as a
// big-endian unsigned integer by the chain-data layer's head-selection
// helper (store/chaindata.SelectHead), mirroring how the teacher package
// treats similarly-shaped opaque quantities (database/vt/geth2/state.go's
// use of uint256.Int for account balances).
type Fitness []byte

func (f Fitness) String() string { return "0x" + hex.EncodeToString(f) }

// HashBlockHeader computes the content-addressed hash of a serialized
// block header. Block hashing follows go-ethereum's own convention of
// Keccak256-over-RLP (see go-ethereum's rlpHash helper, mirrored by
// database/flat.State's use of common.Keccak256 for code hashing).
func HashBlockHeader(header any) (BlockHash, error) {
	encoded, err := rlp.EncodeToBytes(header)
	if err != nil {
		return BlockHash{}, fmt.Errorf("encoding header for hashing: %w", err)
	}
	return BlockHash(Keccak256(encoded)), nil
}

// Keccak256 hashes data the way go-ethereum hashes block-level content.
func Keccak256(data ...[]byte) rawHash {
	hasher := sha3.NewLegacyKeccak256()
	for _, d := range data {
		hasher.Write(d)
	}
	var out rawHash
	copy(out[:], hasher.Sum(nil))
	return out
}

// HashOperation hashes a single operation's opaque payload.
func HashOperation(payload []byte) OperationHash {
	return OperationHash(Keccak256(payload))
}

// merkleBlake2b folds a list of 32-byte digests into a single Blake2b-256
// root. Operation lists are hashed with Blake2b rather than Keccak so that
// an OperationListHash and a BlockHash can never collide in practice even
// if a caller forgets the newtype wrapping and compares raw bytes.
func merkleBlake2b(leaves [][]byte) rawHash {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for a bad key, and we pass none.
		panic(err)
	}
	for _, leaf := range leaves {
		hasher.Write(leaf)
	}
	var out rawHash
	copy(out[:], hasher.Sum(nil))
	return out
}

// ComputeOperationListHash computes the Merkle root of one validation
// pass's operation hashes, in order.
func ComputeOperationListHash(hashes []OperationHash) OperationListHash {
	leaves := make([][]byte, len(hashes))
	for i, h := range hashes {
		leaves[i] = h.Bytes()
	}
	return OperationListHash(merkleBlake2b(leaves))
}

// ComputeOperationListListHash computes the Merkle root over a block's
// validation passes, each already reduced to its OperationListHash.
func ComputeOperationListListHash(lists []OperationListHash) OperationListListHash {
	leaves := make([][]byte, len(lists))
	for i, h := range lists {
		leaves[i] = h.Bytes()
	}
	return OperationListListHash(merkleBlake2b(leaves))
}
