// Package blockstore implements the snapshot engine's external
// block/operation key-value store contract (snapshot.BlockStore) on top
// of LevelDB, grounded on database/vt/geth2/store.go's levelDbStore.
//
// Keys are namespaced by a one-byte prefix per record kind so that the
// headers, operation bodies, operation hashes and predecessor tables of
// a block can share one LevelDB instance instead of four.
package blockstore

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/cernak/tezos/common"
	"github.com/cernak/tezos/common/future"
	"github.com/cernak/tezos/common/interrupt"
	"github.com/cernak/tezos/snapshot"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// ErrNotFound mirrors geth2/store.go's sentinel, translated from
// leveldb.ErrNotFound at the store boundary so callers never depend on
// the backing engine's own error type.
const ErrNotFound = common.ConstError("not found")

const (
	prefixHeader byte = iota
	prefixOperations
	prefixOperationHashes
	prefixPredecessors
	prefixContents
	prefixMainBranch
	prefixHead
)

// Store is a LevelDB-backed snapshot.BlockStore.
type Store struct {
	db       *leveldb.DB
	commands chan writeCommand
	done     chan struct{}
}

// writeCommand is one unit of background write work, in the shape
// database/flat.go uses for its commands channel: a closure to run plus
// a promise to fulfill with its outcome.
type writeCommand struct {
	run     func() error
	promise future.Promise[struct{}]
}

// runWriter drains commands sequentially against the LevelDB handle,
// guaranteeing writes issued through StoreChunkAsync land in submission
// order even though callers do not block on them —
// grounded on database/flat.go's background command-channel worker.
func (s *Store) runWriter() {
	defer close(s.done)
	for cmd := range s.commands {
		err := cmd.run()
		if err != nil {
			cmd.promise.Fulfill(future.Err[struct{}](err))
		} else {
			cmd.promise.Fulfill(future.Ok(struct{}{}))
		}
	}
}

// submit enqueues a background write and returns a future for its
// outcome. Bulk storage (snapshot.StoreHistoryBulk) uses this to let a
// chunk's writes pipeline with progress-observer logging instead of
// blocking the caller on every single Put.
func (s *Store) submit(run func() error) future.Future[struct{}] {
	promise, fut := future.Create[struct{}]()
	s.commands <- writeCommand{run: run, promise: promise}
	return fut
}

// Open opens (creating if necessary) a LevelDB block store at dir, sized
// per cfg — mirroring the spec's call (§4.5 step 2) for a block store
// opened "with large maximum map size (~40 GiB)" to accommodate a full
// import, here translated into LevelDB's block-cache sizing
// (BlockCacheCapacity = cfg.BlockStoreMaxMapSize / 64) rather than an
// mmap size (LevelDB has no single map-size knob). The write buffer is
// left at LevelDB's default.
func Open(dir string, cfg snapshot.Config) (*Store, error) {
	cacheSize := int(cfg.BlockStoreMaxMapSize / 64)
	if cacheSize <= 0 {
		cacheSize = opt.DefaultBlockCacheCapacity
	}
	db, err := leveldb.OpenFile(dir, &opt.Options{
		BlockCacheCapacity: cacheSize,
	})
	if err != nil {
		return nil, fmt.Errorf("opening block store at %s: %w", dir, err)
	}
	s := &Store{db: db, commands: make(chan writeCommand, 1024), done: make(chan struct{})}
	go s.runWriter()
	return s, nil
}

// OpenReadOnly opens an existing block store without permitting writes,
// for export (spec §4.4 step 1).
func OpenReadOnly(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("opening block store read-only at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func key(prefix byte, hash common.BlockHash) []byte {
	out := make([]byte, 1+len(hash.Bytes()))
	out[0] = prefix
	copy(out[1:], hash.Bytes())
	return out
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func (s *Store) get(ctx context.Context, k []byte, v any) (bool, error) {
	if interrupt.IsCancelled(ctx) {
		return false, interrupt.ErrCanceled
	}
	data, err := s.db.Get(k, nil)
	if err == leveldb.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := decode(data, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) put(ctx context.Context, k []byte, v any) error {
	if interrupt.IsCancelled(ctx) {
		return interrupt.ErrCanceled
	}
	data, err := encode(v)
	if err != nil {
		return err
	}
	return s.db.Put(k, data, nil)
}

func (s *Store) ReadHeader(ctx context.Context, hash common.BlockHash) (snapshot.BlockHeader, error) {
	header, found, err := s.ReadHeaderOpt(ctx, hash)
	if err != nil {
		return snapshot.BlockHeader{}, err
	}
	if !found {
		return snapshot.BlockHeader{}, ErrNotFound
	}
	return header, nil
}

func (s *Store) ReadHeaderOpt(ctx context.Context, hash common.BlockHash) (snapshot.BlockHeader, bool, error) {
	var header snapshot.BlockHeader
	found, err := s.get(ctx, key(prefixHeader, hash), &header)
	return header, found, err
}

func (s *Store) StoreHeader(ctx context.Context, hash common.BlockHash, header snapshot.BlockHeader) error {
	return s.put(ctx, key(prefixHeader, hash), header)
}

func (s *Store) ReadContentsOpt(ctx context.Context, hash common.BlockHash) (snapshot.BlockContents, bool, error) {
	var contents snapshot.BlockContents
	found, err := s.get(ctx, key(prefixContents, hash), &contents)
	return contents, found, err
}

// StoreContents persists a block's max_operations_ttl, used by the
// exporter to compute the export depth limit (spec §4.4 step 5). This is
// not part of snapshot.BlockStore proper (the spec leaves "Contents"
// read-only from the engine's point of view) but is exposed so a
// validator-driving node can populate it as blocks are applied.
func (s *Store) StoreContents(ctx context.Context, hash common.BlockHash, contents snapshot.BlockContents) error {
	return s.put(ctx, key(prefixContents, hash), contents)
}

func (s *Store) ReadOperations(ctx context.Context, hash common.BlockHash) ([]snapshot.OperationPass[snapshot.Operation], error) {
	var ops []snapshot.OperationPass[snapshot.Operation]
	found, err := s.get(ctx, key(prefixOperations, hash), &ops)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return ops, nil
}

func (s *Store) StoreOperations(ctx context.Context, hash common.BlockHash, ops []snapshot.OperationPass[snapshot.Operation]) error {
	return s.put(ctx, key(prefixOperations, hash), ops)
}

func (s *Store) StoreOperationHashes(ctx context.Context, hash common.BlockHash, hashes []snapshot.OperationPass[common.OperationHash]) error {
	return s.put(ctx, key(prefixOperationHashes, hash), hashes)
}

func (s *Store) OperationHashBindings(ctx context.Context, hash common.BlockHash) ([]snapshot.OperationPass[common.OperationHash], error) {
	var hashes []snapshot.OperationPass[common.OperationHash]
	found, err := s.get(ctx, key(prefixOperationHashes, hash), &hashes)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return hashes, nil
}

func (s *Store) ReadPredecessors(ctx context.Context, hash common.BlockHash) ([]snapshot.PredecessorEntry, error) {
	var table []snapshot.PredecessorEntry
	found, err := s.get(ctx, key(prefixPredecessors, hash), &table)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return table, nil
}

func (s *Store) StorePredecessors(ctx context.Context, hash common.BlockHash, table []snapshot.PredecessorEntry) error {
	return s.put(ctx, key(prefixPredecessors, hash), table)
}

// SetMainBranchSuccessor records predecessor -> successor on the
// canonical chain. snapshot.StoreHistoryBulk (C5a) calls this through an
// optional interface assertion when a BlockStore implementation chooses
// to keep InMainBranch alongside block records instead of in the
// chain-data store.
func (s *Store) SetMainBranchSuccessor(ctx context.Context, predecessor, successor common.BlockHash) error {
	return s.put(ctx, key(prefixMainBranch, predecessor), successor)
}

func (s *Store) StoreHead(ctx context.Context, hash common.BlockHash, record snapshot.HeadRecord) error {
	return s.put(ctx, key(prefixHead, hash), record)
}

// StoreChunkAsync writes one history entry's header, operations,
// operation hashes and predecessor table as background work and returns
// a future for the combined outcome, letting snapshot.StoreHistoryBulk
// overlap a chunk's writes with its own progress-observer calls instead
// of blocking on every Put in turn. It is picked up by
// snapshot.StoreHistoryBulk through an optional interface assertion,
// the same pattern SetMainBranchSuccessor uses.
func (s *Store) StoreChunkAsync(ctx context.Context, hash common.BlockHash, header snapshot.BlockHeader, ops []snapshot.OperationPass[snapshot.Operation], opHashes []snapshot.OperationPass[common.OperationHash], predecessors []snapshot.PredecessorEntry) future.Future[struct{}] {
	return s.submit(func() error {
		if err := s.put(ctx, key(prefixHeader, hash), header); err != nil {
			return err
		}
		if err := s.put(ctx, key(prefixOperations, hash), ops); err != nil {
			return err
		}
		if err := s.put(ctx, key(prefixOperationHashes, hash), opHashes); err != nil {
			return err
		}
		return s.put(ctx, key(prefixPredecessors, hash), predecessors)
	})
}

func (s *Store) Close() error {
	if s.commands != nil {
		close(s.commands)
		<-s.done
	}
	return s.db.Close()
}
