// Package chaindata implements the snapshot engine's external chain-data
// store contract (snapshot.ChainDataStore) on top of SQLite: a handful
// of named singleton cells (Checkpoint, SavePoint, Caboose, CurrentHead,
// HistoryMode) plus three small relational tables (KnownHeads,
// InMainBranch, RecordedProtocols) are a natural fit for a single
// lightweight relational file, unlike the bulk block records that
// store/blockstore keeps in LevelDB.
package chaindata

import (
	"context"
	"database/sql"
	"encoding/gob"
	"errors"
	"fmt"

	"bytes"

	"github.com/cernak/tezos/common"
	"github.com/cernak/tezos/common/interrupt"
	"github.com/cernak/tezos/snapshot"
	"github.com/holiman/uint256"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS cells (name TEXT PRIMARY KEY, value BLOB NOT NULL);
CREATE TABLE IF NOT EXISTS known_heads (hash BLOB PRIMARY KEY);
CREATE TABLE IF NOT EXISTS main_branch (predecessor BLOB PRIMARY KEY, successor BLOB NOT NULL);
CREATE TABLE IF NOT EXISTS protocols (proto_level INTEGER PRIMARY KEY, hash BLOB NOT NULL);
`

const (
	cellCheckpoint   = "checkpoint"
	cellSavePoint    = "save_point"
	cellCaboose      = "caboose"
	cellCurrentHead  = "current_head"
	cellHistoryMode  = "history_mode"
)

// Store is a SQLite-backed snapshot.ChainDataStore.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a chain-data store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening chain data store at %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing chain data schema: %w", err)
	}
	return &Store{db: db}, nil
}

func encodeCell(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeCell(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func (s *Store) writeCell(ctx context.Context, name string, v any) error {
	if interrupt.IsCancelled(ctx) {
		return interrupt.ErrCanceled
	}
	data, err := encodeCell(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO cells(name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`, name, data)
	return err
}

func (s *Store) readCell(ctx context.Context, name string, v any) (bool, error) {
	if interrupt.IsCancelled(ctx) {
		return false, interrupt.ErrCanceled
	}
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM cells WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, decodeCell(data, v)
}

func (s *Store) ReadCheckpoint(ctx context.Context) (snapshot.BlockHeader, error) {
	var header snapshot.BlockHeader
	if _, err := s.readCell(ctx, cellCheckpoint, &header); err != nil {
		return snapshot.BlockHeader{}, err
	}
	return header, nil
}

func (s *Store) WriteCheckpoint(ctx context.Context, header snapshot.BlockHeader) error {
	return s.writeCell(ctx, cellCheckpoint, header)
}

type levelHash struct {
	Level int32
	Hash  common.BlockHash
}

func (s *Store) ReadSavePoint(ctx context.Context) (int32, common.BlockHash, error) {
	var v levelHash
	if _, err := s.readCell(ctx, cellSavePoint, &v); err != nil {
		return 0, common.BlockHash{}, err
	}
	return v.Level, v.Hash, nil
}

func (s *Store) WriteSavePoint(ctx context.Context, level int32, hash common.BlockHash) error {
	return s.writeCell(ctx, cellSavePoint, levelHash{Level: level, Hash: hash})
}

func (s *Store) ReadCaboose(ctx context.Context) (int32, common.BlockHash, error) {
	var v levelHash
	if _, err := s.readCell(ctx, cellCaboose, &v); err != nil {
		return 0, common.BlockHash{}, err
	}
	return v.Level, v.Hash, nil
}

func (s *Store) WriteCaboose(ctx context.Context, level int32, hash common.BlockHash) error {
	return s.writeCell(ctx, cellCaboose, levelHash{Level: level, Hash: hash})
}

func (s *Store) KnownHeads(ctx context.Context) ([]common.BlockHash, error) {
	if interrupt.IsCancelled(ctx) {
		return nil, interrupt.ErrCanceled
	}
	rows, err := s.db.QueryContext(ctx, `SELECT hash FROM known_heads`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var heads []common.BlockHash
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var hash common.BlockHash
		copy(hash[:], raw)
		heads = append(heads, hash)
	}
	return heads, rows.Err()
}

func (s *Store) AddKnownHead(ctx context.Context, hash common.BlockHash) error {
	if interrupt.IsCancelled(ctx) {
		return interrupt.ErrCanceled
	}
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO known_heads(hash) VALUES (?)`, hash.Bytes())
	return err
}

func (s *Store) RemoveKnownHead(ctx context.Context, hash common.BlockHash) error {
	if interrupt.IsCancelled(ctx) {
		return interrupt.ErrCanceled
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM known_heads WHERE hash = ?`, hash.Bytes())
	return err
}

func (s *Store) ReadCurrentHead(ctx context.Context) (common.BlockHash, error) {
	var hash common.BlockHash
	if _, err := s.readCell(ctx, cellCurrentHead, &hash); err != nil {
		return common.BlockHash{}, err
	}
	return hash, nil
}

func (s *Store) WriteCurrentHead(ctx context.Context, hash common.BlockHash) error {
	return s.writeCell(ctx, cellCurrentHead, hash)
}

func (s *Store) SetMainBranchSuccessor(ctx context.Context, predecessor, successor common.BlockHash) error {
	if interrupt.IsCancelled(ctx) {
		return interrupt.ErrCanceled
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO main_branch(predecessor, successor) VALUES (?, ?)
		ON CONFLICT(predecessor) DO UPDATE SET successor = excluded.successor`, predecessor.Bytes(), successor.Bytes())
	return err
}

func (s *Store) ReadHistoryMode(ctx context.Context) (snapshot.HistoryMode, bool, error) {
	var mode snapshot.HistoryMode
	found, err := s.readCell(ctx, cellHistoryMode, &mode)
	return mode, found, err
}

func (s *Store) WriteHistoryMode(ctx context.Context, mode snapshot.HistoryMode) error {
	return s.writeCell(ctx, cellHistoryMode, mode)
}

func (s *Store) RecordProtocol(ctx context.Context, protoLevel uint8, hash common.ProtocolHash) error {
	if interrupt.IsCancelled(ctx) {
		return interrupt.ErrCanceled
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO protocols(proto_level, hash) VALUES (?, ?)
		ON CONFLICT(proto_level) DO UPDATE SET hash = excluded.hash`, protoLevel, hash.Bytes())
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SelectHead picks, among a set of known heads, the one with the
// highest fitness, tie-broken by BlockHash ordering — the head-selection
// rule Tezos-family nodes apply when more than one known head is
// locally present (spec's Design Notes call fitness a "consensus-relevant
// ordering value"; this supplements the distilled spec, see
// SPEC_FULL.md §C.1). Fitness is compared as a big-endian unsigned
// integer via holiman/uint256, mirroring how database/vt/geth2/state.go
// treats similarly opaque fixed-width quantities.
func SelectHead(heads []common.BlockHash, fitnessOf func(common.BlockHash) (common.Fitness, error)) (common.BlockHash, error) {
	if len(heads) == 0 {
		return common.BlockHash{}, fmt.Errorf("no known heads to select from")
	}
	best := heads[0]
	bestFitness, err := fitnessOf(best)
	if err != nil {
		return common.BlockHash{}, err
	}
	for _, candidate := range heads[1:] {
		fitness, err := fitnessOf(candidate)
		if err != nil {
			return common.BlockHash{}, err
		}
		switch compareFitness(fitness, bestFitness) {
		case 1:
			best, bestFitness = candidate, fitness
		case 0:
			if candidate.Compare(best) > 0 {
				best, bestFitness = candidate, fitness
			}
		}
	}
	return best, nil
}

// compareFitness treats a and b as big-endian unsigned integers of
// possibly different lengths and returns -1, 0 or 1, following the same
// convention as uint256.Int.Cmp.
func compareFitness(a, b common.Fitness) int {
	return new(uint256.Int).SetBytes(a).Cmp(new(uint256.Int).SetBytes(b))
}
