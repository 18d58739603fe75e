package chaindata

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cernak/tezos/common"
	"github.com/cernak/tezos/snapshot"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.sqlite")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store
}

func TestStore_CheckpointRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	header := snapshot.BlockHeader{Level: 42, Predecessor: common.BlockHash{0x1}}
	require.NoError(t, store.WriteCheckpoint(ctx, header))

	got, err := store.ReadCheckpoint(ctx)
	require.NoError(t, err)
	require.Equal(t, header, got)
}

func TestStore_SavePointAndCaboose(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	hash := common.BlockHash{0x7}
	require.NoError(t, store.WriteSavePoint(ctx, 100, hash))
	level, got, err := store.ReadSavePoint(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(100), level)
	require.Equal(t, hash, got)

	require.NoError(t, store.WriteCaboose(ctx, 5, hash))
	level, got, err = store.ReadCaboose(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(5), level)
	require.Equal(t, hash, got)
}

func TestStore_KnownHeads(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	h1, h2 := common.BlockHash{0x1}, common.BlockHash{0x2}
	require.NoError(t, store.AddKnownHead(ctx, h1))
	require.NoError(t, store.AddKnownHead(ctx, h2))

	heads, err := store.KnownHeads(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []common.BlockHash{h1, h2}, heads)

	require.NoError(t, store.RemoveKnownHead(ctx, h1))
	heads, err = store.KnownHeads(ctx)
	require.NoError(t, err)
	require.Equal(t, []common.BlockHash{h2}, heads)
}

func TestStore_CurrentHeadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	hash := common.BlockHash{0x3}
	require.NoError(t, store.WriteCurrentHead(ctx, hash))
	got, err := store.ReadCurrentHead(ctx)
	require.NoError(t, err)
	require.Equal(t, hash, got)
}

func TestStore_HistoryMode_NotFoundInitially(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, found, err := store.ReadHistoryMode(ctx)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.WriteHistoryMode(ctx, snapshot.Rolling))
	mode, found, err := store.ReadHistoryMode(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, snapshot.Rolling, mode)
}

func TestStore_RecordProtocol(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.RecordProtocol(ctx, 3, common.ProtocolHash{0x9}))
}

func TestStore_SetMainBranchSuccessor(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetMainBranchSuccessor(ctx, common.BlockHash{0x1}, common.BlockHash{0x2}))
}

func TestSelectHead_PicksHighestFitness(t *testing.T) {
	h1, h2 := common.BlockHash{0x1}, common.BlockHash{0x2}
	fitness := map[common.BlockHash]common.Fitness{
		h1: {0x00, 0x01},
		h2: {0x00, 0x02},
	}
	best, err := SelectHead([]common.BlockHash{h1, h2}, func(h common.BlockHash) (common.Fitness, error) {
		return fitness[h], nil
	})
	require.NoError(t, err)
	require.Equal(t, h2, best)
}

func TestSelectHead_TiesBrokenByHash(t *testing.T) {
	h1, h2 := common.BlockHash{0x1}, common.BlockHash{0x2}
	fitness := map[common.BlockHash]common.Fitness{
		h1: {0x05},
		h2: {0x05},
	}
	best, err := SelectHead([]common.BlockHash{h1, h2}, func(h common.BlockHash) (common.Fitness, error) {
		return fitness[h], nil
	})
	require.NoError(t, err)
	require.Equal(t, h2, best)
}

func TestSelectHead_EmptyHeads(t *testing.T) {
	_, err := SelectHead(nil, func(h common.BlockHash) (common.Fitness, error) {
		return nil, nil
	})
	require.Error(t, err)
}
