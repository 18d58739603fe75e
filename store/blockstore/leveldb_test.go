package blockstore

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
	dir := filepath.Join(t.TempDir(), "blocks")
	store, err := Open(dir, snapshot.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store
}

func TestStore_StoreAndReadHeader(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	hash := common.BlockHash{0x1}
	header := snapshot.BlockHeader{Level: 3, Predecessor: common.BlockHash{0x2}}

	require.NoError(t, store.StoreHeader(ctx, hash, header))

	got, err := store.ReadHeader(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, header, got)
}

func TestStore_ReadHeader_NotFound(t *testing.T) {
	store := openTestStore(t)
	_, err := store.ReadHeader(context.Background(), common.BlockHash{0x9})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ReadHeaderOpt_NotFound(t *testing.T) {
	store := openTestStore(t)
	_, found, err := store.ReadHeaderOpt(context.Background(), common.BlockHash{0x9})
	require.NoError(t, err)
	require.False(t, found)
}

func TestStore_StoreChunkAsync(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	hash := common.BlockHash{0x3}
	header := snapshot.BlockHeader{Level: 7}
	table := []snapshot.PredecessorEntry{{Rank: 0, Hash: common.BlockHash{0x1}}}

	fut := store.StoreChunkAsync(ctx, hash, header, nil, nil, table)
	_, err := fut.Await()
	require.NoError(t, err)

	got, err := store.ReadHeader(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, header, got)

	gotTable, err := store.ReadPredecessors(ctx, hash)
	require.NoError(t, err)
	require.Equal(t, table, gotTable)
}

func TestStore_SetMainBranchSuccessor(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetMainBranchSuccessor(ctx, common.BlockHash{0x1}, common.BlockHash{0x2}))
}

func TestOpenReadOnly_DoesNotStartWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "blocks")
	store, err := Open(dir, snapshot.DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	ro, err := OpenReadOnly(dir)
	require.NoError(t, err)
	defer ro.Close()
	require.Nil(t, ro.commands)

	_, found, err := ro.ReadHeaderOpt(context.Background(), common.BlockHash{0x1})
	require.NoError(t, err)
	require.False(t, found)
}
