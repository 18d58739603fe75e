package snapshot

import (
	"context"
	"testing"

	"github.com/cernak/tezos/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestImporter_Import_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockBlockStore(ctrl)
	chain := NewMockChainDataStore(ctrl)
	ctxSys := NewMockContextSubsystem(ctrl)
	validator := NewMockValidator(ctrl)

	var genesisHash common.BlockHash
	genesis := Genesis{BlockHash: genesisHash}

	oldBlock := buildPrunedBlock([][]string{{"op"}})
	oldBlock.Header.Level = 1
	oldBlock.Header.Predecessor = genesisHash
	oldBlockHash, err := common.HashBlockHeader(oldBlock.Header)
	require.NoError(t, err)

	predecessorHeader := BlockHeader{Level: 0, Context: common.ContextHash{0x01}}
	predecessorContext := common.ContextHash{0xEF}

	headHeader := BlockHeader{Level: 2, Predecessor: oldBlockHash, Context: common.ContextHash{0xAB}}
	headHash, err := common.HashBlockHeader(headHeader)
	require.NoError(t, err)

	tuple := RestoredSnapshot{
		PredecessorHeader:    predecessorHeader,
		Head:                 BlockData{Header: headHeader},
		OldBlocksNewestFirst: []PrunedBlock{oldBlock},
	}

	chain.EXPECT().WriteHistoryMode(gomock.Any(), Rolling).Return(nil)
	ctxSys.EXPECT().RestoreContexts(gomock.Any(), "snapshot.bin").Return([]RestoredSnapshot{tuple}, nil)

	store.EXPECT().ReadHeaderOpt(gomock.Any(), headHash).Return(BlockHeader{}, false, nil)
	ctxSys.EXPECT().CheckoutExn(gomock.Any(), predecessorHeader.Context).Return(predecessorContext, nil)
	validator.EXPECT().Apply(gomock.Any(), genesis.ChainId, predecessorHeader.Level, predecessorHeader, predecessorContext, headHeader, tuple.Head.Operations).
		Return(ApplyResult{ContextHash: common.ContextHash{0xAB}}, nil)

	chain.EXPECT().WriteHistoryMode(gomock.Any(), Full).Return(nil)

	store.EXPECT().StoreHeader(gomock.Any(), oldBlockHash, oldBlock.Header).Return(nil)
	store.EXPECT().StoreOperations(gomock.Any(), oldBlockHash, oldBlock.Operations).Return(nil)
	store.EXPECT().StoreOperationHashes(gomock.Any(), oldBlockHash, oldBlock.OperationHashes).Return(nil)
	store.EXPECT().StorePredecessors(gomock.Any(), oldBlockHash, []PredecessorEntry{{Rank: 0, Hash: genesisHash}}).Return(nil)

	store.EXPECT().StoreHeader(gomock.Any(), headHash, headHeader).Return(nil)
	store.EXPECT().StoreOperations(gomock.Any(), headHash, tuple.Head.Operations).Return(nil)
	store.EXPECT().StoreHead(gomock.Any(), headHash, gomock.Any()).Return(nil)
	chain.EXPECT().RemoveKnownHead(gomock.Any(), genesisHash).Return(nil)
	chain.EXPECT().AddKnownHead(gomock.Any(), headHash).Return(nil)
	chain.EXPECT().WriteCurrentHead(gomock.Any(), headHash).Return(nil)

	chain.EXPECT().WriteCheckpoint(gomock.Any(), headHeader).Return(nil)
	chain.EXPECT().WriteSavePoint(gomock.Any(), headHeader.Level, headHash).Return(nil)
	chain.EXPECT().WriteCaboose(gomock.Any(), int32(0), genesisHash).Return(nil)

	store.EXPECT().Close().Return(nil)
	ctxSys.EXPECT().Close().Return(nil)

	imp := &Importer{Store: store, Chain: chain, Context: ctxSys, Validator: validator, Genesis: genesis}
	err = imp.Import(context.Background(), ImportOptions{Filename: "snapshot.bin"})
	require.NoError(t, err)
}

func TestImporter_ImportOne_RejectsMismatchedExpectedBlock(t *testing.T) {
	imp := &Importer{Observer: NoopObserver{}}

	head := BlockHeader{Level: 1}
	headHash, err := common.HashBlockHeader(head)
	require.NoError(t, err)

	wrong := common.BlockHash{0xFF}
	err = imp.importOne(context.Background(), RestoredSnapshot{Head: BlockData{Header: head}}, ImportOptions{Block: &wrong}, NoopObserver{})
	require.Error(t, err)
	var mismatch *InconsistentImportedBlockError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, headHash, mismatch.Got)
}

func TestImporter_AdvanceCheckpoints_RejectsCabooseBeyondTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockChainDataStore(ctrl)
	chain.EXPECT().WriteCheckpoint(gomock.Any(), gomock.Any()).Return(nil)
	chain.EXPECT().WriteSavePoint(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	imp := &Importer{Chain: chain, Genesis: Genesis{}}
	oldest := HistoryEntry{Hash: common.BlockHash{0x1}, Block: PrunedBlock{Header: BlockHeader{Level: 58}}}

	err := imp.advanceCheckpoints(context.Background(), common.BlockHash{0x2}, BlockHeader{Level: 60}, oldest, 5)
	require.Error(t, err)
	var inconsistent *InconsistentHistoryError
	require.ErrorAs(t, err, &inconsistent)
}
