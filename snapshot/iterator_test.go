package snapshot

import (
	"context"
	"testing"

	"github.com/cernak/tezos/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPrunedBlockIterator_StopsAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctxSys := NewMockContextSubsystem(ctrl)
	store := NewMockBlockStore(ctrl)

	header := BlockHeader{Level: 5}
	ctxSys.EXPECT().GetProtocolData(gomock.Any(), header).Return(ProtocolData{ProtocolLevel: 1}, nil)

	it := NewPrunedBlockIterator(store, ctxSys, 5)
	pruned, proto, err := it.Step(context.Background(), header)
	require.NoError(t, err)
	require.Nil(t, pruned)
	require.NotNil(t, proto)
	require.Equal(t, uint8(1), proto.ProtocolLevel)
}

func TestPrunedBlockIterator_EmitsPredecessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctxSys := NewMockContextSubsystem(ctrl)
	store := NewMockBlockStore(ctrl)

	predHash := common.BlockHash{0x01}
	header := BlockHeader{Level: 10, Predecessor: predHash, ProtoLevel: 2}
	predHeader := BlockHeader{Level: 9, ProtoLevel: 2}

	store.EXPECT().ReadHeaderOpt(gomock.Any(), predHash).Return(predHeader, true, nil)
	store.EXPECT().ReadOperations(gomock.Any(), predHash).Return(nil, nil)
	store.EXPECT().OperationHashBindings(gomock.Any(), predHash).Return(nil, nil)

	it := NewPrunedBlockIterator(store, ctxSys, 0)
	pruned, proto, err := it.Step(context.Background(), header)
	require.NoError(t, err)
	require.Nil(t, proto)
	require.NotNil(t, pruned)
	require.Equal(t, predHeader, pruned.Header)
}

func TestPrunedBlockIterator_ProtocolTransitionEmitsMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctxSys := NewMockContextSubsystem(ctrl)
	store := NewMockBlockStore(ctrl)

	predHash := common.BlockHash{0x02}
	header := BlockHeader{Level: 10, Predecessor: predHash, ProtoLevel: 3}
	predHeader := BlockHeader{Level: 9, ProtoLevel: 2}

	store.EXPECT().ReadHeaderOpt(gomock.Any(), predHash).Return(predHeader, true, nil)
	store.EXPECT().ReadOperations(gomock.Any(), predHash).Return(nil, nil)
	store.EXPECT().OperationHashBindings(gomock.Any(), predHash).Return(nil, nil)
	ctxSys.EXPECT().GetProtocolData(gomock.Any(), header).Return(ProtocolData{ProtocolLevel: 3}, nil)

	it := NewPrunedBlockIterator(store, ctxSys, 0)
	pruned, proto, err := it.Step(context.Background(), header)
	require.NoError(t, err)
	require.NotNil(t, pruned)
	require.NotNil(t, proto)
}

func TestPrunedBlockIterator_MissingPredecessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctxSys := NewMockContextSubsystem(ctrl)
	store := NewMockBlockStore(ctrl)

	predHash := common.BlockHash{0x03}
	header := BlockHeader{Level: 10, Predecessor: predHash}

	store.EXPECT().ReadHeaderOpt(gomock.Any(), predHash).Return(BlockHeader{}, false, nil)

	it := NewPrunedBlockIterator(store, ctxSys, 0)
	_, _, err := it.Step(context.Background(), header)
	require.Error(t, err)
	var wrong *WrongBlockExportError
	require.ErrorAs(t, err, &wrong)
	require.Equal(t, ReasonPruned, wrong.Reason)
}
