package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cernak/tezos/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExporter_RejectsRollingToFullExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockChainDataStore(ctrl)
	chain.EXPECT().ReadHistoryMode(gomock.Any()).Return(Rolling, true, nil)

	e := &Exporter{Chain: chain}
	err := e.Export(context.Background(), ExportOptions{Filename: filepath.Join(t.TempDir(), "out")})

	require.Error(t, err)
	var wrong *WrongSnapshotExportError
	require.ErrorAs(t, err, &wrong)
}

func TestExporter_ResolveTarget_DefaultsToCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockChainDataStore(ctrl)
	checkpoint := BlockHeader{Level: 3}
	chain.EXPECT().ReadCheckpoint(gomock.Any()).Return(checkpoint, nil)

	e := &Exporter{Chain: chain}
	hash, err := e.resolveTarget(context.Background(), nil, NoopObserver{})
	require.NoError(t, err)

	want, err := common.HashBlockHeader(checkpoint)
	require.NoError(t, err)
	require.Equal(t, want, hash)
}

func TestExporter_ResolveTarget_RejectsGenesisCheckpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockChainDataStore(ctrl)
	chain.EXPECT().ReadCheckpoint(gomock.Any()).Return(BlockHeader{Level: 0}, nil)

	e := &Exporter{Chain: chain}
	_, err := e.resolveTarget(context.Background(), nil, NoopObserver{})
	require.Error(t, err)
}

func TestExporter_ComputeExportLimit_NonRollingUsesCaboose(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockChainDataStore(ctrl)
	store := NewMockBlockStore(ctrl)

	targetHash := common.BlockHash{0x1}
	store.EXPECT().ReadContentsOpt(gomock.Any(), targetHash).Return(BlockContents{MaxOperationsTTL: 5}, true, nil)
	chain.EXPECT().ReadCaboose(gomock.Any()).Return(int32(10), common.BlockHash{}, nil)

	e := &Exporter{Store: store, Chain: chain}
	limit, err := e.computeExportLimit(context.Background(), targetHash, BlockHeader{Level: 100}, false)
	require.NoError(t, err)
	require.Equal(t, int32(10), limit)
}

func TestExporter_ComputeExportLimit_RollingUsesTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockBlockStore(ctrl)

	targetHash := common.BlockHash{0x2}
	store.EXPECT().ReadContentsOpt(gomock.Any(), targetHash).Return(BlockContents{MaxOperationsTTL: 5}, true, nil)

	e := &Exporter{Store: store}
	limit, err := e.computeExportLimit(context.Background(), targetHash, BlockHeader{Level: 100}, true)
	require.NoError(t, err)
	require.Equal(t, int32(95), limit)
}

func TestExporter_ComputeExportLimit_PrunedTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockBlockStore(ctrl)

	targetHash := common.BlockHash{0x3}
	store.EXPECT().ReadContentsOpt(gomock.Any(), targetHash).Return(BlockContents{}, false, nil)

	e := &Exporter{Store: store}
	_, err := e.computeExportLimit(context.Background(), targetHash, BlockHeader{Level: 100}, false)
	require.Error(t, err)
	var wrong *WrongBlockExportError
	require.ErrorAs(t, err, &wrong)
	require.Equal(t, ReasonPruned, wrong.Reason)
}

func TestExporter_Export_WritesManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	chain := NewMockChainDataStore(ctrl)
	store := NewMockBlockStore(ctrl)
	ctxSys := NewMockContextSubsystem(ctrl)

	target := BlockHeader{Level: 20}
	targetHash, err := common.HashBlockHeader(target)
	require.NoError(t, err)
	predHeader := BlockHeader{Level: 19}

	chain.EXPECT().ReadHistoryMode(gomock.Any()).Return(Full, true, nil)
	chain.EXPECT().ReadCheckpoint(gomock.Any()).Return(target, nil)
	store.EXPECT().ReadHeaderOpt(gomock.Any(), targetHash).Return(target, true, nil)
	store.EXPECT().ReadHeaderOpt(gomock.Any(), target.Predecessor).Return(predHeader, true, nil)
	store.EXPECT().ReadOperations(gomock.Any(), targetHash).Return(nil, nil)
	store.EXPECT().ReadContentsOpt(gomock.Any(), targetHash).Return(BlockContents{MaxOperationsTTL: 2}, true, nil)
	chain.EXPECT().ReadCaboose(gomock.Any()).Return(int32(1), common.BlockHash{}, nil)
	ctxSys.EXPECT().DumpContexts(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	e := &Exporter{Store: store, Chain: chain, Context: ctxSys}
	filename := filepath.Join(t.TempDir(), "snapshot.bin")
	require.NoError(t, e.Export(context.Background(), ExportOptions{Filename: filename}))

	data, err := os.ReadFile(manifestPath(filename))
	require.NoError(t, err)
	require.Contains(t, string(data), "history_mode")
}
