package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryModeFromOldestLevel(t *testing.T) {
	require.Equal(t, Full, historyModeFromOldestLevel(1))
	require.Equal(t, Rolling, historyModeFromOldestLevel(2))
	require.Equal(t, Rolling, historyModeFromOldestLevel(1000))
}

func TestHistoryMode_String(t *testing.T) {
	require.Equal(t, "archive", Archive.String())
	require.Equal(t, "full", Full.String())
	require.Equal(t, "rolling", Rolling.String())
}
