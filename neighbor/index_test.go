package neighbor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/neighbor"
)

func cost5(i, j int) int64 { return int64(abs(i - j)) }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestBuild_RejectsNonPositiveSize(t *testing.T) {
	_, err := neighbor.Build(0, 1, cost5)
	require.ErrorIs(t, err, neighbor.ErrInvalidSize)
}

func TestBuild_FullRatioKeepsEveryOtherIndex(t *testing.T) {
	idx, err := neighbor.Build(5, 1, cost5)
	require.NoError(t, err)
	require.Len(t, idx.Neighbors(2), 4)
}

func TestBuild_SortsNearestFirst(t *testing.T) {
	idx, err := neighbor.Build(5, 1, cost5)
	require.NoError(t, err)
	// Node 2's distances: |2-0|=2,|2-1|=1,|2-3|=1,|2-4|=2 -> nearest first,
	// ties broken by ascending index: [1,3,0,4]
	require.Equal(t, []int{1, 3, 0, 4}, idx.Neighbors(2))
}

func TestBuild_RatioRestrictsToKNearest(t *testing.T) {
	idx, err := neighbor.Build(5, 0.5, cost5) // ceil(0.5*4)=2
	require.NoError(t, err)
	require.Len(t, idx.Neighbors(2), 2)
	require.Equal(t, []int{1, 3}, idx.Neighbors(2))
}

func TestIndex_IsNeighborMatchesList(t *testing.T) {
	idx, err := neighbor.Build(5, 0.5, cost5)
	require.NoError(t, err)
	for _, j := range idx.Neighbors(2) {
		require.True(t, idx.IsNeighbor(2, j))
	}
	require.False(t, idx.IsNeighbor(2, 2))
}

func TestBuild_SingleIndexHasNoNeighbors(t *testing.T) {
	idx, err := neighbor.Build(1, 1, cost5)
	require.NoError(t, err)
	require.Empty(t, idx.Neighbors(0))
}
