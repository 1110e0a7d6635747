package indexmanager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewManager_SizeFormula(t *testing.T) {
	// 5 nodes, 2 vehicles, both sharing node 0 as start, node 4 as end.
	// distinct start/end nodes = {0, 4} -> 2.
	// Size() = (5-2) + 2 = 5; N = Size()+2 = 7 = 5 + 2*2 - 2.
	m, err := NewManager(5, 2, []int{0, 0}, []int{4, 4})
	require.NoError(t, err)
	require.Equal(t, 5, m.Size())
	require.Equal(t, 2, m.NumVehicles())
	require.True(t, m.IsEnd(5))
	require.True(t, m.IsEnd(6))
	require.False(t, m.IsEnd(4))
}

func TestNewManager_DistinctStartsAndEnds(t *testing.T) {
	// 4 nodes, 2 vehicles with disjoint starts/ends: every node is consumed
	// by a start/end role, so there are no regular indices.
	m, err := NewManager(4, 2, []int{0, 1}, []int{2, 3})
	require.NoError(t, err)
	require.Equal(t, 2, m.Size()) // 0 regular + 2 vehicles
	require.Equal(t, m.Start(0), 0)
	require.Equal(t, m.Start(1), 1)
	require.Equal(t, m.End(0), 2)
	require.Equal(t, m.End(1), 3)
}

func TestManager_IndexNodeRoundTrip(t *testing.T) {
	m, err := NewManager(6, 2, []int{0, 0}, []int{1, 1})
	require.NoError(t, err)

	for i := 0; i < m.Size()+m.NumVehicles(); i++ {
		node, err := m.IndexToNode(i)
		require.NoError(t, err)
		idx, err := m.NodeToIndex(node)
		require.NoError(t, err)
		roundTripNode, err := m.IndexToNode(idx)
		require.NoError(t, err)
		require.Equal(t, node, roundTripNode)
	}
}

func TestManager_AllNodeIndices_SharedDepot(t *testing.T) {
	m, err := NewManager(3, 2, []int{0, 0}, []int{0, 0})
	require.NoError(t, err)

	slots := m.AllNodeIndices(0)
	// node 0 is start for both vehicles and end for both vehicles: 4 slots.
	require.Len(t, slots, 4)
}

func TestNewManager_InvalidInputs(t *testing.T) {
	cases := []struct {
		name        string
		numNodes    int
		numVehicles int
		starts      []int
		ends        []int
		wantErr     error
	}{
		{"no vehicles", 3, 0, nil, nil, ErrNoVehicles},
		{"negative nodes", -1, 1, []int{0}, []int{0}, ErrNegativeNodes},
		{"bad lengths", 3, 2, []int{0}, []int{0, 1}, ErrStartsEndsLength},
		{"start out of range", 3, 1, []int{5}, []int{0}, ErrNodeOutOfRange},
		{"end out of range", 3, 1, []int{0}, []int{5}, ErrNodeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewManager(tc.numNodes, tc.numVehicles, tc.starts, tc.ends)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestManager_UnknownIndexOrNode(t *testing.T) {
	m, err := NewManager(2, 1, []int{0}, []int{1})
	require.NoError(t, err)

	_, err = m.IndexToNode(999)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = m.NodeToIndex(999)
	require.ErrorIs(t, err, ErrUnknownNode)
}
