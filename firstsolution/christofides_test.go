package firstsolution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/firstsolution"
	"github.com/arcrouting/vrproute/indexmanager"
	"github.com/arcrouting/vrproute/routing"
	"github.com/arcrouting/vrproute/transit"
)

func TestChristofides_CoversEveryNode(t *testing.T) {
	m, im := newTSP4(t)
	routes, err := firstsolution.Christofides{}.Build(m, m.FilterChain())
	require.NoError(t, err)
	require.Len(t, routes, 1)
	allNodesCovered(t, routes, im)
	require.Equal(t, m.Start(0), routes[0][0])
	require.Equal(t, m.End(0), routes[0][len(routes[0])-1])
}

func TestChristofides_SingleCustomerDegenerateCase(t *testing.T) {
	// Start/end node 0, a single regular customer node 1: the tour has
	// exactly one node to shard, exercising the n<=1 shortcut in
	// christofidesTour.
	im, err := indexmanager.NewManager(2, 1, []int{0}, []int{0})
	require.NoError(t, err)
	reg := transit.NewRegistry()
	m := routing.NewModel(im, reg)
	id := reg.RegisterBinary(func(from, to int) int64 { return int64(from + to) })
	m.SetArcCostEvaluatorOfAllVehicles(id)
	require.NoError(t, m.CloseModel())

	routes, err := firstsolution.Christofides{}.Build(m, m.FilterChain())
	require.NoError(t, err)

	n1, err := im.NodeToIndex(1)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	require.Contains(t, routes[0], n1)
}
