package firstsolution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/dimension"
	"github.com/arcrouting/vrproute/firstsolution"
	"github.com/arcrouting/vrproute/indexmanager"
	"github.com/arcrouting/vrproute/lsfilter"
	"github.com/arcrouting/vrproute/routing"
	"github.com/arcrouting/vrproute/transit"
)

// newTSP4 builds the same 4-node/1-vehicle scenario as package routing's
// own tests: c(i,j) = i+j, optimal round trip 0->1->2->3->0.
func newTSP4(t *testing.T) (*routing.Model, *indexmanager.Manager) {
	t.Helper()
	im, err := indexmanager.NewManager(4, 1, []int{0}, []int{0})
	require.NoError(t, err)
	reg := transit.NewRegistry()
	m := routing.NewModel(im, reg)
	id := reg.RegisterBinary(func(from, to int) int64 { return int64(from + to) })
	m.SetArcCostEvaluatorOfAllVehicles(id)
	require.NoError(t, m.CloseModel())
	return m, im
}

func allNodesCovered(t *testing.T, routes [][]int, im *indexmanager.Manager) {
	t.Helper()
	seen := make(map[int]bool)
	for _, route := range routes {
		for _, idx := range route {
			seen[idx] = true
		}
	}
	for node := 0; node < 4; node++ {
		idx, err := im.NodeToIndex(node)
		require.NoError(t, err)
		require.Truef(t, seen[idx], "node %d (index %d) missing from built routes", node, idx)
	}
}

func TestGlobalCheapestInsertion_CoversEveryNode(t *testing.T) {
	m, im := newTSP4(t)
	routes, err := firstsolution.GlobalCheapestInsertion{}.Build(m, m.FilterChain())
	require.NoError(t, err)
	require.Len(t, routes, 1)
	allNodesCovered(t, routes, im)
	require.Equal(t, m.Start(0), routes[0][0])
	require.Equal(t, m.End(0), routes[0][len(routes[0])-1])
}

func TestLocalCheapestInsertion_CoversEveryNode(t *testing.T) {
	m, im := newTSP4(t)
	routes, err := firstsolution.LocalCheapestInsertion{}.Build(m, m.FilterChain())
	require.NoError(t, err)
	allNodesCovered(t, routes, im)
}

func TestCheapestAddition_ByEvaluatorCoversEveryNode(t *testing.T) {
	m, im := newTSP4(t)
	ca := firstsolution.CheapestAddition{Evaluator: func(from, to, v int) int64 {
		return m.GetArcCostForVehicle(from, to, v)
	}}
	routes, err := ca.Build(m, m.FilterChain())
	require.NoError(t, err)
	allNodesCovered(t, routes, im)
}

func TestCheapestAddition_ByComparatorCoversEveryNode(t *testing.T) {
	m, im := newTSP4(t)
	ca := firstsolution.CheapestAddition{Comparator: func(a, b int) bool { return a < b }}
	routes, err := ca.Build(m, m.FilterChain())
	require.NoError(t, err)
	allNodesCovered(t, routes, im)
}

func TestGlobalCheapestInsertion_EmptyModelRejected(t *testing.T) {
	// indexmanager.NewManager rejects numVehicles<=0 outright, so a
	// zero-vehicle model can only be exercised against the narrow
	// interface directly.
	_, err := firstsolution.GlobalCheapestInsertion{}.Build(zeroVehicleModel{}, lsfilter.NewFilterChain())
	require.ErrorIs(t, err, firstsolution.ErrEmptyModel)
}

// zeroVehicleModel is a minimal lsfilter.Model stub used only to exercise
// Builder's zero-vehicle guard, which no real routing.Model can reach.
type zeroVehicleModel struct{}

func (zeroVehicleModel) Size() int                                  { return 0 }
func (zeroVehicleModel) NumVehicles() int                           { return 0 }
func (zeroVehicleModel) Start(int) int                              { return 0 }
func (zeroVehicleModel) End(int) int                                { return 0 }
func (zeroVehicleModel) IsStart(int) bool                           { return false }
func (zeroVehicleModel) IsEnd(int) bool                             { return false }
func (zeroVehicleModel) NextVar(int) int                            { return 0 }
func (zeroVehicleModel) VehicleVar(int) int                         { return 0 }
func (zeroVehicleModel) ActiveVar(int) int                          { return 0 }
func (zeroVehicleModel) GetArcCostForVehicle(int, int, int) int64   { return 0 }
func (zeroVehicleModel) DimensionNames() []string                   { return nil }
func (zeroVehicleModel) GetDimensionOrNil(string) *dimension.Dimension { return nil }
func (zeroVehicleModel) Disjunctions() []struct {
	Indices        []int
	Penalty        int64
	MaxCardinality int
} {
	return nil
}
func (zeroVehicleModel) PickupDeliveryPairs() [][2]int       { return nil }
func (zeroVehicleModel) PolicyCode(int) int                  { return 0 }
func (zeroVehicleModel) VisitType(int) int                   { return 0 }
func (zeroVehicleModel) TypesIncompatible(int, int) bool      { return false }

func TestSequentialSavings_CoversEveryNode(t *testing.T) {
	m, im := newTSP4(t)
	routes, err := firstsolution.SequentialSavings{}.Build(m, m.FilterChain())
	require.NoError(t, err)
	allNodesCovered(t, routes, im)
}

func TestParallelSavings_CoversEveryNode(t *testing.T) {
	m, im := newTSP4(t)
	routes, err := firstsolution.ParallelSavings{}.Build(m, m.FilterChain())
	require.NoError(t, err)
	allNodesCovered(t, routes, im)
}

func TestGlobalCheapestInsertion_OptionalNodeMayBeSkipped(t *testing.T) {
	im, err := indexmanager.NewManager(4, 1, []int{0}, []int{0})
	require.NoError(t, err)
	reg := transit.NewRegistry()
	m := routing.NewModel(im, reg)
	id := reg.RegisterBinary(func(from, to int) int64 { return int64(from + to) })
	m.SetArcCostEvaluatorOfAllVehicles(id)

	n3, _ := im.NodeToIndex(3)
	_, err = m.AddDisjunction([]int{n3}, 5, 0) // max cardinality 0: never visit
	require.NoError(t, err)
	require.NoError(t, m.CloseModel())

	routes, err := firstsolution.GlobalCheapestInsertion{}.Build(m, m.FilterChain())
	require.NoError(t, err)
	for _, route := range routes {
		for _, idx := range route {
			require.NotEqual(t, n3, idx)
		}
	}
}
