package routing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/indexmanager"
	"github.com/arcrouting/vrproute/transit"
)

func TestModel_CostClassesHomogeneousByDefault(t *testing.T) {
	m, _ := newTSP4(t)
	require.NoError(t, m.CloseModel())
	require.True(t, m.CostsAreHomogeneousAcrossVehicles())
}

func TestModel_CostClassesSplitByPerVehicleEvaluator(t *testing.T) {
	im, err := indexmanager.NewManager(4, 2, []int{0, 0}, []int{0, 0})
	require.NoError(t, err)
	reg := transit.NewRegistry()
	m := NewModel(im, reg)

	flat := reg.RegisterBinary(func(from, to int) int64 { return 1 })
	steep := reg.RegisterBinary(func(from, to int) int64 { return 10 })
	m.SetArcCostEvaluatorOfVehicle(0, flat)
	m.SetArcCostEvaluatorOfVehicle(1, steep)

	require.NoError(t, m.CloseModel())
	require.False(t, m.CostsAreHomogeneousAcrossVehicles())
}

func TestModel_DependencyCycleRejectsClose(t *testing.T) {
	m, _ := newTSP4(t)
	id := m.RegisterTransitCallback(func(from, to int) int64 { return 1 })
	parent, err := m.AddDimension(id, 0, 100, false, "time")
	require.NoError(t, err)
	child, err := m.AddDimensionDependentOnCumul(parent, func(c int64) int64 { return c }, 0, 100, "fuel")
	require.NoError(t, err)
	_ = child

	// Force a genuine 2-cycle: fuel depends on time, time "depends" on fuel.
	m.depParent["time"] = "fuel"

	require.ErrorIs(t, m.CloseModel(), ErrDependencyCycle)
}

func TestModel_CloseIsIdempotentlyRejectedOnSecondCall(t *testing.T) {
	m, _ := newTSP4(t)
	require.NoError(t, m.CloseModel())
	require.ErrorIs(t, m.CloseModel(), ErrAlreadyClosed)
}

func TestModel_DisjunctionPenaltyIsPerIndexNotPerDeficit(t *testing.T) {
	// Two optional indices sharing one disjunction: leaving both unvisited
	// must add penalty twice, not once scaled by the cardinality deficit.
	m, im := newTSP4(t)
	n2, _ := im.NodeToIndex(2)
	n3, _ := im.NodeToIndex(3)
	_, err := m.AddDisjunction([]int{n2, n3}, 7, 0)
	require.NoError(t, err)
	require.NoError(t, m.CloseModel())

	start, end := im.Start(0), im.End(0)
	cost := m.cost([][]int{{start, end}})
	require.Equal(t, int64(start+end)+14, cost)
}

func TestModel_FeasibleDeltaRunsFullFilterChain(t *testing.T) {
	m, im := newTSP4(t)
	n1, _ := im.NodeToIndex(1)
	n2, _ := im.NodeToIndex(2)
	_, err := m.AddDisjunction([]int{n1, n2}, 0, 1)
	require.NoError(t, err)
	require.NoError(t, m.CloseModel())

	ok, err := m.FeasibleDelta([][]int{{im.Start(0), n1, n2, im.End(0)}})
	require.NoError(t, err)
	require.False(t, ok) // both disjunction members visited, cardinality 1

	ok, err = m.FeasibleDelta([][]int{{im.Start(0), n1, im.End(0)}})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestModel_HardDisjunctionNotCosted(t *testing.T) {
	m, im := newTSP4(t)
	n2, _ := im.NodeToIndex(2)
	_, err := m.AddDisjunction([]int{n2}, KNoPenalty, 0)
	require.NoError(t, err)
	require.NoError(t, m.CloseModel())

	start, end := im.Start(0), im.End(0)
	cost := m.cost([][]int{{start, end}})
	require.Equal(t, int64(start+end), cost)
}
