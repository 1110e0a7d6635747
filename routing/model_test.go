package routing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/indexmanager"
	"github.com/arcrouting/vrproute/transit"
)

// newTSP4 builds spec.md §8 scenario 1: 4 nodes, 1 vehicle, arc cost
// c(i,j)=i+j, optimal route 0->1->2->3->0 with cost 12.
func newTSP4(t *testing.T) (*Model, *indexmanager.Manager) {
	t.Helper()
	im, err := indexmanager.NewManager(4, 1, []int{0}, []int{0})
	require.NoError(t, err)
	reg := transit.NewRegistry()
	m := NewModel(im, reg)

	id := reg.RegisterBinary(func(from, to int) int64 { return int64(from + to) })
	m.SetArcCostEvaluatorOfAllVehicles(id)
	return m, im
}

func TestModel_NewModelInitialState(t *testing.T) {
	m, im := newTSP4(t)
	require.Equal(t, im.Size(), m.Size())
	require.Equal(t, 1, m.NumVehicles())
	require.Equal(t, 1, m.ActiveVar(m.Start(0)))
	require.Equal(t, m.End(0), m.NextVar(m.End(0)))
}

func TestModel_CloseThenSetterRejected(t *testing.T) {
	m, _ := newTSP4(t)
	require.NoError(t, m.CloseModel())

	_, err := m.AddDisjunction([]int{0}, 0, 1)
	require.ErrorIs(t, err, ErrModelClosed)

	require.ErrorIs(t, m.CloseModel(), ErrAlreadyClosed)
}

func TestModel_TSP4RoundTrip(t *testing.T) {
	// spec.md §1 places the user-facing index<->node translation utility
	// out of scope, so the registered c(i,j)=i+j callback operates on the
	// variable-index space directly; this exercises the round-trip law
	// (spec.md §8), not the scenario's literal node-labelled cost.
	m, im := newTSP4(t)
	require.NoError(t, m.CloseModel())

	n1, _ := im.NodeToIndex(1)
	n2, _ := im.NodeToIndex(2)
	n3, _ := im.NodeToIndex(3)
	route := []int{im.Start(0), n1, n2, n3, im.End(0)}

	asg, err := m.RoutesToAssignment([][]int{route})
	require.NoError(t, err)

	var want int64
	for k := 0; k+1 < len(route); k++ {
		want += int64(route[k] + route[k+1])
	}
	require.Equal(t, want, asg.Cost)

	back := m.AssignmentToRoutes(asg)
	require.Equal(t, route, back[0])
}

func TestModel_DisjunctionIllPosedRejected(t *testing.T) {
	m, _ := newTSP4(t)
	_, err := m.AddDisjunction([]int{0, 1}, 50, 3)
	require.ErrorIs(t, err, ErrIllPosedDisjunction)
}

func TestModel_OptionalNodeDisjunctionPenalty(t *testing.T) {
	// spec.md §8 scenario 4: an unvisited singleton-disjunction index adds
	// its penalty to cost; visiting it instead adds its arc costs.
	m, im := newTSP4(t)
	n3, _ := im.NodeToIndex(3)
	_, err := m.AddDisjunction([]int{n3}, 50, 0)
	require.NoError(t, err)
	require.NoError(t, m.CloseModel())

	start, end := im.Start(0), im.End(0)
	without := m.cost([][]int{{start, end}})
	withNode := m.cost([][]int{{start, n3, end}})

	require.Equal(t, int64(start+end)+50, without)
	require.Equal(t, int64(start+n3)+int64(n3+end), withNode)
}
