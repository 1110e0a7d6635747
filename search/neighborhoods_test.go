package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/indexmanager"
	"github.com/arcrouting/vrproute/routing"
	"github.com/arcrouting/vrproute/search"
	"github.com/arcrouting/vrproute/transit"
)

// newUnsortedTSP4 seeds a route in reverse visiting order, 0->3->2->1->0.
// Under c(i,j)=i+j every visiting order of one route costs the same (each
// visited index is counted once on each of its two arcs), so the seed is
// already optimal and local search must simply not make it worse.
func newUnsortedTSP4(t *testing.T) (*routing.Model, [][]int) {
	t.Helper()
	im, err := indexmanager.NewManager(4, 1, []int{0}, []int{0})
	require.NoError(t, err)
	reg := transit.NewRegistry()
	m := routing.NewModel(im, reg)
	id := reg.RegisterBinary(func(from, to int) int64 { return int64(from + to) })
	m.SetArcCostEvaluatorOfAllVehicles(id)
	require.NoError(t, m.CloseModel())

	n1, _ := im.NodeToIndex(1)
	n2, _ := im.NodeToIndex(2)
	n3, _ := im.NodeToIndex(3)
	badRoute := [][]int{{m.Start(0), n3, n2, n1, m.End(0)}}
	return m, badRoute
}

func TestOrchestrator_DoesNotWorsenAReverseOrderedSeed(t *testing.T) {
	m, badRoute := newUnsortedTSP4(t)
	badObj := m.ObjectiveValue(badRoute)

	o := search.NewOrchestrator(m, search.DefaultParameters())
	o.Seed(badRoute)
	res := o.Solve()
	require.NoError(t, res.Err)
	require.True(t, res.OK)
	require.LessOrEqual(t, m.ObjectiveValue(res.Routes), badObj)
}
