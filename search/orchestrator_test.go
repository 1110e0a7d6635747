package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/indexmanager"
	"github.com/arcrouting/vrproute/routing"
	"github.com/arcrouting/vrproute/search"
	"github.com/arcrouting/vrproute/transit"
)

// newTSP4 builds the same 4-node/1-vehicle scenario used across packages:
// c(i,j) = i+j, optimal round trip 0->1->2->3->0.
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

func allNodesCovered(t *testing.T, routes [][]int, im *indexmanager.Manager, n int) {
	t.Helper()
	seen := make(map[int]bool)
	for _, route := range routes {
		for _, idx := range route {
			seen[idx] = true
		}
	}
	for node := 0; node < n; node++ {
		idx, err := im.NodeToIndex(node)
		require.NoError(t, err)
		require.Truef(t, seen[idx], "node %d (index %d) missing from solved routes", node, idx)
	}
}

func TestSolve_BuildsFeasibleSolutionFromScratch(t *testing.T) {
	m, im := newTSP4(t)
	o := search.NewOrchestrator(m, search.DefaultParameters())

	res := o.Solve()
	require.NoError(t, res.Err)
	require.True(t, res.OK)
	require.False(t, res.TimedOut)
	allNodesCovered(t, res.Routes, im, 4)
}

func TestSolve_LocalSearchDoesNotWorsenTheObjective(t *testing.T) {
	m, _ := newTSP4(t)
	o := search.NewOrchestrator(m, search.DefaultParameters())

	first := o.Solve()
	require.NoError(t, first.Err)
	require.True(t, first.OK)

	o2 := search.NewOrchestrator(m, search.DefaultParameters())
	o2.Seed(first.Routes)
	second := o2.Solve()
	require.NoError(t, second.Err)
	require.True(t, second.OK)
	require.LessOrEqual(t, m.ObjectiveValue(second.Routes), m.ObjectiveValue(first.Routes))
}

func TestSolve_SeedSkipsFirstSolutionBuild(t *testing.T) {
	m, _ := newTSP4(t)
	seedRoutes := m.InitialRoutes()

	o := search.NewOrchestrator(m, search.DefaultParameters())
	o.Seed(seedRoutes)
	res := o.Solve()
	require.NoError(t, res.Err)
	require.True(t, res.OK)
}

func TestSolve_RespectsRoutingNoTSPAndNoLNS(t *testing.T) {
	m, im := newTSP4(t)
	p := search.DefaultParameters()
	p.RoutingNoTSP = true
	p.RoutingNoLNS = true
	o := search.NewOrchestrator(m, p)

	res := o.Solve()
	require.NoError(t, res.Err)
	require.True(t, res.OK)
	// With every operator disabled, local search is a no-op over the
	// first-solution build; the result must still cover every node.
	allNodesCovered(t, res.Routes, im, 4)
}

func TestSolve_BranchesLimitStopsSearch(t *testing.T) {
	m, _ := newTSP4(t)
	p := search.DefaultParameters()
	p.Limit.Branches = 1
	o := search.NewOrchestrator(m, p)

	res := o.Solve()
	require.NoError(t, res.Err)
	require.True(t, res.OK)
}

func TestSolve_TimeLimitReportsTimedOut(t *testing.T) {
	m, _ := newTSP4(t)
	p := search.DefaultParameters()
	p.Limit.Time = 1 * time.Nanosecond
	o := search.NewOrchestrator(m, p)

	res := o.Solve()
	require.NoError(t, res.Err)
	require.True(t, res.OK)
	require.True(t, res.TimedOut)
}

func TestSolve_SimulatedAnnealingIsDeterministicForAFixedSeed(t *testing.T) {
	m, _ := newTSP4(t)
	p := search.DefaultParameters()
	p.Metaheuristic = search.SimulatedAnnealing
	p.Seed = 42

	o1 := search.NewOrchestrator(m, p)
	res1 := o1.Solve()
	require.NoError(t, res1.Err)

	o2 := search.NewOrchestrator(m, p)
	res2 := o2.Solve()
	require.NoError(t, res2.Err)

	require.Equal(t, m.ObjectiveValue(res1.Routes), m.ObjectiveValue(res2.Routes))
}

func TestSolve_AllFirstSolutionStrategiesProduceFeasibleRoutes(t *testing.T) {
	strategies := []search.FirstSolutionStrategy{
		search.AutomaticFirstSolution,
		search.GlobalCheapestInsertion,
		search.LocalCheapestInsertion,
		search.CheapestAddition,
		search.SavingsSequential,
		search.SavingsParallel,
		search.Christofides,
	}
	for _, strat := range strategies {
		m, im := newTSP4(t)
		p := search.DefaultParameters()
		p.FirstSolution = strat
		o := search.NewOrchestrator(m, p)

		res := o.Solve()
		require.NoErrorf(t, res.Err, "strategy %v", strat)
		require.Truef(t, res.OK, "strategy %v", strat)
		allNodesCovered(t, res.Routes, im, 4)
	}
}
