package breaks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropagate_PrecedencesTightenChain(t *testing.T) {
	tasks := &Tasks{
		ChainTasks: []Task{
			{StartMin: 0, DurationMin: 5, EndMax: 100},
			{StartMin: 0, DurationMin: 3, EndMax: 100},
			{StartMin: 0, DurationMin: 2, EndMax: 100},
		},
	}
	ok, err := Propagate(tasks)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, int64(0), tasks.ChainTasks[0].StartMin)
	require.Equal(t, int64(5), tasks.ChainTasks[1].StartMin)
	require.Equal(t, int64(8), tasks.ChainTasks[2].StartMin)
}

func TestPropagate_ChainInfeasibleWhenDeadlineTooTight(t *testing.T) {
	tasks := &Tasks{
		ChainTasks: []Task{
			{StartMin: 0, DurationMin: 5, EndMax: 100},
			{StartMin: 0, DurationMin: 3, EndMax: 4},
		},
	}
	ok, err := Propagate(tasks)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestPropagate_ForbiddenIntervalPushesStart(t *testing.T) {
	tasks := &Tasks{
		NonChainTasks: []Task{
			{StartMin: 8, DurationMin: 4, EndMax: 100, Forbidden: []Interval{{Lo: 10, Hi: 20}}},
		},
	}
	ok, err := Propagate(tasks)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(20), tasks.NonChainTasks[0].StartMin)
}

func TestPropagate_EdgeFindingDetectsOverload(t *testing.T) {
	tasks := &Tasks{
		NonChainTasks: []Task{
			{StartMin: 0, DurationMin: 6, EndMax: 10},
			{StartMin: 0, DurationMin: 6, EndMax: 10},
		},
	}
	ok, err := Propagate(tasks)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrInfeasible)
}

func TestPropagate_EdgeFindingStrengthensStartMin(t *testing.T) {
	tasks := &Tasks{
		NonChainTasks: []Task{
			{StartMin: 0, DurationMin: 5, EndMax: 5},
			{StartMin: 0, DurationMin: 3, EndMax: 20},
		},
	}
	ok, err := Propagate(tasks)
	require.NoError(t, err)
	require.True(t, ok)
	require.GreaterOrEqual(t, tasks.NonChainTasks[1].StartMin, int64(5))
}

func TestPropagate_MirrorTightensEndMax(t *testing.T) {
	tasks := &Tasks{
		NonChainTasks: []Task{
			{StartMin: 15, DurationMin: 5, EndMax: 20},
			{StartMin: 0, DurationMin: 3, EndMax: 20},
		},
	}
	ok, err := Propagate(tasks)
	require.NoError(t, err)
	require.True(t, ok)
	require.LessOrEqual(t, tasks.NonChainTasks[1].EndMax, int64(15))
}

// TestPropagate_BreakSchedulingScenario reproduces spec.md §8 scenario 6: one
// vehicle visiting 3 nodes of service duration 4 with a break of duration 10
// that must fall somewhere in [10, 20). No node's service window may overlap
// the break once scheduled.
func TestPropagate_BreakSchedulingScenario(t *testing.T) {
	tasks := &Tasks{
		ChainTasks: []Task{
			{StartMin: 0, DurationMin: 4, EndMax: 100},
			{StartMin: 0, DurationMin: 4, EndMax: 100, Forbidden: []Interval{{Lo: 10 - 3, Hi: 20}}},
			{StartMin: 0, DurationMin: 4, EndMax: 100, Forbidden: []Interval{{Lo: 10 - 3, Hi: 20}}},
		},
		NonChainTasks: []Task{
			{StartMin: 10, DurationMin: 10, EndMax: 20},
		},
	}
	ok, err := Propagate(tasks)
	require.NoError(t, err)
	require.True(t, ok)

	brk := tasks.NonChainTasks[0]
	for _, n := range tasks.ChainTasks {
		overlap := n.StartMin < brk.StartMin+brk.DurationMin && n.StartMin+n.DurationMin > brk.StartMin
		require.False(t, overlap, "node service window must not overlap the break")
	}
}

func TestPropagate_NegativeDurationRejected(t *testing.T) {
	tasks := &Tasks{NonChainTasks: []Task{{StartMin: 0, DurationMin: -1, EndMax: 10}}}
	ok, err := Propagate(tasks)
	require.False(t, ok)
	require.ErrorIs(t, err, ErrNegativeDuration)
}

func TestDetectablePrecedencesWithChain_RaisesStartMin(t *testing.T) {
	chain := []Task{{StartMin: 0, DurationMin: 2, EndMax: 50}}
	// earliest end 45+6=51 exceeds the chain task's latest start 50-2=48
	nonChain := []Task{{StartMin: 45, DurationMin: 6, EndMax: 100}}

	ok, err := detectablePrecedencesWithChain(chain, nonChain)
	require.NoError(t, err)
	require.True(t, ok)
	require.GreaterOrEqual(t, chain[0].StartMin, int64(6))
}
