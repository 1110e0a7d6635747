package dimension

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcrouting/vrproute/indexmanager"
)

func newTestManager(t *testing.T) *indexmanager.Manager {
	t.Helper()
	mgr, err := indexmanager.NewManager(4, 1, []int{0}, []int{0})
	require.NoError(t, err)
	return mgr
}

func TestDimension_ChainHolds(t *testing.T) {
	mgr := newTestManager(t)
	d := NewDimension("distance", mgr, func(from, to int) int64 { return int64(from + to) }, 0, 1000, 0)

	d.PropagateChain(0, 1, 5, 0)
	require.NoError(t, d.Chain(0, 1))
	require.Equal(t, int64(5), d.Cumul[1])
}

func TestDimension_ChainViolation(t *testing.T) {
	mgr := newTestManager(t)
	d := NewDimension("distance", mgr, func(from, to int) int64 { return 0 }, 0, 1000, 0)
	d.Cumul[1] = 999
	require.ErrorIs(t, d.Chain(0, 1), ErrChainViolation)
}

func TestDimension_SpanCostRespectsUpperBound(t *testing.T) {
	mgr := newTestManager(t)
	d := NewDimension("time", mgr, func(from, to int) int64 { return 1 }, 0, 1000, 0)
	d.SetSpanCostCoefficientForVehicle(0, 2)
	d.SetSpanUpperBoundForVehicle(0, 10)
	d.Cumul[0] = 0
	d.Cumul[1] = 50

	cost := d.SpanCost([]int{0, 1}, 0)
	require.Equal(t, int64(20), cost) // clamped span 10 * coef 2
}

func TestDimension_SoftUpperAndLowerBounds(t *testing.T) {
	mgr := newTestManager(t)
	d := NewDimension("time", mgr, func(from, to int) int64 { return 1 }, 0, 1000, 0)
	d.SetCumulVarSoftUpperBound(2, 10, 3)
	d.SetCumulVarSoftLowerBound(2, 20, 2)

	d.Cumul[2] = 15
	require.Equal(t, int64((15-10)*3+(20-15)*2), d.SoftCost(2))

	d.Cumul[2] = 5
	require.Equal(t, int64((20-5)*2), d.SoftCost(2))
}

func TestDimension_PiecewiseLinearCost(t *testing.T) {
	mgr := newTestManager(t)
	d := NewDimension("load", mgr, func(from, to int) int64 { return 0 }, 0, 1000, 0)

	err := d.SetCumulVarPiecewiseLinearCost(0, []PiecewiseSegment{{X: 0, Y: 0}, {X: 10, Y: 100}, {X: 20, Y: 100}})
	require.NoError(t, err)

	d.Cumul[0] = 5
	require.Equal(t, int64(50), d.SoftCost(0))

	d.Cumul[0] = 20
	require.Equal(t, int64(100), d.SoftCost(0))

	d.Cumul[0] = -5
	require.Equal(t, int64(0), d.SoftCost(0))
}

func TestDimension_RejectsMalformedPiecewiseSegments(t *testing.T) {
	mgr := newTestManager(t)
	d := NewDimension("load", mgr, func(from, to int) int64 { return 0 }, 0, 1000, 0)

	err := d.SetCumulVarPiecewiseLinearCost(0, []PiecewiseSegment{{X: 0, Y: 0}, {X: 5, Y: -1}})
	require.ErrorIs(t, err, ErrNegativeSegment)
}

func TestDimension_DependentDimensionReadsParentCumul(t *testing.T) {
	mgr := newTestManager(t)
	parent := NewDimension("time", mgr, func(from, to int) int64 { return 1 }, 0, 1000, 0)
	parent.Cumul[0] = 42

	child := NewDependentDimension("fuel", mgr, parent, func(parentCumul int64, from, to int) int64 {
		return parentCumul / 10
	}, 0, 1000, 0)

	require.Equal(t, int64(4), child.TransitBetween(0, 0, 1))
}

func TestDimension_ScheduleBreaksPushesArrivals(t *testing.T) {
	mgr := newTestManager(t)
	d := NewDimension("time", mgr, func(from, to int) int64 { return 4 }, 0, 1000, 0)

	route := []int{0, 1, 2, 3}
	for i, idx := range route {
		d.Cumul[idx] = int64(i) * 4
		d.cumulMax[idx] = 100
	}

	err := d.SetBreakIntervalsOfVehicle(0, []Break{{StartMin: 10, DurationMin: 10, EndMax: 20}}, map[int]int64{
		0: 4, 1: 4, 2: 4, 3: 4,
	})
	require.NoError(t, err)

	ok, err := d.ScheduleBreaks(0, route)
	require.NoError(t, err)
	require.True(t, ok)

	// every visit's service window [cumul, cumul+4) stays clear of [10, 20)
	for _, idx := range route {
		overlap := d.Cumul[idx] < 20 && d.Cumul[idx]+4 > 10
		require.False(t, overlap, "index %d service window overlaps the break", idx)
	}
}

func TestDimension_PickupToDeliveryLimit(t *testing.T) {
	mgr := newTestManager(t)
	d := NewDimension("time", mgr, func(from, to int) int64 { return 1 }, 0, 1000, 0)

	d.SetPickupToDeliveryLimitFunctionForPair(0, func(p, del int) int64 { return int64(p + del) })

	limit, ok := d.PickupToDeliveryLimit(0, 2, 3)
	require.True(t, ok)
	require.Equal(t, int64(5), limit)

	_, ok = d.PickupToDeliveryLimit(1, 0, 0)
	require.False(t, ok)
}
