package cumullp

import "github.com/arcrouting/vrproute/dimension"

// Optimizer finalizes per-dimension cumul values along a fixed route by
// two linear passes (spec.md §4.8), reusing a per-vehicle scratch buffer
// across repeated calls to amortize allocation.
type Optimizer struct {
	lo, hi map[int][]int64 // vehicle -> reusable forward/backward buffer
}

// NewOptimizer builds an Optimizer with no vehicles yet seen.
func NewOptimizer() *Optimizer {
	return &Optimizer{lo: make(map[int][]int64), hi: make(map[int][]int64)}
}

func (o *Optimizer) buffer(bufs map[int][]int64, v, n int) []int64 {
	buf := bufs[v]
	if cap(buf) < n {
		buf = make([]int64, n)
	}
	buf = buf[:n]
	bufs[v] = buf
	return buf
}

// OptimizeVehicle computes the tightest feasible cumul value at every
// index of route for dim, and the resulting span + soft-bound cost.
//
// The per-route constraint graph is a single chain of difference
// constraints cumul(path[k+1]) - cumul(path[k]) >= transit(path[k],
// path[k+1]) plus each index's box bounds (spec.md §4.4): a forward pass
// tightens every index's lower bound by longest-path propagation from the
// route start, a backward pass tightens every upper bound symmetrically
// from the route end, and infeasibility shows up as a forward bound
// exceeding its paired backward bound. Soft-bound and piecewise costs are
// monotonic nondecreasing in cumul except where a soft lower bound
// pushes the other way, so the tightest (lower) feasible value is used —
// the same choice SpanCost already makes for the span term.
func (o *Optimizer) OptimizeVehicle(dim *dimension.Dimension, v int, route []int) (values map[int]int64, cost int64, feasible bool) {
	n := len(route)
	if n < 2 {
		return nil, 0, false
	}

	lo := o.buffer(o.lo, v, n)
	hi := o.buffer(o.hi, v, n)
	boundsLo := make([]int64, n)
	boundsHi := make([]int64, n)
	for k, idx := range route {
		boundsLo[k], boundsHi[k] = dim.CumulBounds(idx)
	}

	lo[0] = boundsLo[0]
	for k := 1; k < n; k++ {
		transit := dim.TransitBetween(route[k-1], route[k-1], route[k])
		candidate := lo[k-1] + transit
		lo[k] = boundsLo[k]
		if candidate > lo[k] {
			lo[k] = candidate
		}
	}

	hi[n-1] = boundsHi[n-1]
	for k := n - 2; k >= 0; k-- {
		transit := dim.TransitBetween(route[k], route[k], route[k+1])
		candidate := hi[k+1] - transit
		hi[k] = boundsHi[k]
		if candidate < hi[k] {
			hi[k] = candidate
		}
	}

	for k := 0; k < n; k++ {
		if lo[k] > hi[k] {
			return nil, 0, false
		}
	}

	out := make(map[int]int64, n)
	var total int64
	for k, idx := range route {
		out[idx] = lo[k]
		total += dim.SoftCostAt(idx, lo[k])
	}

	span := lo[n-1] - lo[0]
	if bound := dim.SpanUpperBound(v); bound > 0 && span > bound {
		span = bound
	}
	total += dim.SpanCostCoefficient(v) * span

	return out, total, true
}
