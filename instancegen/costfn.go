package instancegen

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultUnitCost is a unit arc cost. It is not the fallback when no CostFn
// is supplied: resolveCostFn then uses EuclideanCostFn.
const DefaultUnitCost int64 = 1

// CostFn derives an arc cost between two coordinates, given an optional
// *rand.Rand source for stochastic cost models. Must be deterministic for
// a given rng state; adapted from lvlath/builder.WeightFn, re-targeted
// from float64 edge weights to the int64 arc costs package transit deals
// in.
type CostFn func(from, to [2]float64, rng *rand.Rand) int64

// EuclideanCostFn rounds the straight-line distance between from and to to
// the nearest integer, the conventional VRP arc-cost model.
func EuclideanCostFn(from, to [2]float64, _ *rand.Rand) int64 {
	dx, dy := from[0]-to[0], from[1]-to[1]
	return int64(math.Round(math.Sqrt(dx*dx + dy*dy)))
}

// ConstantCostFn returns a CostFn that always yields value, regardless of
// coordinates. Panics if value < 0.
func ConstantCostFn(value int64) CostFn {
	if value < 0 {
		panic(fmt.Sprintf("instancegen: ConstantCostFn(%d): value must be >= 0", value))
	}
	return func(_, _ [2]float64, _ *rand.Rand) int64 {
		return value
	}
}

// UniformCostFn samples an arc cost uniformly in the integer range
// [min,max]. Panics if min < 0 or max < min. A nil rng yields min, the
// same deterministic-fallback convention lvlath/builder.UniformWeightFn
// uses.
func UniformCostFn(min, max int64) CostFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("instancegen: UniformCostFn(%d,%d): require 0 <= min <= max", min, max))
	}
	return func(_, _ [2]float64, rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

func resolveCostFn(fn CostFn) CostFn {
	if fn != nil {
		return fn
	}
	return EuclideanCostFn
}
