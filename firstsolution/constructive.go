package firstsolution

import (
	"math"
	"sort"

	"github.com/arcrouting/vrproute/lsfilter"
)

// optionalIndices returns the set of indices covered by at least one
// disjunction (spec.md §3): these may be left unrouted (paying a penalty
// elsewhere) when no feasible insertion exists, whereas every other index
// must be inserted or the build fails.
func optionalIndices(m lsfilter.Model) map[int]bool {
	out := make(map[int]bool)
	for _, d := range m.Disjunctions() {
		for _, idx := range d.Indices {
			out[idx] = true
		}
	}
	return out
}

// bestInsertion is the cheapest (vehicle, position) pair found for
// inserting index into the builder's current routes, along with the
// marginal cost of doing so.
type bestInsertion struct {
	vehicle int
	pos     int
	delta   int64
	found   bool
}

func cheapestInsertionFor(m lsfilter.Model, routes [][]int, index int) bestInsertion {
	best := bestInsertion{delta: math.MaxInt64}
	for v, route := range routes {
		for pos := 1; pos < len(route); pos++ {
			prev, next := route[pos-1], route[pos]
			added := m.GetArcCostForVehicle(prev, index, v) + m.GetArcCostForVehicle(index, next, v) - m.GetArcCostForVehicle(prev, next, v)
			if added < best.delta {
				best = bestInsertion{vehicle: v, pos: pos, delta: added, found: true}
			}
		}
	}
	return best
}

// GlobalCheapestInsertion repeatedly inserts the single cheapest
// (index, vehicle, position) triple among all remaining unrouted indices,
// validating each candidate through chain before committing (spec.md
// §4.6: "Global Cheapest Insertion").
type GlobalCheapestInsertion struct{}

func (GlobalCheapestInsertion) Build(m lsfilter.Model, chain *lsfilter.FilterChain) ([][]int, error) {
	if m.NumVehicles() == 0 {
		return nil, ErrEmptyModel
	}
	b := NewRoutingFilteredDecisionBuilder(m, chain, nil)
	optional := optionalIndices(m)
	pending := unroutedCandidates(m, b.Routes())

	for len(pending) > 0 {
		type scored struct {
			index int
			best  bestInsertion
		}
		var candidates []scored
		for _, idx := range pending {
			best := cheapestInsertionFor(m, b.Routes(), idx)
			if best.found {
				candidates = append(candidates, scored{idx, best})
			}
		}
		if len(candidates) == 0 {
			break
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].best.delta < candidates[j].best.delta })

		placed := false
		for _, c := range candidates {
			if b.TryInsert(c.best.vehicle, c.best.pos, c.index) {
				pending = removeIndex(pending, c.index)
				placed = true
				break
			}
		}
		if !placed {
			// Nothing in this round is feasible anywhere: drop every
			// optional candidate, fail if a mandatory one remains.
			for _, c := range candidates {
				if !optional[c.index] {
					return nil, ErrNoFeasibleInsertion
				}
			}
			break
		}
	}
	return b.Routes(), nil
}

// LocalCheapestInsertion inserts indices in a fixed arrival order, each at
// its own cheapest feasible position, instead of globally re-ranking every
// remaining index every round (spec.md §4.6: "Local Cheapest Insertion").
// Cheaper per round than GlobalCheapestInsertion at the cost of solution
// quality.
type LocalCheapestInsertion struct{}

func (LocalCheapestInsertion) Build(m lsfilter.Model, chain *lsfilter.FilterChain) ([][]int, error) {
	if m.NumVehicles() == 0 {
		return nil, ErrEmptyModel
	}
	b := NewRoutingFilteredDecisionBuilder(m, chain, nil)
	optional := optionalIndices(m)

	for _, idx := range unroutedCandidates(m, b.Routes()) {
		best := cheapestInsertionFor(m, b.Routes(), idx)
		if !best.found || !b.TryInsert(best.vehicle, best.pos, idx) {
			if !optional[idx] {
				return nil, ErrNoFeasibleInsertion
			}
		}
	}
	return b.Routes(), nil
}

// ArcEvaluator scores a candidate arc for CheapestAdditionByEvaluator.
type ArcEvaluator func(from, to, vehicle int) int64

// CheapestAddition grows each vehicle's route one index at a time by
// appending whichever unrouted index the evaluator (or comparator) judges
// best to extend from the route's current tail, rather than searching all
// insertion positions the way GlobalCheapestInsertion does (spec.md §4.6:
// "Cheapest Addition"). Exactly one of Evaluator or Comparator must be
// set; Comparator, when present, takes precedence.
type CheapestAddition struct {
	Evaluator  ArcEvaluator
	Comparator func(a, b int) bool // true if a should be preferred over b as the next stop
}

func (c CheapestAddition) Build(m lsfilter.Model, chain *lsfilter.FilterChain) ([][]int, error) {
	if m.NumVehicles() == 0 {
		return nil, ErrEmptyModel
	}
	b := NewRoutingFilteredDecisionBuilder(m, chain, nil)
	optional := optionalIndices(m)
	pending := unroutedCandidates(m, b.Routes())

	for v := 0; v < m.NumVehicles(); v++ {
		// candidates shrinks on every attempt; an index rejected here stays
		// pending for the later vehicles and the final mandatory check.
		candidates := append([]int(nil), pending...)
		for {
			tail := b.Routes()[v][len(b.Routes()[v])-2] // index just before End(v)
			next, ok := c.pickNext(m, tail, v, candidates)
			if !ok {
				break
			}
			candidates = removeIndex(candidates, next)
			pos := len(b.Routes()[v]) - 1 // insert before End(v)
			if b.TryInsert(v, pos, next) {
				pending = removeIndex(pending, next)
			}
		}
	}

	for _, idx := range pending {
		if !optional[idx] {
			return nil, ErrNoFeasibleInsertion
		}
	}
	return b.Routes(), nil
}

func (c CheapestAddition) pickNext(m lsfilter.Model, tail, vehicle int, pending []int) (int, bool) {
	if len(pending) == 0 {
		return 0, false
	}
	best := pending[0]
	for _, idx := range pending[1:] {
		if c.Comparator != nil {
			if c.Comparator(idx, best) {
				best = idx
			}
			continue
		}
		if c.Evaluator(tail, idx, vehicle) < c.Evaluator(tail, best, vehicle) {
			best = idx
		}
	}
	return best, true
}

func removeIndex(s []int, idx int) []int {
	out := make([]int, 0, len(s))
	for _, v := range s {
		if v != idx {
			out = append(out, v)
		}
	}
	return out
}
