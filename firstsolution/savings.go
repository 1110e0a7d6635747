package firstsolution

import (
	"sort"

	"github.com/arcrouting/vrproute/lsfilter"
)

// vehicleType groups vehicles by their start/end index pair, and savings
// are computed once per type (spec.md §4.6 "Savings"). The cost class is
// not part of the key, and since indexmanager gives every vehicle its own
// start and end index, each vehicle forms a type of its own.
type vehicleType struct {
	start, end int
	vehicles   []int
}

func vehicleTypes(m interface {
	NumVehicles() int
	Start(v int) int
	End(v int) int
}) []vehicleType {
	byKey := make(map[[2]int]int) // (start,end) -> index into out
	var out []vehicleType
	for v := 0; v < m.NumVehicles(); v++ {
		key := [2]int{m.Start(v), m.End(v)}
		if idx, ok := byKey[key]; ok {
			out[idx].vehicles = append(out[idx].vehicles, v)
			continue
		}
		byKey[key] = len(out)
		out = append(out, vehicleType{start: key[0], end: key[1], vehicles: []int{v}})
	}
	return out
}

type saving struct {
	i, j int
	typ  int
	vehi int // representative vehicle of the type, for arc-cost evaluation
	val  int64
}

// savingsCoefficient is the classical Clarke-Wright route-shape parameter;
// 1.0 reduces to the textbook formula exactly as spec.md §4.6 states it.
const savingsCoefficient = 1.0

func computeSavings(m interface {
	Size() int
	NumVehicles() int
	Start(v int) int
	End(v int) int
	GetArcCostForVehicle(i, j, v int) int64
}) ([]saving, []vehicleType) {
	types := vehicleTypes(m)
	n := m.Size()
	var out []saving
	for t, vt := range types {
		rep := vt.vehicles[0]
		for i := 0; i < n; i++ {
			if i == vt.start || i == vt.end {
				continue
			}
			for j := 0; j < n; j++ {
				if j == i || j == vt.start || j == vt.end {
					continue
				}
				s := float64(m.GetArcCostForVehicle(vt.start, j, rep)) +
					float64(m.GetArcCostForVehicle(i, vt.end, rep)) -
					savingsCoefficient*float64(m.GetArcCostForVehicle(i, j, rep))
				out = append(out, saving{i: i, j: j, typ: t, vehi: rep, val: int64(s)})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].val > out[b].val })
	return out, types
}

// SequentialSavings runs the shared savings pass of runSavings in
// sequential mode (spec.md §4.6 "Sequential"): savings whose two indices
// are both unplaced are skipped, so no route is opened from a saving.
type SequentialSavings struct{}

func (SequentialSavings) Build(m lsfilter.Model, chain *lsfilter.FilterChain) ([][]int, error) {
	return runSavings(m, chain, true)
}

// ParallelSavings runs the shared savings pass of runSavings in parallel
// mode (spec.md §4.6 "Parallel"): every saving is tried once in
// descending order.
//
// In both modes a saving (i, j) only appends j to a route whose last
// index before its end is i; no saving opens a new route, extends a
// route's head, or merges two routes. Every index still unrouted after
// the pass is placed by a cheapest-insertion sweep.
type ParallelSavings struct{}

func (ParallelSavings) Build(m lsfilter.Model, chain *lsfilter.FilterChain) ([][]int, error) {
	return runSavings(m, chain, false)
}

func runSavings(m lsfilter.Model, chain *lsfilter.FilterChain, sequential bool) ([][]int, error) {
	if m.NumVehicles() == 0 {
		return nil, ErrEmptyModel
	}
	savs, _ := computeSavings(m)
	b := NewRoutingFilteredDecisionBuilder(m, chain, nil)
	optional := optionalIndices(m)
	placed := make(map[int]bool)

	tryExtendOrMerge := func(s saving) bool {
		for v, route := range b.Routes() {
			tail := route[len(route)-2]
			if tail == s.i && !placed[s.j] {
				if b.TryInsert(v, len(route)-1, s.j) {
					placed[s.j] = true
					return true
				}
			}
		}
		return false
	}

	for _, s := range savs {
		if placed[s.i] && placed[s.j] {
			continue
		}
		if !placed[s.i] && !placed[s.j] {
			if sequential {
				continue // sequential mode only grows the currently open route
			}
		}
		if tryExtendOrMerge(s) {
			continue
		}
	}

	for _, idx := range unroutedCandidates(m, b.Routes()) {
		best := cheapestInsertionFor(m, b.Routes(), idx)
		if best.found && b.TryInsert(best.vehicle, best.pos, idx) {
			continue
		}
		if !optional[idx] {
			return nil, ErrNoFeasibleInsertion
		}
	}
	return b.Routes(), nil
}
