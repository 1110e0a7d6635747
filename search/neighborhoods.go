package search

import "github.com/arcrouting/vrproute/neighbor"

// operator is a local-search neighborhood: given the incumbent routes and
// its objective value, it scans for an improving move and returns the
// best one found (best-improvement over the whole neighborhood, rather
// than the teacher's first-improvement-then-restart TwoOpt, since every
// candidate here is scored via a full Model.ObjectiveValue call rather
// than an O(1) incremental delta).
type operator interface {
	name() string
	tsp() bool // true for intra-route operators (spec.md "RoutingNoTSP")
	lns() bool // true for operators that may touch more than one route ("RoutingNoLNS")
	improve(m Model, routes [][]int, currentObj int64) (candidate [][]int, candObj int64, found bool)
}

// operators assembles the active neighborhood set. When Parameters.NeighborsRatio
// is set, orOptOperator's relocation destinations are bounded to each
// moved index's nearest-neighbor set (package neighbor) instead of every
// position on every route, trading completeness for an O(k) scan.
func (o *Orchestrator) operators() []operator {
	or := orOptOperator{}
	if o.p.NeighborsRatio > 0 {
		if idx, err := buildNeighborIndex(o.m, o.p.NeighborsRatio); err == nil {
			or.neighbors = idx
		}
	}
	return []operator{twoOptOperator{}, or}
}

// buildNeighborIndex ranks every index's nearest neighbors by vehicle 0's
// arc-cost evaluator, the same representative-vehicle convention
// package firstsolution's Christofides builder uses for its distance matrix.
func buildNeighborIndex(m Model, ratio float64) (*neighbor.Index, error) {
	n := m.Size() + m.NumVehicles()
	return neighbor.Build(n, ratio, func(i, j int) int64 {
		return m.GetArcCostForVehicle(i, j, 0)
	})
}

func cloneRoutes(routes [][]int) [][]int {
	out := make([][]int, len(routes))
	for v, route := range routes {
		out[v] = append([]int(nil), route...)
	}
	return out
}

// twoOptOperator reverses one intra-route segment per move, adapted from
// the teacher's symmetric 2-opt (tsp/two_opt.go): Δ = w(a,c)+w(b,d)-w(a,b)-w(c,d)
// for edges (a,b) and (c,d) replaced by (a,c) and (b,d). Recomputed here via
// Model.ObjectiveValue over the whole candidate rather than the teacher's
// O(1) incremental delta, since Model exposes no raw arc-cost-sum hook
// outside GetArcCostForVehicle on a single arc.
type twoOptOperator struct{}

func (twoOptOperator) name() string { return "TwoOpt" }
func (twoOptOperator) tsp() bool    { return true }
func (twoOptOperator) lns() bool    { return false }

func (twoOptOperator) improve(m Model, routes [][]int, currentObj int64) ([][]int, int64, bool) {
	bestObj := currentObj
	var best [][]int
	found := false
	for v, route := range routes {
		n := len(route)
		for i := 1; i+1 < n; i++ {
			for k := i + 1; k+1 < n; k++ {
				candidate := cloneRoutes(routes)
				reversed := append([]int(nil), route[i:k+1]...)
				for a, b := 0, len(reversed)-1; a < b; a, b = a+1, b-1 {
					reversed[a], reversed[b] = reversed[b], reversed[a]
				}
				newRoute := append([]int(nil), route[:i]...)
				newRoute = append(newRoute, reversed...)
				newRoute = append(newRoute, route[k+1:]...)
				candidate[v] = newRoute

				obj := m.ObjectiveValue(candidate)
				if obj < bestObj {
					bestObj = obj
					best = candidate
					found = true
				}
			}
		}
	}
	return best, bestObj, found
}

// orOptOperator relocates a single customer index to a different position,
// possibly on a different vehicle, adapted from the teacher's relocate-style
// chain move (spec.md §4.9 "Or-opt"); chain length is fixed at 1 here
// (single-node relocation) rather than the teacher's 1-3 node chains.
type orOptOperator struct {
	// neighbors, when set, bounds relocation destinations to positions
	// adjacent to one of the moved index's nearest neighbors instead of
	// every position on every route (search.Parameters.NeighborsRatio).
	neighbors *neighbor.Index
}

func (orOptOperator) name() string { return "OrOpt" }
func (orOptOperator) tsp() bool    { return false }
func (orOptOperator) lns() bool    { return true }

func (op orOptOperator) improve(m Model, routes [][]int, currentObj int64) ([][]int, int64, bool) {
	bestObj := currentObj
	var best [][]int
	found := false

	for srcV, srcRoute := range routes {
		for srcPos := 1; srcPos+1 < len(srcRoute); srcPos++ {
			idx := srcRoute[srcPos]
			withoutSrc := append([]int(nil), srcRoute[:srcPos]...)
			withoutSrc = append(withoutSrc, srcRoute[srcPos+1:]...)

			for dstV, dstRoute := range routes {
				target := dstRoute
				if dstV == srcV {
					target = withoutSrc
				}
				for dstPos := 1; dstPos < len(target); dstPos++ {
					if op.neighbors != nil && !op.adjacentToNeighbor(idx, target, dstPos) {
						continue
					}
					candidate := cloneRoutes(routes)
					candidate[srcV] = withoutSrc
					inserted := append([]int(nil), target[:dstPos]...)
					inserted = append(inserted, idx)
					inserted = append(inserted, target[dstPos:]...)
					candidate[dstV] = inserted

					obj := m.ObjectiveValue(candidate)
					if obj < bestObj {
						bestObj = obj
						best = candidate
						found = true
					}
				}
			}
		}
	}
	return best, bestObj, found
}

// adjacentToNeighbor reports whether inserting idx at dstPos in target
// would place it next to (immediately before or after) one of idx's
// restricted nearest neighbors.
func (op orOptOperator) adjacentToNeighbor(idx int, target []int, dstPos int) bool {
	if dstPos-1 >= 0 && op.neighbors.IsNeighbor(idx, target[dstPos-1]) {
		return true
	}
	if dstPos < len(target) && op.neighbors.IsNeighbor(idx, target[dstPos]) {
		return true
	}
	return false
}
