package firstsolution

import (
	"github.com/arcrouting/vrproute/lsfilter"
)

// Builder constructs an initial set of routes, one per vehicle, validating
// every tentative insertion through chain before committing it (spec.md
// §4.6).
type Builder interface {
	Build(m lsfilter.Model, chain *lsfilter.FilterChain) ([][]int, error)
}

// IntVarFilteredDecisionBuilder is the shared commit/reject bookkeeping
// embedded by every concrete Builder: a staged delta is validated through
// chain, merged into routes on acceptance, and discarded (counted) on
// rejection — the teacher's "accumulate then validate" shape generalized
// from a single int-var assignment to the whole routes slice this module
// actually needs.
type IntVarFilteredDecisionBuilder struct {
	m      lsfilter.Model
	chain  *lsfilter.FilterChain
	routes [][]int

	RejectedCount int
}

// NewIntVarFilteredDecisionBuilder seeds routes with m's trivial
// start/end-only paths.
func NewIntVarFilteredDecisionBuilder(m lsfilter.Model, chain *lsfilter.FilterChain) *IntVarFilteredDecisionBuilder {
	routes := make([][]int, m.NumVehicles())
	for v := 0; v < m.NumVehicles(); v++ {
		routes[v] = []int{m.Start(v), m.End(v)}
	}
	return &IntVarFilteredDecisionBuilder{m: m, chain: chain, routes: routes}
}

// Routes returns the builder's current committed routes.
func (b *IntVarFilteredDecisionBuilder) Routes() [][]int { return b.routes }

// TryInsert stages index into vehicle v's route at position pos (before
// routes[v][pos]) and commits only if chain accepts the resulting full
// route set.
func (b *IntVarFilteredDecisionBuilder) TryInsert(v, pos, index int) bool {
	candidate := insertAt(b.routes[v], pos, index)
	trial := append([][]int(nil), b.routes...)
	trial[v] = candidate

	d := lsfilter.Delta{Model: b.m, Changed: changedFromRoutes(trial)}
	if _, ok := b.chain.Accept(d); !ok {
		b.RejectedCount++
		return false
	}
	b.routes[v] = candidate
	b.chain.Synchronize(changedFromRoutes(b.routes))
	return true
}

func insertAt(route []int, pos, index int) []int {
	out := make([]int, 0, len(route)+1)
	out = append(out, route[:pos]...)
	out = append(out, index)
	out = append(out, route[pos:]...)
	return out
}

func changedFromRoutes(routes [][]int) map[int]int {
	changed := make(map[int]int)
	for _, route := range routes {
		for k := 0; k+1 < len(route); k++ {
			changed[route[k]] = route[k+1]
		}
	}
	return changed
}

// RoutingFilteredDecisionBuilder embeds the base builder and pre-fixes any
// already-locked partial routes (spec.md §9) before a concrete
// constructive strategy fills the remainder. "Locked" here means any
// route handed in with more than its bare start/end pair.
type RoutingFilteredDecisionBuilder struct {
	*IntVarFilteredDecisionBuilder
}

// NewRoutingFilteredDecisionBuilder seeds from preRouted (nil entries fall
// back to a trivial start/end path).
func NewRoutingFilteredDecisionBuilder(m lsfilter.Model, chain *lsfilter.FilterChain, preRouted [][]int) *RoutingFilteredDecisionBuilder {
	b := NewIntVarFilteredDecisionBuilder(m, chain)
	for v, route := range preRouted {
		if v >= len(b.routes) {
			break
		}
		if len(route) >= 2 {
			b.routes[v] = append([]int(nil), route...)
		}
	}
	return &RoutingFilteredDecisionBuilder{IntVarFilteredDecisionBuilder: b}
}

// unroutedCandidates returns every path index not already present in
// routes and not a dedicated vehicle-start index (starts are pre-seeded).
func unroutedCandidates(m lsfilter.Model, routes [][]int) []int {
	inRoute := make(map[int]bool)
	for _, route := range routes {
		for _, idx := range route {
			inRoute[idx] = true
		}
	}
	isStart := make(map[int]bool, m.NumVehicles())
	for v := 0; v < m.NumVehicles(); v++ {
		isStart[m.Start(v)] = true
	}
	var out []int
	for i := 0; i < m.Size(); i++ {
		if !inRoute[i] && !isStart[i] {
			out = append(out, i)
		}
	}
	return out
}
