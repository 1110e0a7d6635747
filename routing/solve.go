package routing

import (
	"go.uber.org/zap"

	"github.com/arcrouting/vrproute/lsfilter"
	"github.com/arcrouting/vrproute/search"
)

// InitialRoutes returns one trivial route per vehicle (start, end) with no
// intermediate visits, the starting point for a first-solution builder
// that has not yet inserted any node (search.Model interface).
func (m *Model) InitialRoutes() [][]int {
	routes := make([][]int, m.NumVehicles())
	for v := 0; v < m.NumVehicles(); v++ {
		routes[v] = []int{m.Start(v), m.End(v)}
	}
	return routes
}

// ObjectiveValue recomputes the total cost of routes independently
// (search.Model interface; spec.md §8 I6).
func (m *Model) ObjectiveValue(routes [][]int) int64 { return m.cost(routes) }

// FeasibleDelta runs a cheap necessary-but-not-sufficient feasibility
// pre-check (no non-start/end index on two routes, disjunction cardinalities,
// pickup-before-delivery ordering), then the full lsfilter.FilterChain
// built at CloseModel time (search.Model interface).
func (m *Model) FeasibleDelta(routes [][]int) (bool, error) {
	visited := make(map[int]int, m.Size()+m.NumVehicles())
	for v, route := range routes {
		for _, idx := range route {
			if prior, dup := visited[idx]; dup && prior != v && !m.IsStart(idx) && !m.IsEnd(idx) {
				return false, nil
			}
			visited[idx] = v
		}
	}

	for _, d := range m.disjunctions {
		active := 0
		for _, idx := range d.indices {
			if _, ok := visited[idx]; ok {
				active++
			}
		}
		if active > d.maxCardinality {
			return false, nil
		}
	}

	for _, p := range m.pdPairs {
		pv, pok := visited[p.pickup]
		dv, dok := visited[p.delivery]
		if pok != dok {
			return false, nil // one of the pair is visited without the other
		}
		if !pok {
			continue
		}
		if pv != dv {
			return false, nil
		}
		if !precedesInRoute(routes[pv], p.pickup, p.delivery) {
			return false, nil
		}
	}

	if m.filterChain != nil {
		if _, ok := m.filterChain.Accept(lsfilter.Delta{Model: m, Changed: changedFromRoutes(routes)}); !ok {
			return false, nil
		}
	}
	return true, nil
}

// changedFromRoutes expresses routes as a Delta's Changed map: every
// index's proposed next-value, as if every arc were freshly committed.
// Filters only read proposed values, not whether they differ from the
// model's currently-committed state, so this is a faithful encoding of
// "evaluate this full candidate solution" in Delta terms.
func changedFromRoutes(routes [][]int) map[int]int {
	changed := make(map[int]int)
	for _, route := range routes {
		for k := 0; k+1 < len(route); k++ {
			changed[route[k]] = route[k+1]
		}
	}
	return changed
}

func precedesInRoute(route []int, a, b int) bool {
	for _, idx := range route {
		if idx == a {
			return true
		}
		if idx == b {
			return false
		}
	}
	return false
}

// Solve builds and improves a solution from scratch (spec.md §6).
func (m *Model) Solve(p search.Parameters) (*Assignment, Status) {
	if !m.closed {
		return nil, StatusInvalid
	}
	orch := search.NewOrchestrator(m, p)
	return m.runOrchestrator(orch)
}

// SolveFromAssignment seeds the search with start's routes instead of
// building from scratch (spec.md §6).
func (m *Model) SolveFromAssignment(start *Assignment, p search.Parameters) (*Assignment, Status) {
	if !m.closed {
		return nil, StatusInvalid
	}
	orch := search.NewOrchestrator(m, p)
	orch.Seed(m.AssignmentToRoutes(start))
	return m.runOrchestrator(orch)
}

func (m *Model) runOrchestrator(orch *search.Orchestrator) (*Assignment, Status) {
	m.logger.Info("search started")
	result := orch.Solve()
	switch {
	case result.Err != nil:
		m.logger.Error("search failed", zap.Error(result.Err))
		return nil, StatusInvalid
	case result.TimedOut:
		asg, _ := m.RoutesToAssignment(result.Routes)
		if asg != nil {
			m.commitSolution(result.Routes, asg.Cost)
		}
		m.logger.Warn("search hit its time limit", zap.Int64("objective", m.ObjectiveValue(result.Routes)))
		return asg, StatusFailTimeout
	case !result.OK:
		m.logger.Warn("search found no feasible solution")
		return nil, StatusFail
	default:
		asg, err := m.RoutesToAssignment(result.Routes)
		if err != nil {
			m.logger.Error("search produced an unconvertible solution", zap.Error(err))
			return nil, StatusInvalid
		}
		m.commitSolution(result.Routes, asg.Cost)
		m.logger.Info("search finished", zap.Int64("objective", asg.Cost))
		return asg, StatusSuccess
	}
}

// commitSolution writes routes into next/vehicle/active and records the
// solution's total cost, so NextVar/VehicleVar/ActiveVar/CostVar and
// every registered dimension's CumulVar (already committed as a side
// effect of the RoutesToAssignment/ObjectiveValue cost recomputation
// that produced cost) reflect the solution Solve just returned instead
// of permanently reporting the pre-solve identity state (spec.md §6
// Inspection API).
func (m *Model) commitSolution(routes [][]int, cost int64) {
	n := m.Size() + m.NumVehicles()
	for i := 0; i < n; i++ {
		m.next[i] = i
		m.vehicle[i] = -1
		m.active[i] = 0
	}
	for v, route := range routes {
		if len(route) == 0 {
			continue
		}
		start, end := route[0], route[len(route)-1]
		m.active[start] = 1
		m.vehicle[start] = v
		m.vehicle[end] = v
		for k := 0; k+1 < len(route); k++ {
			m.next[route[k]] = route[k+1]
		}
		for _, idx := range route[1 : len(route)-1] {
			m.vehicle[idx] = v
			m.active[idx] = 1
		}
	}
	m.costValue = cost
}
