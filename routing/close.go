package routing

import (
	"go.uber.org/zap"

	"github.com/arcrouting/vrproute/lsfilter"
	"github.com/arcrouting/vrproute/search"
)

// CloseModel runs the five-step close procedure of spec.md §4.2 with
// default search parameters.
func (m *Model) CloseModel() error {
	return m.CloseModelWithParameters(search.DefaultParameters())
}

// CloseModelWithParameters runs the five-step close procedure of spec.md
// §4.2: (1) cost-class canonicalization, (2) vehicle-class refinement,
// (3) disjunction-penalty wiring (a no-op here since penalties are read
// directly from each disjunction at cost time), (4) global cost
// compilation (also no work at close: Model.cost evaluates the objective
// per call), (5) network freeze. It also rejects dependent-dimension
// cycles first and builds the filter chain.
func (m *Model) CloseModelWithParameters(p search.Parameters) error {
	if m.closed {
		return ErrAlreadyClosed
	}
	if err := m.checkDependencyCycles(); err != nil {
		return err
	}

	m.canonicalizeCostClasses()
	m.refineVehicleClasses()
	if p.Logger == nil {
		p.Logger = m.logger
	}
	m.params = p
	m.filterChain = m.buildFilterChain()

	m.closed = true
	m.logger.Info("model closed",
		zap.Int("size", m.Size()),
		zap.Int("vehicles", m.NumVehicles()),
		zap.Int("cost_classes", len(m.costClasses)),
		zap.Int("vehicle_classes", len(m.vehicleClasses)),
		zap.Int("dimensions", len(m.dimensionOrder)),
		zap.Int("disjunctions", len(m.disjunctions)),
		zap.Bool("homogeneous", m.homogeneous),
	)
	return nil
}

// FilterChain returns the filter chain assembled at CloseModel time, or
// nil if the model is not yet closed. First-solution builders (package
// firstsolution) and the search orchestrator both validate candidate
// routes through this chain.
func (m *Model) FilterChain() *lsfilter.FilterChain { return m.filterChain }

// buildFilterChain assembles the standard filter set of spec.md §4.7 over
// m itself (m satisfies lsfilter.Model structurally): node disjunctions,
// vehicle-var legality, one PathCumulFilter and one VehicleBreaksFilter
// per registered dimension, pickup/delivery ordering, type
// incompatibility, the amortized-cost no-op slot, and the CP-feasibility
// catch-all last.
func (m *Model) buildFilterChain() *lsfilter.FilterChain {
	filters := []lsfilter.Filter{
		lsfilter.NewNodeDisjunctionFilter(m),
		lsfilter.NewVehicleVarFilter(m),
	}
	for _, name := range m.dimensionOrder {
		if f := lsfilter.NewPathCumulFilter(m, name); f != nil {
			filters = append(filters, f)
		}
		filters = append(filters, lsfilter.NewVehicleBreaksFilter(m, name))
	}
	filters = append(filters,
		lsfilter.NewPickupDeliveryFilter(m),
		lsfilter.NewTypeIncompatibilityFilter(m),
		lsfilter.NewVehicleAmortizedCostFilter(m),
		lsfilter.NewCPFeasibilityFilter(m),
	)
	return lsfilter.NewFilterChain(filters...)
}

// checkDependencyCycles walks each dimension's parent chain, rejecting
// anything but a direct self-loop (spec.md §3 "cycles forbidden except a
// self-loop").
func (m *Model) checkDependencyCycles() error {
	for name := range m.depParent {
		visited := map[string]bool{name: true}
		prev, cur := name, m.depParent[name]
		for cur != "" && cur != prev { // cur == prev: a direct self-loop ends the walk
			if visited[cur] {
				return ErrDependencyCycle
			}
			visited[cur] = true
			prev, cur = cur, m.depParent[cur]
		}
	}
	return nil
}

// cost recomputes the total objective for asg independently of whatever
// value the search orchestrator reported, satisfying spec.md §8 (I6).
// Every dimension is committed against each route before its span/soft
// terms are read, so SpanCost/SoftCost/GlobalSpanCost always score the
// route being passed in rather than whatever an earlier candidate left
// in Cumul (dimensionOrder keeps a dependent dimension's parent
// committed first, so TransitBetween reads a contemporaneous value).
func (m *Model) cost(routes [][]int) int64 {
	var total int64
	for v, route := range routes {
		for k := 0; k+1 < len(route); k++ {
			total += m.GetArcCostForVehicle(route[k], route[k+1], v)
		}
		for _, name := range m.dimensionOrder {
			d := m.dimensions[name]
			d.CommitRoute(route)
			total += d.SpanCost(route, v)
			for _, idx := range route {
				total += d.SoftCost(idx)
			}
		}
		total += m.amortizedTerm(v, route)
	}
	total += m.disjunctionPenalty(routes)
	if len(m.dimensionOrder) > 0 {
		starts := make([]int, m.NumVehicles())
		ends := make([]int, m.NumVehicles())
		for v := 0; v < m.NumVehicles(); v++ {
			starts[v] = m.Start(v)
			ends[v] = m.End(v)
		}
		for _, name := range m.dimensionOrder {
			total += m.dimensions[name].GlobalSpanCost(starts, ends)
		}
	}
	return total
}

// disjunctionPenalty sums penalty p for every index in a disjunction that
// is not active in route (spec.md §3: "unperformed indices each add p to
// cost"). A disjunction with penalty == KNoPenalty is not costed here;
// lsfilter.NodeDisjunctionFilter enforces its cardinality bound instead.
func (m *Model) disjunctionPenalty(routes [][]int) int64 {
	inRoute := make(map[int]bool)
	for _, route := range routes {
		for _, idx := range route {
			inRoute[idx] = true
		}
	}
	var total int64
	for _, d := range m.disjunctions {
		if d.penalty < 0 {
			continue
		}
		for _, idx := range d.indices {
			if !inRoute[idx] {
				total += d.penalty
			}
		}
	}
	return total
}
