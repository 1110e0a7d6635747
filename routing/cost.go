package routing

import (
	"sort"

	"github.com/arcrouting/vrproute/transit"
)

// SetArcCostEvaluatorOfAllVehicles sets every vehicle's arc-cost evaluator
// to id (spec.md §6).
func (m *Model) SetArcCostEvaluatorOfAllVehicles(id transit.ID) {
	m.allVehiclesEval = id
	m.allVehiclesEvalSet = true
	for v := range m.arcCostEval {
		m.arcCostEval[v] = id
	}
}

// SetArcCostEvaluatorOfVehicle sets vehicle v's arc-cost evaluator to id,
// overriding the all-vehicles default for v only.
func (m *Model) SetArcCostEvaluatorOfVehicle(v int, id transit.ID) {
	if m.checkVehicle(v) != nil {
		return
	}
	m.arcCostEval[v] = id
}

// SetFixedCostOfVehicle sets the one-time cost GetArcCostForVehicle adds
// to the arc leaving vehicle v's start, including the direct start->end
// arc of an unused vehicle.
func (m *Model) SetFixedCostOfVehicle(v int, cost int64) {
	if m.checkVehicle(v) != nil {
		return
	}
	m.fixedCost[v] = cost
}

// SetAmortizedCostFactorsOfVehicle sets vehicle v's amortized linear and
// quadratic factors (spec.md §4.2).
func (m *Model) SetAmortizedCostFactorsOfVehicle(v int, linear, quadratic int64) {
	if m.checkVehicle(v) != nil {
		return
	}
	m.amortLinear[v] = linear
	m.amortQuadratic[v] = quadratic
}

// SetAmortizedCostFactorsOfAllVehicles sets every vehicle's amortized
// factors.
func (m *Model) SetAmortizedCostFactorsOfAllVehicles(linear, quadratic int64) {
	for v := range m.amortLinear {
		m.amortLinear[v] = linear
		m.amortQuadratic[v] = quadratic
	}
}

// GetArcCostForVehicle returns raw(i,j,v) plus vehicle v's fixed cost when
// i is v's start (spec.md §4.3); 0 when v is out of range. No per-dimension
// span-cost term is included in the arc value.
func (m *Model) GetArcCostForVehicle(i, j, v int) int64 {
	if v < 0 || v >= m.NumVehicles() {
		return 0
	}
	id := m.arcCostEval[v]
	cost := m.reg.Value(id, i, j)
	// Span-cost contributions are a function of the whole route's cumul
	// span, not of a single arc; they are accumulated once per vehicle via
	// Dimension.SpanCost rather than folded into every arc's raw cost.
	if i == m.Start(v) {
		cost += m.fixedCost[v]
	}
	return cost
}

// GetArcCostForClass returns GetArcCostForVehicle's value for the first
// vehicle mapped to cost class c, without the fixed-cost term (spec.md
// §4.3).
func (m *Model) GetArcCostForClass(i, j int, c CostClassIndex) int64 {
	if int(c) < 0 || int(c) >= len(m.costClasses) {
		return 0
	}
	cc := m.costClasses[int(c)]
	return m.reg.Value(transit.ID(cc.evalID), i, j)
}

// CostsAreHomogeneousAcrossVehicles reports whether every vehicle shares
// one cost class (spec.md §9(b)); only meaningful after CloseModel.
func (m *Model) CostsAreHomogeneousAcrossVehicles() bool { return m.homogeneous }

// canonicalizeCostClasses builds cost_classes_ by canonicalizing each
// vehicle's (evaluator id, sorted dimension span-cost list) (spec.md §4.2
// step 1).
func (m *Model) canonicalizeCostClasses() {
	m.costClasses = nil
	m.vehicleCostClass = make([]int, m.NumVehicles())

	seen := map[string]int{}
	for v := 0; v < m.NumVehicles(); v++ {
		var spans []spanCoefEntry
		for _, name := range m.dimensionOrder {
			d := m.dimensions[name]
			if coef := d.SpanCostCoefficient(v); coef != 0 {
				spans = append(spans, spanCoefEntry{dimension: name, coef: coef})
			}
		}
		sort.Slice(spans, func(a, b int) bool { return spans[a].dimension < spans[b].dimension })

		key := classKey(int(m.arcCostEval[v]), spans)
		idx, ok := seen[key]
		if !ok {
			idx = len(m.costClasses)
			seen[key] = idx
			m.costClasses = append(m.costClasses, costClass{evalID: int(m.arcCostEval[v]), spanCoefs: spans})
		}
		m.vehicleCostClass[v] = idx
	}
	m.homogeneous = len(m.costClasses) <= 1
}

func classKey(evalID int, spans []spanCoefEntry) string {
	key := "e" + itoa(evalID)
	for _, s := range spans {
		key += "|" + s.dimension + "=" + itoa64(s.coef)
	}
	return key
}

func itoa(i int) string  { return itoa64(int64(i)) }
func itoa64(i int64) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// refineVehicleClasses builds vehicle_classes_ using the finer relation:
// same cost class + fixed cost + start/end equivalence (spec.md §4.2 step
// 2, §3 "Vehicle class").
func (m *Model) refineVehicleClasses() {
	m.vehicleClasses = nil
	m.vehicleVehicleClass = make([]int, m.NumVehicles())

	seen := map[string]int{}
	for v := 0; v < m.NumVehicles(); v++ {
		key := itoa(m.vehicleCostClass[v]) + "|" + itoa64(m.fixedCost[v]) + "|" +
			itoa(m.Start(v)) + "|" + itoa(m.End(v))
		idx, ok := seen[key]
		if !ok {
			idx = len(m.vehicleClasses)
			seen[key] = idx
			m.vehicleClasses = append(m.vehicleClasses, vehicleClass{
				costClassIdx: m.vehicleCostClass[v],
				fixedCost:    m.fixedCost[v],
				start:        m.Start(v),
				end:          m.End(v),
			})
		}
		m.vehicleVehicleClass[v] = idx
	}
}

// amortizedTerm returns used(v) * (linear(v) - quadratic(v) * length(v)^2)
// for vehicle v given its visited route (spec.md §4.2). used(v) and
// length(v) are both derived from route itself rather than the model's
// currently committed next-values, so this term is correct for any
// candidate route being scored, not only the last committed solution.
func (m *Model) amortizedTerm(v int, route []int) int64 {
	if m.amortLinear[v] == 0 && m.amortQuadratic[v] == 0 {
		return 0
	}
	length := int64(0)
	for _, idx := range route {
		if !m.IsStart(idx) && !m.IsEnd(idx) {
			length++
		}
	}
	if length == 0 {
		return 0
	}
	return m.amortLinear[v] - m.amortQuadratic[v]*length*length
}
