package routing

import (
	"github.com/arcrouting/vrproute/dimension"
	"github.com/arcrouting/vrproute/transit"
)

// vehicleOfIndex resolves the vehicle a self-based dimension's transit
// closure should evaluate for arc (from, to): the vehicle currently
// assigned to from, defaulting to vehicle 0 before any assignment exists
// (open-phase registration, or an as-yet-uncommitted candidate index).
func (m *Model) vehicleOfIndex(i int) int {
	if v := m.vehicle[i]; v >= 0 {
		return v
	}
	return 0
}

func (m *Model) registerDimension(name string, d *dimension.Dimension) error {
	if m.closed {
		return ErrModelClosed
	}
	if _, exists := m.dimensions[name]; exists {
		return ErrDuplicateDimensionName
	}
	m.dimensions[name] = d
	m.dimensionOrder = append(m.dimensionOrder, name)
	return nil
}

func (m *Model) fixStartsAtZero(d *dimension.Dimension) {
	for v := 0; v < m.NumVehicles(); v++ {
		_ = d.SetCumulVarRange(m.Start(v), 0, 0)
	}
}

// AddDimension adds a homogeneous dimension: every vehicle shares evalID
// as its transit evaluator and capacity as its cumul upper bound (spec.md
// §6 "AddDimension family", homogeneous overload).
func (m *Model) AddDimension(evalID transit.ID, slackMax, capacity int64, fixStart bool, name string) (*dimension.Dimension, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	transitFn := func(from, to int) int64 { return m.reg.Value(evalID, from, to) }
	d := dimension.NewDimension(name, m.im, transitFn, 0, capacity, slackMax)
	if err := m.registerDimension(name, d); err != nil {
		return nil, err
	}
	if fixStart {
		m.fixStartsAtZero(d)
	}
	return d, nil
}

// AddDimensionWithVehicleTransit adds a dimension whose transit evaluator
// varies per vehicle (spec.md §6, per-vehicle-transit overload).
func (m *Model) AddDimensionWithVehicleTransit(evalIDs []transit.ID, slackMax, capacity int64, fixStart bool, name string) (*dimension.Dimension, error) {
	if len(evalIDs) != m.NumVehicles() {
		return nil, ErrVehicleTransitLength
	}
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	transitFn := func(from, to int) int64 {
		return m.reg.Value(evalIDs[m.vehicleOfIndex(from)], from, to)
	}
	d := dimension.NewDimension(name, m.im, transitFn, 0, capacity, slackMax)
	if err := m.registerDimension(name, d); err != nil {
		return nil, err
	}
	if fixStart {
		m.fixStartsAtZero(d)
	}
	return d, nil
}

// AddDimensionWithVehicleCapacity adds a homogeneous-transit dimension
// whose per-vehicle capacity bounds the vehicle's span (spec.md §6,
// per-vehicle-capacity overload). Capacity is realized as a per-vehicle
// span upper bound rather than a per-index cumul bound, since a single
// physical index's cumul range cannot vary by the vehicle that ends up
// visiting it.
func (m *Model) AddDimensionWithVehicleCapacity(evalID transit.ID, slackMax int64, capacities []int64, fixStart bool, name string) (*dimension.Dimension, error) {
	if len(capacities) != m.NumVehicles() {
		return nil, ErrVehicleTransitLength
	}
	maxCap := int64(0)
	for _, c := range capacities {
		if c < 0 {
			return nil, ErrInvalidCapacity
		}
		if c > maxCap {
			maxCap = c
		}
	}
	transitFn := func(from, to int) int64 { return m.reg.Value(evalID, from, to) }
	d := dimension.NewDimension(name, m.im, transitFn, 0, maxCap, slackMax)
	for v, c := range capacities {
		d.SetSpanUpperBoundForVehicle(v, c)
	}
	if err := m.registerDimension(name, d); err != nil {
		return nil, err
	}
	if fixStart {
		m.fixStartsAtZero(d)
	}
	return d, nil
}

// AddDimensionWithVehicleTransitAndCapacity combines per-vehicle transit
// evaluators with per-vehicle capacity (spec.md §6, per-vehicle-both
// overload).
func (m *Model) AddDimensionWithVehicleTransitAndCapacity(evalIDs []transit.ID, slackMax int64, capacities []int64, fixStart bool, name string) (*dimension.Dimension, error) {
	if len(evalIDs) != m.NumVehicles() || len(capacities) != m.NumVehicles() {
		return nil, ErrVehicleTransitLength
	}
	maxCap := int64(0)
	for _, c := range capacities {
		if c < 0 {
			return nil, ErrInvalidCapacity
		}
		if c > maxCap {
			maxCap = c
		}
	}
	transitFn := func(from, to int) int64 {
		return m.reg.Value(evalIDs[m.vehicleOfIndex(from)], from, to)
	}
	d := dimension.NewDimension(name, m.im, transitFn, 0, maxCap, slackMax)
	for v, c := range capacities {
		d.SetSpanUpperBoundForVehicle(v, c)
	}
	if err := m.registerDimension(name, d); err != nil {
		return nil, err
	}
	if fixStart {
		m.fixStartsAtZero(d)
	}
	return d, nil
}

// AddConstantDimension adds a dimension that accrues value on every arc
// (spec.md §6 "Constant ... helper").
func (m *Model) AddConstantDimension(value int64, capacity int64, fixStart bool, name string) (*dimension.Dimension, error) {
	id := m.reg.RegisterBinary(func(from, to int) int64 { return value })
	return m.AddDimension(id, 0, capacity, fixStart, name)
}

// AddVectorDimension adds a dimension that accrues values[to] on arrival
// at to (spec.md §6 "Vector ... helper", e.g. a demand dimension).
func (m *Model) AddVectorDimension(values []int64, capacity int64, fixStart bool, name string) (*dimension.Dimension, error) {
	// Vector dimensions accrue on arrival at the destination node, so this
	// is registered as a binary callback keyed on to rather than a unary
	// one keyed on the source.
	id := m.reg.RegisterBinary(func(from, to int) int64 {
		if to < 0 || to >= len(values) {
			return 0
		}
		return values[to]
	})
	return m.AddDimension(id, 0, capacity, fixStart, name)
}

// AddMatrixDimension adds a dimension that accrues values[from][to] per
// arc (spec.md §6 "Matrix ... helper").
func (m *Model) AddMatrixDimension(values [][]int64, capacity int64, fixStart bool, name string) (*dimension.Dimension, error) {
	id := m.reg.RegisterBinary(func(from, to int) int64 {
		if from < 0 || from >= len(values) {
			return 0
		}
		row := values[from]
		if to < 0 || to >= len(row) {
			return 0
		}
		return row[to]
	})
	return m.AddDimension(id, 0, capacity, fixStart, name)
}

// AddDimensionDependentOnCumul adds a dependent dimension whose transit is
// f(parent.Cumul(from)) (spec.md §3 "dependent dimensions").
func (m *Model) AddDimensionDependentOnCumul(parent *dimension.Dimension, f func(parentCumul int64) int64, slackMax, capacity int64, name string) (*dimension.Dimension, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	wrapped := func(parentCumul int64, from, to int) int64 { return f(parentCumul) }
	d := dimension.NewDependentDimension(name, m.im, parent, wrapped, 0, capacity, slackMax)
	if err := m.registerDimension(name, d); err != nil {
		return nil, err
	}
	m.depParent[name] = parent.Name
	return d, nil
}
