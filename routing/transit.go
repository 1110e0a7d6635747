package routing

import "github.com/arcrouting/vrproute/transit"

// RegisterTransitCallback registers a binary transit callback and returns
// its stable id (spec.md §6).
func (m *Model) RegisterTransitCallback(f func(from, to int) int64) transit.ID {
	return m.reg.RegisterBinary(f)
}

// RegisterUnaryTransitCallback registers a unary transit callback.
func (m *Model) RegisterUnaryTransitCallback(f func(from int) int64) transit.ID {
	return m.reg.RegisterUnary(f)
}

// RegisterStateDependentTransitCallback registers a state-dependent
// transit callback (spec.md §4.1).
func (m *Model) RegisterStateDependentTransitCallback(f func(from, to int) (transit.RangeFunc, transit.RangeFunc)) transit.ID {
	return m.reg.RegisterStateDependent(f)
}
