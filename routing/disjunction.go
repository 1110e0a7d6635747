package routing

// AddDisjunction registers a disjunction over indices with the given
// penalty and max_cardinality (spec.md §3, §9(c)): at most maxCardinality
// indices may be active. With penalty == KNoPenalty this upper bound is
// the whole constraint; fewer active indices are not rejected.
// Rejects ill-posed disjunctions where maxCardinality exceeds the index
// count (spec.md §9(c)).
func (m *Model) AddDisjunction(indices []int, penalty int64, maxCardinality int) (DisjunctionIndex, error) {
	if m.closed {
		return 0, ErrModelClosed
	}
	if maxCardinality > len(indices) {
		return 0, ErrIllPosedDisjunction
	}
	for _, i := range indices {
		if err := m.checkIndex(i); err != nil {
			return 0, err
		}
	}
	idx := DisjunctionIndex(len(m.disjunctions))
	m.disjunctions = append(m.disjunctions, disjunction{
		indices:        append([]int(nil), indices...),
		penalty:        penalty,
		maxCardinality: maxCardinality,
	})
	for _, i := range indices {
		m.indexDisjunction[i] = append(m.indexDisjunction[i], idx)
	}
	return idx, nil
}

// AddPickupAndDelivery couples pickup and delivery by same-vehicle
// assignment and route precedence (spec.md §3).
func (m *Model) AddPickupAndDelivery(pickup, delivery int) error {
	if m.closed {
		return ErrModelClosed
	}
	if err := m.checkIndex(pickup); err != nil {
		return err
	}
	if err := m.checkIndex(delivery); err != nil {
		return err
	}
	m.pdPairs = append(m.pdPairs, pdPair{pickup: pickup, delivery: delivery})
	return nil
}

// AddPickupAndDeliverySets couples two parallel alternative sets: any
// chosen pickups[k] must pair with deliveries[k] (spec.md §6
// "AddPickupAndDeliverySets").
func (m *Model) AddPickupAndDeliverySets(pickups, deliveries []int) error {
	if len(pickups) != len(deliveries) {
		return ErrVehicleTransitLength
	}
	for k := range pickups {
		if err := m.AddPickupAndDelivery(pickups[k], deliveries[k]); err != nil {
			return err
		}
	}
	return nil
}

// SetPickupAndDeliveryPolicyOfVehicle sets vehicle v's pickup/delivery
// nesting policy (spec.md §3).
func (m *Model) SetPickupAndDeliveryPolicyOfVehicle(v int, policy PDPolicy) {
	if m.checkVehicle(v) != nil {
		return
	}
	m.pdPolicy[v] = policy
}

// SetVisitType assigns a nonnegative visit type to index (spec.md §3
// "Visit types & incompatibilities").
func (m *Model) SetVisitType(index, typ int) {
	if m.checkIndex(index) != nil {
		return
	}
	m.visitType[index] = typ
}

// AddTypeIncompatibility forbids typeA and typeB from coexisting on the
// same vehicle.
func (m *Model) AddTypeIncompatibility(typeA, typeB int) {
	a, b := typeA, typeB
	if a > b {
		a, b = b, a
	}
	m.typeIncompatibility[[2]int{a, b}] = true
}

// TypesIncompatible reports whether typeA and typeB were registered as
// incompatible.
func (m *Model) TypesIncompatible(typeA, typeB int) bool {
	a, b := typeA, typeB
	if a > b {
		a, b = b, a
	}
	return m.typeIncompatibility[[2]int{a, b}]
}

// VisitType returns index's registered visit type, or 0 if none was set.
func (m *Model) VisitType(index int) int { return m.visitType[index] }

// Disjunctions returns every registered disjunction's indices, penalty
// and max cardinality, in registration order.
func (m *Model) Disjunctions() []struct {
	Indices        []int
	Penalty        int64
	MaxCardinality int
} {
	out := make([]struct {
		Indices        []int
		Penalty        int64
		MaxCardinality int
	}, len(m.disjunctions))
	for i, d := range m.disjunctions {
		out[i].Indices = d.indices
		out[i].Penalty = d.penalty
		out[i].MaxCardinality = d.maxCardinality
	}
	return out
}

// PickupDeliveryPairs returns every registered pair in registration order.
func (m *Model) PickupDeliveryPairs() [][2]int {
	out := make([][2]int, len(m.pdPairs))
	for i, p := range m.pdPairs {
		out[i] = [2]int{p.pickup, p.delivery}
	}
	return out
}

// PolicyOfVehicle returns vehicle v's pickup/delivery policy.
func (m *Model) PolicyOfVehicle(v int) PDPolicy {
	if m.checkVehicle(v) != nil {
		return PDPolicyAny
	}
	return m.pdPolicy[v]
}
