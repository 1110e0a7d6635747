package indexmanager

import "sort"

// Manager owns the bijection between physical node ids and the routing
// variable-index space (spec.md §3). Nodes that never serve as a vehicle
// start or end each get one dedicated index ("regular" indices); nodes
// that do serve as a start or end contribute no regular index of their
// own — they are represented purely through the per-vehicle start/end
// indices described below. This realizes:
//
//	Size() == (numNodes - distinctStartEndNodes) + numVehicles
//	N      == Size() + numVehicles == numNodes + 2*numVehicles - distinctStartEndNodes
//
// Every vehicle gets its own start index and its own end index, even when
// several vehicles share a physical depot: vehicle(i) must be able to
// differ index-by-index, which a shared index could not represent.
type Manager struct {
	numNodes    int
	numVehicles int
	starts      []int // starts[v] = physical node id
	ends        []int // ends[v]   = physical node id

	size int // index of the first vehicle-end index; indices < size are "path" indices

	nodeToRegular map[int]int   // physical node -> regular index, for nodes never used as start/end
	regularToNode []int         // regular index -> physical node
	nodeToSlots   map[int][]int // physical node -> every index representing it (regular + any start/end)

	vehicleStart []int // vehicle -> start index
	vehicleEnd   []int // vehicle -> end index
	indexVehicle map[int]int // start/end index -> owning vehicle
	indexNode    map[int]int // every index -> physical node id
}

// NewManager builds a Manager for numNodes physical nodes and numVehicles
// vehicles, with starts[v]/ends[v] giving each vehicle's physical start and
// end node. Returns an error for malformed input (spec.md §7 "invalid
// parameter"); never panics on user input.
func NewManager(numNodes, numVehicles int, starts, ends []int) (*Manager, error) {
	if numVehicles <= 0 {
		return nil, ErrNoVehicles
	}
	if numNodes < 0 {
		return nil, ErrNegativeNodes
	}
	if len(starts) != numVehicles || len(ends) != numVehicles {
		return nil, ErrStartsEndsLength
	}
	for _, n := range starts {
		if n < 0 || n >= numNodes {
			return nil, ErrNodeOutOfRange
		}
	}
	for _, n := range ends {
		if n < 0 || n >= numNodes {
			return nil, ErrNodeOutOfRange
		}
	}

	m := &Manager{
		numNodes:     numNodes,
		numVehicles:  numVehicles,
		starts:       append([]int(nil), starts...),
		ends:         append([]int(nil), ends...),
		nodeToSlots:  make(map[int][]int),
		indexVehicle: make(map[int]int),
		indexNode:    make(map[int]int),
	}

	startEndNode := make(map[int]bool)
	for _, n := range starts {
		startEndNode[n] = true
	}
	for _, n := range ends {
		startEndNode[n] = true
	}

	// Assign regular indices to every node not used as any vehicle's
	// start/end, in ascending node-id order for determinism.
	plain := make([]int, 0, numNodes)
	for n := 0; n < numNodes; n++ {
		if !startEndNode[n] {
			plain = append(plain, n)
		}
	}
	sort.Ints(plain)

	m.nodeToRegular = make(map[int]int, len(plain))
	m.regularToNode = make([]int, len(plain))
	for idx, node := range plain {
		m.nodeToRegular[node] = idx
		m.regularToNode[idx] = node
		m.indexNode[idx] = node
		m.nodeToSlots[node] = append(m.nodeToSlots[node], idx)
	}

	m.size = len(plain) + numVehicles
	m.vehicleStart = make([]int, numVehicles)
	m.vehicleEnd = make([]int, numVehicles)
	for v := 0; v < numVehicles; v++ {
		startIdx := len(plain) + v
		endIdx := m.size + v
		m.vehicleStart[v] = startIdx
		m.vehicleEnd[v] = endIdx
		m.indexVehicle[startIdx] = v
		m.indexVehicle[endIdx] = v
		m.indexNode[startIdx] = starts[v]
		m.indexNode[endIdx] = ends[v]
		m.nodeToSlots[starts[v]] = append(m.nodeToSlots[starts[v]], startIdx)
		m.nodeToSlots[ends[v]] = append(m.nodeToSlots[ends[v]], endIdx)
	}

	return m, nil
}

// Size returns the count of "path" indices (spec.md §3: i < Size()). End
// indices occupy [Size(), Size()+NumVehicles()).
func (m *Manager) Size() int { return m.size }

// NumVehicles returns the number of vehicles.
func (m *Manager) NumVehicles() int { return m.numVehicles }

// NumNodes returns the number of physical nodes.
func (m *Manager) NumNodes() int { return m.numNodes }

// IsEnd reports whether i is one of the dedicated vehicle-end indices.
func (m *Manager) IsEnd(i int) bool { return i >= m.size }

// IsStart reports whether i is one of the dedicated vehicle-start indices.
func (m *Manager) IsStart(i int) bool {
	for _, s := range m.vehicleStart {
		if s == i {
			return true
		}
	}
	return false
}

// Start returns vehicle v's start index.
func (m *Manager) Start(v int) int { return m.vehicleStart[v] }

// End returns vehicle v's end index.
func (m *Manager) End(v int) int { return m.vehicleEnd[v] }

// VehicleOfStartOrEnd returns the vehicle owning index i and true, if i is
// a start or end index; otherwise (0, false).
func (m *Manager) VehicleOfStartOrEnd(i int) (int, bool) {
	v, ok := m.indexVehicle[i]
	return v, ok
}

// IndexToNode returns the physical node id represented by index i, or
// ErrIndexOutOfRange if i names no index this Manager produced.
func (m *Manager) IndexToNode(i int) (int, error) {
	node, ok := m.indexNode[i]
	if !ok {
		return 0, ErrIndexOutOfRange
	}
	return node, nil
}

// NodeToIndex returns one index representing node (its regular index if
// it has one, otherwise its first start/end index in vehicle order).
// Use AllNodeIndices to enumerate every index representing a shared
// start/end node. The user-facing, general-purpose index<->node
// translation convenience API is out of scope (spec.md §1); this method
// is the minimal internal surface indexmanager itself needs.
func (m *Manager) NodeToIndex(node int) (int, error) {
	slots, ok := m.nodeToSlots[node]
	if !ok || len(slots) == 0 {
		return 0, ErrUnknownNode
	}
	return slots[0], nil
}

// AllNodeIndices returns every index representing node, in ascending
// order: its regular index (if any) followed by any start/end indices.
func (m *Manager) AllNodeIndices(node int) []int {
	slots := m.nodeToSlots[node]
	out := make([]int, len(slots))
	copy(out, slots)
	sort.Ints(out)
	return out
}
