package routing

import (
	"go.uber.org/zap"

	"github.com/arcrouting/vrproute/dimension"
	"github.com/arcrouting/vrproute/indexmanager"
	"github.com/arcrouting/vrproute/lsfilter"
	"github.com/arcrouting/vrproute/search"
	"github.com/arcrouting/vrproute/transit"
)

// Model is the central VRP model (spec.md §3): the next/vehicle/active
// path variables, registered dimensions, disjunctions, pickup/delivery
// pairs, and the derived classes and cost expression built at Close.
type Model struct {
	im  *indexmanager.Manager
	reg *transit.Registry

	next    []int
	vehicle []int
	active  []int

	closed bool
	params search.Parameters

	dimensions     map[string]*dimension.Dimension
	dimensionOrder []string
	depParent      map[string]string // dependent dimension name -> parent name

	disjunctions    []disjunction
	indexDisjunction map[int][]DisjunctionIndex

	pdPairs        []pdPair
	pdPolicy       []PDPolicy // per vehicle

	arcCostEval      []transit.ID // per vehicle; -1 until set
	allVehiclesEval  transit.ID
	allVehiclesEvalSet bool
	fixedCost        []int64
	amortLinear      []int64
	amortQuadratic   []int64

	visitType          map[int]int
	typeIncompatibility map[[2]int]bool

	costClasses    []costClass
	vehicleClasses []vehicleClass
	vehicleCostClass   []int
	vehicleVehicleClass []int
	homogeneous    bool

	filterChain *lsfilter.FilterChain // built once at CloseModel time

	costValue int64 // last committed solution's total cost (CostVar)

	logger *zap.Logger // never nil; defaults to zap.NewNop()
}

// NewModel builds an open Model over im, using reg to evaluate registered
// transit callbacks.
func NewModel(im *indexmanager.Manager, reg *transit.Registry) *Model {
	n := im.Size() + im.NumVehicles()
	v := im.NumVehicles()

	m := &Model{
		im:                  im,
		reg:                 reg,
		next:                make([]int, n),
		vehicle:             make([]int, n),
		active:              make([]int, n),
		dimensions:          make(map[string]*dimension.Dimension),
		depParent:           make(map[string]string),
		indexDisjunction:    make(map[int][]DisjunctionIndex),
		pdPolicy:            make([]PDPolicy, v),
		arcCostEval:         make([]transit.ID, v),
		fixedCost:           make([]int64, v),
		amortLinear:         make([]int64, v),
		amortQuadratic:      make([]int64, v),
		visitType:           make(map[int]int),
		typeIncompatibility: make(map[[2]int]bool),
		vehicleCostClass:    make([]int, v),
		vehicleVehicleClass: make([]int, v),
		logger:              zap.NewNop(),
	}

	for i := 0; i < n; i++ {
		m.next[i] = i
		m.vehicle[i] = -1
		m.active[i] = 0
	}
	for vv := 0; vv < v; vv++ {
		s, e := im.Start(vv), im.End(vv)
		m.active[s] = 1
		m.vehicle[s] = vv
		m.vehicle[e] = vv
		m.next[e] = e
		m.arcCostEval[vv] = -1
	}
	return m
}

// Size returns the count of path indices (spec.md §3, == indexmanager's
// Size()).
func (m *Model) Size() int { return m.im.Size() }

// NumVehicles returns the fleet size.
func (m *Model) NumVehicles() int { return m.im.NumVehicles() }

// Start returns vehicle v's start index.
func (m *Model) Start(v int) int { return m.im.Start(v) }

// End returns vehicle v's end index.
func (m *Model) End(v int) int { return m.im.End(v) }

// IsStart reports whether i is a dedicated vehicle-start index.
func (m *Model) IsStart(i int) bool { return m.im.IsStart(i) }

// IsEnd reports whether i is a dedicated vehicle-end index (spec.md §3:
// IsEnd(i) <=> i >= Size()).
func (m *Model) IsEnd(i int) bool { return m.im.IsEnd(i) }

// NextVar reads next(i); -1 has no meaning here (next is always a valid
// index, equal to i itself when i is inactive, per spec.md §3 I1).
func (m *Model) NextVar(i int) int { return m.next[i] }

// VehicleVar reads vehicle(i); -1 means inactive.
func (m *Model) VehicleVar(i int) int { return m.vehicle[i] }

// ActiveVar reads active(i) as 0 or 1.
func (m *Model) ActiveVar(i int) int { return m.active[i] }

// CostVar returns the last committed solution's total cost (spec.md §6
// Inspection API), 0 before the first successful Solve/SolveFromAssignment.
func (m *Model) CostVar() int64 { return m.costValue }

// GetDimensionOrNil returns the named dimension, or nil if unregistered.
func (m *Model) GetDimensionOrNil(name string) *dimension.Dimension {
	return m.dimensions[name]
}

// DimensionNames returns every registered dimension's name in registration
// order (lsfilter.Model interface: one PathCumulFilter per dimension).
func (m *Model) DimensionNames() []string {
	return append([]string(nil), m.dimensionOrder...)
}

// PolicyCode returns vehicle v's pickup/delivery policy as a plain int
// (lsfilter.Model interface, which cannot reference routing's PDPolicy type
// without importing routing and reintroducing the cycle it was built to
// avoid). The encoding matches PDPolicy's own iota values.
func (m *Model) PolicyCode(v int) int {
	return int(m.PolicyOfVehicle(v))
}

func (m *Model) checkVehicle(v int) error {
	if v < 0 || v >= m.NumVehicles() {
		return ErrVehicleOutOfRange
	}
	return nil
}

func (m *Model) checkIndex(i int) error {
	if i < 0 || i >= m.Size()+m.NumVehicles() {
		return ErrIndexOutOfRange
	}
	return nil
}

// SetLogger installs l for Close/Solve diagnostics (nil restores the
// no-op default). vrproute never builds its own logging framework — it
// only ever calls through the logger the caller supplies.
func (m *Model) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	m.logger = l
}
