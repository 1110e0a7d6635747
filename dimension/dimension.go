package dimension

import (
	"github.com/arcrouting/vrproute/indexmanager"
)

// TransitFunc evaluates the transit quantity accrued by traversing the
// arc (from, to) for a self-based Dimension.
type TransitFunc func(from, to int) int64

// DependentTransitFunc evaluates a dependent Dimension's transit from its
// parent Dimension's cumul value at the arc's origin.
type DependentTransitFunc func(parentCumulAtFrom int64, from, to int) int64

// Dimension is a named integer quantity accumulated along every vehicle's
// route (spec.md §4.4), e.g. distance, time, or load.
type Dimension struct {
	Name string

	mgr *indexmanager.Manager

	transit     TransitFunc
	parent      *Dimension
	depTransit  DependentTransitFunc
	selfBased   bool

	Cumul        []int64
	Transit      []int64
	Slack        []int64
	FixedTransit []int64

	cumulMin []int64
	cumulMax []int64
	slackMax []int64

	spanUpperBound  []int64
	spanCostCoef    []int64
	globalSpanCoef  int64

	softUpper map[int]SoftBound
	softLower map[int]SoftBound
	piecewise map[int][]PiecewiseSegment

	vehicleBreaks     map[int][]Break
	nodeVisitTransits map[int]map[int]int64

	pdLimits map[int]func(pickupAlt, deliveryAlt int) int64
}

// NewDimension builds a self-based Dimension: its transit value on arc
// (from, to) is evaluated directly by transit.
func NewDimension(name string, mgr *indexmanager.Manager, transit TransitFunc, cumulMin, cumulMax, slackMax int64) *Dimension {
	d := newBase(name, mgr, cumulMin, cumulMax, slackMax)
	d.transit = transit
	d.selfBased = true
	return d
}

// NewDependentDimension builds a Dimension whose transit is a function of
// parent's cumul value at the arc's origin (spec.md §3 "dependent
// dimensions"). A dimension may depend on itself (a no-op self-loop);
// routing.Model.CloseModel rejects any longer cycle across all dimensions
// registered on the same Model.
func NewDependentDimension(name string, mgr *indexmanager.Manager, parent *Dimension, f DependentTransitFunc, cumulMin, cumulMax, slackMax int64) *Dimension {
	d := newBase(name, mgr, cumulMin, cumulMax, slackMax)
	d.parent = parent
	d.depTransit = f
	return d
}

func newBase(name string, mgr *indexmanager.Manager, cumulMin, cumulMax, slackMax int64) *Dimension {
	// Arrays span the full index space, path indices [0, Size()) plus the
	// dedicated vehicle-end indices [Size(), Size()+NumVehicles()).
	n := mgr.Size() + mgr.NumVehicles()
	d := &Dimension{
		Name:              name,
		mgr:               mgr,
		Cumul:             make([]int64, n),
		Transit:           make([]int64, n),
		Slack:             make([]int64, n),
		FixedTransit:      make([]int64, n),
		cumulMin:          make([]int64, n),
		cumulMax:          make([]int64, n),
		slackMax:          make([]int64, n),
		spanUpperBound:    make([]int64, mgr.NumVehicles()),
		spanCostCoef:      make([]int64, mgr.NumVehicles()),
		softUpper:         make(map[int]SoftBound),
		softLower:         make(map[int]SoftBound),
		piecewise:         make(map[int][]PiecewiseSegment),
		vehicleBreaks:     make(map[int][]Break),
		nodeVisitTransits: make(map[int]map[int]int64),
		pdLimits:          make(map[int]func(int, int) int64),
	}
	for i := 0; i < n; i++ {
		d.cumulMin[i] = cumulMin
		d.cumulMax[i] = cumulMax
		d.slackMax[i] = slackMax
	}
	for v := 0; v < mgr.NumVehicles(); v++ {
		d.spanUpperBound[v] = cumulMax
	}
	return d
}

func (d *Dimension) checkIndex(i int) error {
	if i < 0 || i >= d.mgr.Size()+d.mgr.NumVehicles() {
		return ErrIndexOutOfRange
	}
	return nil
}

func (d *Dimension) checkVehicle(v int) error {
	if v < 0 || v >= d.mgr.NumVehicles() {
		return ErrVehicleOutOfRange
	}
	return nil
}

// TransitBetween evaluates this dimension's transit quantity for arc
// (from, to), using fromIdx's already-computed Cumul value when the
// dimension is dependent.
func (d *Dimension) TransitBetween(fromIdx, from, to int) int64 {
	if d.parent != nil {
		return d.depTransit(d.parent.Cumul[fromIdx], from, to)
	}
	return d.transit(from, to)
}

// Chain enforces spec.md §3's chaining invariant cumul(j) = cumul(i) +
// transit(i) + slack(i) for an arc i -> j already present in Transit/Slack,
// returning ErrChainViolation if it does not hold.
func (d *Dimension) Chain(i, j int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if err := d.checkIndex(j); err != nil {
		return err
	}
	want := d.Cumul[i] + d.Transit[i] + d.Slack[i]
	if d.Cumul[j] != want {
		return ErrChainViolation
	}
	return nil
}

// PropagateChain sets Cumul[j] and records Transit[i]/Slack[i] so that
// Chain(i, j) holds, given the dimension-specific transit value and a
// chosen slack (commonly 0 outside of break scheduling).
func (d *Dimension) PropagateChain(i, j int, transit, slack int64) {
	d.Transit[i] = transit
	d.Slack[i] = slack
	d.Cumul[j] = d.Cumul[i] + transit + slack
}

// forwardCumul computes this dimension's cumul value at every index of
// route without touching Cumul/Transit/Slack: route[0] starts at its own
// lower bound, and each later index is clamped up to its lower bound
// when the running total arrives early, modeling a vehicle waiting for a
// window to open (spec.md §3: slack(i) in [0, slack_max]).
func (d *Dimension) forwardCumul(route []int) []int64 {
	n := len(route)
	if n == 0 {
		return nil
	}
	vals := make([]int64, n)
	vals[0] = d.cumulMin[route[0]]
	for k := 1; k < n; k++ {
		from, to := route[k-1], route[k]
		next := vals[k-1] + d.TransitBetween(from, from, to)
		if lo := d.cumulMin[to]; next < lo {
			next = lo
		}
		vals[k] = next
	}
	return vals
}

// CommitRoute forward-propagates forwardCumul(route) into Cumul/Transit/
// Slack via PropagateChain, so CumulVar and a dependent dimension's
// TransitBetween both see this route's actual accumulated values instead
// of whatever a previously scored route left behind (spec.md §4.4
// "CumulVar... post-solve read").
func (d *Dimension) CommitRoute(route []int) {
	vals := d.forwardCumul(route)
	if len(vals) == 0 {
		return
	}
	d.Cumul[route[0]] = vals[0]
	for k := 0; k+1 < len(route); k++ {
		from, to := route[k], route[k+1]
		transit := d.TransitBetween(from, from, to)
		slack := vals[k+1] - (vals[k] + transit)
		d.PropagateChain(from, to, transit, slack)
	}
}

// ApplyOptimizedValues writes an externally-computed cumul value per
// route index (e.g. from a cumullp.Optimizer pass) into Cumul, deriving
// each consecutive pair's Transit/Slack so Chain continues to hold.
func (d *Dimension) ApplyOptimizedValues(route []int, values map[int]int64) {
	if len(route) == 0 {
		return
	}
	d.Cumul[route[0]] = values[route[0]]
	for k := 0; k+1 < len(route); k++ {
		from, to := route[k], route[k+1]
		transit := d.TransitBetween(from, from, to)
		d.Cumul[to] = values[to]
		d.Transit[from] = transit
		d.Slack[from] = values[to] - (values[from] + transit)
	}
}

// SetCumulVarRange narrows index i's feasible cumul range, e.g. a time
// window or a vehicle's start capacity.
func (d *Dimension) SetCumulVarRange(i int, lo, hi int64) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.cumulMin[i] = lo
	d.cumulMax[i] = hi
	return nil
}

// CumulVar reads index i's current cumul value (post-solve read, spec.md
// §4.4).
func (d *Dimension) CumulVar(i int) int64 {
	return d.Cumul[i]
}

// CumulBounds returns index i's feasible cumul range.
func (d *Dimension) CumulBounds(i int) (lo, hi int64) {
	if d.checkIndex(i) != nil {
		return 0, 0
	}
	return d.cumulMin[i], d.cumulMax[i]
}

// SpanUpperBound returns vehicle v's span upper bound (cumul(end_v) -
// cumul(start_v) <= bound).
func (d *Dimension) SpanUpperBound(v int) int64 {
	if d.checkVehicle(v) != nil {
		return 0
	}
	return d.spanUpperBound[v]
}

// SlackMax returns index i's maximum allowed slack.
func (d *Dimension) SlackMax(i int) int64 {
	if d.checkIndex(i) != nil {
		return 0
	}
	return d.slackMax[i]
}

// SetSpanUpperBoundForVehicle bounds cumul(end_v) - cumul(start_v) <= bound.
func (d *Dimension) SetSpanUpperBoundForVehicle(v int, bound int64) {
	if d.checkVehicle(v) != nil {
		return
	}
	d.spanUpperBound[v] = bound
}

// SetSpanCostCoefficientForVehicle sets coef in coef * (cumul(end_v) -
// cumul(start_v)) added to the vehicle's route cost.
func (d *Dimension) SetSpanCostCoefficientForVehicle(v int, coef int64) {
	if d.checkVehicle(v) != nil {
		return
	}
	d.spanCostCoef[v] = coef
}

// SpanCostCoefficient returns vehicle v's span cost coefficient, 0 if
// none was set or v is out of range.
func (d *Dimension) SpanCostCoefficient(v int) int64 {
	if d.checkVehicle(v) != nil {
		return 0
	}
	return d.spanCostCoef[v]
}

// SetGlobalSpanCostCoefficient sets coef in coef * (max_v cumul(end_v) -
// min_v cumul(start_v)).
func (d *Dimension) SetGlobalSpanCostCoefficient(coef int64) {
	d.globalSpanCoef = coef
}

// SetCumulVarSoftUpperBound installs max(0, cumul(i)-bound) * coef.
func (d *Dimension) SetCumulVarSoftUpperBound(i int, bound, coef int64) {
	if d.checkIndex(i) != nil {
		return
	}
	d.softUpper[i] = SoftBound{Bound: bound, Coef: coef}
}

// SetCumulVarSoftLowerBound installs max(0, bound-cumul(i)) * coef.
func (d *Dimension) SetCumulVarSoftLowerBound(i int, bound, coef int64) {
	if d.checkIndex(i) != nil {
		return
	}
	d.softLower[i] = SoftBound{Bound: bound, Coef: coef}
}

// SetCumulVarPiecewiseLinearCost installs a nondecreasing, nonnegative
// piecewise-linear cost on cumul(i). Segments that violate that shape are
// rejected with ErrNegativeSegment, leaving any earlier cost on i in place.
func (d *Dimension) SetCumulVarPiecewiseLinearCost(i int, segments []PiecewiseSegment) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	if err := validatePiecewise(segments); err != nil {
		return err
	}
	d.piecewise[i] = segments
	return nil
}

// SetPickupToDeliveryLimitFunctionForPair installs L(pickupAlt,
// deliveryAlt) bounding cumul(delivery) - cumul(pickup) for a
// pickup/delivery pair (spec.md §4.4).
func (d *Dimension) SetPickupToDeliveryLimitFunctionForPair(pairIdx int, f func(pickupAlt, deliveryAlt int) int64) {
	d.pdLimits[pairIdx] = f
}

// PickupToDeliveryLimit evaluates the installed limit for pairIdx, if
// any; ok is false when no limit function was registered.
func (d *Dimension) PickupToDeliveryLimit(pairIdx, pickupAlt, deliveryAlt int) (limit int64, ok bool) {
	f, found := d.pdLimits[pairIdx]
	if !found {
		return 0, false
	}
	return f(pickupAlt, deliveryAlt), true
}
