package dimension

import "errors"

var (
	// ErrIndexOutOfRange indicates a variable index passed to a Dimension
	// method is outside [0, Size()+NumVehicles()).
	ErrIndexOutOfRange = errors.New("dimension: variable index out of range")

	// ErrVehicleOutOfRange indicates a vehicle id is outside [0, NumVehicles()).
	ErrVehicleOutOfRange = errors.New("dimension: vehicle id out of range")

	// ErrChainViolation is returned by Chain when the cumul/transit/slack
	// invariant does not hold for the given arc.
	ErrChainViolation = errors.New("dimension: cumul(j) != cumul(i) + transit(i) + slack(i)")

	// ErrCyclicDependency indicates a dependent dimension chain loops back
	// on itself (a dimension may depend on itself trivially as self-based,
	// but any longer cycle is rejected). No function returns it:
	// routing.Model.CloseModel reports such a cycle as
	// routing.ErrDependencyCycle.
	ErrCyclicDependency = errors.New("dimension: dependent dimension graph has a cycle")

	// ErrUnknownPair names an out-of-range pickup/delivery pair index.
	// SetPickupToDeliveryLimitFunctionForPair accepts any pair index and
	// does not return it.
	ErrUnknownPair = errors.New("dimension: pickup/delivery pair index out of range")

	// ErrNegativeSegment indicates a PiecewiseSegment list is not
	// nondecreasing in X or produces a decreasing Y, violating spec.md
	// §4.4's "nondecreasing, nonnegative" requirement.
	ErrNegativeSegment = errors.New("dimension: piecewise segments must be nondecreasing in X and Y and nonnegative")
)
