package routing

import "errors"

var (
	// ErrModelClosed is returned by AddDimension*, AddDisjunction and
	// AddPickupAndDelivery* once CloseModel has run (spec.md §7
	// "Open/closed violation"); the Set* setters do not return it.
	ErrModelClosed = errors.New("routing: model is closed")

	// ErrAlreadyClosed is returned by CloseModel/CloseModelWithParameters
	// on a second call; Close is otherwise idempotent-safe to call once.
	ErrAlreadyClosed = errors.New("routing: model already closed")

	// ErrUnknownTransitID indicates a transit.ID not registered on this
	// Model's registry.
	ErrUnknownTransitID = errors.New("routing: unknown transit callback id")

	// ErrDuplicateDimensionName indicates AddDimension* was called twice
	// with the same name (spec.md §7 "Registration error").
	ErrDuplicateDimensionName = errors.New("routing: dimension name already registered")

	// ErrUnknownDimension indicates a dimension name has no registered
	// Dimension.
	ErrUnknownDimension = errors.New("routing: unknown dimension name")

	// ErrInvalidCapacity indicates a negative capacity was supplied to an
	// AddDimension* overload.
	ErrInvalidCapacity = errors.New("routing: capacity must be >= 0")

	// ErrVehicleTransitLength indicates a per-vehicle evaluator-id or
	// capacity slice's length did not match NumVehicles().
	ErrVehicleTransitLength = errors.New("routing: per-vehicle slice length must equal NumVehicles()")

	// ErrIllPosedDisjunction indicates AddDisjunction was called with
	// max_cardinality > len(indices) (spec.md §9(c)).
	ErrIllPosedDisjunction = errors.New("routing: disjunction max_cardinality exceeds its index count")

	// ErrVehicleOutOfRange indicates a vehicle id is outside [0, NumVehicles()).
	ErrVehicleOutOfRange = errors.New("routing: vehicle id out of range")

	// ErrIndexOutOfRange indicates a variable index is outside [0, N).
	ErrIndexOutOfRange = errors.New("routing: variable index out of range")

	// ErrDependencyCycle indicates two or more dependent dimensions form a
	// cycle, detected at CloseModel time (spec.md §3).
	ErrDependencyCycle = errors.New("routing: dependent dimension graph has a cycle")

	// ErrNotClosed names the error of solving before CloseModel. No
	// function returns it: Solve/SolveFromAssignment report that case as
	// (nil, StatusInvalid).
	ErrNotClosed = errors.New("routing: model must be closed before solving")

	// ErrInvalidRoute is returned by RoutesToAssignment when the number of
	// routes differs from NumVehicles() or a route has fewer than two
	// indices or does not start/end at its vehicle's indices. Revisits are
	// not checked.
	ErrInvalidRoute = errors.New("routing: invalid route for RoutesToAssignment")

	// ErrMalformedAssignment is returned by ReadAssignment on unparsable
	// input (spec.md §7 "I/O").
	ErrMalformedAssignment = errors.New("routing: malformed assignment stream")
)
