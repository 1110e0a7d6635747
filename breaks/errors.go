package breaks

import "errors"

// Sentinel errors for the breaks package. ErrTimeLimit reuses the naming
// of lvlath/tsp/bb.go's governance sentinels.
var (
	// ErrInfeasible is returned when Propagate proves no task schedule can
	// satisfy the given bounds (an overload detected by edge-finding, a
	// precedence pushing StartMin past EndMax, or similar).
	ErrInfeasible = errors.New("breaks: task set is infeasible")

	// ErrTimeLimit names an exhausted propagation budget. Propagate runs
	// without an iteration budget and does not return this error.
	ErrTimeLimit = errors.New("breaks: propagation time budget exceeded")

	// ErrNegativeDuration indicates a task's DurationMin was negative.
	ErrNegativeDuration = errors.New("breaks: task duration must be >= 0")
)
