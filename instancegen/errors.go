package instancegen

import "errors"

var (
	// ErrTooFewVertices indicates a requested node/grid dimension was below
	// the minimum instancegen supports.
	ErrTooFewVertices = errors.New("instancegen: dimension must be >= 1")
	// ErrTooFewVehicles indicates NumVehicles was <= 0.
	ErrTooFewVehicles = errors.New("instancegen: NumVehicles must be >= 1")
	// ErrInvalidProbability indicates an edge/connection probability fell
	// outside [0,1].
	ErrInvalidProbability = errors.New("instancegen: probability must be in [0,1]")
	// ErrNeedRandSource indicates a stochastic generator was invoked
	// without a deterministic seed and a non-degenerate probability.
	ErrNeedRandSource = errors.New("instancegen: rng required for 0 < p < 1")
)
