package firstsolution

import "errors"

var (
	// ErrNoFeasibleInsertion indicates every remaining candidate index was
	// rejected at every tried position by the filter chain.
	ErrNoFeasibleInsertion = errors.New("firstsolution: no feasible insertion point found")

	// ErrEmptyModel indicates a Builder was asked to construct a solution
	// for a model with zero vehicles.
	ErrEmptyModel = errors.New("firstsolution: model has no vehicles")
)
