// Package search implements the search orchestrator of spec.md §4.9: a
// first-solution builder followed by a local-search phase over a
// neighborhood operator set, driven by an optional metaheuristic and
// bounded by a SearchLimit.
//
// Orchestrator depends on routing.Model only through the Model interface
// below, so package search never imports package routing: routing.Model
// implements Model and calls into search, not the reverse, breaking the
// cyclic routing<->search dependency the control-flow diagram in spec.md
// §2 implies. Model embeds lsfilter.Model (itself routing-free) so
// Orchestrator can hand the model's lsfilter.FilterChain to firstsolution
// builders without ever seeing a concrete *routing.Model.
package search

import "github.com/arcrouting/vrproute/lsfilter"

// Model is the narrow surface Orchestrator needs from a routing model —
// enough to evaluate arc costs, enumerate vehicles/indices, and build
// filters/builders against, without reaching back into routing-package
// internals.
type Model interface {
	lsfilter.Model // Size, NumVehicles, Start, End, ..., GetArcCostForVehicle

	InitialRoutes() [][]int
	ObjectiveValue(routes [][]int) int64
	FeasibleDelta(routes [][]int) (bool, error)

	// FilterChain returns the chain assembled at close time, reused
	// directly by first-solution builders and local-search neighborhoods
	// instead of Orchestrator re-deriving filters from Model itself.
	FilterChain() *lsfilter.FilterChain
}
