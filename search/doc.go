// Package search implements the local-search orchestrator: it builds (or
// accepts a seeded) initial solution via package firstsolution, then
// repeatedly applies a neighborhood operator set (2-opt, Or-opt) under an
// optional metaheuristic acceptance criterion, bounded by a SearchLimit
// (spec.md §4.9).
//
// Every operator scores candidates through Model.ObjectiveValue rather
// than an incremental delta, and Orchestrator checks the one candidate an
// operator returns with Model.FeasibleDelta, keeping acceptance logic
// independent of how any individual operator computes its move.
package search
