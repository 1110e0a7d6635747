// Package vrproute is the root of a Vehicle Routing Problem (VRP) modeling
// and constraint-programming-backed local search library.
//
// A caller builds a routing.Model over an indexmanager.Manager, registers
// transit.Registry callbacks, declares dimension.Dimensions and
// disjunctions, then calls Model.Solve to drive a search.Orchestrator
// through a first-solution builder (package firstsolution) guarded by
// local-search filters (package lsfilter), followed by neighborhood-based
// local search and, after each improving solution, a cumullp.Optimizer
// pass that tightens cumul values for a fixed route.
//
// Package layout, leaves first:
//
//	indexmanager/   node<->variable-index bijection
//	transit/        transit callback registry (unary/binary/state-dependent)
//	dimension/      cumul/transit/slack variables, span & soft-bound costs
//	breaks/         generic disjunctive (edge-finding) interval propagator
//	routing/        the Model: classes, disjunctions, pickup/delivery, cost
//	lsfilter/       incremental feasibility filters over route deltas
//	firstsolution/  filtered first-solution construction heuristics
//	cumullp/        per-route cumul LP optimizer
//	search/         metaheuristic orchestrator, neighborhoods, limits
//
// The underlying generic constraint-programming solver (IntVar/IntervalVar
// domain propagation, decision-builder plumbing), solution serialization
// beyond the documented tuple form, CLI flags, and parameter-proto loading
// are out of scope: this library only interfaces with those concerns.
package vrproute
