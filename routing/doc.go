// Package routing implements the central VRP Model of spec.md §3/§4.2:
// the next/vehicle/active path variables over an indexmanager.Manager's
// index space, cost-class and vehicle-class derivation, dimensions,
// disjunctions, pickup/delivery pairs, the compiled global cost
// expression, and the Solve/SolveFromAssignment entry points that
// delegate to package search.
//
// Model owns its dimensions and transit registry by value/handle, not by
// pointer cycle: a *dimension.Dimension holds no back-reference to Model,
// matching spec.md §9's "arena-allocated records with integer handles"
// design note. Model.CloseModel runs the five-step close procedure of
// spec.md §4.2 exactly once; the registration calls (AddDimension*,
// AddDisjunction, AddPickupAndDelivery*) check m.closed first and return
// ErrModelClosed after. The Set* cost, policy and visit-type setters do
// not check it.
//
// Grounded on lvlath/tsp/solve.go's validate-then-dispatch Solve shape
// (reused for Solve/SolveFromAssignment). NewModel takes no options; the
// logger is installed afterwards with SetLogger.
package routing
