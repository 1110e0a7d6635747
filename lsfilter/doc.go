// Package lsfilter evaluates candidate local-search moves against a VRP
// model's invariants before they are committed (spec.md §4.6/§4.7).
//
// A Filter never mutates the model it inspects; it only answers whether a
// proposed Delta keeps every invariant it is responsible for. FilterChain
// runs registered filters in order and stops at the first rejection,
// mirroring the short-circuit validation pattern in
// lvlath/tsp/validate.go.
//
// lsfilter deliberately depends on its own narrow Model interface rather
// than a concrete routing.Model: package search (later in the dependency
// chain) must reach FilterChain without ever importing package routing,
// since routing already imports search to run the orchestrator. Declaring
// the interface here, with routing.Model satisfying it structurally,
// keeps both edges acyclic.
package lsfilter
