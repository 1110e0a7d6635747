// Package firstsolution builds an initial feasible solution for a VRP
// model before local search improves it (spec.md §4.6).
//
// Every concrete Builder validates candidate insertions through an
// lsfilter.FilterChain rather than trusting its own heuristic blindly,
// mirroring the teacher's "one interface, many interchangeable
// constructive bodies" shape in lvlath/builder/impl_*.go. Builder depends
// on lsfilter.Model (not a concrete *routing.Model) for the same reason
// lsfilter does: package search must reach these constructors without
// ever importing package routing.
package firstsolution
