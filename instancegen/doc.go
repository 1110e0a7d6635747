// Package instancegen synthesizes VRP instances for tests and examples:
// node coordinates, a depot-at-origin convention, a fleet of identical
// vehicles, and a Euclidean (or custom) arc-cost matrix wired through
// package transit as a registered binary callback.
//
// Adapted from lvlath/builder's Constructor-closure shape
// (Grid/RandomSparse in impl_grid.go/impl_random_sparse.go): each
// generator here is a plain function returning a fully-formed Instance
// rather than mutating a shared *core.Graph, since routing.Model has no
// equivalent "build into an existing value" API, but the same
// validate-fail-fast-then-build-deterministically structure, the same
// functional Option pattern (options.go), and the same
// fixed-trial-order determinism guarantee carry over unchanged.
package instancegen
