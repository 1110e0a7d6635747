// Package breaks implements the disjunctive (edge-finding) interval
// propagator of spec.md §4.5: given a set of tasks — a precedence chain
// plus free-standing tasks, each with a release time, minimum duration, a
// deadline, an optional preemptible flag, and forbidden intervals —
// Propagate tightens every task's StartMin and lowers every task's EndMax,
// reporting infeasibility when no assignment can satisfy the bounds.
//
// The package is intentionally independent of the routing/dimension types:
// spec.md describes it as "the specialized disjunctive propagator" used by
// vehicle break scheduling, but its algorithm (precedence propagation,
// mirrored symmetric pass, edge-finding, detectable precedences against a
// precedence chain, forbidden-interval pushing) has no dependency on VRP
// concepts — package dimension calls Propagate with a Tasks value built
// from its own break/visit-transit bookkeeping. Edge-finding computes each
// envelope by direct enumeration; no Vilim θ-λ-tree is built.
//
// Naming of the sentinels follows lvlath/tsp/bb.go (ErrTimeLimit is
// declared, but Propagate has no iteration budget and never returns it);
// the single envelope pass per prefix follows
// lvlath/tsp/bound_onetree.go's single-pass bound computation.
package breaks
