// Package cumullp finalizes optimal per-dimension cumul values along a
// fixed route (spec.md §4.8), given that the route's arc sequence — and
// hence which dimension-transit and slack bounds apply — is already
// decided.
//
// Optimizer takes no routing model: Dimension already exposes every
// quantity per-index (TransitBetween, CumulBounds, SlackMax,
// SpanUpperBound, SpanCostCoefficient, SoftCostAt), so keeping Optimizer
// routing-free lets package search reach it without ever importing
// package routing — the same layering rationale as packages lsfilter and
// firstsolution.
package cumullp
