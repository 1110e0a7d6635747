// Package dimension implements the per-index cumul/transit/slack
// accumulation described in spec.md §4.4: a Dimension installs the
// chaining invariant cumul(j) = cumul(i) + transit(i) + slack(i) along
// next(i)=j arcs, and layers vehicle span bounds, span and global-span
// costs, soft upper/lower bounds, a piecewise-linear cumul cost, vehicle
// break scheduling (delegated to package breaks), and pickup-to-delivery
// limit functions on top of it.
//
// Cumul/Transit/Slack/FixedTransit are flat []int64 slices indexed by the
// same index space indexmanager.Manager exposes, grounded on
// lvlath/matrix/dense.go's flat-array-over-struct-slice layout for cache
// locality. Bound-scanning (Chain) follows the single-pass
// invariant-scan idiom of lvlath/tsp/validate.go's ValidateTour.
//
// A Dimension built with NewDependentDimension computes its transit from
// another Dimension's Cumul rather than from its own registered callback;
// routing.Model.CloseModel checks the resulting dependency graph for
// cycles across every registered Dimension.
package dimension
