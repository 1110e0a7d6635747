// Package costmat provides a dense, row-major arc-cost matrix: a flat
// []int64 storage layout adapted from lvlath/matrix's Dense, specialized
// to the integer arc costs transit.Registry's binary callbacks traffic in
// instead of matrix.Dense's float64. instancegen precomputes one Matrix
// per generated instance and exposes it to transit.Registry.RegisterBinary
// via Matrix.Evaluator, so every pair the registry evaluates (and then
// memoizes) is an O(1) array read rather than a fresh cost computation.
package costmat
