// Package neighbor precomputes, once per model, a sorted nearest-neighbor
// list per index under an arbitrary cost function — the restriction
// search.Parameters.NeighborsRatio applies to local search's Or-opt
// relocation to bound an otherwise O(n) destination scan down to O(k).
// The firstsolution builders do not use it.
//
// Adapted from lvlath/gridgraph's NewGridGraph/NeighborOffsets idiom:
// adjacency is computed once at construction (there, a fixed set of grid
// offsets; here, a per-index sorted cost ranking) and read back in O(1)
// thereafter, rather than recomputed on every query.
package neighbor
