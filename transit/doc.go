// Package transit implements the transit callback registry (spec.md §4.1):
// registration of unary, binary, and state-dependent transit functions,
// each returning a stable integer id, with per-id memoization of already
// evaluated (from, to) pairs.
//
// Grounded on lvlath/builder's stable-id allocation for generated vertices
// (a monotonically increasing counter handed out at registration time,
// never reused) and lvlath/matrix's adjacency caching (a map keyed by the
// pair being queried, populated lazily on first miss).
package transit
