// Package indexmanager implements the bijection between physical node ids
// and the routing variable-index space described in spec.md §3:
//
//	N = nodes + 2·vehicles − (physical starts + ends)
//
// Every vehicle owns its own start index and its own end index, even when
// several vehicles share a physical depot. A node used as any vehicle's
// start or end gets no regular index of its own, which is what the
// "(physical starts+ends)" subtraction term in the size formula above
// counts (distinct start/end nodes).
//
// Grounded on lvlath/core's arena-style vertex registration (a map from a
// user-facing id to a dense internal slot, built once at construction) —
// adapted here from string vertex ids to integer node ids, and with the
// originating sync.RWMutex dropped: spec.md §5 specifies a single logical
// agent operating on one model at a time, so the extra locking the teacher
// carries for concurrent graph mutation has no job to do here.
package indexmanager
