package transit

// ID is a stable handle returned by a Register* call. IDs are never reused
// within the lifetime of a Registry.
type ID int

// Kind identifies which callback shape an ID was registered with.
type Kind int

const (
	// Unary callbacks depend only on the source index (spec.md §4.1).
	Unary Kind = iota
	// Binary callbacks depend on both source and destination index.
	Binary
	// StateDependent callbacks return a pair of range functions over a
	// parent dimension's cumul domain.
	StateDependent
)

// RangeFunc evaluates a function's min and max over a bounded domain
// [lo, hi] of a parent dimension's cumul variable (spec.md §4.1: "a range
// function over parent cumul"). Implementations must be defined for every
// lo <= hi the caller may pass.
type RangeFunc func(lo, hi int64) (min, max int64)

// shiftedByIdentity derives "f+id" from f: f+id(x) = f(x) + x (spec.md
// §4.1). Over a range [lo, hi] this conservatively widens by the
// endpoints, which is exact when f is non-decreasing (the common case for
// state-dependent transit waiting-time style functions) and safe
// (non-tightening) otherwise.
func shiftedByIdentity(f RangeFunc) RangeFunc {
	return func(lo, hi int64) (int64, int64) {
		mn, mx := f(lo, hi)
		return mn + lo, mx + hi
	}
}

type pairKey struct{ from, to int }

// Registry registers and memoizes the three transit callback shapes of
// spec.md §4.1. The zero value is not usable; construct with NewRegistry.
type Registry struct {
	kinds []Kind

	unary  []func(from int) int64
	binary []func(from, to int) int64
	stateD []func(from, to int) (RangeFunc, RangeFunc)

	// localIndex[id] is the index into the per-kind slice above for id.
	localIndex []int

	binaryCache []map[pairKey]int64
	stateCache  []map[pairKey][2]RangeFunc
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterUnary registers a source-only transit callback and returns its
// stable id.
func (r *Registry) RegisterUnary(f func(from int) int64) ID {
	id := ID(len(r.kinds))
	r.kinds = append(r.kinds, Unary)
	r.localIndex = append(r.localIndex, len(r.unary))
	r.unary = append(r.unary, f)
	return id
}

// RegisterBinary registers an arc transit callback and returns its stable
// id. Results are memoized per (from, to) pair on first evaluation.
func (r *Registry) RegisterBinary(f func(from, to int) int64) ID {
	id := ID(len(r.kinds))
	r.kinds = append(r.kinds, Binary)
	r.localIndex = append(r.localIndex, len(r.binary))
	r.binary = append(r.binary, f)
	r.binaryCache = append(r.binaryCache, make(map[pairKey]int64))
	return id
}

// RegisterStateDependent registers a state-dependent transit callback
// returning (f, f+id) range functions over a parent dimension's cumul
// domain, and returns its stable id. The (f, f+id) pair is memoized per
// (from, to) pair on first closure (spec.md §4.1, Design Notes §9).
func (r *Registry) RegisterStateDependent(f func(from, to int) (RangeFunc, RangeFunc)) ID {
	id := ID(len(r.kinds))
	r.kinds = append(r.kinds, StateDependent)
	r.localIndex = append(r.localIndex, len(r.stateD))
	r.stateD = append(r.stateD, f)
	r.stateCache = append(r.stateCache, make(map[pairKey][2]RangeFunc))
	return id
}

// KindOf returns the registration shape of id.
func (r *Registry) KindOf(id ID) Kind {
	return r.kinds[id]
}

// Value evaluates a Unary or Binary callback for arc (from, to). Calling
// Value on a StateDependent id panics — use StateFunctions instead, since
// a state-dependent transit has no single int64 value without a cumul
// domain to evaluate against.
func (r *Registry) Value(id ID, from, to int) int64 {
	switch r.kinds[id] {
	case Unary:
		return r.unary[r.localIndex[id]](from)
	case Binary:
		idx := r.localIndex[id]
		key := pairKey{from, to}
		if v, ok := r.binaryCache[idx][key]; ok {
			return v
		}
		v := r.binary[idx](from, to)
		r.binaryCache[idx][key] = v
		return v
	default:
		panic("transit: Value called on a state-dependent callback id")
	}
}

// StateFunctions returns the memoized (f, f+id) range-function pair for a
// StateDependent id over arc (from, to), closing over the callback on
// first request.
func (r *Registry) StateFunctions(id ID, from, to int) (f, fPlusID RangeFunc) {
	idx := r.localIndex[id]
	key := pairKey{from, to}
	if pair, ok := r.stateCache[idx][key]; ok {
		return pair[0], pair[1]
	}
	base, plusID := r.stateD[idx](from, to)
	if plusID == nil {
		plusID = shiftedByIdentity(base)
	}
	r.stateCache[idx][key] = [2]RangeFunc{base, plusID}
	return base, plusID
}
