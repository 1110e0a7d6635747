package transit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_UnaryAndBinary(t *testing.T) {
	r := NewRegistry()
	uid := r.RegisterUnary(func(from int) int64 { return int64(from) * 10 })
	bid := r.RegisterBinary(func(from, to int) int64 { return int64(from + to) })

	require.Equal(t, int64(30), r.Value(uid, 3, 99))
	require.Equal(t, int64(7), r.Value(bid, 3, 4))
}

func TestRegistry_BinaryIsMemoized(t *testing.T) {
	r := NewRegistry()
	calls := 0
	bid := r.RegisterBinary(func(from, to int) int64 {
		calls++
		return int64(from + to)
	})

	for i := 0; i < 5; i++ {
		require.Equal(t, int64(5), r.Value(bid, 2, 3))
	}
	require.Equal(t, 1, calls, "binary callback should be evaluated once per (from,to)")

	// A different pair triggers a fresh evaluation.
	require.Equal(t, int64(6), r.Value(bid, 2, 4))
	require.Equal(t, 2, calls)
}

func TestRegistry_StateDependent(t *testing.T) {
	r := NewRegistry()
	calls := 0
	sid := r.RegisterStateDependent(func(from, to int) (RangeFunc, RangeFunc) {
		calls++
		base := func(lo, hi int64) (int64, int64) { return lo / 2, hi / 2 }
		return base, nil // nil -> derive f+id automatically
	})

	f, fPlusID := r.StateFunctions(sid, 0, 1)
	mn, mx := f(10, 20)
	require.Equal(t, int64(5), mn)
	require.Equal(t, int64(10), mx)

	mn2, mx2 := fPlusID(10, 20)
	require.Equal(t, int64(5+10), mn2)
	require.Equal(t, int64(10+20), mx2)

	// Memoized: second call for the same arc does not re-invoke the callback.
	_, _ = r.StateFunctions(sid, 0, 1)
	require.Equal(t, 1, calls)
}

func TestRegistry_ValuePanicsOnStateDependent(t *testing.T) {
	r := NewRegistry()
	sid := r.RegisterStateDependent(func(from, to int) (RangeFunc, RangeFunc) {
		return func(lo, hi int64) (int64, int64) { return lo, hi }, nil
	})
	require.Panics(t, func() { r.Value(sid, 0, 1) })
}
