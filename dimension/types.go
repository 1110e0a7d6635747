package dimension

import "github.com/arcrouting/vrproute/breaks"

// PiecewiseSegment is one knot (X, Y) of a nondecreasing, nonnegative
// piecewise-linear cost function over a cumul value (spec.md §4.4).
type PiecewiseSegment struct {
	X, Y int64
}

// SoftBound pairs a bound with its per-unit violation cost coefficient,
// used by both SetCumulVarSoftUpperBound and SetCumulVarSoftLowerBound.
type SoftBound struct {
	Bound int64
	Coef  int64
}

// Break is one schedulable vehicle-break interval (spec.md §4.4
// "Breaks"): StartMin/EndMax bound when the break may occur, DurationMin
// is its fixed length. Break is the public, dimension-facing shape; it is
// translated into a breaks.Task when scheduling is attempted.
type Break struct {
	StartMin    int64
	DurationMin int64
	EndMax      int64
}

func (b Break) task() breaks.Task {
	return breaks.Task{StartMin: b.StartMin, DurationMin: b.DurationMin, EndMax: b.EndMax}
}

// evalPiecewise linearly interpolates segs at x, clamping flat before the
// first knot and after the last (or-tools' PiecewiseLinearFunction
// semantics, spec.md §4.4).
func evalPiecewise(segs []PiecewiseSegment, x int64) int64 {
	if len(segs) == 0 {
		return 0
	}
	if x <= segs[0].X {
		return segs[0].Y
	}
	last := segs[len(segs)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 1; i < len(segs); i++ {
		if x <= segs[i].X {
			lo, hi := segs[i-1], segs[i]
			if hi.X == lo.X {
				return hi.Y
			}
			// Integer-exact linear interpolation, rounding toward lo.Y.
			num := (x - lo.X) * (hi.Y - lo.Y)
			den := hi.X - lo.X
			return lo.Y + num/den
		}
	}
	return last.Y
}

func validatePiecewise(segs []PiecewiseSegment) error {
	for i, s := range segs {
		if s.Y < 0 {
			return ErrNegativeSegment
		}
		if i > 0 {
			if s.X < segs[i-1].X || s.Y < segs[i-1].Y {
				return ErrNegativeSegment
			}
		}
	}
	return nil
}
