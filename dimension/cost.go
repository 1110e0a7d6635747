package dimension

// SpanCost returns coef_v * (cumul(end) - cumul(start)) for the given
// vehicle, where route holds the visited index sequence including its
// start and end index (spec.md §4.4). When the vehicle's span upper bound
// is positive, a span above it is charged as the bound.
func (d *Dimension) SpanCost(route []int, v int) int64 {
	if len(route) == 0 || d.checkVehicle(v) != nil {
		return 0
	}
	start := route[0]
	end := route[len(route)-1]
	span := d.Cumul[end] - d.Cumul[start]
	if d.spanUpperBound[v] > 0 && span > d.spanUpperBound[v] {
		span = d.spanUpperBound[v]
	}
	return d.spanCostCoef[v] * span
}

// GlobalSpanCost returns coef * (max_v cumul(end_v) - min_v cumul(start_v))
// given every vehicle's start/end index (spec.md §4.4).
func (d *Dimension) GlobalSpanCost(starts, ends []int) int64 {
	if d.globalSpanCoef == 0 || len(starts) == 0 {
		return 0
	}
	maxEnd := d.Cumul[ends[0]]
	minStart := d.Cumul[starts[0]]
	for i := 1; i < len(starts); i++ {
		if d.Cumul[ends[i]] > maxEnd {
			maxEnd = d.Cumul[ends[i]]
		}
		if d.Cumul[starts[i]] < minStart {
			minStart = d.Cumul[starts[i]]
		}
	}
	span := maxEnd - minStart
	if span < 0 {
		span = 0
	}
	return d.globalSpanCoef * span
}

// SoftCost returns the total soft-bound and piecewise-linear cost charged
// against index i's current cumul value (spec.md §4.4).
func (d *Dimension) SoftCost(i int) int64 {
	if d.checkIndex(i) != nil {
		return 0
	}
	return d.SoftCostAt(i, d.Cumul[i])
}

// SoftCostAt evaluates the same soft-bound and piecewise-linear terms as
// SoftCost, against a candidate value rather than index i's currently
// committed Cumul — used by package cumullp to score a value before it is
// written back.
func (d *Dimension) SoftCostAt(i int, value int64) int64 {
	if d.checkIndex(i) != nil {
		return 0
	}
	var cost int64
	if sb, ok := d.softUpper[i]; ok {
		if over := value - sb.Bound; over > 0 {
			cost += over * sb.Coef
		}
	}
	if sb, ok := d.softLower[i]; ok {
		if under := sb.Bound - value; under > 0 {
			cost += under * sb.Coef
		}
	}
	if segs, ok := d.piecewise[i]; ok {
		cost += evalPiecewise(segs, value)
	}
	return cost
}
