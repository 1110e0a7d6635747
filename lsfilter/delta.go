package lsfilter

// Delta is a candidate local-search move: every index whose next-value
// would change if committed (spec.md §4.6).
type Delta struct {
	Model   Model
	Changed map[int]int // index -> proposed next(index)
}

// nextAfter reads index i's next-value as it would be after applying d,
// falling back to the model's committed value for anything untouched.
func (d Delta) nextAfter(i int) int {
	if v, ok := d.Changed[i]; ok {
		return v
	}
	return d.Model.NextVar(i)
}

// touchedVehicles returns, for every vehicle whose path a changed index
// belongs to, the full start->end path as it would read after applying d.
// BasePathFilter.Accept uses this so path-scoped filters only ever walk
// paths a delta actually modifies (spec.md §4.7 final paragraph).
func touchedVehicles(d Delta) map[int][]int {
	m := d.Model
	touchedV := map[int]bool{}
	for idx := range d.Changed {
		v := m.VehicleVar(idx)
		if v < 0 {
			v = 0 // a not-yet-assigned index defaults to vehicle 0, matching routing's own convention
		}
		touchedV[v] = true
	}

	out := make(map[int][]int, len(touchedV))
	for v := range touchedV {
		start, end := m.Start(v), m.End(v)
		path := []int{start}
		cur := start
		for steps := 0; steps <= m.Size()+m.NumVehicles(); steps++ {
			if cur == end {
				break
			}
			cur = d.nextAfter(cur)
			path = append(path, cur)
		}
		out[v] = path
	}
	return out
}
