package breaks

// Interval is a closed-open time interval [Lo, Hi).
type Interval struct {
	Lo, Hi int64
}

// intersects reports whether [lo, lo+dur) overlaps iv.
func (iv Interval) intersects(lo, dur int64) bool {
	hi := lo + dur
	return lo < iv.Hi && hi > iv.Lo
}

// Task is one schedulable interval in a Tasks set (spec.md §4.5).
type Task struct {
	StartMin    int64
	DurationMin int64
	EndMax      int64
	Preemptible bool
	Forbidden   []Interval
}

// feasible reports whether the task's own bounds are still consistent.
func (t Task) feasible() bool {
	return t.DurationMin >= 0 && t.StartMin+t.DurationMin <= t.EndMax
}

// Tasks is the input to Propagate: NumChainTasks tasks forming a
// precedence chain (ChainTasks, in chain order) plus free-standing
// NonChainTasks (spec.md §4.5).
type Tasks struct {
	ChainTasks    []Task
	NonChainTasks []Task
}

// all returns every task, chain first, as a single slice for passes that
// do not care about chain membership (edge-finding, the final feasibility
// check, the mirror horizon).
func (t *Tasks) all() []Task {
	out := make([]Task, 0, len(t.ChainTasks)+len(t.NonChainTasks))
	out = append(out, t.ChainTasks...)
	out = append(out, t.NonChainTasks...)
	return out
}
