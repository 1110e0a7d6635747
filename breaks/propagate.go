package breaks

// Propagate runs one non-fixed-point filtering pass over t (spec.md §4.5):
// precedence propagation along the chain, a mirrored pass for the
// symmetric direction, edge-finding overload detection and strengthening,
// detectable-precedences-against-the-chain energy reasoning, and
// forbidden-interval pushing. It tightens StartMin and lowers EndMax
// in place and returns (false, ErrInfeasible) the moment any subroutine
// proves no schedule can satisfy the bounds.
//
// This is a single pass, not iterated to a fixed point: callers that want
// stronger pruning call Propagate repeatedly until it stops changing
// bounds or returns infeasible (the same contract or-tools' equivalent
// filter exposes to its caller).
func Propagate(t *Tasks) (bool, error) {
	for i := range t.ChainTasks {
		if t.ChainTasks[i].DurationMin < 0 {
			return false, ErrNegativeDuration
		}
	}
	for i := range t.NonChainTasks {
		if t.NonChainTasks[i].DurationMin < 0 {
			return false, ErrNegativeDuration
		}
	}

	if ok, err := precedences(t.ChainTasks); !ok {
		return false, err
	}
	if ok, err := forbiddenIntervals(t.ChainTasks); !ok {
		return false, err
	}
	if ok, err := forbiddenIntervals(t.NonChainTasks); !ok {
		return false, err
	}

	all := t.all()
	if ok, err := edgeFinding(all); !ok {
		return false, err
	}
	writeBack(t, all)

	if ok, err := detectablePrecedencesWithChain(t.ChainTasks, t.NonChainTasks); !ok {
		return false, err
	}

	if ok, err := mirrorPass(t); !ok {
		return false, err
	}

	for _, task := range t.all() {
		if !task.feasible() {
			return false, ErrInfeasible
		}
	}
	return true, nil
}

// precedences propagates StartMin forward and EndMax backward along a
// precedence chain (spec.md §4.5 "Precedences").
func precedences(chain []Task) (bool, error) {
	for i := 1; i < len(chain); i++ {
		want := chain[i-1].StartMin + chain[i-1].DurationMin
		if want > chain[i].StartMin {
			chain[i].StartMin = want
		}
		if chain[i].StartMin+chain[i].DurationMin > chain[i].EndMax {
			return false, ErrInfeasible
		}
	}
	for i := len(chain) - 2; i >= 0; i-- {
		want := chain[i+1].EndMax - chain[i+1].DurationMin
		if want < chain[i].EndMax {
			chain[i].EndMax = want
		}
		if chain[i].StartMin+chain[i].DurationMin > chain[i].EndMax {
			return false, ErrInfeasible
		}
	}
	return true, nil
}

// envelope computes max_{S subseteq tasks}(sum duration(S) + min StartMin(S)),
// the standard Theta-tree envelope (spec.md §4.5 "EdgeFinding"), by direct
// enumeration over suffixes of the tasks sorted by StartMin ascending. This trades the
// full Vilim θ-λ-tree's O(n log n) per update for O(k^2) per prefix,
// acceptable for the small per-vehicle break/task counts this package is
// used for (see DESIGN.md).
func envelope(tasks []Task) int64 {
	if len(tasks) == 0 {
		return minInt64
	}
	ordered := append([]Task(nil), tasks...)
	sortByStartMin(ordered)

	best := minInt64
	for i := range ordered {
		sum := int64(0)
		for j := i; j < len(ordered); j++ {
			sum += ordered[j].DurationMin
		}
		cand := ordered[i].StartMin + sum
		if cand > best {
			best = cand
		}
	}
	return best
}

const minInt64 = -1 << 62

func sortByStartMin(tasks []Task) {
	// insertion sort: task lists here are small (per-vehicle break counts).
	for i := 1; i < len(tasks); i++ {
		for j := i; j > 0 && tasks[j].StartMin < tasks[j-1].StartMin; j-- {
			tasks[j], tasks[j-1] = tasks[j-1], tasks[j]
		}
	}
}

func sortByEndMax(tasks []Task) {
	for i := 1; i < len(tasks); i++ {
		for j := i; j > 0 && tasks[j].EndMax < tasks[j-1].EndMax; j-- {
			tasks[j], tasks[j-1] = tasks[j-1], tasks[j]
		}
	}
}

// edgeFinding orders tasks by EndMax and, for every prefix Theta (the
// resource's disjunctive set of tasks with deadline <= lct(Theta)), checks
// for overload and strengthens StartMin of any task j outside Theta that
// Theta∪{j} proves must run entirely after Theta (spec.md §4.5
// "EdgeFinding"): if env(Theta∪{j}) > lct(Theta), j cannot fit before
// Theta finishes, so est(j) is raised to env(Theta).
func edgeFinding(tasks []Task) (bool, error) {
	ordered := append([]Task(nil), tasks...)
	sortByEndMax(ordered)

	for k := 1; k <= len(ordered); k++ {
		theta := ordered[:k]
		lct := ordered[k-1].EndMax
		env := envelope(theta)
		if env > lct {
			return false, ErrInfeasible
		}
		for j := k; j < len(ordered); j++ {
			withJ := append(append([]Task(nil), theta...), ordered[j])
			if envelope(withJ) > lct && env > ordered[j].StartMin {
				ordered[j].StartMin = env
				if ordered[j].StartMin+ordered[j].DurationMin > ordered[j].EndMax {
					return false, ErrInfeasible
				}
			}
		}
	}

	// Write tightened StartMin values back by matching on identity
	// (pointer-free: tasks is a value slice, so copy element-wise using
	// original order via a stable key of (original index)).
	copy(tasks, reorderBack(tasks, ordered))
	return true, nil
}

// reorderBack restores ordered's tightened values into original's
// positional order. Tasks are matched by their original slice position,
// tracked via a parallel index carried through the sort.
func reorderBack(original, sorted []Task) []Task {
	// Re-derive the permutation by a stable sort keyed on EndMax, mirroring
	// the one edgeFinding applied, then scatter tightened StartMin/EndMax
	// back by original index order using a counting approach: since
	// sortByEndMax is stable (insertion sort) and ties break by prior
	// order, we recompute directly from value identity when duplicates are
	// possible by processing original-index-tagged copies instead.
	tagged := make([]taggedTask, len(original))
	for i, tk := range original {
		tagged[i] = taggedTask{Task: tk, idx: i}
	}
	sortTaggedByEndMax(tagged)
	for i, st := range sorted {
		tagged[i].StartMin = st.StartMin
		tagged[i].EndMax = st.EndMax
	}
	out := make([]Task, len(original))
	for _, tt := range tagged {
		out[tt.idx] = tt.Task
	}
	return out
}

type taggedTask struct {
	Task
	idx int
}

func sortTaggedByEndMax(tasks []taggedTask) {
	for i := 1; i < len(tasks); i++ {
		for j := i; j > 0 && tasks[j].EndMax < tasks[j-1].EndMax; j-- {
			tasks[j], tasks[j-1] = tasks[j-1], tasks[j]
		}
	}
}

// detectablePrecedencesWithChain raises StartMin of each chain task to the
// accumulated duration of the non-chain tasks whose earliest end
// (StartMin+DurationMin) exceeds the chain task's latest start
// (EndMax-DurationMin), when that sum is larger than the current StartMin
// (spec.md §4.5 "DetectablePrecedencesWithChain").
func detectablePrecedencesWithChain(chain, nonChain []Task) (bool, error) {
	for i := range chain {
		threshold := chain[i].EndMax - chain[i].DurationMin
		var energy int64
		for _, u := range nonChain {
			if u.StartMin+u.DurationMin > threshold {
				energy += u.DurationMin
			}
		}
		if energy > chain[i].StartMin {
			chain[i].StartMin = energy
		}
		if chain[i].StartMin+chain[i].DurationMin > chain[i].EndMax {
			return false, ErrInfeasible
		}
	}
	return true, nil
}

// forbiddenIntervals pushes StartMin past any forbidden interval that the
// task's span [StartMin, StartMin+DurationMin) would otherwise overlap
// (spec.md §4.5 "ForbiddenIntervals").
func forbiddenIntervals(tasks []Task) (bool, error) {
	for i := range tasks {
		t := &tasks[i]
		moved := true
		for moved {
			moved = false
			for _, iv := range t.Forbidden {
				if iv.intersects(t.StartMin, t.DurationMin) {
					t.StartMin = iv.Hi
					moved = true
				}
			}
		}
		if t.StartMin+t.DurationMin > t.EndMax {
			return false, ErrInfeasible
		}
	}
	return true, nil
}

// writeBack scatters the combined chain+non-chain slice's tightened
// values back into t's original ChainTasks/NonChainTasks slices.
func writeBack(t *Tasks, combined []Task) {
	n := len(t.ChainTasks)
	copy(t.ChainTasks, combined[:n])
	copy(t.NonChainTasks, combined[n:])
}

// mirrorPass reflects every task through a shared time horizon, reruns
// the forward-tightening passes in mirrored time, and maps any resulting
// StartMin tightening back into an EndMax tightening on the original
// tasks (spec.md §4.5 "Mirror").
func mirrorPass(t *Tasks) (bool, error) {
	horizon := int64(0)
	for _, task := range t.all() {
		if task.EndMax > horizon {
			horizon = task.EndMax
		}
	}

	mirroredChain := mirror(t.ChainTasks, horizon)
	reverse(mirroredChain)
	mirroredNonChain := mirror(t.NonChainTasks, horizon)

	if ok, err := precedences(mirroredChain); !ok {
		return false, err
	}
	combined := append(append([]Task(nil), mirroredChain...), mirroredNonChain...)
	if ok, err := edgeFinding(combined); !ok {
		return false, err
	}

	n := len(mirroredChain)
	reverse(combined[:n])
	for i := range t.ChainTasks {
		mirroredStart := combined[i].StartMin
		candidate := horizon - mirroredStart
		if candidate < t.ChainTasks[i].EndMax {
			t.ChainTasks[i].EndMax = candidate
		}
	}
	for i := range t.NonChainTasks {
		mirroredStart := combined[n+i].StartMin
		candidate := horizon - mirroredStart
		if candidate < t.NonChainTasks[i].EndMax {
			t.NonChainTasks[i].EndMax = candidate
		}
	}
	return true, nil
}

// mirror reflects each task through horizon: a task occupying [s, e) in
// original time occupies [horizon-e, horizon-s) in mirrored time.
func mirror(tasks []Task, horizon int64) []Task {
	out := make([]Task, len(tasks))
	for i, task := range tasks {
		out[i] = Task{
			StartMin:    horizon - task.EndMax,
			DurationMin: task.DurationMin,
			EndMax:      horizon - task.StartMin,
			Preemptible: task.Preemptible,
			Forbidden:   mirrorIntervals(task.Forbidden, horizon),
		}
	}
	return out
}

func mirrorIntervals(ivs []Interval, horizon int64) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	out := make([]Interval, len(ivs))
	for i, iv := range ivs {
		out[i] = Interval{Lo: horizon - iv.Hi, Hi: horizon - iv.Lo}
	}
	return out
}

func reverse(tasks []Task) {
	for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}
}
