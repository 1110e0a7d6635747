package dimension

import "github.com/arcrouting/vrproute/breaks"

// SetBreakIntervalsOfVehicle registers v's break intervals and the visit
// transit duration of each node v may serve, used by ScheduleBreaks to
// build the breaks.Tasks value handed to breaks.Propagate (spec.md §4.4
// "Breaks"). Dimension owns only the translation; the actual disjunctive
// reasoning lives in package breaks.
func (d *Dimension) SetBreakIntervalsOfVehicle(v int, brks []Break, nodeVisitTransits map[int]int64) error {
	if err := d.checkVehicle(v); err != nil {
		return err
	}
	d.vehicleBreaks[v] = brks
	d.nodeVisitTransits[v] = nodeVisitTransits
	return nil
}

// ScheduleBreaks forward-propagates route's own arrival times, runs
// breaks.Propagate against them, and writes the tightened StartMin
// values back into Cumul/Slack: a visited node's chain task StartMin
// becomes its (possibly raised) Cumul value, and the preceding index's
// Transit/Slack are rewritten against that index's new Cumul so Chain
// continues to hold.
func (d *Dimension) ScheduleBreaks(v int, route []int) (bool, error) {
	brks, hasBreaks := d.vehicleBreaks[v]
	if !hasBreaks || len(brks) == 0 {
		return true, nil
	}

	visits, ok := d.nodeVisitTransits[v]
	if !ok {
		visits = map[int]int64{}
	}

	arrival := d.forwardCumul(route)
	chain := make([]breaks.Task, len(route))
	for i, idx := range route {
		dur := visits[idx]
		chain[i] = breaks.Task{
			StartMin:    arrival[i],
			DurationMin: dur,
			EndMax:      d.cumulMax[idx],
		}
	}
	nonChain := make([]breaks.Task, len(brks))
	for i, b := range brks {
		nonChain[i] = b.task()
	}

	tasks := &breaks.Tasks{ChainTasks: chain, NonChainTasks: nonChain}
	ok, err := breaks.Propagate(tasks)
	if !ok {
		return false, err
	}

	for i, idx := range route {
		tightened := tasks.ChainTasks[i].StartMin
		if i > 0 {
			prev := route[i-1]
			transit := d.TransitBetween(prev, prev, idx)
			d.Transit[prev] = transit
			d.Slack[prev] = tightened - (d.Cumul[prev] + transit)
		}
		d.Cumul[idx] = tightened
	}
	return true, nil
}
