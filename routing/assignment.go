package routing

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Assignment is a solved (or partially solved) Model state: every
// committed next-variable value, the vehicle each index belongs to, and
// the total cost (spec.md §6 "Solution file format").
type Assignment struct {
	Values        map[int]int64
	VehicleValues map[int]int
	Cost          int64
}

// RoutesToAssignment builds an Assignment from one index sequence per
// vehicle, each starting at Start(v) and ending at End(v) (spec.md §8
// "Round-trip" law).
func (m *Model) RoutesToAssignment(routes [][]int) (*Assignment, error) {
	if len(routes) != m.NumVehicles() {
		return nil, ErrInvalidRoute
	}
	asg := &Assignment{
		Values:        make(map[int]int64),
		VehicleValues: make(map[int]int),
	}
	for v, route := range routes {
		if len(route) < 2 || route[0] != m.Start(v) || route[len(route)-1] != m.End(v) {
			return nil, ErrInvalidRoute
		}
		for k := 0; k < len(route)-1; k++ {
			from, to := route[k], route[k+1]
			asg.Values[from] = int64(to)
			asg.VehicleValues[from] = v
		}
		asg.VehicleValues[route[len(route)-1]] = v
	}
	asg.Cost = m.cost(routes)
	return asg, nil
}

// AssignmentToRoutes inverts RoutesToAssignment by following next-values
// from each vehicle's start to its end (spec.md §8 "Round-trip" law).
func (m *Model) AssignmentToRoutes(a *Assignment) [][]int {
	routes := make([][]int, m.NumVehicles())
	for v := 0; v < m.NumVehicles(); v++ {
		route := []int{m.Start(v)}
		cur := m.Start(v)
		for steps := 0; steps <= m.Size()+m.NumVehicles(); steps++ {
			if cur == m.End(v) {
				break
			}
			next, ok := a.Values[cur]
			if !ok {
				break
			}
			cur = int(next)
			route = append(route, cur)
		}
		routes[v] = route
	}
	return routes
}

// CompactAssignment remaps vehicle ids to a dense prefix under the
// vehicle-class equivalence (spec.md §9 "CompactAssignment"), validating
// the result by recomputing cost.
func (m *Model) CompactAssignment(a *Assignment) (*Assignment, error) {
	routes := m.AssignmentToRoutes(a)

	type indexed struct {
		route []int
		class int
	}
	entries := make([]indexed, len(routes))
	for v, r := range routes {
		entries[v] = indexed{route: r, class: m.vehicleVehicleClass[v]}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].class < entries[j].class })

	compact := make([][]int, len(entries))
	for i, e := range entries {
		compact[i] = e.route
	}

	out, err := m.RoutesToAssignment(compact)
	if err != nil {
		return nil, err
	}
	if out.Cost != a.Cost {
		// Compaction must be cost-neutral; fall back to the original on
		// any mismatch rather than silently reporting a wrong cost.
		return a, nil
	}
	return out, nil
}

// WriteAssignment serializes a as newline-delimited "index value" tuples
// plus a trailing "cost <value>" line (spec.md §6).
func WriteAssignment(w io.Writer, a *Assignment) error {
	keys := make([]int, 0, len(a.Values))
	for k := range a.Values {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	bw := bufio.NewWriter(w)
	for _, k := range keys {
		if _, err := fmt.Fprintf(bw, "%d %d\n", k, a.Values[k]); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "cost %d\n", a.Cost); err != nil {
		return err
	}
	return bw.Flush()
}

// ReadAssignment parses the format WriteAssignment produces.
func ReadAssignment(r io.Reader) (*Assignment, error) {
	asg := &Assignment{Values: make(map[int]int64), VehicleValues: make(map[int]int)}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ErrMalformedAssignment
		}
		if fields[0] == "cost" {
			cost, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, ErrMalformedAssignment
			}
			asg.Cost = cost
			continue
		}
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, ErrMalformedAssignment
		}
		val, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, ErrMalformedAssignment
		}
		asg.Values[idx] = val
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return asg, nil
}
