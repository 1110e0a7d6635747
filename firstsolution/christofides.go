package firstsolution

import (
	"math"

	"github.com/arcrouting/vrproute/lsfilter"
)

// Christofides builds one global tour over every node (MST → odd-degree
// matching → Eulerian shortcut, vehicle 0's arc-cost evaluator standing in
// for a single representative metric) and shards it across vehicles,
// filling each as far as the filter chain permits before spilling to the
// next (spec.md §4.6 "Christofides"). Adapted from the teacher's
// MinimumSpanningTree (dense Prim O(n²)), greedyMatch and EulerianCircuit
// (Hierholzer half-edge walk).
type Christofides struct{}

func (Christofides) Build(m lsfilter.Model, chain *lsfilter.FilterChain) ([][]int, error) {
	if m.NumVehicles() == 0 {
		return nil, ErrEmptyModel
	}
	nodes := unroutedCandidates(m, initialEmptyRoutes(m))
	tour := christofidesTour(m, nodes)

	b := NewRoutingFilteredDecisionBuilder(m, chain, nil)
	optional := optionalIndices(m)
	v := 0
	for _, idx := range tour {
		placed := false
		for tried := 0; tried < m.NumVehicles(); tried++ {
			route := b.Routes()[v]
			if b.TryInsert(v, len(route)-1, idx) {
				placed = true
				break
			}
			v = (v + 1) % m.NumVehicles()
		}
		if !placed && !optional[idx] {
			return nil, ErrNoFeasibleInsertion
		}
	}
	return b.Routes(), nil
}

func initialEmptyRoutes(m lsfilter.Model) [][]int {
	routes := make([][]int, m.NumVehicles())
	for v := 0; v < m.NumVehicles(); v++ {
		routes[v] = []int{m.Start(v), m.End(v)}
	}
	return routes
}

// christofidesTour returns nodes reordered into a single shortcut
// Christofides tour, using vehicle 0's arc-cost evaluator as the distance
// metric between every pair.
func christofidesTour(m lsfilter.Model, nodes []int) []int {
	n := len(nodes)
	if n <= 1 {
		return nodes
	}
	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = m.GetArcCostForVehicle(nodes[i], nodes[j], 0)
			}
		}
	}

	adj := christofidesMST(dist)
	odd := oddDegreeVertices(adj)
	christofidesGreedyMatch(odd, dist, adj)
	walk := hierholzerCircuit(adj, 0)

	seen := make([]bool, n)
	out := make([]int, 0, n)
	for _, local := range walk {
		if seen[local] {
			continue
		}
		seen[local] = true
		out = append(out, nodes[local])
	}
	return out
}

// christofidesMST is Prim's O(n²) algorithm over a dense int64 distance
// matrix, adapted from the teacher's mstDense.
func christofidesMST(dist [][]int64) [][]int {
	n := len(dist)
	inMST := make([]bool, n)
	bestCost := make([]int64, n)
	parent := make([]int, n)
	adj := make([][]int, n)
	for i := range bestCost {
		bestCost[i] = math.MaxInt64
		parent[i] = -1
	}
	bestCost[0] = 0

	for iter := 0; iter < n; iter++ {
		u := -1
		var minW int64 = math.MaxInt64
		for v := 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW = bestCost[v]
				u = v
			}
		}
		if u == -1 {
			break // disconnected remainder: leave as separate tree roots
		}
		inMST[u] = true
		if parent[u] != -1 {
			adj[u] = append(adj[u], parent[u])
			adj[parent[u]] = append(adj[parent[u]], u)
		}
		for v := 0; v < n; v++ {
			if !inMST[v] && dist[u][v] < bestCost[v] {
				bestCost[v] = dist[u][v]
				parent[v] = u
			}
		}
	}
	return adj
}

func oddDegreeVertices(adj [][]int) []int {
	var odd []int
	for v, neighbors := range adj {
		if len(neighbors)%2 == 1 {
			odd = append(odd, v)
		}
	}
	return odd
}

// christofidesGreedyMatch pairs odd-degree vertices by nearest partner,
// breaking ties toward the smaller vertex id, adapted from the teacher's
// greedyMatch.
func christofidesGreedyMatch(odd []int, dist [][]int64, adj [][]int) {
	rem := append([]int(nil), odd...)
	for len(rem) > 1 {
		last := len(rem) - 1
		u := rem[last]
		rem = rem[:last]

		bestIdx := -1
		var bestW int64 = math.MaxInt64
		for i, v := range rem {
			w := dist[u][v]
			if w < bestW || (w == bestW && v < rem[bestIdx]) {
				bestW = w
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		last = len(rem) - 1
		v := rem[bestIdx]
		rem[bestIdx] = rem[last]
		rem = rem[:last]

		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
}

// hierholzerCircuit returns a closed Eulerian walk over the (now
// even-degree) multigraph adj, adapted from the teacher's EulerianCircuit
// half-edge/twin-pointer representation.
func hierholzerCircuit(adj [][]int, start int) []int {
	n := len(adj)
	if n == 0 {
		return nil
	}
	m2 := 0
	for _, neighbors := range adj {
		m2 += len(neighbors)
	}
	if m2 == 0 {
		return []int{start}
	}

	to := make([]int, m2)
	twin := make([]int, m2)
	used := make([]bool, m2)
	for i := range twin {
		twin[i] = -1
	}
	head := make([][]int, n)
	pending := make(map[uint64]int, m2/2+1)
	next := 0
	for u := 0; u < n; u++ {
		for _, v := range adj[u] {
			e := next
			next++
			to[e] = v
			head[u] = append(head[u], e)

			key := packUndirectedKey(u, v)
			if prev, ok := pending[key]; !ok || prev == -1 {
				pending[key] = e
			} else {
				twin[e] = prev
				twin[prev] = e
				pending[key] = -1
			}
		}
	}

	it := make([]int, n)
	stack := []int{start}
	var circuit []int
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		for it[u] < len(head[u]) && used[head[u][it[u]]] {
			it[u]++
		}
		if it[u] == len(head[u]) {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		e := head[u][it[u]]
		used[e] = true
		if twin[e] >= 0 {
			used[twin[e]] = true
		}
		v := to[e]
		stack = append(stack, v)
	}
	return circuit
}

func packUndirectedKey(u, v int) uint64 {
	a, b := uint64(u), uint64(v)
	if a < b {
		return (a << 32) | b
	}
	return (b << 32) | a
}
