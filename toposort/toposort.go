package toposort

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ErrNilGraph indicates that a nil graph was passed to Sort.
var ErrNilGraph = errors.New("toposort: graph is nil")

// Sort computes a topological ordering of all declared vertices of g.
//
// Returns:
//
//   - order: every declared vertex, each after all declared vertices with
//     arcs into it; empty when the declared vertices contain a cycle.
//     CycleDetected is a value (empty sequence), never an error.
//   - err:   ErrNilGraph for a nil graph; otherwise nil.
//
// An empty graph sorts to an empty sequence (vacuously complete).
// Complexity: O(V + E), O(V) ephemeral space.
func Sort[V comparable, W any](g *core.Graph[V, W]) ([]V, error) {
	// 1) Validate graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	verts := g.Vertices() // declaration order drives all tie-breaking
	n := len(verts)

	// 2) Compute indegrees over declared vertices. Arcs into undeclared
	//    destinations are skipped: they are not enumerable and never sort.
	indegree := make(map[V]int, n)
	for _, v := range verts {
		indegree[v] = 0
	}
	for _, u := range verts {
		arcs, err := g.Neighbors(u)
		if err != nil {
			// Unreachable for a catalog-listed vertex; kept for contract clarity.
			return nil, fmt.Errorf("toposort: neighbors of declared vertex: %w", err)
		}
		for _, a := range arcs {
			if _, declared := indegree[a.To]; declared {
				indegree[a.To]++
			}
		}
	}

	// 3) Seed the FIFO queue with zero-indegree vertices in declaration order.
	queue := make([]V, 0, n)
	for _, v := range verts {
		if indegree[v] == 0 {
			queue = append(queue, v)
		}
	}

	// 4) Consume the queue: emit a vertex, release its destinations.
	order := make([]V, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		arcs, _ := g.Neighbors(u)
		for _, a := range arcs {
			if _, declared := indegree[a.To]; !declared {
				continue
			}
			indegree[a.To]--
			if indegree[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	// 5) Vertices left unemitted sit on a cycle: no valid ordering exists.
	if len(order) != n {
		return nil, nil
	}

	return order, nil
}
