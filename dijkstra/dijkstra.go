package dijkstra

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/wgraph/core"
)

// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
var ErrNilGraph = errors.New("dijkstra: graph is nil")

// ShortestPath computes one least-total-weight path from source to
// destination in g, inclusive of both endpoints.
//
// Returns:
//
//   - path: ordered vertex sequence from source to destination, or an
//     empty sequence when no path exists. NoPath is a value, never an error.
//   - err:  ErrNilGraph for a nil graph; otherwise nil.
//
// If source == destination the single-element path [source] is returned
// unconditionally, before any search runs. Edge weights must be
// non-negative (not validated).
//
// Complexity: O((V + E) log V), O(V) ephemeral space.
func ShortestPath[V comparable, W any](g *core.Graph[V, W], source, destination V) ([]V, error) {
	// 1) Validate graph pointer.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Trivial self-path: handled before any search, declared or not.
	if source == destination {
		return []V{source}, nil
	}

	// 3) Initialize tables and the priority structure, then run the search.
	r := newRunner(g, source)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Walk predecessors backward from the destination.
	return r.reconstruct(source, destination), nil
}

// runner holds the scratch state for a single ShortestPath execution.
// All of it is discarded when the call returns.
type runner[V comparable, W any] struct {
	g    *core.Graph[V, W]
	dom  core.WeightDomain[W]
	dist map[V]W    // vertex → current best known distance from source
	pred map[V]V    // vertex → predecessor on the best known path
	done map[V]bool // vertex finalized: distance proven optimal
	pq   *vertexHeap[V, W]
}

// newRunner seeds distance[source]=0, distance[v]=∞ for every other
// declared vertex, and loads the whole vertex catalog into the heap.
func newRunner[V comparable, W any](g *core.Graph[V, W], source V) *runner[V, W] {
	dom := g.Domain()
	verts := g.Vertices() // insertion order: the deterministic tie-break
	n := len(verts)

	r := &runner[V, W]{
		g:    g,
		dom:  dom,
		dist: make(map[V]W, n+1),
		pred: make(map[V]V, n),
		done: make(map[V]bool, n),
	}
	seq := make(map[V]int, n)
	for i, v := range verts {
		r.dist[v] = dom.Inf()
		seq[v] = i
	}
	// The source may be undeclared; its distance entry exists regardless.
	r.dist[source] = dom.Zero()

	r.pq = newVertexHeap(dom, r.dist, seq, verts)

	return r
}

// process repeatedly finalizes the minimum-distance vertex and relaxes
// its outgoing arcs, stopping early once only unreachable vertices remain.
func (r *runner[V, W]) process() error {
	inf := r.dom.Inf()
	for r.pq.Len() > 0 {
		// 1) Extract the minimum-distance vertex not yet finalized.
		u := heap.Pop(r.pq).(V)

		// 2) Infinity at the top means every remaining vertex is unreachable.
		if !r.dom.Less(r.dist[u], inf) {
			break
		}

		// 3) Finalize u and relax its adjacency list.
		r.done[u] = true
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the tentative distance of every non-finalized
// neighbor of u, repairing the heap slot of each vertex whose key changed.
func (r *runner[V, W]) relax(u V) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		// Unreachable for heap-seeded vertices; kept for contract clarity.
		return fmt.Errorf("dijkstra: neighbors of finalized vertex: %w", err)
	}

	du := r.dist[u]
	for _, a := range arcs {
		v := a.To
		if r.done[v] {
			continue
		}

		// An adjacency list may name an undeclared destination; it has no
		// heap slot, and its missing distance reads as infinity.
		dv, known := r.dist[v]
		if !known {
			dv = r.dom.Inf()
		}

		nd := r.dom.Add(du, a.Weight)
		if !r.dom.Less(nd, dv) {
			continue
		}

		// Strictly shorter path through u: update the tables, then restore
		// the heap invariant for v's slot (decrease-key).
		r.dist[v] = nd
		r.pred[v] = u
		r.pq.fix(v)
	}

	return nil
}

// reconstruct walks the predecessor table backward from destination.
// If the chain never reaches source, no path exists and the result is empty.
func (r *runner[V, W]) reconstruct(source, destination V) []V {
	var rev []V
	cur := destination
	for {
		p, ok := r.pred[cur]
		if !ok {
			return nil // chain broke before reaching source: no path
		}
		rev = append(rev, cur)
		cur = p
		if cur == source {
			break
		}
	}

	// Reverse into source→destination order, prefixing the source.
	path := make([]V, 0, len(rev)+1)
	path = append(path, source)
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}

	return path
}

// vertexHeap is an index-aware binary min-heap over declared vertices.
//
// Keys are not stored in the heap: Less reads the live distance table, so
// any distance update desynchronizes the heap until fix is called for the
// affected vertex. Ties are broken by vertex declaration order, which
// keeps extraction deterministic for equal distances.
type vertexHeap[V comparable, W any] struct {
	dom   core.WeightDomain[W]
	dist  map[V]W   // authoritative tentative distances (shared with runner)
	seq   map[V]int // declaration index per vertex
	items []V
	pos   map[V]int // vertex → current heap slot, maintained by Swap
}

// newVertexHeap seeds the heap with every declared vertex and establishes
// the heap invariant in O(V).
func newVertexHeap[V comparable, W any](
	dom core.WeightDomain[W],
	dist map[V]W,
	seq map[V]int,
	verts []V,
) *vertexHeap[V, W] {
	h := &vertexHeap[V, W]{
		dom:   dom,
		dist:  dist,
		seq:   seq,
		items: verts,
		pos:   make(map[V]int, len(verts)),
	}
	for i, v := range verts {
		h.pos[v] = i
	}
	heap.Init(h)

	return h
}

func (h *vertexHeap[V, W]) Len() int { return len(h.items) }

func (h *vertexHeap[V, W]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	da, db := h.dist[a], h.dist[b]
	if h.dom.Less(da, db) {
		return true
	}
	if h.dom.Less(db, da) {
		return false
	}

	return h.seq[a] < h.seq[b] // equal distances: declaration order wins
}

func (h *vertexHeap[V, W]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

// Push is required by heap.Interface; the heap is fully seeded at
// construction and never grows afterwards.
func (h *vertexHeap[V, W]) Push(x any) {
	v := x.(V)
	h.pos[v] = len(h.items)
	h.items = append(h.items, v)
}

func (h *vertexHeap[V, W]) Pop() any {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	delete(h.pos, v)

	return v
}

// fix restores the heap invariant for v after its distance decreased.
// A vertex without a slot (already extracted, or never declared) is a no-op.
func (h *vertexHeap[V, W]) fix(v V) {
	if i, ok := h.pos[v]; ok {
		heap.Fix(h, i)
	}
}
