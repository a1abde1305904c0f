// This file implements vertex and edge mutation plus the read surface
// the algorithm packages depend on (Neighbors, Vertices, counts).

package core

// AddVertex declares v with an empty adjacency list if absent.
// Idempotent: re-declaring an existing vertex preserves its adjacency.
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) {
	if _, ok := g.index[v]; ok {
		return // no-op for existing vertex
	}
	g.index[v] = len(g.order)
	g.order = append(g.order, v)
}

// AddEdge records the directed arc u→v with weight w.
//
// u is declared if absent. If u already has an arc to v, its weight is
// overwritten in place — adjacency lists never hold two entries for the
// same destination, and the original position is kept. v becomes a
// declared vertex only when the graph was built
// WithAutoDeclareDestinations().
// Complexity: O(deg(u)).
func (g *Graph[V, W]) AddEdge(u, v V, w W) {
	g.AddVertex(u)
	if g.cfg.autoDeclare {
		g.AddVertex(v)
	}

	list := g.adj[u]
	for i := range list {
		if list[i].To == v {
			list[i].Weight = w // overwrite in place, keep position

			return
		}
	}
	g.adj[u] = append(list, Arc[V, W]{To: v, Weight: w})
	g.edges++
}

// HasVertex reports whether v is a declared vertex.
func (g *Graph[V, W]) HasVertex(v V) bool {
	_, ok := g.index[v]

	return ok
}

// HasEdge reports whether the arc u→v exists.
// Complexity: O(deg(u)).
func (g *Graph[V, W]) HasEdge(u, v V) bool {
	for _, a := range g.adj[u] {
		if a.To == v {
			return true
		}
	}

	return false
}

// Weight returns the weight of the arc u→v.
// Returns ErrVertexNotFound if u is undeclared; ok=false if u has no arc to v.
func (g *Graph[V, W]) Weight(u, v V) (w W, ok bool, err error) {
	if _, declared := g.index[u]; !declared {
		return w, false, ErrVertexNotFound
	}
	for _, a := range g.adj[u] {
		if a.To == v {
			return a.Weight, true, nil
		}
	}

	return w, false, nil
}

// Neighbors returns a copy of u's adjacency list in insertion order.
// Returns ErrVertexNotFound if u is not a declared vertex.
// Complexity: O(deg(u)).
func (g *Graph[V, W]) Neighbors(u V) ([]Arc[V, W], error) {
	if _, ok := g.index[u]; !ok {
		return nil, ErrVertexNotFound
	}
	list := g.adj[u]
	out := make([]Arc[V, W], len(list))
	copy(out, list)

	return out, nil
}

// Vertices returns all declared vertices in insertion order.
// The slice is a copy; callers may retain and mutate it freely.
// Complexity: O(V).
func (g *Graph[V, W]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of declared vertices.
func (g *Graph[V, W]) VertexCount() int { return len(g.order) }

// EdgeCount returns the total number of arcs in the graph.
func (g *Graph[V, W]) EdgeCount() int { return g.edges }

// Domain returns the weight arithmetic this graph was constructed with.
func (g *Graph[V, W]) Domain() WeightDomain[W] { return g.dom }

// AutoDeclaresDestinations reports the construction-time policy: whether
// AddEdge also declares its destination vertex.
func (g *Graph[V, W]) AutoDeclaresDestinations() bool { return g.cfg.autoDeclare }
