// Package dijkstra implements Dijkstra's single-source shortest-path
// search between two vertices of a core.Graph.
//
// ShortestPath computes one least-total-weight path from a source vertex
// to a destination vertex over non-negative edge weights. Vertices are
// finalized in order of increasing tentative distance, maintained by an
// index-aware binary min-heap: every declared vertex is seeded up front,
// and each relaxation repairs the updated vertex's heap slot in O(log V)
// (a true decrease-key, not a lazy duplicate push). Priorities are read
// through the mutable distance table, so the repair after every
// relaxation is required for correctness, not an optimization.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Every declared vertex is extracted exactly once: V pops.
//   - Every relaxation triggers one heap Fix: up to E repairs.
//   - Space: O(V) for the heap, distance, and predecessor tables,
//     all of which live only for the duration of one call.
//
// Contract:
//
//   - source == destination returns [source] before any search runs,
//     even when the vertex is not declared in the graph.
//   - No path (or an undeclared destination whose predecessor chain never
//     resolves) returns an empty sequence, not an error.
//   - Extraction of an infinity-distance vertex stops the search early;
//     everything still in the heap is unreachable.
//
// Preconditions:
//
//   - All edge weights must be non-negative. This is not defended
//     against; results over negative weights are undefined.
//   - The graph must not be mutated while the search runs.
//
// Errors (sentinel):
//
//   - ErrNilGraph if the provided graph pointer is nil.
package dijkstra
