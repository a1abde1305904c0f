// Package core defines the central Graph type: a generic, directed,
// weighted graph with insertion-ordered vertices and adjacency lists.
//
// What:
//
//   - Graph[V, W] maps each declared vertex to an ordered adjacency list
//     of Arc[V, W] entries (destination + weight).
//   - Vertex identity is any comparable type V; weights are any type W
//     whose arithmetic is described by a WeightDomain[W] capability bound
//     (total order, additive combine, zero, and an infinity sentinel).
//   - Iteration order — Vertices(), Neighbors(), serialization, and
//     algorithm tie-breaking — is insertion order, always.
//
// Why:
//
//   - Deterministic outputs: two runs over the same construction sequence
//     produce identical traversals and identical wire text.
//   - Algorithms stay generic: dijkstra and toposort read the store
//     through this package only and never assume a concrete weight type.
//
// Semantics worth knowing:
//
//   - AddVertex is idempotent; re-adding never resets adjacency.
//   - AddEdge(u, v, w) overwrites the weight in place when u already has
//     an edge to v, so adjacency lists never hold duplicate destinations.
//   - A destination named only inside an adjacency list is NOT a declared
//     vertex unless the graph was built WithAutoDeclareDestinations().
//
// Concurrency:
//
//   - Graph is not safe for concurrent use. All operations are
//     synchronous and in-memory; callers needing shared access must
//     synchronize externally. Concurrent use of distinct graphs is fine.
//
// Errors:
//
//   - ErrVertexNotFound: adjacency was requested for an undeclared vertex.
package core
