// Package toposort orders the declared vertices of a core.Graph so that
// every arc points forward, using Kahn's indegree-counting algorithm.
//
// Sort returns a permutation of all declared vertices in which each vertex
// appears after every declared vertex with an arc into it. If the declared
// vertices contain a cycle, the result is an empty sequence — "no valid
// ordering" is a value, not an error.
//
// Determinism: vertices whose indegree reaches zero simultaneously are
// emitted in FIFO order, and the queue is seeded in declaration order, so
// ambiguous graphs always sort the same way. This tie-breaking is part of
// the contract and is covered by tests.
//
// Arcs whose destination was never declared do not participate: an
// undeclared destination has no indegree entry and never appears in the
// output (it is not an enumerable vertex of the store).
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and arc visited once)
//   - Memory: O(V)     (indegree table and queue, ephemeral to one call)
//
// Errors (sentinel):
//
//   - ErrNilGraph if the provided graph pointer is nil.
package toposort
