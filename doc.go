// Package wgraph is a generic engine for directed weighted graphs:
// build them, order them, route through them, and ship them as text.
//
// 🚀 What is wgraph?
//
//	A small, focused library built from four pieces:
//		• core/      — the graph store: generic vertices, directed weighted
//		               edges, insertion-ordered iteration
//		• dijkstra/  — single-source shortest path with an index-aware
//		               min-heap (true decrease-key)
//		• toposort/  — dependency ordering via Kahn's algorithm with
//		               cycle detection
//		• graphtext/ — the line-oriented text codec: "A: B(1) → C(5)"
//
// ✨ Why choose wgraph?
//
//   - Generic over vertex and weight types — bring your own identifiers
//     and cost arithmetic via core.WeightDomain
//   - Deterministic — insertion order drives iteration, serialization,
//     and tie-breaking, so outputs are reproducible
//   - Honest failure values — no path and no ordering are empty results,
//     not errors; only genuine misuse returns a sentinel error
//   - Pure Go — no cgo, no hidden machinery
//
// A typical session: build or deserialize a core.Graph, hand it
// (read-only) to toposort.Sort or dijkstra.ShortestPath, and re-serialize
// it with graphtext.Marshal whenever you need the wire form back.
package wgraph
