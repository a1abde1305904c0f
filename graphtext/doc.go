// Package graphtext serializes a core.Graph to a line-oriented text form
// and reconstructs graphs from that form.
//
// Wire format, one declared vertex per line:
//
//	<vertex> ":" " " <edge> (ARROW <edge>)*
//	<edge> := <destination> "(" <weight> ")"
//
// For example, with the default arrow separator:
//
//	A: B(1) → C(5)
//	B: C(2)
//	C:
//
// Vertices appear in declaration order; a vertex with no outgoing edges
// prints nothing after the colon-space; lines are newline-separated with
// no newline after the final vertex. The arrow is a configurable token
// (Options.Arrow, default DefaultArrow), not a compile-time constant, so
// one process can speak several dialects.
//
// Decoding reads lines until a blank line or end of input. The vertex is
// declared before its edges are parsed, so "C:" and even a bare "C" line
// declare an isolated vertex. Failure semantics are deliberate and
// asymmetric:
//
//   - A malformed vertex token stops decoding entirely and returns the
//     partially built graph together with ErrBadVertexToken — everything
//     decoded so far is retained, never rolled back.
//   - A malformed edge token merely ends that line's edge list; it is not
//     an error, and decoding continues with the next line.
//   - Running out of input cleanly (EOF or blank line) is not a failure.
//
// The decoder never declares a pure-destination vertex: a destination
// becomes enumerable only when it later appears with its own line.
//
// Value text forms default to fmt ("%v" printing, fmt.Sscan parsing) and
// can be overridden per call via Options.
package graphtext
