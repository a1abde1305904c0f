// This file declares Graph, Arc, GraphOption, sentinel errors,
// and the New constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced an undeclared vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Arc is a single adjacency-list entry: a directed connection from the
// owning vertex to To, costing Weight.
type Arc[V comparable, W any] struct {
	// To is the destination vertex.
	To V

	// Weight is the cost of traversing the arc.
	Weight W
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig holds construction-time policy flags.
type graphConfig struct {
	autoDeclare bool // AddEdge also declares the destination vertex
}

// WithAutoDeclareDestinations makes AddEdge(u, v, w) declare v as an
// enumerable vertex, not just u. By default destinations stay undeclared
// until an explicit AddVertex (or an AddEdge originating from them),
// which matches the behavior of the text deserializer.
func WithAutoDeclareDestinations() GraphOption {
	return func(c *graphConfig) { c.autoDeclare = true }
}

// Graph is the core in-memory directed weighted graph.
//
// Vertices are cataloged in insertion order; each declared vertex owns an
// adjacency list of Arc entries, also in insertion order. The zero value
// is not usable: construct with New.
type Graph[V comparable, W any] struct {
	dom WeightDomain[W] // weight arithmetic for this graph
	cfg graphConfig     // construction-time policy

	// Storage
	index map[V]int       // declared vertex → position in order
	order []V             // declaration sequence
	adj   map[V][]Arc[V, W] // vertex → ordered adjacency list
	edges int             // total number of arcs
}

// New creates an empty Graph whose weights obey dom.
// By default, destinations named in AddEdge are not auto-declared.
// Complexity: O(1)
func New[V comparable, W any](dom WeightDomain[W], opts ...GraphOption) *Graph[V, W] {
	g := &Graph[V, W]{
		dom:   dom,
		index: make(map[V]int),
		adj:   make(map[V][]Arc[V, W]),
	}
	// Apply options
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
