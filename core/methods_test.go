package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wgraph/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[string, int64]
}

func (s *GraphSuite) SetupTest() {
	// Destinations are not auto-declared by default; individual tests may override.
	s.g = core.New[string](core.IntegerDomain[int64]())
}

func (s *GraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())

	s.g.AddVertex("A")
	require.True(s.g.HasVertex("A"), "graph should have A after AddVertex")
	require.Equal(1, s.g.VertexCount())

	// Give A some adjacency, then re-declare it: the list must survive.
	s.g.AddEdge("A", "B", 3)
	s.g.AddVertex("A")
	adj, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Len(adj, 1, "re-declaring A must not reset its adjacency")
	require.Equal("B", adj[0].To)
	require.Equal(1, s.g.VertexCount(), "duplicate AddVertex must not grow the catalog")
}

func (s *GraphSuite) TestAddEdgeOverwritesInPlace() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1)
	s.g.AddEdge("A", "C", 2)
	s.g.AddEdge("A", "B", 7) // overwrite, not append

	adj, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Len(adj, 2, "duplicate destination must be overwritten, not appended")
	require.Equal(core.Arc[string, int64]{To: "B", Weight: 7}, adj[0], "overwrite keeps position")
	require.Equal(core.Arc[string, int64]{To: "C", Weight: 2}, adj[1])
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestDestinationsNotDeclaredByDefault() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1)
	require.True(s.g.HasVertex("A"), "AddEdge declares the source")
	require.False(s.g.HasVertex("B"), "AddEdge must not declare the destination by default")
	require.Equal([]string{"A"}, s.g.Vertices())

	_, err := s.g.Neighbors("B")
	require.ErrorIs(err, core.ErrVertexNotFound, "undeclared destination is not queryable")
}

func (s *GraphSuite) TestAutoDeclareDestinations() {
	require := require.New(s.T())

	g := core.New[string](core.IntegerDomain[int64](), core.WithAutoDeclareDestinations())
	g.AddEdge("A", "B", 1)
	require.True(g.HasVertex("B"))
	require.Equal([]string{"A", "B"}, g.Vertices())
	require.True(g.AutoDeclaresDestinations())

	adj, err := g.Neighbors("B")
	require.NoError(err)
	require.Empty(adj, "auto-declared destination starts with an empty adjacency list")
}

func (s *GraphSuite) TestInsertionOrderIsPreserved() {
	require := require.New(s.T())

	for _, v := range []string{"C", "A", "B"} {
		s.g.AddVertex(v)
	}
	s.g.AddEdge("C", "Z", 1)
	s.g.AddEdge("C", "Y", 2)
	s.g.AddEdge("C", "X", 3)

	require.Equal([]string{"C", "A", "B"}, s.g.Vertices(), "vertex order is declaration order, not lexical")

	adj, err := s.g.Neighbors("C")
	require.NoError(err)
	require.Equal("Z", adj[0].To)
	require.Equal("Y", adj[1].To)
	require.Equal("X", adj[2].To)
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 1)
	adj, err := s.g.Neighbors("A")
	require.NoError(err)
	adj[0].Weight = 99 // mutate the copy

	again, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal(int64(1), again[0].Weight, "Neighbors must return an independent copy")
}

func (s *GraphSuite) TestHasEdgeAndWeight() {
	require := require.New(s.T())

	s.g.AddEdge("A", "B", 4)
	require.True(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"), "arcs are directed")

	w, ok, err := s.g.Weight("A", "B")
	require.NoError(err)
	require.True(ok)
	require.Equal(int64(4), w)

	_, ok, err = s.g.Weight("A", "C")
	require.NoError(err)
	require.False(ok, "declared source without the arc reports ok=false")

	_, _, err = s.g.Weight("Z", "A")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestNeighborsUndeclaredVertex exercises the lookup error outside the suite
// so the sentinel contract is visible in isolation.
func TestNeighborsUndeclaredVertex(t *testing.T) {
	g := core.New[int](core.IntegerDomain[int]())
	_, err := g.Neighbors(42)
	if !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Neighbors(42) error = %v; want core.ErrVertexNotFound", err)
	}
}
