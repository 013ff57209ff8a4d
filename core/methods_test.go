// Package core_test verifies core.Graph method-level contracts.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mccis/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""
	VertexA     = "A"
	VertexB     = "B"
	VertexC     = "C"
	VertexD     = "D"
	VertexX     = "X"
)

// TestGraph_AddVertex verifies empty-ID rejection, idempotence and insertion order.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexC))
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB))
	require.NoError(t, g.AddVertex(VertexA)) // duplicate is a no-op

	assert.Equal(t, []string{VertexC, VertexA, VertexB}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())

	i, ok := g.Index(VertexA)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = g.Index(VertexX)
	assert.False(t, ok)

	assert.True(t, g.HasVertex(VertexB))
	assert.False(t, g.HasVertex(VertexX))
	assert.False(t, g.HasVertex(VertexEmpty))
}

// TestGraph_AddEdgeConstraints verifies loops, parallel edges and empty IDs are rejected.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     error
	}{
		{"empty from", VertexEmpty, VertexB, core.ErrEmptyVertexID},
		{"empty to", VertexA, VertexEmpty, core.ErrEmptyVertexID},
		{"self loop", VertexA, VertexA, core.ErrLoopNotAllowed},
		{"parallel", VertexA, VertexB, core.ErrMultiEdgeNotAllowed},
		{"parallel reversed", VertexB, VertexA, core.ErrMultiEdgeNotAllowed},
	}

	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.from, tc.to), tc.want)
		})
	}
	assert.Equal(t, 1, g.EdgeCount(), "rejected edges must not be counted")
}

// TestGraph_EdgesAreUndirected verifies symmetry of HasEdge and the auto-created endpoints.
func TestGraph_EdgesAreUndirected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexC, VertexB))

	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.True(t, g.HasEdge(VertexB, VertexC))
	assert.False(t, g.HasEdge(VertexA, VertexC))
	assert.False(t, g.HasEdge(VertexA, VertexX))
	assert.False(t, g.HasEdge(VertexEmpty, VertexA))

	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices())
	assert.Equal(t, []core.Edge{
		{From: VertexA, To: VertexB},
		{From: VertexB, To: VertexC},
	}, g.Edges())
}

// TestGraph_NeighborIDs verifies index ordering and error sentinels.
func TestGraph_NeighborIDs(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{VertexD, VertexC, VertexB, VertexA} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge(VertexB, VertexA))
	require.NoError(t, g.AddEdge(VertexB, VertexD))
	require.NoError(t, g.AddEdge(VertexB, VertexC))

	nbrs, err := g.NeighborIDs(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexD, VertexC, VertexA}, nbrs, "neighbors follow insertion order")

	d, err := g.Degree(VertexB)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.NeighborIDs(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(VertexEmpty)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Degree(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_InducedEdges verifies only edges among the requested vertices are returned.
func TestGraph_InducedEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexC, VertexD))
	require.NoError(t, g.AddEdge(VertexA, VertexD))

	got := g.InducedEdges([]string{VertexC, VertexA, VertexB, VertexX, VertexA})
	assert.Equal(t, []core.Edge{
		{From: VertexA, To: VertexB},
		{From: VertexB, To: VertexC},
	}, got)
	assert.Empty(t, g.InducedEdges(nil))
}

// TestGraph_AdjacencyMatrix verifies the snapshot is symmetric and detached.
func TestGraph_AdjacencyMatrix(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddVertex(VertexC))

	m := g.AdjacencyMatrix()
	require.Len(t, m, 3)
	assert.True(t, m[0][1])
	assert.True(t, m[1][0])
	assert.False(t, m[0][2])
	assert.False(t, m[0][0])

	require.NoError(t, g.AddEdge(VertexA, VertexC))
	assert.False(t, m[0][2], "snapshot must not observe later mutations")
}

// TestGraph_Clone verifies deep copy semantics.
func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexA, VertexB))
	require.NoError(t, g.AddVertex(VertexC))

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.Edges(), c.Edges())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	require.NoError(t, c.AddEdge(VertexB, VertexC))
	assert.False(t, g.HasEdge(VertexB, VertexC), "mutating the clone must not affect the source")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
}

// TestGraph_IndexNeighbors verifies the index-based view used by traversals.
func TestGraph_IndexNeighbors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(VertexB, VertexA))
	require.NoError(t, g.AddEdge(VertexB, VertexC))
	require.NoError(t, g.AddEdge(VertexA, VertexC))

	assert.Equal(t, 3, g.Order())
	// Index order: B=0, A=1, C=2.
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Nil(t, g.Neighbors(3))
	assert.Nil(t, g.Neighbors(-1))
}
