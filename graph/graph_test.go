package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guca-engine/guca/graph"
)

func TestAddVertexAssignsMonotonicIDs(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex("A", 0, false)
	b := g.AddVertex("A", 1, true)
	require.Equal(t, 0, a)
	require.Equal(t, 1, b)
	require.True(t, g.HasVertex(a))
	require.True(t, g.HasVertex(b))

	va, _ := g.Vertex(a)
	require.Equal(t, graph.UnknownPriorState, va.PriorState)
	require.False(t, va.MarkedNew)

	vb, _ := g.Vertex(b)
	require.True(t, vb.MarkedNew)
	require.Equal(t, 1, vb.ParentsCount)
}

func TestAddEdgeSymmetryAndNoOps(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex("A", 0, false)
	b := g.AddVertex("A", 0, false)

	require.True(t, g.AddEdge(a, b))
	va, _ := g.Vertex(a)
	vb, _ := g.Vertex(b)
	_, aHasB := va.Neighbors[b]
	_, bHasA := vb.Neighbors[a]
	require.True(t, aHasB)
	require.True(t, bHasA)

	// Re-adding is a silent no-op.
	require.False(t, g.AddEdge(a, b))
	// Self-loop is a silent no-op.
	require.False(t, g.AddEdge(a, a))
	// Missing endpoint is a silent no-op.
	require.False(t, g.AddEdge(a, 999))
}

func TestRemoveEdgeReportsRemovalOnce(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex("A", 0, false)
	b := g.AddVertex("A", 0, false)
	g.AddEdge(a, b)

	require.True(t, g.RemoveEdge(a, b))
	require.False(t, g.RemoveEdge(a, b))
	require.Equal(t, 0, g.Degree(a))
}

func TestSnapshotAllFreezesFields(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex("A", 0, false)
	b := g.AddVertex("B", 0, true)
	g.AddEdge(a, b)
	g.SnapshotAll()

	va, _ := g.Vertex(a)
	require.Equal(t, "A", va.SavedState)
	require.Equal(t, 1, va.SavedDegree)
	require.False(t, va.MarkedNew)

	vb, _ := g.Vertex(b)
	require.False(t, vb.MarkedNew, "SnapshotAll must clear MarkedNew")

	// Mutating State after the snapshot must not move SavedState.
	va.State = "B"
	require.Equal(t, "A", va.SavedState)
}

func TestDeleteMarkedRemovesVertexAndEdges(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex("A", 0, false)
	b := g.AddVertex("A", 0, false)
	g.AddEdge(a, b)

	va, _ := g.Vertex(a)
	va.MarkedDeleted = true
	g.DeleteMarked()

	require.False(t, g.HasVertex(a))
	require.True(t, g.HasVertex(b))
	require.Equal(t, 0, g.Degree(b))
}

func TestVerticesAndNeighborIDsAreSorted(t *testing.T) {
	g := graph.NewGraph()
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = g.AddVertex("A", 0, false)
	}
	for i := 1; i < len(ids); i++ {
		g.AddEdge(ids[0], ids[i])
	}

	require.Equal(t, ids, g.Vertices())
	require.Equal(t, ids[1:], g.NeighborIDs(ids[0]))
}
