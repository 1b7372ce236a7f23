package nearest_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guca-engine/guca/graph"
	"github.com/guca-engine/guca/nearest"
)

// buildPath builds a 1-2-3-4-5 path graph (ids 0..4 after AddVertex),
// vertex at index 2 ("X") with the rest in "A".
func buildPath(t *testing.T) (*graph.Graph, []int) {
	t.Helper()
	g := graph.NewGraph()
	ids := make([]int, 5)
	states := []string{"A", "A", "X", "A", "A"}
	for i, s := range states {
		ids[i] = g.AddVertex(s, 0, false)
	}
	for i := 0; i < len(ids)-1; i++ {
		g.AddEdge(ids[i], ids[i+1])
	}
	g.SnapshotAll()

	return g, ids
}

func TestSearchMaxDepth1FindsNothing(t *testing.T) {
	// Depth-1 candidates are always already neighbors, hence ineligible,
	// hence nothing is ever found at depth 1 — intentional, not a bug.
	g, ids := buildPath(t)
	found, err := nearest.Search(g, ids[2], "A", true, nearest.WithMaxDepth(1))
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestSearchDepth2TieBreakStablePicksMinID(t *testing.T) {
	g, ids := buildPath(t)
	found, err := nearest.Search(g, ids[2], "A", true, nearest.WithMaxDepth(2))
	require.NoError(t, err)
	require.Equal(t, []int{ids[0], ids[4]}, found)

	connected, err := nearest.Connect(g, ids[2], "A", true, nearest.WithMaxDepth(2), nearest.WithTieBreaker(nearest.Stable))
	require.NoError(t, err)
	require.Equal(t, []int{ids[0]}, connected)

	v, _ := g.Vertex(ids[2])
	_, hasEdge := v.Neighbors[ids[0]]
	require.True(t, hasEdge)
	_, hasOtherEdge := v.Neighbors[ids[4]]
	require.False(t, hasOtherEdge)
}

func TestConnectAllConnectsEveryFoundVertex(t *testing.T) {
	g, ids := buildPath(t)
	connected, err := nearest.Connect(g, ids[2], "A", true, nearest.WithMaxDepth(2), nearest.WithConnectAll(true))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{ids[0], ids[4]}, connected)
}

func TestConnectRandomTieBreakUsesRNG(t *testing.T) {
	g, ids := buildPath(t)
	rng := rand.New(rand.NewSource(1))
	connected, err := nearest.Connect(g, ids[2], "A", true, nearest.WithMaxDepth(2), nearest.WithTieBreaker(nearest.Random), nearest.WithRNG(rng))
	require.NoError(t, err)
	require.Len(t, connected, 1)
	require.Contains(t, []int{ids[0], ids[4]}, connected[0])
}

func TestRandomWithoutRNGFallsBackToStable(t *testing.T) {
	g, ids := buildPath(t)
	connected, err := nearest.Connect(g, ids[2], "A", true, nearest.WithMaxDepth(2), nearest.WithTieBreaker(nearest.Random))
	require.NoError(t, err)
	require.Equal(t, []int{ids[0]}, connected)
}

func TestMarkedNewVerticesAreIneligible(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex("A", 0, false)
	mid := g.AddVertex("A", 0, false)
	b := g.AddVertex("A", 0, true) // born this step, two hops from a
	g.AddEdge(a, mid)
	g.AddEdge(mid, b)
	g.SnapshotAll()
	// SnapshotAll clears MarkedNew between steps; re-set it to simulate a
	// vertex born earlier in the very same step still being in flight.
	vb, _ := g.Vertex(b)
	vb.MarkedNew = true

	found, err := nearest.Search(g, a, "A", true, nearest.WithMaxDepth(2))
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestMarkedDeletedVerticesAreIneligible(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex("A", 0, false)
	mid := g.AddVertex("A", 0, false)
	b := g.AddVertex("A", 0, false)
	g.AddEdge(a, mid)
	g.AddEdge(mid, b)
	g.SnapshotAll()
	// b died earlier this step: still structurally present until the
	// end-of-step DeleteMarked sweep, but must not be a connect target.
	vb, _ := g.Vertex(b)
	vb.MarkedDeleted = true

	found, err := nearest.Search(g, a, "A", true, nearest.WithMaxDepth(2))
	require.NoError(t, err)
	require.Empty(t, found)
}

func TestWithMaxDepthRejectsNonPositive(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddVertex("A", 0, false)
	_, err := nearest.Search(g, a, "A", true, nearest.WithMaxDepth(0))
	require.ErrorIs(t, err, nearest.ErrOptionViolation)
}

func TestSearchUnknownSource(t *testing.T) {
	g := graph.NewGraph()
	_, err := nearest.Search(g, 999, "A", true)
	require.ErrorIs(t, err, nearest.ErrSourceNotFound)
}
