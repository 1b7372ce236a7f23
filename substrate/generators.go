package substrate

import (
	"fmt"

	"github.com/guca-engine/guca/graph"
)

// File-local constants: method tags for error context, and parameter
// minima, named up front rather than scattered as magic numbers through
// the bodies below.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	methodGrid     = "Grid"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4 // outer ring is Cycle(n-1), which itself needs >= 3
	minCompleteNodes = 1
	minGridDim       = 1
)

// Constructor applies one deterministic topology to g, returning the ids
// it created in the order it created them. Constructors validate their
// parameters early and return a sentinel error rather than panic or
// leave g partially built in a way the caller cannot detect.
type Constructor func(g *graph.Graph) ([]int, error)

// Generate runs each constructor against g in order, concatenating their
// id slices: one entry point, deterministic composition order, first
// error wins.
func Generate(g *graph.Graph, cons ...Constructor) ([]int, error) {
	var all []int
	for _, c := range cons {
		ids, err := c(g)
		if err != nil {
			return nil, err
		}
		all = append(all, ids...)
	}

	return all, nil
}

// Path returns a Constructor building an n-vertex simple path, every
// vertex seeded with state, edges (i-1)-i for i=1..n-1.
func Path(n int, state string) Constructor {
	return func(g *graph.Graph) ([]int, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, n, state)
		for i := 1; i < n; i++ {
			g.AddEdge(ids[i-1], ids[i])
		}

		return ids, nil
	}
}

// Cycle returns a Constructor building an n-vertex simple cycle, edges
// i-(i+1 mod n) for i=0..n-1.
func Cycle(n int, state string) Constructor {
	return func(g *graph.Graph) ([]int, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, n, state)
		for i := 0; i < n; i++ {
			g.AddEdge(ids[i], ids[(i+1)%n])
		}

		return ids, nil
	}
}

// Star returns a Constructor building a hub with n-1 leaves. The hub is
// the first id returned; spokes run hub-leaf[i] in ascending leaf order.
func Star(n int, hubState, leafState string) Constructor {
	return func(g *graph.Graph) ([]int, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := g.AddVertex(hubState, 0, false)
		ids := []int{hub}
		for i := 1; i < n; i++ {
			leaf := g.AddVertex(leafState, 0, false)
			g.AddEdge(hub, leaf)
			ids = append(ids, leaf)
		}

		return ids, nil
	}
}

// Wheel returns a Constructor building Cycle(n-1) plus a hub connected to
// every ring vertex. The hub is the last id returned.
func Wheel(n int, hubState, ringState string) Constructor {
	return func(g *graph.Graph) ([]int, error) {
		if n < minWheelNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ring, err := Cycle(n-1, ringState)(g)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodWheel, err)
		}
		hub := g.AddVertex(hubState, 0, false)
		for _, r := range ring {
			g.AddEdge(hub, r)
		}

		return append(ring, hub), nil
	}
}

// Complete returns a Constructor building K_n: every unordered pair
// connected exactly once.
func Complete(n int, state string) Constructor {
	return func(g *graph.Graph) ([]int, error) {
		if n < minCompleteNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, n, state)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(ids[i], ids[j])
			}
		}

		return ids, nil
	}
}

// Grid returns a Constructor building a rows*cols orthogonal 4-neighbor
// grid in row-major order, connecting each cell to its right and bottom
// neighbor where present.
func Grid(rows, cols int, state string) Constructor {
	return func(g *graph.Graph) ([]int, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d cols=%d (each must be >= %d): %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids := make([][]int, rows)
		var all []int
		for r := 0; r < rows; r++ {
			ids[r] = make([]int, cols)
			for c := 0; c < cols; c++ {
				id := g.AddVertex(state, 0, false)
				ids[r][c] = id
				all = append(all, id)
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					g.AddEdge(ids[r][c], ids[r][c+1])
				}
				if r+1 < rows {
					g.AddEdge(ids[r][c], ids[r+1][c])
				}
			}
		}

		return all, nil
	}
}

func addVertices(g *graph.Graph, n int, state string) []int {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = g.AddVertex(state, 0, false)
	}

	return ids
}
