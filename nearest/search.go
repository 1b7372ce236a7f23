package nearest

import (
	"sort"

	"github.com/guca-engine/guca/graph"
)

// queueItem pairs a vertex id with its BFS depth from the source.
type queueItem struct {
	id    int
	depth int
}

// Search runs a bounded BFS from u and returns the eligible vertices
// found at the smallest depth any exist at, in ascending id order. An
// empty, nil-error result means nothing eligible was reachable within
// MaxDepth.
//
// Eligibility (checked before expanding a candidate further): v != u,
// v is not already a neighbor of u, v is not MarkedNew, v is not
// MarkedDeleted, and — when requiredLabel is given — v's SavedState
// equals it.
func Search(g *graph.Graph, u int, requiredLabel string, hasLabel bool, opts ...Option) ([]int, error) {
	o, err := resolve(opts...)
	if err != nil {
		return nil, err
	}

	return search(g, u, requiredLabel, hasLabel, o)
}

func search(g *graph.Graph, u int, requiredLabel string, hasLabel bool, o Options) ([]int, error) {
	if !g.HasVertex(u) {
		return nil, ErrSourceNotFound
	}

	visited := map[int]bool{u: true}
	queue := []queueItem{{id: u, depth: 0}}
	foundDepth := -1
	var found []int

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Once a shallower (or equal) eligible depth is known, anything
		// strictly deeper is irrelevant: stop draining the queue.
		if foundDepth >= 0 && cur.depth > foundDepth {
			break
		}

		if cur.depth > 0 && cur.depth <= o.MaxDepth && eligible(g, u, cur.id, requiredLabel, hasLabel) {
			foundDepth = cur.depth
			found = append(found, cur.id)
			continue
		}

		if cur.depth < o.MaxDepth {
			for _, nb := range g.NeighborIDs(cur.id) {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, queueItem{id: nb, depth: cur.depth + 1})
				}
			}
		}
	}

	sort.Ints(found)

	return found, nil
}

// eligible is the candidate predicate: not the source, not already a
// neighbor, not born this step, not marked for death this step, and
// matching the required label if one was given.
func eligible(g *graph.Graph, u int, candidate int, requiredLabel string, hasLabel bool) bool {
	if candidate == u {
		return false
	}
	uv, ok := g.Vertex(u)
	if !ok {
		return false
	}
	if _, isNeighbor := uv.Neighbors[candidate]; isNeighbor {
		return false
	}
	cv, ok := g.Vertex(candidate)
	if !ok {
		return false
	}
	if cv.MarkedNew || cv.MarkedDeleted {
		return false
	}
	if hasLabel && cv.SavedState != requiredLabel {
		return false
	}

	return true
}
