package nearest

import "github.com/guca-engine/guca/graph"

// Connect runs Search from u and then either connects u to every vertex
// in the found set (ConnectAll) or to one vertex chosen by TieBreaker. It
// returns the ids u was actually newly connected to (never includes ids
// AddEdge treated as a no-op, though that should not occur here since
// found-set members are never already neighbors of u by construction).
func Connect(g *graph.Graph, u int, requiredLabel string, hasLabel bool, opts ...Option) ([]int, error) {
	o, err := resolve(opts...)
	if err != nil {
		return nil, err
	}

	found, err := search(g, u, requiredLabel, hasLabel, o)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, nil
	}

	if o.ConnectAll {
		var connected []int
		for _, v := range found {
			if g.AddEdge(u, v) {
				connected = append(connected, v)
			}
		}

		return connected, nil
	}

	pick := found[0] // ascending order: minimum id, the stable/by_id/by_creation choice
	if o.TieBreaker == Random && o.RNG != nil {
		pick = found[o.RNG.Intn(len(found))]
	}
	if g.AddEdge(u, pick) {
		return []int{pick}, nil
	}

	return nil, nil
}
