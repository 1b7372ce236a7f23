package substrate

import "github.com/guca-engine/guca/graph"

// absentSentinel marks a position in a persisted nodes list as having no
// vertex.
const absentSentinel = "-"

// File is the persisted substrate exchange format: an ordered nodes list
// (1-based positions, absentSentinel for a gap) and an edges list of
// 1-based position pairs. Struct tags cover both JSON and YAML so
// genetable's codecs and this one share one shape.
type File struct {
	Nodes []string `json:"nodes" yaml:"nodes"`
	Edges [][2]int `json:"edges" yaml:"edges"`
}

// Load decodes f into a fresh Graph, mapping position i (1-based, skipping
// absent slots) to a freshly assigned vertex id in ascending position
// order. It returns a slice mapping 1-based position to graph id (-1 for
// an absent position — graph ids start at 0, so 0 cannot double as the
// "absent" sentinel), so callers can translate further persisted
// references (e.g. a rule table keyed by position) after loading.
func Load(f File) (*graph.Graph, []int, error) {
	g := graph.NewGraph()
	posToID := make([]int, len(f.Nodes)+1) // index 0 unused, positions are 1-based
	for i := range posToID {
		posToID[i] = -1
	}

	for i, state := range f.Nodes {
		pos := i + 1
		if state == absentSentinel {
			continue
		}
		posToID[pos] = g.AddVertex(state, 0, false)
	}

	for _, e := range f.Edges {
		a, b := e[0], e[1]
		if a == b {
			return nil, nil, ErrSelfLoop
		}
		if a < 1 || a >= len(posToID) || b < 1 || b >= len(posToID) {
			return nil, nil, ErrUnknownVertexRef
		}
		idA, idB := posToID[a], posToID[b]
		if idA < 0 || idB < 0 || !g.HasVertex(idA) || !g.HasVertex(idB) {
			return nil, nil, ErrUnknownVertexRef
		}
		g.AddEdge(idA, idB)
	}

	return g, posToID, nil
}

// Save encodes g into the persisted format. Graph ids are remapped to
// contiguous 1-based positions in ascending id order — the persisted
// format has no notion of the monotonically-increasing ids a live Graph
// assigns, only positions.
func Save(g *graph.Graph) File {
	ids := g.Vertices()
	idToPos := make(map[int]int, len(ids))
	f := File{Nodes: make([]string, len(ids))}

	for i, id := range ids {
		idToPos[id] = i + 1
		v, _ := g.Vertex(id)
		f.Nodes[i] = v.State
	}

	seen := make(map[[2]int]bool)
	for _, id := range ids {
		for _, nb := range g.NeighborIDs(id) {
			pa, pb := idToPos[id], idToPos[nb]
			if pa > pb {
				pa, pb = pb, pa
			}
			key := [2]int{pa, pb}
			if seen[key] {
				continue
			}
			seen[key] = true
			f.Edges = append(f.Edges, key)
		}
	}

	return f
}
