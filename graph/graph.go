package graph

import "sort"

// Graph owns every Vertex record in a run. It is the sole writer of
// vertex identity, adjacency, and snapshot fields; every other GUM
// component (rules, nearest, engine) reaches vertices only through it.
//
// Complexity notes below assume V = VertexCount() and d = degree of the
// vertex in question; Graph never scans the full edge set, because edges
// are not stored independently — they live only inside each vertex's
// Neighbors set. An edge is an unordered pair of vertex ids; there is no
// separate Edge record to keep in sync.
type Graph struct {
	vertices map[int]*Vertex
	nextID   int
}

// NewGraph returns an empty graph. The first AddVertex call assigns id 0;
// ids are never reused within the life of a Graph.
func NewGraph() *Graph {
	return &Graph{vertices: make(map[int]*Vertex)}
}

// AddVertex creates a new vertex with the given state and generational
// depth and returns its freshly assigned id.
//
// markNew controls the born-this-step visibility discipline: the seed
// vertex of an empty initial graph is created with markNew=false (it was
// never "born" during a step), while GiveBirth/GiveBirthConnected always
// pass markNew=true.
//
// Complexity: O(1).
func (g *Graph) AddVertex(state string, parentsCount int, markNew bool) int {
	id := g.nextID
	g.nextID++
	g.vertices[id] = &Vertex{
		ID:           id,
		State:        state,
		PriorState:   UnknownPriorState,
		Neighbors:    make(map[int]struct{}),
		ParentsCount: parentsCount,
		MarkedNew:    markNew,
		SavedState:   state,
		SavedParents: parentsCount,
	}

	return id
}

// HasVertex reports whether id names a live vertex.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id, or false if absent.
// Callers may mutate State/PriorState/Neighbors/ParentsCount/MarkedDeleted
// through the returned pointer; Saved* fields should only ever be written
// by SnapshotAll.
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// VertexCount returns the current number of live vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertices returns every live vertex id in ascending order. This is the
// deterministic processing order the engine steps through each vertex in.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// NeighborIDs returns id's neighbors in ascending order. Used wherever
// deterministic tie-breaking within a layer matters (nearest-neighbor
// BFS, TryToConnectWith iteration).
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) []int {
	v, ok := g.vertices[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(v.Neighbors))
	for nb := range v.Neighbors {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out
}

// Degree returns the live number of neighbors of id, or 0 if id is absent.
func (g *Graph) Degree(id int) int {
	v, ok := g.vertices[id]
	if !ok {
		return 0
	}

	return v.degree()
}

// AddEdge adds the undirected edge (a,b) if both endpoints exist, a != b,
// and the edge is not already present. Every other case is a silent
// no-op — AddEdge preconditions are never errors — and AddEdge reports
// whether it actually added the edge, so callers that care
// (TryToConnectWith, nearest.Connect) can count effective changes.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b int) bool {
	if a == b {
		return false
	}
	va, ok := g.vertices[a]
	if !ok {
		return false
	}
	vb, ok := g.vertices[b]
	if !ok {
		return false
	}
	if _, exists := va.Neighbors[b]; exists {
		return false
	}
	va.Neighbors[b] = struct{}{}
	vb.Neighbors[a] = struct{}{}

	return true
}

// RemoveEdge removes the undirected edge (a,b) if present. It reports
// whether an edge was actually removed.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int) bool {
	va, ok := g.vertices[a]
	if !ok {
		return false
	}
	vb, ok := g.vertices[b]
	if !ok {
		return false
	}
	if _, exists := va.Neighbors[b]; !exists {
		return false
	}
	delete(va.Neighbors, b)
	delete(vb.Neighbors, a)

	return true
}

// removeVertex deletes id's record and purges it from every remaining
// neighbor set. It is unexported: the only caller, within this package,
// is DeleteMarked. Vertex removal is reserved for end-of-step cleanup so
// that ids and iteration stay stable mid-step.
//
// Complexity: O(d).
func (g *Graph) removeVertex(id int) {
	v, ok := g.vertices[id]
	if !ok {
		return
	}
	for nb := range v.Neighbors {
		if other, ok := g.vertices[nb]; ok {
			delete(other.Neighbors, id)
		}
	}
	delete(g.vertices, id)
}

// SnapshotAll is the step's synchronization barrier: for every live
// vertex it copies State/ParentsCount/degree into SavedState/SavedParents/
// SavedDegree, and clears MarkedNew. Rule matching reads only the Saved*
// fields, so structural changes made earlier in a step never influence
// matching decisions made later in the same step.
//
// Complexity: O(V).
func (g *Graph) SnapshotAll() {
	for _, v := range g.vertices {
		v.SavedState = v.State
		v.SavedParents = v.ParentsCount
		v.SavedDegree = v.degree()
		v.MarkedNew = false
	}
}

// DeleteMarked removes every vertex whose MarkedDeleted flag is set,
// along with its incident edges. It is the only place vertex removal
// occurs; Die itself only flags a vertex, keeping deletion two-phase.
//
// Complexity: O(V+d) over the marked set.
func (g *Graph) DeleteMarked() {
	var dead []int
	for id, v := range g.vertices {
		if v.MarkedDeleted {
			dead = append(dead, id)
		}
	}
	sort.Ints(dead)
	for _, id := range dead {
		g.removeVertex(id)
	}
}
