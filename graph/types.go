package graph

import "errors"

// Sentinel errors for the graph package.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an edge was requested between a vertex and itself.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateVertexID indicates a construction-time vertex id collision.
	ErrDuplicateVertexID = errors.New("graph: duplicate vertex id")
)

// UnknownPriorState is the sentinel prior-label a vertex carries until it
// has completed its first step.
const UnknownPriorState = "Unknown"

// Vertex is one node of a GUM graph. Identity (ID) is a monotonically
// assigned integer, never reused within a run.
//
// State/PriorState/Neighbors/ParentsCount are live fields, mutated by the
// operation dispatcher during a step. SavedState/SavedDegree/SavedParents
// are written exclusively by Graph.SnapshotAll and are the only fields the
// rule matcher consults — see doc.go for why that separation matters.
type Vertex struct {
	// ID is the stable integer identity of this vertex.
	ID int

	// State is the current label.
	State string

	// PriorState is the label observed at the end of the previous step.
	// It starts at UnknownPriorState and is updated once per step, after
	// rule dispatch, regardless of whether a rule fired for this vertex.
	PriorState string

	// Neighbors is the set of adjacent vertex ids. Symmetric by
	// construction: b is in a.Neighbors iff a is in b.Neighbors.
	Neighbors map[int]struct{}

	// ParentsCount is the generational depth from the seed vertex.
	ParentsCount int

	// MarkedNew is true only during the step in which this vertex was
	// born. SnapshotAll clears it at the start of the following step.
	MarkedNew bool

	// MarkedDeleted is set by the Die operation. The vertex is removed,
	// along with its incident edges, by the next DeleteMarked call.
	MarkedDeleted bool

	// SavedState, SavedDegree, SavedParents are the read-only snapshot
	// fields rule matching consults. They are frozen at the start of
	// each step by SnapshotAll.
	SavedState   string
	SavedDegree  int
	SavedParents int

	// RuleCursor is the per-vertex index used only by the continuable
	// rule-table traversal discipline. It starts at 0 and is advanced by
	// the engine after a successful match is dispatched.
	RuleCursor int
}

// degree returns the live number of neighbors.
func (v *Vertex) degree() int { return len(v.Neighbors) }
