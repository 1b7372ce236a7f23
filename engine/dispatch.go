package engine

import (
	"github.com/guca-engine/guca/graph"
	"github.com/guca-engine/guca/nearest"
	"github.com/guca-engine/guca/rules"
)

// dispatch applies op's effect to v (which was selected by the current
// step's snapshot) and reports whether the graph actually changed. A
// missing operand, an already-satisfied DisconnectFrom, a birth blocked
// by MaxVertices, or a TryToConnectWith with no eligible target are all
// silent no-ops that report changed=false rather than an error —
// dispatch never returns one.
func (e *Engine) dispatch(v *graph.Vertex, op rules.Operation) bool {
	switch op.Kind {
	case rules.TurnToState:
		return e.turnToState(v, op)
	case rules.TryToConnectWith:
		return e.tryToConnectWith(v, op)
	case rules.TryToConnectWithNearest:
		return e.tryToConnectWithNearest(v, op)
	case rules.GiveBirth:
		return e.giveBirth(v, op)
	case rules.GiveBirthConnected:
		return e.giveBirthConnected(v, op)
	case rules.DisconnectFrom:
		return e.disconnectFrom(v, op)
	case rules.Die:
		return e.die(v)
	default:
		return false
	}
}

func (e *Engine) turnToState(v *graph.Vertex, op rules.Operation) bool {
	if !op.HasOperand() || v.State == op.Operand {
		return false
	}
	v.State = op.Operand

	return true
}

// tryToConnectWith scans every live vertex in ascending id order and
// connects v to each one — other than v, not already a neighbor, not
// born this step, not marked deleted — whose saved state matches the
// operand.
func (e *Engine) tryToConnectWith(v *graph.Vertex, op rules.Operation) bool {
	if !op.HasOperand() {
		return false
	}
	changed := false
	for _, id := range e.Graph.Vertices() {
		if id == v.ID {
			continue
		}
		cand, ok := e.Graph.Vertex(id)
		if !ok || cand.MarkedNew || cand.MarkedDeleted {
			continue
		}
		if _, alreadyNeighbor := v.Neighbors[id]; alreadyNeighbor {
			continue
		}
		if cand.SavedState != op.Operand {
			continue
		}

		if e.Graph.AddEdge(v.ID, id) {
			changed = true
		}
	}

	return changed
}

func (e *Engine) tryToConnectWithNearest(v *graph.Vertex, op rules.Operation) bool {
	if !op.HasOperand() {
		return false
	}
	opts := []nearest.Option{
		nearest.WithMaxDepth(e.cfg.NearestMaxDepth),
		nearest.WithTieBreaker(e.cfg.NearestTieBreaker),
		nearest.WithConnectAll(e.cfg.NearestConnectAll),
	}
	if e.rng != nil {
		opts = append(opts, nearest.WithRNG(e.rng))
	}
	connected, err := nearest.Connect(e.Graph, v.ID, op.Operand, true, opts...)
	if err != nil {
		return false
	}

	return len(connected) > 0
}

func (e *Engine) giveBirth(v *graph.Vertex, op rules.Operation) bool {
	if !op.HasOperand() {
		return false
	}
	if e.cfg.MaxVertices > 0 && e.Graph.VertexCount() >= e.cfg.MaxVertices {
		return false
	}
	e.Graph.AddVertex(op.Operand, v.SavedParents+1, true)

	return true
}

func (e *Engine) giveBirthConnected(v *graph.Vertex, op rules.Operation) bool {
	if !op.HasOperand() {
		return false
	}
	if e.cfg.MaxVertices > 0 && e.Graph.VertexCount() >= e.cfg.MaxVertices {
		return false
	}
	child := e.Graph.AddVertex(op.Operand, v.SavedParents+1, true)
	e.Graph.AddEdge(v.ID, child)

	return true
}

// disconnectFrom removes the edge to every neighbor whose saved state
// matches the operand.
func (e *Engine) disconnectFrom(v *graph.Vertex, op rules.Operation) bool {
	if !op.HasOperand() {
		return false
	}
	changed := false
	for _, id := range e.Graph.NeighborIDs(v.ID) {
		nb, ok := e.Graph.Vertex(id)
		if !ok || nb.SavedState != op.Operand {
			continue
		}

		if e.Graph.RemoveEdge(v.ID, id) {
			changed = true
		}
	}

	return changed
}

func (e *Engine) die(v *graph.Vertex) bool {
	if v.MarkedDeleted {
		return false
	}
	v.MarkedDeleted = true

	return true
}
