package engine

import (
	"math/rand"

	"github.com/guca-engine/guca/graph"
	"github.com/guca-engine/guca/nearest"
	"github.com/guca-engine/guca/rules"
)

// Engine runs the step protocol over a Graph and a rule table. It is
// single-threaded and sequential by design: a Step runs to completion
// before the next begins, and nothing here blocks on I/O.
type Engine struct {
	Graph *graph.Graph
	Rules []rules.Rule

	cfg         Config
	rng         *rand.Rand
	steps       int
	emptyStreak int
}

// New builds an Engine over g (seeding it with cfg.StartState if empty)
// and table, applying opts. It validates table up front so that a
// malformed rule table is reported before any step runs, never mid-run.
func New(g *graph.Graph, table []rules.Rule, opts ...Option) (*Engine, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := rules.ValidateTable(table); err != nil {
		return nil, err
	}

	if g == nil {
		g = graph.NewGraph()
	}
	if g.VertexCount() == 0 {
		g.AddVertex(cfg.StartState, 0, false)
	}

	var rng *rand.Rand
	if cfg.NearestTieBreaker == nearest.Random {
		if cfg.RNGSeed != nil {
			rng = rand.New(rand.NewSource(*cfg.RNGSeed))
		} else {
			// Configuration conflict: random tie-breaking without a
			// seed behaves as stable, silently.
			cfg.NearestTieBreaker = nearest.Stable
		}
	}

	return &Engine{Graph: g, Rules: table, cfg: cfg, rng: rng}, nil
}

// Steps returns the number of steps executed so far.
func (e *Engine) Steps() int { return e.steps }

// Run executes steps until MaxSteps is reached or two consecutive steps
// fire nothing, then performs the final DeleteMarked cleanup.
func (e *Engine) Run() {
	for e.cfg.MaxSteps < 0 || e.steps < e.cfg.MaxSteps {
		if e.Step() {
			e.emptyStreak = 0
		} else {
			e.emptyStreak++
		}
		if e.emptyStreak >= 2 {
			break
		}
	}
	e.Graph.DeleteMarked()
}

// Step executes exactly one step and reports whether any dispatched
// operation had an observable effect (a state change, a birth, an edge
// added or removed, a death). That effectiveness — not mere rule
// selection — is what "fired" means here; see DESIGN.md for the
// reasoning behind that choice.
func (e *Engine) Step() bool {
	e.Graph.SnapshotAll()
	ids := e.Graph.Vertices()
	fired := false

	for _, id := range ids {
		v, ok := e.Graph.Vertex(id)
		if !ok || v.MarkedDeleted {
			continue
		}

		snap := rules.Snapshot{
			State:        v.SavedState,
			PriorState:   v.PriorState,
			Degree:       v.SavedDegree,
			ParentsCount: v.SavedParents,
		}
		idx, matched := rules.Select(e.Rules, v.RuleCursor, snap, e.cfg.CountCompare, e.cfg.Transcription)
		if matched {
			r := &e.Rules[idx]
			changed := e.dispatch(v, r.Operation)

			if e.cfg.Transcription == rules.Continuable {
				v.RuleCursor = rules.NextCursor(idx, len(e.Rules))
			}

			if changed {
				r.IsActive = true
				r.WasActive = true
				if r.LastActivationIndex < 0 {
					r.LastActivationIndex = 0
				} else {
					r.LastActivationIndex++
				}
				fired = true
			}
		}

		// Updated once per vertex per step, outside snapshot time,
		// regardless of whether a rule fired for it.
		v.PriorState = v.SavedState
	}

	e.steps++

	return fired
}
