// Package engine is the Graph Unfolding Machine's orchestrator: it owns
// the step protocol (snapshot → per-vertex select-and-dispatch → prior-
// state update), the seven-kind operation dispatcher, and the
// termination/rule-activity bookkeeping that drives one run to
// completion.
//
// Engine composes the three lower packages without any of them knowing
// about it: graph.Graph for storage, rules.Select/Matches for "which
// rule, if any", and nearest.Connect for TryToConnectWithNearest. Lower
// packages never depend back on engine.
//
// Configuration follows the functional-Option idiom used throughout
// this module: Config/Option/DefaultConfig, with an internal err field
// surfaced by New rather than a panic.
package engine
