// Package guca implements a Graph Unfolding Machine: a deterministic
// rewrite engine that evolves a labeled undirected graph, one step at a
// time, under a user-supplied rule table.
//
// Each step snapshots every vertex's state, degree, and parents count,
// matches each vertex against the rule table under one of two traversal
// disciplines (resettable or continuable), and dispatches the first
// matching rule's operation — one of TurnToState, TryToConnectWith,
// TryToConnectWithNearest, GiveBirth, GiveBirthConnected, DisconnectFrom,
// or Die. Matching always reads the snapshot taken at step start, never
// live state, so mutations made earlier in a step never change which rule
// a later vertex matches; vertices are processed in ascending id order,
// which keeps the order-dependent parts (the birth cap, connections to
// vertices that died earlier in the step) deterministic. The engine stops after a configured step cap or
// after two consecutive steps in which no dispatched operation had any
// effect.
//
// The module is organized as:
//
//	graph/      — vertex storage, adjacency, and the snapshot/delete-marked split
//	rules/      — condition matching and rule-table selection, independent of storage
//	nearest/    — bounded breadth-first search for TryToConnectWithNearest
//	engine/     — the step loop, operation dispatcher, and run configuration
//	genetable/  — JSON/YAML persistence for rule tables
//	substrate/  — deterministic topology generators and persisted graph I/O
//	cmd/gucarun — a minimal embedding program tying the above together
package guca
