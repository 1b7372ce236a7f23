// Package rules defines the condition/operation vocabulary a Graph
// Unfolding Machine rewrites vertices with, plus the two components that
// turn a rule table and a vertex snapshot into "which rule, if any,
// applies": the matcher (Matches, MatchInt) and the selector (Select).
//
// Both components are pure: they read a Snapshot value and a []Rule
// slice and never touch a *graph.Graph. That keeps rule evaluation
// independent of storage, separating storage concerns from the
// algorithms that run over it, and is what guarantees snapshot
// isolation — a matcher that could see live fields could not be
// snapshot-isolated by construction.
package rules
