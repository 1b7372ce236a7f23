// Package nearest implements the Graph Unfolding Machine's deterministic
// bounded-BFS nearest-neighbor search: given a source vertex, find the
// eligible vertices at the smallest depth any exist at, then either
// connect to all of them or to one, chosen by a configurable tie
// breaker.
//
// The search keeps its queue/visited state in local variables, built
// fresh per call, with a functional-Option configuration surface
// (Options/Option/DefaultOptions) — an internal err field captures
// invalid option values and is surfaced on first use rather than
// panicking.
//
// Unlike a general BFS walker, this searcher does not return a full
// traversal — only the found set at the first eligible depth — because
// that is all the engine's TryToConnectWithNearest operation needs.
package nearest
