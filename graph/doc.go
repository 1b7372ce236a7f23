// Package graph is the vertex/edge catalog that backs a Graph Unfolding
// Machine: an in-memory undirected graph with integer vertex identity,
// per-vertex labels, and the snapshot fields the rewrite engine's rule
// matcher reads from.
//
// Unlike a general-purpose graph library, this store is deliberately
// narrow: no directedness, no weights, no multi-edges, no self-loops —
// the GUM model never needs them. What it does carry, because the engine
// depends on it, is the two-phase step discipline:
//
//   - SnapshotAll freezes State/ParentsCount/degree into SavedState/
//     SavedParents/SavedDegree and clears MarkedNew. Rule matching only
//     ever reads the Saved* fields, never State directly, so mutations
//     made earlier in a step cannot influence matching decisions made
//     later in the same step.
//   - Die never removes a vertex; it only sets MarkedDeleted. Removal —
//     of the vertex and every edge touching it — happens in DeleteMarked,
//     which the engine calls once, after its run stops.
//
// Ascending-id iteration (Vertices, NeighborIDs) is the sole source of
// determinism in the engine: the same graph, rule table, and config
// always walk vertices and neighbors in the same order.
//
// Concurrency: none. A GUM step runs to completion before the next
// begins (see the engine package); this store carries no locks.
package graph
