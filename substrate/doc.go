// Package substrate builds initial graphs for the engine to evolve: a
// handful of deterministic topology generators (Path, Cycle, Star,
// Wheel, Complete, Grid), plus a codec for the persisted substrate
// exchange format: an ordered nodes list (1-based, "-" marking an
// absent vertex) and an edges list of 1-based id pairs.
//
// Generators write directly into a *graph.Graph rather than returning an
// intermediate representation — there is no weight/direction policy to
// resolve, so a Constructor only needs the target graph and the label to
// stamp new vertices with.
package substrate
