package substrate

import "errors"

// ErrTooFewVertices indicates a generator parameter below its minimum.
var ErrTooFewVertices = errors.New("substrate: parameter too small")

// ErrDuplicateVertexID indicates two entries in a persisted nodes list
// resolve to the same graph id. Since position determines id, Load never
// produces such a collision and does not return this error.
var ErrDuplicateVertexID = errors.New("substrate: duplicate vertex id")

// ErrUnknownVertexRef indicates an edges entry in the persisted format
// references a position the nodes list marks absent ("-") or that is out
// of range.
var ErrUnknownVertexRef = errors.New("substrate: edge references unknown vertex")

// ErrSelfLoop indicates a persisted edges entry pairs a vertex with
// itself, which the graph store never allows.
var ErrSelfLoop = errors.New("substrate: self-loop in edges list")
