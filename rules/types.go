package rules

// CountCompare selects how the numeric predicate (MatchInt) interprets a
// condition's ge/le bounds.
type CountCompare string

const (
	// CompareRange checks both bounds: ge <= val <= le (either side may
	// be unconstrained when negative).
	CompareRange CountCompare = "range"

	// CompareExact requires val == ge when ge is given, ignoring le
	// entirely; it falls back to range semantics when ge < 0.
	CompareExact CountCompare = "exact"
)

// Transcription selects how the selector walks the rule table for a
// given vertex.
type Transcription string

const (
	// Resettable always scans the rule table from index 0.
	Resettable Transcription = "resettable"

	// Continuable resumes each vertex's scan from its own RuleCursor,
	// wrapping around to the start if nothing matches past the cursor.
	Continuable Transcription = "continuable"
)

// OperationKind enumerates the seven operations a matched rule may
// dispatch. The zero value is not a valid kind.
type OperationKind string

const (
	TurnToState             OperationKind = "TurnToState"
	TryToConnectWith        OperationKind = "TryToConnectWith"
	TryToConnectWithNearest OperationKind = "TryToConnectWithNearest"
	GiveBirth               OperationKind = "GiveBirth"
	GiveBirthConnected      OperationKind = "GiveBirthConnected"
	DisconnectFrom          OperationKind = "DisconnectFrom"
	Die                     OperationKind = "Die"
)

// knownKinds backs Validate's membership check.
var knownKinds = map[OperationKind]bool{
	TurnToState:             true,
	TryToConnectWith:        true,
	TryToConnectWithNearest: true,
	GiveBirth:               true,
	GiveBirthConnected:      true,
	DisconnectFrom:          true,
	Die:                     true,
}

// anyPrior is the wildcard prior-state value: a condition using it
// matches regardless of the vertex's PriorState, including
// graph.UnknownPriorState.
const anyPrior = "any"

// Condition is the match predicate half of a Rule. A negative bound on
// either side of a *_ge/*_le pair means "unconstrained on this side".
type Condition struct {
	// Current is the required current (saved) label. Always required.
	Current string

	// Prior is the required prior label, or the wildcard "any".
	Prior string

	// ConnGE, ConnLE bound the vertex's saved degree.
	ConnGE, ConnLE int

	// ParentsGE, ParentsLE bound the vertex's saved generational depth.
	ParentsGE, ParentsLE int
}

// Operation is a dispatch instruction: a kind plus an optional operand
// label. Operand == "" means absent; every operation but Die requires
// one, and dispatch treats a missing operand as a silent no-op rather
// than an error.
type Operation struct {
	Kind    OperationKind
	Operand string
}

// HasOperand reports whether this operation carries a non-empty operand.
func (o Operation) HasOperand() bool { return o.Operand != "" }

// Rule pairs a Condition with an Operation, an enabled flag, and runtime
// activity counters kept for diagnostics only — they never feed back
// into matching or selection.
type Rule struct {
	Condition Condition
	Operation Operation

	// Enabled gates matching entirely: a disabled rule never matches,
	// regardless of its condition.
	Enabled bool

	// IsActive/WasActive/LastActivationIndex are bumped by the engine
	// each time this rule is selected and its dispatched operation changes
	// the graph; see engine.Step.
	// LastActivationIndex starts at -1 and becomes 0 on first activation,
	// matching the original reference implementation's representation of
	// "no activations yet".
	IsActive            bool
	WasActive           bool
	LastActivationIndex int
}

// NewRule builds an enabled Rule with activity counters at their initial
// values (IsActive/WasActive false, LastActivationIndex -1).
func NewRule(cond Condition, op Operation) Rule {
	return Rule{
		Condition:           cond,
		Operation:           op,
		Enabled:             true,
		LastActivationIndex: -1,
	}
}

// Snapshot is the read-only view of a vertex the matcher consults. It
// never references graph.Vertex directly, so this package stays free of
// any dependency on graph storage.
type Snapshot struct {
	State        string
	PriorState   string
	Degree       int
	ParentsCount int
}
