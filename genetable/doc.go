// Package genetable persists and loads rule tables in their exchange
// format: a mapping from a "gene name" to an ordered list of rule
// entries, each carrying a condition object and an operation object
// with field names currentState, priorState, allConnectionsCount_GE,
// and so on.
//
// The package is a pure translation layer between that wire shape and
// rules.Rule/rules.Condition/rules.Operation — it holds no engine state
// and performs no validation beyond what decoding itself requires;
// rules.ValidateTable is still the authority on whether a decoded table
// is fit to run.
package genetable
