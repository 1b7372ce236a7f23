package rules

import (
	"errors"
	"strconv"
)

// Sentinel errors surfaced by Validate/ValidateTable at setup time.
// These are the only errors this package raises; runtime matching and
// selection never error, and operand absence at dispatch time is a
// silent no-op, not a validation failure.
var (
	// ErrUnknownOperationKind indicates an Operation.Kind outside the
	// seven defined kinds.
	ErrUnknownOperationKind = errors.New("rules: unknown operation kind")

	// ErrMissingCurrentState indicates a Condition with an empty Current
	// label, which can never match a vertex.
	ErrMissingCurrentState = errors.New("rules: condition.current is required")

	// ErrMalformedBound indicates a *_ge/*_le pair where both bounds are
	// non-negative and le < ge, making the range unsatisfiable.
	ErrMalformedBound = errors.New("rules: malformed numeric bound (le < ge)")
)

// Validate checks a single rule's condition and operation for the
// setup-time validation classes: unknown operation kind, missing current
// state, and malformed numeric bounds. It does not check operand presence — a missing
// operand is a normal runtime no-op, not a validation error.
func Validate(r Rule) error {
	if !knownKinds[r.Operation.Kind] {
		return ErrUnknownOperationKind
	}
	if r.Condition.Current == "" {
		return ErrMissingCurrentState
	}
	if err := validateBound(r.Condition.ConnGE, r.Condition.ConnLE); err != nil {
		return err
	}
	if err := validateBound(r.Condition.ParentsGE, r.Condition.ParentsLE); err != nil {
		return err
	}

	return nil
}

// validateBound rejects a non-negative ge/le pair whose range is empty.
func validateBound(ge, le int) error {
	if ge >= 0 && le >= 0 && le < ge {
		return ErrMalformedBound
	}

	return nil
}

// ValidateTable validates every rule in table, in order, returning the
// first error encountered (wrapped with its index).
func ValidateTable(table []Rule) error {
	for i, r := range table {
		if err := Validate(r); err != nil {
			return &TableError{Index: i, Err: err}
		}
	}

	return nil
}

// TableError reports which rule in a table failed validation.
type TableError struct {
	Index int
	Err   error
}

func (e *TableError) Error() string {
	return "rules: rule " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *TableError) Unwrap() error { return e.Err }
