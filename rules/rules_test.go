package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guca-engine/guca/rules"
)

func TestMatchIntUnconstrained(t *testing.T) {
	require.True(t, rules.MatchInt(42, -1, -1, rules.CompareRange))
	require.True(t, rules.MatchInt(42, -1, -1, rules.CompareExact))
}

func TestMatchIntExactIgnoresUpperBound(t *testing.T) {
	require.True(t, rules.MatchInt(2, 2, 5, rules.CompareExact))
	require.False(t, rules.MatchInt(3, 2, 5, rules.CompareExact))
}

func TestMatchIntRangeBothSides(t *testing.T) {
	require.True(t, rules.MatchInt(3, 2, 5, rules.CompareRange))
	require.False(t, rules.MatchInt(1, 2, 5, rules.CompareRange))
	require.False(t, rules.MatchInt(6, 2, 5, rules.CompareRange))
	require.True(t, rules.MatchInt(100, 2, -1, rules.CompareRange))
}

func TestMatchesWildcardPrior(t *testing.T) {
	r := rules.NewRule(rules.Condition{Current: "A", Prior: "any", ConnGE: -1, ConnLE: -1, ParentsGE: -1, ParentsLE: -1}, rules.Operation{Kind: rules.TurnToState, Operand: "B"})
	snap := rules.Snapshot{State: "A", PriorState: "Unknown"}
	require.True(t, rules.Matches(snap, r, rules.CompareRange))
}

func TestMatchesDisabledNeverMatches(t *testing.T) {
	r := rules.NewRule(rules.Condition{Current: "A", Prior: "any", ConnGE: -1, ConnLE: -1, ParentsGE: -1, ParentsLE: -1}, rules.Operation{Kind: rules.Die})
	r.Enabled = false
	snap := rules.Snapshot{State: "A"}
	require.False(t, rules.Matches(snap, r, rules.CompareRange))
}

func TestSelectResettableAlwaysScansFromZero(t *testing.T) {
	table := []rules.Rule{
		rules.NewRule(rules.Condition{Current: "A", Prior: "any", ConnGE: -1, ConnLE: -1, ParentsGE: -1, ParentsLE: -1}, rules.Operation{Kind: rules.Die}),
		rules.NewRule(rules.Condition{Current: "A", Prior: "any", ConnGE: -1, ConnLE: -1, ParentsGE: -1, ParentsLE: -1}, rules.Operation{Kind: rules.Die}),
	}
	// Both rules match; a scan starting at the cursor (1) would return 1.
	idx, ok := rules.Select(table, 1, rules.Snapshot{State: "A"}, rules.CompareRange, rules.Resettable)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestSelectContinuableWrapsAround(t *testing.T) {
	always := func(state string) rules.Rule {
		return rules.NewRule(rules.Condition{Current: state, Prior: "any", ConnGE: -1, ConnLE: -1, ParentsGE: -1, ParentsLE: -1}, rules.Operation{Kind: rules.TurnToState, Operand: state})
	}
	table := []rules.Rule{always("A"), always("B"), always("C")}

	// Cursor starts at 2; only index 0 ("A") matches, requiring wrap-around.
	idx, ok := rules.Select(table, 2, rules.Snapshot{State: "A"}, rules.CompareRange, rules.Continuable)
	require.True(t, ok)
	require.Equal(t, 0, idx)
}

func TestNextCursorWrapsAndHandlesEmptyTable(t *testing.T) {
	require.Equal(t, 1, rules.NextCursor(0, 3))
	require.Equal(t, 0, rules.NextCursor(2, 3))
	require.Equal(t, 0, rules.NextCursor(0, 0))
}

func TestValidateRejectsUnknownKindAndBadBounds(t *testing.T) {
	bad := rules.Rule{Condition: rules.Condition{Current: "A", ConnGE: -1, ConnLE: -1, ParentsGE: -1, ParentsLE: -1}, Operation: rules.Operation{Kind: "Nonsense"}, Enabled: true}
	err := rules.Validate(bad)
	require.True(t, errors.Is(err, rules.ErrUnknownOperationKind))

	badBound := rules.NewRule(rules.Condition{Current: "A", ConnGE: 5, ConnLE: 2, ParentsGE: -1, ParentsLE: -1}, rules.Operation{Kind: rules.Die})
	err = rules.Validate(badBound)
	require.True(t, errors.Is(err, rules.ErrMalformedBound))
}

func TestValidateTableReportsIndex(t *testing.T) {
	table := []rules.Rule{
		rules.NewRule(rules.Condition{Current: "A", ConnGE: -1, ConnLE: -1, ParentsGE: -1, ParentsLE: -1}, rules.Operation{Kind: rules.Die}),
		{Condition: rules.Condition{Current: "A", ConnGE: -1, ConnLE: -1, ParentsGE: -1, ParentsLE: -1}, Operation: rules.Operation{Kind: "bogus"}, Enabled: true},
	}
	err := rules.ValidateTable(table)
	var tableErr *rules.TableError
	require.True(t, errors.As(err, &tableErr))
	require.Equal(t, 1, tableErr.Index)
}
