package genetable

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/guca-engine/guca/rules"
)

// wildcardPrior is the wire-format spelling of rules' "any" prior
// wildcard; it happens to be identical, but spelling it out here keeps
// this package from depending on rules' unexported constant.
const wildcardPrior = "any"

// ErrUnknownGene is returned by GeneTable.Rules when asked for a gene name the
// table does not contain.
var ErrUnknownGene = errors.New("genetable: unknown gene name")

// DecodeJSON parses data as a GeneTable document.
func DecodeJSON(data []byte) (GeneTable, error) {
	var gt GeneTable
	if err := json.Unmarshal(data, &gt); err != nil {
		return nil, fmt.Errorf("genetable: decode json: %w", err)
	}

	return gt, nil
}

// EncodeJSON serializes gt as indented JSON.
func EncodeJSON(gt GeneTable) ([]byte, error) {
	data, err := json.MarshalIndent(gt, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("genetable: encode json: %w", err)
	}

	return data, nil
}

// DecodeYAML parses data as a GeneTable document.
func DecodeYAML(data []byte) (GeneTable, error) {
	var gt GeneTable
	if err := yaml.Unmarshal(data, &gt); err != nil {
		return nil, fmt.Errorf("genetable: decode yaml: %w", err)
	}

	return gt, nil
}

// EncodeYAML serializes gt as YAML.
func EncodeYAML(gt GeneTable) ([]byte, error) {
	data, err := yaml.Marshal(gt)
	if err != nil {
		return nil, fmt.Errorf("genetable: encode yaml: %w", err)
	}

	return data, nil
}

// Rules translates gene's entries, in order, into a rules.Rule table
// ready for rules.ValidateTable and engine.New. An entry's operation.kind
// is carried through verbatim as a rules.OperationKind — a gene table
// persisting an unrecognized kind decodes successfully here and only
// fails later, at rules.ValidateTable: validation is a setup-time
// concern, separate from decoding.
func (gt GeneTable) Rules(gene string) ([]rules.Rule, error) {
	table, ok := gt[gene]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGene, gene)
	}

	out := make([]rules.Rule, len(table))
	for i, entry := range table {
		out[i] = entry.toRule()
	}

	return out, nil
}

func (e Entry) toRule() rules.Rule {
	prior := e.Condition.PriorState
	if prior == "" {
		prior = wildcardPrior
	}
	r := rules.NewRule(
		rules.Condition{
			Current:   e.Condition.CurrentState,
			Prior:     prior,
			ConnGE:    e.Condition.AllConnectionsCountGE,
			ConnLE:    e.Condition.AllConnectionsCountLE,
			ParentsGE: e.Condition.ParentsCountGE,
			ParentsLE: e.Condition.ParentsCountLE,
		},
		rules.Operation{
			Kind:    rules.OperationKind(e.Operation.Kind),
			Operand: e.Operation.OperandNodeState,
		},
	)

	return r
}

// FromRules builds a Table from an in-memory rule list, the reverse of
// Rules — used when an embedding program wants to persist a table an
// engine.Engine is currently running.
func FromRules(table []rules.Rule) Table {
	out := make(Table, len(table))
	for i, r := range table {
		out[i] = fromRule(r)
	}

	return out
}

func fromRule(r rules.Rule) Entry {
	return Entry{
		Condition: Condition{
			CurrentState:          r.Condition.Current,
			PriorState:            r.Condition.Prior,
			AllConnectionsCountGE: r.Condition.ConnGE,
			AllConnectionsCountLE: r.Condition.ConnLE,
			ParentsCountGE:        r.Condition.ParentsGE,
			ParentsCountLE:        r.Condition.ParentsLE,
		},
		Operation: Operation{
			Kind:             string(r.Operation.Kind),
			OperandNodeState: r.Operation.Operand,
		},
	}
}
