// Command gucarun is a minimal embedding program for the Graph Unfolding
// Machine: it loads a gene table and an optional substrate from disk,
// wires them into an engine.Engine, runs it to termination, and reports
// the resulting graph and rule-activity counters.
//
// It is deliberately thin: the engine itself has no CLI, no environment,
// and no persisted state of its own; this command is one embedding
// program that supplies input and consumes output, not part of the
// engine's core.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/guca-engine/guca/engine"
	"github.com/guca-engine/guca/genetable"
	"github.com/guca-engine/guca/graph"
	"github.com/guca-engine/guca/rules"
	"github.com/guca-engine/guca/substrate"
)

func main() {
	genePath := flag.String("genes", "", "path to a gene table JSON document")
	geneName := flag.String("gene", "", "gene name to run within the gene table")
	substratePath := flag.String("substrate", "", "optional path to a substrate JSON document")
	maxSteps := flag.Int("max-steps", -1, "maximum steps to run, negative for unbounded")
	maxVertices := flag.Int("max-vertices", 0, "maximum live vertices, 0 for unbounded")
	flag.Parse()

	if *genePath == "" || *geneName == "" {
		log.Fatal("gucarun: -genes and -gene are required")
	}

	table, err := loadTable(*genePath, *geneName)
	if err != nil {
		log.Fatalf("gucarun: %v", err)
	}

	g, err := loadSubstrate(*substratePath)
	if err != nil {
		log.Fatalf("gucarun: %v", err)
	}

	e, err := engine.New(g, table,
		engine.WithMaxSteps(*maxSteps),
		engine.WithMaxVertices(*maxVertices),
	)
	if err != nil {
		log.Fatalf("gucarun: setup: %v", err)
	}

	e.Run()

	log.Printf("ran %d steps, %d live vertices", e.Steps(), e.Graph.VertexCount())
	for _, id := range e.Graph.Vertices() {
		v, _ := e.Graph.Vertex(id)
		log.Printf("  vertex %d: state=%s degree=%d", id, v.State, e.Graph.Degree(id))
	}
	for i, r := range e.Rules {
		log.Printf("  rule %d: active=%t was_active=%t last_activation_index=%d", i, r.IsActive, r.WasActive, r.LastActivationIndex)
	}
}

func loadTable(path, gene string) ([]rules.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	gt, err := genetable.DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	table, err := gt.Rules(gene)
	if err != nil {
		return nil, err
	}
	if err := rules.ValidateTable(table); err != nil {
		return nil, err
	}

	return table, nil
}

// loadSubstrate reads a persisted substrate document, or returns a nil
// graph (engine.New seeds a fresh one-vertex graph) when path is empty.
func loadSubstrate(path string) (*graph.Graph, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f substrate.File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	g, _, err := substrate.Load(f)

	return g, err
}
