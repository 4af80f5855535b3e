package document

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bobbyhiddn/canvaskit/pkg/canvas"
)

const hierarchicalDoc = `
title: Order flow
networks:
  - id: backend
    factories:
      - id: ingest
        machines:
          - id: workers
            nodes:
              - id: parse
                type: process
                outputs: [validate]
              - id: validate
                type: decision
`

const flatDoc = `
nodes:
  - id: parse
    outputs: [validate]
  - id: validate
`

func TestRead_Hierarchical(t *testing.T) {
	c, err := Read(strings.NewReader(hierarchicalDoc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if c.Title != "Order flow" {
		t.Errorf("Title = %q, want %q", c.Title, "Order flow")
	}
	if len(c.Networks) != 1 || c.Networks[0].ID != "backend" {
		t.Fatalf("Networks = %+v, want one network %q", c.Networks, "backend")
	}
	if got := len(c.Nodes()); got != 2 {
		t.Errorf("Nodes() = %d nodes, want 2", got)
	}

	conns := c.Connections()
	want := canvas.Connection{From: "parse", To: "validate"}
	if len(conns) != 1 || conns[0] != want {
		t.Errorf("Connections() = %v, want [%v]", conns, want)
	}
}

func TestRead_FlatWrapsGeneratedContainers(t *testing.T) {
	c, err := Read(strings.NewReader(flatDoc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if len(c.Networks) != 1 {
		t.Fatalf("Networks = %d, want 1", len(c.Networks))
	}
	nw := c.Networks[0]
	if nw.ID != "network-1" {
		t.Errorf("network ID = %q, want %q", nw.ID, "network-1")
	}
	if len(nw.Factories) != 1 || nw.Factories[0].ID != "factory-1" {
		t.Fatalf("factories = %+v, want one factory %q", nw.Factories, "factory-1")
	}
	machines := nw.Factories[0].Machines
	if len(machines) != 1 || machines[0].ID != "machine-1" {
		t.Fatalf("machines = %+v, want one machine %q", machines, "machine-1")
	}
	if got := len(machines[0].Nodes); got != 2 {
		t.Errorf("nodes = %d, want 2", got)
	}
}

func TestRead_GeneratesMissingNodeIDs(t *testing.T) {
	doc := `
nodes:
  - label: First
  - label: Second
`
	c, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	nodes := c.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("Nodes() = %d, want 2", len(nodes))
	}
	if nodes[0].ID == "" || nodes[1].ID == "" {
		t.Error("generated node IDs are empty")
	}
	if nodes[0].ID == nodes[1].ID {
		t.Errorf("generated node IDs collide: %q", nodes[0].ID)
	}
}

func TestRead_EmptyDocument(t *testing.T) {
	_, err := Read(strings.NewReader("title: nothing here\n"))
	if !errors.Is(err, ErrEmptyDocument) {
		t.Errorf("Read() error = %v, want ErrEmptyDocument", err)
	}
}

func TestRead_MalformedYAML(t *testing.T) {
	if _, err := Read(strings.NewReader("nodes: [")); err == nil {
		t.Error("Read() error = nil for malformed YAML")
	}
}

func TestRead_DuplicateNodeID(t *testing.T) {
	doc := `
nodes:
  - id: a
  - id: a
`
	_, err := Read(strings.NewReader(doc))
	if !errors.Is(err, canvas.ErrDuplicateNodeID) {
		t.Errorf("Read() error = %v, want ErrDuplicateNodeID", err)
	}
}

func TestRead_DanglingReferencesAccepted(t *testing.T) {
	doc := `
nodes:
  - id: a
    outputs: [ghost]
`
	if _, err := Read(strings.NewReader(doc)); err != nil {
		t.Errorf("Read() error = %v, want nil for dangling reference", err)
	}
}

func TestWrite_RoundTripPreservesPositions(t *testing.T) {
	c, err := Read(strings.NewReader(hierarchicalDoc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	parse, _ := c.Node("parse")
	parse.X, parse.Y = 150, 170
	parse.Width, parse.Height = 250, 120

	var buf bytes.Buffer
	if err := Write(c, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read(written) error = %v", err)
	}
	got, ok := back.Node("parse")
	if !ok {
		t.Fatal("node parse missing after round trip")
	}
	if got.X != 150 || got.Y != 170 {
		t.Errorf("position = (%v, %v), want (150, 170)", got.X, got.Y)
	}
	if got.Width != 250 || got.Height != 120 {
		t.Errorf("size = %vx%v, want 250x120", got.Width, got.Height)
	}
}

func TestWrite_FlatBecomesHierarchical(t *testing.T) {
	c, err := Read(strings.NewReader(flatDoc))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(c, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "networks:") {
		t.Errorf("written document lacks networks section:\n%s", out)
	}
	if !strings.Contains(out, "machine-1") {
		t.Errorf("written document lacks generated machine id:\n%s", out)
	}
}
