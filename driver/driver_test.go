package driver

import (
	"strings"
	"testing"

	"weft/blocks"
	"weft/ir"
	"weft/types"
)

func testSession() *Session {
	return NewSession(blocks.Builtin())
}

func TestCompilePropagatesAlongEdges(t *testing.T) {
	patch := &Patch{
		Nodes: []Node{
			{ID: "osc1", Block: "osc"},
			{ID: "sum", Block: "add"},
		},
		Edges: []Edge{
			{From: "osc1", FromPort: "out", To: "sum", ToPort: "a"},
		},
	}

	result, err := testSession().Compile(patch)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}

	sum := result.Instances["sum"]
	out, _ := sum.Types.Output("out")
	if !out.Equal(types.New(types.SignalWorld, types.FloatDomain)) {
		t.Fatalf("expected signal<float>, got %v", out)
	}
}

func TestCompileLowersArithmetic(t *testing.T) {
	patch := &Patch{
		Nodes: []Node{
			{ID: "ramp1", Block: "ramp"},
			{ID: "osc1", Block: "osc"},
			{ID: "scaled", Block: "multiply"},
		},
		Edges: []Edge{
			{From: "ramp1", FromPort: "out", To: "scaled", ToPort: "a"},
			{From: "osc1", FromPort: "out", To: "scaled", ToPort: "b"},
		},
	}

	result, err := testSession().Compile(patch)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no errors, got %v", result.Errors)
	}

	ops := result.Program.Ops()
	if len(ops) != 1 {
		t.Fatalf("expected one op, got %d", len(ops))
	}
	if ops[0].Code != ir.MulField {
		t.Fatalf("field promotion must pick the per-element op, got %v", ops[0].Code)
	}
	if result.Program.SlotType(ops[0].Out).World != types.FieldWorld {
		t.Fatal("output slot must hold the field type")
	}
}

func TestCompileFailedInstanceEmitsNoIR(t *testing.T) {
	patch := &Patch{
		Nodes: []Node{
			{ID: "pulse1", Block: "pulse"},
			{ID: "osc1", Block: "osc"},
			{ID: "sum", Block: "add"},
		},
		Edges: []Edge{
			{From: "pulse1", FromPort: "out", To: "sum", ToPort: "a"},
			{From: "osc1", FromPort: "out", To: "sum", ToPort: "b"},
		},
	}

	result, err := testSession().Compile(patch)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected type errors")
	}
	if result.Instances["sum"].OK {
		t.Fatal("expected the add instance to fail")
	}
	for _, op := range result.Program.Ops() {
		if op.Code == ir.AddSignal || op.Code == ir.AddField {
			t.Fatal("a failed instance must contribute no IR")
		}
	}

	for _, e := range result.Errors {
		if e.Blame.Node == "" {
			t.Fatalf("every error must carry node blame: %v", e)
		}
	}
}

func TestCompileCycle(t *testing.T) {
	patch := &Patch{
		Nodes: []Node{
			{ID: "a", Block: "add"},
			{ID: "b", Block: "add"},
		},
		Edges: []Edge{
			{From: "a", FromPort: "out", To: "b", ToPort: "a"},
			{From: "b", FromPort: "out", To: "a", ToPort: "a"},
		},
	}

	_, err := testSession().Compile(patch)
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("expected a cycle error, got %v", err)
	}
}

func TestCompileUnknownBlock(t *testing.T) {
	patch := &Patch{
		Nodes: []Node{{ID: "x", Block: "nope"}},
	}

	_, err := testSession().Compile(patch)
	if err == nil || !strings.Contains(err.Error(), "unknown block") {
		t.Fatalf("expected an unknown block error, got %v", err)
	}
}

func TestCompileDuplicateNode(t *testing.T) {
	patch := &Patch{
		Nodes: []Node{
			{ID: "x", Block: "osc"},
			{ID: "x", Block: "osc"},
		},
	}

	_, err := testSession().Compile(patch)
	if err == nil || !strings.Contains(err.Error(), "duplicate node id") {
		t.Fatalf("expected a duplicate id error, got %v", err)
	}
}

func TestSessionIDs(t *testing.T) {
	a, b := testSession(), testSession()
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("sessions must have distinct ids: %q / %q", a.ID(), b.ID())
	}
}
