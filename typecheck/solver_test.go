package typecheck

import (
	"strings"
	"testing"

	"weft/types"
)

var (
	signalFloat = types.New(types.SignalWorld, types.FloatDomain)
	signalVec2  = types.New(types.SignalWorld, types.Vec2Domain)
	fieldFloat  = types.New(types.FieldWorld, types.FloatDomain)
	eventTrig   = types.New(types.EventWorld, types.TriggerDomain)
)

func solve(t *testing.T, constraints ...Constraint) (*Substitution, []TypeError) {
	t.Helper()
	return NewSolver().Solve(constraints)
}

func TestEqConcrete(t *testing.T) {
	_, errs := solve(t, NewEq(FromType(signalFloat), FromType(signalFloat)))
	if len(errs) != 0 {
		t.Fatalf("equal types: expected no errors, got %v", errs)
	}

	_, errs = solve(t, NewEq(FromType(signalFloat), FromType(fieldFloat)))
	if len(errs) != 1 {
		t.Fatalf("unequal types: expected one error, got %v", errs)
	}
	if errs[0].Message != "unification mismatch" {
		t.Fatalf("unexpected message: %s", errs[0].Message)
	}
}

func TestEqBindsVar(t *testing.T) {
	ctx := NewContext()
	v := ctx.Fresh("v")

	sub, errs := solve(t, NewEq(v, FromType(signalFloat)))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	bound, ok := sub.Lookup(v)
	if !ok || !bound.Equal(signalFloat) {
		t.Fatalf("expected %v bound to %v, got %v (%v)", v, signalFloat, bound, ok)
	}
}

func TestRebind(t *testing.T) {
	ctx := NewContext()
	v := ctx.Fresh("v")

	_, errs := solve(t,
		NewEq(v, FromType(signalFloat)),
		NewEq(v, FromType(signalFloat)),
	)
	if len(errs) != 0 {
		t.Fatalf("rebinding with an equal type: expected no errors, got %v", errs)
	}

	ctx = NewContext()
	v = ctx.Fresh("v")
	sub, errs := solve(t,
		NewEq(v, FromType(signalFloat)),
		NewEq(v, FromType(signalVec2)),
	)
	if len(errs) != 1 {
		t.Fatalf("conflicting rebind: expected one error, got %v", errs)
	}
	if errs[0].Message != "rebind conflict" {
		t.Fatalf("unexpected message: %s", errs[0].Message)
	}

	// The first binding wins.
	bound, ok := sub.Lookup(v)
	if !ok || !bound.Equal(signalFloat) {
		t.Fatalf("expected original binding to survive, got %v (%v)", bound, ok)
	}
}

func TestRebindThroughVarPair(t *testing.T) {
	ctx := NewContext()
	a := ctx.Fresh("a")
	b := ctx.Fresh("b")

	// Equating two variables that already hold different types is a
	// rebind of one of them, not a mismatch of concrete terms.
	_, errs := solve(t,
		NewEq(a, FromType(signalFloat)),
		NewEq(b, FromType(signalVec2)),
		NewEq(a, b),
	)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs[0].Message != "rebind conflict" {
		t.Fatalf("unexpected message: %s", errs[0].Message)
	}
}

func TestDeferredVarVar(t *testing.T) {
	ctx := NewContext()
	a := ctx.Fresh("a")
	b := ctx.Fresh("b")

	// Eq(a, b) can't bind on the first pass; once b resolves, a
	// follows in a later pass.
	sub, errs := solve(t,
		NewEq(a, b),
		NewEq(b, FromType(fieldFloat)),
	)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	bound, ok := sub.Lookup(a)
	if !ok || !bound.Equal(fieldFloat) {
		t.Fatalf("expected %v bound through deferral, got %v (%v)", a, bound, ok)
	}
}

func TestClassTable(t *testing.T) {
	if !ClassHas(Numeric, signalFloat) {
		t.Fatal("signal<float> must be Numeric")
	}
	if ClassHas(Numeric, eventTrig) {
		t.Fatal("event<trigger> must not be Numeric")
	}
	if !ClassHas(Combineable, eventTrig) {
		t.Fatal("event<trigger> must be Combineable")
	}
	if !ClassHas(Mappable, fieldFloat) {
		t.Fatal("field<float> must be Mappable")
	}
	if ClassHas(Mappable, signalFloat) {
		t.Fatal("signal<float> must not be Mappable")
	}
}

func TestClassConstraint(t *testing.T) {
	_, errs := solve(t, NewClass(FromType(eventTrig), Numeric))
	if len(errs) != 1 || errs[0].Message != "typeclass violation" {
		t.Fatalf("expected one typeclass violation, got %v", errs)
	}
}

func TestMembershipConstraints(t *testing.T) {
	_, errs := solve(t,
		NewHasWorld(FromType(signalFloat), types.SignalWorld),
		NewHasDomain(FromType(signalFloat), types.FloatDomain),
		NewInWorlds(FromType(fieldFloat), types.SignalWorld, types.FieldWorld),
		NewInDomains(FromType(signalVec2), types.Vec2Domain, types.Vec3Domain),
	)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	_, errs = solve(t,
		NewHasWorld(FromType(signalFloat), types.FieldWorld),
		NewInDomains(FromType(signalVec2), types.FloatDomain),
	)
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
}

func TestSameWorldSameDomain(t *testing.T) {
	_, errs := solve(t,
		NewSameWorld(FromType(signalFloat), FromType(signalVec2)),
		NewSameDomain(FromType(signalFloat), FromType(fieldFloat)),
	)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	_, errs = solve(t, NewSameWorld(FromType(signalFloat), FromType(fieldFloat)))
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
}

func TestPromoteSignalField(t *testing.T) {
	ctx := NewContext()
	out := ctx.Fresh("out")

	sub, errs := solve(t, NewPromote(out, FromType(signalFloat), FromType(fieldFloat), PromoteSignalField))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	bound, ok := sub.Lookup(out)
	if !ok || !bound.Equal(fieldFloat) {
		t.Fatalf("expected field<float>, got %v (%v)", bound, ok)
	}
}

func TestPromoteDomainMismatch(t *testing.T) {
	ctx := NewContext()
	out := ctx.Fresh("out")

	sub, errs := solve(t, NewPromote(out, FromType(signalFloat), FromType(signalVec2), PromoteSignalField))
	if len(errs) != 1 || errs[0].Message != "promotion failure" {
		t.Fatalf("expected one promotion failure, got %v", errs)
	}
	if _, ok := sub.Lookup(out); ok {
		t.Fatal("output must stay unresolved on promotion failure")
	}
}

func TestPromoteEvent(t *testing.T) {
	for _, rule := range []PromoteRule{PromoteSameWorld, PromoteSignalField} {
		ctx := NewContext()
		out := ctx.Fresh("out")

		_, errs := solve(t, NewPromote(out, FromType(eventTrig), FromType(signalFloat), rule))
		if len(errs) != 1 {
			t.Fatalf("rule %v: expected one error, got %v", rule, errs)
		}
		if errs[0].Message != "cannot promote event" {
			t.Fatalf("rule %v: unexpected message %s", rule, errs[0].Message)
		}
	}
}

func TestPromoteSameWorld(t *testing.T) {
	ctx := NewContext()
	out := ctx.Fresh("out")

	sub, errs := solve(t, NewPromote(out, FromType(signalFloat), FromType(signalFloat), PromoteSameWorld))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if bound, ok := sub.Lookup(out); !ok || !bound.Equal(signalFloat) {
		t.Fatalf("expected signal<float>, got %v (%v)", bound, ok)
	}

	ctx = NewContext()
	out = ctx.Fresh("out")
	_, errs = solve(t, NewPromote(out, FromType(signalFloat), FromType(fieldFloat), PromoteSameWorld))
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
}

func TestPromoteUnknownRule(t *testing.T) {
	ctx := NewContext()
	out := ctx.Fresh("out")

	_, errs := solve(t, NewPromote(out, FromType(signalFloat), FromType(signalFloat), PromoteRule(99)))
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if !strings.Contains(errs[0].Detail, "unknown promotion rule") {
		t.Fatalf("unexpected detail: %s", errs[0].Detail)
	}
}

func TestPromoteDefaultsUnboundInput(t *testing.T) {
	ctx := NewContext()
	a := ctx.Fresh("a")
	b := ctx.Fresh("b")
	out := ctx.Fresh("out")

	sub, errs := solve(t,
		NewEq(a, FromType(signalFloat)),
		NewPromote(out, a, b, PromoteSignalField),
	)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if bound, ok := sub.Lookup(b); !ok || !bound.Equal(signalFloat) {
		t.Fatalf("expected b defaulted to signal<float>, got %v (%v)", bound, ok)
	}
	if bound, ok := sub.Lookup(out); !ok || !bound.Equal(signalFloat) {
		t.Fatalf("expected out resolved to signal<float>, got %v (%v)", bound, ok)
	}
}

func TestFinalizeUnresolved(t *testing.T) {
	ctx := NewContext()
	v := ctx.Fresh("v")

	sub, errs := solve(t)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	if _, ok := sub.Concrete(v); ok {
		t.Fatal("an unbound variable must finalize as absent, never a guess")
	}
	if got, ok := sub.Concrete(FromType(signalFloat)); !ok || !got.Equal(signalFloat) {
		t.Fatal("a concrete term must finalize as itself")
	}
	if got := sub.Resolve(v); got != Ty(v) {
		t.Fatalf("an unbound variable must resolve to itself, got %v", got)
	}
}

func TestFixpointWithinBudget(t *testing.T) {
	// A short dependency chain resolves well within the pass budget.
	ctx := NewContext()
	vars := make([]*Var, 5)
	for i := range vars {
		vars[i] = ctx.Fresh("")
	}

	constraints := make([]Constraint, 0, len(vars))
	for i := len(vars) - 1; i > 0; i-- {
		constraints = append(constraints, NewEq(vars[i], vars[i-1]))
	}
	constraints = append(constraints, NewEq(vars[0], FromType(signalFloat)))

	sub, errs := solve(t, constraints...)
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
	for _, v := range vars {
		if bound, ok := sub.Lookup(v); !ok || !bound.Equal(signalFloat) {
			t.Fatalf("expected %v resolved, got %v (%v)", v, bound, ok)
		}
	}
}

func TestPassBudgetExhausted(t *testing.T) {
	// A chain deeper than the budget binds one variable per pass and
	// must report exhaustion instead of silently stopping.
	ctx := NewContext()
	vars := make([]*Var, MaxPasses+3)
	for i := range vars {
		vars[i] = ctx.Fresh("")
	}

	constraints := make([]Constraint, 0, len(vars))
	for i := len(vars) - 1; i > 0; i-- {
		constraints = append(constraints, NewEq(vars[i], vars[i-1]))
	}
	constraints = append(constraints, NewEq(vars[0], FromType(signalFloat)))

	_, errs := solve(t, constraints...)
	found := false
	for _, e := range errs {
		if e.Message == "solver pass budget exhausted" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a pass budget error, got %v", errs)
	}
}

func TestWithNode(t *testing.T) {
	errs := []TypeError{
		{Message: "unification mismatch"},
		{Message: "rebind conflict", Blame: Blame{Node: "other"}},
	}

	stamped := WithNode(errs, "n1")
	if stamped[0].Blame.Node != "n1" {
		t.Fatalf("expected node stamped, got %v", stamped[0].Blame)
	}
	if stamped[1].Blame.Node != "other" {
		t.Fatalf("existing blame must be preserved, got %v", stamped[1].Blame)
	}
	if errs[0].Blame.Node != "" {
		t.Fatal("input slice must not be mutated")
	}
}
