package types

import "testing"

func TestArity(t *testing.T) {
	cases := []struct {
		domain Domain
		arity  int
	}{
		{FloatDomain, 1},
		{BoolDomain, 1},
		{TriggerDomain, 1},
		{Vec2Domain, 2},
		{Index2Domain, 2},
		{Vec3Domain, 3},
		{ColorDomain, 4},
		{Path2Domain, 0},
		{UnknownDomain, 0},
	}

	for _, c := range cases {
		if got := c.domain.Arity(); got != c.arity {
			t.Errorf("%v arity: expected %d, got %d", c.domain, c.arity, got)
		}
	}

	if got := New(SignalWorld, Vec3Domain).Arity(); got != 3 {
		t.Errorf("type arity: expected 3, got %d", got)
	}
}

func TestEqualIgnoresExtent(t *testing.T) {
	a := NewField(FloatDomain, FieldExtent{Kind: ExtentDomain, Index: 0})
	b := NewField(FloatDomain, FieldExtent{Kind: ExtentFixed, Count: 64})

	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v", a, b)
	}

	if a.Equal(New(SignalWorld, FloatDomain)) {
		t.Fatal("field and signal must not be equal")
	}
	if a.Equal(NewField(Vec2Domain, FieldExtent{})) {
		t.Fatal("different domains must not be equal")
	}
}

func TestNewDefaultsFieldExtent(t *testing.T) {
	f := New(FieldWorld, FloatDomain)
	if f.Extent.Kind != ExtentUnresolved {
		t.Fatalf("expected unresolved extent, got %v", f.Extent)
	}

	s := New(SignalWorld, FloatDomain)
	if s.Extent != (FieldExtent{}) {
		t.Fatalf("signal type must not carry an extent, got %v", s.Extent)
	}
}

func TestString(t *testing.T) {
	if s := New(SignalWorld, FloatDomain).String(); s != "signal<float>" {
		t.Errorf("unexpected format: %s", s)
	}
	if s := NewField(Vec2Domain, FieldExtent{Kind: ExtentDomain, Index: 0}).String(); s != "field<vec2>@d0" {
		t.Errorf("unexpected format: %s", s)
	}
	if s := New(FieldWorld, FloatDomain).String(); s != "field<float>" {
		t.Errorf("unresolved extent must not print: %s", s)
	}
	if s := New(EventWorld, TriggerDomain).String(); s != "event<trigger>" {
		t.Errorf("unexpected format: %s", s)
	}
}
