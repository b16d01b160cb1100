package typecheck

import (
	"fmt"

	"weft/types"
)

// PromoteRule selects how two input types combine into an output type.
type PromoteRule int

const (
	// PromoteSameWorld requires both inputs to be identical and
	// returns either one unchanged.
	PromoteSameWorld PromoteRule = iota
	// PromoteSignalField requires identical domains; the output is a
	// field if either input is a field, otherwise a signal.
	PromoteSignalField
)

func (r PromoteRule) String() string {
	switch r {
	case PromoteSameWorld:
		return "SameWorld"
	case PromoteSignalField:
		return "SignalField"
	default:
		return fmt.Sprintf("rule(%d)", int(r))
	}
}

// PromoteConstraint combines two inputs into an output by rule.
// Events never mix with other worlds under promotion.
//
// If a pass stalls with exactly one input resolved, the unresolved
// input defaults to the resolved input's type; an unconnected port on
// a promoting block thereby adopts its sibling's type.
type PromoteConstraint struct {
	Out  Ty
	A    Ty
	B    Ty
	Rule PromoteRule
}

func NewPromote(out Ty, a Ty, b Ty, rule PromoteRule) *PromoteConstraint {
	return &PromoteConstraint{Out: out, A: a, B: b, Rule: rule}
}

func (c *PromoteConstraint) String() string {
	return fmt.Sprintf("Promote(%v = %v + %v by %v)", c.Out, c.A, c.B, c.Rule)
}

func (c *PromoteConstraint) run(s *Solver) bool {
	a, okA := s.concrete(c.A)
	b, okB := s.concrete(c.B)
	if !okA || !okB {
		return false
	}

	if a.World == types.EventWorld || b.World == types.EventWorld {
		s.report(TypeError{
			Message: "cannot promote event",
			Detail:  fmt.Sprintf("%v and %v cannot mix under promotion", a, b),
		})
		return true
	}

	var out types.Type
	switch c.Rule {
	case PromoteSameWorld:
		if !a.Equal(b) {
			s.report(TypeError{
				Message: "promotion failure",
				Detail:  fmt.Sprintf("%v and %v must be identical under %v", a, b, c.Rule),
			})
			return true
		}
		out = a

	case PromoteSignalField:
		if a.Domain != b.Domain {
			s.report(TypeError{
				Message: "promotion failure",
				Detail:  fmt.Sprintf("%v and %v must share a domain under %v", a, b, c.Rule),
			})
			return true
		}
		switch {
		case a.World == types.FieldWorld:
			out = a
		case b.World == types.FieldWorld:
			out = b
		default:
			out = types.New(types.SignalWorld, a.Domain)
		}

	default:
		s.report(TypeError{
			Message: "promotion failure",
			Detail:  fmt.Sprintf("unknown promotion rule %v", c.Rule),
		})
		return true
	}

	s.unify(c.Out, Concrete{Type: out})
	return true
}

func (c *PromoteConstraint) runDefault(s *Solver) bool {
	a, okA := s.concrete(c.A)
	b, okB := s.concrete(c.B)
	switch {
	case okA && !okB:
		return s.unify(c.B, Concrete{Type: a})
	case okB && !okA:
		return s.unify(c.A, Concrete{Type: b})
	default:
		return false
	}
}
