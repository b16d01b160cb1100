package typecheck

import "fmt"

// EqConstraint requires two terms to resolve to equal types.
type EqConstraint struct {
	A Ty
	B Ty
}

// NewEq builds an equality constraint between two terms.
func NewEq(a Ty, b Ty) *EqConstraint {
	return &EqConstraint{A: a, B: b}
}

func (c *EqConstraint) String() string {
	return fmt.Sprintf("Eq(%v = %v)", c.A, c.B)
}

func (c *EqConstraint) run(s *Solver) bool {
	return s.unify(c.A, c.B)
}
