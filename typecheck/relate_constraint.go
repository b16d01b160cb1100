package typecheck

import "fmt"

// SameWorldConstraint requires two terms to resolve into the same
// world. It checks; it never binds.
type SameWorldConstraint struct {
	A Ty
	B Ty
}

func NewSameWorld(a Ty, b Ty) *SameWorldConstraint {
	return &SameWorldConstraint{A: a, B: b}
}

func (c *SameWorldConstraint) String() string {
	return fmt.Sprintf("SameWorld(%v ~ %v)", c.A, c.B)
}

func (c *SameWorldConstraint) run(s *Solver) bool {
	a, ok := s.concrete(c.A)
	if !ok {
		return false
	}
	b, ok := s.concrete(c.B)
	if !ok {
		return false
	}
	if a.World != b.World {
		s.report(TypeError{
			Message: "world mismatch",
			Detail:  fmt.Sprintf("%v and %v must share a world", a, b),
		})
	}
	return true
}

// SameDomainConstraint requires two terms to resolve into the same
// domain. It checks; it never binds.
type SameDomainConstraint struct {
	A Ty
	B Ty
}

func NewSameDomain(a Ty, b Ty) *SameDomainConstraint {
	return &SameDomainConstraint{A: a, B: b}
}

func (c *SameDomainConstraint) String() string {
	return fmt.Sprintf("SameDomain(%v ~ %v)", c.A, c.B)
}

func (c *SameDomainConstraint) run(s *Solver) bool {
	a, ok := s.concrete(c.A)
	if !ok {
		return false
	}
	b, ok := s.concrete(c.B)
	if !ok {
		return false
	}
	if a.Domain != b.Domain {
		s.report(TypeError{
			Message: "domain mismatch",
			Detail:  fmt.Sprintf("%v and %v must share a domain", a, b),
		})
	}
	return true
}
