package typecheck

import "fmt"

// ClassConstraint requires a term to resolve into a member of a
// typeclass.
type ClassConstraint struct {
	T     Ty
	Class Class
}

func NewClass(t Ty, cls Class) *ClassConstraint {
	return &ClassConstraint{T: t, Class: cls}
}

func (c *ClassConstraint) String() string {
	return fmt.Sprintf("Class(%v : %v)", c.T, c.Class)
}

func (c *ClassConstraint) run(s *Solver) bool {
	t, ok := s.concrete(c.T)
	if !ok {
		return false
	}
	if !ClassHas(c.Class, t) {
		s.report(TypeError{
			Message: "typeclass violation",
			Detail:  fmt.Sprintf("%v does not satisfy %v", t, c.Class),
		})
	}
	return true
}
