package typecheck

import (
	"fmt"

	"weft/types"
)

// MaxPasses bounds the fixpoint loop. No block signature in the
// builtin library has a dependency chain of unresolved variables
// deeper than this.
const MaxPasses = 8

// Solver applies a flat list of constraints against a growing
// variable substitution until a fixpoint is reached or the pass budget
// runs out. Errors are collected, never raised; a solver is used for
// one compile call and discarded.
type Solver struct {
	Debug bool
	Logf  func(format string, v ...interface{})

	subst    map[int]types.Type
	errors   []TypeError
	progress bool
}

func NewSolver() *Solver {
	return &Solver{subst: map[int]types.Type{}}
}

func (s *Solver) logf(format string, v ...interface{}) {
	if s.Debug && s.Logf != nil {
		s.Logf(format, v...)
	}
}

// Solve runs every constraint to completion or to the pass budget.
// Finished constraints leave the queue; unfinished ones requeue for
// the next pass. Once a pass binds nothing, defaulting constraints
// get one chance to break the tie before the loop gives up.
func (s *Solver) Solve(constraints []Constraint) (*Substitution, []TypeError) {
	pending := make([]Constraint, len(constraints))
	copy(pending, constraints)

	exhausted := false
	for pass := 0; len(pending) > 0; pass++ {
		if pass == MaxPasses {
			exhausted = true
			break
		}

		s.progress = false
		pending = s.runPass(pending)
		s.logf("pass %d: %d pending, %d bound, %d error(s)", pass, len(pending), len(s.subst), len(s.errors))

		if !s.progress && len(pending) > 0 {
			for _, c := range pending {
				if d, ok := c.(defaulter); ok && d.runDefault(s) {
					s.logf("defaulted %v", c)
				}
			}
			if !s.progress {
				// True fixpoint: the rest can never resolve.
				break
			}
		}
	}

	if exhausted {
		s.report(TypeError{
			Message: "solver pass budget exhausted",
			Detail:  fmt.Sprintf("%d constraint(s) still active after %d passes", len(pending), MaxPasses),
		})
	}

	return &Substitution{bindings: s.subst}, s.errors
}

func (s *Solver) runPass(pending []Constraint) []Constraint {
	requeued := make([]Constraint, 0, len(pending))
	for _, c := range pending {
		if !c.run(s) {
			requeued = append(requeued, c)
		}
	}
	return requeued
}

// concrete resolves a term through the substitution. It reports false
// while the term is an unbound variable.
func (s *Solver) concrete(t Ty) (types.Type, bool) {
	switch t := t.(type) {
	case Concrete:
		return t.Type, true
	case *Var:
		bound, ok := s.subst[t.Id()]
		return bound, ok
	default:
		panic(fmt.Sprintf("invalid term: %T", t))
	}
}

// unify makes two terms equal. Two concrete terms are checked against
// each other; a variable term is always routed through bind, so a
// conflict with an existing binding surfaces as a rebind, never as a
// mismatch between two concrete types. A pair of unbound variables is
// deferred until one side resolves. Reports whether the job is
// finished.
func (s *Solver) unify(a Ty, b Ty) bool {
	ca, okA := a.(Concrete)
	cb, okB := b.(Concrete)

	switch {
	case okA && okB:
		if !ca.Type.Equal(cb.Type) {
			s.report(TypeError{
				Message: "unification mismatch",
				Detail:  fmt.Sprintf("%v is not %v", ca.Type, cb.Type),
			})
		}
		return true

	case okA:
		return s.bind(b.(*Var), ca.Type)

	case okB:
		return s.bind(a.(*Var), cb.Type)

	default:
		av, bv := a.(*Var), b.(*Var)
		if av.Id() == bv.Id() {
			return true
		}
		if t, ok := s.subst[av.Id()]; ok {
			return s.bind(bv, t)
		}
		if t, ok := s.subst[bv.Id()]; ok {
			return s.bind(av, t)
		}
		return false
	}
}

// bind records a variable's type. The first binding wins: rebinding
// with an equal type is a no-op, rebinding with a different type is an
// error and the original binding stays.
func (s *Solver) bind(v *Var, t types.Type) bool {
	if prev, ok := s.subst[v.Id()]; ok {
		if !prev.Equal(t) {
			s.report(TypeError{
				Message: "rebind conflict",
				Detail:  fmt.Sprintf("%v is already %v, cannot also be %v", v, prev, t),
			})
		}
		return true
	}
	s.subst[v.Id()] = t
	s.progress = true
	s.logf("bound %v = %v", v, t)
	return true
}

func (s *Solver) report(err TypeError) {
	s.errors = append(s.errors, err)
	s.logf("error: %s", err.Error())
}
