package typecheck

import (
	"fmt"
	"sort"
	"strings"

	"weft/types"
)

// Substitution maps type variables to the concrete types the solver
// bound them to. It never guesses: looking up an unbound variable
// reports absence rather than a best-effort type.
type Substitution struct {
	bindings map[int]types.Type
}

// Lookup returns the binding for a variable, if any.
func (s *Substitution) Lookup(v *Var) (types.Type, bool) {
	t, ok := s.bindings[v.Id()]
	return t, ok
}

// Resolve replaces a bound variable with its concrete type. Anything
// else comes back untouched.
func (s *Substitution) Resolve(t Ty) Ty {
	if v, ok := t.(*Var); ok {
		if bound, ok := s.bindings[v.Id()]; ok {
			return Concrete{Type: bound}
		}
	}
	return t
}

// Concrete finalizes a term. A concrete term is returned as is; a
// variable resolves through its binding or reports false.
func (s *Substitution) Concrete(t Ty) (types.Type, bool) {
	switch t := t.(type) {
	case Concrete:
		return t.Type, true
	case *Var:
		return s.Lookup(t)
	default:
		panic(fmt.Sprintf("invalid term: %T", t))
	}
}

// Len is the number of bound variables.
func (s *Substitution) Len() int {
	return len(s.bindings)
}

func (s *Substitution) String() string {
	ids := make([]int, 0, len(s.bindings))
	for id := range s.bindings {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var sb strings.Builder
	sb.WriteString("{")
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "'t%d = %v", id, s.bindings[id])
	}
	sb.WriteString("}")
	return sb.String()
}
