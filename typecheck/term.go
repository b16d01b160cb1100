package typecheck

import (
	"strconv"

	"weft/types"
)

// Ty is a type term: either a concrete type or a type variable. The
// set of implementations is closed; the solver switches exhaustively
// over it.
type Ty interface {
	isTy()
	String() string
}

// Concrete wraps a resolved type as a term.
type Concrete struct {
	Type types.Type
}

func (Concrete) isTy() {}

func (c Concrete) String() string {
	return c.Type.String()
}

// FromType wraps a concrete type as a term.
func FromType(t types.Type) Ty {
	return Concrete{Type: t}
}

// Var is an unresolved type variable. Vars are issued by a Context and
// are only meaningful within the compile call that created them.
type Var struct {
	id   int
	name string
}

func (*Var) isTy() {}

func (v *Var) Id() int { return v.id }

func (v *Var) String() string {
	if v.name != "" {
		return "'" + v.name
	}
	return "'t" + strconv.Itoa(v.id)
}

// Context issues type variables for a single compile call. A context
// cannot be shared across compile calls or used concurrently.
type Context struct {
	next int
	vars []*Var
}

func NewContext() *Context {
	return &Context{}
}

// Fresh returns a new unresolved variable. The name is for debug
// output only.
func (c *Context) Fresh(name string) *Var {
	v := &Var{id: c.next, name: name}
	c.next++
	c.vars = append(c.vars, v)
	return v
}

// Vars returns every variable issued so far, in issue order.
func (c *Context) Vars() []*Var {
	return c.vars
}
