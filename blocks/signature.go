package blocks

import "weft/typecheck"

// PortTy names a port and the term that stands for its type while the
// instance is being solved.
type PortTy struct {
	Port string
	Ty   typecheck.Ty
}

// SigTypes is what a signature produces for one instance: terms for
// every port plus the constraints relating them.
type SigTypes struct {
	Inputs      []PortTy
	Outputs     []PortTy
	Constraints []typecheck.Constraint
}

// Sig is a generic block definition. Instantiate is called once per
// block instance with a fresh context and must be stateless: issuing
// fresh variables each call is what keeps instances independent.
type Sig interface {
	Name() string
	Instantiate(ctx *typecheck.Context) SigTypes
}

type sigFunc struct {
	name string
	f    func(ctx *typecheck.Context) SigTypes
}

func (s *sigFunc) Name() string { return s.name }

func (s *sigFunc) Instantiate(ctx *typecheck.Context) SigTypes { return s.f(ctx) }

// NewSig builds a signature from a name and an instantiation
// function.
func NewSig(name string, f func(ctx *typecheck.Context) SigTypes) Sig {
	return &sigFunc{name: name, f: f}
}
