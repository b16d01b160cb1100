package blocks

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"weft/typecheck"
	"weft/types"
)

// Binding ties a port to a type already inferred elsewhere, usually
// from the connected upstream port. Unconnected ports simply have no
// binding.
type Binding struct {
	Port string
	Type types.Type
}

// Result is the outcome of compiling one block instance. On failure
// Types is nil and Errors explains why; no partial instance types are
// ever produced. Constraints is the raw constraint list for
// diagnostics.
type Result struct {
	OK          bool
	Types       *InstanceTypes
	Errors      []typecheck.TypeError
	Constraints []typecheck.Constraint
}

// Err folds the collected type errors into a single Go error, or nil
// when the instance compiled.
func (r *Result) Err() error {
	if r.OK {
		return nil
	}
	var merr *multierror.Error
	for _, e := range r.Errors {
		merr = multierror.Append(merr, e)
	}
	return merr.ErrorOrNil()
}

// Pipeline monomorphizes block instances. The zero value works; Debug
// and Logf feed the solver's per-pass logging.
type Pipeline struct {
	Debug bool
	Logf  func(format string, v ...interface{})
}

// CompileInstance resolves one instance of sig against the known
// bindings and stamps nodeID onto every error's blame. This is the
// single orchestrating entry point: every port of a returned instance
// is concrete, or the instance is rejected.
func (p *Pipeline) CompileInstance(sig Sig, bindings []Binding, nodeID string) *Result {
	ctx := typecheck.NewContext()
	st := sig.Instantiate(ctx)

	constraints := make([]typecheck.Constraint, 0, len(st.Constraints)+len(bindings))
	constraints = append(constraints, st.Constraints...)

	var errs []typecheck.TypeError
	for _, binding := range bindings {
		port, ok := findPort(st, binding.Port)
		if !ok {
			errs = append(errs, typecheck.TypeError{
				Message: "unknown port",
				Detail:  fmt.Sprintf("block %q has no port %q", sig.Name(), binding.Port),
				Blame:   typecheck.Blame{Port: binding.Port},
			})
			continue
		}
		constraints = append(constraints, typecheck.NewEq(port.Ty, typecheck.FromType(binding.Type)))
	}

	solver := typecheck.NewSolver()
	solver.Debug = p.Debug
	solver.Logf = p.Logf

	subst, solveErrs := solver.Solve(constraints)
	errs = append(errs, solveErrs...)
	if len(errs) > 0 {
		return &Result{
			Errors:      typecheck.WithNode(errs, nodeID),
			Constraints: constraints,
		}
	}

	inputs, errs := finalizePorts(subst, st.Inputs, errs)
	outputs, errs := finalizePorts(subst, st.Outputs, errs)
	if len(errs) > 0 {
		return &Result{
			Errors:      typecheck.WithNode(errs, nodeID),
			Constraints: constraints,
		}
	}

	return &Result{
		OK:          true,
		Types:       newInstanceTypes(inputs, outputs),
		Constraints: constraints,
	}
}

// CompileInstance is the plain entry point without debug logging.
func CompileInstance(sig Sig, bindings []Binding, nodeID string) *Result {
	var p Pipeline
	return p.CompileInstance(sig, bindings, nodeID)
}

func findPort(st SigTypes, name string) (PortTy, bool) {
	for _, p := range st.Inputs {
		if p.Port == name {
			return p, true
		}
	}
	for _, p := range st.Outputs {
		if p.Port == name {
			return p, true
		}
	}
	return PortTy{}, false
}

// finalizePorts resolves every port term to a concrete type. Lowering
// needs every port concrete, so a term that is still an unresolved
// variable here fails the instance.
func finalizePorts(subst *typecheck.Substitution, ports []PortTy, errs []typecheck.TypeError) (map[string]types.Type, []typecheck.TypeError) {
	resolved := make(map[string]types.Type, len(ports))
	for _, p := range ports {
		t, ok := subst.Concrete(p.Ty)
		if !ok {
			errs = append(errs, typecheck.TypeError{
				Message: "unresolved type for port " + p.Port,
				Detail:  fmt.Sprintf("%v never became concrete", p.Ty),
				Blame:   typecheck.Blame{Port: p.Port},
			})
			continue
		}
		resolved[p.Port] = t
	}
	return resolved, errs
}
