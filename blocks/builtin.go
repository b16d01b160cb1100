package blocks

import (
	"weft/typecheck"
	"weft/types"
)

// numericBinop is the shape shared by the arithmetic blocks: two
// Numeric inputs promoted into one output. Signals and fields mix
// freely; an unconnected input adopts its sibling's type through the
// promotion default.
func numericBinop(name string) Sig {
	return NewSig(name, func(ctx *typecheck.Context) SigTypes {
		a := ctx.Fresh("a")
		b := ctx.Fresh("b")
		out := ctx.Fresh("out")
		return SigTypes{
			Inputs:  []PortTy{{"a", a}, {"b", b}},
			Outputs: []PortTy{{"out", out}},
			Constraints: []typecheck.Constraint{
				typecheck.NewClass(a, typecheck.Numeric),
				typecheck.NewClass(b, typecheck.Numeric),
				typecheck.NewPromote(out, a, b, typecheck.PromoteSignalField),
			},
		}
	})
}

func mixSig() Sig {
	return NewSig("mix", func(ctx *typecheck.Context) SigTypes {
		a := ctx.Fresh("a")
		b := ctx.Fresh("b")
		t := ctx.Fresh("t")
		out := ctx.Fresh("out")
		return SigTypes{
			Inputs:  []PortTy{{"a", a}, {"b", b}, {"t", t}},
			Outputs: []PortTy{{"out", out}},
			Constraints: []typecheck.Constraint{
				typecheck.NewClass(a, typecheck.Mixable),
				typecheck.NewEq(a, b),
				typecheck.NewEq(out, a),
				typecheck.NewEq(t, typecheck.FromType(types.New(types.SignalWorld, types.FloatDomain))),
			},
		}
	})
}

// Comparisons are signal-only for now: the constraint language has no
// constructive rule that carries a world onto a fresh bool output.
func greaterSig() Sig {
	return NewSig("greater", func(ctx *typecheck.Context) SigTypes {
		a := ctx.Fresh("a")
		b := ctx.Fresh("b")
		out := ctx.Fresh("out")
		return SigTypes{
			Inputs:  []PortTy{{"a", a}, {"b", b}},
			Outputs: []PortTy{{"out", out}},
			Constraints: []typecheck.Constraint{
				typecheck.NewClass(a, typecheck.Comparable),
				typecheck.NewEq(a, b),
				typecheck.NewHasWorld(a, types.SignalWorld),
				typecheck.NewEq(out, typecheck.FromType(types.New(types.SignalWorld, types.BoolDomain))),
			},
		}
	})
}

func gateSig() Sig {
	return NewSig("gate", func(ctx *typecheck.Context) SigTypes {
		ev := ctx.Fresh("ev")
		ctl := ctx.Fresh("ctl")
		out := ctx.Fresh("out")
		return SigTypes{
			Inputs:  []PortTy{{"ev", ev}, {"ctl", ctl}},
			Outputs: []PortTy{{"out", out}},
			Constraints: []typecheck.Constraint{
				typecheck.NewEq(ev, typecheck.FromType(types.New(types.EventWorld, types.TriggerDomain))),
				typecheck.NewClass(ev, typecheck.Combineable),
				typecheck.NewEq(ctl, typecheck.FromType(types.New(types.SignalWorld, types.BoolDomain))),
				typecheck.NewEq(out, ev),
			},
		}
	})
}

func mapSig() Sig {
	return NewSig("map", func(ctx *typecheck.Context) SigTypes {
		x := ctx.Fresh("x")
		out := ctx.Fresh("out")
		return SigTypes{
			Inputs:  []PortTy{{"x", x}},
			Outputs: []PortTy{{"out", out}},
			Constraints: []typecheck.Constraint{
				typecheck.NewInWorlds(x, types.FieldWorld),
				typecheck.NewClass(x, typecheck.Mappable),
				typecheck.NewEq(out, x),
			},
		}
	})
}

func zipWithSig() Sig {
	return NewSig("zipwith", func(ctx *typecheck.Context) SigTypes {
		x := ctx.Fresh("x")
		y := ctx.Fresh("y")
		out := ctx.Fresh("out")
		return SigTypes{
			Inputs:  []PortTy{{"x", x}, {"y", y}},
			Outputs: []PortTy{{"out", out}},
			Constraints: []typecheck.Constraint{
				typecheck.NewClass(x, typecheck.ZipWithable),
				typecheck.NewClass(y, typecheck.ZipWithable),
				typecheck.NewEq(x, y),
				typecheck.NewHasWorld(x, types.FieldWorld),
				typecheck.NewEq(out, x),
			},
		}
	})
}

// source builds a signature with a single fixed-type output.
func source(name string, out types.Type) Sig {
	return NewSig(name, func(ctx *typecheck.Context) SigTypes {
		o := ctx.Fresh("out")
		return SigTypes{
			Outputs: []PortTy{{"out", o}},
			Constraints: []typecheck.Constraint{
				typecheck.NewEq(o, typecheck.FromType(out)),
			},
		}
	})
}

func oscSig() Sig {
	return NewSig("osc", func(ctx *typecheck.Context) SigTypes {
		freq := ctx.Fresh("freq")
		out := ctx.Fresh("out")
		signalFloat := typecheck.FromType(types.New(types.SignalWorld, types.FloatDomain))
		return SigTypes{
			Inputs:  []PortTy{{"freq", freq}},
			Outputs: []PortTy{{"out", out}},
			Constraints: []typecheck.Constraint{
				typecheck.NewEq(freq, signalFloat),
				typecheck.NewEq(out, signalFloat),
			},
		}
	})
}

// Builtin returns a fresh registry holding the builtin block library.
// Every builtin resolves within the solver's pass budget.
func Builtin() *Registry {
	r := NewRegistry()
	r.MustRegister(numericBinop("add"))
	r.MustRegister(numericBinop("subtract"))
	r.MustRegister(numericBinop("multiply"))
	r.MustRegister(numericBinop("min"))
	r.MustRegister(numericBinop("max"))
	r.MustRegister(mixSig())
	r.MustRegister(greaterSig())
	r.MustRegister(gateSig())
	r.MustRegister(mapSig())
	r.MustRegister(zipWithSig())
	r.MustRegister(oscSig())
	r.MustRegister(source("ramp", types.NewField(types.FloatDomain, types.FieldExtent{Kind: types.ExtentDomain, Index: 0})))
	r.MustRegister(source("pulse", types.New(types.EventWorld, types.TriggerDomain)))
	r.MustRegister(source("const.float", types.New(types.ConfigWorld, types.FloatDomain)))
	r.MustRegister(source("const.color", types.New(types.ConfigWorld, types.ColorDomain)))
	return r
}
