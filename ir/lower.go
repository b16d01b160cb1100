package ir

import (
	"fmt"

	"weft/types"
)

// OpCode identifies a concrete operation. Each primitive family has a
// scalar (per-frame) and a per-element variant; the output world
// picks between them.
type OpCode int

const (
	AddSignal OpCode = iota
	AddField
	SubSignal
	SubField
	MulSignal
	MulField
	MinSignal
	MinField
	MaxSignal
	MaxField
)

func (c OpCode) String() string {
	switch c {
	case AddSignal:
		return "add.signal"
	case AddField:
		return "add.field"
	case SubSignal:
		return "sub.signal"
	case SubField:
		return "sub.field"
	case MulSignal:
		return "mul.signal"
	case MulField:
		return "mul.field"
	case MinSignal:
		return "min.signal"
	case MinField:
		return "min.field"
	case MaxSignal:
		return "max.signal"
	case MaxField:
		return "max.field"
	default:
		panic(fmt.Sprintf("invalid opcode: %d", int(c)))
	}
}

// Family pairs the two emission strategies of one primitive op. The
// type decision was made upstream by monomorphization; lowering is a
// total function of the family and the output world.
type Family struct {
	Name   string
	Signal OpCode
	Field  OpCode
}

var (
	AddFamily = Family{Name: "add", Signal: AddSignal, Field: AddField}
	SubFamily = Family{Name: "sub", Signal: SubSignal, Field: SubField}
	MulFamily = Family{Name: "mul", Signal: MulSignal, Field: MulField}
	MinFamily = Family{Name: "min", Signal: MinSignal, Field: MinField}
	MaxFamily = Family{Name: "max", Signal: MaxSignal, Field: MaxField}
)

// LowerBinary emits the family's op for two already-lowered values
// and an already-resolved output type. Config lowers like signal: the
// value is still one scalar per evaluation. Events carry no numeric
// payload; the pipeline never hands an event type to an arithmetic
// family, so seeing one here is caller misuse.
func LowerBinary(b *Builder, fam Family, x Slot, y Slot, out types.Type) (Slot, error) {
	var code OpCode
	switch out.World {
	case types.SignalWorld, types.ConfigWorld:
		code = fam.Signal
	case types.FieldWorld:
		code = fam.Field
	case types.EventWorld:
		return 0, fmt.Errorf("ir: cannot lower %s for event type %v", fam.Name, out)
	default:
		panic(fmt.Sprintf("invalid world: %d", int(out.World)))
	}

	slot := b.AllocSlot(out)
	b.Emit(Op{Code: code, Args: []Slot{x, y}, Out: slot})
	return slot, nil
}

func LowerAdd(b *Builder, x Slot, y Slot, out types.Type) (Slot, error) {
	return LowerBinary(b, AddFamily, x, y, out)
}

func LowerSub(b *Builder, x Slot, y Slot, out types.Type) (Slot, error) {
	return LowerBinary(b, SubFamily, x, y, out)
}

func LowerMul(b *Builder, x Slot, y Slot, out types.Type) (Slot, error) {
	return LowerBinary(b, MulFamily, x, y, out)
}

func LowerMin(b *Builder, x Slot, y Slot, out types.Type) (Slot, error) {
	return LowerBinary(b, MinFamily, x, y, out)
}

func LowerMax(b *Builder, x Slot, y Slot, out types.Type) (Slot, error) {
	return LowerBinary(b, MaxFamily, x, y, out)
}
