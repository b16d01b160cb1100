package ir

import (
	"fmt"

	"weft/types"
)

// Slot is a typed value slot in the instruction list.
type Slot int

// Op is one emitted instruction. Args and Out reference slots.
type Op struct {
	Code OpCode
	Args []Slot
	Out  Slot
}

func (op Op) String() string {
	s := fmt.Sprintf("%%%d = %v", int(op.Out), op.Code)
	for _, arg := range op.Args {
		s += fmt.Sprintf(" %%%d", int(arg))
	}
	return s
}

// Builder accumulates a flat, append-only instruction list with typed
// value slots. Slots and ops are only ever added; the read accessors
// are what the downstream scheduler consumes.
type Builder struct {
	slots []types.Type
	ops   []Op
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AllocSlot reserves a new slot holding values of the given type.
func (b *Builder) AllocSlot(t types.Type) Slot {
	b.slots = append(b.slots, t)
	return Slot(len(b.slots) - 1)
}

// Emit appends an op.
func (b *Builder) Emit(op Op) {
	b.ops = append(b.ops, op)
}

// NumSlots is the number of allocated slots.
func (b *Builder) NumSlots() int {
	return len(b.slots)
}

// SlotType returns the type a slot holds.
func (b *Builder) SlotType(s Slot) types.Type {
	return b.slots[int(s)]
}

// Ops returns the emitted instruction list in emission order.
func (b *Builder) Ops() []Op {
	return b.ops
}
