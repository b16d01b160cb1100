package blocks

import (
	"strings"

	"github.com/benbjohnson/immutable"

	"weft/types"
)

// InstanceTypes is the finalized artifact of monomorphization: a
// fully concrete type for every port of one block instance. It is
// immutable; the maps are shared freely with the lowering stage.
type InstanceTypes struct {
	inputs  *immutable.SortedMap
	outputs *immutable.SortedMap
}

func makePortMap(ports map[string]types.Type) *immutable.SortedMap {
	b := immutable.NewSortedMapBuilder(immutable.NewSortedMap(nil))
	for port, t := range ports {
		b.Set(port, t)
	}
	return b.Map()
}

func newInstanceTypes(inputs, outputs map[string]types.Type) *InstanceTypes {
	return &InstanceTypes{inputs: makePortMap(inputs), outputs: makePortMap(outputs)}
}

// Input returns the resolved type of an input port.
func (it *InstanceTypes) Input(port string) (types.Type, bool) {
	v, ok := it.inputs.Get(port)
	if !ok {
		return types.Type{}, false
	}
	return v.(types.Type), true
}

// Output returns the resolved type of an output port.
func (it *InstanceTypes) Output(port string) (types.Type, bool) {
	v, ok := it.outputs.Get(port)
	if !ok {
		return types.Type{}, false
	}
	return v.(types.Type), true
}

// RangeInputs visits input ports in sorted order. Return false from f
// to stop.
func (it *InstanceTypes) RangeInputs(f func(port string, t types.Type) bool) {
	rangePorts(it.inputs, f)
}

// RangeOutputs visits output ports in sorted order. Return false from
// f to stop.
func (it *InstanceTypes) RangeOutputs(f func(port string, t types.Type) bool) {
	rangePorts(it.outputs, f)
}

func rangePorts(m *immutable.SortedMap, f func(port string, t types.Type) bool) {
	iter := m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(types.Type)) {
			return
		}
	}
}

func (it *InstanceTypes) String() string {
	var sb strings.Builder
	sb.WriteString("in{")
	first := true
	it.RangeInputs(func(port string, t types.Type) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(port + ": " + t.String())
		return true
	})
	sb.WriteString("} out{")
	first = true
	it.RangeOutputs(func(port string, t types.Type) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(port + ": " + t.String())
		return true
	})
	sb.WriteString("}")
	return sb.String()
}
