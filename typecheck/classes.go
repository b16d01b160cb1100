package typecheck

import (
	"fmt"

	"weft/types"
)

// Class is a capability a resolved type can satisfy. Membership is a
// static table, not a runtime lookup; this file is the one place
// world/domain sets are allowed to appear.
type Class int

const (
	Numeric Class = iota
	Comparable
	Mixable
	Combineable
	Mappable
	ZipWithable
)

func (c Class) String() string {
	switch c {
	case Numeric:
		return "Numeric"
	case Comparable:
		return "Comparable"
	case Mixable:
		return "Mixable"
	case Combineable:
		return "Combineable"
	case Mappable:
		return "Mappable"
	case ZipWithable:
		return "ZipWithable"
	default:
		panic(fmt.Sprintf("invalid class: %d", int(c)))
	}
}

type classKey struct {
	world  types.World
	domain types.Domain
}

func members(worlds []types.World, domains []types.Domain) map[classKey]bool {
	m := make(map[classKey]bool, len(worlds)*len(domains))
	for _, w := range worlds {
		for _, d := range domains {
			m[classKey{w, d}] = true
		}
	}
	return m
}

var (
	valueWorlds  = []types.World{types.SignalWorld, types.FieldWorld, types.ConfigWorld}
	valueDomains = []types.Domain{types.FloatDomain, types.Vec2Domain, types.Vec3Domain, types.ColorDomain}
)

var classTable = map[Class]map[classKey]bool{
	Numeric:    members(valueWorlds, valueDomains),
	Comparable: members(valueWorlds, []types.Domain{types.FloatDomain}),
	Mixable:    members(valueWorlds, valueDomains),
	Combineable: func() map[classKey]bool {
		m := members([]types.World{types.EventWorld}, []types.Domain{types.TriggerDomain})
		for k, v := range members(valueWorlds, []types.Domain{types.BoolDomain}) {
			m[k] = v
		}
		return m
	}(),
	Mappable:    members([]types.World{types.FieldWorld}, []types.Domain{types.FloatDomain, types.Vec2Domain, types.Vec3Domain, types.ColorDomain, types.Index2Domain}),
	ZipWithable: members([]types.World{types.FieldWorld}, valueDomains),
}

// ClassHas reports whether a concrete type satisfies a class.
func ClassHas(cls Class, t types.Type) bool {
	return classTable[cls][classKey{t.World, t.Domain}]
}
