package types

import (
	"fmt"
	"strconv"
)

// World describes how often a value is produced: once per frame
// (signal), once per element of an iteration domain (field), on
// discrete occurrences (event), or once at compile time (config).
type World int

const (
	SignalWorld World = iota
	FieldWorld
	EventWorld
	ConfigWorld
)

func (w World) String() string {
	switch w {
	case SignalWorld:
		return "signal"
	case FieldWorld:
		return "field"
	case EventWorld:
		return "event"
	case ConfigWorld:
		return "config"
	default:
		panic(fmt.Sprintf("invalid world: %d", int(w)))
	}
}

// Domain is the value shape carried by a port.
type Domain int

const (
	UnknownDomain Domain = iota
	FloatDomain
	BoolDomain
	Vec2Domain
	Vec3Domain
	ColorDomain
	TriggerDomain
	Index2Domain
	Path2Domain
)

func (d Domain) String() string {
	switch d {
	case UnknownDomain:
		return "unknown"
	case FloatDomain:
		return "float"
	case BoolDomain:
		return "bool"
	case Vec2Domain:
		return "vec2"
	case Vec3Domain:
		return "vec3"
	case ColorDomain:
		return "color"
	case TriggerDomain:
		return "trigger"
	case Index2Domain:
		return "index2"
	case Path2Domain:
		return "path2"
	default:
		panic(fmt.Sprintf("invalid domain: %d", int(d)))
	}
}

// Arity is the number of scalar components a value of this domain
// occupies in a buffer. Domains that are never buffer-backed have
// arity zero.
func (d Domain) Arity() int {
	switch d {
	case FloatDomain, BoolDomain, TriggerDomain:
		return 1
	case Vec2Domain, Index2Domain:
		return 2
	case Vec3Domain:
		return 3
	case ColorDomain:
		return 4
	case UnknownDomain, Path2Domain:
		return 0
	default:
		panic(fmt.Sprintf("invalid domain: %d", int(d)))
	}
}

// ExtentKind tags how a field type identifies its iteration domain.
type ExtentKind int

const (
	ExtentUnresolved ExtentKind = iota
	// ExtentDomain refers to an iteration domain by index.
	ExtentDomain
	// ExtentFixed is a fixed element count.
	ExtentFixed
)

// FieldExtent identifies the iteration domain of a field type. It is
// carried alongside the type but is not part of type equality; this
// core tracks extents without unifying them.
type FieldExtent struct {
	Kind  ExtentKind
	Index int
	Count int
}

func (e FieldExtent) String() string {
	switch e.Kind {
	case ExtentUnresolved:
		return "?"
	case ExtentDomain:
		return "d" + strconv.Itoa(e.Index)
	case ExtentFixed:
		return "n" + strconv.Itoa(e.Count)
	default:
		panic(fmt.Sprintf("invalid extent kind: %d", int(e.Kind)))
	}
}

// Type is the canonical type of a port: a world, a domain, and (for
// field types only) an extent descriptor.
type Type struct {
	World  World
	Domain Domain
	Extent FieldExtent
}

// New constructs a non-field type. Field types must go through
// NewField so an extent is always present.
func New(world World, domain Domain) Type {
	if world == FieldWorld {
		return NewField(domain, FieldExtent{Kind: ExtentUnresolved})
	}
	return Type{World: world, Domain: domain}
}

// NewField constructs a field type with the given extent.
func NewField(domain Domain, extent FieldExtent) Type {
	return Type{World: FieldWorld, Domain: domain, Extent: extent}
}

// WithExtent returns a copy of the type carrying the given extent.
// Calling this on a non-field type is a programmer error.
func (t Type) WithExtent(extent FieldExtent) Type {
	if t.World != FieldWorld {
		panic(fmt.Sprintf("extent on non-field type %s", t))
	}
	t.Extent = extent
	return t
}

// Equal compares world and domain. Extents are tracked but never
// unified, so they do not participate in equality.
func (t Type) Equal(other Type) bool {
	return t.World == other.World && t.Domain == other.Domain
}

// Arity is the number of scalar components one element of this type
// occupies.
func (t Type) Arity() int {
	return t.Domain.Arity()
}

func (t Type) String() string {
	s := t.World.String() + "<" + t.Domain.String() + ">"
	if t.World == FieldWorld && t.Extent.Kind != ExtentUnresolved {
		s += "@" + t.Extent.String()
	}
	return s
}
