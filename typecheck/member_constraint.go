package typecheck

import (
	"fmt"
	"slices"
	"strings"

	"weft/types"
)

// HasWorldConstraint requires a term to resolve into a specific world.
type HasWorldConstraint struct {
	T     Ty
	World types.World
}

func NewHasWorld(t Ty, world types.World) *HasWorldConstraint {
	return &HasWorldConstraint{T: t, World: world}
}

func (c *HasWorldConstraint) String() string {
	return fmt.Sprintf("HasWorld(%v : %v)", c.T, c.World)
}

func (c *HasWorldConstraint) run(s *Solver) bool {
	t, ok := s.concrete(c.T)
	if !ok {
		return false
	}
	if t.World != c.World {
		s.report(TypeError{
			Message: "world mismatch",
			Detail:  fmt.Sprintf("%v must be %v, found %v", c.T, c.World, t),
		})
	}
	return true
}

// HasDomainConstraint requires a term to resolve into a specific
// domain.
type HasDomainConstraint struct {
	T      Ty
	Domain types.Domain
}

func NewHasDomain(t Ty, domain types.Domain) *HasDomainConstraint {
	return &HasDomainConstraint{T: t, Domain: domain}
}

func (c *HasDomainConstraint) String() string {
	return fmt.Sprintf("HasDomain(%v : %v)", c.T, c.Domain)
}

func (c *HasDomainConstraint) run(s *Solver) bool {
	t, ok := s.concrete(c.T)
	if !ok {
		return false
	}
	if t.Domain != c.Domain {
		s.report(TypeError{
			Message: "domain mismatch",
			Detail:  fmt.Sprintf("%v must be %v, found %v", c.T, c.Domain, t),
		})
	}
	return true
}

// InWorldsConstraint requires a term to resolve into one of a set of
// worlds.
type InWorldsConstraint struct {
	T      Ty
	Worlds []types.World
}

func NewInWorlds(t Ty, worlds ...types.World) *InWorldsConstraint {
	return &InWorldsConstraint{T: t, Worlds: worlds}
}

func (c *InWorldsConstraint) String() string {
	names := make([]string, len(c.Worlds))
	for i, w := range c.Worlds {
		names[i] = w.String()
	}
	return fmt.Sprintf("InWorlds(%v : {%s})", c.T, strings.Join(names, ", "))
}

func (c *InWorldsConstraint) run(s *Solver) bool {
	t, ok := s.concrete(c.T)
	if !ok {
		return false
	}
	if !slices.Contains(c.Worlds, t.World) {
		s.report(TypeError{
			Message: "world not allowed",
			Detail:  fmt.Sprintf("%v resolved to %v, expected one of %s", c.T, t, c),
		})
	}
	return true
}

// InDomainsConstraint requires a term to resolve into one of a set of
// domains.
type InDomainsConstraint struct {
	T       Ty
	Domains []types.Domain
}

func NewInDomains(t Ty, domains ...types.Domain) *InDomainsConstraint {
	return &InDomainsConstraint{T: t, Domains: domains}
}

func (c *InDomainsConstraint) String() string {
	names := make([]string, len(c.Domains))
	for i, d := range c.Domains {
		names[i] = d.String()
	}
	return fmt.Sprintf("InDomains(%v : {%s})", c.T, strings.Join(names, ", "))
}

func (c *InDomainsConstraint) run(s *Solver) bool {
	t, ok := s.concrete(c.T)
	if !ok {
		return false
	}
	if !slices.Contains(c.Domains, t.Domain) {
		s.report(TypeError{
			Message: "domain not allowed",
			Detail:  fmt.Sprintf("%v resolved to %v, expected one of %s", c.T, t, c),
		})
	}
	return true
}
