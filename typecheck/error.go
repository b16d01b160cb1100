package typecheck

import "strings"

// Blame attributes a type error to a location in the patch graph.
// Fields are empty when attribution isn't known.
type Blame struct {
	Node string
	Port string
	Edge string
}

func (b Blame) IsZero() bool {
	return b == Blame{}
}

// TypeError is a recoverable type-inference failure. Errors are
// collected in lists and returned, never raised, so a failed instance
// reports every problem it has at once.
type TypeError struct {
	Message string
	Detail  string
	Blame   Blame
}

func (e TypeError) Error() string {
	var s strings.Builder
	if e.Blame.Node != "" {
		s.WriteString(e.Blame.Node)
		if e.Blame.Port != "" {
			s.WriteString("." + e.Blame.Port)
		}
		s.WriteString(": ")
	} else if e.Blame.Port != "" {
		s.WriteString(e.Blame.Port + ": ")
	}
	s.WriteString(e.Message)
	if e.Detail != "" {
		s.WriteString(" (" + e.Detail + ")")
	}
	return s.String()
}

// WithNode returns a copy of errs with the node id stamped onto every
// error that doesn't already carry one. The input slice is left
// untouched so error lists can be shared.
func WithNode(errs []TypeError, node string) []TypeError {
	if len(errs) == 0 {
		return nil
	}
	stamped := make([]TypeError, len(errs))
	for i, e := range errs {
		if e.Blame.Node == "" {
			e.Blame.Node = node
		}
		stamped[i] = e
	}
	return stamped
}
