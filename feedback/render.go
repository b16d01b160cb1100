package feedback

import (
	"io"
	"strings"

	"weft/colors"
	"weft/typecheck"
)

// Render accumulates one feedback paragraph.
type Render struct {
	sb strings.Builder
}

func (r *Render) WriteString(s string) {
	r.sb.WriteString(s)
}

func (r *Render) WriteConflict(s string) {
	r.sb.WriteString(colors.Conflict(s))
}

func (r *Render) WriteBreak() {
	r.sb.WriteString("\n  ")
}

func (r *Render) String() string {
	return r.sb.String()
}

// RenderError formats one type error as a feedback paragraph.
func RenderError(e typecheck.TypeError) string {
	var r Render

	if !e.Blame.IsZero() {
		loc := e.Blame.Node
		if e.Blame.Port != "" {
			if loc != "" {
				loc += "."
			}
			loc += e.Blame.Port
		}
		if e.Blame.Edge != "" {
			loc += " (" + e.Blame.Edge + ")"
		}
		r.WriteString(colors.Blame(loc))
		r.WriteString(": ")
	}

	r.WriteConflict(e.Message)
	if e.Detail != "" {
		r.WriteBreak()
		r.WriteString(e.Detail)
	}

	return r.String()
}

// Write renders every error, one paragraph per line, and returns the
// count.
func Write(w io.Writer, errs []typecheck.TypeError) int {
	for _, e := range errs {
		io.WriteString(w, RenderError(e))
		io.WriteString(w, "\n")
	}
	return len(errs)
}
