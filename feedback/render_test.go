package feedback

import (
	"bytes"
	"strings"
	"testing"

	"weft/colors"
	"weft/typecheck"
)

func TestRenderError(t *testing.T) {
	err := typecheck.TypeError{
		Message: "unification mismatch",
		Detail:  "signal<float> is not field<float>",
		Blame:   typecheck.Blame{Node: "sum", Port: "a"},
	}

	var rendered string
	colors.WithoutColor(func() {
		rendered = RenderError(err)
	})

	if !strings.HasPrefix(rendered, "sum.a: ") {
		t.Fatalf("expected blame prefix, got %q", rendered)
	}
	if !strings.Contains(rendered, "unification mismatch") {
		t.Fatalf("expected message, got %q", rendered)
	}
	if !strings.Contains(rendered, "signal<float> is not field<float>") {
		t.Fatalf("expected detail, got %q", rendered)
	}
}

func TestWriteCount(t *testing.T) {
	errs := []typecheck.TypeError{
		{Message: "rebind conflict"},
		{Message: "typeclass violation"},
	}

	var buf bytes.Buffer
	var n int
	colors.WithoutColor(func() {
		n = Write(&buf, errs)
	})

	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	if got := strings.Count(buf.String(), "\n"); got < 2 {
		t.Fatalf("expected one paragraph per error, got %q", buf.String())
	}
}
