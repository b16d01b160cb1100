package driver

import (
	"fmt"
	"io"

	"weft/colors"
	"weft/feedback"
)

// WriteReport prints the resolved types, feedback, and lowered
// program for a compiled patch. Shared by the CLI and the snapshot
// tests.
func WriteReport(w io.Writer, result *PatchResult) {
	fmt.Fprintln(w, colors.Title("Types:"))
	for _, id := range result.Order {
		res := result.Instances[id]
		if !res.OK {
			fmt.Fprintf(w, "%s: %s\n", colors.Code(id), colors.Conflict("not solved"))
			continue
		}
		fmt.Fprintf(w, "%s: %v\n", colors.Code(id), res.Types)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(w, colors.Title("Feedback:"))
		feedback.Write(w, result.Errors)
	}

	if ops := result.Program.Ops(); len(ops) > 0 {
		fmt.Fprintln(w, colors.Title("Program:"))
		for _, op := range ops {
			fmt.Fprintf(w, "  %v %s\n", op, colors.Extra(result.Program.SlotType(op.Out).String()))
		}
	}
	fmt.Fprintf(w, "%d slot(s)\n", result.Program.NumSlots())
}
