package typecheck

// Constraint relates type terms. Constraints are pure data: a block
// signature generates them once and the solver consumes them once.
//
// run reports whether the constraint is finished: it either checked
// successfully, bound a variable, or recorded an error. An unfinished
// constraint is requeued for the next pass.
type Constraint interface {
	String() string
	run(s *Solver) bool
}

// defaulter is implemented by constraints that can make a defaulting
// decision once a pass stops making progress, breaking ties that
// ordinary solving can't.
type defaulter interface {
	runDefault(s *Solver) bool
}
