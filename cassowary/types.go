package cassowary

import "github.com/rs/zerolog"

// Variable is an opaque, copyable handle to one solver unknown. Variables are
// created by Solver.NewVariable and remain valid for the lifetime of the
// originating Solver; they are keys, not references.
type Variable struct {
	id uint64
}

// symbol returns the external symbol this variable resolves to inside the
// tableau. Callers never see symbols directly.
func (v Variable) symbol() symbol {
	return symbol{kind: symbolExternal, id: v.id}
}

// ConstraintID is the handle the solver assigns to each accepted constraint.
// It is required later to remove the constraint.
type ConstraintID uint64

// Relation is the comparison a constraint applies to its expression:
// the expression's symbolic part compared against zero after moving the
// constant across.
type Relation uint8

const (
	// LessOrEqual states expression ≤ 0.
	LessOrEqual Relation = iota
	// Equal states expression = 0.
	Equal
	// GreaterOrEqual states expression ≥ 0.
	GreaterOrEqual
)

// String implements fmt.Stringer for diagnostics and logs.
func (r Relation) String() string {
	switch r {
	case LessOrEqual:
		return "<="
	case Equal:
		return "=="
	case GreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// Option customizes a Solver at construction time.
type Option func(*solverOptions)

// solverOptions collects construction-time settings.
type solverOptions struct {
	log zerolog.Logger
}

// defaultOptions returns the baseline configuration: logging disabled.
func defaultOptions() solverOptions {
	return solverOptions{log: zerolog.Nop()}
}

// WithLogger attaches a zerolog.Logger to the solver. Constraint additions
// and removals are logged at Debug level, pivot activity at Trace level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *solverOptions) { o.log = l }
}
