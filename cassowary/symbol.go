package cassowary

// symbolKind tags the four kinds of solver-internal unknowns.
type symbolKind uint8

const (
	// symbolExternal is a caller-visible variable (the unknowns being solved for).
	symbolExternal symbolKind = iota
	// symbolSlack turns an inequality into an equality.
	symbolSlack
	// symbolError lets a non-required constraint be violated at a weighted cost.
	symbolError
	// symbolDummy keeps a required-equality row well-formed; it carries no cost
	// and never enters the basis through optimization.
	symbolDummy
)

// symbol is a solver-internal unknown: a kind plus an id unique across all
// symbols a Solver instance ever creates. Ids are never reused. symbols are
// comparable and serve as sparse-map keys in expressions and rows.
type symbol struct {
	kind symbolKind
	id   uint64
}

func (s symbol) isExternal() bool { return s.kind == symbolExternal }

func (s symbol) isSlack() bool { return s.kind == symbolSlack }

func (s symbol) isError() bool { return s.kind == symbolError }

func (s symbol) isDummy() bool { return s.kind == symbolDummy }

// isPivotable reports whether the symbol may become basic through pivoting.
// Only slack and error symbols qualify; externals are handled separately and
// dummies never pivot.
func (s symbol) isPivotable() bool { return s.isSlack() || s.isError() }
