package cassowary

// Constraint pairs an expression with a relation against zero and a strength.
// Constraints are immutable once constructed: NewConstraint deep-copies the
// expression, so later mutation of the source cannot reach the solver.
//
// The solver assigns each accepted constraint a ConstraintID used for removal.
type Constraint struct {
	expr     *Expression
	relation Relation
	strength Strength
}

// NewConstraint builds a constraint stating "expr relation 0" with the given
// strength. State "x = 100" as FromVariable(x) with Constant = -100, Equal.
func NewConstraint(expr *Expression, relation Relation, strength Strength) Constraint {
	return Constraint{expr: expr.clone(), relation: relation, strength: strength}
}

// Expression returns a copy of the constraint's expression.
func (c Constraint) Expression() *Expression { return c.expr.clone() }

// Relation returns the constraint's relation.
func (c Constraint) Relation() Relation { return c.relation }

// Strength returns the constraint's strength.
func (c Constraint) Strength() Strength { return c.strength }
