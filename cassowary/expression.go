package cassowary

import "math"

// epsilon is the tolerance below which a coefficient or constant is treated
// as exactly zero, guarding the sparse maps against floating-point noise.
const epsilon = 1e-8

// nearZero reports whether v lies within the epsilon tolerance of zero.
func nearZero(v float64) bool { return math.Abs(v) < epsilon }

// Expression is a sparse linear combination of solver unknowns plus a
// constant: Constant + Σ coefficient·symbol. Terms whose coefficient falls
// below the epsilon tolerance are pruned, never stored as explicit zeros.
//
// The public surface works in Variables; the solver resolves them to internal
// symbols. All operations are pure transformations of the sparse map and
// never fail.
type Expression struct {
	// Constant is the constant term. Constraints are stated by moving the
	// right-hand side across: "x = 100" becomes FromVariable(x) with
	// Constant = -100 and relation Equal.
	Constant float64

	terms map[symbol]float64
}

// NewExpression builds a constant expression with no terms.
func NewExpression(constant float64) *Expression {
	return &Expression{Constant: constant, terms: make(map[symbol]float64)}
}

// FromVariable builds the expression 1·v with a zero constant.
func FromVariable(v Variable) *Expression {
	e := NewExpression(0)
	e.terms[v.symbol()] = 1.0

	return e
}

// AddVariable merges coefficient·v into the expression. A resulting
// coefficient within epsilon of zero removes the term entirely.
func (e *Expression) AddVariable(v Variable, coefficient float64) {
	e.addTerm(v.symbol(), coefficient)
}

// addTerm merges coefficient·sym, epsilon-pruning near-zero results.
func (e *Expression) addTerm(sym symbol, coefficient float64) {
	if nearZero(coefficient) {
		delete(e.terms, sym)

		return
	}
	next := e.terms[sym] + coefficient
	if nearZero(next) {
		delete(e.terms, sym)
	} else {
		e.terms[sym] = next
	}
}

// Multiply scales the whole expression (constant and every term) by scalar.
func (e *Expression) Multiply(scalar float64) {
	e.Constant *= scalar
	for sym, c := range e.terms {
		e.terms[sym] = c * scalar
	}
}

// AddExpression merges multiplier·other into e, term by term. This is the
// workhorse behind substitution and constraint-to-row construction.
func (e *Expression) AddExpression(other *Expression, multiplier float64) {
	e.Constant += other.Constant * multiplier
	for sym, c := range other.terms {
		e.addTerm(sym, c*multiplier)
	}
}

// CoefficientOf returns v's coefficient, or 0 when v is absent.
func (e *Expression) CoefficientOf(v Variable) float64 {
	return e.terms[v.symbol()]
}

// Substitute replaces v's term with a scaled copy of repl: if v carries
// coefficient c, the term is removed and c·repl is merged in.
func (e *Expression) Substitute(v Variable, repl *Expression) {
	e.substituteSymbol(v.symbol(), repl)
}

// substituteSymbol is Substitute for solver-internal symbols.
func (e *Expression) substituteSymbol(sym symbol, repl *Expression) {
	c, ok := e.terms[sym]
	if !ok {
		return
	}
	delete(e.terms, sym)
	e.AddExpression(repl, c)
}

// clone returns a deep copy; constraints keep one so that later caller-side
// mutation of the source expression cannot reach the solver.
func (e *Expression) clone() *Expression {
	cp := &Expression{Constant: e.Constant, terms: make(map[symbol]float64, len(e.terms))}
	for sym, c := range e.terms {
		cp.terms[sym] = c
	}

	return cp
}
