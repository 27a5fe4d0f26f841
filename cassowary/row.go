package cassowary

// row is the tableau representation of one equation. For whichever symbol the
// row is currently keyed under in the basic-variable table it reads
//
//	basic = constant + Σ cells[sym]·sym
//
// Rows are the unit of pivoting. By convention a freshly constructed
// constraint row is normalized to a non-negative constant (see Solver.createRow).
type row struct {
	constant float64
	cells    map[symbol]float64
}

func newRow(constant float64) *row {
	return &row{constant: constant, cells: make(map[symbol]float64)}
}

// add merges coefficient·sym into the row, pruning near-zero results.
func (r *row) add(sym symbol, coefficient float64) {
	next := r.cells[sym] + coefficient
	if nearZero(next) {
		delete(r.cells, sym)
	} else {
		r.cells[sym] = next
	}
}

// insertSymbol sets sym's coefficient outright (no merge), dropping the cell
// when the coefficient is within epsilon of zero.
func (r *row) insertSymbol(sym symbol, coefficient float64) {
	if nearZero(coefficient) {
		delete(r.cells, sym)
	} else {
		r.cells[sym] = coefficient
	}
}

// coefficientOf returns sym's coefficient, or 0 when absent.
func (r *row) coefficientOf(sym symbol) float64 {
	return r.cells[sym]
}

// substitute replaces sym's term with its coefficient times other, merging
// other's constant and cells into this row. No-op when sym is absent.
func (r *row) substitute(sym symbol, other *row) {
	c, ok := r.cells[sym]
	if !ok {
		return
	}
	delete(r.cells, sym)
	r.constant += c * other.constant
	for s, oc := range other.cells {
		r.add(s, oc*c)
	}
}

// solveFor isolates sym on the left-hand side: given 0 = constant + Σ cells,
// the row is rescaled so it reads sym = constant' + Σ cells'. A missing sym
// is treated as carrying coefficient 1.
func (r *row) solveFor(sym symbol) {
	coeff, ok := r.cells[sym]
	if !ok {
		coeff = 1.0
	}
	delete(r.cells, sym)
	multiplier := -1.0 / coeff
	r.constant *= multiplier
	// A zero constant times a negative multiplier is IEEE -0, which formats
	// as "-0"; keep constants plain.
	if r.constant == 0 {
		r.constant = 0
	}
	for s, c := range r.cells {
		r.cells[s] = c * multiplier
	}
}

// solveForSymbols re-expresses a row currently keyed by lhs so it is solved
// for rhs instead: lhs re-enters the cells with coefficient -1, then the row
// is solved for rhs. This is the pivot primitive.
func (r *row) solveForSymbols(lhs, rhs symbol) {
	r.insertSymbol(lhs, -1.0)
	r.solveFor(rhs)
}

// clone returns a deep copy of the row.
func (r *row) clone() *row {
	cp := &row{constant: r.constant, cells: make(map[symbol]float64, len(r.cells))}
	for s, c := range r.cells {
		cp.cells[s] = c
	}

	return cp
}
