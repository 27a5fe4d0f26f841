package cassowary

import (
	"fmt"

	"github.com/rs/zerolog"
)

// tag is the pair of internal marker symbols created for one constraint.
// marker identifies the constraint inside the tableau for later removal;
// other carries the second error symbol (or a placeholder dummy when the
// constraint needed only one marker).
type tag struct {
	marker symbol
	other  symbol
}

// Solver owns the simplex tableau: the objective row, the basic-variable
// table, the constraint→marker registry and the cached variable values.
//
// A Solver is not safe for concurrent use; serialize access externally.
type Solver struct {
	log zerolog.Logger

	// varCounter and symCounter issue monotonically increasing ids for
	// external variables and for internal slack/error/dummy symbols. Ids are
	// never reused.
	varCounter uint64
	symCounter uint64

	// objective tracks the weighted sum of all non-required constraint
	// violations currently being minimized.
	objective *row

	// artificial is the transient phase-1 objective used only while restoring
	// feasibility after inserting a row with no natural subject; nil otherwise.
	artificial *row

	// rows is the basic-variable table: a symbol present as a key is basic and
	// equals its row's constant; all other symbols are implicitly at zero.
	rows map[symbol]*row

	// markers maps each installed constraint handle to its marker pair.
	markers map[ConstraintID]tag

	constraintCounter uint64

	// values caches variable values as of the last UpdateVariables call.
	values map[Variable]float64
}

// NewSolver creates an empty solver. Options: WithLogger.
func NewSolver(opts ...Option) *Solver {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{
		log:       cfg.log,
		objective: newRow(0),
		rows:      make(map[symbol]*row),
		markers:   make(map[ConstraintID]tag),
		values:    make(map[Variable]float64),
	}
}

// NewVariable creates a fresh variable, initially unconstrained at 0.
func (s *Solver) NewVariable() Variable {
	v := Variable{id: s.varCounter}
	s.varCounter++
	s.values[v] = 0

	return v
}

// Value returns v's current value: the live tableau value when v is basic,
// else the value cached by the last UpdateVariables, else 0.
func (s *Solver) Value(v Variable) float64 {
	if r, ok := s.rows[v.symbol()]; ok {
		return r.constant
	}
	if val, ok := s.values[v]; ok {
		return val
	}

	return 0
}

// UpdateVariables refreshes the cached value of every known variable: the
// row constant when the variable is basic, 0 otherwise (a non-basic external
// sits at its natural minimum).
func (s *Solver) UpdateVariables() {
	for v := range s.values {
		if r, ok := s.rows[v.symbol()]; ok {
			s.values[v] = r.constant
		} else {
			s.values[v] = 0
		}
	}
}

// AddConstraint installs c into the tableau and re-optimizes.
//
// Returns the handle to pass to RemoveConstraint, or:
//   - ErrUnsatisfiableConstraint if c is required and contradicts the
//     already-active required constraints (the tableau is left untouched);
//   - ErrInternal if an algorithmic invariant broke mid-pivot (the tableau
//     may be inconsistent; treat the solver as unusable).
//
// A constraint that is linearly redundant given the active required
// constraints is accepted and assigned a handle; removing it later is a no-op.
func (s *Solver) AddConstraint(c Constraint) (ConstraintID, error) {
	id := ConstraintID(s.constraintCounter)
	s.constraintCounter++

	// 1) Build the tableau row and its marker pair. Basic symbols referenced
	//    by the expression are expanded so the row only mentions non-basic ones.
	r, t := s.createRow(c)

	// 2) Pick a subject to become basic: an external symbol when present, else
	//    a pivotable marker with a usable coefficient.
	subject, found := chooseSubject(r, t)

	// 3) No subject and nothing but dummies left: the constraint is a statement
	//    about already-fixed values. Non-zero constant ⇒ contradiction; zero ⇒
	//    redundant (handle issued, no tableau effect).
	if !found && allDummies(r) {
		if !nearZero(r.constant) {
			return 0, fmt.Errorf("%w: conflicts with required constraints", ErrUnsatisfiableConstraint)
		}
		s.markers[id] = t
		s.log.Debug().Uint64("constraint", uint64(id)).Msg("redundant constraint accepted")

		return id, nil
	}

	// 4) No natural subject but pivotable symbols remain: introduce an
	//    artificial variable and run a phase-1 feasibility restoration.
	if !found {
		subject, found = s.addArtificialVariable(r)
		if !found {
			return 0, fmt.Errorf("%w: artificial variable could not be driven out", ErrInternal)
		}
	}

	// 5) Solve the row for the subject and substitute it throughout the
	//    tableau, then install the row under the subject.
	r.solveFor(subject)
	s.substitute(subject, r)
	s.rows[subject] = r

	// 6) Register the marker pair and restore optimality.
	s.markers[id] = t
	if err := s.optimize(s.objective.clone()); err != nil {
		return 0, err
	}

	s.log.Debug().
		Uint64("constraint", uint64(id)).
		Stringer("relation", c.relation).
		Float64("strength", float64(c.strength)).
		Msg("constraint added")

	return id, nil
}

// RemoveConstraint withdraws the constraint identified by id and re-optimizes.
// Returns ErrUnknownConstraint when the handle was never issued or was
// already removed. Removing a redundant constraint is a no-op.
func (s *Solver) RemoveConstraint(id ConstraintID) error {
	t, ok := s.markers[id]
	if !ok {
		return fmt.Errorf("%w: handle %d", ErrUnknownConstraint, id)
	}
	delete(s.markers, id)

	// 1) Reverse the constraint's objective contribution added by createRow.
	s.removeConstraintEffects(t)

	// 2) Drop the marker from the tableau. A basic marker takes its row with
	//    it; otherwise pivot the marker in via the feasibility-preserving
	//    minimum-ratio row, then discard it.
	if _, basic := s.rows[t.marker]; basic {
		delete(s.rows, t.marker)
	} else if leaving, ok := s.leavingRowForMarker(t.marker); ok {
		r := s.rows[leaving]
		delete(s.rows, leaving)
		r.solveForSymbols(leaving, t.marker)
		s.substitute(t.marker, r)
	}
	// A marker present in no row belongs to a redundant constraint that never
	// touched the tableau; nothing to undo.

	// 3) Restore optimality.
	if err := s.optimize(s.objective.clone()); err != nil {
		return err
	}

	s.log.Debug().Uint64("constraint", uint64(id)).Msg("constraint removed")

	return nil
}

// SuggestValue pins v to value with a Strong equality constraint
// (v - value = 0). Each call adds a brand-new constraint that is never
// automatically withdrawn: repeated suggestions accumulate unless the caller
// removes earlier ones.
func (s *Solver) SuggestValue(v Variable, value float64) error {
	expr := FromVariable(v)
	expr.Constant = -value
	if _, err := s.AddConstraint(NewConstraint(expr, Equal, Strong)); err != nil {
		return err
	}

	return nil
}

// createRow turns a constraint into a tableau row plus its marker pair.
//
// Terms referencing currently basic symbols are expanded through their rows,
// so the result is expressed purely in non-basic symbols. Slack, error and
// dummy symbols are introduced per the relation and strength, error costs are
// charged to the objective, and the row is normalized to a non-negative
// constant.
func (s *Solver) createRow(c Constraint) (*row, tag) {
	r := newRow(c.expr.Constant)

	for sym, coeff := range c.expr.terms {
		if nearZero(coeff) {
			continue
		}
		if basic, ok := s.rows[sym]; ok {
			r.constant += coeff * basic.constant
			for bs, bc := range basic.cells {
				r.add(bs, bc*coeff)
			}
		} else {
			r.add(sym, coeff)
		}
	}

	// Placeholder dummies; overwritten below as markers are assigned.
	t := tag{marker: s.newSymbol(symbolDummy), other: s.newSymbol(symbolDummy)}

	switch c.relation {
	case LessOrEqual, GreaterOrEqual:
		coeff := 1.0
		if c.relation == GreaterOrEqual {
			coeff = -1.0
		}
		slack := s.newSymbol(symbolSlack)
		t.marker = slack
		r.insertSymbol(slack, coeff)

		if !c.strength.IsRequired() {
			errSym := s.newSymbol(symbolError)
			t.other = errSym
			r.insertSymbol(errSym, -coeff)
			s.objective.insertSymbol(errSym, float64(c.strength))
		}
	case Equal:
		if c.strength.IsRequired() {
			dummy := s.newSymbol(symbolDummy)
			t.marker = dummy
			r.insertSymbol(dummy, 1.0)
		} else {
			// Two error symbols represent over- and under-shoot.
			errPlus := s.newSymbol(symbolError)
			errMinus := s.newSymbol(symbolError)
			t.marker = errPlus
			t.other = errMinus
			r.insertSymbol(errPlus, -1.0)
			r.insertSymbol(errMinus, 1.0)
			s.objective.insertSymbol(errPlus, float64(c.strength))
			s.objective.insertSymbol(errMinus, float64(c.strength))
		}
	}

	// Rows are kept with a non-negative constant by convention.
	if r.constant < 0 {
		r.constant = -r.constant
		for sym, coeff := range r.cells {
			r.cells[sym] = -coeff
		}
	}

	return r, t
}

// newSymbol issues a fresh internal symbol of the given kind.
func (s *Solver) newSymbol(kind symbolKind) symbol {
	sym := symbol{kind: kind, id: s.symCounter}
	s.symCounter++

	return sym
}

// chooseSubject picks the symbol to make basic for a new row: any external
// symbol keeps caller variables directly readable; failing that, a pivotable
// marker with a non-zero coefficient.
func chooseSubject(r *row, t tag) (symbol, bool) {
	for sym := range r.cells {
		if sym.isExternal() {
			return sym, true
		}
	}
	if t.marker.isPivotable() && !nearZero(r.coefficientOf(t.marker)) {
		return t.marker, true
	}
	if t.other.isPivotable() && !nearZero(r.coefficientOf(t.other)) {
		return t.other, true
	}

	return symbol{}, false
}

// allDummies reports whether every remaining cell is a dummy symbol.
func allDummies(r *row) bool {
	for sym := range r.cells {
		if sym.isPivotable() || sym.isExternal() {
			return false
		}
	}

	return true
}

// addArtificialVariable installs r under a fresh artificial slack symbol and
// runs a restricted phase-1 minimization of the row's own infeasibility.
// On success the artificial symbol is driven out (or left inert) and returned
// as the subject; failure means the row could not be reduced to zero
// artificial contribution.
func (s *Solver) addArtificialVariable(r *row) (symbol, bool) {
	art := s.newSymbol(symbolSlack)

	// Install a copy of the row (dummies excluded) under the artificial symbol.
	artRow := newRow(r.constant)
	for sym, c := range r.cells {
		if !sym.isDummy() {
			artRow.insertSymbol(sym, c)
		}
	}
	s.rows[art] = artRow

	// Phase-1 objective: the negated row; driving its constant to zero makes
	// the new row feasible without the artificial symbol.
	phase1 := newRow(-r.constant)
	for sym, c := range r.cells {
		phase1.insertSymbol(sym, -c)
	}
	s.artificial = phase1

	// Optimize the artificial objective; substitutions reach s.artificial via
	// Solver.substitute, so the post-optimization constant is read from there.
	_ = s.optimize(s.artificial.clone())

	if !nearZero(s.artificial.constant) {
		s.artificial = nil

		return symbol{}, false
	}
	s.artificial = nil

	// Pivot the artificial symbol out if it is still basic.
	if installed, ok := s.rows[art]; ok {
		delete(s.rows, art)
		if len(installed.cells) == 0 {
			return art, true
		}
		var entering symbol
		for sym := range installed.cells {
			entering = sym

			break
		}
		installed.solveForSymbols(art, entering)
		s.substitute(entering, installed)
		s.rows[entering] = installed
	}

	return art, true
}

// substitute replaces sym by r throughout every tableau row, the objective
// and, when active, the artificial objective.
func (s *Solver) substitute(sym symbol, r *row) {
	for _, existing := range s.rows {
		existing.substitute(sym, r)
	}
	s.objective.substitute(sym, r)
	if s.artificial != nil {
		s.artificial.substitute(sym, r)
	}
}

// optimize runs the primal simplex loop against the given objective snapshot
// until no entering symbol remains. The snapshot drives entering-symbol
// selection; the solver's own objective rows are updated through substitute.
func (s *Solver) optimize(objective *row) error {
	pivots := 0
	for {
		entering, ok := enteringSymbol(objective)
		if !ok {
			// Optimal: no non-dummy coefficient is negative.
			s.log.Trace().Int("pivots", pivots).Msg("optimize done")

			return nil
		}

		leaving, lrow, ok := s.takeLeavingRow(entering)
		if !ok {
			return fmt.Errorf("%w: objective is unbounded", ErrInternal)
		}

		lrow.solveForSymbols(leaving, entering)
		s.substitute(entering, lrow)
		objective.substitute(entering, lrow)
		s.rows[entering] = lrow
		pivots++
	}
}

// enteringSymbol picks the non-dummy symbol with the most negative objective
// coefficient. Ties fall to map iteration order.
func enteringSymbol(objective *row) (symbol, bool) {
	var (
		best      symbol
		bestCoeff = -epsilon
		found     bool
	)
	for sym, c := range objective.cells {
		if sym.isDummy() {
			continue
		}
		if c < bestCoeff {
			best = sym
			bestCoeff = c
			found = true
		}
	}

	return best, found
}

// takeLeavingRow runs the minimum-ratio test for the entering symbol over all
// basic rows with a negative coefficient on it, excluding rows keyed by
// external symbols (externals never leave the basis through optimization).
// The chosen row is removed from the table and returned.
func (s *Solver) takeLeavingRow(entering symbol) (symbol, *row, bool) {
	var (
		leaving  symbol
		minRatio = 0.0
		found    bool
	)
	for sym, r := range s.rows {
		if sym.isExternal() {
			continue
		}
		coeff := r.coefficientOf(entering)
		if coeff >= -epsilon {
			continue
		}
		ratio := -r.constant / coeff
		if !found || ratio < minRatio {
			minRatio = ratio
			leaving = sym
			found = true
		}
	}
	if !found {
		return symbol{}, nil, false
	}

	r := s.rows[leaving]
	delete(s.rows, leaving)

	return leaving, r, true
}

// leavingRowForMarker finds the row to pivot a non-basic marker into before
// dropping it: among all rows containing the marker, the one minimizing
// constant/coefficient, preserving feasibility. Unlike the optimization path,
// external-keyed rows are eligible here, since removing a constraint may leave
// an external variable non-basic again.
func (s *Solver) leavingRowForMarker(marker symbol) (symbol, bool) {
	var (
		leaving  symbol
		minRatio = 0.0
		found    bool
	)
	for sym, r := range s.rows {
		coeff := r.coefficientOf(marker)
		if nearZero(coeff) {
			continue
		}
		ratio := r.constant / coeff
		if !found || ratio < minRatio {
			minRatio = ratio
			leaving = sym
			found = true
		}
	}

	return leaving, found
}

// removeConstraintEffects reverses the objective contribution createRow added
// for the constraint's error marker: the marker's row coefficients when it is
// basic, or its raw unit contribution when it is not.
func (s *Solver) removeConstraintEffects(t tag) {
	if !t.other.isError() {
		return
	}
	if r, ok := s.rows[t.other]; ok {
		for sym, c := range r.cells {
			s.objective.add(sym, -c)
		}
	} else {
		s.objective.add(t.other, -1.0)
	}
}
