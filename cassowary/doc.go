// Package cassowary provides an incremental linear-arithmetic constraint
// solver based on the Cassowary algorithm (Badros & Borning, "The Cassowary
// Linear Arithmetic Constraint Solving Algorithm").
//
// Overview:
//
//   - Callers create Variables, combine them into sparse linear Expressions,
//     wrap those in Constraints carrying a Relation (≤, =, ≥) and a Strength
//     (Required, Strong, Medium, Weak), and feed them to a Solver.
//   - The Solver maintains a simplex tableau and re-optimizes incrementally:
//     adding or removing one constraint re-uses the existing basis instead of
//     re-solving the whole system from scratch.
//   - Required constraints must hold exactly, or AddConstraint refuses them
//     with ErrUnsatisfiableConstraint. Lower strengths are satisfied on a
//     best-effort, weighted basis: violating a constraint costs its strength
//     in the minimized objective.
//
// When to use:
//
//   - Constraint-based layout: "align my left edge with X's right edge, with
//     this priority" becomes a weighted linear equality over edge variables.
//     See the companion layout package for a ready-made element/edge surface.
//   - Any incremental system of weighted linear equalities and inequalities
//     over real unknowns, where constraints come and go as the user edits.
//
// Key features:
//
//   - Incremental add/remove: each structural change performs a bounded
//     sequence of pivots followed by a re-optimization of the objective.
//   - SuggestValue: a convenience that pins a variable to a target value with
//     a Strong equality (each call adds a fresh constraint; remove earlier
//     suggestions yourself if you re-suggest repeatedly).
//   - Functional options: WithLogger attaches a zerolog.Logger for pivot and
//     constraint tracing (disabled by default).
//
// Numerics:
//
//   - All coefficients are float64. A fixed epsilon of 1e-8 bounds numerical
//     robustness: coefficients whose magnitude falls below it are pruned from
//     the sparse maps and treated as exactly zero.
//   - No anti-cycling guarantees beyond the standard Cassowary heuristics.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrUnsatisfiableConstraint:
//     A required constraint reduced to a dummy-only row with a non-zero
//     constant; the add is refused and the tableau is left untouched.
//   - ErrUnknownConstraint:
//     RemoveConstraint referenced a handle the solver never issued, or one
//     that was already removed.
//   - ErrInternal:
//     An algorithmic invariant was violated (unbounded objective, or an
//     artificial variable that could not be driven out). The solver may be
//     left in an inconsistent state; treat the instance as unusable.
//
// Thread safety:
//
//   - A Solver is single-threaded: every operation runs to completion before
//     returning, and concurrent access must be serialized by the caller
//     (e.g. one solver per document, driven from a single layout goroutine).
//
// See also:
//
//   - layout: named elements with x/y/width/height variables, edge alignment
//     and relative placement, built on this package.
package cassowary
