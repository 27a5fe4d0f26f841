// Package layout positions rectangular elements with linear constraints,
// built on the cassowary solver.
//
// Overview:
//
//   - A System owns one cassowary.Solver and a registry of named elements.
//     Each element carries four solver variables: X, Y, Width, Height.
//   - Constraints are stated in layout vocabulary ("set Width to 200",
//     "align my Left edge with sidebar's Right edge", "place me below the
//     header with a 12px gap") and translated into weighted linear
//     equalities and inequalities over the edge variables.
//   - Solve refreshes the solver's variable cache and snapshots a Solution:
//     an immutable view of every element's resolved bounds.
//
// When to use:
//
//   - Document and UI layout where elements are positioned by explicit
//     relationships rather than a box-layout pass: anchored panels, aligned
//     labels, gap-separated stacks with priorities.
//
// Key features:
//
//   - Edges: Left, Right, Top, Bottom, CenterX, CenterY; derived edges expand
//     to their linear form (right = x + width, centerX = x + width/2, …).
//   - Priorities: every operation takes a cassowary.Strength, so required
//     geometry and best-effort preferences coexist in one system.
//   - Incremental: operations return cassowary.ConstraintID handles; withdraw
//     any constraint later without rebuilding the system.
//   - Constrain escape hatch: arbitrary cassowary.Constraints over element
//     variables for anything the vocabulary does not cover.
//
// Error handling (sentinel errors, matched via errors.Is):
//
//   - ErrDuplicateElement: AddElement was given a name already registered.
//   - ErrUnknownElement:   an operation referenced an unregistered name.
//   - Solver errors pass through wrapped: errors.Is still matches
//     cassowary.ErrUnsatisfiableConstraint and friends.
//
// Thread safety:
//
//   - A System is single-threaded, like the solver it wraps; serialize
//     access externally.
//
// See also:
//
//   - cassowary: the incremental constraint solver underneath.
package layout
