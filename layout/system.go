package layout

import (
	"fmt"

	"github.com/katalvlaran/lvlayout/cassowary"
)

// System bridges layout vocabulary to the cassowary solver: it owns one
// Solver, a registry of named elements, and translates edge alignment,
// relative placement and property constraints into weighted linear
// constraints over the elements' variables.
type System struct {
	solver   *cassowary.Solver
	elements map[string]Element
	// order preserves registration order for Solution snapshots.
	order []string
}

// NewSystem creates an empty layout system. Solver options (such as
// cassowary.WithLogger) are passed through.
func NewSystem(opts ...cassowary.Option) *System {
	return &System{
		solver:   cassowary.NewSolver(opts...),
		elements: make(map[string]Element),
	}
}

// Solver exposes the underlying solver for direct constraint work.
func (s *System) Solver() *cassowary.Solver { return s.solver }

// AddElement registers a named element and creates its four variables.
// Returns ErrDuplicateElement when the name is already taken.
func (s *System) AddElement(name string) (Element, error) {
	if _, exists := s.elements[name]; exists {
		return Element{}, fmt.Errorf("%w: %q", ErrDuplicateElement, name)
	}
	el := Element{
		Name:   name,
		X:      s.solver.NewVariable(),
		Y:      s.solver.NewVariable(),
		Width:  s.solver.NewVariable(),
		Height: s.solver.NewVariable(),
	}
	s.elements[name] = el
	s.order = append(s.order, name)

	return el, nil
}

// Element looks up a registered element by name.
func (s *System) Element(name string) (Element, error) {
	el, ok := s.elements[name]
	if !ok {
		return Element{}, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}

	return el, nil
}

// Set states property = value with the given strength.
func (s *System) Set(name string, p Property, value float64, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	return s.propertyConstraint(name, p, value, cassowary.Equal, strength)
}

// SetMin states property >= value with the given strength.
func (s *System) SetMin(name string, p Property, value float64, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	return s.propertyConstraint(name, p, value, cassowary.GreaterOrEqual, strength)
}

// SetMax states property <= value with the given strength.
func (s *System) SetMax(name string, p Property, value float64, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	return s.propertyConstraint(name, p, value, cassowary.LessOrEqual, strength)
}

// propertyConstraint builds "property - value (relation) 0" and installs it.
func (s *System) propertyConstraint(name string, p Property, value float64, rel cassowary.Relation, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	el, err := s.Element(name)
	if err != nil {
		return 0, err
	}
	expr := cassowary.FromVariable(el.variable(p))
	expr.Constant = -value

	return s.addConstraint(expr, rel, strength, "%s.%s %s %g", name, p, rel, value)
}

// Align states element.edge = target.targetEdge with the given strength.
func (s *System) Align(name string, edge Edge, target string, targetEdge Edge, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	el, err := s.Element(name)
	if err != nil {
		return 0, err
	}
	tgt, err := s.Element(target)
	if err != nil {
		return 0, err
	}

	// element.edge - target.targetEdge = 0
	expr := cassowary.NewExpression(0)
	el.edgeTerms(expr, edge, 1.0)
	tgt.edgeTerms(expr, targetEdge, -1.0)

	return s.addConstraint(expr, cassowary.Equal, strength, "%s.%s align %s.%s", name, edge, target, targetEdge)
}

// PlaceBelow states element.y = target.y + target.height + gap.
func (s *System) PlaceBelow(name, target string, gap float64, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	el, tgt, err := s.pair(name, target)
	if err != nil {
		return 0, err
	}
	expr := cassowary.FromVariable(el.Y)
	expr.AddVariable(tgt.Y, -1.0)
	expr.AddVariable(tgt.Height, -1.0)
	expr.Constant = -gap

	return s.addConstraint(expr, cassowary.Equal, strength, "%s below %s gap %g", name, target, gap)
}

// PlaceAbove states element.y + element.height + gap = target.y.
func (s *System) PlaceAbove(name, target string, gap float64, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	el, tgt, err := s.pair(name, target)
	if err != nil {
		return 0, err
	}
	expr := cassowary.FromVariable(el.Y)
	expr.AddVariable(el.Height, 1.0)
	expr.AddVariable(tgt.Y, -1.0)
	expr.Constant = gap

	return s.addConstraint(expr, cassowary.Equal, strength, "%s above %s gap %g", name, target, gap)
}

// PlaceRightOf states element.x = target.x + target.width + gap.
func (s *System) PlaceRightOf(name, target string, gap float64, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	el, tgt, err := s.pair(name, target)
	if err != nil {
		return 0, err
	}
	expr := cassowary.FromVariable(el.X)
	expr.AddVariable(tgt.X, -1.0)
	expr.AddVariable(tgt.Width, -1.0)
	expr.Constant = -gap

	return s.addConstraint(expr, cassowary.Equal, strength, "%s rightOf %s gap %g", name, target, gap)
}

// PlaceLeftOf states element.x + element.width + gap = target.x.
func (s *System) PlaceLeftOf(name, target string, gap float64, strength cassowary.Strength) (cassowary.ConstraintID, error) {
	el, tgt, err := s.pair(name, target)
	if err != nil {
		return 0, err
	}
	expr := cassowary.FromVariable(el.X)
	expr.AddVariable(el.Width, 1.0)
	expr.AddVariable(tgt.X, -1.0)
	expr.Constant = gap

	return s.addConstraint(expr, cassowary.Equal, strength, "%s leftOf %s gap %g", name, target, gap)
}

// Constrain installs an arbitrary solver constraint over element variables;
// the escape hatch for anything the layout vocabulary does not cover.
func (s *System) Constrain(c cassowary.Constraint) (cassowary.ConstraintID, error) {
	id, err := s.solver.AddConstraint(c)
	if err != nil {
		return 0, fmt.Errorf("layout: %w", err)
	}

	return id, nil
}

// Remove withdraws a previously installed constraint by handle.
func (s *System) Remove(id cassowary.ConstraintID) error {
	if err := s.solver.RemoveConstraint(id); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	return nil
}

// pair resolves two element names at once.
func (s *System) pair(name, target string) (Element, Element, error) {
	el, err := s.Element(name)
	if err != nil {
		return Element{}, Element{}, err
	}
	tgt, err := s.Element(target)
	if err != nil {
		return Element{}, Element{}, err
	}

	return el, tgt, nil
}

// addConstraint installs expr (relation) 0 and wraps solver errors with a
// human-readable description of the violated statement.
func (s *System) addConstraint(expr *cassowary.Expression, rel cassowary.Relation, strength cassowary.Strength, format string, args ...any) (cassowary.ConstraintID, error) {
	id, err := s.solver.AddConstraint(cassowary.NewConstraint(expr, rel, strength))
	if err != nil {
		return 0, fmt.Errorf("layout: %s: %w", fmt.Sprintf(format, args...), err)
	}

	return id, nil
}

// Solve refreshes every variable and snapshots the resolved geometry.
func (s *System) Solve() Solution {
	s.solver.UpdateVariables()

	sol := Solution{bounds: make(map[string]Bounds, len(s.order)), names: make([]string, len(s.order))}
	copy(sol.names, s.order)
	for _, name := range s.order {
		el := s.elements[name]
		sol.bounds[name] = Bounds{
			X:      s.solver.Value(el.X),
			Y:      s.solver.Value(el.Y),
			Width:  s.solver.Value(el.Width),
			Height: s.solver.Value(el.Height),
		}
	}

	return sol
}
