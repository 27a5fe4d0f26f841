package layout

// Bounds is one element's resolved rectangle.
type Bounds struct {
	X, Y, Width, Height float64
}

// Right returns the resolved right edge (x + width).
func (b Bounds) Right() float64 { return b.X + b.Width }

// Bottom returns the resolved bottom edge (y + height).
func (b Bounds) Bottom() float64 { return b.Y + b.Height }

// CenterX returns the resolved horizontal center (x + width/2).
func (b Bounds) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the resolved vertical center (y + height/2).
func (b Bounds) CenterY() float64 { return b.Y + b.Height/2 }

// Solution is an immutable snapshot of every element's resolved geometry as
// of one System.Solve call. Later solver changes do not affect it.
type Solution struct {
	bounds map[string]Bounds
	names  []string
}

// Bounds returns the resolved rectangle for name; ok is false for names the
// system does not know.
func (s Solution) Bounds(name string) (Bounds, bool) {
	b, ok := s.bounds[name]

	return b, ok
}

// Value returns one resolved property for name (0 for unknown names).
func (s Solution) Value(name string, p Property) float64 {
	b := s.bounds[name]
	switch p {
	case X:
		return b.X
	case Y:
		return b.Y
	case Width:
		return b.Width
	default:
		return b.Height
	}
}

// Names lists every element in registration order.
func (s Solution) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}
