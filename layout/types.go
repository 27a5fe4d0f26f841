package layout

import "github.com/katalvlaran/lvlayout/cassowary"

// Property identifies one of the four solver variables every element carries.
type Property uint8

const (
	// X is the element's left coordinate.
	X Property = iota
	// Y is the element's top coordinate.
	Y
	// Width is the element's horizontal extent.
	Width
	// Height is the element's vertical extent.
	Height
)

// String implements fmt.Stringer for diagnostics.
func (p Property) String() string {
	switch p {
	case X:
		return "x"
	case Y:
		return "y"
	case Width:
		return "width"
	case Height:
		return "height"
	default:
		return "?"
	}
}

// Edge names a horizontal or vertical element edge usable in alignment.
// Derived edges expand to their linear form: Right = x + width,
// CenterX = x + width/2, and the vertical analogues.
type Edge uint8

const (
	Left Edge = iota
	Right
	Top
	Bottom
	CenterX
	CenterY
)

// String implements fmt.Stringer for diagnostics.
func (e Edge) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case CenterX:
		return "centerX"
	case CenterY:
		return "centerY"
	default:
		return "?"
	}
}

// Element is a named rectangle: four solver variables for its position and
// size. Elements are created by System.AddElement and are plain copyable
// handles, valid as long as the owning System exists.
type Element struct {
	Name   string
	X      cassowary.Variable
	Y      cassowary.Variable
	Width  cassowary.Variable
	Height cassowary.Variable
}

// variable returns the solver variable behind p.
func (el Element) variable(p Property) cassowary.Variable {
	switch p {
	case X:
		return el.X
	case Y:
		return el.Y
	case Width:
		return el.Width
	default:
		return el.Height
	}
}

// edgeTerms adds the edge's linear form into expr with the given sign.
func (el Element) edgeTerms(expr *cassowary.Expression, e Edge, sign float64) {
	switch e {
	case Left:
		expr.AddVariable(el.X, sign)
	case Right:
		expr.AddVariable(el.X, sign)
		expr.AddVariable(el.Width, sign)
	case Top:
		expr.AddVariable(el.Y, sign)
	case Bottom:
		expr.AddVariable(el.Y, sign)
		expr.AddVariable(el.Height, sign)
	case CenterX:
		expr.AddVariable(el.X, sign)
		expr.AddVariable(el.Width, sign*0.5)
	case CenterY:
		expr.AddVariable(el.Y, sign)
		expr.AddVariable(el.Height, sign*0.5)
	}
}
