package layout_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlayout/cassowary"
	"github.com/katalvlaran/lvlayout/layout"
)

const delta = 1e-3

// TestSystem_AddElement verifies registration and duplicate rejection.
func TestSystem_AddElement(t *testing.T) {
	sys := layout.NewSystem()

	el, err := sys.AddElement("box")
	require.NoError(t, err)
	assert.Equal(t, "box", el.Name)

	_, err = sys.AddElement("box")
	assert.ErrorIs(t, err, layout.ErrDuplicateElement, "second registration of the same name must fail")

	_, err = sys.Element("missing")
	assert.ErrorIs(t, err, layout.ErrUnknownElement)
}

// TestSystem_SetProperties verifies required property equalities settle.
func TestSystem_SetProperties(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("box")
	require.NoError(t, err)

	_, err = sys.Set("box", layout.Width, 200, cassowary.Required)
	require.NoError(t, err)
	_, err = sys.Set("box", layout.Height, 50, cassowary.Required)
	require.NoError(t, err)

	sol := sys.Solve()
	b, ok := sol.Bounds("box")
	require.True(t, ok)
	assert.InDelta(t, 200.0, b.Width, delta)
	assert.InDelta(t, 50.0, b.Height, delta)
}

// TestSystem_SetUnknownElement verifies operations check the registry first.
func TestSystem_SetUnknownElement(t *testing.T) {
	sys := layout.NewSystem()

	_, err := sys.Set("ghost", layout.Width, 10, cassowary.Required)
	assert.ErrorIs(t, err, layout.ErrUnknownElement)

	_, err = sys.Align("ghost", layout.Left, "ghost", layout.Right, cassowary.Required)
	assert.ErrorIs(t, err, layout.ErrUnknownElement)

	_, err = sys.PlaceBelow("ghost", "ghost", 0, cassowary.Required)
	assert.ErrorIs(t, err, layout.ErrUnknownElement)
}

// TestSystem_AlignLeftToRight verifies edge alignment across elements:
// b.left = a.right places b at a.x + a.width.
func TestSystem_AlignLeftToRight(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("a")
	require.NoError(t, err)
	_, err = sys.AddElement("b")
	require.NoError(t, err)

	_, err = sys.Set("a", layout.X, 10, cassowary.Required)
	require.NoError(t, err)
	_, err = sys.Set("a", layout.Width, 200, cassowary.Required)
	require.NoError(t, err)

	_, err = sys.Align("b", layout.Left, "a", layout.Right, cassowary.Required)
	require.NoError(t, err)

	sol := sys.Solve()
	assert.InDelta(t, 210.0, sol.Value("b", layout.X), delta, "b.left must meet a.right")
}

// TestSystem_AlignCenters verifies the derived CenterX edge expands to
// x + width/2 on both sides.
func TestSystem_AlignCenters(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("a")
	require.NoError(t, err)
	_, err = sys.AddElement("b")
	require.NoError(t, err)

	_, err = sys.Set("a", layout.X, 0, cassowary.Required)
	require.NoError(t, err)
	_, err = sys.Set("a", layout.Width, 100, cassowary.Required)
	require.NoError(t, err)
	_, err = sys.Set("b", layout.Width, 20, cassowary.Required)
	require.NoError(t, err)

	_, err = sys.Align("b", layout.CenterX, "a", layout.CenterX, cassowary.Required)
	require.NoError(t, err)

	sol := sys.Solve()
	assert.InDelta(t, 40.0, sol.Value("b", layout.X), delta, "centers at 50 put b.x at 40")
}

// TestSystem_PlaceBelow verifies relative placement with a gap.
func TestSystem_PlaceBelow(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("header")
	require.NoError(t, err)
	_, err = sys.AddElement("body")
	require.NoError(t, err)

	_, err = sys.Set("header", layout.Y, 20, cassowary.Required)
	require.NoError(t, err)
	_, err = sys.Set("header", layout.Height, 30, cassowary.Required)
	require.NoError(t, err)

	_, err = sys.PlaceBelow("body", "header", 10, cassowary.Required)
	require.NoError(t, err)

	sol := sys.Solve()
	assert.InDelta(t, 60.0, sol.Value("body", layout.Y), delta, "body.y = header.y + header.height + gap")
}

// TestSystem_PlaceRightOf verifies horizontal relative placement.
func TestSystem_PlaceRightOf(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("a")
	require.NoError(t, err)
	_, err = sys.AddElement("b")
	require.NoError(t, err)

	_, err = sys.Set("a", layout.X, 5, cassowary.Required)
	require.NoError(t, err)
	_, err = sys.Set("a", layout.Width, 95, cassowary.Required)
	require.NoError(t, err)

	_, err = sys.PlaceRightOf("b", "a", 12, cassowary.Required)
	require.NoError(t, err)

	sol := sys.Solve()
	assert.InDelta(t, 112.0, sol.Value("b", layout.X), delta)
}

// TestSystem_SetMin verifies a required lower bound settles at the bound when
// nothing else pulls the variable.
func TestSystem_SetMin(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("box")
	require.NoError(t, err)

	_, err = sys.SetMin("box", layout.Width, 100, cassowary.Required)
	require.NoError(t, err)

	sol := sys.Solve()
	assert.GreaterOrEqual(t, sol.Value("box", layout.Width), 100.0-delta)
}

// TestSystem_UnsatisfiablePassthrough verifies solver errors surface through
// the layout wrapper and still match via errors.Is.
func TestSystem_UnsatisfiablePassthrough(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("box")
	require.NoError(t, err)

	_, err = sys.Set("box", layout.X, 10, cassowary.Required)
	require.NoError(t, err)

	_, err = sys.Set("box", layout.X, 20, cassowary.Required)
	assert.ErrorIs(t, err, cassowary.ErrUnsatisfiableConstraint)

	sol := sys.Solve()
	assert.InDelta(t, 10.0, sol.Value("box", layout.X), delta, "first requirement survives the refused add")
}

// TestSystem_RemoveConstraint verifies withdrawal through the layout surface.
func TestSystem_RemoveConstraint(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("box")
	require.NoError(t, err)

	id, err := sys.Set("box", layout.Width, 200, cassowary.Required)
	require.NoError(t, err)

	sol := sys.Solve()
	require.InDelta(t, 200.0, sol.Value("box", layout.Width), delta)

	require.NoError(t, sys.Remove(id))
	sol = sys.Solve()
	assert.InDelta(t, 0.0, sol.Value("box", layout.Width), delta, "width returns to the unconstrained default")

	assert.ErrorIs(t, sys.Remove(id), cassowary.ErrUnknownConstraint)
}

// TestSolution_Snapshot verifies solutions are stable snapshots.
func TestSolution_Snapshot(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("box")
	require.NoError(t, err)

	id, err := sys.Set("box", layout.X, 33, cassowary.Required)
	require.NoError(t, err)

	before := sys.Solve()
	require.NoError(t, sys.Remove(id))
	after := sys.Solve()

	assert.InDelta(t, 33.0, before.Value("box", layout.X), delta, "earlier snapshot must not change")
	assert.InDelta(t, 0.0, after.Value("box", layout.X), delta)

	_, ok := before.Bounds("ghost")
	assert.False(t, ok)
	assert.Equal(t, []string{"box"}, before.Names())
}

// TestSystem_AlignAtZeroFormatsPlainZero verifies a coordinate derived by
// aligning to an edge pinned at zero reads as plain 0 when formatted, not
// IEEE negative zero.
func TestSystem_AlignAtZeroFormatsPlainZero(t *testing.T) {
	sys := layout.NewSystem()
	_, err := sys.AddElement("a")
	require.NoError(t, err)
	_, err = sys.AddElement("b")
	require.NoError(t, err)

	_, err = sys.Set("a", layout.Y, 0, cassowary.Required)
	require.NoError(t, err)

	_, err = sys.Align("b", layout.Top, "a", layout.Top, cassowary.Required)
	require.NoError(t, err)

	sol := sys.Solve()
	y := sol.Value("b", layout.Y)
	assert.False(t, math.Signbit(y), "aligned zero must not carry a negative sign")
	assert.Equal(t, "y=0", fmt.Sprintf("y=%.0f", y))
}

// TestBounds_DerivedEdges verifies the convenience accessors.
func TestBounds_DerivedEdges(t *testing.T) {
	b := layout.Bounds{X: 10, Y: 20, Width: 100, Height: 40}
	assert.Equal(t, 110.0, b.Right())
	assert.Equal(t, 60.0, b.Bottom())
	assert.Equal(t, 60.0, b.CenterX())
	assert.Equal(t, 40.0, b.CenterY())
}
