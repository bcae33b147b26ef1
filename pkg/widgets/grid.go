package widgets

import (
	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// Grid lays its children out in cells, which may span several columns or
// rows.
type Grid struct {
	core.Base
	cells    []layout.GridCell
	children []core.Widget
	solver   *layout.GridSolver
	rules    []layout.SizeRules
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// Add places child in a single cell.
func (g *Grid) Add(col, row int, child core.Widget) *Grid {
	return g.AddSpan(layout.GridCell{Col: col, Row: row}, child)
}

// AddSpan places child in cell.
func (g *Grid) AddSpan(cell layout.GridCell, child core.Widget) *Grid {
	g.cells = append(g.cells, cell)
	g.children = append(g.children, child)
	g.solver = nil
	return g
}

// WidgetName returns "Grid".
func (g *Grid) WidgetName() string { return "Grid" }

// Len returns the number of children.
func (g *Grid) Len() int { return len(g.children) }

// Get returns child i.
func (g *Grid) Get(i int) core.Widget {
	if i < 0 || i >= len(g.children) {
		return nil
	}
	return g.children[i]
}

// SpatialRange covers every child.
func (g *Grid) SpatialRange() (int, int) { return 0, len(g.children) - 1 }

// SizeRules combines the children per column or row.
func (g *Grid) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	if g.solver == nil {
		g.solver = layout.NewGridSolver(g.cells)
		g.solver.Widget = g.WidgetName()
	}
	g.rules = g.rules[:0]
	for _, c := range g.children {
		g.rules = append(g.rules, c.SizeRules(sh, axis))
	}
	return g.solver.Rules(axis, g.rules)
}

// SetRect places the children in their cells.
func (g *Grid) SetRect(rect geom.Rect, _ layout.AlignHints) {
	g.StoreRect(rect)
	if g.solver == nil {
		g.solver = layout.NewGridSolver(g.cells)
		g.solver.Widget = g.WidgetName()
	}
	for i, r := range g.solver.Place(rect, nil) {
		g.children[i].SetRect(r, layout.NoHints)
	}
}

// FindID hit-tests the children.
func (g *Grid) FindID(coord geom.Coord) core.WidgetID {
	return core.DefaultFindID(g, coord)
}

// Draw draws every child.
func (g *Grid) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	disabled = disabled || g.IsDisabled()
	for _, c := range g.children {
		c.Draw(dh, st, disabled)
	}
}

// Send routes ev to the child containing id.
func (g *Grid) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	return core.DefaultSend(g, mgr, id, ev)
}
