package widgets

import (
	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// List lays its children out in a row or column.
type List struct {
	core.Base
	children []core.Widget
	hints    []layout.AlignHints
	solver   *layout.RowSolver
	rules    []layout.SizeRules
}

// NewList returns a list laying children out in dir.
func NewList(dir geom.Direction, children ...core.Widget) *List {
	l := &List{children: children, solver: layout.NewRowSolver(dir)}
	l.solver.Widget = l.WidgetName()
	return l
}

// NewRow returns a left-to-right list.
func NewRow(children ...core.Widget) *List {
	return NewList(geom.Right, children...)
}

// NewColumn returns a top-to-bottom list.
func NewColumn(children ...core.Widget) *List {
	return NewList(geom.Down, children...)
}

// WithAlign sets the alignment of child i within its slot.
func (l *List) WithAlign(i int, hints layout.AlignHints) *List {
	for len(l.hints) <= i {
		l.hints = append(l.hints, layout.NoHints)
	}
	l.hints[i] = hints
	return l
}

// Direction returns the layout direction.
func (l *List) Direction() geom.Direction { return l.solver.Direction() }

// WidgetName returns "List".
func (l *List) WidgetName() string { return "List" }

// Len returns the number of children.
func (l *List) Len() int { return len(l.children) }

// Get returns child i.
func (l *List) Get(i int) core.Widget {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i]
}

// Push appends a child. The window must be reconfigured to assign it an id.
func (l *List) Push(child core.Widget) core.Action {
	l.children = append(l.children, child)
	return core.ActionReconfigure
}

// Pop removes the last child.
func (l *List) Pop() (core.Widget, core.Action) {
	n := len(l.children)
	if n == 0 {
		return nil, core.ActionNone
	}
	child := l.children[n-1]
	l.children = l.children[:n-1]
	if n <= len(l.hints) {
		l.hints = l.hints[:n-1]
	}
	return child, core.ActionReconfigure
}

// SpatialRange covers every child.
func (l *List) SpatialRange() (int, int) { return 0, len(l.children) - 1 }

// SizeRules appends the children along the list direction.
func (l *List) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	l.rules = l.rules[:0]
	for _, c := range l.children {
		l.rules = append(l.rules, c.SizeRules(sh, axis))
	}
	return l.solver.Rules(axis, l.rules)
}

// SetRect places the children.
func (l *List) SetRect(rect geom.Rect, _ layout.AlignHints) {
	l.StoreRect(rect)
	for i, r := range l.solver.Place(rect, l.hints) {
		l.children[i].SetRect(r, childHints(l.hints, i))
	}
}

// FindID hit-tests the children.
func (l *List) FindID(coord geom.Coord) core.WidgetID {
	return core.DefaultFindID(l, coord)
}

// Draw draws every child.
func (l *List) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	disabled = disabled || l.IsDisabled()
	for _, c := range l.children {
		c.Draw(dh, st, disabled)
	}
}

// Send routes ev to the child containing id.
func (l *List) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	return core.DefaultSend(l, mgr, id, ev)
}

func childHints(hints []layout.AlignHints, i int) layout.AlignHints {
	if i < len(hints) {
		return hints[i]
	}
	return layout.NoHints
}
