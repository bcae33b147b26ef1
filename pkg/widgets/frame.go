package widgets

import (
	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// Frame draws a border around a single child.
type Frame struct {
	core.Base
	child core.Widget
	sur   surround
	menu  bool
}

// NewFrame returns a frame around child.
func NewFrame(child core.Widget) *Frame {
	return &Frame{child: child}
}

// NewMenuFrame returns a popup menu frame around child: a border plus an
// opaque background.
func NewMenuFrame(child core.Widget) *Frame {
	return &Frame{child: child, menu: true}
}

// WidgetName returns "Frame" or "MenuFrame".
func (f *Frame) WidgetName() string {
	if f.menu {
		return "MenuFrame"
	}
	return "Frame"
}

// Child returns the framed widget.
func (f *Frame) Child() core.Widget { return f.child }

// Len returns 1.
func (f *Frame) Len() int { return 1 }

// Get returns the child for index 0.
func (f *Frame) Get(i int) core.Widget {
	if i != 0 {
		return nil
	}
	return f.child
}

// SpatialRange covers the child.
func (f *Frame) SpatialRange() (int, int) { return 0, 0 }

// SizeRules surrounds the child's rules with the frame border.
func (f *Frame) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	first, last := sh.OuterFrame()
	outer := sh.OuterMargin()
	if f.menu {
		first, last = sh.MenuFrame()
		outer = geom.Size{}
	}
	return f.sur.rules(axis, f.child.SizeRules(sh, axis), first, last, outer)
}

// SetRect places the child inside the border.
func (f *Frame) SetRect(rect geom.Rect, hints layout.AlignHints) {
	f.StoreRect(rect)
	f.child.SetRect(f.sur.inner(rect), hints)
}

// FindID hit-tests the child.
func (f *Frame) FindID(coord geom.Coord) core.WidgetID {
	return core.DefaultFindID(f, coord)
}

// Draw draws the border and the child.
func (f *Frame) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	if f.menu {
		dh.MenuFrame(f.Rect())
	} else {
		dh.OuterFrame(f.Rect())
	}
	f.child.Draw(dh, st, disabled || f.IsDisabled())
}

// Send routes ev to the child.
func (f *Frame) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	return core.DefaultSend(f, mgr, id, ev)
}
