package core

import (
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// leaf is a minimal widget recording the events it handles.
type leaf struct {
	Base
	name   string
	nav    bool
	press  bool
	events []Event
	handle func(mgr *Manager, ev Event) Response
}

func (l *leaf) WidgetName() string { return "leaf" }

func (l *leaf) SizeRules(draw.SizeHandle, layout.AxisInfo) layout.SizeRules {
	return layout.Fixed(10, layout.Margins{})
}

func (l *leaf) SetRect(r geom.Rect, _ layout.AlignHints) { l.StoreRect(r) }

func (l *leaf) Draw(draw.DrawHandle, *ManagerState, bool) {}

func (l *leaf) KeyNav() bool { return l.nav }

func (l *leaf) ActivationViaPress() bool { return l.press }

func (l *leaf) Handle(mgr *Manager, ev Event) Response {
	l.events = append(l.events, ev)
	if l.handle != nil {
		return l.handle(mgr, ev)
	}
	if ev.Kind == EventActivate && l.name != "" {
		return Msg(l.name)
	}
	return Unhandled(ev)
}

func (l *leaf) Send(mgr *Manager, id WidgetID, ev Event) Response {
	return DefaultSend(l, mgr, id, ev)
}

// box lays its children out left to right, each ten units wide.
type box struct {
	Base
	children []Widget
	handled  []Event
}

func newBox(children ...Widget) *box {
	return &box{children: children}
}

func (b *box) WidgetName() string { return "box" }

func (b *box) Len() int { return len(b.children) }

func (b *box) Get(i int) Widget {
	if i < 0 || i >= len(b.children) {
		return nil
	}
	return b.children[i]
}

func (b *box) SpatialRange() (int, int) { return 0, len(b.children) - 1 }

func (b *box) SizeRules(draw.SizeHandle, layout.AxisInfo) layout.SizeRules {
	return layout.Fixed(10*len(b.children), layout.Margins{})
}

func (b *box) SetRect(r geom.Rect, _ layout.AlignHints) {
	b.StoreRect(r)
	for i, c := range b.children {
		c.SetRect(geom.RectXYWH(r.Pos.X+10*i, r.Pos.Y, 10, r.Size.H), layout.NoHints)
	}
}

func (b *box) FindID(coord geom.Coord) WidgetID { return DefaultFindID(b, coord) }

func (b *box) Draw(draw.DrawHandle, *ManagerState, bool) {}

func (b *box) Handle(_ *Manager, ev Event) Response {
	b.handled = append(b.handled, ev)
	return Unhandled(ev)
}

func (b *box) Send(mgr *Manager, id WidgetID, ev Event) Response {
	return DefaultSend(b, mgr, id, ev)
}

// fakeToolkit records popup and window operations.
type fakeToolkit struct {
	next   WindowID
	opened []Popup
	closed []WindowID
}

func (f *fakeToolkit) AddPopup(p Popup) WindowID {
	f.next++
	f.opened = append(f.opened, p)
	return f.next
}

func (f *fakeToolkit) CloseWindow(id WindowID) {
	f.closed = append(f.closed, id)
}

// setup configures root and lays it out at (0,0) with height 10.
func setup(root Widget) (*Manager, *fakeToolkit) {
	tk := &fakeToolkit{}
	mgr := NewManager(NewManagerState(), tk)
	Configure(root, mgr)
	w := root.SizeRules(nil, layout.Horizontal()).Ideal()
	root.SetRect(geom.RectXYWH(0, 0, w, 10), layout.NoHints)
	mgr.State().TakeAction()
	return mgr, tk
}

func click(mgr *Manager, root Widget, x, y int) {
	c := geom.Coord{X: x, Y: y}
	mgr.HandleInput(root, Input{Kind: InputCursorMoved, Coord: c})
	mgr.HandleInput(root, Input{Kind: InputMouseButton, Button: ButtonLeft, Pressed: true, Coord: c})
	mgr.HandleInput(root, Input{Kind: InputMouseButton, Button: ButtonLeft, Pressed: false, Coord: c})
}

func coord(x, y int) geom.Coord {
	return geom.Coord{X: x, Y: y}
}
