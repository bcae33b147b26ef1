package core

import (
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// Layout is the sizing, hit-testing and drawing half of a widget.
type Layout interface {
	// SizeRules returns the widget's rules along axis, asking children
	// first. It must be called for the horizontal then the vertical axis
	// before SetRect.
	SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules

	// SetRect assigns the widget's rect and positions its children.
	SetRect(rect geom.Rect, hints layout.AlignHints)

	// SpatialRange returns the indices of the first and last children that
	// lie within the widget's rect. An empty range (last < first) means no
	// child is hit-tested or key-navigated through this widget.
	SpatialRange() (first, last int)

	// FindID returns the id of the deepest widget at coord. The caller has
	// already checked that coord lies within this widget's rect.
	FindID(coord geom.Coord) WidgetID

	// Draw draws the widget and its visible children.
	Draw(dh draw.DrawHandle, st *ManagerState, disabled bool)
}

// Handler is the event-handling half of a widget.
type Handler interface {
	// ActivationViaPress reports whether a primary press and release over
	// the widget should be turned into an Activate event by HandleGeneric.
	ActivationViaPress() bool

	// Handle processes an event addressed to the widget itself.
	Handle(mgr *Manager, ev Event) Response
}

// Widget is the interface implemented by every node of a widget tree.
//
// Most widgets embed [Base] for defaults and implement the rest. Containers
// hold their children directly; there are no parent pointers.
type Widget interface {
	Layout
	Handler

	// Core returns the runtime-managed state of the widget.
	Core() *CoreData

	// WidgetName names the widget type in diagnostics.
	WidgetName() string

	// Len returns the number of direct children.
	Len() int

	// Get returns child i, or nil when i is out of range.
	Get(i int) Widget

	// Configure is called for every widget, in pre-order, after ids have
	// been assigned. Widgets register update handles and accelerator keys
	// here.
	Configure(mgr *Manager)

	// KeyNav reports whether the widget can receive navigation focus.
	KeyNav() bool

	// Send delivers ev to the widget with the given id within this subtree.
	// Most widgets implement it with DefaultSend.
	Send(mgr *Manager, id WidgetID, ev Event) Response
}

// Base provides default implementations of the optional parts of Widget.
// It describes a leaf that ignores events.
type Base struct {
	CoreData
}

// Len returns 0.
func (b *Base) Len() int { return 0 }

// Get returns nil.
func (b *Base) Get(int) Widget { return nil }

// SpatialRange returns an empty range.
func (b *Base) SpatialRange() (int, int) { return 0, -1 }

// FindID returns the widget's own id.
func (b *Base) FindID(geom.Coord) WidgetID { return b.id }

// Configure does nothing.
func (b *Base) Configure(*Manager) {}

// KeyNav returns false.
func (b *Base) KeyNav() bool { return false }

// ActivationViaPress returns false.
func (b *Base) ActivationViaPress() bool { return false }

// Handle returns Unhandled.
func (b *Base) Handle(_ *Manager, ev Event) Response { return Unhandled(ev) }

// InputState returns the highlight flags of the widget.
func (b *Base) InputState(st *ManagerState, disabled bool) draw.InputState {
	return st.InputState(b.id, disabled || b.disabled)
}

// HasText is implemented by widgets displaying a text label.
type HasText interface {
	Text() string
	// SetText replaces the label and returns the action needed to show it.
	SetText(text string) Action
}
