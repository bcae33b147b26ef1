package widgets

import (
	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// MessageFunc interprets a message emitted by a descendant.
type MessageFunc func(mgr *core.Manager, msg any) core.Response

// EventFunc handles an event addressed to a Composite itself.
type EventFunc func(mgr *core.Manager, ev core.Event) core.Response

// ConfigureFunc runs when a Composite is configured, with its new id.
type ConfigureFunc func(mgr *core.Manager, id core.WidgetID)

// Composite wraps a subtree and gives it behaviour: it converts the
// subtree's messages, handles its own events and registers itself during
// configuration.
type Composite struct {
	core.Base
	name      string
	inner     core.Widget
	onMessage MessageFunc
	onEvent   EventFunc
	onConfig  ConfigureFunc
}

// NewComposite returns a composite named name wrapping inner.
func NewComposite(name string, inner core.Widget) *Composite {
	return &Composite{name: name, inner: inner}
}

// WithMessage sets the message interpreter. Without one, messages pass
// through unchanged.
func (c *Composite) WithMessage(fn MessageFunc) *Composite {
	c.onMessage = fn
	return c
}

// WithEvent sets the handler for events addressed to the composite.
func (c *Composite) WithEvent(fn EventFunc) *Composite {
	c.onEvent = fn
	return c
}

// WithConfigure sets the configuration hook.
func (c *Composite) WithConfigure(fn ConfigureFunc) *Composite {
	c.onConfig = fn
	return c
}

// WidgetName returns the composite's name.
func (c *Composite) WidgetName() string { return c.name }

// Inner returns the wrapped widget.
func (c *Composite) Inner() core.Widget { return c.inner }

// Len returns 1.
func (c *Composite) Len() int { return 1 }

// Get returns the inner widget for index 0.
func (c *Composite) Get(i int) core.Widget {
	if i != 0 {
		return nil
	}
	return c.inner
}

// SpatialRange covers the inner widget.
func (c *Composite) SpatialRange() (int, int) { return 0, 0 }

// Configure runs the configuration hook.
func (c *Composite) Configure(mgr *core.Manager) {
	if c.onConfig != nil {
		c.onConfig(mgr, c.ID())
	}
}

// SizeRules returns the inner widget's rules.
func (c *Composite) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return c.inner.SizeRules(sh, axis)
}

// SetRect gives the inner widget the whole rect.
func (c *Composite) SetRect(rect geom.Rect, hints layout.AlignHints) {
	c.StoreRect(rect)
	c.inner.SetRect(rect, hints)
}

// FindID hit-tests the inner widget.
func (c *Composite) FindID(coord geom.Coord) core.WidgetID {
	return core.DefaultFindID(c, coord)
}

// Draw draws the inner widget.
func (c *Composite) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	c.inner.Draw(dh, st, disabled || c.IsDisabled())
}

// Handle runs the event handler.
func (c *Composite) Handle(mgr *core.Manager, ev core.Event) core.Response {
	if c.onEvent != nil {
		return c.onEvent(mgr, ev)
	}
	return core.Unhandled(ev)
}

// Send routes ev into the subtree and interprets any message it produces.
func (c *Composite) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	r := core.DefaultSend(c, mgr, id, ev)
	if r.IsMsg() && c.onMessage != nil {
		return c.onMessage(mgr, r.Msg)
	}
	return r
}
