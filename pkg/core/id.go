package core

import (
	"fmt"

	"github.com/go-drift/rui/pkg/geom"
)

// WidgetID identifies a widget within its window.
type WidgetID uint32

// NoID means "no widget".
const NoID WidgetID = 0

// IsValid reports whether id refers to a widget.
func (id WidgetID) IsValid() bool {
	return id != NoID
}

func (id WidgetID) String() string {
	if id == NoID {
		return "#none"
	}
	return fmt.Sprintf("#%d", uint32(id))
}

// WindowID identifies a top-level window or popup. Unlike widget ids these
// are unique across the whole toolkit.
type WindowID uint32

// NoWindow means "no window".
const NoWindow WindowID = 0

// CoreData is the per-widget state managed by the runtime.
type CoreData struct {
	id       WidgetID
	last     WidgetID
	rect     geom.Rect
	disabled bool
}

// Core returns c. Embedding types thereby satisfy the Widget.Core method.
func (c *CoreData) Core() *CoreData {
	return c
}

// ID returns the widget's id, or NoID before configuration.
func (c *CoreData) ID() WidgetID {
	return c.id
}

// LastID returns the largest id within the widget's subtree.
func (c *CoreData) LastID() WidgetID {
	return c.last
}

// IsAncestorOf reports whether id lies within this widget's subtree.
// A widget is its own ancestor.
func (c *CoreData) IsAncestorOf(id WidgetID) bool {
	return id != NoID && c.id <= id && id <= c.last
}

// Rect returns the rect assigned in the last layout pass.
func (c *CoreData) Rect() geom.Rect {
	return c.rect
}

// StoreRect records the widget's rect. Widgets call this from SetRect.
func (c *CoreData) StoreRect(r geom.Rect) {
	c.rect = r
}

// IsDisabled reports whether the widget ignores input.
func (c *CoreData) IsDisabled() bool {
	return c.disabled
}

// SetDisabled enables or disables the widget. Disabled widgets receive no
// events and are drawn greyed out.
func (c *CoreData) SetDisabled(disabled bool) Action {
	if c.disabled == disabled {
		return ActionNone
	}
	c.disabled = disabled
	return ActionRedraw
}
