package core

import "github.com/go-drift/rui/pkg/geom"

// Popup describes a transient overlay anchored to a widget.
type Popup struct {
	// ID is the widget shown in the popup. It lives in Parent's subtree.
	ID WidgetID
	// Last is the last id in the popup widget's subtree. Zero means unknown.
	Last WidgetID
	// Parent is the widget the popup belongs to and is placed next to.
	Parent WidgetID
	// Direction is the side of Parent the popup opens on.
	Direction geom.Direction
}

// PopupEntry is an open popup on a window's stack.
type PopupEntry struct {
	Window WindowID
	Popup  Popup
}

// ToolkitProxy is the part of the driver a Manager needs during dispatch.
type ToolkitProxy interface {
	// AddPopup shows p over the current window and returns its id.
	AddPopup(p Popup) WindowID
	// CloseWindow closes a popup or top-level window.
	CloseWindow(id WindowID)
}

// contains reports whether id lies in the popup widget's subtree. With Last
// unknown every id is treated as inside.
func (p Popup) contains(id WidgetID) bool {
	if p.Last == NoID {
		return true
	}
	return id >= p.ID && id <= p.Last
}
