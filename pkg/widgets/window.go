package widgets

import (
	"slices"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// Window is the root of a widget tree. It shows its content plus any open
// popups, which are widgets inside the content placed over it.
type Window struct {
	core.Base
	title   string
	content core.Widget
	popups  []core.PopupEntry
}

// NewWindow returns a window titled title showing content.
func NewWindow(title string, content core.Widget) *Window {
	return &Window{title: title, content: content}
}

// WidgetName returns "Window".
func (w *Window) WidgetName() string { return "Window" }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Text returns the window title.
func (w *Window) Text() string { return w.title }

// SetText replaces the window title.
func (w *Window) SetText(title string) core.Action {
	w.title = title
	return core.ActionRedraw
}

// Content returns the root of the content tree.
func (w *Window) Content() core.Widget { return w.content }

// Len returns 1.
func (w *Window) Len() int { return 1 }

// Get returns the content for index 0.
func (w *Window) Get(i int) core.Widget {
	if i != 0 {
		return nil
	}
	return w.content
}

// SpatialRange covers the content.
func (w *Window) SpatialRange() (int, int) { return 0, 0 }

// SizeRules returns the content's rules.
func (w *Window) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return w.content.SizeRules(sh, axis)
}

// SetRect gives the content the whole window.
func (w *Window) SetRect(rect geom.Rect, hints layout.AlignHints) {
	w.StoreRect(rect)
	w.content.SetRect(rect, hints)
}

// Resize runs both layout passes for a window of the given size and then
// re-places open popups.
func (w *Window) Resize(sh draw.SizeHandle, size geom.Size) {
	w.SizeRules(sh, layout.Horizontal())
	w.SizeRules(sh, layout.Vertical())
	w.SetRect(geom.Rect{Size: size}, layout.NoHints)
	w.ResizePopups(sh)
}

// IdealSize returns the content's ideal size including margins.
func (w *Window) IdealSize(sh draw.SizeHandle) geom.Size {
	h := w.SizeRules(sh, layout.Horizontal())
	v := w.SizeRules(sh, layout.Vertical())
	return geom.Size{W: h.Ideal(), H: v.Ideal()}
}

// Popups returns the popups shown by the window, bottom first.
func (w *Window) Popups() []core.PopupEntry {
	return slices.Clone(w.popups)
}

// AddPopup shows p as popup window id.
func (w *Window) AddPopup(sh draw.SizeHandle, id core.WindowID, p core.Popup) {
	w.popups = append(w.popups, core.PopupEntry{Window: id, Popup: p})
	w.placePopup(sh, p)
}

// RemovePopup hides popup window id. It reports whether the window showed it.
func (w *Window) RemovePopup(id core.WindowID) bool {
	for i, p := range w.popups {
		if p.Window == id {
			w.popups = slices.Delete(w.popups, i, i+1)
			return true
		}
	}
	return false
}

// ResizePopups re-places every open popup.
func (w *Window) ResizePopups(sh draw.SizeHandle) {
	for _, p := range w.popups {
		w.placePopup(sh, p.Popup)
	}
}

// placePopup sizes the popup widget at its ideal size next to its parent,
// keeping it inside the window.
func (w *Window) placePopup(sh draw.SizeHandle, p core.Popup) {
	widget := core.Find(w.content, p.ID)
	parent := core.Find(w.content, p.Parent)
	if widget == nil || parent == nil {
		errors.Report(&errors.RuiError{
			Op:   "widgets.Window.AddPopup",
			Kind: errors.KindLayout,
			Err:  errors.ErrPopupNotFound,
		})
		return
	}
	size := geom.Size{
		W: widget.SizeRules(sh, layout.Horizontal()).Ideal(),
		H: widget.SizeRules(sh, layout.Vertical()).Ideal(),
	}
	size.W = min(size.W, w.Rect().Size.W)
	size.H = min(size.H, w.Rect().Size.H)

	anchor := parent.Core().Rect()
	var pos geom.Coord
	switch p.Direction {
	case geom.Down:
		pos = geom.Coord{X: anchor.Pos.X, Y: anchor.End().Y}
	case geom.Up:
		pos = geom.Coord{X: anchor.Pos.X, Y: anchor.Pos.Y - size.H}
	case geom.Right:
		pos = geom.Coord{X: anchor.End().X, Y: anchor.Pos.Y}
	case geom.Left:
		pos = geom.Coord{X: anchor.Pos.X - size.W, Y: anchor.Pos.Y}
	}
	end := w.Rect().End()
	pos.X = max(min(pos.X, end.X-size.W), w.Rect().Pos.X)
	pos.Y = max(min(pos.Y, end.Y-size.H), w.Rect().Pos.Y)
	widget.SetRect(geom.Rect{Pos: pos, Size: size}, layout.NoHints)
}

// FindID hit-tests open popups, most recent first, and then the content.
func (w *Window) FindID(coord geom.Coord) core.WidgetID {
	for i := len(w.popups) - 1; i >= 0; i-- {
		if p := core.Find(w.content, w.popups[i].Popup.ID); p != nil && p.Core().Rect().Contains(coord) {
			return p.FindID(coord)
		}
	}
	if w.content.Core().Rect().Contains(coord) {
		return w.content.FindID(coord)
	}
	return w.ID()
}

// Draw draws the background, the content and then each popup.
func (w *Window) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	dh.Background(w.Rect())
	w.content.Draw(dh, st, disabled)
	for _, entry := range w.popups {
		if p := core.Find(w.content, entry.Popup.ID); p != nil {
			p.Draw(dh, st, disabled)
		}
	}
}

// Send routes ev into the content.
//
// A message reaching the window has no interpreter; Send panics with a
// *errors.ContractError.
func (w *Window) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	r := core.DefaultSend(w, mgr, id, ev)
	if r.IsMsg() {
		errors.Contract("widgets.Window.Send", w.title, "message %v (%T) reached the window unhandled", r.Msg, r.Msg)
	}
	return r
}
