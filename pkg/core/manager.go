package core

import (
	"slices"

	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/focus"
	"github.com/go-drift/rui/pkg/geom"
)

// Manager is the handle through which widgets affect event state during a
// dispatch. It is created by the driver for one dispatch and must not be
// retained by widgets.
type Manager struct {
	state *ManagerState
	tk    ToolkitProxy
}

// NewManager returns a manager operating on state, using tk for windowing.
func NewManager(state *ManagerState, tk ToolkitProxy) *Manager {
	return &Manager{state: state, tk: tk}
}

// State returns the underlying state.
func (m *Manager) State() *ManagerState {
	return m.state
}

// SendAction adds a to the pending actions.
func (m *Manager) SendAction(a Action) {
	m.state.action |= a
}

// Redraw requests a redraw of the window containing id.
func (m *Manager) Redraw(WidgetID) {
	m.SendAction(ActionRedraw)
}

// RequestGrab gives id exclusive ownership of source's subsequent move and
// end events. It fails, leaving state unchanged, if source is already
// grabbed. depress, if valid, is highlighted as pressed.
func (m *Manager) RequestGrab(id WidgetID, source PressSource, coord geom.Coord, mode GrabMode, depress WidgetID) bool {
	if _, held := m.state.grabs[source]; held {
		return false
	}
	m.state.grabs[source] = &grab{owner: id, mode: mode, depress: depress, start: coord, last: coord}
	if depress != NoID {
		m.SendAction(ActionRedraw)
	}
	return true
}

// MustRequestGrab is like RequestGrab but panics with a *errors.ContractError
// if the source is already grabbed.
func (m *Manager) MustRequestGrab(id WidgetID, source PressSource, coord geom.Coord, mode GrabMode, depress WidgetID) {
	if !m.RequestGrab(id, source, coord, mode, depress) {
		owner, _ := m.state.GrabbedBy(source)
		errors.Contract("core.Manager.RequestGrab", id.String(), "%s already grabbed by %s", source, owner)
	}
}

// SetGrabDepress changes the pressed highlight of source's grab without
// changing its owner. It reports whether source is grabbed.
func (m *Manager) SetGrabDepress(source PressSource, id WidgetID) bool {
	g, ok := m.state.grabs[source]
	if !ok {
		return false
	}
	if g.depress != id {
		g.depress = id
		m.SendAction(ActionRedraw)
	}
	return true
}

// GrabbedBy returns the owner of source's grab.
func (m *Manager) GrabbedBy(source PressSource) (WidgetID, bool) {
	return m.state.GrabbedBy(source)
}

// ReleaseGrab drops source's grab, if any.
func (m *Manager) ReleaseGrab(source PressSource) {
	if g, ok := m.state.grabs[source]; ok {
		delete(m.state.grabs, source)
		if g.depress != NoID {
			m.SendAction(ActionRedraw)
		}
	}
}

// ReleaseAllGrabs drops every grab without notifying the owners.
func (m *Manager) ReleaseAllGrabs() {
	if len(m.state.grabs) > 0 {
		clear(m.state.grabs)
		m.SendAction(ActionRedraw)
	}
}

// SetCharFocus directs keyboard input to id.
func (m *Manager) SetCharFocus(id WidgetID) {
	if m.state.charFocus != id {
		m.state.charFocus = id
		m.SendAction(ActionRedraw)
	}
}

// ClearCharFocus stops directing keyboard input anywhere.
func (m *Manager) ClearCharFocus() {
	m.SetCharFocus(NoID)
}

// SetNavFocus highlights id for keyboard navigation.
func (m *Manager) SetNavFocus(id WidgetID) {
	if m.state.navFocus != id {
		m.state.navFocus = id
		m.SendAction(ActionRedraw)
	}
}

// NextNavFocus moves navigation focus to the next key-navigable widget in
// tree order, or the previous one if reverse is set. While a popup is open
// only widgets inside the top popup are considered. It reports whether
// focus moved.
func (m *Manager) NextNavFocus(root Widget, reverse bool) bool {
	id, ok := focus.Next(m.navCandidates(root), uint32(m.state.navFocus), reverse)
	return m.moveNavFocus(root, WidgetID(id), ok)
}

// NavInDirection moves navigation focus to the nearest key-navigable widget
// in dir.
func (m *Manager) NavInDirection(root Widget, dir geom.Direction) bool {
	id, ok := focus.InDirection(m.navCandidates(root), uint32(m.state.navFocus), dir)
	return m.moveNavFocus(root, WidgetID(id), ok)
}

func (m *Manager) moveNavFocus(root Widget, id WidgetID, ok bool) bool {
	if !ok || id == m.state.navFocus {
		return false
	}
	m.SetNavFocus(id)
	m.Dispatch(root, id, NavFocus())
	return true
}

// navCandidates collects enabled key-navigable widgets, walking only the
// spatial range of each container.
func (m *Manager) navCandidates(root Widget) []focus.Candidate {
	scope := root
	if n := len(m.state.popups); n > 0 {
		if w := Find(root, m.state.popups[n-1].Popup.ID); w != nil {
			scope = w
		}
	}
	var out []focus.Candidate
	var visit func(w Widget)
	visit = func(w Widget) {
		c := w.Core()
		if c.IsDisabled() {
			return
		}
		if w.KeyNav() && !c.Rect().IsEmpty() {
			out = append(out, focus.Candidate{ID: uint32(c.ID()), Rect: c.Rect()})
		}
		first, last := w.SpatialRange()
		for i := first; i <= last && i < w.Len(); i++ {
			if child := w.Get(i); child != nil {
				visit(child)
			}
		}
	}
	visit(scope)
	return out
}

// AddPopup opens p and pushes it on the popup stack.
func (m *Manager) AddPopup(p Popup) WindowID {
	id := m.tk.AddPopup(p)
	m.state.popups = append(m.state.popups, PopupEntry{Window: id, Popup: p})
	m.SendAction(ActionRedraw | ActionRegionMoved)
	return id
}

// CloseWindow closes the popup or window with the given id. Closing a popup
// also closes every popup opened after it.
func (m *Manager) CloseWindow(id WindowID) {
	i := m.state.popupIndex(id)
	if i < 0 {
		m.tk.CloseWindow(id)
		return
	}
	for j := len(m.state.popups) - 1; j >= i; j-- {
		e := m.state.popups[j]
		m.tk.CloseWindow(e.Window)
		if m.state.navFocus != NoID && e.Popup.contains(m.state.navFocus) {
			m.state.navFocus = NoID
		}
	}
	m.state.popups = m.state.popups[:i]
	m.SendAction(ActionRedraw | ActionRegionMoved)
}

// CloseTopPopup closes the most recently opened popup. It reports whether
// one was open.
func (m *Manager) CloseTopPopup() bool {
	n := len(m.state.popups)
	if n == 0 {
		return false
	}
	m.CloseWindow(m.state.popups[n-1].Window)
	return true
}

// UpdateOnHandle registers id to receive HandleUpdate events broadcast on h.
// Registrations are cleared when the window is reconfigured.
func (m *Manager) UpdateOnHandle(h UpdateHandle, id WidgetID) {
	ids := m.state.handles[h]
	if !slices.Contains(ids, id) {
		m.state.handles[h] = append(ids, id)
	}
}

// TriggerUpdate schedules delivery of payload to every widget registered on
// h, in every window. Delivery happens after the current dispatch.
func (m *Manager) TriggerUpdate(h UpdateHandle, payload uint64) {
	m.state.pending = append(m.state.pending, PendingUpdate{Handle: h, Payload: payload})
}

// AddAccelKey makes key send Activate to id when no focused widget consumes
// it.
func (m *Manager) AddAccelKey(key Key, id WidgetID) {
	m.state.accel[key] = id
}

// Dispatch sends ev to id from the root and applies the top-level
// interpretation of the response: Close marks the window for closing.
func (m *Manager) Dispatch(root Widget, id WidgetID, ev Event) Response {
	r := root.Send(m, id, ev)
	if r.Kind == ResponseClose {
		m.SendAction(ActionClose)
	}
	return r
}

// resetForConfigure drops everything keyed by widget id.
func (m *Manager) resetForConfigure() {
	s := m.state
	for len(s.popups) > 0 {
		m.CloseWindow(s.popups[len(s.popups)-1].Window)
	}
	clear(s.handles)
	clear(s.accel)
	clear(s.grabs)
	s.hover = NoID
	s.charFocus = NoID
	s.navFocus = NoID
	s.action |= ActionRedraw
}
