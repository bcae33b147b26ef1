package widgets

import (
	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// popupState tracks the popup window a menu has open. The Manager may close
// the popup behind the menu's back (Escape, a press elsewhere), so the
// window id is checked against the popup stack before use.
type popupState struct {
	window core.WindowID
}

func (p *popupState) isOpen(st *core.ManagerState) bool {
	if p.window != core.NoWindow && !st.PopupOpen(p.window) {
		p.window = core.NoWindow
	}
	return p.window != core.NoWindow
}

func (p *popupState) open(mgr *core.Manager, popup core.Popup) {
	if !p.isOpen(mgr.State()) {
		p.window = mgr.AddPopup(popup)
	}
}

func (p *popupState) close(mgr *core.Manager) {
	if p.isOpen(mgr.State()) {
		mgr.CloseWindow(p.window)
	}
	p.window = core.NoWindow
}

// MenuEntry is an item of a popup menu. Activating it emits its message.
type MenuEntry struct {
	core.Base
	label string
	msg   any
}

// NewMenuEntry returns an entry labelled label emitting msg.
func NewMenuEntry(label string, msg any) *MenuEntry {
	return &MenuEntry{label: label, msg: msg}
}

// WidgetName returns "MenuEntry".
func (e *MenuEntry) WidgetName() string { return "MenuEntry" }

// Text returns the entry label.
func (e *MenuEntry) Text() string { return e.label }

// SetText replaces the entry label.
func (e *MenuEntry) SetText(text string) core.Action {
	e.label = text
	return core.ActionResize
}

// KeyNav returns true.
func (e *MenuEntry) KeyNav() bool { return true }

// ActivationViaPress returns true.
func (e *MenuEntry) ActivationViaPress() bool { return true }

// SizeRules sizes the label with inner padding.
func (e *MenuEntry) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	pad := sh.InnerMargin()
	frame := layout.ExtractFixed(axis, pad.Add(pad), geom.Size{})
	return sh.TextBound(e.label, draw.TextMenuLabel, axis).Surrounded(frame, false)
}

// SetRect stores rect.
func (e *MenuEntry) SetRect(rect geom.Rect, _ layout.AlignHints) {
	e.StoreRect(rect)
}

// Draw draws the highlight and label.
func (e *MenuEntry) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	state := e.InputState(st, disabled)
	dh.MenuEntry(e.Rect(), state)
	dh.Text(e.Rect(), e.label, draw.TextMenuLabel, layout.AlignHints{Horiz: layout.AlignStart, Vert: layout.AlignCenter}, state)
}

// Handle emits the message on Activate.
func (e *MenuEntry) Handle(_ *core.Manager, ev core.Event) core.Response {
	if ev.Kind == core.EventActivate {
		return core.Msg(e.msg)
	}
	return core.Unhandled(ev)
}

// Send routes ev to the entry.
func (e *MenuEntry) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	return core.DefaultSend(e, mgr, id, ev)
}

// MenuButton is a button opening a popup.
//
// A click opens the popup and leaves it open; a press-drag-release over an
// item of the popup activates that item. Messages from the popup are passed
// to the button's parent and close the popup.
type MenuButton struct {
	core.Base
	label   string
	popup   core.Widget
	opening bool
	state   popupState
}

// NewMenuButton returns a button labelled label opening popup.
func NewMenuButton(label string, popup core.Widget) *MenuButton {
	return &MenuButton{label: label, popup: popup}
}

// WidgetName returns "MenuButton".
func (b *MenuButton) WidgetName() string { return "MenuButton" }

// Text returns the button label.
func (b *MenuButton) Text() string { return b.label }

// SetText replaces the button label.
func (b *MenuButton) SetText(text string) core.Action {
	b.label = text
	return core.ActionResize
}

// IsOpen reports whether the popup is shown.
func (b *MenuButton) IsOpen(st *core.ManagerState) bool { return b.state.isOpen(st) }

// Len returns 1.
func (b *MenuButton) Len() int { return 1 }

// Get returns the popup widget for index 0.
func (b *MenuButton) Get(i int) core.Widget {
	if i != 0 {
		return nil
	}
	return b.popup
}

// KeyNav returns true.
func (b *MenuButton) KeyNav() bool { return true }

// SpatialRange is empty: the popup is never inside the button's rect.
func (b *MenuButton) SpatialRange() (int, int) { return 0, -1 }

// SizeRules sizes the label inside the button surround.
func (b *MenuButton) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return buttonRules(sh, axis, b.label)
}

// SetRect stores rect. The popup is placed by the window when opened.
func (b *MenuButton) SetRect(rect geom.Rect, _ layout.AlignHints) {
	b.StoreRect(rect)
}

// FindID returns the button's id.
func (b *MenuButton) FindID(geom.Coord) core.WidgetID { return b.ID() }

// Draw draws the button, depressed while the popup is open.
func (b *MenuButton) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	state := b.InputState(st, disabled)
	if b.state.isOpen(st) {
		state.Depress = true
	}
	dh.Button(b.Rect(), state)
	dh.Text(b.Rect(), b.label, draw.TextButton, centered, state)
}

func (b *MenuButton) openMenu(mgr *core.Manager) {
	b.state.open(mgr, core.Popup{ID: b.popup.Core().ID(), Last: b.popup.Core().LastID(), Parent: b.ID(), Direction: geom.Down})
}

// Handle runs the menu state machine.
func (b *MenuButton) Handle(mgr *core.Manager, ev core.Event) core.Response {
	switch ev.Kind {
	case core.EventActivate:
		if b.state.isOpen(mgr.State()) {
			b.state.close(mgr)
		} else {
			b.openMenu(mgr)
		}
	case core.EventOpenPopup:
		b.openMenu(mgr)
	case core.EventPressStart:
		if !b.IsAncestorOf(ev.ID) {
			b.state.close(mgr)
			return core.Unhandled(ev)
		}
		if ev.Source.IsPrimary() && mgr.RequestGrab(b.ID(), ev.Source, ev.Coord, core.GrabModeGrab, ev.ID) {
			b.opening = !b.state.isOpen(mgr.State())
		}
	case core.EventPressMove:
		if ev.ID == b.ID() {
			b.openMenu(mgr)
			mgr.SetGrabDepress(ev.Source, ev.ID)
		} else if b.state.isOpen(mgr.State()) && b.popup.Core().IsAncestorOf(ev.ID) {
			mgr.SetGrabDepress(ev.Source, ev.ID)
		} else {
			mgr.SetGrabDepress(ev.Source, core.NoID)
		}
	case core.EventPressEnd:
		opening := b.opening
		b.opening = false
		switch {
		case b.Rect().Contains(ev.Coord):
			if ev.ID == b.ID() && opening {
				b.openMenu(mgr)
			} else {
				b.state.close(mgr)
			}
		case b.state.isOpen(mgr.State()) && b.popup.Core().Rect().Contains(ev.Coord):
			if ev.ID == core.NoID {
				return core.None()
			}
			r := b.popup.Send(mgr, ev.ID, core.Activate())
			b.state.close(mgr)
			return r.Handled()
		default:
			b.state.close(mgr)
		}
	default:
		return core.Unhandled(ev)
	}
	return core.None()
}

// Send routes events for the popup into it, closing the popup when it emits
// a message; other events are handled by the button.
func (b *MenuButton) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	if b.IsDisabled() {
		return core.Unhandled(ev)
	}
	if b.popup.Core().IsAncestorOf(id) {
		r := b.popup.Send(mgr, id, ev)
		if r.IsMsg() {
			b.state.close(mgr)
		}
		return r
	}
	return core.HandleGeneric(b, mgr, ev)
}

// SubMenu is a menu header opening a column of entries. Sub-menus are used
// inside a MenuBar or nested inside another sub-menu's entries.
type SubMenu struct {
	core.Base
	label string
	list  *List
	frame *Frame
	dir   geom.Direction
	state popupState
}

// NewSubMenu returns a sub-menu labelled label with the given entries. It
// opens to the right; MenuBar headers open downward.
func NewSubMenu(label string, entries ...core.Widget) *SubMenu {
	list := NewColumn(entries...)
	return &SubMenu{label: label, list: list, frame: NewMenuFrame(list), dir: geom.Right}
}

// WidgetName returns "SubMenu".
func (s *SubMenu) WidgetName() string { return "SubMenu" }

// Text returns the header label.
func (s *SubMenu) Text() string { return s.label }

// SetText replaces the header label.
func (s *SubMenu) SetText(text string) core.Action {
	s.label = text
	return core.ActionResize
}

// Entries returns the column of entries.
func (s *SubMenu) Entries() *List { return s.list }

// IsOpen reports whether the entries are shown.
func (s *SubMenu) IsOpen(st *core.ManagerState) bool { return s.state.isOpen(st) }

// Len returns 1.
func (s *SubMenu) Len() int { return 1 }

// Get returns the popup frame for index 0.
func (s *SubMenu) Get(i int) core.Widget {
	if i != 0 {
		return nil
	}
	return s.frame
}

// KeyNav returns true.
func (s *SubMenu) KeyNav() bool { return true }

// SpatialRange is empty: the entries are never inside the header's rect.
func (s *SubMenu) SpatialRange() (int, int) { return 0, -1 }

// SizeRules sizes the header label.
func (s *SubMenu) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return buttonRules(sh, axis, s.label)
}

// SetRect stores rect.
func (s *SubMenu) SetRect(rect geom.Rect, _ layout.AlignHints) {
	s.StoreRect(rect)
}

// FindID returns the header's id.
func (s *SubMenu) FindID(geom.Coord) core.WidgetID { return s.ID() }

// Draw draws the header, depressed while open.
func (s *SubMenu) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	state := s.InputState(st, disabled)
	if s.state.isOpen(st) {
		state.Depress = true
	}
	dh.MenuEntry(s.Rect(), state)
	dh.Text(s.Rect(), s.label, draw.TextMenuLabel, centered, state)
}

func (s *SubMenu) openMenu(mgr *core.Manager) {
	s.state.open(mgr, core.Popup{ID: s.frame.ID(), Last: s.frame.LastID(), Parent: s.ID(), Direction: s.dir})
}

func (s *SubMenu) closeMenu(mgr *core.Manager) {
	s.state.close(mgr)
}

// Handle opens the entries on Activate or OpenPopup.
func (s *SubMenu) Handle(mgr *core.Manager, ev core.Event) core.Response {
	switch ev.Kind {
	case core.EventActivate, core.EventOpenPopup:
		s.openMenu(mgr)
		return core.None()
	}
	return core.Unhandled(ev)
}

// Send routes events for the entries into them, closing the menu when an
// entry emits a message.
func (s *SubMenu) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	if s.IsDisabled() {
		return core.Unhandled(ev)
	}
	if s.frame.IsAncestorOf(id) {
		if ev.Kind == core.EventActivate || ev.Kind == core.EventOpenPopup {
			s.closeSiblings(mgr, id)
		}
		r := s.frame.Send(mgr, id, ev)
		if r.IsMsg() {
			s.closeMenu(mgr)
		}
		return r
	}
	return core.HandleGeneric(s, mgr, ev)
}

// closeSiblings closes the nested menus among the entries other than the
// one containing id.
func (s *SubMenu) closeSiblings(mgr *core.Manager, id core.WidgetID) {
	for i := 0; i < s.list.Len(); i++ {
		if sub, ok := s.list.Get(i).(*SubMenu); ok && !sub.IsAncestorOf(id) {
			sub.closeMenu(mgr)
		}
	}
}

// MenuBar is a row of sub-menu headers sharing one pointer gesture: pressing
// a header opens its menu, dragging across headers switches menus, and
// releasing over an entry activates it. At most one header's menu is open.
type MenuBar struct {
	core.Base
	bar     *List
	menus   []*SubMenu
	opening bool
}

// NewMenuBar returns a bar of the given menus.
func NewMenuBar(menus ...*SubMenu) *MenuBar {
	children := make([]core.Widget, len(menus))
	for i, m := range menus {
		m.dir = geom.Down
		children[i] = m
	}
	return &MenuBar{bar: NewRow(children...), menus: menus}
}

// WidgetName returns "MenuBar".
func (m *MenuBar) WidgetName() string { return "MenuBar" }

// Menus returns the headers.
func (m *MenuBar) Menus() []*SubMenu { return m.menus }

// OpenMenus returns the number of headers whose menu is open.
func (m *MenuBar) OpenMenus(st *core.ManagerState) int {
	n := 0
	for _, s := range m.menus {
		if s.IsOpen(st) {
			n++
		}
	}
	return n
}

// Len returns 1.
func (m *MenuBar) Len() int { return 1 }

// Get returns the header row for index 0.
func (m *MenuBar) Get(i int) core.Widget {
	if i != 0 {
		return nil
	}
	return m.bar
}

// SpatialRange covers the header row.
func (m *MenuBar) SpatialRange() (int, int) { return 0, 0 }

// SizeRules returns the header row's rules.
func (m *MenuBar) SizeRules(sh draw.SizeHandle, axis layout.AxisInfo) layout.SizeRules {
	return m.bar.SizeRules(sh, axis)
}

// SetRect places the header row.
func (m *MenuBar) SetRect(rect geom.Rect, hints layout.AlignHints) {
	m.StoreRect(rect)
	m.bar.SetRect(rect, hints)
}

// FindID hit-tests the headers.
func (m *MenuBar) FindID(coord geom.Coord) core.WidgetID {
	return core.DefaultFindID(m, coord)
}

// Draw draws the headers.
func (m *MenuBar) Draw(dh draw.DrawHandle, st *core.ManagerState, disabled bool) {
	m.bar.Draw(dh, st, disabled || m.IsDisabled())
}

func (m *MenuBar) header(id core.WidgetID) int {
	for i, s := range m.menus {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// switchTo opens menu i, closing every other header first.
func (m *MenuBar) switchTo(mgr *core.Manager, i int) {
	for j, s := range m.menus {
		if j != i {
			s.closeMenu(mgr)
		}
	}
	m.menus[i].openMenu(mgr)
}

func (m *MenuBar) closeAll(mgr *core.Manager) {
	for _, s := range m.menus {
		s.closeMenu(mgr)
	}
}

// closeUnrelated closes popups of this bar, most recent first, until one
// whose parent contains id.
func (m *MenuBar) closeUnrelated(mgr *core.Manager, id core.WidgetID) {
	popups := mgr.State().Popups()
	for i := len(popups) - 1; i >= 0; i-- {
		parent := core.Find(m, popups[i].Popup.Parent)
		if parent == nil || parent.Core().IsAncestorOf(id) {
			return
		}
		mgr.CloseWindow(popups[i].Window)
	}
}

// Handle runs the bar's press state machine.
func (m *MenuBar) Handle(mgr *core.Manager, ev core.Event) core.Response {
	switch ev.Kind {
	case core.EventPressStart:
		if !m.IsAncestorOf(ev.ID) {
			m.closeAll(mgr)
			return core.Unhandled(ev)
		}
		if !ev.Source.IsPrimary() || !mgr.RequestGrab(m.ID(), ev.Source, ev.Coord, core.GrabModeGrab, ev.ID) {
			return core.None()
		}
		m.opening = false
		if m.Rect().Contains(ev.Coord) {
			if i := m.header(ev.ID); i >= 0 && !m.menus[i].IsOpen(mgr.State()) {
				m.opening = true
				m.switchTo(mgr, i)
			}
			return core.None()
		}
		m.closeUnrelated(mgr, ev.ID)
		return m.Send(mgr, ev.ID, core.OpenPopup()).Handled()

	case core.EventPressMove:
		if !m.IsAncestorOf(ev.ID) {
			mgr.SetGrabDepress(ev.Source, core.NoID)
			return core.None()
		}
		mgr.SetGrabDepress(ev.Source, ev.ID)
		if i := m.header(ev.ID); i >= 0 {
			if !m.menus[i].IsOpen(mgr.State()) {
				m.opening = true
				m.switchTo(mgr, i)
			}
			return core.None()
		}
		m.closeUnrelated(mgr, ev.ID)
		return m.Send(mgr, ev.ID, core.OpenPopup()).Handled()

	case core.EventPressEnd:
		if !m.IsAncestorOf(ev.ID) {
			m.closeAll(mgr)
			return core.None()
		}
		// Headers take precedence over a popup overlapping them.
		if m.Rect().Contains(ev.Coord) {
			if i := m.header(ev.ID); i >= 0 && !m.opening {
				m.menus[i].closeMenu(mgr)
			}
			m.opening = false
			return core.None()
		}
		m.opening = false
		return m.Send(mgr, ev.ID, core.Activate()).Handled()
	}
	return core.Unhandled(ev)
}

// Send routes ev to the headers and their menus, falling back to the bar's
// own handler. Activate toggles a header and OpenPopup opens it; either way
// every other header is closed first.
func (m *MenuBar) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
	if m.IsDisabled() {
		return core.Unhandled(ev)
	}
	if i := m.header(id); i >= 0 && !m.menus[i].IsDisabled() {
		switch ev.Kind {
		case core.EventActivate:
			if m.menus[i].IsOpen(mgr.State()) {
				m.menus[i].closeMenu(mgr)
			} else {
				m.switchTo(mgr, i)
			}
			return core.None()
		case core.EventOpenPopup:
			m.switchTo(mgr, i)
			return core.None()
		}
	}
	if m.bar.IsAncestorOf(id) {
		r := m.bar.Send(mgr, id, ev)
		if r.IsUnhandled() {
			return m.Handle(mgr, r.Event)
		}
		return r
	}
	return m.Handle(mgr, ev)
}
