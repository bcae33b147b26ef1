package core

import (
	"fmt"

	"github.com/go-drift/rui/pkg/geom"
)

// InputKind identifies platform input delivered to HandleInput.
type InputKind uint8

const (
	// InputCursorMoved reports the mouse cursor at Coord.
	InputCursorMoved InputKind = iota
	// InputMouseButton reports Button pressed or released at Coord.
	InputMouseButton
	// InputTouch reports touch point TouchID in Phase at Coord.
	InputTouch
	// InputKey reports a key press.
	InputKey
	// InputChar reports text input.
	InputChar
	// InputFocusLost reports that the window lost input focus.
	InputFocusLost
	// InputCursorLeft reports that the cursor left the window.
	InputCursorLeft
)

// TouchPhase is the lifecycle stage of a touch point.
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

// Input is a platform input event for one window.
type Input struct {
	Kind    InputKind
	Coord   geom.Coord
	Button  MouseButton
	Pressed bool
	TouchID uint64
	Phase   TouchPhase
	Key     Key
	Char    rune
}

func (in Input) String() string {
	switch in.Kind {
	case InputCursorMoved:
		return fmt.Sprintf("CursorMoved%s", in.Coord)
	case InputMouseButton:
		return fmt.Sprintf("MouseButton{%s pressed=%v %s}", in.Button, in.Pressed, in.Coord)
	case InputTouch:
		return fmt.Sprintf("Touch{%d phase=%d %s}", in.TouchID, in.Phase, in.Coord)
	case InputKey:
		return fmt.Sprintf("Key{%s}", in.Key)
	case InputChar:
		return fmt.Sprintf("Char{%q}", in.Char)
	case InputFocusLost:
		return "FocusLost"
	default:
		return "CursorLeft"
	}
}

// HandleInput dispatches one platform input event to the tree rooted at root.
//
// Presses of grabbed sources go to the grab owner regardless of position, and
// the release ends the grab unconditionally. A fresh press is hit-tested and
// offered first to the parents of open popups, top first; a parent answering
// Unhandled has its popup closed. A press nobody claims clears keyboard focus.
func (m *Manager) HandleInput(root Widget, in Input) {
	switch in.Kind {
	case InputCursorMoved:
		m.cursorMoved(root, in.Coord)
	case InputCursorLeft:
		if m.state.hover != NoID {
			m.state.hover = NoID
			m.SendAction(ActionRedraw)
		}
	case InputMouseButton:
		source := MouseSource(in.Button)
		m.state.cursor = in.Coord
		if in.Pressed {
			m.pressStart(root, source, in.Coord)
		} else {
			m.pressEnd(root, source, in.Coord)
		}
	case InputTouch:
		source := TouchSource(in.TouchID)
		switch in.Phase {
		case TouchStarted:
			m.pressStart(root, source, in.Coord)
		case TouchMoved:
			m.pressMove(root, source, in.Coord)
		case TouchEnded:
			m.pressEnd(root, source, in.Coord)
		case TouchCancelled:
			if owner, ok := m.state.GrabbedBy(source); ok {
				m.ReleaseGrab(source)
				m.Dispatch(root, owner, PressEnd(source, NoID, in.Coord))
			}
		}
	case InputKey:
		m.keyPress(root, in.Key)
	case InputChar:
		if id := m.state.charFocus; id != NoID {
			m.Dispatch(root, id, CharInput(in.Char))
		}
	case InputFocusLost:
		m.ReleaseAllGrabs()
		m.ClearCharFocus()
	}
}

func (m *Manager) cursorMoved(root Widget, coord geom.Coord) {
	m.state.cursor = coord
	grabbed := false
	for _, source := range m.state.sortedGrabs(false) {
		grabbed = true
		m.pressMove(root, source, coord)
	}
	if grabbed {
		return
	}
	m.updateHover(root)
}

// updateHover re-runs hit-testing for the last cursor position.
func (m *Manager) updateHover(root Widget) {
	hover := NoID
	if root.Core().Rect().Contains(m.state.cursor) {
		hover = root.FindID(m.state.cursor)
	}
	if hover != m.state.hover {
		m.state.hover = hover
		m.SendAction(ActionRedraw)
	}
}

// RegionMoved re-runs hit-testing for hover after the layout changed.
func (m *Manager) RegionMoved(root Widget) {
	if len(m.state.grabs) == 0 {
		m.updateHover(root)
	}
}

func (m *Manager) hitTest(root Widget, coord geom.Coord) WidgetID {
	if !root.Core().Rect().Contains(coord) {
		return NoID
	}
	return root.FindID(coord)
}

func (m *Manager) pressStart(root Widget, source PressSource, coord geom.Coord) {
	if _, held := m.state.grabs[source]; held {
		return
	}
	id := m.hitTest(root, coord)
	ev := PressStart(source, id, coord)

	for n := len(m.state.popups); n > 0; n = len(m.state.popups) {
		top := m.state.popups[n-1]
		if r := m.Dispatch(root, top.Popup.Parent, ev); r.Kind != ResponseUnhandled {
			return
		}
		// The parent may already have closed it.
		if m.state.popupIndex(top.Window) >= 0 {
			m.CloseWindow(top.Window)
		}
	}

	if id == NoID {
		m.ClearCharFocus()
		return
	}
	r := m.Dispatch(root, id, ev)
	if r.Kind == ResponseUnhandled {
		m.ClearCharFocus()
		return
	}
	if m.state.MouseNavFocus {
		if w := Find(root, id); w != nil && w.KeyNav() {
			m.SetNavFocus(id)
		}
	}
}

func (m *Manager) pressMove(root Widget, source PressSource, coord geom.Coord) {
	g, ok := m.state.grabs[source]
	if !ok {
		return
	}
	delta := coord.Sub(g.last)
	g.last = coord
	owner, mode := g.owner, g.mode
	if mode == GrabModePan {
		m.Dispatch(root, owner, Pan(source, delta))
		return
	}
	m.Dispatch(root, owner, PressMove(source, m.hitTest(root, coord), coord, delta))
}

func (m *Manager) pressEnd(root Widget, source PressSource, coord geom.Coord) {
	owner, ok := m.state.GrabbedBy(source)
	if !ok {
		return
	}
	end := m.hitTest(root, coord)
	m.ReleaseGrab(source)
	m.Dispatch(root, owner, PressEnd(source, end, coord))
	if !source.Touch {
		m.updateHover(root)
	}
}

func (m *Manager) keyPress(root Widget, key Key) {
	if id := m.state.charFocus; id != NoID {
		if r := m.Dispatch(root, id, KeyPress(key)); r.Kind != ResponseUnhandled {
			return
		}
	}

	switch key.Code {
	case KeyEscape:
		if m.CloseTopPopup() {
			return
		}
		if m.state.charFocus != NoID {
			m.ClearCharFocus()
			return
		}
	case KeyTab, KeyBacktab:
		m.NextNavFocus(root, key.Code == KeyBacktab)
		return
	case KeyEnter:
		if m.activateNavFocus(root) {
			return
		}
	case KeyRune:
		if key.Rune == ' ' && m.activateNavFocus(root) {
			return
		}
	}
	if dir, ok := key.direction(); ok {
		m.NavInDirection(root, dir)
		return
	}
	if id, ok := m.state.accel[key]; ok {
		m.Dispatch(root, id, Activate())
	}
}

func (m *Manager) activateNavFocus(root Widget) bool {
	id := m.state.navFocus
	if id == NoID {
		return false
	}
	m.Dispatch(root, id, Activate())
	return true
}
