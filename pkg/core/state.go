package core

import (
	"slices"

	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
)

// GrabMode selects how motion of a grabbed source is reported.
type GrabMode uint8

const (
	// GrabModeGrab reports PressMove and PressEnd events.
	GrabModeGrab GrabMode = iota
	// GrabModePan reports Pan events instead of PressMove.
	GrabModePan
)

type grab struct {
	owner   WidgetID
	mode    GrabMode
	depress WidgetID
	start   geom.Coord
	last    geom.Coord
}

// ManagerState is the per-window event state: pointer grabs, hover, focus,
// the popup stack and update-handle registrations.
//
// It is owned by the driver and exposed read-only while drawing. All
// mutation goes through a Manager.
type ManagerState struct {
	// MouseNavFocus moves navigation focus to key-navigable widgets when
	// they are pressed.
	MouseNavFocus bool

	grabs     map[PressSource]*grab
	hover     WidgetID
	cursor    geom.Coord
	charFocus WidgetID
	navFocus  WidgetID
	popups    []PopupEntry
	handles   map[UpdateHandle][]WidgetID
	pending   []PendingUpdate
	accel     map[Key]WidgetID
	action    Action
}

// NewManagerState returns an empty state.
func NewManagerState() *ManagerState {
	return &ManagerState{
		grabs:   make(map[PressSource]*grab),
		handles: make(map[UpdateHandle][]WidgetID),
		accel:   make(map[Key]WidgetID),
	}
}

// InputState returns the highlight flags for the widget with the given id.
func (s *ManagerState) InputState(id WidgetID, disabled bool) draw.InputState {
	return draw.InputState{
		Disabled:  disabled,
		Hover:     s.IsHovered(id),
		Depress:   s.IsDepressed(id),
		NavFocus:  id != NoID && s.navFocus == id,
		CharFocus: id != NoID && s.charFocus == id,
	}
}

// IsHovered reports whether the pointer is over id.
func (s *ManagerState) IsHovered(id WidgetID) bool {
	return id != NoID && s.hover == id
}

// IsDepressed reports whether any grab currently depresses id.
func (s *ManagerState) IsDepressed(id WidgetID) bool {
	if id == NoID {
		return false
	}
	for _, g := range s.grabs {
		if g.depress == id {
			return true
		}
	}
	return false
}

// Hover returns the widget under the pointer.
func (s *ManagerState) Hover() WidgetID { return s.hover }

// NavFocus returns the widget with navigation focus.
func (s *ManagerState) NavFocus() WidgetID { return s.navFocus }

// CharFocus returns the widget receiving keyboard input.
func (s *ManagerState) CharFocus() WidgetID { return s.charFocus }

// GrabbedBy returns the owner of source's grab.
func (s *ManagerState) GrabbedBy(source PressSource) (WidgetID, bool) {
	if g, ok := s.grabs[source]; ok {
		return g.owner, true
	}
	return NoID, false
}

// GrabCount returns the number of grabbed sources.
func (s *ManagerState) GrabCount() int { return len(s.grabs) }

// Popups returns the popup stack, bottom first.
func (s *ManagerState) Popups() []PopupEntry {
	return slices.Clone(s.popups)
}

// PopupOpen reports whether the popup window id is on the stack.
func (s *ManagerState) PopupOpen(id WindowID) bool {
	return s.popupIndex(id) >= 0
}

func (s *ManagerState) popupIndex(id WindowID) int {
	if id == NoWindow {
		return -1
	}
	for i, p := range s.popups {
		if p.Window == id {
			return i
		}
	}
	return -1
}

// Registrants returns the widgets registered on h, in registration order.
func (s *ManagerState) Registrants(h UpdateHandle) []WidgetID {
	return slices.Clone(s.handles[h])
}

// AccelKeys returns the number of registered accelerator keys.
func (s *ManagerState) AccelKeys() int { return len(s.accel) }

// TakePending removes and returns the triggered updates.
func (s *ManagerState) TakePending() []PendingUpdate {
	p := s.pending
	s.pending = nil
	return p
}

// HasPending reports whether updates are awaiting delivery.
func (s *ManagerState) HasPending() bool { return len(s.pending) > 0 }

// TakeAction removes and returns the accumulated action.
func (s *ManagerState) TakeAction() Action {
	a := s.action
	s.action = ActionNone
	return a
}

// sortedGrabs returns the grabbed sources in a stable order.
func (s *ManagerState) sortedGrabs(touch bool) []PressSource {
	var out []PressSource
	for src := range s.grabs {
		if src.Touch == touch {
			out = append(out, src)
		}
	}
	slices.SortFunc(out, func(a, b PressSource) int {
		if a.Button != b.Button {
			return int(a.Button) - int(b.Button)
		}
		switch {
		case a.TouchID < b.TouchID:
			return -1
		case a.TouchID > b.TouchID:
			return 1
		}
		return 0
	})
	return out
}
