package core

import (
	"fmt"

	"github.com/go-drift/rui/pkg/geom"
)

// EventKind identifies the variant of an Event.
type EventKind uint8

const (
	// EventNone carries nothing.
	EventNone EventKind = iota
	// EventActivate asks the widget to perform its primary action.
	EventActivate
	// EventOpenPopup asks a menu to open its popup, if it has one.
	EventOpenPopup
	// EventHandleUpdate delivers a payload broadcast on an update handle.
	EventHandleUpdate
	// EventKey delivers a key press to the widget with character focus.
	EventKey
	// EventChar delivers text input to the widget with character focus.
	EventChar
	// EventPressStart reports a pointer press; ID is the hit widget.
	EventPressStart
	// EventPressMove reports motion of a grabbed source; ID is the widget
	// currently under the pointer.
	EventPressMove
	// EventPressEnd reports release of a grabbed source; ID is the widget
	// under the pointer at release.
	EventPressEnd
	// EventPan reports motion of a source grabbed in GrabModePan.
	EventPan
	// EventNavFocus tells a widget it received navigation focus.
	EventNavFocus
)

// String returns a human-readable representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventActivate:
		return "Activate"
	case EventOpenPopup:
		return "OpenPopup"
	case EventHandleUpdate:
		return "HandleUpdate"
	case EventKey:
		return "Key"
	case EventChar:
		return "Char"
	case EventPressStart:
		return "PressStart"
	case EventPressMove:
		return "PressMove"
	case EventPressEnd:
		return "PressEnd"
	case EventPan:
		return "Pan"
	case EventNavFocus:
		return "NavFocus"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is an input or notification delivered to a widget.
//
// Event is a comparable value; which fields are meaningful depends on Kind.
type Event struct {
	Kind EventKind

	// Source identifies the pointer for press and pan events.
	Source PressSource
	// ID is the start, current or end widget for press events.
	ID WidgetID
	// Coord is the pointer position for press events.
	Coord geom.Coord
	// Delta is the motion since the previous move or pan event.
	Delta geom.Coord

	// Key is set for EventKey.
	Key Key
	// Char is set for EventChar.
	Char rune

	// Handle and Payload are set for EventHandleUpdate.
	Handle  UpdateHandle
	Payload uint64
}

// Activate returns an EventActivate.
func Activate() Event { return Event{Kind: EventActivate} }

// OpenPopup returns an EventOpenPopup.
func OpenPopup() Event { return Event{Kind: EventOpenPopup} }

// NavFocus returns an EventNavFocus.
func NavFocus() Event { return Event{Kind: EventNavFocus} }

// HandleUpdate returns an EventHandleUpdate.
func HandleUpdate(h UpdateHandle, payload uint64) Event {
	return Event{Kind: EventHandleUpdate, Handle: h, Payload: payload}
}

// KeyPress returns an EventKey.
func KeyPress(k Key) Event { return Event{Kind: EventKey, Key: k} }

// CharInput returns an EventChar.
func CharInput(r rune) Event { return Event{Kind: EventChar, Char: r} }

// PressStart returns an EventPressStart hitting start.
func PressStart(src PressSource, start WidgetID, coord geom.Coord) Event {
	return Event{Kind: EventPressStart, Source: src, ID: start, Coord: coord}
}

// PressMove returns an EventPressMove now over cur.
func PressMove(src PressSource, cur WidgetID, coord, delta geom.Coord) Event {
	return Event{Kind: EventPressMove, Source: src, ID: cur, Coord: coord, Delta: delta}
}

// PressEnd returns an EventPressEnd released over end.
func PressEnd(src PressSource, end WidgetID, coord geom.Coord) Event {
	return Event{Kind: EventPressEnd, Source: src, ID: end, Coord: coord}
}

// Pan returns an EventPan.
func Pan(src PressSource, delta geom.Coord) Event {
	return Event{Kind: EventPan, Source: src, Delta: delta}
}

func (e Event) String() string {
	switch e.Kind {
	case EventPressStart, EventPressMove, EventPressEnd:
		return fmt.Sprintf("%s{%s %s %s}", e.Kind, e.Source, e.ID, e.Coord)
	case EventHandleUpdate:
		return fmt.Sprintf("HandleUpdate{%d %d}", e.Handle, e.Payload)
	case EventKey:
		return fmt.Sprintf("Key{%s}", e.Key)
	case EventChar:
		return fmt.Sprintf("Char{%q}", e.Char)
	default:
		return e.Kind.String()
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// String returns a human-readable representation of the button.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// PressSource identifies a mouse button or a touch point.
type PressSource struct {
	Touch   bool
	Button  MouseButton
	TouchID uint64
}

// MouseSource returns the source for a mouse button.
func MouseSource(b MouseButton) PressSource {
	return PressSource{Button: b}
}

// TouchSource returns the source for a touch point.
func TouchSource(id uint64) PressSource {
	return PressSource{Touch: true, TouchID: id}
}

// IsPrimary reports whether the source is the left mouse button or a touch.
func (s PressSource) IsPrimary() bool {
	return s.Touch || s.Button == ButtonLeft
}

func (s PressSource) String() string {
	if s.Touch {
		return fmt.Sprintf("touch(%d)", s.TouchID)
	}
	return "mouse(" + s.Button.String() + ")"
}

// KeyCode identifies a key. Printable keys use KeyRune.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

var keyNames = map[KeyCode]string{
	KeyNone:      "none",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
}

// Key is a key press, comparable for use as a map key.
type Key struct {
	Code KeyCode
	Rune rune
}

// RuneKey returns the key producing r.
func RuneKey(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

// NamedKey returns the non-printable key code.
func NamedKey(code KeyCode) Key {
	return Key{Code: code}
}

func (k Key) String() string {
	if k.Code == KeyRune {
		if k.Rune == ' ' {
			return "Space"
		}
		return string(k.Rune)
	}
	if name, ok := keyNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", int(k.Code))
}

// direction returns the navigation direction of an arrow key.
func (k Key) direction() (geom.Direction, bool) {
	switch k.Code {
	case KeyUp:
		return geom.Up, true
	case KeyDown:
		return geom.Down, true
	case KeyLeft:
		return geom.Left, true
	case KeyRight:
		return geom.Right, true
	}
	return 0, false
}
