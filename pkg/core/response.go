package core

import "fmt"

// ResponseKind identifies the variant of a Response.
type ResponseKind uint8

const (
	// ResponseNone means the event was consumed without a message.
	ResponseNone ResponseKind = iota
	// ResponseUnhandled returns the event, unchanged, to the caller.
	ResponseUnhandled
	// ResponseMsg carries a message for an ancestor to interpret.
	ResponseMsg
	// ResponseClose asks the owning window to close.
	ResponseClose
)

// String returns a human-readable representation of the response kind.
func (k ResponseKind) String() string {
	switch k {
	case ResponseNone:
		return "None"
	case ResponseUnhandled:
		return "Unhandled"
	case ResponseMsg:
		return "Msg"
	case ResponseClose:
		return "Close"
	default:
		return fmt.Sprintf("ResponseKind(%d)", int(k))
	}
}

// Response is the result of sending an event to a widget.
type Response struct {
	Kind ResponseKind
	// Event is the original event of an Unhandled response.
	Event Event
	// Msg is the message of a Msg response.
	Msg any
}

// None returns a ResponseNone.
func None() Response { return Response{} }

// Unhandled returns ev to the caller for another handler to try.
func Unhandled(ev Event) Response { return Response{Kind: ResponseUnhandled, Event: ev} }

// Msg returns a response carrying m.
func Msg(m any) Response { return Response{Kind: ResponseMsg, Msg: m} }

// Close returns a ResponseClose.
func Close() Response { return Response{Kind: ResponseClose} }

// IsNone reports whether r is ResponseNone.
func (r Response) IsNone() bool { return r.Kind == ResponseNone }

// IsUnhandled reports whether r is ResponseUnhandled.
func (r Response) IsUnhandled() bool { return r.Kind == ResponseUnhandled }

// IsMsg reports whether r carries a message.
func (r Response) IsMsg() bool { return r.Kind == ResponseMsg }

// Handled converts Unhandled into None, leaving other responses intact.
func (r Response) Handled() Response {
	if r.Kind == ResponseUnhandled {
		return None()
	}
	return r
}

func (r Response) String() string {
	switch r.Kind {
	case ResponseUnhandled:
		return fmt.Sprintf("Unhandled(%s)", r.Event)
	case ResponseMsg:
		return fmt.Sprintf("Msg(%v)", r.Msg)
	default:
		return r.Kind.String()
	}
}
