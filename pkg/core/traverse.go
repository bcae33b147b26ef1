package core

import (
	"sort"

	"github.com/go-drift/rui/pkg/geom"
)

// Configure assigns ids to the tree rooted at root and then calls Configure
// on every widget in pre-order.
//
// Per-window registrations that refer to ids (update handles, accelerator
// keys, focus, grabs, popups) are cleared first, since ids may now refer to
// different widgets.
func Configure(root Widget, mgr *Manager) {
	mgr.resetForConfigure()
	assignIDs(root, 1)
	Walk(root, func(w Widget) {
		w.Configure(mgr)
	})
}

// assignIDs numbers w and its subtree starting at next and returns the next
// unused id.
func assignIDs(w Widget, next WidgetID) WidgetID {
	c := w.Core()
	c.id = next
	next++
	for i := 0; i < w.Len(); i++ {
		if child := w.Get(i); child != nil {
			next = assignIDs(child, next)
		}
	}
	c.last = next - 1
	return next
}

// Walk calls fn for w and every descendant in pre-order.
func Walk(w Widget, fn func(Widget)) {
	WalkUntil(w, func(w Widget) bool {
		fn(w)
		return true
	})
}

// WalkUntil calls fn in pre-order until it returns false. It reports whether
// the walk completed.
func WalkUntil(w Widget, fn func(Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for i := 0; i < w.Len(); i++ {
		if child := w.Get(i); child != nil && !WalkUntil(child, fn) {
			return false
		}
	}
	return true
}

// ChildIndex returns the index of the direct child of w whose subtree
// contains id, or -1.
func ChildIndex(w Widget, id WidgetID) int {
	n := w.Len()
	// Children's ranges are disjoint and increasing.
	i := sort.Search(n, func(i int) bool {
		child := w.Get(i)
		return child != nil && child.Core().LastID() >= id
	})
	if i < n && w.Get(i).Core().IsAncestorOf(id) {
		return i
	}
	return -1
}

// Find returns the widget with the given id within w's subtree, or nil.
func Find(w Widget, id WidgetID) Widget {
	for w != nil {
		c := w.Core()
		if !c.IsAncestorOf(id) {
			return nil
		}
		if c.ID() == id {
			return w
		}
		i := ChildIndex(w, id)
		if i < 0 {
			return nil
		}
		w = w.Get(i)
	}
	return nil
}

// DefaultFindID hit-tests the children in w's spatial range, returning the
// deepest widget containing coord, or w itself.
func DefaultFindID(w Widget, coord geom.Coord) WidgetID {
	first, last := w.SpatialRange()
	for i := first; i <= last && i < w.Len(); i++ {
		child := w.Get(i)
		if child != nil && child.Core().Rect().Contains(coord) {
			return child.FindID(coord)
		}
	}
	return w.Core().ID()
}

// DefaultSend routes ev toward id.
//
// Disabled widgets answer Unhandled. An event addressed to w is handled by
// HandleGeneric. Otherwise it is forwarded to the child whose id range
// contains id; if that child answers Unhandled, w's own handler is tried with
// the same event.
func DefaultSend(w Widget, mgr *Manager, id WidgetID, ev Event) Response {
	c := w.Core()
	if c.IsDisabled() {
		return Unhandled(ev)
	}
	if id == c.ID() {
		return HandleGeneric(w, mgr, ev)
	}
	i := ChildIndex(w, id)
	if i < 0 {
		return Unhandled(ev)
	}
	r := w.Get(i).Send(mgr, id, ev)
	if r.Kind == ResponseUnhandled {
		return w.Handle(mgr, r.Event)
	}
	return r
}

// HandleGeneric is the fallback handler for events addressed to w.
//
// For widgets reporting ActivationViaPress it turns a primary press and
// release over the widget into Activate: the press takes a grab and
// depresses the widget, moves update the depress highlight, and a release
// over the widget is handled as Activate. A press whose source is already
// grabbed is left unhandled. All other events go to w.Handle.
func HandleGeneric(w Widget, mgr *Manager, ev Event) Response {
	if w.ActivationViaPress() {
		id := w.Core().ID()
		switch ev.Kind {
		case EventPressStart:
			if ev.Source.IsPrimary() {
				if !mgr.RequestGrab(id, ev.Source, ev.Coord, GrabModeGrab, id) {
					return Unhandled(ev)
				}
				return None()
			}
		case EventPressMove:
			target := NoID
			if ev.ID == id {
				target = id
			}
			mgr.SetGrabDepress(ev.Source, target)
			return None()
		case EventPressEnd:
			if ev.ID != id {
				return None()
			}
			ev = Activate()
		}
	}
	return w.Handle(mgr, ev)
}
