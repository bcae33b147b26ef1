// Package core provides widget identity, tree traversal and event dispatch.
//
// # Identity
//
// Every widget embeds [Base] (which carries [CoreData]) and receives a
// [WidgetID] when its tree is configured. Ids are assigned in pre-order, so a
// widget's subtree occupies the contiguous range [w.ID(), w.Core().LastID()]
// and a lookup by id descends only into the one child whose range contains
// the target:
//
//	w := core.Find(root, id) // cost proportional to depth
//
// # Dispatch
//
// A [Manager] is the sole entry point for platform input. It hit-tests
// presses, routes grabbed pointer sources to their owner, maintains keyboard
// and navigation focus and the popup stack, and sends [Event] values down
// the tree with [Widget.Send]. Each level answers with a [Response]:
//
//	func (c *Counter) Send(mgr *core.Manager, id core.WidgetID, ev core.Event) core.Response {
//	    r := core.DefaultSend(c, mgr, id, ev)
//	    if r.Kind == core.ResponseMsg && r.Msg == incr {
//	        c.count++
//	        mgr.SendAction(c.label.SetText(strconv.Itoa(c.count)))
//	        return core.None()
//	    }
//	    return r
//	}
//
// An Unhandled response carries the original event unchanged so that
// ancestors may retry it with their own handler.
//
// # Update handles
//
// [NewUpdateHandle] allocates a broadcast token. Widgets register for it in
// Configure with [Manager.UpdateOnHandle]; [Manager.TriggerUpdate] queues a
// payload that the driver delivers to every registrant in every window once
// the current dispatch has finished.
package core
