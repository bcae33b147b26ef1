package demos

import (
	"strconv"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/layout"
	"github.com/go-drift/rui/pkg/widgets"
)

func init() {
	register(Demo{Name: "counter", Short: "a label with increment and decrement buttons", Build: func(title string) []*widgets.Window {
		return []*widgets.Window{Counter(title)}
	}})
	register(Demo{Name: "sync-counter", Short: "two windows sharing one counter", Build: func(title string) []*widgets.Window {
		return SyncCounter(title, core.NewUpdateHandle())
	}})
}

var centered = layout.AlignHints{Horiz: layout.AlignCenter, Vert: layout.AlignCenter}

// Counter returns a window with a counter; "-" and "+" also work as keys.
func Counter(title string) *widgets.Window {
	n := 0
	label := widgets.NewLabel("0").WithAlign(centered)
	body := widgets.NewComposite("Counter", widgets.NewColumn(
		label,
		widgets.NewRow(
			widgets.NewTextButton("-", -1).WithKeys(core.RuneKey('-')),
			widgets.NewTextButton("+", 1).WithKeys(core.RuneKey('+')),
		),
	)).WithMessage(func(mgr *core.Manager, msg any) core.Response {
		delta, ok := msg.(int)
		if !ok {
			return core.Msg(msg)
		}
		n += delta
		mgr.SendAction(label.SetText(strconv.Itoa(n)))
		return core.None()
	})
	return widgets.NewWindow(title+": counter", body)
}

// SyncCounter returns two windows whose counters stay equal. Each window
// keeps its own count and subscribes to h; the clicked one broadcasts its
// count plus the delta, and every window, itself included, adopts the value
// it receives.
func SyncCounter(title string, h core.UpdateHandle) []*widgets.Window {
	build := func(name string) *widgets.Window {
		local := 0
		label := widgets.NewLabel("0").WithAlign(centered)
		body := widgets.NewComposite("SyncCounter", widgets.NewColumn(
			label,
			widgets.NewRow(
				widgets.NewTextButton("-", -1).WithKeys(core.RuneKey('-')),
				widgets.NewTextButton("+", 1).WithKeys(core.RuneKey('+')),
			),
		))
		body.WithConfigure(func(mgr *core.Manager, id core.WidgetID) {
			mgr.UpdateOnHandle(h, id)
		}).WithMessage(func(mgr *core.Manager, msg any) core.Response {
			delta, ok := msg.(int)
			if !ok {
				return core.Msg(msg)
			}
			mgr.TriggerUpdate(h, uint64(int64(local+delta)))
			return core.None()
		}).WithEvent(func(mgr *core.Manager, ev core.Event) core.Response {
			if ev.Kind != core.EventHandleUpdate || ev.Handle != h {
				return core.Unhandled(ev)
			}
			local = int(int64(ev.Payload))
			mgr.SendAction(label.SetText(strconv.Itoa(local)))
			return core.None()
		})
		return widgets.NewWindow(title+": "+name, body)
	}
	return []*widgets.Window{build("left"), build("right")}
}
