// Package toolkit is the headless runtime driver: it owns top-level windows
// and their popup windows, routes platform input to each window's event
// manager, delivers update-handle broadcasts across windows and applies the
// resulting layout and redraw actions.
//
// A Toolkit is not safe for concurrent use. Drivers running input or reload
// goroutines must marshal that work onto the goroutine owning the Toolkit.
package toolkit

import (
	"fmt"
	"slices"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/theme"
	"github.com/go-drift/rui/pkg/widgets"
)

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithMetrics records toolkit activity in m.
func WithMetrics(m *Metrics) Option {
	return func(t *Toolkit) { t.metrics = m }
}

// WithSizeHandle measures widgets with sh instead of the theme's pixel
// metrics. Terminal drivers use this to lay out in character cells.
func WithSizeHandle(sh draw.SizeHandle) Option {
	return func(t *Toolkit) { t.sizeHandle = sh }
}

// WithMaxUpdateRounds overrides the theme's bound on chained broadcasts.
// Values below one select the built-in default; the bound cannot be removed.
func WithMaxUpdateRounds(n int) Option {
	return func(t *Toolkit) { t.maxRounds = n }
}

// WithMouseNavFocus overrides whether clicks move navigation focus.
func WithMouseNavFocus(on bool) Option {
	return func(t *Toolkit) { t.mouseNavFocus = on }
}

// Toolkit drives a set of windows.
type Toolkit struct {
	theme         *theme.Theme
	sizeHandle    draw.SizeHandle
	metrics       *Metrics
	maxRounds     int
	mouseNavFocus bool

	windows []*window
	popups  map[core.WindowID]*window
	lastID  core.WindowID
}

// New returns a Toolkit using th for metrics. A nil th uses the default
// theme.
func New(th *theme.Theme, opts ...Option) *Toolkit {
	if th == nil {
		th = theme.MustDefault()
	}
	t := &Toolkit{
		theme:         th,
		maxRounds:     th.Config.Toolkit.MaxUpdateRounds,
		mouseNavFocus: th.Config.Input.MouseNavFocus,
		popups:        make(map[core.WindowID]*window),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.maxRounds <= 0 {
		t.maxRounds = theme.Default().Toolkit.MaxUpdateRounds
	}
	if t.metrics == nil {
		t.metrics = NewMetrics(nil)
	}
	return t
}

// Theme returns the active theme.
func (t *Toolkit) Theme() *theme.Theme {
	return t.theme
}

// SizeHandle returns the metrics windows are laid out with.
func (t *Toolkit) SizeHandle() draw.SizeHandle {
	if t.sizeHandle != nil {
		return t.sizeHandle
	}
	return t.theme.SizeHandle()
}

// AddWindow configures w and opens it. A zero size opens the window at its
// ideal size.
func (t *Toolkit) AddWindow(w *widgets.Window, size geom.Size) core.WindowID {
	win := &window{
		tk:     t,
		id:     t.allocID(),
		widget: w,
		state:  core.NewManagerState(),
	}
	win.state.MouseNavFocus = t.mouseNavFocus
	win.mgr = core.NewManager(win.state, win)

	win.run("toolkit.AddWindow", func() {
		core.Configure(w, win.mgr)
		if size.IsEmpty() {
			size = w.IdealSize(t.SizeHandle())
		}
		win.size = size
		w.Resize(t.SizeHandle(), size)
	})
	t.windows = append(t.windows, win)
	t.metrics.windows.Inc()
	t.settle()
	win.dirty = true
	return win.id
}

// Windows returns the ids of open top-level windows in opening order.
func (t *Toolkit) Windows() []core.WindowID {
	out := make([]core.WindowID, 0, len(t.windows))
	for _, w := range t.windows {
		out = append(out, w.id)
	}
	return out
}

// Window returns the widget tree of window id.
func (t *Toolkit) Window(id core.WindowID) (*widgets.Window, bool) {
	w := t.window(id)
	if w == nil {
		return nil, false
	}
	return w.widget, true
}

// State returns the event state of window id.
func (t *Toolkit) State(id core.WindowID) (*core.ManagerState, bool) {
	w := t.window(id)
	if w == nil {
		return nil, false
	}
	return w.state, true
}

// Size returns the current size of window id.
func (t *Toolkit) Size(id core.WindowID) geom.Size {
	if w := t.window(id); w != nil {
		return w.size
	}
	return geom.Size{}
}

// NeedsRedraw reports whether window id changed since it was last drawn.
func (t *Toolkit) NeedsRedraw(id core.WindowID) bool {
	w := t.window(id)
	return w != nil && w.dirty
}

// MarkDirty forces window id to be redrawn, for drivers that switch which
// window is on screen.
func (t *Toolkit) MarkDirty(id core.WindowID) {
	if w := t.window(id); w != nil {
		w.dirty = true
	}
}

// HandleInput dispatches platform input to window id and then settles the
// toolkit: pending broadcasts are delivered and actions applied. Panics in
// widget code are reported to the error handler and abort only the current
// dispatch.
func (t *Toolkit) HandleInput(id core.WindowID, in core.Input) error {
	w := t.window(id)
	if w == nil {
		return fmt.Errorf("toolkit: no window %d", id)
	}
	t.metrics.inputs.WithLabelValues(inputLabel(in.Kind)).Inc()
	w.run("toolkit.HandleInput", func() {
		w.mgr.HandleInput(w.widget, in)
	})
	t.settle()
	return nil
}

// Send dispatches ev to widget target in window id, as a driver would for
// programmatic activation, and settles the toolkit.
func (t *Toolkit) Send(id core.WindowID, target core.WidgetID, ev core.Event) (core.Response, error) {
	w := t.window(id)
	if w == nil {
		return core.None(), fmt.Errorf("toolkit: no window %d", id)
	}
	r := core.None()
	w.run("toolkit.Send", func() {
		r = w.mgr.Dispatch(w.widget, target, ev)
	})
	t.settle()
	return r, nil
}

// Resize lays window id out at size.
func (t *Toolkit) Resize(id core.WindowID, size geom.Size) {
	w := t.window(id)
	if w == nil || w.size == size {
		return
	}
	w.size = size
	w.mgr.SendAction(core.ActionResize)
	t.settle()
}

// SetTheme switches to th. Metric changes re-lay out every window; colour
// changes redraw them.
func (t *Toolkit) SetTheme(th *theme.Theme) {
	action := t.theme.Change(th)
	t.theme = th
	if action == core.ActionNone {
		return
	}
	for _, w := range t.windows {
		w.mgr.SendAction(action)
	}
	t.settle()
}

// Draw draws window id, popups included, to dh.
func (t *Toolkit) Draw(id core.WindowID, dh draw.DrawHandle) {
	w := t.window(id)
	if w == nil {
		return
	}
	w.run("toolkit.Draw", func() {
		w.widget.Draw(dh, w.state, false)
	})
	w.dirty = false
}

// Close closes window id and its popups.
func (t *Toolkit) Close(id core.WindowID) {
	if w := t.window(id); w != nil {
		w.mgr.SendAction(core.ActionClose)
		t.settle()
	}
}

// settle delivers broadcasts until none are pending, then applies every
// window's accumulated actions.
func (t *Toolkit) settle() {
	t.flushUpdates()
	for _, w := range slices.Clone(t.windows) {
		t.apply(w)
	}
	// Reconfiguring may have registered fresh triggers.
	if t.hasPending() {
		t.flushUpdates()
		for _, w := range slices.Clone(t.windows) {
			t.apply(w)
		}
	}
}

func (t *Toolkit) hasPending() bool {
	for _, w := range t.windows {
		if w.state.HasPending() {
			return true
		}
	}
	return false
}

// flushUpdates delivers pending broadcasts to every registrant in every
// window, origin included. Deliveries that trigger further broadcasts are
// handled in following rounds, up to maxRounds.
func (t *Toolkit) flushUpdates() {
	for round := 0; ; round++ {
		var pending []core.PendingUpdate
		for _, w := range t.windows {
			pending = append(pending, w.state.TakePending()...)
		}
		if len(pending) == 0 {
			return
		}
		if round >= t.maxRounds {
			t.metrics.failures.Inc()
			errors.Report(&errors.RuiError{
				Op:   "toolkit.flushUpdates",
				Kind: errors.KindDispatch,
				Err:  fmt.Errorf("%w after %d rounds (%d pending)", errors.ErrUpdateRounds, round, len(pending)),
			})
			return
		}
		for _, u := range pending {
			ev := core.HandleUpdate(u.Handle, u.Payload)
			for _, w := range t.windows {
				for _, id := range w.state.Registrants(u.Handle) {
					t.metrics.deliveries.Inc()
					w.run("toolkit.deliverUpdate", func() {
						w.mgr.Dispatch(w.widget, id, ev)
					})
				}
			}
		}
	}
}

// apply performs w's accumulated actions.
func (t *Toolkit) apply(w *window) {
	a := w.state.TakeAction()
	if a == core.ActionNone {
		return
	}
	if a.Has(core.ActionClose) {
		t.remove(w)
		return
	}
	sh := t.SizeHandle()
	w.run("toolkit.apply", func() {
		if a.Has(core.ActionReconfigure) {
			core.Configure(w.widget, w.mgr)
			a |= core.ActionResize
		}
		switch {
		case a.Has(core.ActionResize):
			w.widget.Resize(sh, w.size)
			a |= core.ActionRegionMoved
		case a.Has(core.ActionResizePopups):
			w.widget.ResizePopups(sh)
			a |= core.ActionRegionMoved
		}
		if a.Has(core.ActionRegionMoved) {
			w.mgr.RegionMoved(w.widget)
		}
	})
	a |= w.state.TakeAction()
	if a&^core.ActionClose != core.ActionNone {
		w.dirty = true
	}
	if a.Has(core.ActionClose) {
		t.remove(w)
	}
}

func (t *Toolkit) remove(w *window) {
	i := slices.Index(t.windows, w)
	if i < 0 {
		return
	}
	for id, owner := range t.popups {
		if owner == w {
			delete(t.popups, id)
			t.metrics.popups.Dec()
		}
	}
	t.windows = slices.Delete(t.windows, i, i+1)
	t.metrics.windows.Dec()
}

func (t *Toolkit) window(id core.WindowID) *window {
	for _, w := range t.windows {
		if w.id == id {
			return w
		}
	}
	return nil
}

func (t *Toolkit) allocID() core.WindowID {
	t.lastID++
	return t.lastID
}

// window is one top-level window. It is the core.ToolkitProxy handed to the
// window's Manager.
type window struct {
	tk     *Toolkit
	id     core.WindowID
	widget *widgets.Window
	state  *core.ManagerState
	mgr    *core.Manager
	size   geom.Size
	dirty  bool
}

// AddPopup implements core.ToolkitProxy.
func (w *window) AddPopup(p core.Popup) core.WindowID {
	id := w.tk.allocID()
	w.widget.AddPopup(w.tk.SizeHandle(), id, p)
	w.tk.popups[id] = w
	w.tk.metrics.popups.Inc()
	return id
}

// CloseWindow implements core.ToolkitProxy. Ids of popups close the popup;
// ids of top-level windows close the window once the dispatch completes.
func (w *window) CloseWindow(id core.WindowID) {
	if owner, ok := w.tk.popups[id]; ok {
		owner.widget.RemovePopup(id)
		delete(w.tk.popups, id)
		w.tk.metrics.popups.Dec()
		return
	}
	if target := w.tk.window(id); target != nil {
		target.mgr.SendAction(core.ActionClose)
	}
}

// run calls fn, reporting a panic as a failed dispatch of this window.
func (w *window) run(op string, fn func()) {
	defer errors.RecoverWithCallback(op, func(any) {
		w.tk.metrics.failures.Inc()
	})
	fn()
}
