package toolkit

import (
	stderrors "errors"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/theme"
	"github.com/go-drift/rui/pkg/widgets"
)

type captureHandler struct {
	errs   []*errors.RuiError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(err *errors.RuiError)   { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }

func captureErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func newToolkit(t *testing.T, opts ...Option) (*Toolkit, *Metrics) {
	t.Helper()
	m := NewMetrics(prometheus.NewRegistry())
	return New(theme.MustDefault(), append([]Option{WithMetrics(m)}, opts...)...), m
}

// syncCounter builds a counter keeping its own count, synchronised with
// other counters through h.
func syncCounter(h core.UpdateHandle) (*widgets.Window, *widgets.Label, *widgets.TextButton) {
	local := 0
	label := widgets.NewLabel("0")
	inc := widgets.NewTextButton("+", 1)
	c := widgets.NewComposite("SyncCounter", widgets.NewRow(label, inc))
	c.WithConfigure(func(mgr *core.Manager, id core.WidgetID) {
		mgr.UpdateOnHandle(h, id)
	}).WithMessage(func(mgr *core.Manager, msg any) core.Response {
		mgr.TriggerUpdate(h, uint64(int64(local+msg.(int))))
		return core.None()
	}).WithEvent(func(mgr *core.Manager, ev core.Event) core.Response {
		if ev.Kind != core.EventHandleUpdate {
			return core.Unhandled(ev)
		}
		local = int(int64(ev.Payload))
		mgr.SendAction(label.SetText(strconv.Itoa(local)))
		return core.None()
	})
	return widgets.NewWindow("sync", c), label, inc
}

func TestBroadcastReachesEveryWindow(t *testing.T) {
	tk, m := newToolkit(t)
	h := core.NewUpdateHandle()
	w1, label1, inc1 := syncCounter(h)
	w2, label2, inc2 := syncCounter(h)
	id1 := tk.AddWindow(w1, geom.Size{})
	id2 := tk.AddWindow(w2, geom.Size{})

	if _, err := tk.Send(id1, inc1.ID(), core.Activate()); err != nil {
		t.Fatal(err)
	}
	if label1.Text() != "1" || label2.Text() != "1" {
		t.Errorf("labels = %q, %q, want 1, 1", label1.Text(), label2.Text())
	}
	if _, err := tk.Send(id2, inc2.ID(), core.Activate()); err != nil {
		t.Fatal(err)
	}
	if label1.Text() != "2" || label2.Text() != "2" {
		t.Errorf("labels = %q, %q, want 2, 2", label1.Text(), label2.Text())
	}
	if got := testutil.ToFloat64(m.deliveries); got != 4 {
		t.Errorf("deliveries = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.windows); got != 2 {
		t.Errorf("windows gauge = %v, want 2", got)
	}
}

func TestBroadcastNotReplayed(t *testing.T) {
	tk, m := newToolkit(t)
	h := core.NewUpdateHandle()
	w1, label1, inc1 := syncCounter(h)
	id1 := tk.AddWindow(w1, geom.Size{})
	if _, err := tk.Send(id1, inc1.ID(), core.Activate()); err != nil {
		t.Fatal(err)
	}

	w2, label2, _ := syncCounter(h)
	tk.AddWindow(w2, geom.Size{})
	if label2.Text() != "0" {
		t.Errorf("late window label = %q, want 0", label2.Text())
	}
	if got := testutil.ToFloat64(m.deliveries); got != 1 {
		t.Errorf("deliveries = %v, want 1", got)
	}

	if _, err := tk.Send(id1, inc1.ID(), core.Activate()); err != nil {
		t.Fatal(err)
	}
	if label1.Text() != "2" || label2.Text() != "2" {
		t.Errorf("labels = %q, %q, want 2, 2", label1.Text(), label2.Text())
	}
}

func TestBroadcastRoundsBounded(t *testing.T) {
	tests := []struct {
		name   string
		rounds int
		want   float64
	}{
		{"explicit", 3, 3},
		{"zero uses default", 0, 8},
		{"negative uses default", -2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := captureErrors(t)
			tk, m := newToolkit(t, WithMaxUpdateRounds(tt.rounds))
			handle := core.NewUpdateHandle()
			btn := widgets.NewTextButton("go", 0)
			c := widgets.NewComposite("Loop", btn)
			c.WithConfigure(func(mgr *core.Manager, id core.WidgetID) {
				mgr.UpdateOnHandle(handle, id)
			}).WithMessage(func(mgr *core.Manager, _ any) core.Response {
				mgr.TriggerUpdate(handle, 0)
				return core.None()
			}).WithEvent(func(mgr *core.Manager, ev core.Event) core.Response {
				mgr.TriggerUpdate(handle, ev.Payload+1)
				return core.None()
			})
			id := tk.AddWindow(widgets.NewWindow("loop", c), geom.Size{})

			if _, err := tk.Send(id, btn.ID(), core.Activate()); err != nil {
				t.Fatal(err)
			}
			if got := testutil.ToFloat64(m.deliveries); got != tt.want {
				t.Errorf("deliveries = %v, want %v", got, tt.want)
			}
			if len(h.errs) != 1 {
				t.Fatalf("reported %d errors, want 1", len(h.errs))
			}
			if err := h.errs[0]; err.Kind != errors.KindDispatch || !stderrors.Is(err, errors.ErrUpdateRounds) {
				t.Errorf("error = %v, want KindDispatch wrapping ErrUpdateRounds", err)
			}
		})
	}
}

func TestPopupWindows(t *testing.T) {
	tk, m := newToolkit(t)
	entry := widgets.NewMenuEntry("Quit", "quit")
	mb := widgets.NewMenuButton("File", widgets.NewMenuFrame(widgets.NewColumn(entry)))
	quit := false
	root := widgets.NewComposite("App", widgets.NewColumn(mb)).
		WithMessage(func(_ *core.Manager, msg any) core.Response {
			quit = msg == "quit"
			return core.None()
		})
	id := tk.AddWindow(widgets.NewWindow("app", root), geom.Size{W: 200, H: 200})
	st, _ := tk.State(id)
	win, _ := tk.Window(id)

	if _, err := tk.Send(id, mb.ID(), core.Activate()); err != nil {
		t.Fatal(err)
	}
	if len(st.Popups()) != 1 || len(win.Popups()) != 1 {
		t.Fatalf("popups = %d (state), %d (window), want 1", len(st.Popups()), len(win.Popups()))
	}
	if got := testutil.ToFloat64(m.popups); got != 1 {
		t.Errorf("popups gauge = %v, want 1", got)
	}
	if entry.Rect().IsEmpty() {
		t.Error("popup entry was not laid out")
	}

	r, err := tk.Send(id, entry.ID(), core.Activate())
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsNone() || !quit {
		t.Errorf("response = %v, quit = %v, want none and true", r, quit)
	}
	if len(st.Popups()) != 0 || len(win.Popups()) != 0 {
		t.Errorf("popups after activation = %d, %d, want 0", len(st.Popups()), len(win.Popups()))
	}
	if got := testutil.ToFloat64(m.popups); got != 0 {
		t.Errorf("popups gauge = %v, want 0", got)
	}
}

func TestEscapeClosesPopupWindow(t *testing.T) {
	tk, m := newToolkit(t)
	mb := widgets.NewMenuButton("File", widgets.NewMenuFrame(widgets.NewColumn(widgets.NewMenuEntry("New", "new"))))
	id := tk.AddWindow(widgets.NewWindow("app", widgets.NewColumn(mb)), geom.Size{W: 100, H: 100})
	tk.Send(id, mb.ID(), core.Activate())

	err := tk.HandleInput(id, core.Input{Kind: core.InputKey, Key: core.NamedKey(core.KeyEscape)})
	if err != nil {
		t.Fatal(err)
	}
	st, _ := tk.State(id)
	if len(st.Popups()) != 0 {
		t.Errorf("popups = %d, want 0", len(st.Popups()))
	}
	if got := testutil.ToFloat64(m.inputs.WithLabelValues("key")); got != 1 {
		t.Errorf("key inputs = %v, want 1", got)
	}
}

func TestPanicAbortsDispatchOnly(t *testing.T) {
	h := captureErrors(t)
	tk, m := newToolkit(t)
	btn := widgets.NewTextButton("boom", "boom")
	root := widgets.NewComposite("Boom", btn).
		WithMessage(func(*core.Manager, any) core.Response { panic("boom") })
	id := tk.AddWindow(widgets.NewWindow("boom", root), geom.Size{})

	if _, err := tk.Send(id, btn.ID(), core.Activate()); err != nil {
		t.Fatal(err)
	}
	if len(h.panics) != 1 {
		t.Fatalf("reported %d panics, want 1", len(h.panics))
	}
	if h.panics[0].Op != "toolkit.Send" {
		t.Errorf("panic op = %q, want toolkit.Send", h.panics[0].Op)
	}
	if got := testutil.ToFloat64(m.failures); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
	if len(tk.Windows()) != 1 {
		t.Errorf("windows = %d, want 1", len(tk.Windows()))
	}
}

func TestCloseResponseClosesWindow(t *testing.T) {
	tk, m := newToolkit(t)
	btn := widgets.NewTextButton("close", "close")
	root := widgets.NewComposite("Closer", btn).
		WithMessage(func(*core.Manager, any) core.Response { return core.Close() })
	id := tk.AddWindow(widgets.NewWindow("closer", root), geom.Size{})
	keep := tk.AddWindow(widgets.NewWindow("keep", widgets.NewLabel("x")), geom.Size{})

	tk.Send(id, btn.ID(), core.Activate())
	if got := tk.Windows(); len(got) != 1 || got[0] != keep {
		t.Errorf("Windows = %v, want [%v]", got, keep)
	}
	if got := testutil.ToFloat64(m.windows); got != 1 {
		t.Errorf("windows gauge = %v, want 1", got)
	}
	if err := tk.HandleInput(id, core.Input{Kind: core.InputFocusLost}); err == nil {
		t.Error("HandleInput on closed window succeeded")
	}
}

func TestReconfigureAfterPush(t *testing.T) {
	tk, _ := newToolkit(t)
	list := widgets.NewColumn(widgets.NewLabel("a"))
	add := widgets.NewTextButton("add", "add")
	root := widgets.NewComposite("Adder", widgets.NewColumn(list, add)).
		WithMessage(func(mgr *core.Manager, _ any) core.Response {
			mgr.SendAction(list.Push(widgets.NewLabel("b")))
			return core.None()
		})
	id := tk.AddWindow(widgets.NewWindow("adder", root), geom.Size{W: 100, H: 100})

	tk.Send(id, add.ID(), core.Activate())
	if list.Len() != 2 {
		t.Fatalf("list length = %d, want 2", list.Len())
	}
	pushed := list.Get(1)
	if !pushed.Core().ID().IsValid() {
		t.Error("pushed widget has no id")
	}
	if pushed.Core().Rect().IsEmpty() {
		t.Error("pushed widget was not laid out")
	}
	if !root.Core().IsAncestorOf(add.ID()) || add.ID() <= pushed.Core().ID() {
		t.Errorf("ids not reassigned in tree order: pushed %v, add %v", pushed.Core().ID(), add.ID())
	}
}

func TestSetThemeResizes(t *testing.T) {
	tk, _ := newToolkit(t)
	label := widgets.NewLabel("hello")
	id := tk.AddWindow(widgets.NewWindow("t", widgets.NewColumn(label)), geom.Size{W: 300, H: 300})
	tk.Draw(id, theme.NewRecorder(tk.Theme()))
	before := label.Rect()

	big, err := theme.New(&theme.Config{Font: theme.FontConfig{Size: 40}})
	if err != nil {
		t.Fatal(err)
	}
	tk.SetTheme(big)
	if !tk.NeedsRedraw(id) {
		t.Error("NeedsRedraw = false after theme change")
	}
	if label.Rect().Size.H <= before.Size.H {
		t.Errorf("label height = %d, want > %d", label.Rect().Size.H, before.Size.H)
	}
}

func TestDrawRecordsTree(t *testing.T) {
	tk, _ := newToolkit(t)
	id := tk.AddWindow(widgets.NewWindow("t", widgets.NewRow(widgets.NewLabel("a"), widgets.NewTextButton("b", 0))), geom.Size{})
	rec := theme.NewRecorder(tk.Theme())
	tk.Draw(id, rec)
	got := rec.Texts()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Texts = %v, want [a b]", got)
	}
	if tk.NeedsRedraw(id) {
		t.Error("NeedsRedraw = true after Draw")
	}
}
