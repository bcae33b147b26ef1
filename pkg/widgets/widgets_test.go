package widgets_test

import (
	stderrors "errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
	ruitest "github.com/go-drift/rui/pkg/testing"
	"github.com/go-drift/rui/pkg/theme"
	"github.com/go-drift/rui/pkg/widgets"
)

func TestCounterIncrement(t *testing.T) {
	n := 0
	msgs := 0
	label := widgets.NewLabel("0")
	root := widgets.NewComposite("Counter",
		widgets.NewRow(label, widgets.NewTextButton("-", -1), widgets.NewTextButton("+", 1)),
	).WithMessage(func(mgr *core.Manager, msg any) core.Response {
		msgs++
		n += msg.(int)
		mgr.SendAction(label.SetText(strconv.Itoa(n)))
		return core.None()
	})
	tester := ruitest.NewTesterWithT(t, root)

	if _, err := tester.Activate(ruitest.ByText("+")); err != nil {
		t.Fatal(err)
	}
	if msgs != 1 || label.Text() != "1" {
		t.Errorf("after Activate: msgs = %d, label = %q, want 1, 1", msgs, label.Text())
	}
	if err := tester.Click(ruitest.ByText("-")); err != nil {
		t.Fatal(err)
	}
	if msgs != 2 || label.Text() != "0" {
		t.Errorf("after click: msgs = %d, label = %q, want 2, 0", msgs, label.Text())
	}
}

func TestLabelSetText(t *testing.T) {
	l := widgets.NewLabel("a")
	if got := l.SetText("a"); got != core.ActionNone {
		t.Errorf("SetText(same) = %v, want none", got)
	}
	if got := l.SetText("b"); got == core.ActionNone {
		t.Error("SetText(new) = none, want an action")
	}
	if l.Text() != "b" {
		t.Errorf("Text = %q, want b", l.Text())
	}
}

func TestDisabledButtonIgnoresClicks(t *testing.T) {
	n := 0
	btn := widgets.NewTextButton("+", 1)
	root := widgets.NewComposite("Counter", btn).
		WithMessage(func(*core.Manager, any) core.Response {
			n++
			return core.None()
		})
	tester := ruitest.NewTesterWithT(t, root)
	btn.SetDisabled(true)

	if err := tester.Click(ruitest.ByWidget(btn)); err != nil {
		t.Fatal(err)
	}
	if r, _ := tester.Activate(ruitest.ByWidget(btn)); !r.IsUnhandled() {
		t.Errorf("Activate on disabled = %v, want unhandled", r)
	}
	if n != 0 {
		t.Errorf("messages = %d, want 0", n)
	}
	for _, c := range tester.Draw().Commands() {
		if c.Op == theme.OpButton && !c.State.Disabled {
			t.Error("disabled button drawn without disabled state")
		}
	}
}

func menuApp() (core.Widget, *[]any) {
	var got []any
	bar := widgets.NewMenuBar(
		widgets.NewSubMenu("File",
			widgets.NewMenuEntry("New", "new"),
			widgets.NewMenuEntry("Quit", "quit")),
		widgets.NewSubMenu("Edit",
			widgets.NewMenuEntry("Copy", "copy"),
			widgets.NewSubMenu("Insert",
				widgets.NewMenuEntry("Date", "date"))),
	)
	root := widgets.NewComposite("App",
		widgets.NewColumn(bar, widgets.NewLabel("body text for the window")),
	).WithMessage(func(_ *core.Manager, msg any) core.Response {
		got = append(got, msg)
		return core.None()
	})
	return root, &got
}

func TestMenuBarSwitch(t *testing.T) {
	root, _ := menuApp()
	tester := ruitest.NewTesterWithT(t, root)
	file := tester.Find(ruitest.ByText("File")).First().(*widgets.SubMenu)
	edit := tester.Find(ruitest.ByText("Edit")).First().(*widgets.SubMenu)

	if err := tester.Click(ruitest.ByText("File")); err != nil {
		t.Fatal(err)
	}
	if tester.PopupDepth() != 1 || !file.IsOpen(tester.State()) {
		t.Fatalf("after File: depth = %d, File open = %v, want 1, true", tester.PopupDepth(), file.IsOpen(tester.State()))
	}

	if err := tester.Click(ruitest.ByText("Edit")); err != nil {
		t.Fatal(err)
	}
	if tester.PopupDepth() != 1 {
		t.Errorf("after Edit: depth = %d, want 1", tester.PopupDepth())
	}
	if file.IsOpen(tester.State()) || !edit.IsOpen(tester.State()) {
		t.Errorf("File open = %v, Edit open = %v, want false, true", file.IsOpen(tester.State()), edit.IsOpen(tester.State()))
	}
}

func TestMenuBarClickHeaderTwiceCloses(t *testing.T) {
	root, _ := menuApp()
	tester := ruitest.NewTesterWithT(t, root)

	for i, want := range []int{1, 0} {
		if err := tester.Click(ruitest.ByText("File")); err != nil {
			t.Fatal(err)
		}
		if tester.PopupDepth() != want {
			t.Errorf("click %d: depth = %d, want %d", i+1, tester.PopupDepth(), want)
		}
	}
}

func TestMenuBarKeyboardSwitch(t *testing.T) {
	root, _ := menuApp()
	tester := ruitest.NewTesterWithT(t, root)
	bar := tester.Find(ruitest.ByType(&widgets.MenuBar{})).First().(*widgets.MenuBar)
	file, edit := bar.Menus()[0], bar.Menus()[1]

	for i := 0; i < 10 && tester.State().NavFocus() != edit.ID(); i++ {
		if err := tester.Key(core.NamedKey(core.KeyTab)); err != nil {
			t.Fatal(err)
		}
	}
	if got := tester.State().NavFocus(); got != edit.ID() {
		t.Fatalf("NavFocus = %v, want Edit header %v", got, edit.ID())
	}
	if err := tester.Click(ruitest.ByText("File")); err != nil {
		t.Fatal(err)
	}
	if err := tester.Key(core.NamedKey(core.KeyEnter)); err != nil {
		t.Fatal(err)
	}
	st := tester.State()
	if n := bar.OpenMenus(st); n != 1 {
		t.Errorf("OpenMenus = %d, want 1", n)
	}
	if file.IsOpen(st) || !edit.IsOpen(st) {
		t.Errorf("File open = %v, Edit open = %v, want false, true", file.IsOpen(st), edit.IsOpen(st))
	}
	if got := st.NavFocus(); got != edit.ID() {
		t.Errorf("NavFocus after switch = %v, want %v", got, edit.ID())
	}
}

func TestMenuBarHeaderActivate(t *testing.T) {
	root, _ := menuApp()
	tester := ruitest.NewTesterWithT(t, root)
	bar := tester.Find(ruitest.ByType(&widgets.MenuBar{})).First().(*widgets.MenuBar)
	file, edit := bar.Menus()[0], bar.Menus()[1]

	steps := []struct {
		target   *widgets.SubMenu
		ev       core.Event
		wantFile bool
		wantEdit bool
	}{
		{file, core.Activate(), true, false},
		{edit, core.Activate(), false, true},
		{edit, core.Activate(), false, false},
		{file, core.OpenPopup(), true, false},
		{file, core.OpenPopup(), true, false},
		{edit, core.OpenPopup(), false, true},
	}
	for i, step := range steps {
		if _, err := tester.Send(step.target.ID(), step.ev); err != nil {
			t.Fatal(err)
		}
		st := tester.State()
		if file.IsOpen(st) != step.wantFile || edit.IsOpen(st) != step.wantEdit {
			t.Errorf("step %d: File open = %v, Edit open = %v, want %v, %v",
				i, file.IsOpen(st), edit.IsOpen(st), step.wantFile, step.wantEdit)
		}
		if n := bar.OpenMenus(st); n > 1 {
			t.Errorf("step %d: OpenMenus = %d, want at most 1", i, n)
		}
	}
}

func TestNestedSubMenuSiblingsClose(t *testing.T) {
	var got []any
	bar := widgets.NewMenuBar(
		widgets.NewSubMenu("Edit",
			widgets.NewSubMenu("Insert", widgets.NewMenuEntry("Date", "date")),
			widgets.NewSubMenu("Case", widgets.NewMenuEntry("Upper", "upper"))),
	)
	root := widgets.NewComposite("App", widgets.NewColumn(bar, widgets.NewLabel("body"))).
		WithMessage(func(_ *core.Manager, msg any) core.Response {
			got = append(got, msg)
			return core.None()
		})
	tester := ruitest.NewTesterWithT(t, root)
	insert := tester.Find(ruitest.ByText("Insert")).First().(*widgets.SubMenu)
	caseMenu := tester.Find(ruitest.ByText("Case")).First().(*widgets.SubMenu)

	tester.Click(ruitest.ByText("Edit"))
	if _, err := tester.Activate(ruitest.ByText("Insert")); err != nil {
		t.Fatal(err)
	}
	if _, err := tester.Activate(ruitest.ByText("Case")); err != nil {
		t.Fatal(err)
	}
	st := tester.State()
	if insert.IsOpen(st) || !caseMenu.IsOpen(st) {
		t.Errorf("Insert open = %v, Case open = %v, want false, true", insert.IsOpen(st), caseMenu.IsOpen(st))
	}
	if tester.PopupDepth() != 2 {
		t.Errorf("depth = %d, want 2", tester.PopupDepth())
	}
}

// TestMenuGestureSequences replays seeded press, move and release sequences
// over the menu and checks that at most one header is open and that every
// popup belongs to the one below it.
func TestMenuGestureSequences(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		t.Run(strconv.FormatInt(seed, 10), func(t *testing.T) {
			root, _ := menuApp()
			tester := ruitest.NewTesterWithT(t, root)
			bar := tester.Find(ruitest.ByType(&widgets.MenuBar{})).First().(*widgets.MenuBar)
			rng := rand.New(rand.NewSource(seed))

			point := func() geom.Coord {
				var targets []core.Widget
				targets = append(targets, tester.Find(ruitest.ByType(&widgets.SubMenu{})).All()...)
				targets = append(targets, tester.Find(ruitest.ByType(&widgets.MenuEntry{})).All()...)
				if rng.Intn(4) > 0 && len(targets) > 0 {
					if r := targets[rng.Intn(len(targets))].Core().Rect(); !r.IsEmpty() {
						return r.Center()
					}
				}
				return geom.Coord{X: rng.Intn(ruitest.DefaultTestWidth), Y: rng.Intn(ruitest.DefaultTestHeight)}
			}

			pressed := false
			for step := 0; step < 60; step++ {
				var err error
				switch {
				case !pressed && rng.Intn(3) > 0:
					err = tester.Press(point())
					pressed = true
				case pressed && rng.Intn(3) == 0:
					err = tester.Release(point())
					pressed = false
				default:
					err = tester.MoveTo(point())
				}
				if err != nil {
					t.Fatalf("step %d: %v", step, err)
				}

				st := tester.State()
				if n := bar.OpenMenus(st); n > 1 {
					t.Fatalf("step %d: OpenMenus = %d, want at most 1", step, n)
				}
				popups := st.Popups()
				for i, p := range popups {
					parent := p.Popup.Parent
					if i == 0 {
						if !bar.IsAncestorOf(parent) {
							t.Fatalf("step %d: first popup parent %v is outside the bar", step, parent)
						}
						continue
					}
					below := popups[i-1].Popup
					if parent < below.ID || parent > below.Last {
						t.Fatalf("step %d: popup %d parent %v outside popup [%v, %v]", step, i, parent, below.ID, below.Last)
					}
				}
			}
		})
	}
}

func TestMenuEntryActivation(t *testing.T) {
	root, got := menuApp()
	tester := ruitest.NewTesterWithT(t, root)

	if err := tester.Click(ruitest.ByText("File")); err != nil {
		t.Fatal(err)
	}
	if err := tester.Click(ruitest.ByText("Quit")); err != nil {
		t.Fatal(err)
	}
	if len(*got) != 1 || (*got)[0] != "quit" {
		t.Errorf("messages = %v, want [quit]", *got)
	}
	if tester.PopupDepth() != 0 {
		t.Errorf("depth = %d, want 0", tester.PopupDepth())
	}
}

func TestNestedSubMenu(t *testing.T) {
	root, got := menuApp()
	tester := ruitest.NewTesterWithT(t, root)

	if err := tester.Click(ruitest.ByText("Edit")); err != nil {
		t.Fatal(err)
	}
	if _, err := tester.Activate(ruitest.ByText("Insert")); err != nil {
		t.Fatal(err)
	}
	if tester.PopupDepth() != 2 {
		t.Fatalf("depth = %d, want 2", tester.PopupDepth())
	}
	insert := tester.Find(ruitest.ByText("Insert")).First()
	date := tester.Find(ruitest.ByText("Date")).First()
	if date.Core().Rect().Pos.X < insert.Core().Rect().End().X {
		t.Errorf("nested popup at %v, want right of %v", date.Core().Rect(), insert.Core().Rect())
	}

	if _, err := tester.Activate(ruitest.ByText("Date")); err != nil {
		t.Fatal(err)
	}
	if len(*got) != 1 || (*got)[0] != "date" {
		t.Errorf("messages = %v, want [date]", *got)
	}
}

func TestEscapeClosesTopMenu(t *testing.T) {
	root, _ := menuApp()
	tester := ruitest.NewTesterWithT(t, root)
	tester.Click(ruitest.ByText("Edit"))
	tester.Activate(ruitest.ByText("Insert"))

	if err := tester.Key(core.NamedKey(core.KeyEscape)); err != nil {
		t.Fatal(err)
	}
	if tester.PopupDepth() != 1 {
		t.Errorf("depth after Escape = %d, want 1", tester.PopupDepth())
	}
}

func TestPressOutsideClosesMenus(t *testing.T) {
	root, got := menuApp()
	tester := ruitest.NewTesterWithT(t, root)
	tester.Click(ruitest.ByText("File"))

	body := tester.Find(ruitest.ByName("Label")).First()
	if err := tester.Click(ruitest.ByWidget(body)); err != nil {
		t.Fatal(err)
	}
	if tester.PopupDepth() != 0 {
		t.Errorf("depth = %d, want 0", tester.PopupDepth())
	}
	if len(*got) != 0 {
		t.Errorf("messages = %v, want none", *got)
	}
}

func TestMenuButton(t *testing.T) {
	var got []any
	mb := widgets.NewMenuButton("Options", widgets.NewMenuFrame(widgets.NewColumn(
		widgets.NewMenuEntry("Bold", "bold"),
		widgets.NewMenuEntry("Italic", "italic"),
	)))
	root := widgets.NewComposite("Toolbar", widgets.NewColumn(mb, widgets.NewLabel("content"))).
		WithMessage(func(_ *core.Manager, msg any) core.Response {
			got = append(got, msg)
			return core.None()
		})
	tester := ruitest.NewTesterWithT(t, root)

	if err := tester.Click(ruitest.ByText("Options")); err != nil {
		t.Fatal(err)
	}
	if !mb.IsOpen(tester.State()) {
		t.Fatal("popup not open after click")
	}
	if err := tester.Click(ruitest.ByText("Italic")); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "italic" {
		t.Errorf("messages = %v, want [italic]", got)
	}
	if mb.IsOpen(tester.State()) {
		t.Error("popup still open after activation")
	}

	// Press, move within the button to open, drag onto an entry and release.
	start := mb.Rect().Center()
	if err := tester.Press(start); err != nil {
		t.Fatal(err)
	}
	if err := tester.MoveTo(start.Add(geom.Coord{X: 1})); err != nil {
		t.Fatal(err)
	}
	if !mb.IsOpen(tester.State()) {
		t.Fatal("popup not open after moving over the button")
	}
	bold := tester.Find(ruitest.ByText("Bold")).First().Core().Rect().Center()
	if err := tester.MoveTo(bold); err != nil {
		t.Fatal(err)
	}
	if err := tester.Release(bold); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != "bold" {
		t.Errorf("messages = %v, want [italic bold]", got)
	}

	// Activation toggles.
	tester.Activate(ruitest.ByWidget(mb))
	tester.Activate(ruitest.ByWidget(mb))
	if mb.IsOpen(tester.State()) {
		t.Error("popup open after two activations")
	}
}

func TestWindowPanicsOnUnhandledMessage(t *testing.T) {
	btn := widgets.NewTextButton("go", "orphan")
	w := widgets.NewWindow("main", widgets.NewRow(btn))
	mgr := core.NewManager(core.NewManagerState(), nil)
	core.Configure(w, mgr)

	defer func() {
		r := recover()
		err, ok := r.(error)
		var ce *errors.ContractError
		if !ok || !stderrors.As(err, &ce) {
			t.Fatalf("recovered %v, want *errors.ContractError", r)
		}
		if ce.Widget != "main" {
			t.Errorf("ContractError.Widget = %q, want main", ce.Widget)
		}
	}()
	w.Send(mgr, btn.ID(), core.Activate())
}

func TestAccelKey(t *testing.T) {
	n := 0
	root := widgets.NewComposite("Calc", widgets.NewRow(
		widgets.NewTextButton("1", 1).WithKeys(core.RuneKey('1')),
		widgets.NewTextButton("2", 2).WithKeys(core.RuneKey('2')),
	)).WithMessage(func(_ *core.Manager, msg any) core.Response {
		n = n*10 + msg.(int)
		return core.None()
	})
	tester := ruitest.NewTesterWithT(t, root)

	for _, r := range "212" {
		if err := tester.Key(core.RuneKey(r)); err != nil {
			t.Fatal(err)
		}
	}
	if n != 212 {
		t.Errorf("n = %d, want 212", n)
	}
}

func TestRowLayout(t *testing.T) {
	a := widgets.NewTextButton("alpha", 0)
	b := widgets.NewTextButton("b", 0)
	tester := ruitest.NewTesterWithT(t, widgets.NewRow(a, b), ruitest.WithSize(geom.Size{}))

	ra, rb := a.Rect(), b.Rect()
	if ra.IsEmpty() || rb.IsEmpty() {
		t.Fatalf("rects %v, %v, want non-empty", ra, rb)
	}
	if ra.End().X > rb.Pos.X {
		t.Errorf("alpha %v overlaps b %v", ra, rb)
	}
	if ra.Size.W <= rb.Size.W {
		t.Errorf("alpha width %d, want > b width %d", ra.Size.W, rb.Size.W)
	}
	size := tester.Toolkit().Size(tester.WindowID())
	if rb.End().X > size.W {
		t.Errorf("b %v exceeds window width %d", rb, size.W)
	}
}

func TestGridSpans(t *testing.T) {
	one := widgets.NewTextButton("1", 1)
	two := widgets.NewTextButton("2", 2)
	zero := widgets.NewTextButton("0", 0)
	grid := widgets.NewGrid().
		Add(0, 0, one).
		Add(1, 0, two).
		AddSpan(layout.GridCell{Col: 0, Row: 1, ColSpan: 2}, zero)
	ruitest.NewTesterWithT(t, grid, ruitest.WithSize(geom.Size{}))

	if zero.Rect().Pos.X != one.Rect().Pos.X {
		t.Errorf("spanning cell x = %d, want %d", zero.Rect().Pos.X, one.Rect().Pos.X)
	}
	if zero.Rect().End().X < two.Rect().End().X {
		t.Errorf("spanning cell ends at %d, want >= %d", zero.Rect().End().X, two.Rect().End().X)
	}
	if zero.Rect().Pos.Y < one.Rect().End().Y {
		t.Errorf("second row y = %d, want >= %d", zero.Rect().Pos.Y, one.Rect().End().Y)
	}
}

func TestListPushReconfigures(t *testing.T) {
	list := widgets.NewColumn(widgets.NewLabel("first"))
	root := widgets.NewComposite("Adder", widgets.NewColumn(list, widgets.NewTextButton("add", "add"))).
		WithMessage(func(mgr *core.Manager, _ any) core.Response {
			action := list.Push(widgets.NewLabel("second"))
			if !action.Has(core.ActionReconfigure) {
				t.Errorf("Push action = %v, want reconfigure", action)
			}
			mgr.SendAction(action)
			return core.None()
		})
	tester := ruitest.NewTesterWithT(t, root)

	if err := tester.Click(ruitest.ByText("add")); err != nil {
		t.Fatal(err)
	}
	second := tester.Find(ruitest.ByText("second")).First()
	if !second.Core().ID().IsValid() || second.Core().Rect().IsEmpty() {
		t.Errorf("pushed label id %v rect %v, want configured and laid out", second.Core().ID(), second.Core().Rect())
	}
	first := tester.Find(ruitest.ByText("first")).First()
	if second.Core().Rect().Pos.Y < first.Core().Rect().End().Y {
		t.Errorf("second %v not below first %v", second.Core().Rect(), first.Core().Rect())
	}
}

func TestFrameSurroundsChild(t *testing.T) {
	label := widgets.NewLabel("framed")
	frame := widgets.NewFrame(label)
	tester := ruitest.NewTesterWithT(t, frame, ruitest.WithSize(geom.Size{}))

	outer, inner := frame.Rect(), label.Rect()
	if inner.Pos.X <= outer.Pos.X || inner.End().X >= outer.End().X {
		t.Errorf("label %v not inside frame %v", inner, outer)
	}
	var frames int
	for _, c := range tester.Draw().Commands() {
		if c.Op == theme.OpOuterFrame {
			frames++
		}
	}
	if frames != 1 {
		t.Errorf("outer frames drawn = %d, want 1", frames)
	}
	if got := widgets.NewMenuFrame(label).WidgetName(); got != "MenuFrame" {
		t.Errorf("WidgetName = %q, want MenuFrame", got)
	}
}
