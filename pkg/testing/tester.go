package testing

import (
	"fmt"
	"testing"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/errors"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/theme"
	"github.com/go-drift/rui/pkg/toolkit"
	"github.com/go-drift/rui/pkg/widgets"
)

const (
	// DefaultTestWidth is the default window width.
	DefaultTestWidth = 640
	// DefaultTestHeight is the default window height.
	DefaultTestHeight = 480
)

// Option configures a Tester.
type Option func(*config)

type config struct {
	size  geom.Size
	theme *theme.Theme
	opts  []toolkit.Option
}

// WithSize sets the window size. A zero size opens the window at its ideal
// size.
func WithSize(size geom.Size) Option {
	return func(c *config) { c.size = size }
}

// WithTheme replaces the default theme.
func WithTheme(th *theme.Theme) Option {
	return func(c *config) { c.theme = th }
}

// WithToolkitOptions passes options to the underlying toolkit.
func WithToolkitOptions(opts ...toolkit.Option) Option {
	return func(c *config) { c.opts = append(c.opts, opts...) }
}

// Tester drives one window of a headless toolkit.
type Tester struct {
	tk     *toolkit.Toolkit
	id     core.WindowID
	root   *widgets.Window
	cursor geom.Coord
}

// NewTester opens content in a new window. Content that is not a
// *widgets.Window is wrapped in one.
func NewTester(content core.Widget, opts ...Option) *Tester {
	cfg := config{size: geom.Size{W: DefaultTestWidth, H: DefaultTestHeight}}
	for _, opt := range opts {
		opt(&cfg)
	}
	root, ok := content.(*widgets.Window)
	if !ok {
		root = widgets.NewWindow("test", content)
	}
	tk := toolkit.New(cfg.theme, cfg.opts...)
	return &Tester{
		tk:   tk,
		id:   tk.AddWindow(root, cfg.size),
		root: root,
	}
}

// NewTesterWithT is like NewTester but fails t on any error or panic
// reported to the error handler while the test runs.
func NewTesterWithT(t *testing.T, content core.Widget, opts ...Option) *Tester {
	t.Helper()
	errors.SetHandler(&failHandler{t: t})
	t.Cleanup(func() { errors.SetHandler(nil) })
	return NewTester(content, opts...)
}

type failHandler struct {
	t *testing.T
}

func (h *failHandler) HandleError(err *errors.RuiError) {
	h.t.Errorf("rui error: %v", err)
}

func (h *failHandler) HandlePanic(err *errors.PanicError) {
	h.t.Errorf("rui panic: %v\n%s", err, err.StackTrace)
}

// Toolkit returns the underlying toolkit.
func (t *Tester) Toolkit() *toolkit.Toolkit { return t.tk }

// WindowID returns the id of the tested window.
func (t *Tester) WindowID() core.WindowID { return t.id }

// Root returns the root window widget.
func (t *Tester) Root() *widgets.Window { return t.root }

// State returns the window's event state.
func (t *Tester) State() *core.ManagerState {
	st, _ := t.tk.State(t.id)
	return st
}

// PopupDepth returns the number of open popups.
func (t *Tester) PopupDepth() int {
	return len(t.State().Popups())
}

// Find evaluates finder against the tree, popups included.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{widgets: finder.Evaluate(t.root), finder: finder}
}

// Activate sends Activate to the first widget matched by finder, as a
// keyboard activation would.
func (t *Tester) Activate(finder Finder) (core.Response, error) {
	w, err := t.target("Activate", finder)
	if err != nil {
		return core.None(), err
	}
	return t.tk.Send(t.id, w.Core().ID(), core.Activate())
}

// Send dispatches ev to the widget with the given id.
func (t *Tester) Send(id core.WidgetID, ev core.Event) (core.Response, error) {
	return t.tk.Send(t.id, id, ev)
}

// Key presses k.
func (t *Tester) Key(k core.Key) error {
	return t.input(core.Input{Kind: core.InputKey, Key: k})
}

// Type sends each rune of s as character input.
func (t *Tester) Type(s string) error {
	for _, r := range s {
		if err := t.input(core.Input{Kind: core.InputChar, Char: r}); err != nil {
			return err
		}
	}
	return nil
}

// Resize changes the window size.
func (t *Tester) Resize(size geom.Size) {
	t.tk.Resize(t.id, size)
}

// Draw draws the window and returns the recorded commands.
func (t *Tester) Draw() *theme.Recorder {
	rec := theme.NewRecorder(t.tk.Theme())
	t.tk.Draw(t.id, rec)
	return rec
}

func (t *Tester) input(in core.Input) error {
	return t.tk.HandleInput(t.id, in)
}

func (t *Tester) target(op string, finder Finder) (core.Widget, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("%s: finder matched no widgets: %s", op, finder.Description())
	}
	return result.First(), nil
}
