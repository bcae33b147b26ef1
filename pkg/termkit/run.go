package termkit

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/rui/pkg/core"
	"github.com/go-drift/rui/pkg/theme"
	"github.com/go-drift/rui/pkg/toolkit"
	"github.com/go-drift/rui/pkg/widgets"
)

// Terminal shows the windows of a toolkit on a tcell screen, one at a
// time. Ctrl-N switches to the next window.
type Terminal struct {
	screen  tcell.Screen
	tk      *toolkit.Toolkit
	windows []core.WindowID
	active  int
	input   inputState
}

// New opens each window full-screen on screen, showing the first. The
// screen must already be initialized. The toolkit should measure in cells
// (toolkit.WithSizeHandle with Cells).
func New(screen tcell.Screen, tk *toolkit.Toolkit, windows ...*widgets.Window) *Terminal {
	screen.EnableMouse()
	screen.EnableFocus()
	width, height := screen.Size()
	t := &Terminal{screen: screen, tk: tk}
	for _, w := range windows {
		t.windows = append(t.windows, tk.AddWindow(w, sizeOf(width, height)))
	}
	return t
}

// NewToolkit returns a toolkit laying out in terminal cells.
func NewToolkit(th *theme.Theme, opts ...toolkit.Option) *toolkit.Toolkit {
	return toolkit.New(th, append([]toolkit.Option{toolkit.WithSizeHandle(Cells{})}, opts...)...)
}

// WindowID returns the id of the displayed window, or core.NoWindow once
// every window has closed.
func (t *Terminal) WindowID() core.WindowID {
	if len(t.windows) == 0 {
		return core.NoWindow
	}
	return t.windows[t.active]
}

// next shows the following window.
func (t *Terminal) next() {
	if len(t.windows) == 0 {
		return
	}
	t.active = (t.active + 1) % len(t.windows)
	t.tk.MarkDirty(t.WindowID())
}

// prune drops closed windows. It reports whether any remain.
func (t *Terminal) prune() bool {
	current := t.WindowID()
	open := t.windows[:0]
	for _, id := range t.windows {
		if _, ok := t.tk.Window(id); ok {
			open = append(open, id)
		}
	}
	t.windows = open
	t.active = 0
	for i, id := range open {
		if id == current {
			t.active = i
		}
	}
	if len(open) > 0 {
		t.tk.MarkDirty(t.WindowID())
	}
	return len(open) > 0
}

// SetTheme asks the event loop to switch to th. It is safe to call from
// any goroutine.
func (t *Terminal) SetTheme(th *theme.Theme) error {
	return t.screen.PostEvent(tcell.NewEventInterrupt(th))
}

// Run processes terminal events until ctx is cancelled, the window closes
// or Ctrl-C is pressed.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			done, err := t.Handle(ev)
			if err != nil || done {
				return err
			}
		}
	}
}

// Handle processes one event. It reports whether the loop should stop.
func (t *Terminal) Handle(ev tcell.Event) (bool, error) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyCtrlN:
			t.next()
			t.draw()
			return false, nil
		}
	case *tcell.EventResize:
		width, height := e.Size()
		for _, id := range t.windows {
			t.tk.Resize(id, sizeOf(width, height))
		}
		t.screen.Sync()
	case *tcell.EventInterrupt:
		if th, ok := e.Data().(*theme.Theme); ok {
			t.tk.SetTheme(th)
		}
	}
	for _, in := range t.input.convert(ev) {
		if err := t.tk.HandleInput(t.WindowID(), in); err != nil {
			break
		}
	}
	if !t.prune() {
		return true, nil
	}
	t.draw()
	return false, nil
}

func (t *Terminal) draw() {
	id := t.WindowID()
	if id == core.NoWindow || !t.tk.NeedsRedraw(id) {
		return
	}
	t.screen.Clear()
	t.tk.Draw(id, NewPainter(t.screen, t.tk.Theme()))
	t.screen.Show()
}

// Screen returns the terminal screen.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Open creates and initializes the default terminal screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	return screen, nil
}
