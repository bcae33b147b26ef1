package theme

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/rui/pkg/draw"
	"github.com/go-drift/rui/pkg/geom"
	"github.com/go-drift/rui/pkg/layout"
)

// Op identifies a recorded drawing command.
type Op uint8

const (
	OpBackground Op = iota
	OpOuterFrame
	OpMenuFrame
	OpButton
	OpMenuEntry
	OpText
)

// String returns a human-readable representation of the op.
func (o Op) String() string {
	switch o {
	case OpBackground:
		return "background"
	case OpOuterFrame:
		return "outer-frame"
	case OpMenuFrame:
		return "menu-frame"
	case OpButton:
		return "button"
	case OpMenuEntry:
		return "menu-entry"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is one recorded drawing call.
type Command struct {
	Op     Op
	Rect   geom.Rect
	Text   string
	Class  draw.TextClass
	Align  layout.AlignHints
	State  draw.InputState
	Fill   colorful.Color
	Border colorful.Color
}

// Recorder is a draw.DrawHandle that records commands instead of painting.
// Colours are resolved so tests can assert on highlighting.
type Recorder struct {
	colours  Colours
	commands []Command
}

// NewRecorder returns a Recorder resolving colours from t.
func NewRecorder(t *Theme) *Recorder {
	return &Recorder{colours: t.Colours}
}

// Commands returns the commands recorded since the last Reset.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset discards recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Texts returns the recorded text strings in drawing order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.commands {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// FindText returns the last text command drawing s.
func (r *Recorder) FindText(s string) (Command, bool) {
	for i := len(r.commands) - 1; i >= 0; i-- {
		if c := r.commands[i]; c.Op == OpText && c.Text == s {
			return c, true
		}
	}
	return Command{}, false
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

func (r *Recorder) Background(rect geom.Rect) {
	r.record(Command{Op: OpBackground, Rect: rect, Fill: r.colours.Background})
}

func (r *Recorder) OuterFrame(rect geom.Rect) {
	r.record(Command{Op: OpOuterFrame, Rect: rect, Border: r.colours.Frame})
}

func (r *Recorder) MenuFrame(rect geom.Rect) {
	r.record(Command{
		Op:     OpMenuFrame,
		Rect:   rect,
		Fill:   r.colours.Background,
		Border: r.colours.Frame,
	})
}

func (r *Recorder) Button(rect geom.Rect, state draw.InputState) {
	r.record(Command{
		Op:     OpButton,
		Rect:   rect,
		State:  state,
		Fill:   r.colours.Fill(r.colours.Button, state),
		Border: r.colours.Border(state),
	})
}

func (r *Recorder) MenuEntry(rect geom.Rect, state draw.InputState) {
	r.record(Command{
		Op:     OpMenuEntry,
		Rect:   rect,
		State:  state,
		Fill:   r.colours.Fill(r.colours.Background, state),
		Border: r.colours.Border(state),
	})
}

func (r *Recorder) Text(rect geom.Rect, text string, class draw.TextClass, align layout.AlignHints, state draw.InputState) {
	r.record(Command{
		Op:    OpText,
		Rect:  rect,
		Text:  text,
		Class: class,
		Align: align,
		State: state,
		Fill:  r.colours.Foreground(state),
	})
}

var _ draw.DrawHandle = (*Recorder)(nil)
